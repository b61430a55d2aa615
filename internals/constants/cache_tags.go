package constants

// Cache tags. Revalidation only accepts names from this list.
const (
	TagDashboard   = "dashboard"
	TagPosts       = "posts"
	TagCursos      = "cursos"
	TagPolos       = "polos"
	TagProfessores = "professores"
	TagCategorias  = "categorias"
	TagTrabalhos   = "trabalhos"
	TagOuvidoria   = "ouvidoria"
	TagSettings    = "settings"
	TagUsers       = "users"
)

var CacheTags = []string{
	TagDashboard,
	TagPosts,
	TagCursos,
	TagPolos,
	TagProfessores,
	TagCategorias,
	TagTrabalhos,
	TagOuvidoria,
	TagSettings,
	TagUsers,
}

func IsCacheTag(tag string) bool {
	for _, t := range CacheTags {
		if t == tag {
			return true
		}
	}
	return false
}

// Public page paths, one per entity family.
const (
	PublicPrefix          = "/api/public"
	PathPublicPosts       = PublicPrefix + "/posts"
	PathPublicCursos      = PublicPrefix + "/cursos"
	PathPublicPolos       = PublicPrefix + "/polos"
	PathPublicProfessores = PublicPrefix + "/professores"
	PathPublicCategorias  = PublicPrefix + "/categorias"
	PathPublicTrabalhos   = PublicPrefix + "/trabalhos"
	PathPublicSettings    = PublicPrefix + "/settings"
	PathPublicOuvidoria   = PublicPrefix + "/ouvidoria"
)
