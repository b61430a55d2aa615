package constants

import "fmt"

const (
	RoleAdmin      = "Admin"
	RoleSecretaria = "Secretaria"
	RoleProfessor  = "Professor"
	RoleAluno      = "Aluno"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess        = "❌ Apenas administradores podem acessar %s."
	ErrOnlyAdminOrSecretariaCanDo = "❌ Apenas administradores ou secretaria podem acessar %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminOrSecretariaCanDo, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleSecretaria,
		RoleProfessor,
		RoleAluno,
	}

	AdminOrSecretaria = []string{
		RoleAdmin,
		RoleSecretaria,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)

// HasRole reports whether role is one of allowed.
func HasRole(role string, allowed []string) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}
