package details

import (
	"painel_backend/internals/cache"
	CursoRoutes "painel_backend/internals/features/academic/cursos/route"
	PoloRoutes "painel_backend/internals/features/academic/polos/route"
	ProfessorRoutes "painel_backend/internals/features/academic/professores/route"
	TrabalhoRoutes "painel_backend/internals/features/academic/trabalhos/route"
	helperOSS "painel_backend/internals/helpers/oss"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Example: /api/public/cursos, /api/public/trabalhos/visit?slug=
func AcademicPublicRoutes(public fiber.Router, db *gorm.DB, inv cache.Invalidator) {
	CursoRoutes.CursoPublicRoutes(public, db)
	PoloRoutes.PoloPublicRoutes(public, db)
	ProfessorRoutes.ProfessorPublicRoutes(public, db)
	TrabalhoRoutes.TrabalhoPublicRoutes(public, db, inv)
}

// Example: /api/a/cursos
func AcademicAdminRoutes(admin fiber.Router, db *gorm.DB, inv cache.Invalidator, blobs helperOSS.BlobService) {
	CursoRoutes.CursoAdminRoutes(admin, db, inv)
	PoloRoutes.PoloAdminRoutes(admin, db, inv)
	ProfessorRoutes.ProfessorAdminRoutes(admin, db, inv, blobs)
	TrabalhoRoutes.TrabalhoAdminRoutes(admin, db, inv)
}
