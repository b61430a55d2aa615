package route

import (
	"painel_backend/internals/cache"
	"painel_backend/internals/constants"
	"painel_backend/internals/features/academic/cursos/controller"
	authMiddleware "painel_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CursoAdminRoutes(admin fiber.Router, db *gorm.DB, inv cache.Invalidator) {
	ctrl := controller.NewCursoController(db, inv)

	g := admin.Group("/cursos",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorStaff("cursos"), constants.AdminOrSecretaria),
	)
	g.Get("/", ctrl.GetCursos)
	g.Post("/", ctrl.CreateCurso)
	g.Patch("/", ctrl.UpdateCurso)
	g.Delete("/", ctrl.DeleteCurso)
}

// CursoPublicRoutes only exposes active courses.
func CursoPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := &controller.CursoController{DB: db, PublicOnly: true}
	public.Get("/cursos", ctrl.GetCursos)
}
