package route

import (
	"painel_backend/internals/cache"
	"painel_backend/internals/constants"
	"painel_backend/internals/features/home/categorias/controller"
	authMiddleware "painel_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CategoriaAdminRoutes(admin fiber.Router, db *gorm.DB, inv cache.Invalidator) {
	ctrl := controller.NewCategoriaController(db, inv)

	g := admin.Group("/categorias",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorStaff("categorias"), constants.AdminOrSecretaria),
	)
	g.Get("/", ctrl.GetCategorias)
	g.Post("/", ctrl.CreateCategoria)
	g.Patch("/", ctrl.UpdateCategoria)
	g.Delete("/", ctrl.DeleteCategoria)
}

func CategoriaPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCategoriaController(db, nil)
	public.Get("/categorias", ctrl.GetCategorias)
}
