package route

import (
	"painel_backend/internals/cache"
	"painel_backend/internals/constants"
	"painel_backend/internals/features/home/ouvidoria/controller"
	authMiddleware "painel_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func OuvidoriaAdminRoutes(admin fiber.Router, db *gorm.DB, inv cache.Invalidator) {
	ctrl := controller.NewOuvidoriaController(db, inv)

	g := admin.Group("/ouvidoria",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorStaff("a ouvidoria"), constants.AdminOrSecretaria),
	)
	g.Get("/", ctrl.GetOuvidorias)
	g.Post("/", ctrl.CreateOuvidoria)
	g.Patch("/", ctrl.UpdateOuvidoria)
	g.Delete("/", ctrl.DeleteOuvidoria)
}

// OuvidoriaPublicRoutes: submitGuards run before the anonymous POST (rate limiter).
func OuvidoriaPublicRoutes(public fiber.Router, db *gorm.DB, inv cache.Invalidator, submitGuards ...fiber.Handler) {
	ctrl := controller.NewOuvidoriaController(db, inv)

	public.Get("/ouvidoria", ctrl.GetByProtocoloPublic)
	public.Post("/ouvidoria", append(submitGuards, ctrl.SubmitPublic)...)
}
