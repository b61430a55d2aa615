package route

import (
	"painel_backend/internals/cache"
	"painel_backend/internals/constants"
	"painel_backend/internals/features/academic/trabalhos/controller"
	authMiddleware "painel_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func TrabalhoAdminRoutes(admin fiber.Router, db *gorm.DB, inv cache.Invalidator) {
	ctrl := controller.NewTrabalhoController(db, inv)

	g := admin.Group("/trabalhos",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorStaff("trabalhos"), constants.AdminOrSecretaria),
	)
	g.Get("/", ctrl.GetTrabalhos)
	g.Post("/", ctrl.CreateTrabalho)
	g.Patch("/", ctrl.UpdateTrabalho)
	g.Delete("/", ctrl.DeleteTrabalho)
}

func TrabalhoPublicRoutes(public fiber.Router, db *gorm.DB, inv cache.Invalidator) {
	ctrl := controller.NewTrabalhoController(db, inv)
	public.Get("/trabalhos", ctrl.GetTrabalhos)
	public.Post("/trabalhos/visit", ctrl.RegisterVisit)
}
