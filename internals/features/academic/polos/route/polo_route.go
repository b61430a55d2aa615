package route

import (
	"painel_backend/internals/cache"
	"painel_backend/internals/constants"
	"painel_backend/internals/features/academic/polos/controller"
	authMiddleware "painel_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func PoloAdminRoutes(admin fiber.Router, db *gorm.DB, inv cache.Invalidator) {
	ctrl := controller.NewPoloController(db, inv)

	g := admin.Group("/polos",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorStaff("polos"), constants.AdminOrSecretaria),
	)
	g.Get("/", ctrl.GetPolos)
	g.Post("/", ctrl.CreatePolo)
	g.Patch("/", ctrl.UpdatePolo)
	g.Delete("/", ctrl.DeletePolo)
}

func PoloPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPoloController(db, nil)
	public.Get("/polos", ctrl.GetPolos)
}
