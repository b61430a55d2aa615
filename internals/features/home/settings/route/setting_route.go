package route

import (
	"painel_backend/internals/cache"
	"painel_backend/internals/constants"
	"painel_backend/internals/features/home/settings/controller"
	authMiddleware "painel_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SettingAdminRoutes(admin fiber.Router, db *gorm.DB, inv cache.Invalidator) {
	ctrl := controller.NewSettingController(db, inv)

	g := admin.Group("/settings",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorAdmin("configurações"), constants.AdminOnly),
	)
	g.Get("/", ctrl.GetSettings)
	g.Patch("/", ctrl.SetSetting)
	g.Delete("/", ctrl.DeleteSetting)
}

func SettingPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSettingController(db, nil)
	public.Get("/settings", ctrl.GetSettings)
}
