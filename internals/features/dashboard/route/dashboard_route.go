package route

import (
	"painel_backend/internals/cache"
	"painel_backend/internals/constants"
	"painel_backend/internals/features/dashboard/controller"
	"painel_backend/internals/features/dashboard/service"
	authMiddleware "painel_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func DashboardRoutes(admin fiber.Router, db *gorm.DB, tags *cache.TagStore) {
	ctrl := controller.NewDashboardController(service.NewDashboardService(db, tags))

	admin.Get("/dashboard",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorStaff("o painel"), constants.AdminOrSecretaria),
		ctrl.GetSummary,
	)
}
