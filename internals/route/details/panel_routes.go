package details

import (
	"painel_backend/internals/cache"
	DashboardRoutes "painel_backend/internals/features/dashboard/route"
	RevalidateRoutes "painel_backend/internals/features/revalidate/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Example: /api/a/dashboard, /api/a/revalidate?tag=posts
func PanelAdminRoutes(admin fiber.Router, db *gorm.DB, rv *cache.Revalidator) {
	DashboardRoutes.DashboardRoutes(admin, db, rv.Tags)
	RevalidateRoutes.RevalidateRoutes(admin, rv)
}
