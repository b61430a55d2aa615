package details

import (
	"painel_backend/internals/cache"
	userRoute "painel_backend/internals/features/users/user/route"
	helperOSS "painel_backend/internals/helpers/oss"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Example: /api/a/users
func UserAdminRoutes(admin fiber.Router, db *gorm.DB, inv cache.Invalidator, blobs helperOSS.BlobService) {
	userRoute.UserAdminRoutes(admin, db, inv, blobs)
}
