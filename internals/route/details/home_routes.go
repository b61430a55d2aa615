package details

import (
	"painel_backend/internals/cache"
	CategoriaRoutes "painel_backend/internals/features/home/categorias/route"
	OuvidoriaRoutes "painel_backend/internals/features/home/ouvidoria/route"
	PostRoutes "painel_backend/internals/features/home/posts/route"
	SettingRoutes "painel_backend/internals/features/home/settings/route"
	rateLimiter "painel_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ✅ Public, no token. Example: /api/public/posts
func HomePublicRoutes(public fiber.Router, db *gorm.DB, inv cache.Invalidator) {
	PostRoutes.PostPublicRoutes(public, db)
	CategoriaRoutes.CategoriaPublicRoutes(public, db)
	SettingRoutes.SettingPublicRoutes(public, db)
	OuvidoriaRoutes.OuvidoriaPublicRoutes(public, db, inv, rateLimiter.PublicFormRateLimiter())
}

// ✅ Staff (token + role). Example: /api/a/posts
func HomeAdminRoutes(admin fiber.Router, db *gorm.DB, inv cache.Invalidator) {
	PostRoutes.PostAdminRoutes(admin, db, inv)
	CategoriaRoutes.CategoriaAdminRoutes(admin, db, inv)
	SettingRoutes.SettingAdminRoutes(admin, db, inv)
	OuvidoriaRoutes.OuvidoriaAdminRoutes(admin, db, inv)
}
