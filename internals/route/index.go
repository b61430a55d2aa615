// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"painel_backend/internals/cache"
	"painel_backend/internals/constants"
	authService "painel_backend/internals/features/users/auth/service"
	helperOSS "painel_backend/internals/helpers/oss"
	pageCache "painel_backend/internals/middlewares"
	authMiddleware "painel_backend/internals/middlewares/auth"
	routeDetails "painel_backend/internals/route/details"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var startTime time.Time

// Deps are the process-wide services the handlers share.
type Deps struct {
	Auth        *authService.AuthService
	Revalidator *cache.Revalidator
	Blobs       helperOSS.BlobService
}

func SetupRoutes(app *fiber.App, db *gorm.DB, deps Deps) {
	startTime = time.Now()

	BaseRoutes(app, db)

	gate := authMiddleware.Gate(authMiddleware.GateOpts{
		Codec:    deps.Auth.Access,
		Profiles: authService.NewProfileResolver(db),
	})

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, deps.Auth, gate)

	// ===================== GROUPS =====================
	log.Println("[INFO] Setting up PUBLIC group (page cache)...")
	public := app.Group(constants.PublicPrefix,
		pageCache.PageCache(deps.Revalidator.Pages, constants.PathPublicOuvidoria),
	)

	log.Println("[INFO] Setting up ADMIN group (gate)...")
	admin := app.Group("/api/a", gate)

	// ===================== MOUNT ROUTES =====================
	log.Println("[INFO] Mounting Academic routes...")
	routeDetails.AcademicPublicRoutes(public, db, deps.Revalidator)
	routeDetails.AcademicAdminRoutes(admin, db, deps.Revalidator, deps.Blobs)

	log.Println("[INFO] Mounting Home routes...")
	routeDetails.HomePublicRoutes(public, db, deps.Revalidator)
	routeDetails.HomeAdminRoutes(admin, db, deps.Revalidator)

	log.Println("[INFO] Mounting User routes...")
	routeDetails.UserAdminRoutes(admin, db, deps.Revalidator, deps.Blobs)

	log.Println("[INFO] Mounting Panel routes...")
	routeDetails.PanelAdminRoutes(admin, db, deps.Revalidator)
}
