// file: internals/features/users/auth/route/auth_route.go
package route

import (
	controller "painel_backend/internals/features/users/auth/controller"
	"painel_backend/internals/features/users/auth/service"
	rateLimiter "painel_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
)

// AuthRoutes mounts /api/auth. gate protects the session-bound endpoints.
func AuthRoutes(app fiber.Router, svc *service.AuthService, gate fiber.Handler) {
	authController := controller.NewAuthController(svc)

	baseAuth := app.Group("/api/auth")

	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	baseAuth.Post("/refresh", authController.RefreshToken)
	baseAuth.Post("/logout", authController.Logout)

	baseAuth.Get("/me", gate, authController.Me)
	baseAuth.Post("/change-password", gate, authController.ChangePassword)
}
