package details

import (
	authRoute "painel_backend/internals/features/users/auth/route"
	authService "painel_backend/internals/features/users/auth/service"

	"github.com/gofiber/fiber/v2"
)

func AuthRoutes(app *fiber.App, svc *authService.AuthService, gate fiber.Handler) {
	authRoute.AuthRoutes(app, svc, gate)
}
