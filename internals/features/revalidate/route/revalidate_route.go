package route

import (
	"painel_backend/internals/cache"
	"painel_backend/internals/constants"
	"painel_backend/internals/features/revalidate/controller"
	authMiddleware "painel_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
)

func RevalidateRoutes(admin fiber.Router, inv cache.Invalidator) {
	ctrl := controller.NewRevalidateController(inv)

	admin.Post("/revalidate",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("revalidar o cache"), constants.RoleAdmin),
		ctrl.Revalidate,
	)
}
