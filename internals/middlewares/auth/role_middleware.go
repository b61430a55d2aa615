package auth

import (
	"painel_backend/internals/constants"
	helper "painel_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
)

// OnlyRolesSlice validates the role resolved by Gate. Missing profile is
// 401; a role outside allowedRoles is 403 with customForbiddenMessage.
func OnlyRolesSlice(customForbiddenMessage string, allowedRoles []string) fiber.Handler {
	if customForbiddenMessage == "" {
		customForbiddenMessage = "Acesso negado"
	}
	return func(c *fiber.Ctx) error {
		profile, ok := CurrentProfile(c)
		if !ok {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Não autenticado")
		}
		if !constants.HasRole(profile.Role, allowedRoles) {
			return helper.JsonError(c, fiber.StatusForbidden, customForbiddenMessage)
		}
		return c.Next()
	}
}

// OnlyRoles shortcut
func OnlyRoles(customMessage string, roles ...string) fiber.Handler {
	return OnlyRolesSlice(customMessage, roles)
}
