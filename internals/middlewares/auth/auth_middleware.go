// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"

	authService "painel_backend/internals/features/users/auth/service"
	helper "painel_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
)

const (
	LocProfile  = "profile"
	LocUserID   = "user_id"
	LocUserRole = "userRole"
)

type GateOpts struct {
	Codec    *authService.TokenCodec
	Profiles authService.ProfileResolver
}

// Gate authenticates the request: token from the access_token cookie
// (or a Bearer header), decoded by the codec, resolved to a profile.
//
//	absent / undecodable token, unknown user → 401
//	inactive account                        → 403
func Gate(opts GateOpts) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := helper.GetRawAccessToken(c)
		if raw == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Não autenticado")
		}
		claims, err := opts.Codec.Decode(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token inválido ou expirado")
		}
		profile, err := opts.Profiles.Resolve(c.UserContext(), claims.UserID)
		if err != nil {
			if errors.Is(err, authService.ErrProfileNotFound) {
				return helper.JsonError(c, fiber.StatusUnauthorized, "Usuário não encontrado")
			}
			log.Printf("[ERROR] gate: resolve profile %s: %v", claims.UserID, err)
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		if !profile.Active() {
			return helper.JsonError(c, fiber.StatusForbidden, "Conta desativada")
		}

		c.Locals(LocProfile, profile)
		c.Locals(LocUserID, profile.ID.String())
		c.Locals(LocUserRole, profile.Role)
		return c.Next()
	}
}

// CurrentProfile returns the profile stored by Gate.
func CurrentProfile(c *fiber.Ctx) (*authService.Profile, bool) {
	p, ok := c.Locals(LocProfile).(*authService.Profile)
	return p, ok && p != nil
}
