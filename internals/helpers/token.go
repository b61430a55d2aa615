// helpers/token.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	AccessTokenCookie  = "access_token"
	RefreshTokenCookie = "refresh_token"
)

// GetRawAccessToken mengembalikan access token dari:
// 1) cookie "access_token"
// 2) Authorization header "Bearer <token>"
func GetRawAccessToken(c *fiber.Ctx) string {
	if v := strings.TrimSpace(c.Cookies(AccessTokenCookie)); v != "" {
		return v
	}
	fields := strings.Fields(c.Get(fiber.HeaderAuthorization))
	if len(fields) == 2 && strings.EqualFold(fields[0], "Bearer") {
		return strings.Trim(fields[1], "\"'")
	}
	return ""
}

func GetRefreshTokenFromCookie(c *fiber.Ctx) string {
	return strings.TrimSpace(c.Cookies(RefreshTokenCookie))
}
