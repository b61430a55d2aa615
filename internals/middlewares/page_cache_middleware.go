package middlewares

import (
	"strings"
	"time"

	appCache "painel_backend/internals/cache"
	"painel_backend/internals/configs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cache"
)

// PageCache caches public GET responses in the revalidator's page storage,
// so revalidating a path drops exactly what this middleware stored.
// PUBLIC_CACHE_TTL_SECONDS=0 keeps entries until they are revalidated.
// Paths under skipPrefixes are never cached, and neither are 4xx/5xx
// responses.
func PageCache(pages *appCache.PathStorage, skipPrefixes ...string) fiber.Handler {
	ttl := time.Duration(configs.GetEnvInt("PUBLIC_CACHE_TTL_SECONDS", 0)) * time.Second
	if ttl <= 0 {
		// fiber/cache needs a positive expiration
		ttl = 365 * 24 * time.Hour
	}
	return cache.New(cache.Config{
		Storage:      pages,
		KeyGenerator: appCache.CacheKey,
		Expiration:   ttl,
		CacheHeader:  "X-Cache",
		// Next runs before the handler and again before storing.
		Next: func(c *fiber.Ctx) bool {
			if c.Response().StatusCode() >= fiber.StatusBadRequest {
				return true
			}
			if c.Query("nocache") == "1" {
				return true
			}
			for _, p := range skipPrefixes {
				if strings.HasPrefix(c.Path(), p) {
					return true
				}
			}
			return false
		},
	})
}
