package middlewares

import (
	"context"
	"time"

	"painel_backend/internals/configs"
	"painel_backend/internals/middlewares/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/utils"
)

// RequestTimeout attaches a deadline to c.UserContext(); gorm calls inherit it.
func RequestTimeout(d time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), d)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

// SetupMiddlewares installs the global chain, outermost first.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(requestid.New(requestid.Config{
		Header:     fiber.HeaderXRequestID,
		Generator:  utils.UUID,
		ContextKey: "requestid",
	}))
	app.Use(RequestTimeout(time.Duration(configs.GetEnvInt("REQUEST_TIMEOUT_SECONDS", 5)) * time.Second))
	app.Use(CorsMiddleware())
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
