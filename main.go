package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"painel_backend/internals/cache"
	"painel_backend/internals/configs"
	database "painel_backend/internals/databases"
	authService "painel_backend/internals/features/users/auth/service"
	helper "painel_backend/internals/helpers"
	helperOSS "painel_backend/internals/helpers/oss"
	middlewares "painel_backend/internals/middlewares"
	routes "painel_backend/internals/route"
	"painel_backend/internals/scheduler"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		ErrorHandler:            helper.ErrorHandler,
		DisableStartupMessage:   true,
		BodyLimit:               int(helperOSS.MaxUploadSize) + 1024*1024,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          configs.GetEnvList("TRUSTED_PROXIES", "0.0.0.0/0"),
	})

	middlewares.SetupMiddlewares(app)

	// 🔌 DB connect + pool + warm-up
	db := database.ConnectDB()
	database.WarmUpQueries()
	if configs.GetEnvBool("AUTOMIGRATE", false) {
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("[ERROR] automigrate: %v", err)
		}
	}

	auth := authService.NewAuthService(db, configs.JWTSecret, configs.JWTRefreshSecret, authService.CookieConfig{
		Secure: configs.CookieSecure,
		Domain: configs.GetEnv("COOKIE_DOMAIN"),
	})

	// ⏱ scheduler after the DB is ready
	stopCron := scheduler.Start(db, auth)

	blobs := helperOSS.NewBlobServiceFromEnv()
	if local, ok := blobs.(*helperOSS.LocalBlobService); ok {
		app.Static(local.PublicBase, local.Root, fiber.Static{MaxAge: 86400})
	}

	routes.SetupRoutes(app, db, routes.Deps{
		Auth:        auth,
		Revalidator: cache.NewRevalidator(),
		Blobs:       blobs,
	})

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := configs.GetEnv("PORT", "3000")
	go func() {
		log.Printf("[INFO] Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("[ERROR] server: %v", err)
		}
	}()

	// graceful shutdown: HTTP first, then cron, then the pool
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("[INFO] shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("[WARN] shutdown: %v", err)
	}
	stopCron()
	database.Close()
}
