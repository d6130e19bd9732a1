package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"

	"taskboard-api/interfaces/api/middleware"
	"taskboard-api/interfaces/api/routes"
	"taskboard-api/pkg/di"
	"taskboard-api/pkg/logger"
)

func main() {
	container := di.NewContainer()
	if err := container.Initialize(); err != nil {
		logger.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}
	defer container.Cleanup()

	cfg := container.GetConfig()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ErrorHandler: middleware.ErrorHandler(cfg.IsProduction()),
	})

	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware())
	app.Use(middleware.CorsMiddleware())

	routes.SetupRoutes(app, container.GetHandlers(), container.UserService, cfg, container.GetLimiterStorage())

	// graceful shutdown เมื่อได้รับ SIGINT/SIGTERM
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		logger.Info("Shutting down server...")
		if err := app.Shutdown(); err != nil {
			logger.Error("Server shutdown failed", "error", err)
		}
	}()

	addr := ":" + cfg.App.Port
	logger.Info("Server starting", "addr", addr, "env", cfg.App.Env)
	if err := app.Listen(addr); err != nil {
		logger.Error("Server stopped unexpectedly", "error", err)
		os.Exit(1)
	}

	logger.Info("Server stopped")
}
