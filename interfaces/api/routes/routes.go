package routes

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"taskboard-api/domain/services"
	"taskboard-api/interfaces/api/handlers"
	"taskboard-api/interfaces/api/middleware"
	"taskboard-api/pkg/config"
	"taskboard-api/pkg/utils"
)

func SetupRoutes(app *fiber.App, h *handlers.Handlers, userService services.UserService, cfg *config.Config, limiterStorage fiber.Storage) {
	SetupHealthRoutes(app, cfg.App.Name)

	api := app.Group("/api")
	api.Use(middleware.RateLimitMiddleware(cfg.RateLimit, limiterStorage))

	protected := middleware.Protected(userService, cfg.JWT.Secret)

	SetupUserRoutes(api, h, protected)
	SetupTaskRoutes(api, h, protected)

	// unmatched routes -> 404 envelope เดียวกัน
	app.Use(func(c *fiber.Ctx) error {
		return utils.NotFoundResponse(c, fmt.Sprintf("Route %s not found", c.OriginalURL()))
	})
}
