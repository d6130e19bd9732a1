package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskboard-api/interfaces/api/handlers"
)

func SetupUserRoutes(api fiber.Router, h *handlers.Handlers, protected fiber.Handler) {
	users := api.Group("/users")

	users.Post("/register", h.AuthHandler.Register)
	users.Post("/login", h.AuthHandler.Login)

	users.Get("/me", protected, h.AuthHandler.GetMe)
	users.Get("/logout", protected, h.AuthHandler.Logout)
	users.Put("/profile", protected, h.AuthHandler.UpdateProfile)
	users.Put("/password", protected, h.AuthHandler.UpdatePassword)
}
