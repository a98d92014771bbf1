package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskstore-api/interfaces/api/handlers"
)

func SetupHealthRoutes(app *fiber.App, h *handlers.Handlers) {
	app.Get("/", h.HealthHandler.Root)
	app.Get("/test", h.HealthHandler.TestDatabase)
}
