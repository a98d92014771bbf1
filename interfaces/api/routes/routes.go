package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskstore-api/interfaces/api/handlers"
)

func SetupRoutes(app *fiber.App, h *handlers.Handlers) {
	SetupHealthRoutes(app, h)
	SetupTaskRoutes(app, h)
}
