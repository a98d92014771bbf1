package handlers

import (
	"github.com/gofiber/fiber/v2"

	"taskstore-api/domain/services"
	"taskstore-api/pkg/config"
)

type HealthHandler struct {
	taskService services.TaskService
	database    config.DatabaseConfig
	driverName  string
}

func NewHealthHandler(taskService services.TaskService, database config.DatabaseConfig, driverName string) *HealthHandler {
	return &HealthHandler{
		taskService: taskService,
		database:    database,
		driverName:  driverName,
	}
}

// Root handles GET /, the liveness banner.
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Task Store API running",
		"db":      h.database.Scheme(),
	})
}

// TestDatabase handles GET /test, the connectivity probe. It never fails
// outright; a datastore error is captured in the response body instead.
func (h *HealthHandler) TestDatabase(c *fiber.Ctx) error {
	info := fiber.Map{
		"backend":      "running",
		"database_url": h.database.URL,
		"driver":       h.driverName,
	}

	if err := h.taskService.Ping(c.UserContext()); err != nil {
		info["database"] = "error: " + truncate(err.Error(), 120)
	} else {
		info["database"] = "connected"
	}

	return c.JSON(info)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
