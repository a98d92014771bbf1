package handlers

import (
	"taskstore-api/domain/services"
	"taskstore-api/pkg/config"
)

// Services contains everything the handlers need from the container.
type Services struct {
	TaskService services.TaskService
	Database    config.DatabaseConfig
	DriverName  string
}

// Handlers contains all HTTP handlers.
type Handlers struct {
	TaskHandler   *TaskHandler
	HealthHandler *HealthHandler
}

func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		TaskHandler:   NewTaskHandler(services.TaskService),
		HealthHandler: NewHealthHandler(services.TaskService, services.Database, services.DriverName),
	}
}
