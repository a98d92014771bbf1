package services

import (
	"context"

	"taskstore-api/domain/dto"
	"taskstore-api/domain/models"
	"taskstore-api/domain/repositories"
)

type TaskService interface {
	ListTasks(ctx context.Context, filter repositories.TaskFilter) ([]*models.Task, error)
	CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*models.Task, error)
	UpdateTask(ctx context.Context, taskID uint, req *dto.UpdateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, taskID uint) error
	Ping(ctx context.Context) error
}
