package serviceimpl

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"taskstore-api/domain/dto"
	"taskstore-api/domain/models"
	"taskstore-api/domain/repositories"
	"taskstore-api/domain/services"
	"taskstore-api/pkg/logger"
)

type TaskServiceImpl struct {
	taskRepo repositories.TaskRepository
}

func NewTaskService(taskRepo repositories.TaskRepository) services.TaskService {
	return &TaskServiceImpl{
		taskRepo: taskRepo,
	}
}

func (s *TaskServiceImpl) ListTasks(ctx context.Context, filter repositories.TaskFilter) ([]*models.Task, error) {
	tasks, err := s.taskRepo.List(ctx, filter)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list tasks", "error", err)
		return nil, err
	}
	return tasks, nil
}

func (s *TaskServiceImpl) CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*models.Task, error) {
	now := time.Now()
	task := &models.Task{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Priority:    req.Priority,
		Status:      models.StatusOpen,
		Completed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}

	if req.DueDate != nil {
		due, err := parseDueDate(*req.DueDate)
		if err != nil {
			return nil, err
		}
		task.DueDate = due
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to create task", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task created", "task_id", task.ID, "title", task.Title)

	return task, nil
}

func (s *TaskServiceImpl) UpdateTask(ctx context.Context, taskID uint, req *dto.UpdateTaskRequest) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		logger.WarnContext(ctx, "Task not found for update", "task_id", taskID)
		return nil, err
	}

	if req.Title != nil {
		// A title that trims to empty keeps the stored one. Silent no-op,
		// not an error.
		if title := strings.TrimSpace(*req.Title); title != "" {
			task.Title = title
		}
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	if req.DueDate != nil {
		due, err := parseDueDate(*req.DueDate)
		if err != nil {
			return nil, err
		}
		task.DueDate = due
	}
	if req.Completed != nil {
		// Applied after the explicit status assignment above, so
		// completed=true wins over a conflicting status in the same request.
		// The reverse direction (status=done alone) does not touch completed.
		task.Completed = *req.Completed
		if task.Completed && task.Status != models.StatusDone {
			task.Status = models.StatusDone
		}
		if !task.Completed && task.Status == models.StatusDone {
			task.Status = models.StatusOpen
		}
	}

	task.UpdatedAt = time.Now()

	if err := s.taskRepo.Update(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to update task", "task_id", taskID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task updated", "task_id", taskID)

	return task, nil
}

func (s *TaskServiceImpl) DeleteTask(ctx context.Context, taskID uint) error {
	if err := s.taskRepo.Delete(ctx, taskID); err != nil {
		if errors.Is(err, repositories.ErrTaskNotFound) {
			logger.WarnContext(ctx, "Task not found for deletion", "task_id", taskID)
		} else {
			logger.ErrorContext(ctx, "Failed to delete task", "task_id", taskID, "error", err)
		}
		return err
	}

	logger.InfoContext(ctx, "Task deleted", "task_id", taskID)
	return nil
}

func (s *TaskServiceImpl) Ping(ctx context.Context) error {
	return s.taskRepo.Ping(ctx)
}

func parseDueDate(value string) (*time.Time, error) {
	due, err := time.Parse(dto.DateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("invalid dueDate %q: %w", value, err)
	}
	return &due, nil
}
