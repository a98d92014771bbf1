package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"taskstore-api/domain/dto"
	"taskstore-api/domain/repositories"
	"taskstore-api/domain/services"
	"taskstore-api/pkg/logger"
	"taskstore-api/pkg/utils"
)

type TaskHandler struct {
	taskService services.TaskService
}

func NewTaskHandler(taskService services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// ListTasks handles GET /tasks. Responds with a bare array ordered by
// creation time, newest first.
func (h *TaskHandler) ListTasks(c *fiber.Ctx) error {
	ctx := c.UserContext()

	req := dto.TaskFilterRequest{Limit: 200}
	if err := c.QueryParser(&req); err != nil {
		logger.WarnContext(ctx, "Malformed query parameters", "error", err)
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	if err := utils.ValidateStruct(&req); err != nil {
		fieldErrors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Invalid query parameters", "errors", fieldErrors)
		return utils.ValidationErrorResponse(c, fieldErrors)
	}

	showCompleted := true
	if req.ShowCompleted != nil {
		showCompleted = *req.ShowCompleted
	}

	tasks, err := h.taskService.ListTasks(ctx, repositories.TaskFilter{
		Query:         req.Q,
		Status:        req.Status,
		Priority:      req.Priority,
		ShowCompleted: showCompleted,
		Limit:         req.Limit,
	})
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list tasks", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return c.JSON(dto.TasksToTaskResponses(tasks))
}

// CreateTask handles POST /tasks.
func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	// Length bounds apply to the trimmed title.
	req.Title = strings.TrimSpace(req.Title)

	if err := utils.ValidateStruct(&req); err != nil {
		fieldErrors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", fieldErrors)
		return utils.ValidationErrorResponse(c, fieldErrors)
	}

	task, err := h.taskService.CreateTask(ctx, &req)
	if err != nil {
		logger.ErrorContext(ctx, "Task creation failed", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.TaskToTaskResponse(task))
}

// UpdateTask handles PATCH /tasks/:id. Only supplied fields are applied.
func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, err := c.ParamsInt("id")
	if err != nil || taskID < 0 {
		logger.WarnContext(ctx, "Invalid task ID", "task_id", c.Params("id"))
		return utils.ValidationErrorResponse(c, []utils.FieldError{
			{Field: "id", Message: "must be an integer"},
		})
	}

	var req dto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	if err := utils.ValidateStruct(&req); err != nil {
		fieldErrors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", fieldErrors)
		return utils.ValidationErrorResponse(c, fieldErrors)
	}

	task, err := h.taskService.UpdateTask(ctx, uint(taskID), &req)
	if err != nil {
		if errors.Is(err, repositories.ErrTaskNotFound) {
			return utils.NotFoundResponse(c, "Task not found")
		}
		logger.ErrorContext(ctx, "Task update failed", "task_id", taskID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return c.JSON(dto.TaskToTaskResponse(task))
}

// DeleteTask handles DELETE /tasks/:id. Hard delete, no tombstone.
func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, err := c.ParamsInt("id")
	if err != nil || taskID < 0 {
		logger.WarnContext(ctx, "Invalid task ID", "task_id", c.Params("id"))
		return utils.ValidationErrorResponse(c, []utils.FieldError{
			{Field: "id", Message: "must be an integer"},
		})
	}

	if err := h.taskService.DeleteTask(ctx, uint(taskID)); err != nil {
		if errors.Is(err, repositories.ErrTaskNotFound) {
			return utils.NotFoundResponse(c, "Task not found")
		}
		logger.ErrorContext(ctx, "Task deletion failed", "task_id", taskID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.NoContentResponse(c)
}
