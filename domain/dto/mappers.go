package dto

import (
	"taskstore-api/domain/models"
)

func TaskToTaskResponse(task *models.Task) *TaskResponse {
	if task == nil {
		return nil
	}
	resp := &TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Priority:    task.Priority,
		Status:      task.Status,
		Completed:   task.Completed,
		CreatedAt:   task.CreatedAt,
	}
	if task.DueDate != nil {
		due := task.DueDate.Format(DateLayout)
		resp.DueDate = &due
	}
	return resp
}

func TasksToTaskResponses(tasks []*models.Task) []TaskResponse {
	// Never nil so an empty result serializes as [].
	responses := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		responses[i] = *TaskToTaskResponse(task)
	}
	return responses
}
