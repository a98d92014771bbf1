package dto

import "time"

// DateLayout is the wire format for dueDate. The column is date-only, so the
// RFC3339 default of encoding/json does not apply here.
const DateLayout = "2006-01-02"

type CreateTaskRequest struct {
	Title       string  `json:"title" validate:"required,min=1,max=255"`
	Description string  `json:"description"`
	Priority    string  `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate     *string `json:"dueDate" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateTaskRequest uses pointer fields so an absent field can be told apart
// from a zero value. A whitespace-only title is accepted and ignored, see
// TaskService.UpdateTask.
type UpdateTaskRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=255"`
	Description *string `json:"description"`
	Priority    *string `json:"priority" validate:"omitempty,oneof=low medium high"`
	Status      *string `json:"status" validate:"omitempty,oneof=open in_progress done"`
	DueDate     *string `json:"dueDate" validate:"omitempty,datetime=2006-01-02"`
	Completed   *bool   `json:"completed"`
}

type TaskFilterRequest struct {
	Q             string `query:"q"`
	Status        string `query:"status" validate:"omitempty,oneof=open in_progress done"`
	Priority      string `query:"priority" validate:"omitempty,oneof=low medium high"`
	ShowCompleted *bool  `query:"show_completed"`
	Limit         int    `query:"limit" validate:"min=1,max=1000"`
}

// TaskResponse is the external representation. Field casing is fixed for
// client compatibility; updatedAt is deliberately not exposed.
type TaskResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	DueDate     *string   `json:"dueDate"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
}
