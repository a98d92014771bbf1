package repositories

import (
	"context"
	"errors"

	"taskstore-api/domain/models"
)

// ErrTaskNotFound is returned when an id does not match any stored task.
var ErrTaskNotFound = errors.New("task not found")

// TaskFilter is a conjunctive filter. Query matches title OR description as a
// case-insensitive substring; Status and Priority are exact-match when set.
type TaskFilter struct {
	Query         string
	Status        string
	Priority      string
	ShowCompleted bool
	Limit         int
}

type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id uint) (*models.Task, error)
	List(ctx context.Context, filter TaskFilter) ([]*models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id uint) error
	Ping(ctx context.Context) error
}
