package models

import (
	"time"
)

// Priority values accepted on the validation boundary. The database does not
// enforce membership.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Status values. Transitions are unrestricted except for the completed
// coupling applied during update.
const (
	StatusOpen       = "open"
	StatusInProgress = "in_progress"
	StatusDone       = "done"
)

type Task struct {
	ID          uint       `gorm:"primaryKey;autoIncrement"`
	Title       string     `gorm:"size:255;not null"`
	Description string     `gorm:"type:text;not null;default:''"`
	Priority    string     `gorm:"size:20;not null;default:'medium'"`
	Status      string     `gorm:"size:20;not null;default:'open'"`
	DueDate     *time.Time `gorm:"type:date"`
	Completed   bool       `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Task) TableName() string {
	return "tasks"
}
