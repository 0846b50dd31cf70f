package models

import (
	"time"

	"github.com/google/uuid"
)

// Task status constants
const (
	TaskPending = "pending"
	TaskDone    = "done"
)

// Task represents one readiness task in a category group.
type Task struct {
	ID             uuid.UUID  `json:"id"`
	OrganizationID uuid.UUID  `json:"organization_id"`
	Category       string     `json:"category"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Status         string     `json:"status"` // pending, done
	Weight         int        `json:"weight"` // relative contribution to the category score
	Position       int        `json:"position"`
	CompletedBy    *uuid.UUID `json:"completed_by,omitempty"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// IsDone returns true if the task has been completed.
func (t *Task) IsDone() bool {
	return t.Status == TaskDone
}

// TaskGroup is a category of tasks with completion counts, as rendered in the
// task list view.
type TaskGroup struct {
	Category string `json:"category"`
	Tasks    []Task `json:"tasks"`
	Done     int    `json:"done"`
	Pending  int    `json:"pending"`
}
