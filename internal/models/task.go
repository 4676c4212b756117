package models

import (
	"time"

	"github.com/julianstephens/lifelog-cli/internal/constants"
)

// Task represents a to-do item
type Task struct {
	ID          ID                     `json:"id"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Priority    constants.TaskPriority `json:"priority"`
	Status      constants.TaskStatus   `json:"status"`
	DueDate     *time.Time             `json:"due_date,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
	CompletedAt *time.Time             `json:"completed_at,omitempty"`
}

// SetStatus updates the status while keeping CompletedAt consistent:
// CompletedAt is set iff the status is completed.
func (t *Task) SetStatus(status constants.TaskStatus, now time.Time) {
	t.Status = status
	if status == constants.StatusCompleted {
		if t.CompletedAt == nil {
			t.CompletedAt = &now
		}
	} else {
		t.CompletedAt = nil
	}
}

// Toggle flips the task between completed and pending
func (t *Task) Toggle(now time.Time) {
	if t.Status == constants.StatusCompleted {
		t.SetStatus(constants.StatusPending, now)
	} else {
		t.SetStatus(constants.StatusCompleted, now)
	}
}
