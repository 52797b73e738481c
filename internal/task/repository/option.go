package repository

import (
	"time"

	"aria-assistant/internal/model"
)

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	UserID   string
	Title    string
	Priority model.Priority
	Deadline *time.Time
}

// GetOneTaskOptions holds filter parameters for fetching a single Task.
// All non-empty fields are applied as AND conditions.
type GetOneTaskOptions struct {
	ID     string
	UserID string
}

// ListTasksOptions holds filter and pagination parameters for listing Tasks.
// Deadline bounds are applied only when non-nil.
type ListTasksOptions struct {
	UserID         string
	DeadlineAfter  *time.Time
	DeadlineBefore *time.Time
	Limit          int
	Offset         int
}

// UpdateTaskOptions holds parameters for updating an existing Task.
// Zero-value fields are left untouched; Completed applies when non-nil.
type UpdateTaskOptions struct {
	ID        string
	UserID    string
	Title     string
	Priority  model.Priority
	Deadline  *time.Time
	Completed *bool
}
