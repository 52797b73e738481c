package task

import (
	"time"

	"aria-assistant/internal/model"
)

// --- UseCase Inputs ---

type CreateTaskInput struct {
	Title    string
	Priority model.Priority
	Deadline *time.Time
}

type ListTasksInput struct {
	// Scope is a named window: "today", "tomorrow", "week" or "all".
	Scope  string
	Limit  int
	Offset int
}

type UpdateTaskInput struct {
	ID        string
	Title     string
	Priority  model.Priority
	Deadline  *time.Time
	Completed *bool
}

// --- UseCase Outputs ---

type TaskOutput struct {
	Task model.Task
}

type ListTasksOutput struct {
	Tasks  []model.Task
	Total  int
	Limit  int
	Offset int
}
