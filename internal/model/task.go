package model

import "time"

// Priority is the urgency level of a task.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

// ParsePriority maps a raw string to a Priority, defaulting to MEDIUM.
func ParsePriority(s string) Priority {
	switch Priority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return Priority(s)
	default:
		return PriorityMedium
	}
}

// Task represents a task owned by a user.
type Task struct {
	ID        string
	UserID    string
	Title     string
	Priority  Priority
	Deadline  *time.Time
	Completed bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
