package event

import (
	"time"

	"aria-assistant/internal/model"
)

// --- UseCase Inputs ---

type CreateEventInput struct {
	Title           string
	StartTime       time.Time
	DurationMinutes int
	Location        string
}

type ListEventsInput struct {
	// Scope is a named window: "today", "tomorrow", "week" or "all".
	Scope  string
	Limit  int
	Offset int
}

// --- UseCase Outputs ---

type EventOutput struct {
	Event model.Event
}

type ListEventsOutput struct {
	Events []model.Event
	Total  int
	Limit  int
	Offset int
}
