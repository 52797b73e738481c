package chat

import "time"

// --- UseCase Inputs ---

type HandleInput struct {
	Message string
}

// --- UseCase Outputs ---

// ActionResult is the uniform outcome of handling one message. Every path
// through the router produces one: successful dispatches, clarification
// requests and collaborator failures alike.
type ActionResult struct {
	Success    bool    `json:"success"`
	Type       string  `json:"type"`
	Payload    any     `json:"payload,omitempty"`
	Message    string  `json:"message"`
	Confidence float64 `json:"confidence"`
}

type HandleOutput struct {
	Result ActionResult
}

// --- Payload DTOs ---

type TaskPayload struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Priority  string     `json:"priority"`
	Deadline  *time.Time `json:"deadline,omitempty"`
	Completed bool       `json:"completed"`
}

type TaskListPayload struct {
	Tasks []TaskPayload `json:"tasks"`
	Total int           `json:"total"`
}

type EventPayload struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	DurationMinutes int       `json:"duration_minutes"`
	Location        string    `json:"location,omitempty"`
	CalendarLink    string    `json:"calendar_link,omitempty"`
}

type EventListPayload struct {
	Events []EventPayload `json:"events"`
	Total  int            `json:"total"`
}

type EmailPayload struct {
	MessageID string `json:"message_id"`
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
}
