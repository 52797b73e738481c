package repository

import "time"

// CreateEventOptions holds parameters for inserting a new Event.
type CreateEventOptions struct {
	UserID          string
	Title           string
	StartTime       time.Time
	DurationMinutes int
	Location        string
	CalendarEventID string
	CalendarLink    string
}

// GetOneEventOptions holds filter parameters for fetching a single Event.
// All non-empty fields are applied as AND conditions.
type GetOneEventOptions struct {
	ID     string
	UserID string
}

// UpdateEventMirrorOptions holds parameters for attaching the Google Calendar
// mirror to an already-persisted Event.
type UpdateEventMirrorOptions struct {
	ID              string
	UserID          string
	CalendarEventID string
	CalendarLink    string
}

// ListEventsOptions holds filter and pagination parameters for listing Events.
// Start bounds are applied only when non-nil.
type ListEventsOptions struct {
	UserID      string
	StartAfter  *time.Time
	StartBefore *time.Time
	Limit       int
	Offset      int
}
