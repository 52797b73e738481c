package model

import "time"

// Event represents a calendar event owned by a user.
type Event struct {
	ID              string
	UserID          string
	Title           string
	StartTime       time.Time
	DurationMinutes int
	Location        string
	CalendarEventID string // Google Calendar event ID when mirrored, empty otherwise
	CalendarLink    string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// EndTime returns the event end derived from start and duration.
func (e Event) EndTime() time.Time {
	return e.StartTime.Add(time.Duration(e.DurationMinutes) * time.Minute)
}
