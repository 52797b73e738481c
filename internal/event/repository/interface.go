package repository

import (
	"context"

	"aria-assistant/internal/model"
)

// Repository is the composed interface for the event domain data store.
type Repository interface {
	EventRepository
}

// EventRepository defines all data access methods for the Event entity.
type EventRepository interface {
	CreateEvent(ctx context.Context, opt CreateEventOptions) (model.Event, error)
	GetOneEvent(ctx context.Context, opt GetOneEventOptions) (model.Event, error)
	ListEvents(ctx context.Context, opt ListEventsOptions) ([]model.Event, int, error)
	UpdateEventMirror(ctx context.Context, opt UpdateEventMirrorOptions) error
	DeleteEvent(ctx context.Context, userID, id string) error
}
