package event

import (
	"context"

	"aria-assistant/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Event CRUD
	Create(ctx context.Context, sc model.Scope, input CreateEventInput) (EventOutput, error)
	List(ctx context.Context, sc model.Scope, input ListEventsInput) (ListEventsOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (EventOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
}
