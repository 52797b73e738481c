package chat

import (
	"context"

	"aria-assistant/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Handle routes one natural-language message through classification,
	// extraction and dispatch, returning a structured action result.
	Handle(ctx context.Context, sc model.Scope, input HandleInput) (HandleOutput, error)
}
