package email

import (
	"context"

	"aria-assistant/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Send(ctx context.Context, sc model.Scope, input SendEmailInput) (SendEmailOutput, error)
}
