package usecase

import (
	"aria-assistant/pkg/gmail"
	"aria-assistant/pkg/log"
)

// implUseCase is the private implementation of email.UseCase.
type implUseCase struct {
	mailer gmail.IMailer // nil when Gmail is not configured
	l      log.Logger
}

// New creates a new email UseCase implementation.
func New(mailer gmail.IMailer, l log.Logger) *implUseCase {
	return &implUseCase{
		mailer: mailer,
		l:      l,
	}
}
