package usecase

import (
	"context"
	"regexp"
	"strings"

	"aria-assistant/internal/email"
	"aria-assistant/internal/model"
	"aria-assistant/pkg/gmail"
)

var recipientRe = regexp.MustCompile(`^[\w.+-]+@[\w-]+(?:\.[\w-]+)+$`)

// Send validates the outgoing message and hands it to the mailer. There is
// exactly one send attempt per call, a failed send surfaces to the caller.
func (uc *implUseCase) Send(ctx context.Context, sc model.Scope, input email.SendEmailInput) (email.SendEmailOutput, error) {
	recipient := strings.TrimSpace(input.Recipient)
	if recipient == "" {
		return email.SendEmailOutput{}, email.ErrRecipientRequired
	}
	if !recipientRe.MatchString(recipient) {
		return email.SendEmailOutput{}, email.ErrInvalidRecipient
	}
	if strings.TrimSpace(input.Subject) == "" {
		return email.SendEmailOutput{}, email.ErrSubjectRequired
	}
	if strings.TrimSpace(input.Body) == "" {
		return email.SendEmailOutput{}, email.ErrBodyRequired
	}
	if uc.mailer == nil {
		return email.SendEmailOutput{}, email.ErrMailerDisabled
	}

	result, err := uc.mailer.Send(ctx, gmail.SendRequest{
		To:      recipient,
		Subject: input.Subject,
		Body:    input.Body,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Send mailer.Send: %v", err)
		return email.SendEmailOutput{}, err
	}

	uc.l.Infof(ctx, "uc.Send delivered message %s for user %s", result.MessageID, sc.UserID)
	return email.SendEmailOutput{
		MessageID: result.MessageID,
		ThreadID:  result.ThreadID,
		Recipient: recipient,
		Subject:   input.Subject,
	}, nil
}
