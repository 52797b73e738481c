package email

import "errors"

var (
	ErrRecipientRequired = errors.New("recipient is required")
	ErrInvalidRecipient  = errors.New("recipient is not a valid email address")
	ErrSubjectRequired   = errors.New("subject is required")
	ErrBodyRequired      = errors.New("body is required")
	ErrMailerDisabled    = errors.New("email sending is not configured")
)
