package gmail

import "context"

// IMailer defines the interface for sending email.
type IMailer interface {
	Send(ctx context.Context, req SendRequest) (*SendResult, error)
}

// SendRequest is the input for sending an email.
type SendRequest struct {
	To      string
	Subject string
	Body    string
}

// SendResult holds the identifiers of a sent message.
type SendResult struct {
	MessageID string
	ThreadID  string
}
