package email

// --- UseCase Inputs ---

type SendEmailInput struct {
	Recipient string
	Subject   string
	Body      string
}

// --- UseCase Outputs ---

type SendEmailOutput struct {
	MessageID string
	ThreadID  string
	Recipient string
	Subject   string
}
