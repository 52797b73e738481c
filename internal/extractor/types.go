package extractor

import (
	"time"

	"aria-assistant/internal/model"
	"aria-assistant/internal/router"
)

// Entities is the partial mapping of structured fields pulled out of an
// utterance. Only fields relevant to the classified intent are populated.
type Entities struct {
	Title           string         `json:"title,omitempty"`
	Priority        model.Priority `json:"priority,omitempty"`
	Deadline        *time.Time     `json:"deadline,omitempty"`
	StartTime       *time.Time     `json:"start_time,omitempty"`
	DurationMinutes int            `json:"duration_minutes,omitempty"`
	Location        string         `json:"location,omitempty"`
	Recipient       string         `json:"recipient,omitempty"`
	Subject         string         `json:"subject,omitempty"`
	Body            string         `json:"body,omitempty"`
	QueryScope      string         `json:"query_scope,omitempty"`
}

// Field names, as used in clarification messages and LLM fill requests.
const (
	FieldTitle     = "title"
	FieldStartTime = "start_time"
	FieldRecipient = "recipient"
	FieldSubject   = "subject"
	FieldBody      = "body"
)

// RequiredFields returns the required-field contract for an intent.
func RequiredFields(intent router.Intent) []string {
	switch intent {
	case router.IntentCreateTask:
		return []string{FieldTitle}
	case router.IntentCreateEvent:
		return []string{FieldTitle, FieldStartTime}
	case router.IntentSendEmail:
		return []string{FieldRecipient, FieldSubject, FieldBody}
	default:
		return nil
	}
}

// Missing returns the required fields the entities do not carry yet.
func (e Entities) Missing(intent router.Intent) []string {
	var missing []string
	for _, field := range RequiredFields(intent) {
		switch field {
		case FieldTitle:
			if e.Title == "" {
				missing = append(missing, field)
			}
		case FieldStartTime:
			if e.StartTime == nil {
				missing = append(missing, field)
			}
		case FieldRecipient:
			if e.Recipient == "" {
				missing = append(missing, field)
			}
		case FieldSubject:
			if e.Subject == "" {
				missing = append(missing, field)
			}
		case FieldBody:
			if e.Body == "" {
				missing = append(missing, field)
			}
		}
	}
	return missing
}
