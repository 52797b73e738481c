package http

import "aria-assistant/internal/email"

// --- Request DTOs ---

type sendReq struct {
	Recipient string `json:"recipient" binding:"required,email"`
	Subject   string `json:"subject"   binding:"required,min=1,max=255"`
	Body      string `json:"body"      binding:"required,min=1"`
}

func (r sendReq) toInput() email.SendEmailInput {
	return email.SendEmailInput{
		Recipient: r.Recipient,
		Subject:   r.Subject,
		Body:      r.Body,
	}
}

// --- Response DTOs ---

type sendResp struct {
	MessageID string `json:"message_id"`
	ThreadID  string `json:"thread_id,omitempty"`
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
}

func (h *handler) newSendResp(out email.SendEmailOutput) sendResp {
	return sendResp{
		MessageID: out.MessageID,
		ThreadID:  out.ThreadID,
		Recipient: out.Recipient,
		Subject:   out.Subject,
	}
}
