package usecase

import (
	"context"
	"errors"
	"testing"

	"aria-assistant/internal/email"
	"aria-assistant/internal/model"
	"aria-assistant/pkg/gmail"
	"aria-assistant/pkg/log"
)

type mockMailer struct {
	calls    []gmail.SendRequest
	failWith error
}

func (m *mockMailer) Send(_ context.Context, req gmail.SendRequest) (*gmail.SendResult, error) {
	m.calls = append(m.calls, req)
	if m.failWith != nil {
		return nil, m.failWith
	}
	return &gmail.SendResult{MessageID: "msg-1", ThreadID: "thr-1"}, nil
}

func TestSend(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	valid := email.SendEmailInput{
		Recipient: "john@example.com",
		Subject:   "the launch",
		Body:      "we ship on Monday",
	}

	t.Run("delivers a valid message", func(t *testing.T) {
		m := &mockMailer{}
		uc := New(m, log.NewNoopLogger())

		out, err := uc.Send(ctx, sc, valid)
		if err != nil {
			t.Fatalf("Send: %v", err)
		}
		if out.MessageID != "msg-1" || out.Recipient != "john@example.com" {
			t.Errorf("unexpected output: %+v", out)
		}
		if len(m.calls) != 1 {
			t.Fatalf("mailer calls = %d, want 1", len(m.calls))
		}
		if m.calls[0].To != "john@example.com" || m.calls[0].Body != "we ship on Monday" {
			t.Errorf("unexpected request: %+v", m.calls[0])
		}
	})

	t.Run("validation failures never reach the mailer", func(t *testing.T) {
		cases := []struct {
			name    string
			input   email.SendEmailInput
			wantErr error
		}{
			{"missing recipient", email.SendEmailInput{Subject: "s", Body: "b"}, email.ErrRecipientRequired},
			{"bad recipient", email.SendEmailInput{Recipient: "not-an-address", Subject: "s", Body: "b"}, email.ErrInvalidRecipient},
			{"missing subject", email.SendEmailInput{Recipient: "a@b.com", Body: "b"}, email.ErrSubjectRequired},
			{"missing body", email.SendEmailInput{Recipient: "a@b.com", Subject: "s"}, email.ErrBodyRequired},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				m := &mockMailer{}
				uc := New(m, log.NewNoopLogger())

				_, err := uc.Send(ctx, sc, tc.input)
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("err = %v, want %v", err, tc.wantErr)
				}
				if len(m.calls) != 0 {
					t.Error("mailer was called for invalid input")
				}
			})
		}
	})

	t.Run("mailer not configured", func(t *testing.T) {
		uc := New(nil, log.NewNoopLogger())
		_, err := uc.Send(ctx, sc, valid)
		if !errors.Is(err, email.ErrMailerDisabled) {
			t.Fatalf("err = %v, want ErrMailerDisabled", err)
		}
	})

	t.Run("send failure surfaces without retry", func(t *testing.T) {
		m := &mockMailer{failWith: errors.New("googleapi: 403")}
		uc := New(m, log.NewNoopLogger())

		_, err := uc.Send(ctx, sc, valid)
		if err == nil {
			t.Fatal("expected error")
		}
		if len(m.calls) != 1 {
			t.Errorf("mailer calls = %d, want exactly 1", len(m.calls))
		}
	})
}
