package gmail_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"aria-assistant/pkg/gmail"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, ts *httptest.Server) *gmail.Client {
	t.Helper()
	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}
	client, err := gmail.NewClientFromHTTP(context.Background(), tsClient)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

func TestGmailClient(t *testing.T) {
	t.Run("Send email", func(t *testing.T) {
		var gotRaw string
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.HasSuffix(r.URL.Path, "/messages/send") && r.Method == http.MethodPost {
				body, _ := io.ReadAll(r.Body)
				var msg struct {
					Raw string `json:"raw"`
				}
				json.Unmarshal(body, &msg)
				gotRaw = msg.Raw

				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{"id": "msg-123", "threadId": "thread-456"}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}))
		defer ts.Close()

		client := newTestClient(t, ts)
		result, err := client.Send(context.Background(), gmail.SendRequest{
			To:      "alice@example.com",
			Subject: "Quarterly report",
			Body:    "Please find the numbers attached.",
		})
		if err != nil {
			t.Fatalf("failed to send email: %v", err)
		}
		if result.MessageID != "msg-123" {
			t.Errorf("unexpected message id: %s", result.MessageID)
		}
		if result.ThreadID != "thread-456" {
			t.Errorf("unexpected thread id: %s", result.ThreadID)
		}

		decoded, err := base64.URLEncoding.DecodeString(gotRaw)
		if err != nil {
			t.Fatalf("raw message is not url-safe base64: %v", err)
		}
		text := string(decoded)
		if !strings.Contains(text, "To: alice@example.com\r\n") {
			t.Errorf("missing To header in %q", text)
		}
		if !strings.Contains(text, "Subject: Quarterly report\r\n") {
			t.Errorf("missing Subject header in %q", text)
		}
		if !strings.HasSuffix(text, "\r\n\r\nPlease find the numbers attached.") {
			t.Errorf("body not separated by blank line in %q", text)
		}
	})

	t.Run("Send without recipient", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Errorf("no API call expected")
		}))
		defer ts.Close()

		client := newTestClient(t, ts)
		_, err := client.Send(context.Background(), gmail.SendRequest{Subject: "no recipient"})
		if err == nil {
			t.Fatalf("expected error for missing recipient")
		}
	})

	t.Run("Send API error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"error": {"code": 403, "message": "insufficient scope"}}`))
		}))
		defer ts.Close()

		client := newTestClient(t, ts)
		_, err := client.Send(context.Background(), gmail.SendRequest{To: "bob@example.com"})
		if err == nil {
			t.Fatalf("expected send error")
		}
	})
}
