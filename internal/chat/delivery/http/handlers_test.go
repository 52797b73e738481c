package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"aria-assistant/config"
	"aria-assistant/internal/chat"
	"aria-assistant/internal/middleware"
	"aria-assistant/internal/model"
	"aria-assistant/pkg/log"
	"aria-assistant/pkg/response"
)

func middlewareConfig() config.RateLimitConfig {
	return config.RateLimitConfig{ChatPerMinute: 600, Burst: 100}
}

func tightRateConfig() config.RateLimitConfig {
	return config.RateLimitConfig{ChatPerMinute: 1, Burst: 1}
}

type mockUseCase struct {
	output chat.HandleOutput
	err    error
	scopes []model.Scope
}

func (m *mockUseCase) Handle(_ context.Context, sc model.Scope, _ chat.HandleInput) (chat.HandleOutput, error) {
	m.scopes = append(m.scopes, sc)
	return m.output, m.err
}

func newTestRouter(uc chat.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := middleware.New(log.NewNoopLogger(), middlewareConfig())
	RegisterRoutes(r.Group("/api/v1"), New(log.NewNoopLogger(), uc), mw)
	return r
}

func TestHandleEndpoint(t *testing.T) {
	t.Run("returns the action result", func(t *testing.T) {
		uc := &mockUseCase{output: chat.HandleOutput{Result: chat.ActionResult{
			Success:    true,
			Type:       "CREATE_TASK",
			Message:    `Created task "review budget".`,
			Confidence: 0.7,
		}}}
		r := newTestRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(`{"message":"Create a task to review budget"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", "u1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}

		var resp response.Resp
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		data, _ := resp.Data.(map[string]any)
		if data["action"] != "CREATE_TASK" {
			t.Errorf("action = %v", data["action"])
		}
		if len(uc.scopes) != 1 || uc.scopes[0].UserID != "u1" {
			t.Errorf("scopes = %+v", uc.scopes)
		}
	})

	t.Run("missing message is a bad request", func(t *testing.T) {
		uc := &mockUseCase{}
		r := newTestRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
		if len(uc.scopes) != 0 {
			t.Error("usecase must not run for an invalid body")
		}
	})

	t.Run("anonymous caller gets the default scope", func(t *testing.T) {
		uc := &mockUseCase{output: chat.HandleOutput{Result: chat.ActionResult{Type: "UNKNOWN"}}}
		r := newTestRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(`{"message":"hi"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		if len(uc.scopes) != 1 || uc.scopes[0].UserID != "anonymous" {
			t.Errorf("scopes = %+v", uc.scopes)
		}
	})
}

func TestHandleEndpointRateLimit(t *testing.T) {
	uc := &mockUseCase{output: chat.HandleOutput{Result: chat.ActionResult{Type: "UNKNOWN"}}}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := middleware.New(log.NewNoopLogger(), tightRateConfig())
	RegisterRoutes(r.Group("/api/v1"), New(log.NewNoopLogger(), uc), mw)

	var last int
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(`{"message":"hi"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		last = w.Code
	}
	if last != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429 after burst exhausted", last)
	}
}
