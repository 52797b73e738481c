package extractor

import (
	"context"
	"testing"
	"time"

	"aria-assistant/internal/model"
	"aria-assistant/internal/router"
	"aria-assistant/pkg/llmprovider"
	"aria-assistant/pkg/log"
)

type mockLLM struct {
	response string
	calls    int
}

func (m *mockLLM) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.calls++
	return &llmprovider.Response{Content: llmprovider.Message{Role: "assistant", Text: m.response}}, nil
}

func newExtractor(t *testing.T, llm router.LLM) *RuleExtractor {
	t.Helper()
	e, err := New(Config{Timezone: "UTC", DefaultDurationMinutes: 60}, llm, log.NewNoopLogger())
	if err != nil {
		t.Fatalf("failed to create extractor: %v", err)
	}
	// Wednesday, May 1, 2024
	e.now = func() time.Time { return time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) }
	return e
}

func TestExtractCreateTask(t *testing.T) {
	e := newExtractor(t, nil)

	t.Run("Title priority and deadline", func(t *testing.T) {
		ent, err := e.Extract(context.Background(), "Create a high priority task to review budget by Friday", router.IntentCreateTask)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ent.Title != "review budget" {
			t.Errorf("got title %q, want %q", ent.Title, "review budget")
		}
		if ent.Priority != model.PriorityHigh {
			t.Errorf("got priority %s, want HIGH", ent.Priority)
		}
		if ent.Deadline == nil {
			t.Fatalf("expected a deadline")
		}
		want := time.Date(2024, 5, 3, 23, 59, 59, 0, time.UTC)
		if !ent.Deadline.Equal(want) {
			t.Errorf("got deadline %v, want %v", ent.Deadline, want)
		}
	})

	t.Run("Priority keyword mapping", func(t *testing.T) {
		tests := []struct {
			utterance string
			want      model.Priority
		}{
			{"Create a task to fix the server asap", model.PriorityUrgent},
			{"Add a task to patch the urgent security hole", model.PriorityUrgent},
			{"Create an important task to call the bank", model.PriorityHigh},
			{"Add a low priority task to tidy the desk", model.PriorityLow},
			{"Remind me to water the plants whenever", model.PriorityLow},
			{"Create a task to buy groceries", model.PriorityMedium},
		}
		for _, tt := range tests {
			ent, err := e.Extract(context.Background(), tt.utterance, router.IntentCreateTask)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ent.Priority != tt.want {
				t.Errorf("%q: got priority %s, want %s", tt.utterance, ent.Priority, tt.want)
			}
		}
	})

	t.Run("Explicit title marker", func(t *testing.T) {
		ent, err := e.Extract(context.Background(), `Add a task called "Quarterly tax filing" for next monday`, router.IntentCreateTask)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ent.Title != "Quarterly tax filing" {
			t.Errorf("got title %q, want %q", ent.Title, "Quarterly tax filing")
		}
	})

	t.Run("No deadline", func(t *testing.T) {
		ent, err := e.Extract(context.Background(), "Create a task to buy groceries", router.IntentCreateTask)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ent.Deadline != nil {
			t.Errorf("expected no deadline, got %v", ent.Deadline)
		}
	})
}

func TestExtractCreateEvent(t *testing.T) {
	e := newExtractor(t, nil)

	t.Run("Start time and duration", func(t *testing.T) {
		ent, err := e.Extract(context.Background(), "Schedule a team standup tomorrow at 9 AM for 30 minutes", router.IntentCreateEvent)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ent.Title != "team standup" {
			t.Errorf("got title %q, want %q", ent.Title, "team standup")
		}
		if ent.StartTime == nil {
			t.Fatalf("expected a start time")
		}
		want := time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)
		if !ent.StartTime.Equal(want) {
			t.Errorf("got start %v, want %v", ent.StartTime, want)
		}
		if ent.DurationMinutes != 30 {
			t.Errorf("got duration %d, want 30", ent.DurationMinutes)
		}
	})

	t.Run("Default duration", func(t *testing.T) {
		ent, err := e.Extract(context.Background(), "Schedule a planning session tomorrow at 2 pm", router.IntentCreateEvent)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ent.DurationMinutes != 60 {
			t.Errorf("got duration %d, want default 60", ent.DurationMinutes)
		}
	})

	t.Run("Duration in hours", func(t *testing.T) {
		ent, err := e.Extract(context.Background(), "Book a workshop tomorrow at 10 am for 2 hours", router.IntentCreateEvent)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ent.DurationMinutes != 120 {
			t.Errorf("got duration %d, want 120", ent.DurationMinutes)
		}
	})

	t.Run("For an hour", func(t *testing.T) {
		ent, err := e.Extract(context.Background(), "Schedule a 1:1 tomorrow at 11 am for an hour", router.IntentCreateEvent)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ent.DurationMinutes != 60 {
			t.Errorf("got duration %d, want 60", ent.DurationMinutes)
		}
	})

	t.Run("Location", func(t *testing.T) {
		ent, err := e.Extract(context.Background(), "Schedule a sync in Room Alpha tomorrow at 3 pm", router.IntentCreateEvent)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ent.Location != "Room Alpha" {
			t.Errorf("got location %q, want %q", ent.Location, "Room Alpha")
		}
	})
}

func TestExtractSendEmail(t *testing.T) {
	e := newExtractor(t, nil)

	t.Run("Recipient and subject without body", func(t *testing.T) {
		ent, err := e.Extract(context.Background(), "Send an email to ops@example.com about downtime", router.IntentSendEmail)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ent.Recipient != "ops@example.com" {
			t.Errorf("got recipient %q, want ops@example.com", ent.Recipient)
		}
		if ent.Subject != "downtime" {
			t.Errorf("got subject %q, want downtime", ent.Subject)
		}
		missing := ent.Missing(router.IntentSendEmail)
		if len(missing) != 1 || missing[0] != FieldBody {
			t.Errorf("got missing %v, want [body]", missing)
		}
	})

	t.Run("Full email", func(t *testing.T) {
		ent, err := e.Extract(context.Background(), "Email to alice@example.com about the launch saying we ship on Monday", router.IntentSendEmail)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ent.Subject != "the launch" {
			t.Errorf("got subject %q, want %q", ent.Subject, "the launch")
		}
		if ent.Body != "we ship on Monday" {
			t.Errorf("got body %q, want %q", ent.Body, "we ship on Monday")
		}
		if len(ent.Missing(router.IntentSendEmail)) != 0 {
			t.Errorf("expected no missing fields, got %v", ent.Missing(router.IntentSendEmail))
		}
	})
}

func TestExtractQueryScope(t *testing.T) {
	e := newExtractor(t, nil)

	tests := []struct {
		utterance string
		intent    router.Intent
		want      string
	}{
		{"Show me my tasks for today", router.IntentQueryTasks, ScopeToday},
		{"What's on my calendar tomorrow", router.IntentQueryEvents, ScopeTomorrow},
		{"Show me my schedule this week", router.IntentQueryEvents, ScopeWeek},
		{"List all tasks", router.IntentQueryTasks, ScopeAll},
		{"Upcoming events", router.IntentQueryEvents, ScopeWeek},
	}

	for _, tt := range tests {
		ent, err := e.Extract(context.Background(), tt.utterance, tt.intent)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ent.QueryScope != tt.want {
			t.Errorf("%q: got scope %q, want %q", tt.utterance, ent.QueryScope, tt.want)
		}
	}
}

func TestLLMFill(t *testing.T) {
	t.Run("Fills only requested fields", func(t *testing.T) {
		llm := &mockLLM{response: `{"body": "Service will be down 10pm-11pm.", "recipient": "evil@example.com", "intent": "HACKED"}`}
		e := newExtractor(t, llm)

		ent, err := e.Extract(context.Background(), "Send an email to ops@example.com about downtime", router.IntentSendEmail)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if llm.calls != 1 {
			t.Errorf("expected exactly one LLM call, got %d", llm.calls)
		}
		if ent.Body != "Service will be down 10pm-11pm." {
			t.Errorf("got body %q", ent.Body)
		}
		// recipient was found by rules, so the LLM must not override it
		if ent.Recipient != "ops@example.com" {
			t.Errorf("got recipient %q, want ops@example.com", ent.Recipient)
		}
	})

	t.Run("Invalid JSON leaves entities untouched", func(t *testing.T) {
		llm := &mockLLM{response: "sure, the body could be something like..."}
		e := newExtractor(t, llm)

		ent, err := e.Extract(context.Background(), "Send an email to ops@example.com about downtime", router.IntentSendEmail)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ent.Body != "" {
			t.Errorf("expected empty body, got %q", ent.Body)
		}
	})

	t.Run("Start time parsed from RFC 3339", func(t *testing.T) {
		llm := &mockLLM{response: `{"title": "kickoff", "start_time": "2024-05-06T10:00:00Z"}`}
		e := newExtractor(t, llm)

		ent, err := e.Extract(context.Background(), "something vague with no parseable time", router.IntentCreateEvent)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ent.StartTime == nil {
			t.Fatalf("expected LLM-provided start time")
		}
		want := time.Date(2024, 5, 6, 10, 0, 0, 0, time.UTC)
		if !ent.StartTime.Equal(want) {
			t.Errorf("got start %v, want %v", ent.StartTime, want)
		}
	})

	t.Run("No LLM call when nothing is missing", func(t *testing.T) {
		llm := &mockLLM{response: `{}`}
		e := newExtractor(t, llm)

		_, err := e.Extract(context.Background(), "Email to alice@example.com about the launch saying we ship on Monday", router.IntentSendEmail)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if llm.calls != 0 {
			t.Errorf("expected no LLM calls, got %d", llm.calls)
		}
	})
}
