package sqlite

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	repo "aria-assistant/internal/event/repository"
	"aria-assistant/pkg/log"
)

func newTestRepository(t *testing.T) repo.Repository {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	r, err := New(db, log.NewNoopLogger())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

func TestCreateAndGetEvent(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()

	start := time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)
	created, err := r.CreateEvent(ctx, repo.CreateEventOptions{
		UserID:          "u1",
		Title:           "team standup",
		StartTime:       start,
		DurationMinutes: 30,
		Location:        "Room Alpha",
		CalendarEventID: "gcal-123",
		CalendarLink:    "https://calendar.google.com/event?eid=abc",
	})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated ID")
	}

	got, err := r.GetOneEvent(ctx, repo.GetOneEventOptions{ID: created.ID, UserID: "u1"})
	if err != nil {
		t.Fatalf("GetOneEvent: %v", err)
	}
	if got.Title != "team standup" || got.DurationMinutes != 30 || got.Location != "Room Alpha" {
		t.Errorf("unexpected event: %+v", got)
	}
	if !got.StartTime.Equal(start) {
		t.Errorf("start time = %v, want %v", got.StartTime, start)
	}
	if got.CalendarEventID != "gcal-123" {
		t.Errorf("calendar event id = %q", got.CalendarEventID)
	}
}

func TestGetOneEventNotFound(t *testing.T) {
	r := newTestRepository(t)

	got, err := r.GetOneEvent(context.Background(), repo.GetOneEventOptions{ID: "nope", UserID: "u1"})
	if err != nil {
		t.Fatalf("GetOneEvent: %v", err)
	}
	if got.ID != "" {
		t.Errorf("expected zero-value event, got %+v", got)
	}
}

func TestListEventsWindow(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()

	starts := []time.Time{
		time.Date(2024, 5, 1, 18, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC),
	}
	for i, s := range starts {
		if _, err := r.CreateEvent(ctx, repo.CreateEventOptions{
			UserID:          "u1",
			Title:           "event",
			StartTime:       s,
			DurationMinutes: 60,
		}); err != nil {
			t.Fatalf("CreateEvent %d: %v", i, err)
		}
	}
	// Another user's event must never leak into u1's listings.
	if _, err := r.CreateEvent(ctx, repo.CreateEventOptions{
		UserID:          "u2",
		Title:           "other",
		StartTime:       starts[0],
		DurationMinutes: 60,
	}); err != nil {
		t.Fatalf("CreateEvent other user: %v", err)
	}

	after := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	before := time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)

	events, total, err := r.ListEvents(ctx, repo.ListEventsOptions{
		UserID:      "u1",
		StartAfter:  &after,
		StartBefore: &before,
	})
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}
	if total != 1 || len(events) != 1 {
		t.Fatalf("total = %d, len = %d, want 1", total, len(events))
	}
	if !events[0].StartTime.Equal(starts[1]) {
		t.Errorf("wrong event in window: %+v", events[0])
	}

	all, total, err := r.ListEvents(ctx, repo.ListEventsOptions{UserID: "u1"})
	if err != nil {
		t.Fatalf("ListEvents all: %v", err)
	}
	if total != 3 {
		t.Errorf("total = %d, want 3", total)
	}
	for i := 1; i < len(all); i++ {
		if all[i].StartTime.Before(all[i-1].StartTime) {
			t.Errorf("events not ordered by start time")
		}
	}
}

func TestUpdateEventMirror(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()

	created, err := r.CreateEvent(ctx, repo.CreateEventOptions{
		UserID:          "u1",
		Title:           "team standup",
		StartTime:       time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC),
		DurationMinutes: 30,
	})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}

	if err := r.UpdateEventMirror(ctx, repo.UpdateEventMirrorOptions{
		ID:              created.ID,
		UserID:          "u1",
		CalendarEventID: "gcal-123",
		CalendarLink:    "https://calendar.google.com/event?eid=abc",
	}); err != nil {
		t.Fatalf("UpdateEventMirror: %v", err)
	}

	got, err := r.GetOneEvent(ctx, repo.GetOneEventOptions{ID: created.ID, UserID: "u1"})
	if err != nil {
		t.Fatalf("GetOneEvent: %v", err)
	}
	if got.CalendarEventID != "gcal-123" || got.CalendarLink == "" {
		t.Errorf("mirror not stored: %+v", got)
	}
	if got.Title != "team standup" || got.DurationMinutes != 30 {
		t.Errorf("unrelated fields changed: %+v", got)
	}
}

func TestDeleteEvent(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()

	created, err := r.CreateEvent(ctx, repo.CreateEventOptions{
		UserID:          "u1",
		Title:           "doomed",
		StartTime:       time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC),
		DurationMinutes: 60,
	})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}

	if err := r.DeleteEvent(ctx, "u1", created.ID); err != nil {
		t.Fatalf("DeleteEvent: %v", err)
	}

	got, err := r.GetOneEvent(ctx, repo.GetOneEventOptions{ID: created.ID})
	if err != nil {
		t.Fatalf("GetOneEvent: %v", err)
	}
	if got.ID != "" {
		t.Errorf("event still present after delete: %+v", got)
	}
}
