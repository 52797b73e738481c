package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"aria-assistant/internal/event"
	"aria-assistant/internal/model"
)

var testScope = model.Scope{UserID: "u1"}

func TestCreateEvent(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)

	t.Run("mirrors to calendar and stores the link", func(t *testing.T) {
		r := newMockRepository()
		cal := &mockCalendar{}
		uc := newTestUseCase(r, cal)

		out, err := uc.Create(ctx, testScope, event.CreateEventInput{
			Title:           "  team standup ",
			StartTime:       start,
			DurationMinutes: 30,
			Location:        "Room Alpha",
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if out.Event.Title != "team standup" {
			t.Errorf("title = %q", out.Event.Title)
		}
		if out.Event.CalendarEventID != "gcal-evt-1" || out.Event.CalendarLink == "" {
			t.Errorf("calendar mirror not stored: %+v", out.Event)
		}
		if len(cal.createCalls) != 1 {
			t.Fatalf("calendar calls = %d, want 1", len(cal.createCalls))
		}
		wantEnd := start.Add(30 * time.Minute)
		if !cal.createCalls[0].EndTime.Equal(wantEnd) {
			t.Errorf("calendar end = %v, want %v", cal.createCalls[0].EndTime, wantEnd)
		}
	})

	t.Run("persist failure never reaches the calendar", func(t *testing.T) {
		r := newMockRepository()
		r.failWith = errors.New("disk full")
		cal := &mockCalendar{}
		uc := newTestUseCase(r, cal)

		_, err := uc.Create(ctx, testScope, event.CreateEventInput{
			Title:     "team standup",
			StartTime: start,
		})
		if err == nil {
			t.Fatal("expected error")
		}
		if len(cal.createCalls) != 0 {
			t.Errorf("calendar create calls = %d, want 0 when the insert fails", len(cal.createCalls))
		}
	})

	t.Run("calendar failure is not fatal", func(t *testing.T) {
		r := newMockRepository()
		cal := &mockCalendar{failWith: errors.New("googleapi: 503")}
		uc := newTestUseCase(r, cal)

		out, err := uc.Create(ctx, testScope, event.CreateEventInput{
			Title:     "team standup",
			StartTime: start,
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if out.Event.ID == "" {
			t.Fatal("local event not persisted")
		}
		if out.Event.CalendarEventID != "" || out.Event.CalendarLink != "" {
			t.Errorf("expected empty calendar fields, got %+v", out.Event)
		}
	})

	t.Run("no calendar configured", func(t *testing.T) {
		r := newMockRepository()
		uc := newTestUseCase(r, nil)

		out, err := uc.Create(ctx, testScope, event.CreateEventInput{
			Title:     "team standup",
			StartTime: start,
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if out.Event.DurationMinutes != 60 {
			t.Errorf("default duration = %d, want 60", out.Event.DurationMinutes)
		}
	})

	t.Run("rejects empty title", func(t *testing.T) {
		r := newMockRepository()
		cal := &mockCalendar{}
		uc := newTestUseCase(r, cal)

		_, err := uc.Create(ctx, testScope, event.CreateEventInput{Title: "  ", StartTime: start})
		if !errors.Is(err, event.ErrTitleRequired) {
			t.Fatalf("err = %v, want ErrTitleRequired", err)
		}
		if len(cal.createCalls) != 0 || len(r.events) != 0 {
			t.Error("invalid input must not reach the calendar or the store")
		}
	})

	t.Run("rejects zero start time", func(t *testing.T) {
		uc := newTestUseCase(newMockRepository(), nil)

		_, err := uc.Create(ctx, testScope, event.CreateEventInput{Title: "x"})
		if !errors.Is(err, event.ErrStartTimeRequired) {
			t.Fatalf("err = %v, want ErrStartTimeRequired", err)
		}
	})
}

func TestListEventScopes(t *testing.T) {
	ctx := context.Background()
	r := newMockRepository()
	uc := newTestUseCase(r, nil)

	// Pinned clock: Wed May 1 2024 15:30 UTC.
	starts := []time.Time{
		time.Date(2024, 5, 1, 18, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 31, 9, 0, 0, 0, time.UTC),
	}
	for _, s := range starts {
		if _, err := uc.Create(ctx, testScope, event.CreateEventInput{Title: "e", StartTime: s}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	cases := []struct {
		scope string
		want  int
	}{
		{"today", 1},
		{"tomorrow", 1},
		{"week", 2},
		{"all", 3},
	}
	for _, tc := range cases {
		t.Run(tc.scope, func(t *testing.T) {
			out, err := uc.List(ctx, testScope, event.ListEventsInput{Scope: tc.scope})
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if out.Total != tc.want {
				t.Errorf("total = %d, want %d", out.Total, tc.want)
			}
		})
	}
}

func TestDetailAndDeleteEvent(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)

	t.Run("detail not found", func(t *testing.T) {
		uc := newTestUseCase(newMockRepository(), nil)
		_, err := uc.Detail(ctx, testScope, "nope")
		if !errors.Is(err, event.ErrEventNotFound) {
			t.Fatalf("err = %v, want ErrEventNotFound", err)
		}
	})

	t.Run("delete cleans up the calendar mirror", func(t *testing.T) {
		r := newMockRepository()
		cal := &mockCalendar{}
		uc := newTestUseCase(r, cal)

		out, err := uc.Create(ctx, testScope, event.CreateEventInput{Title: "e", StartTime: start})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if err := uc.Delete(ctx, testScope, out.Event.ID); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if len(cal.deleteCalls) != 1 || cal.deleteCalls[0] != "gcal-evt-1" {
			t.Errorf("calendar delete calls = %v", cal.deleteCalls)
		}
		if _, err := uc.Detail(ctx, testScope, out.Event.ID); !errors.Is(err, event.ErrEventNotFound) {
			t.Errorf("event still readable after delete")
		}
	})

	t.Run("delete skips calendar when event was never mirrored", func(t *testing.T) {
		r := newMockRepository()
		uc := newTestUseCase(r, nil)
		out, err := uc.Create(ctx, testScope, event.CreateEventInput{Title: "e", StartTime: start})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}

		cal := &mockCalendar{}
		uc.calendar = cal
		if err := uc.Delete(ctx, testScope, out.Event.ID); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if len(cal.deleteCalls) != 0 {
			t.Errorf("unexpected calendar delete calls: %v", cal.deleteCalls)
		}
	})

	t.Run("delete scoped to the owner", func(t *testing.T) {
		r := newMockRepository()
		uc := newTestUseCase(r, nil)
		out, err := uc.Create(ctx, testScope, event.CreateEventInput{Title: "e", StartTime: start})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}

		err = uc.Delete(ctx, model.Scope{UserID: "intruder"}, out.Event.ID)
		if !errors.Is(err, event.ErrEventNotFound) {
			t.Fatalf("err = %v, want ErrEventNotFound", err)
		}
	})
}
