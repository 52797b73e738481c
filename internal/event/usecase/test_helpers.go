package usecase

import (
	"context"
	"errors"
	"time"

	repo "aria-assistant/internal/event/repository"
	"aria-assistant/internal/model"
	"aria-assistant/pkg/gcalendar"
	"aria-assistant/pkg/log"
)

// mockRepository is a map-backed Repository used by the usecase tests.
type mockRepository struct {
	events   map[string]model.Event
	seq      int
	failWith error
}

func newMockRepository() *mockRepository {
	return &mockRepository{events: make(map[string]model.Event)}
}

func (m *mockRepository) CreateEvent(_ context.Context, opt repo.CreateEventOptions) (model.Event, error) {
	if m.failWith != nil {
		return model.Event{}, m.failWith
	}
	m.seq++
	now := time.Now().UTC()
	e := model.Event{
		ID:              string(rune('a' + m.seq - 1)),
		UserID:          opt.UserID,
		Title:           opt.Title,
		StartTime:       opt.StartTime,
		DurationMinutes: opt.DurationMinutes,
		Location:        opt.Location,
		CalendarEventID: opt.CalendarEventID,
		CalendarLink:    opt.CalendarLink,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	m.events[e.ID] = e
	return e, nil
}

func (m *mockRepository) GetOneEvent(_ context.Context, opt repo.GetOneEventOptions) (model.Event, error) {
	if m.failWith != nil {
		return model.Event{}, m.failWith
	}
	e, ok := m.events[opt.ID]
	if !ok || (opt.UserID != "" && e.UserID != opt.UserID) {
		return model.Event{}, nil
	}
	return e, nil
}

func (m *mockRepository) ListEvents(_ context.Context, opt repo.ListEventsOptions) ([]model.Event, int, error) {
	if m.failWith != nil {
		return nil, 0, m.failWith
	}
	var out []model.Event
	for _, e := range m.events {
		if e.UserID != opt.UserID {
			continue
		}
		if opt.StartAfter != nil && e.StartTime.Before(*opt.StartAfter) {
			continue
		}
		if opt.StartBefore != nil && !e.StartTime.Before(*opt.StartBefore) {
			continue
		}
		out = append(out, e)
	}
	return out, len(out), nil
}

func (m *mockRepository) UpdateEventMirror(_ context.Context, opt repo.UpdateEventMirrorOptions) error {
	if m.failWith != nil {
		return m.failWith
	}
	e, ok := m.events[opt.ID]
	if !ok || e.UserID != opt.UserID {
		return nil
	}
	e.CalendarEventID = opt.CalendarEventID
	e.CalendarLink = opt.CalendarLink
	m.events[opt.ID] = e
	return nil
}

func (m *mockRepository) DeleteEvent(_ context.Context, userID, id string) error {
	if m.failWith != nil {
		return m.failWith
	}
	delete(m.events, id)
	return nil
}

// mockCalendar records calls and can be told to fail.
type mockCalendar struct {
	createCalls []gcalendar.CreateEventRequest
	deleteCalls []string
	failWith    error
}

func (m *mockCalendar) CreateEvent(_ context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.createCalls = append(m.createCalls, req)
	if m.failWith != nil {
		return nil, m.failWith
	}
	return &gcalendar.Event{
		ID:        "gcal-evt-1",
		Summary:   req.Summary,
		HtmlLink:  "https://calendar.google.com/event?eid=mock",
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}, nil
}

func (m *mockCalendar) ListEvents(_ context.Context, _ gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	return nil, errors.New("not implemented")
}

func (m *mockCalendar) DeleteEvent(_ context.Context, _, eventID string) error {
	m.deleteCalls = append(m.deleteCalls, eventID)
	return m.failWith
}

func newTestUseCase(r repo.Repository, cal gcalendar.ICalendar) *implUseCase {
	uc := New(r, cal, "primary", log.NewNoopLogger())
	uc.now = func() time.Time {
		return time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)
	}
	return uc
}
