package usecase

import (
	"context"
	"strings"
	"time"

	"aria-assistant/internal/event"
	repo "aria-assistant/internal/event/repository"
	"aria-assistant/internal/model"
	"aria-assistant/pkg/gcalendar"
)

// Create persists a new event and mirrors it to Google Calendar when
// configured. The local row is written first so a failed insert never
// leaves an orphaned calendar event; mirror failures are logged, never
// fatal. The local event is the source of truth.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input event.CreateEventInput) (event.EventOutput, error) {
	if strings.TrimSpace(input.Title) == "" {
		return event.EventOutput{}, event.ErrTitleRequired
	}
	if input.StartTime.IsZero() {
		return event.EventOutput{}, event.ErrStartTimeRequired
	}
	duration := input.DurationMinutes
	if duration <= 0 {
		duration = 60
	}

	persisted, err := uc.repo.CreateEvent(ctx, repo.CreateEventOptions{
		UserID:          sc.UserID,
		Title:           strings.TrimSpace(input.Title),
		StartTime:       input.StartTime,
		DurationMinutes: duration,
		Location:        input.Location,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateEvent: %v", err)
		return event.EventOutput{}, err
	}

	if uc.calendar != nil {
		created, calErr := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
			CalendarID: uc.calendarID,
			Summary:    persisted.Title,
			Location:   persisted.Location,
			StartTime:  persisted.StartTime,
			EndTime:    persisted.StartTime.Add(time.Duration(duration) * time.Minute),
		})
		if calErr != nil {
			uc.l.Warnf(ctx, "uc.Create calendar mirror failed: %v", calErr)
		} else if updErr := uc.repo.UpdateEventMirror(ctx, repo.UpdateEventMirrorOptions{
			ID:              persisted.ID,
			UserID:          sc.UserID,
			CalendarEventID: created.ID,
			CalendarLink:    created.HtmlLink,
		}); updErr != nil {
			uc.l.Warnf(ctx, "uc.Create UpdateEventMirror: %v", updErr)
		} else {
			persisted.CalendarEventID = created.ID
			persisted.CalendarLink = created.HtmlLink
		}
	}

	return event.EventOutput{Event: persisted}, nil
}

// List returns the caller's events within the named scope window.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input event.ListEventsInput) (event.ListEventsOutput, error) {
	after, before := scopeWindow(uc.now().UTC(), input.Scope)

	limit := input.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	events, total, err := uc.repo.ListEvents(ctx, repo.ListEventsOptions{
		UserID:      sc.UserID,
		StartAfter:  after,
		StartBefore: before,
		Limit:       limit,
		Offset:      input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListEvents: %v", err)
		return event.ListEventsOutput{}, err
	}

	return event.ListEventsOutput{
		Events: events,
		Total:  total,
		Limit:  limit,
		Offset: input.Offset,
	}, nil
}

// Detail returns a single event owned by the caller.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (event.EventOutput, error) {
	found, err := uc.repo.GetOneEvent(ctx, repo.GetOneEventOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneEvent: %v", err)
		return event.EventOutput{}, err
	}
	if found.ID == "" {
		return event.EventOutput{}, event.ErrEventNotFound
	}
	return event.EventOutput{Event: found}, nil
}

// Delete removes the caller's event, cleaning up the calendar mirror when
// one exists.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	found, err := uc.repo.GetOneEvent(ctx, repo.GetOneEventOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneEvent: %v", err)
		return err
	}
	if found.ID == "" {
		return event.ErrEventNotFound
	}

	if err := uc.repo.DeleteEvent(ctx, sc.UserID, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteEvent: %v", err)
		return err
	}

	if uc.calendar != nil && found.CalendarEventID != "" {
		if err := uc.calendar.DeleteEvent(ctx, uc.calendarID, found.CalendarEventID); err != nil {
			uc.l.Warnf(ctx, "uc.Delete calendar cleanup failed: %v", err)
		}
	}
	return nil
}

// scopeWindow maps a named scope to a half-open start-time window.
// Unknown scopes (including "all") apply no bounds.
func scopeWindow(now time.Time, scope string) (after, before *time.Time) {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch scope {
	case "today":
		end := startOfDay.AddDate(0, 0, 1)
		return &startOfDay, &end
	case "tomorrow":
		start := startOfDay.AddDate(0, 0, 1)
		end := startOfDay.AddDate(0, 0, 2)
		return &start, &end
	case "week":
		end := startOfDay.AddDate(0, 0, 7)
		return &startOfDay, &end
	default:
		return nil, nil
	}
}
