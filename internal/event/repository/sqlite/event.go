package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	repo "aria-assistant/internal/event/repository"
	"aria-assistant/internal/model"
)

const eventColumns = `id, user_id, title, start_time, duration_minutes, location, calendar_event_id, calendar_link, created_at, updated_at`

// CreateEvent inserts a new Event row and returns the created entity.
func (r *implRepository) CreateEvent(ctx context.Context, opt repo.CreateEventOptions) (model.Event, error) {
	const query = `
		INSERT INTO events (id, user_id, title, start_time, duration_minutes, location, calendar_event_id, calendar_link, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	now := time.Now().UTC()
	e := model.Event{
		ID:              uuid.NewString(),
		UserID:          opt.UserID,
		Title:           opt.Title,
		StartTime:       opt.StartTime.UTC(),
		DurationMinutes: opt.DurationMinutes,
		Location:        opt.Location,
		CalendarEventID: opt.CalendarEventID,
		CalendarLink:    opt.CalendarLink,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	_, err := r.db.ExecContext(ctx, query,
		e.ID, e.UserID, e.Title, e.StartTime, e.DurationMinutes, e.Location,
		e.CalendarEventID, e.CalendarLink, now, now,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateEvent"), err)
		return model.Event{}, repo.ErrFailedToInsert
	}
	return e, nil
}

// GetOneEvent retrieves a single Event by the provided filters (AND condition).
// Returns zero-value Event (ID == "") when not found — do NOT return error for not-found.
func (r *implRepository) GetOneEvent(ctx context.Context, opt repo.GetOneEventOptions) (model.Event, error) {
	var conds []string
	var args []any
	if opt.ID != "" {
		conds = append(conds, "id = ?")
		args = append(args, opt.ID)
	}
	if opt.UserID != "" {
		conds = append(conds, "user_id = ?")
		args = append(args, opt.UserID)
	}
	if len(conds) == 0 {
		return model.Event{}, repo.ErrFailedToGet
	}

	query := fmt.Sprintf("SELECT %s FROM events WHERE %s LIMIT 1", eventColumns, strings.Join(conds, " AND "))

	e, err := scanEvent(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.Event{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneEvent"), err)
		return model.Event{}, repo.ErrFailedToGet
	}
	return e, nil
}

// ListEvents returns a paginated list of Events ordered by start time.
func (r *implRepository) ListEvents(ctx context.Context, opt repo.ListEventsOptions) ([]model.Event, int, error) {
	conds := []string{"user_id = ?"}
	args := []any{opt.UserID}
	if opt.StartAfter != nil {
		conds = append(conds, "start_time >= ?")
		args = append(args, opt.StartAfter.UTC())
	}
	if opt.StartBefore != nil {
		conds = append(conds, "start_time < ?")
		args = append(args, opt.StartBefore.UTC())
	}
	where := strings.Join(conds, " AND ")

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM events WHERE %s", where)
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListEvents"), err)
		return nil, 0, repo.ErrFailedToList
	}

	limit := opt.Limit
	if limit <= 0 {
		limit = 50
	}
	query := fmt.Sprintf(
		"SELECT %s FROM events WHERE %s ORDER BY start_time ASC LIMIT ? OFFSET ?",
		eventColumns, where,
	)
	rows, err := r.db.QueryContext(ctx, query, append(args, limit, opt.Offset)...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEvents"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, 0, repo.ErrFailedToList
		}
		events = append(events, e)
	}
	return events, total, nil
}

// UpdateEventMirror stores the calendar mirror reference on an existing Event.
func (r *implRepository) UpdateEventMirror(ctx context.Context, opt repo.UpdateEventMirrorOptions) error {
	const query = `
		UPDATE events SET calendar_event_id = ?, calendar_link = ?, updated_at = ?
		WHERE id = ? AND user_id = ?`

	if _, err := r.db.ExecContext(ctx, query,
		opt.CalendarEventID, opt.CalendarLink, time.Now().UTC(), opt.ID, opt.UserID,
	); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateEventMirror"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// DeleteEvent removes an Event by ID within the user's scope.
func (r *implRepository) DeleteEvent(ctx context.Context, userID, id string) error {
	const query = `DELETE FROM events WHERE id = ? AND user_id = ?`
	if _, err := r.db.ExecContext(ctx, query, id, userID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteEvent"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (model.Event, error) {
	var e model.Event
	if err := row.Scan(
		&e.ID, &e.UserID, &e.Title, &e.StartTime, &e.DurationMinutes, &e.Location,
		&e.CalendarEventID, &e.CalendarLink, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return model.Event{}, err
	}
	return e, nil
}
