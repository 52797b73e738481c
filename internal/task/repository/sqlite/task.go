package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"aria-assistant/internal/model"
	repo "aria-assistant/internal/task/repository"
)

const taskColumns = `id, user_id, title, priority, deadline, completed, created_at, updated_at`

// CreateTask inserts a new Task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	const query = `
		INSERT INTO tasks (id, user_id, title, priority, deadline, completed, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, 0, ?, ?)`

	now := time.Now().UTC()
	t := model.Task{
		ID:        uuid.NewString(),
		UserID:    opt.UserID,
		Title:     opt.Title,
		Priority:  opt.Priority,
		Deadline:  opt.Deadline,
		CreatedAt: now,
		UpdatedAt: now,
	}

	var deadline sql.NullTime
	if opt.Deadline != nil {
		deadline = sql.NullTime{Time: opt.Deadline.UTC(), Valid: true}
	}

	_, err := r.db.ExecContext(ctx, query, t.ID, t.UserID, t.Title, string(t.Priority), deadline, now, now)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// GetOneTask retrieves a single Task by the provided filters (AND condition).
// Returns zero-value Task (ID == "") when not found — do NOT return error for not-found.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
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
		return model.Task{}, repo.ErrFailedToGet
	}

	query := fmt.Sprintf("SELECT %s FROM tasks WHERE %s LIMIT 1", taskColumns, strings.Join(conds, " AND "))

	t, err := scanTask(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTasks returns a paginated list of Tasks and the total count.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	conds := []string{"user_id = ?"}
	args := []any{opt.UserID}
	if opt.DeadlineAfter != nil {
		conds = append(conds, "deadline >= ?")
		args = append(args, opt.DeadlineAfter.UTC())
	}
	if opt.DeadlineBefore != nil {
		conds = append(conds, "deadline < ?")
		args = append(args, opt.DeadlineBefore.UTC())
	}
	where := strings.Join(conds, " AND ")

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM tasks WHERE %s", where)
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}

	limit := opt.Limit
	if limit <= 0 {
		limit = 50
	}
	query := fmt.Sprintf(
		"SELECT %s FROM tasks WHERE %s ORDER BY created_at DESC LIMIT ? OFFSET ?",
		taskColumns, where,
	)
	rows, err := r.db.QueryContext(ctx, query, append(args, limit, opt.Offset)...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, 0, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	return tasks, total, nil
}

// UpdateTask applies the non-zero fields and returns the updated entity.
// Returns zero-value Task when the row does not exist.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	existing, err := r.GetOneTask(ctx, repo.GetOneTaskOptions{ID: opt.ID, UserID: opt.UserID})
	if err != nil {
		return model.Task{}, repo.ErrFailedToUpdate
	}
	if existing.ID == "" {
		return model.Task{}, nil
	}

	if opt.Title != "" {
		existing.Title = opt.Title
	}
	if opt.Priority != "" {
		existing.Priority = opt.Priority
	}
	if opt.Deadline != nil {
		existing.Deadline = opt.Deadline
	}
	if opt.Completed != nil {
		existing.Completed = *opt.Completed
	}
	existing.UpdatedAt = time.Now().UTC()

	var deadline sql.NullTime
	if existing.Deadline != nil {
		deadline = sql.NullTime{Time: existing.Deadline.UTC(), Valid: true}
	}
	completed := 0
	if existing.Completed {
		completed = 1
	}

	const query = `
		UPDATE tasks
		SET title = ?, priority = ?, deadline = ?, completed = ?, updated_at = ?
		WHERE id = ? AND user_id = ?`
	if _, err := r.db.ExecContext(ctx, query,
		existing.Title, string(existing.Priority), deadline, completed, existing.UpdatedAt,
		opt.ID, opt.UserID,
	); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return existing, nil
}

// DeleteTask removes a Task by ID within the user's scope.
func (r *implRepository) DeleteTask(ctx context.Context, userID, id string) error {
	const query = `DELETE FROM tasks WHERE id = ? AND user_id = ?`
	if _, err := r.db.ExecContext(ctx, query, id, userID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (model.Task, error) {
	var (
		t         model.Task
		priority  string
		deadline  sql.NullTime
		completed int
	)
	if err := row.Scan(&t.ID, &t.UserID, &t.Title, &priority, &deadline, &completed, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return model.Task{}, err
	}
	t.Priority = model.Priority(priority)
	if deadline.Valid {
		d := deadline.Time
		t.Deadline = &d
	}
	t.Completed = completed != 0
	return t, nil
}
