package usecase

import (
	"context"
	"time"

	"aria-assistant/internal/model"
	repo "aria-assistant/internal/task/repository"
	"aria-assistant/pkg/log"
)

// mockRepository is a handwritten in-memory repository double for use case tests.
type mockRepository struct {
	tasks       map[string]model.Task
	nextID      int
	failWith    error
	lastListOpt repo.ListTasksOptions
}

func newMockRepository() *mockRepository {
	return &mockRepository{tasks: map[string]model.Task{}}
}

func (m *mockRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	if m.failWith != nil {
		return model.Task{}, m.failWith
	}
	m.nextID++
	t := model.Task{
		ID:        string(rune('a' + m.nextID)),
		UserID:    opt.UserID,
		Title:     opt.Title,
		Priority:  opt.Priority,
		Deadline:  opt.Deadline,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	m.tasks[t.ID] = t
	return t, nil
}

func (m *mockRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	if m.failWith != nil {
		return model.Task{}, m.failWith
	}
	t, ok := m.tasks[opt.ID]
	if !ok || (opt.UserID != "" && t.UserID != opt.UserID) {
		return model.Task{}, nil
	}
	return t, nil
}

func (m *mockRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	if m.failWith != nil {
		return nil, 0, m.failWith
	}
	m.lastListOpt = opt
	var out []model.Task
	for _, t := range m.tasks {
		if t.UserID != opt.UserID {
			continue
		}
		if opt.DeadlineAfter != nil && (t.Deadline == nil || t.Deadline.Before(*opt.DeadlineAfter)) {
			continue
		}
		if opt.DeadlineBefore != nil && (t.Deadline == nil || !t.Deadline.Before(*opt.DeadlineBefore)) {
			continue
		}
		out = append(out, t)
	}
	return out, len(out), nil
}

func (m *mockRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	if m.failWith != nil {
		return model.Task{}, m.failWith
	}
	t, ok := m.tasks[opt.ID]
	if !ok || t.UserID != opt.UserID {
		return model.Task{}, nil
	}
	if opt.Title != "" {
		t.Title = opt.Title
	}
	if opt.Priority != "" {
		t.Priority = opt.Priority
	}
	if opt.Deadline != nil {
		t.Deadline = opt.Deadline
	}
	if opt.Completed != nil {
		t.Completed = *opt.Completed
	}
	t.UpdatedAt = time.Now()
	m.tasks[opt.ID] = t
	return t, nil
}

func (m *mockRepository) DeleteTask(ctx context.Context, userID, id string) error {
	if m.failWith != nil {
		return m.failWith
	}
	delete(m.tasks, id)
	return nil
}

func newTestUseCase(repo repo.Repository) *implUseCase {
	uc := New(repo, log.NewNoopLogger())
	// Wednesday, May 1, 2024
	uc.now = func() time.Time { return time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) }
	return uc
}
