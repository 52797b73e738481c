package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"aria-assistant/internal/model"
	"aria-assistant/internal/task"
)

func TestCreate(t *testing.T) {
	sc := model.Scope{UserID: "user-1"}

	t.Run("Creates with defaults", func(t *testing.T) {
		repo := newMockRepository()
		uc := newTestUseCase(repo)

		out, err := uc.Create(context.Background(), sc, task.CreateTaskInput{Title: "  buy groceries  "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task.Title != "buy groceries" {
			t.Errorf("got title %q", out.Task.Title)
		}
		if out.Task.Priority != model.PriorityMedium {
			t.Errorf("got priority %s, want MEDIUM default", out.Task.Priority)
		}
		if out.Task.UserID != "user-1" {
			t.Errorf("got user %q", out.Task.UserID)
		}
	})

	t.Run("Rejects empty title", func(t *testing.T) {
		repo := newMockRepository()
		uc := newTestUseCase(repo)

		_, err := uc.Create(context.Background(), sc, task.CreateTaskInput{Title: "   "})
		if !errors.Is(err, task.ErrTitleRequired) {
			t.Errorf("got %v, want ErrTitleRequired", err)
		}
		if len(repo.tasks) != 0 {
			t.Errorf("no task should be persisted")
		}
	})

	t.Run("Keeps explicit priority", func(t *testing.T) {
		repo := newMockRepository()
		uc := newTestUseCase(repo)

		out, err := uc.Create(context.Background(), sc, task.CreateTaskInput{
			Title:    "patch the server",
			Priority: model.PriorityUrgent,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task.Priority != model.PriorityUrgent {
			t.Errorf("got priority %s, want URGENT", out.Task.Priority)
		}
	})
}

func TestListScopes(t *testing.T) {
	sc := model.Scope{UserID: "user-1"}

	repo := newMockRepository()
	uc := newTestUseCase(repo)

	mustCreate := func(title string, deadline *time.Time) {
		t.Helper()
		if _, err := uc.Create(context.Background(), sc, task.CreateTaskInput{Title: title, Deadline: deadline}); err != nil {
			t.Fatalf("failed to seed task: %v", err)
		}
	}
	at := func(d, h int) *time.Time {
		tm := time.Date(2024, 5, d, h, 0, 0, 0, time.UTC)
		return &tm
	}

	mustCreate("due today", at(1, 18))
	mustCreate("due tomorrow", at(2, 9))
	mustCreate("due next month", at(31, 9))
	mustCreate("no deadline", nil)

	tests := []struct {
		scope string
		want  int
	}{
		{"today", 1},
		{"tomorrow", 1},
		{"week", 2},
		{"all", 4},
	}

	for _, tt := range tests {
		t.Run(tt.scope, func(t *testing.T) {
			out, err := uc.List(context.Background(), sc, task.ListTasksInput{Scope: tt.scope})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(out.Tasks) != tt.want {
				t.Errorf("scope %q: got %d tasks, want %d", tt.scope, len(out.Tasks), tt.want)
			}
		})
	}

	t.Run("Scoped to the caller", func(t *testing.T) {
		out, err := uc.List(context.Background(), model.Scope{UserID: "someone-else"}, task.ListTasksInput{Scope: "all"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Tasks) != 0 {
			t.Errorf("expected no tasks for another user, got %d", len(out.Tasks))
		}
	})
}

func TestDetailUpdateDelete(t *testing.T) {
	sc := model.Scope{UserID: "user-1"}

	repo := newMockRepository()
	uc := newTestUseCase(repo)

	created, err := uc.Create(context.Background(), sc, task.CreateTaskInput{Title: "write report"})
	if err != nil {
		t.Fatalf("failed to seed task: %v", err)
	}
	id := created.Task.ID

	t.Run("Detail", func(t *testing.T) {
		out, err := uc.Detail(context.Background(), sc, id)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task.Title != "write report" {
			t.Errorf("got title %q", out.Task.Title)
		}
	})

	t.Run("Detail not found", func(t *testing.T) {
		_, err := uc.Detail(context.Background(), sc, "missing")
		if !errors.Is(err, task.ErrTaskNotFound) {
			t.Errorf("got %v, want ErrTaskNotFound", err)
		}
	})

	t.Run("Detail scoped to owner", func(t *testing.T) {
		_, err := uc.Detail(context.Background(), model.Scope{UserID: "intruder"}, id)
		if !errors.Is(err, task.ErrTaskNotFound) {
			t.Errorf("got %v, want ErrTaskNotFound for foreign task", err)
		}
	})

	t.Run("Update completion", func(t *testing.T) {
		done := true
		out, err := uc.Update(context.Background(), sc, task.UpdateTaskInput{ID: id, Completed: &done})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Task.Completed {
			t.Errorf("expected completed task")
		}
		if out.Task.Title != "write report" {
			t.Errorf("partial update must not clear title, got %q", out.Task.Title)
		}
	})

	t.Run("Update not found", func(t *testing.T) {
		_, err := uc.Update(context.Background(), sc, task.UpdateTaskInput{ID: "missing", Title: "x"})
		if !errors.Is(err, task.ErrTaskNotFound) {
			t.Errorf("got %v, want ErrTaskNotFound", err)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := uc.Delete(context.Background(), sc, id); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := uc.Delete(context.Background(), sc, id); !errors.Is(err, task.ErrTaskNotFound) {
			t.Errorf("got %v, want ErrTaskNotFound on second delete", err)
		}
	})
}
