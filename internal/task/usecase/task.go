package usecase

import (
	"context"
	"strings"

	"aria-assistant/internal/model"
	"aria-assistant/internal/task"
	repo "aria-assistant/internal/task/repository"
)

// Create persists a new task for the caller.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateTaskInput) (task.TaskOutput, error) {
	if strings.TrimSpace(input.Title) == "" {
		return task.TaskOutput{}, task.ErrTitleRequired
	}

	created, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		UserID:   sc.UserID,
		Title:    strings.TrimSpace(input.Title),
		Priority: model.ParsePriority(string(input.Priority)),
		Deadline: input.Deadline,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.TaskOutput{}, err
	}

	return task.TaskOutput{Task: created}, nil
}

// List returns the caller's tasks within the named scope window.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListTasksInput) (task.ListTasksOutput, error) {
	after, before := scopeWindow(uc.now().UTC(), input.Scope)

	limit := input.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	tasks, total, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		UserID:         sc.UserID,
		DeadlineAfter:  after,
		DeadlineBefore: before,
		Limit:          limit,
		Offset:         input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListTasksOutput{}, err
	}

	return task.ListTasksOutput{
		Tasks:  tasks,
		Total:  total,
		Limit:  limit,
		Offset: input.Offset,
	}, nil
}

// Detail returns a single task owned by the caller.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (task.TaskOutput, error) {
	found, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneTask: %v", err)
		return task.TaskOutput{}, err
	}
	if found.ID == "" {
		return task.TaskOutput{}, task.ErrTaskNotFound
	}
	return task.TaskOutput{Task: found}, nil
}

// Update applies a partial update to the caller's task.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateTaskInput) (task.TaskOutput, error) {
	updated, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:        input.ID,
		UserID:    sc.UserID,
		Title:     strings.TrimSpace(input.Title),
		Priority:  input.Priority,
		Deadline:  input.Deadline,
		Completed: input.Completed,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return task.TaskOutput{}, err
	}
	if updated.ID == "" {
		return task.TaskOutput{}, task.ErrTaskNotFound
	}
	return task.TaskOutput{Task: updated}, nil
}

// Delete removes the caller's task by ID.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	found, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneTask: %v", err)
		return err
	}
	if found.ID == "" {
		return task.ErrTaskNotFound
	}

	if err := uc.repo.DeleteTask(ctx, sc.UserID, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}
	return nil
}
