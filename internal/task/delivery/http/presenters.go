package http

import (
	"time"

	"aria-assistant/internal/model"
	"aria-assistant/internal/task"
)

// --- Request DTOs ---

type createReq struct {
	Title    string     `json:"title"    binding:"required,min=1,max=255"`
	Priority string     `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	Deadline *time.Time `json:"deadline"`
}

func (r createReq) toInput() task.CreateTaskInput {
	return task.CreateTaskInput{
		Title:    r.Title,
		Priority: model.Priority(r.Priority),
		Deadline: r.Deadline,
	}
}

type listReq struct {
	Scope  string `form:"scope"  binding:"omitempty,oneof=all today tomorrow week"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

func (r listReq) toInput() task.ListTasksInput {
	return task.ListTasksInput{
		Scope:  r.Scope,
		Limit:  r.Limit,
		Offset: r.Offset,
	}
}

type updateReq struct {
	ID        string     `json:"-"` // populated from URI param
	Title     string     `json:"title"     binding:"omitempty,min=1,max=255"`
	Priority  string     `json:"priority"  binding:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	Deadline  *time.Time `json:"deadline"`
	Completed *bool      `json:"completed"`
}

func (r updateReq) toInput() task.UpdateTaskInput {
	return task.UpdateTaskInput{
		ID:        r.ID,
		Title:     r.Title,
		Priority:  model.Priority(r.Priority),
		Deadline:  r.Deadline,
		Completed: r.Completed,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Priority  string     `json:"priority"`
	Deadline  *time.Time `json:"deadline,omitempty"`
	Completed bool       `json:"completed"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:        t.ID,
		Title:     t.Title,
		Priority:  string(t.Priority),
		Deadline:  t.Deadline,
		Completed: t.Completed,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

type taskDetailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newTaskDetailResp(out task.TaskOutput) taskDetailResp {
	return taskDetailResp{Task: newTaskResp(out.Task)}
}

type listResp struct {
	Tasks  []taskResp `json:"tasks"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out task.ListTasksOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{
		Tasks:  tasks,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}
