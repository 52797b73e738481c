package usecase

import (
	"aria-assistant/internal/chat"
	"aria-assistant/internal/event"
	"aria-assistant/internal/model"
	"aria-assistant/internal/task"
)

func newTaskPayload(t model.Task) chat.TaskPayload {
	return chat.TaskPayload{
		ID:        t.ID,
		Title:     t.Title,
		Priority:  string(t.Priority),
		Deadline:  t.Deadline,
		Completed: t.Completed,
	}
}

func newTaskListPayload(out task.ListTasksOutput) chat.TaskListPayload {
	tasks := make([]chat.TaskPayload, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskPayload(t)
	}
	return chat.TaskListPayload{Tasks: tasks, Total: out.Total}
}

func newEventPayload(e model.Event) chat.EventPayload {
	return chat.EventPayload{
		ID:              e.ID,
		Title:           e.Title,
		StartTime:       e.StartTime,
		EndTime:         e.EndTime(),
		DurationMinutes: e.DurationMinutes,
		Location:        e.Location,
		CalendarLink:    e.CalendarLink,
	}
}

func newEventListPayload(out event.ListEventsOutput) chat.EventListPayload {
	events := make([]chat.EventPayload, len(out.Events))
	for i, e := range out.Events {
		events[i] = newEventPayload(e)
	}
	return chat.EventListPayload{Events: events, Total: out.Total}
}
