package usecase

import (
	"context"
	"time"

	"aria-assistant/internal/email"
	"aria-assistant/internal/event"
	"aria-assistant/internal/extractor"
	"aria-assistant/internal/model"
	"aria-assistant/internal/router"
	"aria-assistant/internal/task"
	"aria-assistant/pkg/log"
)

// mockClassifier returns a canned classification.
type mockClassifier struct {
	output router.Output
	err    error
	calls  int
}

func (m *mockClassifier) Classify(_ context.Context, _ string) (router.Output, error) {
	m.calls++
	return m.output, m.err
}

// mockExtractor returns canned entities.
type mockExtractor struct {
	entities extractor.Entities
	err      error
	calls    int
}

func (m *mockExtractor) Extract(_ context.Context, _ string, _ router.Intent) (extractor.Entities, error) {
	m.calls++
	return m.entities, m.err
}

// mockTaskUseCase records calls to the task collaborator.
type mockTaskUseCase struct {
	createCalls []task.CreateTaskInput
	listCalls   []task.ListTasksInput
	failWith    error
}

func (m *mockTaskUseCase) Create(_ context.Context, _ model.Scope, input task.CreateTaskInput) (task.TaskOutput, error) {
	m.createCalls = append(m.createCalls, input)
	if m.failWith != nil {
		return task.TaskOutput{}, m.failWith
	}
	return task.TaskOutput{Task: model.Task{ID: "t1", Title: input.Title, Priority: input.Priority, Deadline: input.Deadline}}, nil
}

func (m *mockTaskUseCase) List(_ context.Context, _ model.Scope, input task.ListTasksInput) (task.ListTasksOutput, error) {
	m.listCalls = append(m.listCalls, input)
	if m.failWith != nil {
		return task.ListTasksOutput{}, m.failWith
	}
	tasks := []model.Task{{ID: "t1", Title: "review budget", Priority: model.PriorityHigh}}
	return task.ListTasksOutput{Tasks: tasks, Total: len(tasks)}, nil
}

func (m *mockTaskUseCase) Detail(_ context.Context, _ model.Scope, _ string) (task.TaskOutput, error) {
	return task.TaskOutput{}, nil
}

func (m *mockTaskUseCase) Update(_ context.Context, _ model.Scope, _ task.UpdateTaskInput) (task.TaskOutput, error) {
	return task.TaskOutput{}, nil
}

func (m *mockTaskUseCase) Delete(_ context.Context, _ model.Scope, _ string) error {
	return nil
}

// mockEventUseCase records calls to the event collaborator.
type mockEventUseCase struct {
	createCalls []event.CreateEventInput
	listCalls   []event.ListEventsInput
	failWith    error
}

func (m *mockEventUseCase) Create(_ context.Context, _ model.Scope, input event.CreateEventInput) (event.EventOutput, error) {
	m.createCalls = append(m.createCalls, input)
	if m.failWith != nil {
		return event.EventOutput{}, m.failWith
	}
	return event.EventOutput{Event: model.Event{
		ID:              "e1",
		Title:           input.Title,
		StartTime:       input.StartTime,
		DurationMinutes: input.DurationMinutes,
		Location:        input.Location,
	}}, nil
}

func (m *mockEventUseCase) List(_ context.Context, _ model.Scope, input event.ListEventsInput) (event.ListEventsOutput, error) {
	m.listCalls = append(m.listCalls, input)
	if m.failWith != nil {
		return event.ListEventsOutput{}, m.failWith
	}
	return event.ListEventsOutput{}, nil
}

func (m *mockEventUseCase) Detail(_ context.Context, _ model.Scope, _ string) (event.EventOutput, error) {
	return event.EventOutput{}, nil
}

func (m *mockEventUseCase) Delete(_ context.Context, _ model.Scope, _ string) error {
	return nil
}

// mockEmailUseCase records calls to the email collaborator.
type mockEmailUseCase struct {
	sendCalls []email.SendEmailInput
	failWith  error
}

func (m *mockEmailUseCase) Send(_ context.Context, _ model.Scope, input email.SendEmailInput) (email.SendEmailOutput, error) {
	m.sendCalls = append(m.sendCalls, input)
	if m.failWith != nil {
		return email.SendEmailOutput{}, m.failWith
	}
	return email.SendEmailOutput{MessageID: "msg-1", Recipient: input.Recipient, Subject: input.Subject}, nil
}

type testDeps struct {
	classifier *mockClassifier
	extractor  *mockExtractor
	tasks      *mockTaskUseCase
	events     *mockEventUseCase
	emails     *mockEmailUseCase
}

func newTestUseCase(deps testDeps) *implUseCase {
	if deps.classifier == nil {
		deps.classifier = &mockClassifier{}
	}
	if deps.extractor == nil {
		deps.extractor = &mockExtractor{}
	}
	if deps.tasks == nil {
		deps.tasks = &mockTaskUseCase{}
	}
	if deps.events == nil {
		deps.events = &mockEventUseCase{}
	}
	if deps.emails == nil {
		deps.emails = &mockEmailUseCase{}
	}
	return New(
		Config{ConfidenceThreshold: 0.5},
		deps.classifier,
		deps.extractor,
		deps.tasks,
		deps.events,
		deps.emails,
		log.NewNoopLogger(),
	)
}

func timePtr(t time.Time) *time.Time { return &t }
