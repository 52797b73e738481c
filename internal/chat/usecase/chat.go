package usecase

import (
	"context"
	"fmt"
	"strings"

	"aria-assistant/internal/chat"
	"aria-assistant/internal/email"
	"aria-assistant/internal/event"
	"aria-assistant/internal/extractor"
	"aria-assistant/internal/model"
	"aria-assistant/internal/router"
	"aria-assistant/internal/task"
)

// Handle routes one message: classify, extract, validate, dispatch. At most
// one collaborator call is made per message, and none at all when the
// classification is below threshold or a required field is missing.
func (uc *implUseCase) Handle(ctx context.Context, sc model.Scope, input chat.HandleInput) (chat.HandleOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return chat.HandleOutput{}, chat.ErrEmptyMessage
	}

	classified, err := uc.classifier.Classify(ctx, message)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Handle Classify: %v", err)
		return chat.HandleOutput{}, err
	}

	if classified.Intent == router.IntentUnknown || classified.Confidence < uc.cfg.ConfidenceThreshold {
		return clarify(classified.Confidence, MsgClarifyIntent), nil
	}

	entities, err := uc.extractor.Extract(ctx, message, classified.Intent)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Handle Extract: %v", err)
		return chat.HandleOutput{}, err
	}

	if missing := entities.Missing(classified.Intent); len(missing) > 0 {
		msg := fmt.Sprintf(MsgClarifyFields, strings.Join(missing, ", "))
		return clarify(classified.Confidence, msg), nil
	}

	result, err := uc.dispatch(ctx, sc, classified, entities)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Handle dispatch %s: %v", classified.Intent, err)
		// The collaborator's own error is part of the result contract.
		return chat.HandleOutput{Result: chat.ActionResult{
			Success:    false,
			Type:       string(classified.Intent),
			Message:    fmt.Sprintf(MsgDispatchFailed, err),
			Confidence: classified.Confidence,
		}}, nil
	}
	return chat.HandleOutput{Result: result}, nil
}

// dispatch performs exactly one collaborator call for the classified intent.
func (uc *implUseCase) dispatch(ctx context.Context, sc model.Scope, classified router.Output, entities extractor.Entities) (chat.ActionResult, error) {
	switch classified.Intent {
	case router.IntentCreateTask:
		out, err := uc.tasks.Create(ctx, sc, task.CreateTaskInput{
			Title:    entities.Title,
			Priority: entities.Priority,
			Deadline: entities.Deadline,
		})
		if err != nil {
			return chat.ActionResult{}, err
		}
		return chat.ActionResult{
			Success:    true,
			Type:       string(classified.Intent),
			Payload:    newTaskPayload(out.Task),
			Message:    fmt.Sprintf(MsgTaskCreated, out.Task.Title),
			Confidence: classified.Confidence,
		}, nil

	case router.IntentCreateEvent:
		out, err := uc.events.Create(ctx, sc, event.CreateEventInput{
			Title:           entities.Title,
			StartTime:       *entities.StartTime,
			DurationMinutes: entities.DurationMinutes,
			Location:        entities.Location,
		})
		if err != nil {
			return chat.ActionResult{}, err
		}
		return chat.ActionResult{
			Success:    true,
			Type:       string(classified.Intent),
			Payload:    newEventPayload(out.Event),
			Message:    fmt.Sprintf(MsgEventCreated, out.Event.Title, out.Event.StartTime.Format("Mon Jan 2 15:04")),
			Confidence: classified.Confidence,
		}, nil

	case router.IntentSendEmail:
		out, err := uc.emails.Send(ctx, sc, email.SendEmailInput{
			Recipient: entities.Recipient,
			Subject:   entities.Subject,
			Body:      entities.Body,
		})
		if err != nil {
			return chat.ActionResult{}, err
		}
		return chat.ActionResult{
			Success: true,
			Type:    string(classified.Intent),
			Payload: chat.EmailPayload{
				MessageID: out.MessageID,
				Recipient: out.Recipient,
				Subject:   out.Subject,
			},
			Message:    fmt.Sprintf(MsgEmailSent, out.Recipient),
			Confidence: classified.Confidence,
		}, nil

	case router.IntentQueryTasks:
		out, err := uc.tasks.List(ctx, sc, task.ListTasksInput{Scope: entities.QueryScope})
		if err != nil {
			return chat.ActionResult{}, err
		}
		return chat.ActionResult{
			Success:    true,
			Type:       string(classified.Intent),
			Payload:    newTaskListPayload(out),
			Message:    fmt.Sprintf(MsgTasksFound, out.Total),
			Confidence: classified.Confidence,
		}, nil

	case router.IntentQueryEvents:
		out, err := uc.events.List(ctx, sc, event.ListEventsInput{Scope: entities.QueryScope})
		if err != nil {
			return chat.ActionResult{}, err
		}
		return chat.ActionResult{
			Success:    true,
			Type:       string(classified.Intent),
			Payload:    newEventListPayload(out),
			Message:    fmt.Sprintf(MsgEventsFound, out.Total),
			Confidence: classified.Confidence,
		}, nil
	}

	return chat.ActionResult{}, fmt.Errorf("unroutable intent %s", classified.Intent)
}

// clarify builds the uniform "ask the user" result. Clarifications never
// touch a collaborator.
func clarify(confidence float64, msg string) chat.HandleOutput {
	return chat.HandleOutput{Result: chat.ActionResult{
		Success:    false,
		Type:       string(router.IntentUnknown),
		Message:    msg,
		Confidence: confidence,
	}}
}
