package http

import (
	"time"

	"aria-assistant/internal/event"
	"aria-assistant/internal/model"
)

// --- Request DTOs ---

type createReq struct {
	Title           string    `json:"title"            binding:"required,min=1,max=255"`
	StartTime       time.Time `json:"start_time"       binding:"required"`
	DurationMinutes int       `json:"duration_minutes" binding:"omitempty,min=1,max=1440"`
	Location        string    `json:"location"         binding:"omitempty,max=255"`
}

func (r createReq) toInput() event.CreateEventInput {
	return event.CreateEventInput{
		Title:           r.Title,
		StartTime:       r.StartTime,
		DurationMinutes: r.DurationMinutes,
		Location:        r.Location,
	}
}

type listReq struct {
	Scope  string `form:"scope"  binding:"omitempty,oneof=all today tomorrow week"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

func (r listReq) toInput() event.ListEventsInput {
	return event.ListEventsInput{
		Scope:  r.Scope,
		Limit:  r.Limit,
		Offset: r.Offset,
	}
}

// --- Response DTOs ---

type eventResp struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	DurationMinutes int       `json:"duration_minutes"`
	Location        string    `json:"location,omitempty"`
	CalendarLink    string    `json:"calendar_link,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func newEventResp(e model.Event) eventResp {
	return eventResp{
		ID:              e.ID,
		Title:           e.Title,
		StartTime:       e.StartTime,
		EndTime:         e.EndTime(),
		DurationMinutes: e.DurationMinutes,
		Location:        e.Location,
		CalendarLink:    e.CalendarLink,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

type eventDetailResp struct {
	Event eventResp `json:"event"`
}

func (h *handler) newEventDetailResp(out event.EventOutput) eventDetailResp {
	return eventDetailResp{Event: newEventResp(out.Event)}
}

type listResp struct {
	Events []eventResp `json:"events"`
	Total  int         `json:"total"`
	Limit  int         `json:"limit"`
	Offset int         `json:"offset"`
}

func (h *handler) newListResp(out event.ListEventsOutput) listResp {
	events := make([]eventResp, len(out.Events))
	for i, e := range out.Events {
		events[i] = newEventResp(e)
	}
	return listResp{
		Events: events,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}
