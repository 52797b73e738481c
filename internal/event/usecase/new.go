package usecase

import (
	"time"

	"aria-assistant/internal/event/repository"
	"aria-assistant/pkg/gcalendar"
	"aria-assistant/pkg/log"
)

// implUseCase is the private implementation of event.UseCase.
type implUseCase struct {
	repo       repository.Repository
	calendar   gcalendar.ICalendar // nil disables Google Calendar mirroring
	calendarID string
	l          log.Logger
	now        func() time.Time
}

// New creates a new event UseCase implementation.
func New(repo repository.Repository, calendar gcalendar.ICalendar, calendarID string, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:       repo,
		calendar:   calendar,
		calendarID: calendarID,
		l:          l,
		now:        time.Now,
	}
}
