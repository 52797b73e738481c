package usecase

import (
	"aria-assistant/internal/email"
	"aria-assistant/internal/event"
	"aria-assistant/internal/extractor"
	"aria-assistant/internal/router"
	"aria-assistant/internal/task"
	"aria-assistant/pkg/log"
)

// Config tunes the dispatcher.
type Config struct {
	ConfidenceThreshold float64
}

// implUseCase is the private implementation of chat.UseCase.
type implUseCase struct {
	classifier router.Classifier
	extractor  extractor.Extractor
	tasks      task.UseCase
	events     event.UseCase
	emails     email.UseCase
	cfg        Config
	l          log.Logger
}

// New creates a new chat UseCase implementation.
func New(
	cfg Config,
	classifier router.Classifier,
	ext extractor.Extractor,
	tasks task.UseCase,
	events event.UseCase,
	emails email.UseCase,
	l log.Logger,
) *implUseCase {
	return &implUseCase{
		classifier: classifier,
		extractor:  ext,
		tasks:      tasks,
		events:     events,
		emails:     emails,
		cfg:        cfg,
		l:          l,
	}
}
