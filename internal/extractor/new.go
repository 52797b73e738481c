package extractor

import (
	"context"
	"fmt"
	"time"

	"aria-assistant/internal/router"
	"aria-assistant/pkg/datemath"
	"aria-assistant/pkg/log"
)

// Extractor is the interface for entity extraction
type Extractor interface {
	Extract(ctx context.Context, utterance string, intent router.Intent) (Entities, error)
}

// Config tunes the extractor.
type Config struct {
	Timezone               string
	DefaultDurationMinutes int
}

// RuleExtractor pulls structured fields out of an utterance with regex and
// date parsing rules, issuing a single LLM call to fill required fields the
// rules could not produce.
type RuleExtractor struct {
	dates *datemath.Parser
	llm   router.LLM
	cfg   Config
	l     log.Logger
	now   func() time.Time
}

// Ensure RuleExtractor implements Extractor interface
var _ Extractor = (*RuleExtractor)(nil)

// New creates a new RuleExtractor.
// Convention: Factory function returns concrete type (not interface) for internal packages
func New(cfg Config, llm router.LLM, l log.Logger) (*RuleExtractor, error) {
	if cfg.Timezone == "" {
		cfg.Timezone = "UTC"
	}
	if cfg.DefaultDurationMinutes <= 0 {
		cfg.DefaultDurationMinutes = DefaultDurationMinutes
	}

	dates, err := datemath.NewParser(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to create date parser: %w", err)
	}

	return &RuleExtractor{
		dates: dates,
		llm:   llm,
		cfg:   cfg,
		l:     l,
		now:   time.Now,
	}, nil
}
