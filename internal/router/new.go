package router

import (
	"context"
	_ "embed"
	"fmt"
	"regexp"

	lru "github.com/hashicorp/golang-lru/v2"
	"gopkg.in/yaml.v3"

	"aria-assistant/pkg/llmprovider"
	"aria-assistant/pkg/log"
)

//go:embed rules.yaml
var rulesYAML []byte

// Classifier is the interface for intent classification
type Classifier interface {
	Classify(ctx context.Context, utterance string) (Output, error)
}

// LLM is the narrow surface the classifier needs from the provider manager.
// A nil LLM means rule-only classification.
type LLM interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Config tunes the classifier.
type Config struct {
	ConfidenceThreshold float64
	LLMFallbackEnabled  bool
}

// RuleClassifier classifies user intent with an ordered regex rule table,
// falling back to an LLM with the same closed label set when no rule matches.
type RuleClassifier struct {
	rules []ruleGroup
	cache *lru.Cache[string, Output]
	llm   LLM
	cfg   Config
	l     log.Logger
}

// Ensure RuleClassifier implements Classifier interface
var _ Classifier = (*RuleClassifier)(nil)

type ruleGroup struct {
	intent   Intent
	patterns []*regexp.Regexp
}

type rulesFile struct {
	Rules []struct {
		Intent   string   `yaml:"intent"`
		Patterns []string `yaml:"patterns"`
	} `yaml:"rules"`
}

// New creates a new RuleClassifier from the embedded rule table.
// Convention: Factory function returns concrete type (not interface) for internal packages
func New(cfg Config, llm LLM, l log.Logger) (*RuleClassifier, error) {
	var file rulesFile
	if err := yaml.Unmarshal(rulesYAML, &file); err != nil {
		return nil, fmt.Errorf("failed to parse rule table: %w", err)
	}

	groups := make([]ruleGroup, 0, len(file.Rules))
	for _, r := range file.Rules {
		intent := Intent(r.Intent)
		if !intent.Valid() || intent == IntentUnknown {
			return nil, fmt.Errorf("rule table references unknown intent %q", r.Intent)
		}
		group := ruleGroup{intent: intent}
		for _, p := range r.Patterns {
			re, err := regexp.Compile("(?i)" + p)
			if err != nil {
				return nil, fmt.Errorf("invalid pattern %q for intent %s: %w", p, intent, err)
			}
			group.patterns = append(group.patterns, re)
		}
		groups = append(groups, group)
	}

	cache, err := lru.New[string, Output](CacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create classification cache: %w", err)
	}

	return &RuleClassifier{
		rules: groups,
		cache: cache,
		llm:   llm,
		cfg:   cfg,
		l:     l,
	}, nil
}
