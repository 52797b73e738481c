package router

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"aria-assistant/pkg/llmprovider"
)

// Classify determines user intent from an utterance.
// Rule-based classification is pure; results that clear the confidence
// threshold are cached. The LLM fallback runs when the rule result stays
// below threshold and a provider is configured.
func (r *RuleClassifier) Classify(ctx context.Context, utterance string) (Output, error) {
	normalized := strings.ToLower(strings.TrimSpace(utterance))
	if normalized == "" {
		return Output{Intent: IntentUnknown, Confidence: 0, Reasoning: ReasonNoRuleMatch}, nil
	}

	if cached, ok := r.cache.Get(normalized); ok {
		return cached, nil
	}

	output := r.classifyRules(normalized)
	if output.Intent != IntentUnknown && output.Confidence >= r.cfg.ConfidenceThreshold {
		r.cache.Add(normalized, output)
		r.l.Infof(ctx, "%s: classified as %s (confidence %.2f)", LogPrefixClassify, output.Intent, output.Confidence)
		return output, nil
	}

	if r.llm == nil || !r.cfg.LLMFallbackEnabled {
		return output, nil
	}

	llmOutput, err := r.classifyLLM(ctx, utterance)
	if err != nil {
		r.l.Warnf(ctx, "%s: LLM fallback failed, returning rule result: %v", LogPrefixClassify, err)
		return output, nil
	}

	r.l.Infof(ctx, "%s: LLM classified as %s (confidence %.2f)", LogPrefixClassify, llmOutput.Intent, llmOutput.Confidence)
	return llmOutput, nil
}

// classifyRules scores every rule group against the utterance. The group
// with the longest single matched span wins; equal spans fall back to the
// table's precedence order.
func (r *RuleClassifier) classifyRules(normalized string) Output {
	bestIntent := IntentUnknown
	bestSpan := 0
	bestScore := 0

	for _, group := range r.rules {
		span := 0
		score := 0
		for _, re := range group.patterns {
			if loc := re.FindStringIndex(normalized); loc != nil {
				score++
				if matched := loc[1] - loc[0]; matched > span {
					span = matched
				}
			}
		}
		if score == 0 {
			continue
		}
		// Strictly greater keeps earlier groups ahead on equal spans.
		if span > bestSpan {
			bestIntent = group.intent
			bestSpan = span
			bestScore = score
		}
	}

	if bestIntent == IntentUnknown {
		return Output{Intent: IntentUnknown, Confidence: 0, Reasoning: ReasonNoRuleMatch}
	}

	confidence := RuleBaseConfidence + RuleMatchBonus*float64(bestScore-1)
	if confidence > RuleMaxConfidence {
		confidence = RuleMaxConfidence
	}

	return Output{Intent: bestIntent, Confidence: confidence}
}

// classifyLLM delegates classification to the provider chain, constrained to
// the closed label set. An out-of-set answer is retried once, then rejected.
func (r *RuleClassifier) classifyLLM(ctx context.Context, utterance string) (Output, error) {
	req := &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{Role: "system", Text: PromptClassifySystem},
		Messages: []llmprovider.Message{
			{Role: "user", Text: fmt.Sprintf(PromptClassifyUser, utterance)},
		},
		Temperature: LLMTemperature,
		MaxTokens:   LLMMaxOutputTokens,
	}

	var lastErr error
	for attempt := 0; attempt <= LLMRetryOnBadLabel; attempt++ {
		resp, err := r.llm.GenerateContent(ctx, req)
		if err != nil {
			return Output{}, fmt.Errorf("LLM call failed: %w", err)
		}

		output, err := parseLLMOutput(resp.Content.Text)
		if err != nil {
			lastErr = err
			continue
		}
		return output, nil
	}

	return Output{}, lastErr
}

// parseLLMOutput parses the model's JSON answer, tolerating markdown fences.
func parseLLMOutput(text string) (Output, error) {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimSpace(text)
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimSpace(text)
	}

	var output Output
	if err := json.Unmarshal([]byte(text), &output); err != nil {
		return Output{}, fmt.Errorf("%s: %w", ReasonLLMParseError, err)
	}
	if !output.Intent.Valid() {
		return Output{}, fmt.Errorf("%s: %q", ReasonLLMRejected, output.Intent)
	}
	if output.Confidence < 0 {
		output.Confidence = 0
	}
	if output.Confidence > 1 {
		output.Confidence = 1
	}
	return output, nil
}
