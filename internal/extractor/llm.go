package extractor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"aria-assistant/pkg/llmprovider"
)

// llmFill asks the provider chain to fill exactly the missing fields.
// Off-schema keys and unparseable values are dropped, never guessed at.
func (e *RuleExtractor) llmFill(ctx context.Context, utterance string, missing []string, ent *Entities) {
	req := &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role: "system",
			Text: fmt.Sprintf(PromptExtractSystem, strings.Join(missing, ", ")),
		},
		Messages: []llmprovider.Message{
			{Role: "user", Text: fmt.Sprintf(PromptExtractUser, utterance)},
		},
		Temperature: LLMTemperature,
		MaxTokens:   LLMMaxOutputTokens,
	}

	resp, err := e.llm.GenerateContent(ctx, req)
	if err != nil {
		e.l.Warnf(ctx, "%s: LLM fill failed: %v", LogPrefixExtract, err)
		return
	}

	text := strings.TrimSpace(resp.Content.Text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimSpace(text)
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimSpace(text)
	}

	var fields map[string]string
	if err := json.Unmarshal([]byte(text), &fields); err != nil {
		e.l.Warnf(ctx, "%s: LLM fill returned invalid JSON: %v", LogPrefixExtract, err)
		return
	}

	requested := make(map[string]bool, len(missing))
	for _, f := range missing {
		requested[f] = true
	}

	for key, value := range fields {
		value = strings.TrimSpace(value)
		if !requested[key] || value == "" {
			continue
		}
		switch key {
		case FieldTitle:
			ent.Title = value
		case FieldSubject:
			ent.Subject = value
		case FieldBody:
			ent.Body = value
		case FieldRecipient:
			if addr := emailRe.FindString(value); addr != "" {
				ent.Recipient = addr
			}
		case FieldStartTime:
			if t, err := time.Parse(time.RFC3339, value); err == nil {
				ent.StartTime = &t
			}
		}
	}
}
