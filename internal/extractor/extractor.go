package extractor

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"aria-assistant/internal/model"
	"aria-assistant/internal/router"
	"aria-assistant/pkg/datemath"
)

var (
	emailRe    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	durationRe = regexp.MustCompile(`(?i)\bfor\s+(?:(\d+)\s+(minute|hour)s?|(an?\s+hour)|(half\s+an\s+hour))\b`)
	locationRe = regexp.MustCompile(`\b(?:at|in)\s+([A-Z][A-Za-z\s]+?)(?:\s+(?:on|at|with|for|tomorrow|today)\b|[.,]|$)`)
	subjectRe  = regexp.MustCompile(`(?i)\babout\s+(.+?)(?:\s+saying\b|[.?!]|$)`)
	bodyRe     = regexp.MustCompile(`(?i)\bsaying\s+(.+?)$`)

	priorityPhraseRe = regexp.MustCompile(`(?i)\b(?:high|medium|low)\s+priority\b`)
	priorityWordRe   = regexp.MustCompile(`(?i)\b(urgent|asap|critical|emergency|important|whenever|high|medium|low|normal)\b`)

	// Explicit title markers take precedence over strip-based extraction.
	explicitTitleRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:called|titled|named)\s+"([^"]+)"`),
		regexp.MustCompile(`(?i)(?:called|titled|named)\s+'([^']+)'`),
		regexp.MustCompile(`(?i)(?:called|titled|named)\s+(.+?)(?:\s+(?:at|on|for|with|tomorrow|today)\b|$)`),
	}

	// Intent phrases removed before the remaining text is treated as a title.
	intentPhraseRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)create\s+(?:a\s+)?(?:[\w-]+\s+){0,3}task:?\s*(?:to\s+)?`),
		regexp.MustCompile(`(?i)add\s+(?:a\s+)?(?:[\w-]+\s+){0,3}task:?\s*(?:to\s+)?`),
		regexp.MustCompile(`(?i)new\s+task:?\s*(?:to\s+)?`),
		regexp.MustCompile(`(?i)remind\s+me\s+to\s+`),
		regexp.MustCompile(`(?i)i\s+need\s+to\s+`),
		regexp.MustCompile(`(?i)todo:?\s*`),
		regexp.MustCompile(`(?i)task:\s*`),
		regexp.MustCompile(`(?i)schedule\s+(?:an?\s+)?`),
		regexp.MustCompile(`(?i)book\s+(?:an?\s+)?`),
		regexp.MustCompile(`(?i)set\s+up\s+(?:a\s+)?`),
		regexp.MustCompile(`(?i)create\s+(?:an?\s+)?event\s*(?:called|titled|named)?\s*`),
		regexp.MustCompile(`(?i)add\s+(?:to\s+)?(?:my\s+)?calendar:?\s*`),
		regexp.MustCompile(`(?i)put\s+(?:in\s+)?(?:my\s+)?calendar:?\s*`),
	}

	urgentWords = []string{"urgent", "asap", "critical", "emergency"}
	highWords   = []string{"high", "important"}
	lowWords    = []string{"low", "whenever"}
)

// Extract pulls intent-specific fields out of the utterance. Rule extraction
// runs first; if required fields are still missing and an LLM is configured,
// a single structured fill call is made for exactly those fields.
func (e *RuleExtractor) Extract(ctx context.Context, utterance string, intent router.Intent) (Entities, error) {
	text := strings.TrimSpace(utterance)
	lower := strings.ToLower(text)

	var ent Entities
	switch intent {
	case router.IntentCreateTask:
		ent.Priority = extractPriority(lower)
		if res, ok := e.dates.Scan(lower, e.now()); ok {
			deadline := res.AbsoluteTime
			if res.IsAllDay {
				deadline = e.dates.EndOfDay(deadline)
			}
			ent.Deadline = &deadline
		}
		ent.Title = extractTitle(text)

	case router.IntentCreateEvent:
		if res, ok := e.dates.Scan(lower, e.now()); ok {
			start := res.AbsoluteTime
			ent.StartTime = &start
		}
		ent.DurationMinutes = extractDuration(lower, e.cfg.DefaultDurationMinutes)
		ent.Location = extractLocation(text)
		ent.Title = extractTitle(text)

	case router.IntentSendEmail:
		ent.Recipient = emailRe.FindString(text)
		if m := subjectRe.FindStringSubmatch(text); m != nil {
			ent.Subject = strings.TrimSpace(m[1])
		}
		if m := bodyRe.FindStringSubmatch(text); m != nil {
			ent.Body = strings.TrimSpace(m[1])
		}

	case router.IntentQueryTasks, router.IntentQueryEvents:
		ent.QueryScope = extractScope(lower)
	}

	if missing := ent.Missing(intent); len(missing) > 0 && e.llm != nil {
		e.llmFill(ctx, utterance, missing, &ent)
	}

	return ent, nil
}

// extractPriority maps priority keywords to a level, defaulting to MEDIUM.
func extractPriority(lower string) model.Priority {
	for _, w := range urgentWords {
		if containsWord(lower, w) {
			return model.PriorityUrgent
		}
	}
	for _, w := range highWords {
		if containsWord(lower, w) {
			return model.PriorityHigh
		}
	}
	for _, w := range lowWords {
		if containsWord(lower, w) {
			return model.PriorityLow
		}
	}
	return model.PriorityMedium
}

func containsWord(text, word string) bool {
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(word) + `\b`)
	return re.MatchString(text)
}

// extractDuration parses "for 30 minutes", "for 2 hours", "for an hour".
func extractDuration(lower string, fallback int) int {
	m := durationRe.FindStringSubmatch(lower)
	if m == nil {
		return fallback
	}
	if m[3] != "" {
		return 60
	}
	if m[4] != "" {
		return 30
	}
	amount, _ := strconv.Atoi(m[1])
	if m[2] == "hour" {
		return amount * 60
	}
	return amount
}

// extractLocation finds a capitalized place after "at" or "in".
func extractLocation(text string) string {
	if m := locationRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// extractTitle isolates the main content of the utterance: explicit markers
// first, otherwise everything left after intent phrases, time expressions,
// priority keywords, durations and email addresses are removed.
func extractTitle(text string) string {
	for _, re := range explicitTitleRes {
		if m := re.FindStringSubmatch(text); m != nil {
			title := strings.TrimSpace(m[1])
			if len(title) > 2 {
				return title
			}
		}
	}

	title := text
	for _, re := range intentPhraseRes {
		title = re.ReplaceAllString(title, "")
	}
	title = durationRe.ReplaceAllString(title, " ")
	title = emailRe.ReplaceAllString(title, " ")
	title = datemath.StripTimePhrases(title)
	title = priorityPhraseRe.ReplaceAllString(title, " ")
	title = priorityWordRe.ReplaceAllString(title, " ")

	title = strings.Join(strings.Fields(title), " ")
	title = strings.Trim(title, ".,;:!? ")
	return title
}

// extractScope maps query phrasing to a window name.
func extractScope(lower string) string {
	switch {
	case strings.Contains(lower, "today"):
		return ScopeToday
	case strings.Contains(lower, "tomorrow"):
		return ScopeTomorrow
	case strings.Contains(lower, "this week"), strings.Contains(lower, "upcoming"):
		return ScopeWeek
	default:
		return ScopeAll
	}
}
