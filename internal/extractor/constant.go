package extractor

// Log prefixes
const (
	LogPrefixExtract = "internal.extractor.Extract"
)

// Extractor configuration
const (
	DefaultDurationMinutes = 60
	LLMTemperature         = 0.1
	LLMMaxOutputTokens     = 512
)

// Query scopes
const (
	ScopeAll      = "all"
	ScopeToday    = "today"
	ScopeTomorrow = "tomorrow"
	ScopeWeek     = "week"
)

// Extractor prompts
const (
	PromptExtractSystem = `You are an entity extractor for a personal assistant.
From the user's message, extract values for exactly these fields: %s.
Field meanings:
- title: short name of the task or event
- start_time: RFC 3339 timestamp of when the event starts
- recipient: a single email address
- subject: the email subject line
- body: the email body text

Respond with JSON only, no prose. Use only the requested field names as keys.
Omit any field whose value is not present in the message. Never invent values.`

	PromptExtractUser = `Message: %q`
)
