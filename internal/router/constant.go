package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// Classifier configuration
const (
	CacheSize = 512

	// Rule hits start here and climb with additional corroborating patterns.
	RuleBaseConfidence = 0.6
	RuleMatchBonus     = 0.05
	RuleMaxConfidence  = 0.9
	LLMTemperature     = 0.1
	LLMMaxOutputTokens = 256
	LLMRetryOnBadLabel = 1
)

// Classifier prompts
const (
	PromptClassifySystem = `You are an intent classifier for a personal assistant.
Classify the user's message into exactly one of these intents:
- CREATE_EVENT: schedule a meeting, appointment, or anything with a time slot
- SEND_EMAIL: compose or send an email
- CREATE_TASK: create a task, todo, or reminder
- QUERY_TASKS: list or ask about existing tasks
- QUERY_EVENTS: list or ask about the calendar or schedule
- UNKNOWN: none of the above

Respond with JSON only, no prose:
{"intent": "<one of the labels above>", "confidence": <0.0-1.0>, "reasoning": "<one short sentence>"}`

	PromptClassifyUser = `Message: %q`
)

// Fallback reasons
const (
	ReasonNoRuleMatch   = "no classification rule matched"
	ReasonLLMRejected   = "LLM returned an out-of-set label"
	ReasonLLMParseError = "LLM response was not valid JSON"
)
