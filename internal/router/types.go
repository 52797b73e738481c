package router

// Intent represents user's intention
type Intent string

const (
	IntentCreateTask  Intent = "CREATE_TASK"
	IntentCreateEvent Intent = "CREATE_EVENT"
	IntentSendEmail   Intent = "SEND_EMAIL"
	IntentQueryTasks  Intent = "QUERY_TASKS"
	IntentQueryEvents Intent = "QUERY_EVENTS"
	IntentUnknown     Intent = "UNKNOWN"
)

// AllIntents lists the closed label set, in dispatch precedence order.
var AllIntents = []Intent{
	IntentCreateEvent,
	IntentSendEmail,
	IntentCreateTask,
	IntentQueryTasks,
	IntentQueryEvents,
}

// Valid reports whether the intent belongs to the closed label set.
func (i Intent) Valid() bool {
	switch i {
	case IntentCreateTask, IntentCreateEvent, IntentSendEmail,
		IntentQueryTasks, IntentQueryEvents, IntentUnknown:
		return true
	}
	return false
}

// Output is the structured result of intent classification
type Output struct {
	Intent     Intent  `json:"intent"`
	Confidence float64 `json:"confidence"` // 0-1
	Reasoning  string  `json:"reasoning,omitempty"`
}
