package usecase

const (
	MsgClarifyIntent  = "I'm not sure what you'd like me to do. Could you rephrase that?"
	MsgClarifyFields  = "I need a bit more information: please provide %s."
	MsgDispatchFailed = "Something went wrong while handling that: %v"

	MsgTaskCreated  = "Created task %q."
	MsgEventCreated = "Scheduled %q for %s."
	MsgEmailSent    = "Email sent to %s."
	MsgTasksFound   = "You have %d task(s)."
	MsgEventsFound  = "You have %d event(s)."
)
