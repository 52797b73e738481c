package event

import "errors"

var (
	ErrEventNotFound     = errors.New("event not found")
	ErrTitleRequired     = errors.New("event title is required")
	ErrStartTimeRequired = errors.New("event start time is required")
)
