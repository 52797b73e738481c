package datemath

import "time"

// ParseResult holds a resolved date/time phrase.
type ParseResult struct {
	AbsoluteTime time.Time
	IsAllDay     bool // true when no clock time was present in the phrase
}
