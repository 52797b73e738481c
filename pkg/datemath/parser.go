package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser resolves natural-language date/time phrases to absolute time.Time values.
type Parser struct {
	location *time.Location
}

const (
	relativeDayPat = `\b(today|tomorrow|yesterday)\b`
	weekdayPat     = `\b(?:next\s+)?(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`
	inDurationPat  = `\bin\s+(\d+)\s+(minute|hour|day|week|month)s?\b`
	// Clock times require am/pm or a minute component, so bare counts
	// ("for 30 minutes") are never mistaken for a time of day.
	clockPat = `\b(\d{1,2}):(\d{2})\s*(am|pm)?\b|\b(\d{1,2})\s*(am|pm)\b`
)

var (
	relativeDayRe = regexp.MustCompile(relativeDayPat)
	weekdayRe     = regexp.MustCompile(weekdayPat)
	inDurationRe  = regexp.MustCompile(inDurationPat)
	clockRe       = regexp.MustCompile(clockPat)

	// stripRe matches any recognized time phrase, with its leading
	// connective ("by friday", "at 9 am") so removal leaves clean text.
	stripRe = regexp.MustCompile(`(?i)(?:\b(?:at|by|on|before|until|from)\s+)?(?:` +
		relativeDayPat + `|` + weekdayPat + `|` + inDurationPat + `|(?:` + clockPat + `))`)

	weekdays = map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}
)

// NewParser creates a date parser for the given IANA timezone string,
// e.g. "America/New_York".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Scan finds date and clock-time phrases anywhere in text and resolves them
// against base. Day and clock parts combine: "tomorrow at 9 am" yields
// tomorrow 09:00. A clock time without a day resolves to its next future
// occurrence relative to base. Returns false if text carries no phrase.
func (p *Parser) Scan(text string, base time.Time) (ParseResult, bool) {
	text = strings.ToLower(text)
	base = base.In(p.location)

	day, dayFound := p.scanDay(text, base)
	hour, minute, clockFound := scanClock(text)

	switch {
	case dayFound && clockFound:
		return ParseResult{AbsoluteTime: p.at(day, hour, minute)}, true
	case dayFound:
		return ParseResult{AbsoluteTime: p.startOfDay(day), IsAllDay: true}, true
	case clockFound:
		t := p.at(base, hour, minute)
		if !t.After(base) {
			t = t.AddDate(0, 0, 1)
		}
		return ParseResult{AbsoluteTime: t}, true
	}

	// "in N minutes/hours" has no day component but is a full timestamp.
	if t, ok := p.scanInDuration(text, base); ok {
		return ParseResult{AbsoluteTime: t}, true
	}

	return ParseResult{}, false
}

// scanDay resolves the date portion of text: relative day names, weekdays,
// and "in N days/weeks/months".
func (p *Parser) scanDay(text string, base time.Time) (time.Time, bool) {
	if m := relativeDayRe.FindStringSubmatch(text); m != nil {
		switch m[1] {
		case "today":
			return base, true
		case "tomorrow":
			return base.AddDate(0, 0, 1), true
		case "yesterday":
			return base.AddDate(0, 0, -1), true
		}
	}

	if m := weekdayRe.FindStringSubmatch(text); m != nil {
		target := weekdays[m[1]]
		daysUntil := (int(target) - int(base.Weekday()) + 7) % 7
		if daysUntil == 0 {
			daysUntil = 7
		}
		return base.AddDate(0, 0, daysUntil), true
	}

	if m := inDurationRe.FindStringSubmatch(text); m != nil {
		amount, _ := strconv.Atoi(m[1])
		switch m[2] {
		case "day":
			return base.AddDate(0, 0, amount), true
		case "week":
			return base.AddDate(0, 0, amount*7), true
		case "month":
			return base.AddDate(0, amount, 0), true
		}
	}

	return time.Time{}, false
}

// scanInDuration handles sub-day offsets: "in 30 minutes", "in 2 hours".
func (p *Parser) scanInDuration(text string, base time.Time) (time.Time, bool) {
	m := inDurationRe.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}

	amount, _ := strconv.Atoi(m[1])
	switch m[2] {
	case "minute":
		return base.Add(time.Duration(amount) * time.Minute), true
	case "hour":
		return base.Add(time.Duration(amount) * time.Hour), true
	}
	return time.Time{}, false
}

// scanClock extracts an hour/minute pair from "3 pm", "3:30pm" or "15:00".
func scanClock(text string) (hour, minute int, found bool) {
	m := clockRe.FindStringSubmatch(text)
	if m == nil {
		return 0, 0, false
	}

	var period string
	if m[1] != "" {
		hour, _ = strconv.Atoi(m[1])
		minute, _ = strconv.Atoi(m[2])
		period = m[3]
	} else {
		hour, _ = strconv.Atoi(m[4])
		period = m[5]
	}

	if hour > 23 || minute > 59 {
		return 0, 0, false
	}
	if period == "pm" && hour < 12 {
		hour += 12
	} else if period == "am" && hour == 12 {
		hour = 0
	}
	return hour, minute, true
}

// at returns the given day at hour:minute in the parser's timezone.
func (p *Parser) at(day time.Time, hour, minute int) time.Time {
	day = day.In(p.location)
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, p.location)
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}

// StartOfDay exposes day truncation for query-scope windows.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	return p.startOfDay(t)
}

// StripTimePhrases removes every recognized date/time phrase from text,
// collapsing the leftover whitespace. Useful for isolating a title once the
// time parts have been consumed by Scan.
func StripTimePhrases(text string) string {
	out := stripRe.ReplaceAllString(text, " ")
	return strings.Join(strings.Fields(out), " ")
}
