package usecase

import "time"

// scopeWindow maps a named scope to a half-open deadline window.
// Unknown scopes (including "all") apply no bounds.
func scopeWindow(now time.Time, scope string) (after, before *time.Time) {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch scope {
	case "today":
		end := startOfDay.AddDate(0, 0, 1)
		return &startOfDay, &end
	case "tomorrow":
		start := startOfDay.AddDate(0, 0, 1)
		end := startOfDay.AddDate(0, 0, 2)
		return &start, &end
	case "week":
		end := startOfDay.AddDate(0, 0, 7)
		return &startOfDay, &end
	default:
		return nil, nil
	}
}
