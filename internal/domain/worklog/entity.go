package worklog

import (
	"strings"
	"time"
)

type Worklog struct {
	ID         string
	EmployeeID string
	LogTime    time.Time
	TaskDesc   string
	Task       *string
	TicketLink *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ValidateForCreate checks the creation invariants against the given
// wall-clock instant. Validation happens exactly once, at creation time:
// a LogTime equal to now is accepted, only a strictly later one is rejected.
func (w Worklog) ValidateForCreate(now time.Time) error {
	if strings.TrimSpace(w.TaskDesc) == "" {
		return ErrEmptyTaskDescription
	}
	if w.LogTime.After(now) {
		return ErrFutureLogTime
	}
	return nil
}

// DayWindow returns the inclusive interval covering the whole calendar day
// of date, [00:00:00.000000, 23:59:59.999999], in date's location. Both
// bounds are built from wall-clock components so the window stays on the
// calendar day even when a DST transition makes it shorter or longer than
// 24 hours.
func DayWindow(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	end := time.Date(date.Year(), date.Month(), date.Day(), 23, 59, 59, 999999000, date.Location())
	return start, end
}
