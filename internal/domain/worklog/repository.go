package worklog

import (
	"context"
	"time"
)

// WorklogRepository defines data access methods for worklog records.
type WorklogRepository interface {
	// List retrieves worklogs matching the given filter
	List(ctx context.Context, filter Filter) ([]Worklog, error)

	// GetByEmployeeOnDate retrieves all worklogs of an employee whose
	// log_time falls on the given calendar day. Returns an empty slice,
	// never an error, when nothing matches.
	GetByEmployeeOnDate(ctx context.Context, employeeID string, date time.Time) ([]Worklog, error)

	// Create validates and persists a new worklog record
	Create(ctx context.Context, newWorklog Worklog) (Worklog, error)
}
