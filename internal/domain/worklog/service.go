package worklog

import (
	"context"
)

// WorklogService defines business logic for worklog operations
type WorklogService interface {
	// HasWorklogsToday reports whether the employee has at least one worklog
	// whose log_time falls on the current day. A store failure propagates as
	// an error, it is never treated as "no logs".
	HasWorklogsToday(ctx context.Context, employeeID string) (bool, error)

	// CreateWorklogNow records a worklog timestamped with the current
	// wall-clock time. When req.EmployeeID is empty the acting employee is
	// resolved from the request identity.
	CreateWorklogNow(ctx context.Context, req CreateWorklogRequest) (WorklogResponse, error)

	// ListWorklogs retrieves worklogs matching the filter
	ListWorklogs(ctx context.Context, filter Filter) (ListWorklogResponse, error)
}
