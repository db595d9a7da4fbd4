package worklog

import (
	"time"

	"github.com/atlasaero/hr-time-backend-go/internal/pkg/validator"
)

// ========================================
// WORKLOG DTOs
// ========================================

type CreateWorklogRequest struct {
	EmployeeID string  `json:"employee_id"`
	TaskDesc   string  `json:"task_desc"`
	Task       *string `json:"task"`
	TicketLink *string `json:"ticket_link"`
}

func (r *CreateWorklogRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.TaskDesc) {
		errs = append(errs, validator.ValidationError{
			Field:   "task_desc",
			Message: "task_desc is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Filter is the opaque filter mapping passed to the repository's List.
// Range bounds are inclusive on both ends.
type Filter struct {
	EmployeeID  *string
	LogTimeFrom *time.Time
	LogTimeTo   *time.Time
	Task        *string
}

type WorklogResponse struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employee_id"`
	LogTime    time.Time `json:"log_time"`
	TaskDesc   string    `json:"task_desc"`
	Task       *string   `json:"task,omitempty"`
	TicketLink *string   `json:"ticket_link,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type ListWorklogResponse struct {
	Worklogs []WorklogResponse `json:"worklogs"`
}

type TodayResponse struct {
	HasWorklogsToday bool `json:"has_worklogs_today"`
}

func ToResponse(w Worklog) WorklogResponse {
	return WorklogResponse{
		ID:         w.ID,
		EmployeeID: w.EmployeeID,
		LogTime:    w.LogTime,
		TaskDesc:   w.TaskDesc,
		Task:       w.Task,
		TicketLink: w.TicketLink,
		CreatedAt:  w.CreatedAt,
	}
}
