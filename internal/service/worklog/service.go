package worklog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/atlasaero/hr-time-backend-go/internal/domain/employee"
	"github.com/atlasaero/hr-time-backend-go/internal/domain/worklog"
	"github.com/atlasaero/hr-time-backend-go/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
)

type WorklogServiceImpl struct {
	worklog.WorklogRepository
	employee.EmployeeRepository
}

func NewWorklogService(worklogRepo worklog.WorklogRepository, employeeRepo employee.EmployeeRepository) worklog.WorklogService {
	return &WorklogServiceImpl{
		WorklogRepository:  worklogRepo,
		EmployeeRepository: employeeRepo,
	}
}

// HasWorklogsToday implements worklog.WorklogService.
func (s *WorklogServiceImpl) HasWorklogsToday(ctx context.Context, employeeID string) (bool, error) {
	today := time.Now()

	worklogs, err := s.WorklogRepository.GetByEmployeeOnDate(ctx, employeeID, today)
	if err != nil {
		// A store failure is never treated as "no logs"
		return false, fmt.Errorf("failed to get today's worklogs: %w", err)
	}

	return len(worklogs) > 0, nil
}

// CreateWorklogNow implements worklog.WorklogService.
func (s *WorklogServiceImpl) CreateWorklogNow(ctx context.Context, req worklog.CreateWorklogRequest) (worklog.WorklogResponse, error) {
	employeeID := req.EmployeeID
	if employeeID == "" {
		resolved, err := s.resolveCurrentEmployee(ctx)
		if err != nil {
			// Identity resolution failure is a hard failure, not a validation one
			return worklog.WorklogResponse{}, err
		}
		employeeID = resolved
	}

	if validator.IsEmpty(req.TaskDesc) {
		return worklog.WorklogResponse{}, worklog.ErrEmptyTaskDescription
	}

	logTime := time.Now()

	created, err := s.WorklogRepository.Create(ctx, worklog.Worklog{
		EmployeeID: employeeID,
		LogTime:    logTime,
		TaskDesc:   req.TaskDesc,
		Task:       req.Task,
		TicketLink: req.TicketLink,
	})
	if err != nil {
		slog.Error("Failed to create worklog", "employee_id", employeeID, "error", err)
		return worklog.WorklogResponse{}, err
	}

	return worklog.ToResponse(created), nil
}

// ListWorklogs implements worklog.WorklogService.
func (s *WorklogServiceImpl) ListWorklogs(ctx context.Context, filter worklog.Filter) (worklog.ListWorklogResponse, error) {
	worklogs, err := s.WorklogRepository.List(ctx, filter)
	if err != nil {
		return worklog.ListWorklogResponse{}, fmt.Errorf("failed to list worklogs: %w", err)
	}

	resp := worklog.ListWorklogResponse{
		Worklogs: make([]worklog.WorklogResponse, 0, len(worklogs)),
	}
	for _, w := range worklogs {
		resp.Worklogs = append(resp.Worklogs, worklog.ToResponse(w))
	}

	return resp, nil
}

// resolveCurrentEmployee derives the acting employee from the request's JWT
// claims: the employee_id claim when present, otherwise the employee record
// linked to the user_id claim.
func (s *WorklogServiceImpl) resolveCurrentEmployee(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	if employeeID, ok := claims["employee_id"].(string); ok && employeeID != "" {
		return employeeID, nil
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}

	emp, err := s.EmployeeRepository.GetByUserID(ctx, userID)
	if err != nil {
		return "", err
	}

	return emp.ID, nil
}
