package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/atlasaero/hr-time-backend-go/internal/domain/worklog"
	"github.com/atlasaero/hr-time-backend-go/internal/handler/http/response"
	"github.com/atlasaero/hr-time-backend-go/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
)

type WorklogHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	HasWorklogsToday(w http.ResponseWriter, r *http.Request)
}

type worklogHandlerImpl struct {
	worklogService worklog.WorklogService
}

func NewWorklogHandler(worklogService worklog.WorklogService) WorklogHandler {
	return &worklogHandlerImpl{
		worklogService: worklogService,
	}
}

// Create implements WorklogHandler.
func (h *worklogHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req worklog.CreateWorklogRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode request body", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	// Call service
	result, err := h.worklogService.CreateWorklogNow(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, worklog.MsgCreated, result)
}

// List implements WorklogHandler.
func (h *worklogHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseWorklogFilter(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.worklogService.ListWorklogs(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// HasWorklogsToday implements WorklogHandler.
func (h *worklogHandlerImpl) HasWorklogsToday(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employee_id")
	if employeeID == "" {
		// Fall back to the session employee
		if _, claims, err := jwtauth.FromContext(r.Context()); err == nil {
			if id, ok := claims["employee_id"].(string); ok {
				employeeID = id
			}
		}
	}
	if employeeID == "" {
		response.BadRequest(w, "employee_id is required", nil)
		return
	}

	hasWorklogs, err := h.worklogService.HasWorklogsToday(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, worklog.TodayResponse{HasWorklogsToday: hasWorklogs})
}

func parseWorklogFilter(r *http.Request) (worklog.Filter, error) {
	var filter worklog.Filter
	var errs validator.ValidationErrors

	query := r.URL.Query()

	if employeeID := query.Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}
	if task := query.Get("task"); task != "" {
		filter.Task = &task
	}

	if from := query.Get("from"); from != "" {
		t, ok := parseTimeParam(from)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "from",
				Message: "from must be a date (YYYY-MM-DD) or an ISO8601 timestamp",
			})
		} else {
			filter.LogTimeFrom = &t
		}
	}
	if to := query.Get("to"); to != "" {
		t, ok := parseTimeParam(to)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "to",
				Message: "to must be a date (YYYY-MM-DD) or an ISO8601 timestamp",
			})
		} else {
			// A bare date upper bound covers the whole day
			if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
				_, dayEnd := worklog.DayWindow(t)
				t = dayEnd
			}
			filter.LogTimeTo = &t
		}
	}

	if len(errs) > 0 {
		return worklog.Filter{}, errs
	}

	return filter, nil
}

func parseTimeParam(value string) (time.Time, bool) {
	if t, ok := validator.IsValidDateTime(value); ok {
		return t, true
	}
	if t, ok := validator.IsValidDate(value); ok {
		return t, true
	}
	return time.Time{}, false
}
