package response

import (
	"errors"
	"net/http"

	"github.com/atlasaero/hr-time-backend-go/internal/domain/employee"
	"github.com/atlasaero/hr-time-backend-go/internal/domain/worklog"
	"github.com/atlasaero/hr-time-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. The envelope message
// always carries the error's own text.
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Worklog domain errors
	case errors.Is(err, worklog.ErrEmptyTaskDescription):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, worklog.ErrFutureLogTime):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, worklog.ErrWorklogNotFound):
		NotFound(w, err.Error())

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, err.Error())

	// Default
	default:
		InternalServerError(w, err.Error())
	}
}
