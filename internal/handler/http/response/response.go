package response

import (
	"encoding/json"
	"net/http"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Envelope is the uniform wrapper returned by every endpoint.
type Envelope struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func NewSuccess(message string, data interface{}) Envelope {
	return Envelope{
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
	}
}

func NewError(message string, data interface{}) Envelope {
	return Envelope{
		Status:  StatusError,
		Message: message,
		Data:    data,
	}
}

func writeJSON(w http.ResponseWriter, statusCode int, payload Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		fallback := NewError("Failed to encode response", nil)
		_ = json.NewEncoder(w).Encode(fallback)
	}
}

// Success responses
func Success(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, NewSuccess("", data))
}

func SuccessWithMessage(w http.ResponseWriter, message string, data interface{}) {
	writeJSON(w, http.StatusOK, NewSuccess(message, data))
}

func Created(w http.ResponseWriter, message string, data interface{}) {
	writeJSON(w, http.StatusCreated, NewSuccess(message, data))
}

// Error responses
func BadRequest(w http.ResponseWriter, message string, data interface{}) {
	writeJSON(w, http.StatusBadRequest, NewError(message, data))
}

func ValidationError(w http.ResponseWriter, details map[string]string) {
	writeJSON(w, http.StatusUnprocessableEntity, NewError("Validation failed", details))
}

func Unauthorized(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusUnauthorized, NewError(message, nil))
}

func NotFound(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusNotFound, NewError(message, nil))
}

func InternalServerError(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusInternalServerError, NewError(message, nil))
}
