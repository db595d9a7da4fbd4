package worklog

import "errors"

// Worklog domain errors
var (
	// Creation errors
	ErrEmptyTaskDescription = errors.New("task description cannot be empty")
	ErrFutureLogTime        = errors.New("worklog time cannot be set in the future")

	// General errors
	ErrWorklogNotFound = errors.New("worklog not found")
)

// MsgCreated is the confirmation message returned after a successful creation.
const MsgCreated = "Worklog created successfully"
