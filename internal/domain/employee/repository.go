package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	// GetByUserID retrieves the employee record linked to an application user.
	// Returns ErrEmployeeNotFound when no employee maps to the user.
	GetByUserID(ctx context.Context, userID string) (Employee, error)
}
