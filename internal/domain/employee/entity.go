package employee

import (
	"time"
)

type Employee struct {
	ID           string
	UserID       *string
	EmployeeCode string
	FullName     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
