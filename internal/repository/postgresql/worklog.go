package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/atlasaero/hr-time-backend-go/internal/domain/worklog"
	"github.com/atlasaero/hr-time-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type worklogRepository struct {
	db *database.DB
}

func NewWorklogRepository(db *database.DB) worklog.WorklogRepository {
	return &worklogRepository{db: db}
}

const worklogColumns = `id, employee_id, log_time, task_desc, task, ticket_link, created_at, updated_at`

// List implements worklog.WorklogRepository.
func (r *worklogRepository) List(ctx context.Context, filter worklog.Filter) ([]worklog.Worklog, error) {
	q := GetQuerier(ctx, r.db)

	// Build WHERE clause
	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	// Range bounds are inclusive on both ends
	if filter.LogTimeFrom != nil {
		baseWhere += fmt.Sprintf(" AND log_time >= $%d", argIdx)
		args = append(args, *filter.LogTimeFrom)
		argIdx++
	}
	if filter.LogTimeTo != nil {
		baseWhere += fmt.Sprintf(" AND log_time <= $%d", argIdx)
		args = append(args, *filter.LogTimeTo)
		argIdx++
	}

	if filter.Task != nil && *filter.Task != "" {
		baseWhere += fmt.Sprintf(" AND task = $%d", argIdx)
		args = append(args, *filter.Task)
		argIdx++
	}

	query := `
		SELECT ` + worklogColumns + `
		FROM worklogs
		WHERE ` + baseWhere + `
		ORDER BY log_time
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list worklogs: %w", err)
	}
	defer rows.Close()

	return scanWorklogs(rows)
}

// GetByEmployeeOnDate implements worklog.WorklogRepository.
func (r *worklogRepository) GetByEmployeeOnDate(ctx context.Context, employeeID string, date time.Time) ([]worklog.Worklog, error) {
	q := GetQuerier(ctx, r.db)

	dayStart, dayEnd := worklog.DayWindow(date)

	query := `
		SELECT ` + worklogColumns + `
		FROM worklogs
		WHERE employee_id = $1
		  AND log_time BETWEEN $2 AND $3
		ORDER BY log_time
	`

	rows, err := q.Query(ctx, query, employeeID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to get worklogs by employee and date: %w", err)
	}
	defer rows.Close()

	return scanWorklogs(rows)
}

// Create implements worklog.WorklogRepository. The creation invariants are
// checked before any store interaction; a persistence failure rolls the
// transaction back and surfaces the underlying error.
func (r *worklogRepository) Create(ctx context.Context, newWorklog worklog.Worklog) (worklog.Worklog, error) {
	if newWorklog.LogTime.IsZero() {
		newWorklog.LogTime = time.Now()
	}

	if err := newWorklog.ValidateForCreate(time.Now()); err != nil {
		return worklog.Worklog{}, err
	}

	if newWorklog.ID == "" {
		newWorklog.ID = uuid.NewString()
	}

	err := WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		query := `
			INSERT INTO worklogs (
				id, employee_id, log_time, task_desc, task, ticket_link
			) VALUES (
				$1, $2, $3, $4, $5, $6
			) RETURNING created_at, updated_at
		`

		return q.QueryRow(txCtx, query,
			newWorklog.ID,
			newWorklog.EmployeeID,
			newWorklog.LogTime,
			newWorklog.TaskDesc,
			newWorklog.Task,
			newWorklog.TicketLink,
		).Scan(&newWorklog.CreatedAt, &newWorklog.UpdatedAt)
	})

	if err != nil {
		return worklog.Worklog{}, err
	}

	return newWorklog, nil
}

func scanWorklogs(rows pgx.Rows) ([]worklog.Worklog, error) {
	worklogs := make([]worklog.Worklog, 0)
	for rows.Next() {
		var w worklog.Worklog
		if err := rows.Scan(
			&w.ID, &w.EmployeeID, &w.LogTime, &w.TaskDesc, &w.Task, &w.TicketLink,
			&w.CreatedAt, &w.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan worklog row: %w", err)
		}
		worklogs = append(worklogs, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read worklog rows: %w", err)
	}

	return worklogs, nil
}
