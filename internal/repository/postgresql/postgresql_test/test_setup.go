package postgresql_test

import (
	"context"
	"fmt"
	"os"

	"github.com/atlasaero/hr-time-backend-go/internal/pkg/database"
)

// TestDatabaseSetup wraps the connection to the test database
type TestDatabaseSetup struct {
	DB *database.DB
}

// NewTestDatabase connects to the test database named by TEST_DATABASE_URL.
// Returns nil when the variable is unset so callers can skip.
func NewTestDatabase() (*TestDatabaseSetup, error) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		return nil, nil
	}

	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to test database: %w", err)
	}

	setup := &TestDatabaseSetup{DB: db}
	if err := setup.ensureSchema(context.Background()); err != nil {
		return nil, err
	}

	return setup, nil
}

func (t *TestDatabaseSetup) ensureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS employees (
			id TEXT PRIMARY KEY,
			user_id TEXT,
			employee_code TEXT NOT NULL DEFAULT '',
			full_name TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS worklogs (
			id TEXT PRIMARY KEY,
			employee_id TEXT NOT NULL,
			log_time TIMESTAMPTZ NOT NULL,
			task_desc TEXT NOT NULL,
			task TEXT,
			ticket_link TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}

	for _, stmt := range statements {
		if _, err := t.DB.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure test schema: %w", err)
		}
	}
	return nil
}

// TruncateAllTables removes all data between tests
func (t *TestDatabaseSetup) TruncateAllTables(ctx context.Context) error {
	tables := []string{
		"worklogs",
		"employees",
	}

	for _, table := range tables {
		if _, err := t.DB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)); err != nil {
			return err
		}
	}
	return nil
}
