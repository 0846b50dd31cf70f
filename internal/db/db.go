package db

import (
	"context"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"

	"frictionless/migrations"
)

// DB wraps a pgxpool connection pool.
type DB struct {
	Pool *pgxpool.Pool
}

// New creates a new database connection pool.
func New(ctx context.Context, connString string) (*DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{Pool: pool}, nil
}

// RunMigrations runs all embedded SQL migrations.
func (d *DB) RunMigrations(connString string) error {
	sourceDriver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", sourceDriver, connString)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration failed: %w", err)
	}

	return nil
}

// Ping checks database connectivity.
func (d *DB) Ping(ctx context.Context) error {
	return d.Pool.Ping(ctx)
}

// Close closes the connection pool.
func (d *DB) Close() {
	d.Pool.Close()
}

// SeedDevData inserts a development organization with a starter task list.
// Skips anything that already exists.
func (d *DB) SeedDevData(ctx context.Context) error {
	var orgID string
	err := d.Pool.QueryRow(ctx, `
		INSERT INTO organizations (name, slug)
		VALUES ('Acme Robotics', 'acme-robotics')
		ON CONFLICT (slug) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`).Scan(&orgID)
	if err != nil {
		return fmt.Errorf("failed to seed organization: %w", err)
	}

	tasks := []struct {
		category string
		title    string
		weight   int
		position int
	}{
		{"Pitch", "Upload your pitch deck", 3, 1},
		{"Pitch", "Add a one-line company summary", 1, 2},
		{"Financials", "Upload last 12 months of financials", 3, 1},
		{"Financials", "Set your current runway", 2, 2},
		{"Team", "Add founder LinkedIn profiles", 2, 1},
		{"Legal", "Upload your cap table", 3, 1},
	}

	query := `
		INSERT INTO tasks (organization_id, category, title, weight, position, status)
		VALUES ($1, $2, $3, $4, $5, 'pending')
		ON CONFLICT (organization_id, category, title) DO NOTHING
	`

	for _, task := range tasks {
		if _, err := d.Pool.Exec(ctx, query, orgID, task.category, task.title, task.weight, task.position); err != nil {
			return fmt.Errorf("failed to seed task %q: %w", task.title, err)
		}
	}

	return nil
}
