// Package testutil provides test utilities and helpers.
package testutil

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"frictionless/internal/db"
)

// TestDB creates a test database connection and returns a cleanup function.
// Skips the test unless TEST_DATABASE_URL is set.
func TestDB(t *testing.T) (*db.DB, func()) {
	t.Helper()

	connString := os.Getenv("TEST_DATABASE_URL")
	if connString == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping database test")
	}

	ctx := context.Background()
	database, err := db.New(ctx, connString)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := database.RunMigrations(connString); err != nil {
		database.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	cleanup := func() {
		cleanupTestData(ctx, database.Pool)
		database.Close()
	}

	return database, cleanup
}

// cleanupTestData removes all test data from the database.
func cleanupTestData(ctx context.Context, pool *pgxpool.Pool) {
	// Delete in order to respect foreign keys
	pool.Exec(ctx, "DELETE FROM chat_messages")
	pool.Exec(ctx, "DELETE FROM activity_events")
	pool.Exec(ctx, "DELETE FROM share_links")
	pool.Exec(ctx, "DELETE FROM ai_analysis_cache")
	pool.Exec(ctx, "DELETE FROM readiness_summaries")
	pool.Exec(ctx, "DELETE FROM query_lookups")
	pool.Exec(ctx, "DELETE FROM tasks")
	pool.Exec(ctx, "DELETE FROM users")
	pool.Exec(ctx, "DELETE FROM organizations")
}

// CreateTestOrg creates a test organization and returns its ID.
func CreateTestOrg(t *testing.T, database *db.DB, name, slug string) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	var id uuid.UUID
	err := database.Pool.QueryRow(ctx, `
		INSERT INTO organizations (name, slug)
		VALUES ($1, $2)
		ON CONFLICT (slug) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, name, slug).Scan(&id)
	if err != nil {
		t.Fatalf("failed to create test org: %v", err)
	}

	return id
}

// CreateTestUser creates a test user in the given organization and returns
// the user ID.
func CreateTestUser(t *testing.T, database *db.DB, sub, email, role string, orgID uuid.UUID) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	var id uuid.UUID
	err := database.Pool.QueryRow(ctx, `
		INSERT INTO users (sub, email, name, role, organization_id)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (sub) DO UPDATE SET email = EXCLUDED.email
		RETURNING id
	`, sub, email, "Test User "+sub, role, orgID).Scan(&id)
	if err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	return id
}

// CreateTestTask creates a test task and returns its ID.
func CreateTestTask(t *testing.T, database *db.DB, orgID uuid.UUID, category, title string, position int) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	var id uuid.UUID
	err := database.Pool.QueryRow(ctx, `
		INSERT INTO tasks (organization_id, category, title, description, status, weight, position)
		VALUES ($1, $2, $3, 'Test task', 'pending', 1, $4)
		ON CONFLICT (organization_id, category, title) DO UPDATE SET position = EXCLUDED.position
		RETURNING id
	`, orgID, category, title, position).Scan(&id)
	if err != nil {
		t.Fatalf("failed to create test task: %v", err)
	}

	return id
}
