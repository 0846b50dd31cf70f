package db

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"frictionless/internal/models"
)

// taskColumns is the standard column list for task queries.
const taskColumns = `id, organization_id, category, title, description, status,
	weight, position, completed_by, completed_at, created_at, updated_at`

func scanTask(row pgx.Row) (*models.Task, error) {
	var task models.Task
	err := row.Scan(
		&task.ID,
		&task.OrganizationID,
		&task.Category,
		&task.Title,
		&task.Description,
		&task.Status,
		&task.Weight,
		&task.Position,
		&task.CompletedBy,
		&task.CompletedAt,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// GetTaskByID retrieves a single task.
func (d *DB) GetTaskByID(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	row := d.Pool.QueryRow(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id)
	return scanTask(row)
}

// ListOrgTasks returns all tasks for an organization in display order.
func (d *DB) ListOrgTasks(ctx context.Context, orgID uuid.UUID) ([]models.Task, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT `+taskColumns+`
		FROM tasks
		WHERE organization_id = $1
		ORDER BY category, position, created_at
	`, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var task models.Task
		if err := rows.Scan(
			&task.ID,
			&task.OrganizationID,
			&task.Category,
			&task.Title,
			&task.Description,
			&task.Status,
			&task.Weight,
			&task.Position,
			&task.CompletedBy,
			&task.CompletedAt,
			&task.CreatedAt,
			&task.UpdatedAt,
		); err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

// GetTaskGroups returns the organization's tasks grouped by category with
// completion counts, preserving category order of first appearance.
func (d *DB) GetTaskGroups(ctx context.Context, orgID uuid.UUID) ([]models.TaskGroup, error) {
	tasks, err := d.ListOrgTasks(ctx, orgID)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int)
	var groups []models.TaskGroup
	for _, task := range tasks {
		i, ok := index[task.Category]
		if !ok {
			i = len(groups)
			index[task.Category] = i
			groups = append(groups, models.TaskGroup{Category: task.Category})
		}
		groups[i].Tasks = append(groups[i].Tasks, task)
		if task.IsDone() {
			groups[i].Done++
		} else {
			groups[i].Pending++
		}
	}
	return groups, nil
}

// MarkTaskDone marks a task as completed. Idempotent: completing an already
// completed task keeps the original completion record.
func (d *DB) MarkTaskDone(ctx context.Context, taskID uuid.UUID, userID *uuid.UUID) (*models.Task, error) {
	now := time.Now()
	row := d.Pool.QueryRow(ctx, `
		UPDATE tasks
		SET status = $1,
			completed_by = COALESCE(completed_by, $2),
			completed_at = COALESCE(completed_at, $3),
			updated_at = NOW()
		WHERE id = $4
		RETURNING `+taskColumns+`
	`, models.TaskDone, userID, now, taskID)
	return scanTask(row)
}

// CountPendingTasks returns the number of pending tasks for an organization.
func (d *DB) CountPendingTasks(ctx context.Context, orgID uuid.UUID) (int, error) {
	var count int
	err := d.Pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM tasks WHERE organization_id = $1 AND status = $2
	`, orgID, models.TaskPending).Scan(&count)
	return count, err
}
