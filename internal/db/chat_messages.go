package db

import (
	"context"

	"github.com/google/uuid"

	"frictionless/internal/models"
)

// InsertChatMessage persists one turn of a task conversation.
func (d *DB) InsertChatMessage(ctx context.Context, msg *models.ChatMessage) error {
	return d.Pool.QueryRow(ctx, `
		INSERT INTO chat_messages (task_id, role, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, msg.TaskID, msg.Role, msg.Content).Scan(&msg.ID, &msg.CreatedAt)
}

// ListChatMessages returns a task's conversation in chronological order,
// capped at the most recent limit messages.
func (d *DB) ListChatMessages(ctx context.Context, taskID uuid.UUID, limit int) ([]models.ChatMessage, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	rows, err := d.Pool.Query(ctx, `
		SELECT id, task_id, role, content, created_at FROM (
			SELECT id, task_id, role, content, created_at
			FROM chat_messages
			WHERE task_id = $1
			ORDER BY created_at DESC
			LIMIT $2
		) recent
		ORDER BY created_at ASC
	`, taskID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []models.ChatMessage
	for rows.Next() {
		var msg models.ChatMessage
		if err := rows.Scan(&msg.ID, &msg.TaskID, &msg.Role, &msg.Content, &msg.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}
