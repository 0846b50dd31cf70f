package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"frictionless/internal/db"
	"frictionless/internal/models"
)

// TaskHandler serves the readiness task list and completion endpoint.
type TaskHandler struct {
	db *db.DB
}

// NewTaskHandler creates a new task handler.
func NewTaskHandler(database *db.DB) *TaskHandler {
	return &TaskHandler{db: database}
}

// List handles GET /api/tasks, returning tasks grouped by category.
func (h *TaskHandler) List(c fiber.Ctx) error {
	user, ok := requireOrgUser(c)
	if !ok {
		return nil
	}

	groups, err := h.db.GetTaskGroups(c.Context(), *user.OrganizationID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to load tasks")
	}
	return jsonSuccess(c, groups)
}

// MarkDone handles POST /api/tasks/:id/done. Completing an already done
// task is a no-op and returns the task unchanged.
func (h *TaskHandler) MarkDone(c fiber.Ctx) error {
	user, ok := requireOrgUser(c)
	if !ok {
		return nil
	}

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid task id")
	}

	task, err := h.db.GetTaskByID(c.Context(), taskID)
	if errors.Is(err, db.ErrTaskNotFound) {
		return jsonError(c, fiber.StatusNotFound, "task not found")
	}
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to load task")
	}
	if !user.BelongsTo(task.OrganizationID) {
		return jsonError(c, fiber.StatusNotFound, "task not found")
	}

	alreadyDone := task.IsDone()
	task, err = h.db.MarkTaskDone(c.Context(), taskID, &user.ID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to complete task")
	}

	if !alreadyDone {
		if err := h.db.LogActivity(c.Context(), &models.ActivityEvent{
			OrganizationID: task.OrganizationID,
			EventType:      models.EventTaskCompleted,
			ActorUserID:    &user.ID,
			ResourceType:   "task",
			ResourceID:     task.ID.String(),
			Metadata:       map[string]any{"category": task.Category, "title": task.Title},
		}); err != nil {
			slog.Error("failed to log task completion", "task_id", task.ID, "error", err)
		}

		// Cached chat replies may still suggest completing this task.
		if err := h.db.InvalidateAnalysisCache(c.Context(), task.OrganizationID, chatAnalysisType); err != nil {
			slog.Error("failed to invalidate analysis cache", "org_id", task.OrganizationID, "error", err)
		}
	}

	return jsonSuccess(c, task)
}
