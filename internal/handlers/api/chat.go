package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"frictionless/internal/assistant"
	"frictionless/internal/db"
	"frictionless/internal/models"
)

const chatAnalysisType = "task_chat"

// ChatHandler serves the per-task assistant conversation.
type ChatHandler struct {
	db        *db.DB
	assistant *assistant.Client
}

// NewChatHandler creates a new chat handler. The assistant client may be nil
// when no API key is configured; sending messages then returns 503 while
// history remains readable.
func NewChatHandler(database *db.DB, client *assistant.Client) *ChatHandler {
	return &ChatHandler{db: database, assistant: client}
}

// History handles GET /api/tasks/:id/chat.
func (h *ChatHandler) History(c fiber.Ctx) error {
	user, ok := requireOrgUser(c)
	if !ok {
		return nil
	}

	task, ok := h.loadTask(c, user)
	if !ok {
		return nil
	}

	messages, err := h.db.ListChatMessages(c.Context(), task.ID, 0)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to load chat history")
	}
	return jsonSuccess(c, messages)
}

type chatRequest struct {
	Message string `json:"message"`
}

// Send handles POST /api/tasks/:id/chat. Both the user message and the
// assistant reply are persisted so history survives reloads. Identical
// inputs are served from the analysis cache without calling the model.
func (h *ChatHandler) Send(c fiber.Ctx) error {
	user, ok := requireOrgUser(c)
	if !ok {
		return nil
	}
	if h.assistant == nil {
		return jsonError(c, fiber.StatusServiceUnavailable, "assistant not configured")
	}

	task, ok := h.loadTask(c, user)
	if !ok {
		return nil
	}

	var req chatRequest
	if err := c.Bind().Body(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		return jsonError(c, fiber.StatusBadRequest, "message is required")
	}
	if len(req.Message) > 4000 {
		return jsonError(c, fiber.StatusBadRequest, "message too long")
	}

	history, err := h.db.ListChatMessages(c.Context(), task.ID, 0)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to load chat history")
	}

	reply, cached := h.cachedReply(c, task, history, req.Message)
	if reply == nil {
		reply, err = h.assistant.TaskReply(c.Context(), task, history, req.Message)
		if err != nil {
			slog.Error("assistant reply failed", "task_id", task.ID, "error", err)
			return jsonError(c, fiber.StatusBadGateway, "assistant unavailable")
		}
		h.storeReply(c, task, history, req.Message, reply)
	}

	if err := h.db.InsertChatMessage(c.Context(), &models.ChatMessage{
		TaskID:  task.ID,
		Role:    models.ChatRoleUser,
		Content: req.Message,
	}); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to save message")
	}
	if err := h.db.InsertChatMessage(c.Context(), &models.ChatMessage{
		TaskID:  task.ID,
		Role:    models.ChatRoleAssistant,
		Content: reply.Text,
	}); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to save message")
	}

	if err := h.db.LogActivity(c.Context(), &models.ActivityEvent{
		OrganizationID: task.OrganizationID,
		EventType:      models.EventChatMessage,
		ActorUserID:    &user.ID,
		ResourceType:   "task",
		ResourceID:     task.ID.String(),
	}); err != nil {
		slog.Error("failed to log chat activity", "task_id", task.ID, "error", err)
	}

	return jsonSuccess(c, models.ChatResponse{
		Reply:           reply.Text,
		SuggestComplete: reply.SuggestComplete,
		Cached:          cached,
	})
}

// loadTask parses the task ID, loads the task, and checks it belongs to the
// user's organization. Writes the error response on failure.
func (h *ChatHandler) loadTask(c fiber.Ctx, user *models.User) (*models.Task, bool) {
	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		jsonError(c, fiber.StatusBadRequest, "invalid task id")
		return nil, false
	}

	task, err := h.db.GetTaskByID(c.Context(), taskID)
	if errors.Is(err, db.ErrTaskNotFound) {
		jsonError(c, fiber.StatusNotFound, "task not found")
		return nil, false
	}
	if err != nil {
		jsonError(c, fiber.StatusInternalServerError, "failed to load task")
		return nil, false
	}
	if !user.BelongsTo(task.OrganizationID) {
		jsonError(c, fiber.StatusNotFound, "task not found")
		return nil, false
	}
	return task, true
}

// chatCacheInput is the canonical input hashed for the analysis cache.
type chatCacheInput struct {
	TaskID  uuid.UUID `json:"task_id"`
	Message string    `json:"message"`
	History []string  `json:"history"`
}

func cacheInput(task *models.Task, history []models.ChatMessage, message string) chatCacheInput {
	texts := make([]string, 0, len(history))
	for _, m := range history {
		texts = append(texts, m.Role+":"+m.Content)
	}
	return chatCacheInput{TaskID: task.ID, Message: message, History: texts}
}

func (h *ChatHandler) cachedReply(c fiber.Ctx, task *models.Task, history []models.ChatMessage, message string) (*assistant.Reply, bool) {
	hash := db.HashCacheInput(cacheInput(task, history, message))
	if hash == "" {
		return nil, false
	}
	raw, ok := h.db.GetCachedAnalysis(c.Context(), task.OrganizationID, chatAnalysisType, hash)
	if !ok {
		return nil, false
	}
	var reply assistant.Reply
	if err := json.Unmarshal([]byte(raw), &reply); err != nil || reply.Text == "" {
		return nil, false
	}
	return &reply, true
}

func (h *ChatHandler) storeReply(c fiber.Ctx, task *models.Task, history []models.ChatMessage, message string, reply *assistant.Reply) {
	hash := db.HashCacheInput(cacheInput(task, history, message))
	if hash == "" {
		return
	}
	raw, err := json.Marshal(reply)
	if err != nil {
		return
	}
	if err := h.db.SetCachedAnalysis(c.Context(), task.OrganizationID, chatAnalysisType, hash, h.assistant.Model(), string(raw)); err != nil {
		slog.Error("failed to cache assistant reply", "task_id", task.ID, "error", err)
	}
}
