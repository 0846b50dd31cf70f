// Package assistant wraps the Gemini API for task completion chat.
package assistant

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"frictionless/internal/models"
)

// systemPrompt keeps the model focused on completing the one task at hand
// and forces a machine-readable reply.
const systemPrompt = `You are a conversational assistant helping a founder complete THIS SPECIFIC task.
Your goal: help them actually complete the task, not give generic improvement advice.

- Be conversational and supportive. Ask follow-up questions when needed.
- Give step-by-step instructions to COMPLETE the task.
- If they share progress, acknowledge it and guide next steps.
- If they say they're done or have provided everything required, set suggest_complete: true.
- Do NOT give broad "how to improve your pitch" advice. Focus on THIS task only.
- Keep replies concise (under 150 words) unless detail is needed.

Respond with JSON only: {"reply": "your message", "suggest_complete": false or true}`

// Reply is the assistant's parsed response.
type Reply struct {
	Text            string `json:"reply"`
	SuggestComplete bool   `json:"suggest_complete"`
}

// Client calls the Gemini API.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient creates an assistant client.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("assistant API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create assistant client: %w", err)
	}

	return &Client{client: client, model: model}, nil
}

// Model returns the configured model name, for cache keys and logs.
func (c *Client) Model() string {
	return c.model
}

// TaskReply asks the model for the next chat turn on a task. History is the
// persisted conversation so far, oldest first.
func (c *Client) TaskReply(ctx context.Context, task *models.Task, history []models.ChatMessage, userMessage string) (*Reply, error) {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, msg := range history {
		contents = append(contents, genai.NewContentFromText(msg.Content, chatRole(msg.Role)))
	}
	contents = append(contents, genai.NewContentFromText(userMessage, genai.RoleUser))

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(taskSystemPrompt(task), genai.RoleUser),
		Temperature:       genai.Ptr[float32](0.4),
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("assistant request failed: %w", err)
	}

	reply := ParseReply(result.Text())
	if reply.Text == "" {
		return nil, fmt.Errorf("assistant returned an empty reply")
	}
	return reply, nil
}

// chatRole maps a stored chat role to the wire role the model expects.
// Anything unrecognized is treated as the user speaking.
func chatRole(role string) genai.Role {
	if role == models.ChatRoleAssistant {
		return genai.RoleModel
	}
	return genai.RoleUser
}

// taskSystemPrompt combines the fixed instructions with the task context.
func taskSystemPrompt(task *models.Task) string {
	description := task.Description
	if description == "" {
		description = "No description"
	}

	var b strings.Builder
	b.WriteString(systemPrompt)
	b.WriteString("\n\nTask: ")
	b.WriteString(task.Title)
	b.WriteString("\nDescription: ")
	b.WriteString(description)
	return b.String()
}
