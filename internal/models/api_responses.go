package models

import "frictionless/internal/nav"

// Query response action constants. The client switches on the action: go
// straight to a route, render a result list, or hand the text to the
// assistant.
const (
	ActionNavigate = "navigate"
	ActionResults  = "results"
	ActionAsk      = "ask"
)

// QueryResponse is the JSON body returned by POST /api/query.
type QueryResponse struct {
	Action     string               `json:"action"` // navigate, results, ask
	Target     string               `json:"target,omitempty"`
	Route      string               `json:"route,omitempty"`
	Results    []nav.PageDescriptor `json:"results,omitempty"`
	Suggestion *nav.PageDescriptor  `json:"suggestion,omitempty"`
}

// ChatResponse is the JSON body returned by POST /api/tasks/:id/chat.
type ChatResponse struct {
	Reply           string `json:"reply"`
	SuggestComplete bool   `json:"suggest_complete"`
	Cached          bool   `json:"cached"`
}

// ShareResponse is returned when creating a share link; it includes the
// public URL the caller can copy.
type ShareResponse struct {
	Share ShareLink `json:"share"`
	URL   string    `json:"url"`
}
