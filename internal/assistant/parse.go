package assistant

import (
	"encoding/json"
	"strings"
)

// ParseReply decodes the model's JSON contract, tolerating the two failure
// shapes models actually produce: markdown code fences around the JSON, and
// plain prose instead of JSON. Prose becomes the reply text verbatim with
// suggest_complete false.
func ParseReply(text string) *Reply {
	text = stripCodeFence(strings.TrimSpace(text))

	var reply Reply
	if err := json.Unmarshal([]byte(text), &reply); err != nil {
		return &Reply{Text: text}
	}
	if reply.Text == "" {
		return &Reply{Text: text}
	}
	return &reply
}

// stripCodeFence removes a surrounding markdown code fence, with or without
// a language tag.
func stripCodeFence(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}

	lines := strings.Split(text, "\n")
	if len(lines) > 0 && strings.HasPrefix(lines[0], "```") {
		lines = lines[1:]
	}
	if len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "```" {
		lines = lines[:len(lines)-1]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
