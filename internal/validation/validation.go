package validation

import (
	"regexp"
	"strings"
)

// RoutePattern defines the valid route format: a rooted path of alphanumeric,
// hyphen and underscore segments ("/", "/tasks", "/settings/billing").
var RoutePattern = regexp.MustCompile(`^/(?:[a-zA-Z0-9_-]+(?:/[a-zA-Z0-9_-]+)*)?$`)

// shareTokenPattern matches URL-safe base64 characters.
var shareTokenPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// ValidateRoute checks that a route is a rooted in-app path. Absolute URLs,
// schemes, and traversal sequences are rejected so a registry entry can never
// send the client off-site.
func ValidateRoute(route string) bool {
	if route == "" || len(route) > 200 {
		return false
	}
	if strings.Contains(route, "..") {
		return false
	}
	return RoutePattern.MatchString(route)
}

// NormalizeTarget lowercases and trims a navigation target so lookups are
// case-insensitive.
func NormalizeTarget(target string) string {
	return strings.ToLower(strings.TrimSpace(target))
}

// ValidateShareToken checks the shape of a share-link token before the
// database lookup: URL-safe characters only, within sane length bounds.
func ValidateShareToken(token string) bool {
	if len(token) < 16 || len(token) > 128 {
		return false
	}
	return shareTokenPattern.MatchString(token)
}

// ValidateQuery bounds raw query text. Queries are never an error for the
// router itself, but the HTTP layer rejects absurd payloads early.
func ValidateQuery(query string) bool {
	return len(query) <= 1000
}
