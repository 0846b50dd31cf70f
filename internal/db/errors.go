package db

import "errors"

// Domain-level database error sentinels.
var (
	// User errors
	ErrUserNotFound = errors.New("user not found")

	// Organisation errors
	ErrOrgNotFound   = errors.New("organization not found")
	ErrDuplicateSlug = errors.New("organization slug already exists")

	// Task errors
	ErrTaskNotFound = errors.New("task not found")

	// Share link errors
	ErrShareLinkNotFound = errors.New("share link not found")
	ErrShareLinkExpired  = errors.New("share link expired")

	// Readiness errors
	ErrSummaryNotFound = errors.New("readiness summary not found")
)
