package models

import "time"

// Query lookup outcome constants
const (
	OutcomeNavigated = "navigated" // confident single match, client told to navigate
	OutcomeResults   = "results"   // ranked matches returned
	OutcomeFallback  = "fallback"  // no match, client told to ask the assistant
)

// QueryLookup represents a per-target hit count by outcome, exported to
// Prometheus on scrape.
type QueryLookup struct {
	Target     string
	Outcome    string
	Count      int64
	LastSeenAt time.Time
}
