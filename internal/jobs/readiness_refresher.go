package jobs

import (
	"context"
	"log"
	"time"

	"frictionless/internal/db"
	"frictionless/internal/readiness"
)

// batchSize limits how many organizations one pass recomputes.
const batchSize = 50

// ReadinessRefresher recomputes stale readiness summaries in the background.
// A summary is stale when any of the organization's tasks changed after it
// was computed.
type ReadinessRefresher struct {
	db       *db.DB
	interval time.Duration
}

// NewReadinessRefresher creates a new refresher.
func NewReadinessRefresher(database *db.DB, interval time.Duration) *ReadinessRefresher {
	return &ReadinessRefresher{
		db:       database,
		interval: interval,
	}
}

// Start begins the background refresh loop.
func (r *ReadinessRefresher) Start(ctx context.Context) {
	log.Printf("Readiness refresher started (interval: %v)", r.interval)

	// Run immediately on start
	r.refreshAll(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Readiness refresher stopped")
			return
		case <-ticker.C:
			r.refreshAll(ctx)
		}
	}
}

// refreshAll recomputes summaries for every organization with stale data.
func (r *ReadinessRefresher) refreshAll(ctx context.Context) {
	orgIDs, err := r.db.GetOrgsNeedingReadinessRefresh(ctx, batchSize)
	if err != nil {
		log.Printf("Readiness refresher: failed to list organizations: %v", err)
		return
	}

	if len(orgIDs) == 0 {
		return
	}

	log.Printf("Readiness refresher: recomputing %d organizations", len(orgIDs))

	for _, orgID := range orgIDs {
		select {
		case <-ctx.Done():
			return
		default:
		}

		tasks, err := r.db.ListOrgTasks(ctx, orgID)
		if err != nil {
			log.Printf("Readiness refresher: failed to load tasks for %s: %v", orgID, err)
			continue
		}

		summary := readiness.Compute(orgID, tasks, time.Now())
		if err := r.db.UpsertReadinessSummary(ctx, &summary); err != nil {
			log.Printf("Readiness refresher: failed to store summary for %s: %v", orgID, err)
		}
	}
}
