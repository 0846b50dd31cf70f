// Package readiness turns task completion into an investment readiness score.
package readiness

import (
	"time"

	"github.com/google/uuid"

	"frictionless/internal/models"
)

// Compute aggregates tasks into per-category and overall scores. Each score
// is the weight-adjusted share of completed tasks, scaled to 0-100. Category
// order follows first appearance in the task list, which is display order.
// Pure function: deterministic for a given task slice, no I/O.
func Compute(orgID uuid.UUID, tasks []models.Task, now time.Time) models.ReadinessSummary {
	summary := models.ReadinessSummary{
		OrganizationID: orgID,
		ComputedAt:     now,
	}

	index := make(map[string]int)
	totals := make(map[string]int)
	dones := make(map[string]int)

	for _, task := range tasks {
		if _, ok := index[task.Category]; !ok {
			index[task.Category] = len(summary.Categories)
			summary.Categories = append(summary.Categories, models.CategoryScore{Category: task.Category})
		}

		weight := task.Weight
		if weight < 1 {
			weight = 1
		}

		i := index[task.Category]
		totals[task.Category] += weight
		summary.Categories[i].Total++
		if task.IsDone() {
			dones[task.Category] += weight
			summary.Categories[i].Done++
		}
	}

	grandTotal := 0
	grandDone := 0
	for category, i := range index {
		summary.Categories[i].Score = percentage(dones[category], totals[category])
		grandTotal += totals[category]
		grandDone += dones[category]
	}
	summary.Overall = percentage(grandDone, grandTotal)

	return summary
}

func percentage(done, total int) int {
	if total == 0 {
		return 0
	}
	return done * 100 / total
}
