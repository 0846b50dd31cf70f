package readiness

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"frictionless/internal/models"
)

func task(category, status string, weight int) models.Task {
	return models.Task{Category: category, Status: status, Weight: weight}
}

func TestComputeEmpty(t *testing.T) {
	summary := Compute(uuid.New(), nil, time.Now())

	if summary.Overall != 0 {
		t.Errorf("Overall = %d, want 0", summary.Overall)
	}
	if len(summary.Categories) != 0 {
		t.Errorf("got %d categories, want 0", len(summary.Categories))
	}
}

func TestComputeAllDone(t *testing.T) {
	tasks := []models.Task{
		task("Pitch", models.TaskDone, 3),
		task("Pitch", models.TaskDone, 1),
	}

	summary := Compute(uuid.New(), tasks, time.Now())
	if summary.Overall != 100 {
		t.Errorf("Overall = %d, want 100", summary.Overall)
	}
}

func TestComputeWeighted(t *testing.T) {
	// Done weight 3 of total weight 4 -> 75.
	tasks := []models.Task{
		task("Financials", models.TaskDone, 3),
		task("Financials", models.TaskPending, 1),
	}

	summary := Compute(uuid.New(), tasks, time.Now())
	if summary.Overall != 75 {
		t.Errorf("Overall = %d, want 75", summary.Overall)
	}
	if summary.Categories[0].Done != 1 || summary.Categories[0].Total != 2 {
		t.Errorf("counts = %d/%d, want 1/2", summary.Categories[0].Done, summary.Categories[0].Total)
	}
}

func TestComputePerCategory(t *testing.T) {
	tasks := []models.Task{
		task("Pitch", models.TaskDone, 1),
		task("Pitch", models.TaskDone, 1),
		task("Legal", models.TaskPending, 1),
	}

	summary := Compute(uuid.New(), tasks, time.Now())

	if len(summary.Categories) != 2 {
		t.Fatalf("got %d categories, want 2", len(summary.Categories))
	}
	if summary.Categories[0].Category != "Pitch" || summary.Categories[0].Score != 100 {
		t.Errorf("Pitch = %+v, want score 100 first", summary.Categories[0])
	}
	if summary.Categories[1].Category != "Legal" || summary.Categories[1].Score != 0 {
		t.Errorf("Legal = %+v, want score 0 second", summary.Categories[1])
	}
	if summary.Overall != 66 {
		t.Errorf("Overall = %d, want 66 (2 of 3 unit weights)", summary.Overall)
	}
}

func TestComputeZeroWeightCountsAsOne(t *testing.T) {
	tasks := []models.Task{
		task("Team", models.TaskDone, 0),
		task("Team", models.TaskPending, 0),
	}

	summary := Compute(uuid.New(), tasks, time.Now())
	if summary.Overall != 50 {
		t.Errorf("Overall = %d, want 50", summary.Overall)
	}
}

func TestComputeDeterministic(t *testing.T) {
	orgID := uuid.New()
	now := time.Now()
	tasks := []models.Task{
		task("Pitch", models.TaskDone, 2),
		task("Legal", models.TaskPending, 1),
	}

	first := Compute(orgID, tasks, now)
	second := Compute(orgID, tasks, now)

	if first.Overall != second.Overall || len(first.Categories) != len(second.Categories) {
		t.Error("Compute is not deterministic")
	}
	for i := range first.Categories {
		if first.Categories[i] != second.Categories[i] {
			t.Errorf("category %d differs between runs", i)
		}
	}
}
