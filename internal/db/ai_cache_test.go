package db_test

import (
	"context"
	"testing"

	"frictionless/internal/db"
	"frictionless/internal/testutil"
)

func TestHashCacheInputDeterministic(t *testing.T) {
	type input struct {
		Message string
		History []string
	}

	a := db.HashCacheInput(input{Message: "hello", History: []string{"user:hi"}})
	b := db.HashCacheInput(input{Message: "hello", History: []string{"user:hi"}})
	c := db.HashCacheInput(input{Message: "hello", History: []string{"user:bye"}})

	if a == "" {
		t.Fatal("expected a non-empty hash")
	}
	if a != b {
		t.Error("identical inputs should hash identically")
	}
	if a == c {
		t.Error("different inputs should hash differently")
	}
}

func TestHashCacheInputUnmarshalable(t *testing.T) {
	if got := db.HashCacheInput(make(chan int)); got != "" {
		t.Errorf("expected empty hash for unmarshalable input, got %q", got)
	}
}

func TestAnalysisCacheRoundTrip(t *testing.T) {
	database, cleanup := testutil.TestDB(t)
	defer cleanup()
	ctx := context.Background()

	orgID := testutil.CreateTestOrg(t, database, "Cache Test Org", "cache-test-org")
	hash := db.HashCacheInput("cache round trip input")

	if _, ok := database.GetCachedAnalysis(ctx, orgID, "task_chat", hash); ok {
		t.Fatal("expected a miss before storing")
	}

	if err := database.SetCachedAnalysis(ctx, orgID, "task_chat", hash, "test-model", `{"reply":"hi"}`); err != nil {
		t.Fatalf("SetCachedAnalysis() error = %v", err)
	}

	result, ok := database.GetCachedAnalysis(ctx, orgID, "task_chat", hash)
	if !ok {
		t.Fatal("expected a hit after storing")
	}
	if result != `{"reply":"hi"}` {
		t.Errorf("unexpected cached result %q", result)
	}

	if err := database.InvalidateAnalysisCache(ctx, orgID, "task_chat"); err != nil {
		t.Fatalf("InvalidateAnalysisCache() error = %v", err)
	}
	if _, ok := database.GetCachedAnalysis(ctx, orgID, "task_chat", hash); ok {
		t.Error("expected a miss after invalidation")
	}
}

func TestInvalidateAnalysisCacheScopedToType(t *testing.T) {
	database, cleanup := testutil.TestDB(t)
	defer cleanup()
	ctx := context.Background()

	orgID := testutil.CreateTestOrg(t, database, "Cache Scope Org", "cache-scope-org")
	hash := db.HashCacheInput("scoped invalidation input")

	if err := database.SetCachedAnalysis(ctx, orgID, "task_chat", hash, "test-model", "chat"); err != nil {
		t.Fatalf("SetCachedAnalysis(task_chat) error = %v", err)
	}
	if err := database.SetCachedAnalysis(ctx, orgID, "other_analysis", hash, "test-model", "other"); err != nil {
		t.Fatalf("SetCachedAnalysis(other_analysis) error = %v", err)
	}

	if err := database.InvalidateAnalysisCache(ctx, orgID, "task_chat"); err != nil {
		t.Fatalf("InvalidateAnalysisCache() error = %v", err)
	}

	if _, ok := database.GetCachedAnalysis(ctx, orgID, "task_chat", hash); ok {
		t.Error("task_chat entry should be gone")
	}
	if _, ok := database.GetCachedAnalysis(ctx, orgID, "other_analysis", hash); !ok {
		t.Error("other_analysis entry should survive a scoped invalidation")
	}
}
