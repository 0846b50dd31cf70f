package nav

import (
	"reflect"
	"testing"
)

func testRegistry(t *testing.T) Registry {
	t.Helper()
	reg, err := NewRegistry([]PageDescriptor{
		{Label: "Dashboard", Route: "/", Keywords: []string{"home", "overview"}, Description: "Company overview and recent activity"},
		{Label: "Tasks", Route: "/tasks", Keywords: []string{"todo", "checklist"}, Description: "Readiness tasks grouped by category"},
		{Label: "Billing", Route: "/settings/billing", Keywords: []string{"subscription", "payment"}, Description: "Subscription plan and payment details"},
		{Label: "Settings", Route: "/settings", Keywords: []string{"preferences", "account"}, Description: "Account preferences and settings"},
	})
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}
	return reg
}

func TestSearchEmptyQuery(t *testing.T) {
	reg := testRegistry(t)

	for _, q := range []string{"", "   ", "\t\n"} {
		if got := Search(q, reg); len(got) != 0 {
			t.Errorf("Search(%q) = %d results, want 0", q, len(got))
		}
	}
}

func TestSearchLabelMatch(t *testing.T) {
	reg := testRegistry(t)

	got := Search("settings", reg)
	if len(got) == 0 {
		t.Fatal("Search(\"settings\") returned no results")
	}
	if got[0].Route != "/settings" {
		t.Errorf("first result = %q, want /settings", got[0].Route)
	}
}

func TestSearchNavigationIntent(t *testing.T) {
	reg := testRegistry(t)

	got := Search("take me to the billing section", reg)
	if len(got) == 0 {
		t.Fatal("navigation query returned no results")
	}
	if got[0].Label != "Billing" {
		t.Errorf("first result = %q, want Billing", got[0].Label)
	}
}

func TestSearchOpenEndedQuestion(t *testing.T) {
	reg := testRegistry(t)

	if got := Search("what should I focus on this week", reg); len(got) != 0 {
		t.Errorf("open-ended question matched %d pages, want 0", len(got))
	}
}

func TestSearchBareLeadIn(t *testing.T) {
	reg := testRegistry(t)

	// Navigation intent with no recoverable target must not fall through to
	// scoring the lead-in words themselves.
	if got := Search("go to", reg); len(got) != 0 {
		t.Errorf("Search(\"go to\") = %d results, want 0", len(got))
	}
}

func TestSearchResultCap(t *testing.T) {
	pages := make([]PageDescriptor, 0, 8)
	for _, name := range []string{"alpha", "beta", "gamma", "delta", "epsilon", "zeta", "eta", "theta"} {
		pages = append(pages, PageDescriptor{Label: "Report " + name, Route: "/reports/" + name, Description: "report"})
	}
	reg, err := NewRegistry(pages)
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}

	got := Search("report", reg)
	if len(got) > 5 {
		t.Errorf("Search returned %d results, want at most 5", len(got))
	}
}

func TestSearchIdempotent(t *testing.T) {
	reg := testRegistry(t)

	first := Search("account settings", reg)
	second := Search("account settings", reg)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated Search differed:\nfirst:  %v\nsecond: %v", first, second)
	}
}

func TestSearchScoringMonotonicity(t *testing.T) {
	// B comes first in the registry but only A's label contains the query
	// word, so A must rank at or above B.
	reg, err := NewRegistry([]PageDescriptor{
		{Label: "Other", Route: "/b", Keywords: []string{"shared"}, Description: "shared description reports"},
		{Label: "Reports", Route: "/a", Keywords: []string{"shared"}, Description: "shared description reports"},
	})
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}

	got := Search("reports", reg)
	if len(got) == 0 {
		t.Fatal("no results")
	}
	if got[0].Route != "/a" {
		t.Errorf("label match ranked %q first, want /a", got[0].Route)
	}
}

func TestSearchTieBreakStability(t *testing.T) {
	// Identical scoring surfaces: registry order must be preserved.
	reg, err := NewRegistry([]PageDescriptor{
		{Label: "Metrics North", Route: "/north", Keywords: []string{"kpi"}, Description: "quarterly metrics"},
		{Label: "Metrics South", Route: "/south", Keywords: []string{"kpi"}, Description: "quarterly metrics"},
	})
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}

	got := Search("metrics", reg)
	if len(got) != 2 {
		t.Fatalf("got %d results, want 2", len(got))
	}
	if got[0].Route != "/north" || got[1].Route != "/south" {
		t.Errorf("tie broke registry order: %q, %q", got[0].Route, got[1].Route)
	}
}

func TestSearchNeverMutatesRegistry(t *testing.T) {
	reg := testRegistry(t)
	before := make(Registry, len(reg))
	copy(before, reg)

	Search("go to settings", reg)
	Search("payment", reg)

	if !reflect.DeepEqual(before, reg) {
		t.Error("Search mutated the registry")
	}
}

func TestScorePageAdditiveTiers(t *testing.T) {
	// "settings" hits the label, the description, and the catch-all blob of
	// the Settings descriptor: 10 + 2 + 1.
	page := PageDescriptor{
		Label:       "Settings",
		Route:       "/settings",
		Keywords:    []string{"preferences", "account"},
		Description: "Account preferences and settings",
	}

	got := scorePage([]string{"settings"}, page)
	want := weightLabel + weightDescription + weightCatchAll
	if got != want {
		t.Errorf("scorePage = %d, want %d", got, want)
	}
}

func TestScorePageKeywordHit(t *testing.T) {
	page := PageDescriptor{
		Label:       "Settings",
		Route:       "/settings",
		Keywords:    []string{"preferences", "account"},
		Description: "Account preferences",
	}

	// "account" hits one keyword, the description, and the blob; multiple
	// keyword matches for the same word count once.
	got := scorePage([]string{"account"}, page)
	want := weightKeyword + weightDescription + weightCatchAll
	if got != want {
		t.Errorf("scorePage = %d, want %d", got, want)
	}
}

func TestSearchShortWords(t *testing.T) {
	reg := testRegistry(t)

	// One- and two-letter words are substrings of most descriptors; they
	// must only match as whole tokens.
	if got := Search("i on", reg); len(got) != 0 {
		t.Errorf("short stopwords matched %d pages, want 0", len(got))
	}

	short, err := NewRegistry([]PageDescriptor{
		{Label: "Investors", Route: "/investors", Keywords: []string{"vc", "funds"}, Description: "Matched investors"},
	})
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}
	if got := Search("vc", short); len(got) != 1 {
		t.Errorf("exact short keyword matched %d pages, want 1", len(got))
	}
}

func TestSearchPunctuationOnly(t *testing.T) {
	reg := testRegistry(t)

	if got := Search("???!!!", reg); len(got) != 0 {
		t.Errorf("punctuation query matched %d pages, want 0", len(got))
	}
}
