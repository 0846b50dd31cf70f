// Package nav implements the query router: intent classification and scored
// free-text search over the fixed registry of dashboard pages.
package nav

import (
	"fmt"
	"strings"

	"frictionless/internal/validation"
)

// PageDescriptor describes a single navigable destination in the dashboard.
type PageDescriptor struct {
	Label       string   `json:"label" yaml:"label"`
	Route       string   `json:"route" yaml:"route"`
	Keywords    []string `json:"keywords" yaml:"keywords"`
	Description string   `json:"description" yaml:"description"`
}

// Registry is an ordered, immutable sequence of page descriptors.
// Registry order reflects product priority and is used to break score ties.
type Registry []PageDescriptor

// NewRegistry validates and normalizes page entries at construction time.
// Labels are trimmed, keywords are lowercased, and malformed entries are
// rejected here so query-time code never sees them.
func NewRegistry(pages []PageDescriptor) (Registry, error) {
	reg := make(Registry, 0, len(pages))
	seen := make(map[string]bool, len(pages))

	for i, p := range pages {
		p.Label = strings.TrimSpace(p.Label)
		if p.Label == "" {
			return nil, fmt.Errorf("page %d: label is required", i)
		}
		if !validation.ValidateRoute(p.Route) {
			return nil, fmt.Errorf("page %q: invalid route %q", p.Label, p.Route)
		}
		if seen[p.Route] {
			return nil, fmt.Errorf("page %q: duplicate route %q", p.Label, p.Route)
		}
		seen[p.Route] = true

		keywords := make([]string, 0, len(p.Keywords))
		for _, k := range p.Keywords {
			k = strings.ToLower(strings.TrimSpace(k))
			if k != "" {
				keywords = append(keywords, k)
			}
		}
		p.Keywords = keywords
		p.Description = strings.TrimSpace(p.Description)

		reg = append(reg, p)
	}

	return reg, nil
}

// DefaultRegistry returns the built-in page registry. Order matters: earlier
// entries win score ties, so the most important product surfaces come first.
func DefaultRegistry() Registry {
	reg, err := NewRegistry([]PageDescriptor{
		{
			Label:       "Dashboard",
			Route:       "/",
			Keywords:    []string{"home", "overview", "summary"},
			Description: "Company overview with readiness score and recent activity",
		},
		{
			Label:       "Tasks",
			Route:       "/tasks",
			Keywords:    []string{"todo", "checklist", "action items"},
			Description: "Readiness tasks grouped by category",
		},
		{
			Label:       "Investors",
			Route:       "/investors",
			Keywords:    []string{"matching", "funds", "vc", "outreach"},
			Description: "Matched investors and thesis fit",
		},
		{
			Label:       "Data Room",
			Route:       "/dataroom",
			Keywords:    []string{"documents", "files", "pitch deck", "upload"},
			Description: "Uploaded documents and extraction results",
		},
		{
			Label:       "Readiness",
			Route:       "/readiness",
			Keywords:    []string{"score", "rubric", "assessment"},
			Description: "Investment readiness scoring breakdown",
		},
		{
			Label:       "Activity",
			Route:       "/activity",
			Keywords:    []string{"feed", "history", "events", "log"},
			Description: "Recent activity across your workspace",
		},
		{
			Label:       "Team",
			Route:       "/team",
			Keywords:    []string{"members", "invites", "roles"},
			Description: "Team members and pending invitations",
		},
		{
			Label:       "Profile",
			Route:       "/profile",
			Keywords:    []string{"company", "startup", "founders"},
			Description: "Your startup profile and enrichment data",
		},
		{
			Label:       "Settings",
			Route:       "/settings",
			Keywords:    []string{"preferences", "account"},
			Description: "Account preferences and settings",
		},
		{
			Label:       "Billing",
			Route:       "/settings/billing",
			Keywords:    []string{"subscription", "plan", "payment", "invoice"},
			Description: "Subscription plan and payment details",
		},
	})
	if err != nil {
		// The built-in registry is validated by tests; a failure here is a
		// programming error.
		panic(err)
	}
	return reg
}
