package nav

import "strings"

// Lead-in phrases that signal navigational intent. Longer phrases are listed
// before their prefixes so target extraction strips the whole phrase.
var leadIns = []string{
	"navigate to",
	"take me to",
	"bring me to",
	"switch to",
	"go to",
	"open",
	"show",
	"visit",
	"load",
}

// Suffix words stripped from the end of a navigation target.
var targetSuffixes = []string{"page", "section", "screen", "tab"}

// Articles stripped from the front of a navigation target.
var targetArticles = []string{"the", "my"}

// ClassifyIntent reports whether free text reads like a navigation command
// ("go to settings", "open the tasks page") rather than an open-ended
// question. Always returns; empty input is simply not navigational.
func ClassifyIntent(text string) bool {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" {
		return false
	}

	for _, lead := range leadIns {
		if t == lead || strings.HasPrefix(t, lead+" ") {
			return true
		}
	}

	words := strings.Fields(t)
	last := words[len(words)-1]
	return last == "page" || last == "section"
}

// ExtractTarget recovers the subject of a navigation command by stripping the
// lead-in phrase, a trailing "page"/"section"/"screen"/"tab" word, and a
// leading article. Total function: returns "" when nothing remains, which
// callers must treat as "no searchable target".
func ExtractTarget(text string) string {
	t := strings.ToLower(strings.TrimSpace(text))

	for _, lead := range leadIns {
		if t == lead {
			return ""
		}
		if strings.HasPrefix(t, lead+" ") {
			t = strings.TrimSpace(t[len(lead):])
			break
		}
	}

	for _, suffix := range targetSuffixes {
		if t == suffix {
			return ""
		}
		if strings.HasSuffix(t, " "+suffix) {
			t = strings.TrimSpace(t[:len(t)-len(suffix)])
			break
		}
	}

	for _, article := range targetArticles {
		if t == article {
			return ""
		}
		if strings.HasPrefix(t, article+" ") {
			t = strings.TrimSpace(t[len(article):])
			break
		}
	}

	return t
}
