package temporal

import (
	"strings"

	"github.com/cognicore/bagh/pkg/bagh/calendar"
)

// DefaultWindow is how many runes of context are read on each side of a token.
const DefaultWindow = 30

// Window is the lowercased text surrounding a year token.
type Window struct {
	Full     string // before + token + after
	Trailing string // after the token, whitespace-trimmed
}

// Contains reports whether any of the markers occurs anywhere in the window.
func (w Window) Contains(markers ...string) bool {
	for _, m := range markers {
		if strings.Contains(w.Full, m) {
			return true
		}
	}
	return false
}

// FollowedBy reports whether the text right after the token starts with any prefix.
func (w Window) FollowedBy(prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(w.Trailing, p) {
			return true
		}
	}
	return false
}

// contextWindow reads from the original runes, not the normalized ones, so
// markers written next to Persian digits stay intact.
func contextWindow(original []rune, offset int, token string, size int) Window {
	tokenLen := len([]rune(token))
	if offset > len(original) {
		offset = len(original)
	}

	beforeStart := offset - size
	if beforeStart < 0 {
		beforeStart = 0
	}
	before := string(original[beforeStart:offset])

	afterStart := offset + tokenLen
	if afterStart > len(original) {
		afterStart = len(original)
	}
	afterEnd := afterStart + size
	if afterEnd > len(original) {
		afterEnd = len(original)
	}
	after := strings.ToLower(string(original[afterStart:afterEnd]))

	return Window{
		Full:     strings.ToLower(before) + token + after,
		Trailing: strings.TrimSpace(after),
	}
}

// Rule assigns a calendar system when Match holds.
type Rule struct {
	Name   string
	System calendar.System
	Match  func(Window) bool
}

// RuleTable is evaluated top to bottom; the first matching rule wins.
type RuleTable []Rule

// qamariMarkers also start with "ه", so they must not read as the Shamsi suffix.
var qamariMarkers = []string{"هجری قمری", "ه.ق"}

// DefaultRules recognises Persian calendar markers whatever the document
// language. Shamsi is checked before Qamari; a window carrying both written
// markers resolves to Shamsi.
var DefaultRules = RuleTable{
	{
		Name:   "shamsi-marker",
		System: calendar.Shamsi,
		Match: func(w Window) bool {
			return w.Contains("هجری شمسی", "ه.ش")
		},
	},
	{
		Name:   "shamsi-suffix",
		System: calendar.Shamsi,
		Match: func(w Window) bool {
			if w.FollowedBy("ش") {
				return true
			}
			return w.FollowedBy("ه") && !w.FollowedBy(qamariMarkers...)
		},
	},
	{
		Name:   "qamari-marker",
		System: calendar.Qamari,
		Match: func(w Window) bool {
			return w.Contains(qamariMarkers...)
		},
	},
	{
		Name:   "qamari-suffix",
		System: calendar.Qamari,
		Match: func(w Window) bool {
			return w.FollowedBy("ق")
		},
	},
	{
		Name:   "miladi-suffix",
		System: calendar.Gregorian,
		Match: func(w Window) bool {
			return w.FollowedBy("م")
		},
	},
	{
		Name:   "default",
		System: calendar.Gregorian,
		Match:  func(Window) bool { return true },
	},
}

// Disambiguate returns the system of the first matching rule and its name.
// An empty or exhausted table falls back to Gregorian.
func (rt RuleTable) Disambiguate(w Window) (calendar.System, string) {
	for _, r := range rt {
		if r.Match(w) {
			return r.System, r.Name
		}
	}
	return calendar.Gregorian, "default"
}
