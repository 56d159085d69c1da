// Package ritual classifies meeting titles into recognized recurring ritual
// types and carries the per-type ideal profiles used for preparedness checks.
// Matching is a static priority-ordered substring table over normalized text
// so the scorers and the breakdown analyzer can never drift apart
package ritual

import (
	"meetsense/internal/core/normalize"

	"strings"
)

// Type is a recognized recurring ritual meeting type
type Type string

const (
	// L10 is the weekly 90 minute leadership meeting
	L10 Type = "l10"
	// IDS is an identify-discuss-solve issue resolution session
	IDS Type = "ids"
	// Quarterly is a quarterly or annual planning session
	Quarterly Type = "quarterly"
	// None means the title matched no ritual pattern
	None Type = "none"
)

// Protected reports whether t is a recognized ritual type
func (t Type) Protected() bool { return t != None && t != "" }

// rule maps a pattern set to a ritual type, first match wins
type rule struct {
	typ      Type
	patterns []string
}

// rules is the ordered match table, priority is top down
var rules = []rule{
	{L10, []string{"l10", "level 10", "weekly l10"}},
	{IDS, []string{"ids", "issues"}},
	{Quarterly, []string{"quarterly", "annual"}},
}

// oneOnOnePatterns match two-person check-in titles, these do not make a
// ritual type but unlock a small protected-mode boost in the scorer
var oneOnOnePatterns = []string{"1:1", "1on1", "one on one"}

// Detect classifies a free-text meeting title, empty titles yield None
func Detect(title string) Type {
	norm := normalize.Title(title)
	if norm == "" {
		return None
	}
	for _, r := range rules {
		for _, p := range r.patterns {
			if strings.Contains(norm, p) {
				return r.typ
			}
		}
	}
	return None
}

// IsOneOnOne reports whether the title reads like a 1:1
func IsOneOnOne(title string) bool {
	norm := normalize.Title(title)
	for _, p := range oneOnOnePatterns {
		if strings.Contains(norm, p) {
			return true
		}
	}
	return false
}

// Profile holds the per-type ideals the preparedness scorer checks against
type Profile struct {
	// AgendaKeywords are matched case-insensitively as substrings across
	// agenda item titles
	AgendaKeywords []string

	// MinAttendees and MaxAttendees bound the ideal attendee count inclusive
	MinAttendees int
	MaxAttendees int

	// IdealDurationMin is the ideal length in minutes with DurationTolerance
	// minutes of slack either way, zero means no duration ideal is defined
	IdealDurationMin  int
	DurationTolerance int

	// IdealFrequency is the expected recurrence cadence, empty means no
	// frequency ideal is defined
	IdealFrequency string
}

var profiles = map[Type]Profile{
	L10: {
		AgendaKeywords: []string{
			"segue", "scorecard", "rock", "rocks", "headlines",
			"to-do", "todos", "ids", "issues", "conclude",
		},
		MinAttendees:      3,
		MaxAttendees:      8,
		IdealDurationMin:  90,
		DurationTolerance: 15,
		IdealFrequency:    "weekly",
	},
	IDS: {
		AgendaKeywords: []string{"identify", "discuss", "solve", "issues", "ids"},
		MinAttendees:   2,
		MaxAttendees:   7,
	},
	Quarterly: {
		AgendaKeywords: []string{
			"review", "rocks", "vision", "goals", "scorecard",
			"issues", "plan", "next quarter",
		},
		MinAttendees:      4,
		MaxAttendees:      12,
		IdealDurationMin:  480,
		DurationTolerance: 120,
		IdealFrequency:    "quarterly",
	},
}

// ProfileFor returns the ideal profile for a ritual type
// the zero Profile is returned for None
func ProfileFor(t Type) Profile { return profiles[t] }
