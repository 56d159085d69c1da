// Package assess implements the meeting assessment engine: a pair of
// weighted-factor scorers over a single shared factor table, a factor
// breakdown, a savings estimator, and an action planner. Everything here is
// pure and deterministic, callers own persistence and identifiers
package assess

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the single error kind the engine surfaces, anything
// wrapped around it is a caller contract violation caught at the boundary
var ErrInvalidInput = errors.New("invalid assessment input")

// Purpose is why the meeting exists
type Purpose string

// Purpose values
const (
	PurposeInfoShare  Purpose = "info_share"
	PurposeDecide     Purpose = "decide"
	PurposeBrainstorm Purpose = "brainstorm"
	PurposeAlign      Purpose = "align"
)

// Urgency is how soon the meeting must happen
type Urgency string

// Urgency values
const (
	UrgencyToday    Urgency = "today"
	UrgencyThisWeek Urgency = "this_week"
	UrgencyFlexible Urgency = "flexible"
)

// Level grades interactivity and complexity
type Level string

// Level values
const (
	LevelHigh   Level = "high"
	LevelMedium Level = "medium"
	LevelLow    Level = "low"
)

// Frequency is a recurrence cadence
type Frequency string

// Frequency values
const (
	FreqDaily     Frequency = "daily"
	FreqWeekly    Frequency = "weekly"
	FreqBiweekly  Frequency = "biweekly"
	FreqMonthly   Frequency = "monthly"
	FreqQuarterly Frequency = "quarterly"
)

// defaultDurationMin applies when the caller leaves duration unset
const defaultDurationMin = 30

// Attendee is one invited participant
type Attendee struct {
	ID       string
	Name     string
	Role     string
	DRI      bool
	Optional bool
}

// AgendaItem is one agenda entry, order is display-only
type AgendaItem struct {
	Title       string
	DurationMin int
	Notes       string
}

// Input is the caller-owned description of a proposed meeting
// it is treated as immutable for the duration of a scoring call
type Input struct {
	Title            string
	Purpose          Purpose
	Urgency          Urgency
	DurationMin      int // zero means unset, scored as 30
	DecisionRequired bool
	Interactivity    Level
	Complexity       Level

	// AsyncPossible is tri-state: nil disables the factor entirely,
	// which is distinct from an explicit false
	AsyncPossible *bool

	HasAgenda   bool
	AgendaItems []AgendaItem
	Attendees   []Attendee

	// Recurring is optional, RecurrenceFrequency is meaningful only when
	// Recurring is set and true
	Recurring           *bool
	RecurrenceFrequency Frequency
}

// EffectiveDuration returns the scored duration in minutes
func (in Input) EffectiveDuration() int {
	if in.DurationMin <= 0 {
		return defaultDurationMin
	}
	return in.DurationMin
}

// AttendeeCount returns the number of invited attendees
func (in Input) AttendeeCount() int { return len(in.Attendees) }

// OptionalCount returns the number of optional attendees
func (in Input) OptionalCount() int {
	n := 0
	for _, a := range in.Attendees {
		if a.Optional {
			n++
		}
	}
	return n
}

// HasDRI reports whether at least one attendee is the directly responsible
// individual, uniqueness is not enforced
func (in Input) HasDRI() bool {
	for _, a := range in.Attendees {
		if a.DRI {
			return true
		}
	}
	return false
}

// IsRecurring reports the effective recurrence flag, unset reads as false
func (in Input) IsRecurring() bool { return in.Recurring != nil && *in.Recurring }

// Validate rejects inputs that violate the engine contract. The engine
// itself is total over validated inputs, so this is the only failure surface
func (in Input) Validate() error {
	switch in.Purpose {
	case PurposeInfoShare, PurposeDecide, PurposeBrainstorm, PurposeAlign:
	default:
		return fmt.Errorf("%w: unknown purpose %q", ErrInvalidInput, in.Purpose)
	}
	switch in.Urgency {
	case UrgencyToday, UrgencyThisWeek, UrgencyFlexible:
	default:
		return fmt.Errorf("%w: unknown urgency %q", ErrInvalidInput, in.Urgency)
	}
	if err := validLevel("interactivity", in.Interactivity); err != nil {
		return err
	}
	if err := validLevel("complexity", in.Complexity); err != nil {
		return err
	}
	if in.DurationMin < 0 {
		return fmt.Errorf("%w: negative duration %d", ErrInvalidInput, in.DurationMin)
	}
	if in.RecurrenceFrequency != "" {
		switch in.RecurrenceFrequency {
		case FreqDaily, FreqWeekly, FreqBiweekly, FreqMonthly, FreqQuarterly:
		default:
			return fmt.Errorf("%w: unknown frequency %q", ErrInvalidInput, in.RecurrenceFrequency)
		}
	}
	for i, item := range in.AgendaItems {
		if item.DurationMin < 0 {
			return fmt.Errorf("%w: agenda item %d has negative duration", ErrInvalidInput, i)
		}
	}
	return nil
}

func validLevel(name string, l Level) error {
	switch l {
	case LevelHigh, LevelMedium, LevelLow:
		return nil
	default:
		return fmt.Errorf("%w: unknown %s %q", ErrInvalidInput, name, l)
	}
}
