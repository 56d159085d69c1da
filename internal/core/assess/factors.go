package assess

import (
	"fmt"

	"meetsense/internal/core/ritual"
)

// EngineVersion identifies the scoring rule tables, bump when weights change
const EngineVersion = 1

// baseline is the starting score both scorers adjust from
const baseline = 5.0

// Factor is one scoring term: a stable label, a signed impact, and a
// human-readable description derived purely from the input
type Factor struct {
	Label       string
	Impact      float64
	Description string
}

// deriveFactors produces every viability scoring term for the given input.
// The viability scorer sums the impacts and the breakdown analyzer lists
// them, so the weight table lives in exactly one place.
//
// Zero-impact duration and group-size terms are not emitted. The DRI term is
// always emitted, at impact 0 when a DRI is present, so the breakdown can
// show ownership is covered.
func deriveFactors(in Input, protectedMode bool) []Factor {
	typ := ritual.Detect(in.Title)
	out := make([]Factor, 0, 12)
	add := func(label string, impact float64, desc string) {
		out = append(out, Factor{Label: label, Impact: impact, Description: desc})
	}

	// protected-mode ritual boost, mutually exclusive, priority order
	if protectedMode {
		switch {
		case typ == ritual.L10:
			add("Protected Meeting", 3.0, "Weekly L10 meetings anchor the operating rhythm")
		case typ == ritual.IDS:
			add("Protected Meeting", 2.0, "IDS sessions resolve issues that block the team")
		case typ == ritual.Quarterly:
			add("Protected Meeting", 2.5, "Quarterly sessions set the priorities for the next 90 days")
		case ritual.IsOneOnOne(in.Title):
			add("Protected Meeting", 1.0, "Regular 1:1s keep manager and report aligned")
		}
	}

	switch in.Purpose {
	case PurposeInfoShare:
		add("Purpose", -1.5, "Information sharing rarely needs everyone live")
	case PurposeDecide:
		add("Purpose", 1.0, "A decision needs the right people in one place")
	case PurposeBrainstorm:
		add("Purpose", 0.5, "Brainstorming benefits from live energy")
	case PurposeAlign:
		add("Purpose", 0.5, "Alignment is easier face to face")
	}

	switch in.Urgency {
	case UrgencyToday:
		add("Urgency", 0.5, "Needed today")
	case UrgencyThisWeek:
		add("Urgency", 0.25, "Needed this week")
	case UrgencyFlexible:
		add("Urgency", -0.5, "No time pressure, async could work")
	}

	if in.DecisionRequired {
		add("Decision Required", 1.0, "A concrete decision will be made")
	} else {
		add("Decision Required", -0.5, "No decision on the table")
	}

	switch in.Interactivity {
	case LevelHigh:
		add("Interactivity", 1.0, "Heavy back and forth expected")
	case LevelMedium:
		add("Interactivity", 0.5, "Some discussion expected")
	case LevelLow:
		add("Interactivity", -1.0, "Mostly one-way communication")
	}

	switch in.Complexity {
	case LevelHigh:
		add("Complexity", 0.75, "Complex topic benefits from live discussion")
	case LevelMedium:
		add("Complexity", 0.25, "Moderately complex topic")
	case LevelLow:
		add("Complexity", -0.5, "Simple topic could be handled async")
	}

	// tri-state: unset contributes nothing and never appears in a breakdown
	if in.AsyncPossible != nil {
		if *in.AsyncPossible {
			add("Could Be Async", -1.0, "Organizer says this could be handled async")
		} else {
			add("Could Be Async", 0.75, "Organizer says this cannot be handled async")
		}
	}

	if in.HasAgenda {
		add("Agenda", 0.5, "Agenda is prepared")
	} else {
		add("Agenda", -1.0, "No agenda prepared")
	}

	if f, ok := durationFactor(in, typ); ok {
		out = append(out, f)
	}
	if f, ok := groupSizeFactor(in.AttendeeCount()); ok {
		out = append(out, f)
	}

	if in.HasDRI() {
		add("Has DRI", 0, "Someone owns the outcome")
	} else {
		add("No DRI", -0.75, "Nobody owns the outcome")
	}

	count := in.AttendeeCount()
	if opt := in.OptionalCount(); count > 2 && opt > count/2 {
		add("Optional Attendees", -0.25,
			fmt.Sprintf("%d of %d attendees are optional, the invite list may be padded", opt, count))
	}

	return out
}

// durationFactor applies the length bins with the literal exemption list:
// 61-90 is forgiven for high complexity or high interactivity, and the >90
// penalty is dropped for high complexity or when the title classifies as
// Quarterly or L10, whose standard formats run long
func durationFactor(in Input, typ ritual.Type) (Factor, bool) {
	d := in.EffectiveDuration()
	switch {
	case d <= 15:
		return Factor{"Duration", 0.5, "Short and focused"}, true
	case d <= 30:
		return Factor{"Duration", 0.25, "Reasonably short"}, true
	case d <= 60:
		return Factor{}, false
	case d <= 90:
		if in.Complexity == LevelHigh || in.Interactivity == LevelHigh {
			return Factor{}, false
		}
		return Factor{"Duration", -0.5, "Long for the level of complexity"}, true
	default:
		if in.Complexity == LevelHigh {
			return Factor{}, false
		}
		if typ == ritual.Quarterly || typ == ritual.L10 {
			return Factor{}, false
		}
		return Factor{"Duration", -0.75, "Very long meeting"}, true
	}
}

// groupSizeFactor bins the attendee count, the 5-7 band is neutral and a
// zero count stays neutral because the wizard validates attendees upstream
func groupSizeFactor(count int) (Factor, bool) {
	switch {
	case count == 0:
		return Factor{}, false
	case count <= 4:
		return Factor{"Group Size", 0.5, "Small focused group"}, true
	case count <= 7:
		return Factor{}, false
	case count <= 10:
		return Factor{"Group Size", -0.25, "Large group, harder to keep engaged"}, true
	default:
		return Factor{"Group Size", -0.75, "Very large group, most attendees will be passive"}, true
	}
}

// clamp10 bounds a score to the displayable range
func clamp10(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 10 {
		return 10
	}
	return x
}
