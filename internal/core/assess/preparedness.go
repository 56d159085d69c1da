package assess

import (
	"fmt"
	"strings"

	"meetsense/internal/core/ritual"
)

// PrepLevel tiers the preparedness score, the bins partition [0,10]
type PrepLevel string

// PrepLevel values
const (
	PrepNotReady      PrepLevel = "not_ready"
	PrepNeedsWork     PrepLevel = "needs_work"
	PrepAlmostReady   PrepLevel = "almost_ready"
	PrepFullyPrepared PrepLevel = "fully_prepared"
)

// PrepResult is the readiness verdict for a recognized ritual meeting
type PrepResult struct {
	Score     float64
	Level     PrepLevel
	Tips      []string
	Strengths []string
}

// ScorePreparedness rates how ready a ritual meeting is to run in its
// intended format. The caller must have classified the title already,
// calling with ritual.None is a contract violation
func ScorePreparedness(in Input, typ ritual.Type) (PrepResult, error) {
	if !typ.Protected() {
		return PrepResult{}, fmt.Errorf("%w: preparedness requires a recognized ritual type", ErrInvalidInput)
	}

	profile := ritual.ProfileFor(typ)
	score := baseline
	var res PrepResult

	// each check lands exactly one strength or one tip
	strength := func(delta float64, msg string) {
		score += delta
		res.Strengths = append(res.Strengths, msg)
	}
	tip := func(delta float64, msg string) {
		score += delta
		res.Tips = append(res.Tips, msg)
	}

	// 1 agenda exists
	if in.HasAgenda {
		strength(2.0, "Agenda is prepared")
	} else {
		tip(-2.0, "Create an agenda before the meeting")
	}

	// 2 agenda content matches the ritual format, only meaningful with an agenda
	if in.HasAgenda {
		switch {
		case len(in.AgendaItems) == 0:
			tip(-0.5, "Agenda is empty, add the standard segments for this meeting")
		case countKeywordHits(in.AgendaItems, profile.AgendaKeywords) >= 2:
			strength(1.5, "Agenda follows the expected format for this meeting type")
		default:
			tip(-0.5, fmt.Sprintf(
				"Agenda does not follow the usual format, consider segments like %s",
				strings.Join(exampleKeywords(profile.AgendaKeywords, 3), ", ")))
		}
	}

	// 3 attendee count within the type ideal
	count := in.AttendeeCount()
	switch {
	case count >= profile.MinAttendees && count <= profile.MaxAttendees:
		strength(1.0, "Attendee count fits this meeting type")
	case count < profile.MinAttendees:
		tip(-1.0, fmt.Sprintf("Too few attendees, this format works best with at least %d", profile.MinAttendees))
	default:
		tip(-1.0, fmt.Sprintf("Too many attendees, keep it to %d or fewer", profile.MaxAttendees))
	}

	// 4 someone owns the outcome
	if in.HasDRI() {
		strength(0.5, "A DRI is assigned")
	} else {
		tip(-1.0, "Assign a DRI to own the outcome")
	}

	// 5 duration near the type ideal, skipped when the type defines none
	if profile.IdealDurationMin > 0 {
		d := in.EffectiveDuration()
		lo := profile.IdealDurationMin - profile.DurationTolerance
		hi := profile.IdealDurationMin + profile.DurationTolerance
		if d >= lo && d <= hi {
			strength(1.0, "Duration matches the standard format")
		} else {
			tip(-0.5, fmt.Sprintf("Plan for about %d minutes, the standard length for this meeting", profile.IdealDurationMin))
		}
	}

	// 6 rituals should recur
	if in.IsRecurring() {
		strength(0.5, "Meeting is set up as recurring")
	} else {
		tip(-1.5, "Make this a recurring meeting, rituals live on cadence")
	}

	// 7 cadence matches the type ideal, only checked when recurring with a
	// frequency set and the type defines an ideal
	if profile.IdealFrequency != "" && in.IsRecurring() && in.RecurrenceFrequency != "" {
		if string(in.RecurrenceFrequency) == profile.IdealFrequency {
			strength(0.5, "Cadence matches the standard rhythm")
		} else {
			tip(-0.5, fmt.Sprintf("Run this %s, the standard cadence for this meeting", profile.IdealFrequency))
		}
	}

	// 8 optional attendees dilute a ritual
	if in.OptionalCount() == 0 {
		strength(0.5, "Everyone invited is expected to participate")
	} else {
		tip(-0.5, "Drop optional attendees, rituals need the whole group present")
	}

	res.Score = round1(clamp10(score))
	res.Level = prepLevelFor(res.Score)
	return res, nil
}

// prepLevelFor partitions the rounded score, upper bounds exclusive except
// the top tier
func prepLevelFor(score float64) PrepLevel {
	switch {
	case score < 3.0:
		return PrepNotReady
	case score < 5.0:
		return PrepNeedsWork
	case score < 7.5:
		return PrepAlmostReady
	default:
		return PrepFullyPrepared
	}
}

// countKeywordHits counts distinct keywords that appear as case-insensitive
// substrings anywhere across the agenda item titles
func countKeywordHits(items []AgendaItem, keywords []string) int {
	titles := make([]string, 0, len(items))
	for _, it := range items {
		titles = append(titles, strings.ToLower(it.Title))
	}
	hits := 0
	for _, kw := range keywords {
		for _, t := range titles {
			if strings.Contains(t, kw) {
				hits++
				break
			}
		}
	}
	return hits
}

// exampleKeywords returns up to n keywords for tip wording
func exampleKeywords(keywords []string, n int) []string {
	if len(keywords) < n {
		n = len(keywords)
	}
	return keywords[:n]
}
