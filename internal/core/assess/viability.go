package assess

import (
	"math"

	"meetsense/internal/core/ritual"
)

// Recommendation is the four-way verdict on a proposed meeting
type Recommendation string

// Recommendation values, the bins partition [0,10] with no gap or overlap
const (
	RecommendSkip       Recommendation = "skip"
	RecommendAsyncFirst Recommendation = "async_first"
	RecommendShorten    Recommendation = "shorten"
	RecommendProceed    Recommendation = "proceed"
)

// Result is the viability verdict for one input
type Result struct {
	Score          float64
	Recommendation Recommendation
	Reasoning      string
}

// ScoreViability computes the 0-10 viability score and recommendation.
// protectedMode unlocks the ritual boost and swaps the reasoning wording,
// it is always an explicit parameter and never ambient state
func ScoreViability(in Input, protectedMode bool) Result {
	score := baseline
	for _, f := range deriveFactors(in, protectedMode) {
		score += f.Impact
	}
	score = round1(clamp10(score))

	rec := recommendationFor(score)
	typ := ritual.Detect(in.Title)
	return Result{
		Score:          score,
		Recommendation: rec,
		Reasoning:      reasoningFor(rec, protectedMode, typ == ritual.L10 || typ == ritual.IDS),
	}
}

// recommendationFor partitions the rounded score, upper bounds exclusive
// except the top bin
func recommendationFor(score float64) Recommendation {
	switch {
	case score < 3.0:
		return RecommendSkip
	case score < 5.0:
		return RecommendAsyncFirst
	case score < 7.0:
		return RecommendShorten
	default:
		return RecommendProceed
	}
}

// reasoningTemplates is the fixed wording table keyed by recommendation.
// Each entry carries the standard line, the protected-mode line, and the
// protected-mode line for L10/IDS titles. No dynamic assembly happens here
var reasoningTemplates = map[Recommendation][3]string{
	RecommendSkip: {
		"This meeting has little going for it. Cancel it and reclaim the time.",
		"Even with protected rituals in mind, this meeting does not earn its slot. Cancel it.",
		"This carries a ritual name but none of the substance. Cancel it or rebuild it properly.",
	},
	RecommendAsyncFirst: {
		"Most of this can be handled async. Try a written update or a short recording first.",
		"Outside your protected rituals this does not need a live slot. Go async first.",
		"The ritual label alone is not enough here. Handle the content async first.",
	},
	RecommendShorten: {
		"Worth meeting, but not for this long. Cut the duration and tighten the invite list.",
		"Worth holding, but trim it. Protect the ritual slots and keep this one short.",
		"Keep the ritual but run it tighter. Trim the agenda to what needs live discussion.",
	},
	RecommendProceed: {
		"This meeting is well set up. Go ahead as planned.",
		"This one earns its slot. Hold it and keep the format.",
		"A well prepared ritual meeting. Protect the slot and run it as designed.",
	},
}

func reasoningFor(rec Recommendation, protectedMode, isL10orIDS bool) string {
	t := reasoningTemplates[rec]
	switch {
	case protectedMode && isL10orIDS:
		return t[2]
	case protectedMode:
		return t[1]
	default:
		return t[0]
	}
}

// round1 rounds to one decimal place, the only rounding in the engine
func round1(x float64) float64 { return math.Round(x*10) / 10 }
