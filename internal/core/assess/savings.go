package assess

// Savings is the estimated reclaimable cost of a meeting
type Savings struct {
	PotentialHoursSaved float64
}

// savingsFraction is the share of the meeting cost each recommendation
// reclaims
var savingsFraction = map[Recommendation]float64{
	RecommendSkip:       1.0,
	RecommendAsyncFirst: 0.8,
	RecommendShorten:    0.4,
	RecommendProceed:    0.0,
}

// EstimateSavings converts a recommendation into reclaimed person-hours:
// duration in hours times attendee count times the recommendation fraction
func EstimateSavings(in Input, rec Recommendation) Savings {
	hours := float64(in.EffectiveDuration()) / 60
	return Savings{
		PotentialHoursSaved: hours * float64(in.AttendeeCount()) * savingsFraction[rec],
	}
}
