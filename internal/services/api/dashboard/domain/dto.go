// Package domain holds DTOs for the dashboard HTTP and service contracts
package domain

// TimeRange defines an inclusive start and end date in YYYY-MM-DD UTC
type TimeRange struct {
	Start string `json:"start" validate:"required,datetime=2006-01-02" example:"2025-08-01"`
	End   string `json:"end"   validate:"required,datetime=2006-01-02" example:"2025-08-31"`
}

// OverviewInput selects the window for the KPI strip
type OverviewInput struct {
	Range TimeRange `json:"range"`
}

// OverviewResp returns totals for the window
type OverviewResp struct {
	Assessments    uint64  `json:"assessments"     example:"412"`
	AvgScore       float64 `json:"avg_score"       example:"5.8"`
	HoursSaved     float64 `json:"hours_saved"     example:"96.4"`
	ProtectedShare float64 `json:"protected_share" example:"0.31"` // protected assessments / all
}

// MixInput selects the window for a mix query
type MixInput struct {
	Range TimeRange `json:"range"`
}

// MixSlice is one bucket of a mix
type MixSlice struct {
	Key   string `json:"key"   example:"proceed"`
	Count uint64 `json:"count" example:"120"`
}

// RecommendationMixResp buckets assessments by recommendation
type RecommendationMixResp struct {
	Items []MixSlice `json:"items"`
}

// RitualMixResp buckets assessments by detected ritual type
type RitualMixResp struct {
	Items []MixSlice `json:"items"`
}

// SavingsSeriesInput selects window and bucket size for the savings series
type SavingsSeriesInput struct {
	Range    TimeRange `json:"range"`
	Interval string    `json:"interval,omitempty" validate:"omitempty,oneof=auto day week month" example:"day"`
}

// SavingsPoint is one bucket of the savings series
type SavingsPoint struct {
	T           string  `json:"t"            example:"2025-08-14"`
	HoursSaved  float64 `json:"hours_saved"  example:"12.6"`
	Assessments uint64  `json:"assessments"  example:"37"`
}

// SavingsSeriesResp is the bucketed reclaimable-hours series
type SavingsSeriesResp struct {
	Interval string         `json:"interval" example:"day"`
	Points   []SavingsPoint `json:"points"`
}
