package domain

import "context"

// ServicePort defines the service contract for the dashboard
type ServicePort interface {
	Overview(ctx context.Context, in OverviewInput) (OverviewResp, error)
	RecommendationMix(ctx context.Context, in MixInput) (RecommendationMixResp, error)
	RitualMix(ctx context.Context, in MixInput) (RitualMixResp, error)
	SavingsSeries(ctx context.Context, in SavingsSeriesInput) (SavingsSeriesResp, error)
}
