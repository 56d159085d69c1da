// Package http provides http transport for the dashboard
package http

import (
	stdhttp "net/http"

	"meetsense/internal/modkit/httpkit"
	"meetsense/internal/services/api/dashboard/domain"
	svc "meetsense/internal/services/api/dashboard/service"
)

// Register mounts dashboard endpoints on the given router
func Register(r httpkit.Router, s *svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.OverviewInput](r, "/overview", h.overview)
	httpkit.PostJSON[domain.MixInput](r, "/recommendation-mix", h.recommendationMix)
	httpkit.PostJSON[domain.MixInput](r, "/ritual-mix", h.ritualMix)
	httpkit.PostJSON[domain.SavingsSeriesInput](r, "/savings-series", h.savingsSeries)
}

type handlers struct{ svc *svc.Service }

// swagger:route POST /dashboard/overview Dashboard dashboardOverview
// @Summary Window totals for the KPI strip
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param payload body domain.OverviewInput true "Window"
// @Success 200 {object} domain.OverviewResp "ok"
// @Router /dashboard/overview [post]
func (h *handlers) overview(r *stdhttp.Request, in domain.OverviewInput) (any, error) {
	return h.svc.Overview(r.Context(), in)
}

// swagger:route POST /dashboard/recommendation-mix Dashboard dashboardRecommendationMix
// @Summary Assessment counts by recommendation
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param payload body domain.MixInput true "Window"
// @Success 200 {object} domain.RecommendationMixResp "ok"
// @Router /dashboard/recommendation-mix [post]
func (h *handlers) recommendationMix(r *stdhttp.Request, in domain.MixInput) (any, error) {
	return h.svc.RecommendationMix(r.Context(), in)
}

// swagger:route POST /dashboard/ritual-mix Dashboard dashboardRitualMix
// @Summary Assessment counts by detected ritual type
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param payload body domain.MixInput true "Window"
// @Success 200 {object} domain.RitualMixResp "ok"
// @Router /dashboard/ritual-mix [post]
func (h *handlers) ritualMix(r *stdhttp.Request, in domain.MixInput) (any, error) {
	return h.svc.RitualMix(r.Context(), in)
}

// swagger:route POST /dashboard/savings-series Dashboard dashboardSavingsSeries
// @Summary Bucketed reclaimable hours over the window
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param payload body domain.SavingsSeriesInput true "Window and interval"
// @Success 200 {object} domain.SavingsSeriesResp "ok"
// @Router /dashboard/savings-series [post]
func (h *handlers) savingsSeries(r *stdhttp.Request, in domain.SavingsSeriesInput) (any, error) {
	return h.svc.SavingsSeries(r.Context(), in)
}
