// Package http provides http transport for assessments
package http

import (
	stdhttp "net/http"

	"meetsense/internal/modkit/httpkit"
	"meetsense/internal/platform/logger"
	"meetsense/internal/platform/net/middleware"
	"meetsense/internal/services/api/assessments/domain"
	svc "meetsense/internal/services/api/assessments/service"
)

// Register mounts assessments endpoints on the given router
// when auth is non nil the delete route requires the admin bearer token
func Register(r httpkit.Router, s svc.Service, auth middleware.AuthPort) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.AssessmentInput](r, "/", h.create)
	httpkit.PostJSON[domain.AssessmentInput](r, "/preview", h.preview)
	httpkit.PostJSON[domain.SearchInput](r, "/search", h.search)
	httpkit.Get(r, "/{id}", h.get)
	if auth != nil {
		httpkit.Protected(r, auth, func(pr httpkit.Router) {
			httpkit.Delete(pr, "/{id}", h.remove)
		})
	} else {
		httpkit.Delete(r, "/{id}", h.remove)
	}
}

type handlers struct{ svc svc.Service }

// swagger:route POST /assessments Assessments assessmentsCreate
// @Summary Score a proposed meeting and persist the result
// @Tags Assessments
// @Accept json
// @Produce json
// @Param payload body domain.AssessmentInput true "Meeting description"
// @Success 200 {object} domain.Assessment "ok"
// @Failure 400 {object} httpkit.Envelope "validation error"
// @Router /assessments [post]
func (h *handlers) create(r *stdhttp.Request, in domain.AssessmentInput) (any, error) {
	out, err := h.svc.Create(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(out), nil
}

// swagger:route POST /assessments/preview Assessments assessmentsPreview
// @Summary Score a proposed meeting without persisting it
// @Tags Assessments
// @Accept json
// @Produce json
// @Param payload body domain.AssessmentInput true "Meeting description"
// @Success 200 {object} domain.Assessment "ok"
// @Failure 400 {object} httpkit.Envelope "validation error"
// @Router /assessments/preview [post]
func (h *handlers) preview(r *stdhttp.Request, in domain.AssessmentInput) (any, error) {
	return h.svc.Preview(r.Context(), in)
}

// swagger:route POST /assessments/search Assessments assessmentsSearch
// @Summary Search stored assessments
// @Tags Assessments
// @Accept json
// @Produce json
// @Param payload body domain.SearchInput true "Filters"
// @Success 200 {array} domain.Summary "ok"
// @Router /assessments/search [post]
func (h *handlers) search(r *stdhttp.Request, in domain.SearchInput) (any, error) {
	return h.svc.Search(r.Context(), in)
}

// swagger:route GET /assessments/{id} Assessments assessmentsGet
// @Summary Fetch one stored assessment
// @Tags Assessments
// @Produce json
// @Param id path string true "Assessment id"
// @Success 200 {object} domain.Assessment "ok"
// @Failure 404 {object} httpkit.Envelope "not found"
// @Router /assessments/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	return h.svc.Get(r.Context(), httpkit.Param(r, "id"))
}

// swagger:route DELETE /assessments/{id} Assessments assessmentsDelete
// @Summary Delete one stored assessment
// @Tags Assessments
// @Produce json
// @Param id path string true "Assessment id"
// @Success 204 "deleted"
// @Failure 404 {object} httpkit.Envelope "not found"
// @Router /assessments/{id} [delete]
func (h *handlers) remove(r *stdhttp.Request) (any, error) {
	id := httpkit.Param(r, "id")
	if err := h.svc.Delete(r.Context(), id); err != nil {
		return nil, err
	}
	if uid, err := httpkit.User(r); err == nil {
		logger.C(r.Context()).Info().Str("id", id).Str("by", uid).Msg("assessment deleted")
	}
	return httpkit.NoContent(), nil
}
