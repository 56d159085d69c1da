// Package service implements the dashboard API facade
package service

import (
	"context"

	"meetsense/internal/modkit/repokit"
	"meetsense/internal/platform/net/http/bind"
	"meetsense/internal/services/api/dashboard/domain"
	drepo "meetsense/internal/services/api/dashboard/repo"
)

// Service is the concrete implementation of domain.ServicePort
type Service struct {
	DB   repokit.TxRunner
	Repo repokit.Binder[drepo.Repo]
}

// New constructs a dashboard service
func New(db repokit.TxRunner, binder repokit.Binder[drepo.Repo]) *Service {
	if db == nil {
		panic("dashboard.Service requires a non-nil TxRunner")
	}
	if binder == nil {
		panic("dashboard.Service requires a non-nil repo Binder")
	}
	return &Service{DB: db, Repo: binder}
}

// Overview returns window totals for the KPI strip
func (s *Service) Overview(ctx context.Context, in domain.OverviewInput) (domain.OverviewResp, error) {
	if err := bind.Struct(in); err != nil {
		return domain.OverviewResp{}, err
	}
	var out domain.OverviewResp
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var e error
		out, e = s.Repo.Bind(q).Overview(ctx, in)
		return e
	})
	return out, err
}

// RecommendationMix buckets the window by recommendation
func (s *Service) RecommendationMix(ctx context.Context, in domain.MixInput) (domain.RecommendationMixResp, error) {
	if err := bind.Struct(in); err != nil {
		return domain.RecommendationMixResp{}, err
	}
	var out domain.RecommendationMixResp
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var e error
		out, e = s.Repo.Bind(q).RecommendationMix(ctx, in)
		return e
	})
	return out, err
}

// RitualMix buckets the window by detected ritual type
func (s *Service) RitualMix(ctx context.Context, in domain.MixInput) (domain.RitualMixResp, error) {
	if err := bind.Struct(in); err != nil {
		return domain.RitualMixResp{}, err
	}
	var out domain.RitualMixResp
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var e error
		out, e = s.Repo.Bind(q).RitualMix(ctx, in)
		return e
	})
	return out, err
}

// SavingsSeries returns the bucketed reclaimable-hours series
func (s *Service) SavingsSeries(ctx context.Context, in domain.SavingsSeriesInput) (domain.SavingsSeriesResp, error) {
	if err := bind.Struct(in); err != nil {
		return domain.SavingsSeriesResp{}, err
	}
	var out domain.SavingsSeriesResp
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var e error
		out, e = s.Repo.Bind(q).SavingsSeries(ctx, in)
		return e
	})
	return out, err
}
