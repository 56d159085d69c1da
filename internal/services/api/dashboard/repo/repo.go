// Package repo provides clickhouse access for the dashboard
package repo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"meetsense/internal/modkit/repokit"
	"meetsense/internal/platform/store"
	"meetsense/internal/services/api/dashboard/domain"
)

// Repo defines the analytics read surface for the dashboard
type Repo interface {
	Overview(ctx context.Context, in domain.OverviewInput) (domain.OverviewResp, error)
	RecommendationMix(ctx context.Context, in domain.MixInput) (domain.RecommendationMixResp, error)
	RitualMix(ctx context.Context, in domain.MixInput) (domain.RitualMixResp, error)
	SavingsSeries(ctx context.Context, in domain.SavingsSeriesInput) (domain.SavingsSeriesResp, error)
}

// NewCH constructs a clickhouse-backed binder for the dashboard
func NewCH(ch store.Clickhouse) repokit.Binder[Repo] { return &chBinder{ch: ch} }

type chBinder struct{ ch store.Clickhouse }

// Bind ignores the SQL queryer, all dashboard reads go to clickhouse
func (b *chBinder) Bind(_ repokit.Queryer) Repo { return &chStore{ch: b.ch} }

type chStore struct{ ch store.Clickhouse }

// window parses an inclusive date range into [start, endExcl)
func window(r domain.TimeRange) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01-02", r.Start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	endIncl, err := time.Parse("2006-01-02", r.End)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, endIncl.Add(24 * time.Hour), nil
}

func (s *chStore) Overview(ctx context.Context, in domain.OverviewInput) (domain.OverviewResp, error) {
	start, endExcl, err := window(in.Range)
	if err != nil {
		return domain.OverviewResp{}, err
	}
	const sql = `
		SELECT
			count() AS assessments,
			round(ifNotFinite(avg(score), 0), 2) AS avg_score,
			round(sum(hours_saved), 2) AS hours_saved,
			round(ifNotFinite(countIf(protected_mode) / count(), 0), 4) AS protected_share
		FROM meetsense.assessment_events
		WHERE created_at >= ? AND created_at < ?
	`
	rows, err := s.ch.Query(ctx, sql, start, endExcl)
	if err != nil {
		return domain.OverviewResp{}, err
	}
	defer rows.Close()

	var out domain.OverviewResp
	if rows.Next() {
		if err := rows.Scan(&out.Assessments, &out.AvgScore, &out.HoursSaved, &out.ProtectedShare); err != nil {
			return domain.OverviewResp{}, err
		}
	}
	return out, rows.Err()
}

func (s *chStore) RecommendationMix(ctx context.Context, in domain.MixInput) (domain.RecommendationMixResp, error) {
	items, err := s.mix(ctx, "recommendation", in)
	if err != nil {
		return domain.RecommendationMixResp{}, err
	}
	return domain.RecommendationMixResp{Items: items}, nil
}

func (s *chStore) RitualMix(ctx context.Context, in domain.MixInput) (domain.RitualMixResp, error) {
	items, err := s.mix(ctx, "ritual_type", in)
	if err != nil {
		return domain.RitualMixResp{}, err
	}
	return domain.RitualMixResp{Items: items}, nil
}

// mix buckets events by a low cardinality column
// column is one of our own identifiers, never caller input
func (s *chStore) mix(ctx context.Context, column string, in domain.MixInput) ([]domain.MixSlice, error) {
	start, endExcl, err := window(in.Range)
	if err != nil {
		return nil, err
	}
	sql := fmt.Sprintf(`
		SELECT %s AS key, count() AS cnt
		FROM meetsense.assessment_events
		WHERE created_at >= ? AND created_at < ?
		GROUP BY key
		ORDER BY cnt DESC, key ASC
	`, column)
	rows, err := s.ch.Query(ctx, sql, start, endExcl)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.MixSlice
	for rows.Next() {
		var sl domain.MixSlice
		if err := rows.Scan(&sl.Key, &sl.Count); err != nil {
			return nil, err
		}
		out = append(out, sl)
	}
	return out, rows.Err()
}

func (s *chStore) SavingsSeries(ctx context.Context, in domain.SavingsSeriesInput) (domain.SavingsSeriesResp, error) {
	interval := strings.ToLower(strings.TrimSpace(in.Interval))
	switch interval {
	case "", "auto":
		interval = "day"
	case "day", "week", "month":
	default:
		interval = "day"
	}

	start, endExcl, err := window(in.Range)
	if err != nil {
		return domain.SavingsSeriesResp{}, err
	}

	var bucketExpr, fmtMask string
	switch interval {
	case "week":
		bucketExpr = "toStartOfWeek(created_at)"
		fmtMask = "%Y-%m-%d"
	case "month":
		bucketExpr = "toStartOfMonth(created_at)"
		fmtMask = "%Y-%m-01"
	default: // day
		bucketExpr = "toStartOfDay(created_at)"
		fmtMask = "%Y-%m-%d"
	}

	sql := fmt.Sprintf(`
		SELECT
			formatDateTime(%s, '%s') AS t,
			round(sum(hours_saved), 2) AS hours_saved,
			count() AS assessments
		FROM meetsense.assessment_events
		WHERE created_at >= ? AND created_at < ?
		GROUP BY t
		ORDER BY t ASC
	`, bucketExpr, fmtMask)

	rows, err := s.ch.Query(ctx, sql, start, endExcl)
	if err != nil {
		return domain.SavingsSeriesResp{}, err
	}
	defer rows.Close()

	out := domain.SavingsSeriesResp{Interval: interval}
	for rows.Next() {
		var p domain.SavingsPoint
		if err := rows.Scan(&p.T, &p.HoursSaved, &p.Assessments); err != nil {
			return domain.SavingsSeriesResp{}, err
		}
		out.Points = append(out.Points, p)
	}
	return out, rows.Err()
}
