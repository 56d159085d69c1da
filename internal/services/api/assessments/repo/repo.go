// Package repo provides postgres access for assessments
package repo

import (
	"context"

	"meetsense/internal/modkit/repokit"
)

// Repo defines the repository contract for assessments
type Repo interface {
	Insert(ctx context.Context, row RowAssessment) error
	Get(ctx context.Context, id string) (RowAssessment, error)
	Search(ctx context.Context, title, recommendation, ritual string, limit int) ([]RowSummary, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// RowAssessment is a stored assessment row
// Payload carries the full scored document as JSON, the scalar columns
// exist for filtering and summaries only
type RowAssessment struct {
	ID             string
	Title          string
	RitualType     string
	Recommendation string
	Score          float64
	HoursSaved     float64
	ProtectedMode  bool
	Payload        []byte
	CreatedAt      string
}

// RowSummary is a search hit without the payload
type RowSummary struct {
	ID             string
	Title          string
	RitualType     string
	Recommendation string
	Score          float64
	HoursSaved     float64
	CreatedAt      string
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	// queries holds the database query methods
	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) Insert(ctx context.Context, row RowAssessment) error {
	const sql = `
insert into assessments (id, title, ritual_type, recommendation, score, hours_saved, protected_mode, payload, created_at)
values ($1, $2, $3, $4, $5, $6, $7, $8::jsonb, $9::timestamptz)
`
	_, err := r.q.Exec(ctx, sql,
		row.ID,
		row.Title,
		row.RitualType,
		row.Recommendation,
		row.Score,
		row.HoursSaved,
		row.ProtectedMode,
		row.Payload,
		row.CreatedAt,
	)
	return err
}

func (r *queries) Get(ctx context.Context, id string) (RowAssessment, error) {
	const sql = `
select id::text, title, ritual_type, recommendation, score, hours_saved, protected_mode, payload, created_at::text
from assessments
where id = $1::uuid
`
	var row RowAssessment
	err := r.q.QueryRow(ctx, sql, id).Scan(
		&row.ID,
		&row.Title,
		&row.RitualType,
		&row.Recommendation,
		&row.Score,
		&row.HoursSaved,
		&row.ProtectedMode,
		&row.Payload,
		&row.CreatedAt,
	)
	if err != nil {
		return RowAssessment{}, err
	}
	return row, nil
}

func (r *queries) Search(
	ctx context.Context,
	title, recommendation, ritual string,
	limit int,
) ([]RowSummary, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	const sql = `
select id::text, title, ritual_type, recommendation, score, hours_saved, created_at::text
from assessments
where ($1 = '' or title ilike '%' || $1 || '%')
and ($2 = '' or recommendation = $2)
and ($3 = '' or ritual_type = $3)
order by created_at desc
limit $4
`
	rows, err := r.q.Query(ctx, sql, title, recommendation, ritual, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []RowSummary
	for rows.Next() {
		var rr RowSummary
		if err := rows.Scan(
			&rr.ID,
			&rr.Title,
			&rr.RitualType,
			&rr.Recommendation,
			&rr.Score,
			&rr.HoursSaved,
			&rr.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}

func (r *queries) Delete(ctx context.Context, id string) (bool, error) {
	const sql = `delete from assessments where id = $1::uuid`
	tag, err := r.q.Exec(ctx, sql, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
