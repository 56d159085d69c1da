// Package service contains assessment scoring and persistence workflows
package service

import (
	"context"
	stdsql "database/sql"
	"encoding/json"
	"errors"
	"time"

	"meetsense/internal/core/assess"
	"meetsense/internal/core/ritual"
	"meetsense/internal/modkit/repokit"
	perr "meetsense/internal/platform/errors"
	"meetsense/internal/platform/logger"
	"meetsense/internal/platform/net/http/bind"
	"meetsense/internal/platform/store"
	"meetsense/internal/services/api/assessments/domain"
	"meetsense/internal/services/api/assessments/repo"

	"github.com/google/uuid"
)

// Service defines the service contract for assessments
type Service interface{ domain.ServicePort }

// eventsTable is the analytics sink for scored assessments
const eventsTable = "meetsense.assessment_events"

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	ch     store.Clickhouse

	now   func() time.Time
	newID func() string
}

// New creates a new assessments service
// ch may be nil, event emission is then skipped
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], ch store.Clickhouse) *Svc {
	if db == nil {
		panic("assessments.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("assessments.Service requires a non nil Repo binder")
	}
	return &Svc{
		Repo:   binder.Bind(db),
		binder: binder,
		db:     db,
		ch:     ch,
		now:    func() time.Time { return time.Now().UTC() },
		newID:  func() string { return uuid.NewString() },
	}
}

// Preview scores the input without persisting anything
func (s *Svc) Preview(_ context.Context, in domain.AssessmentInput) (domain.Assessment, error) {
	return Score(in)
}

// Create scores the input, persists the result, and emits an analytics event
func (s *Svc) Create(ctx context.Context, in domain.AssessmentInput) (domain.Assessment, error) {
	out, err := Score(in)
	if err != nil {
		return domain.Assessment{}, err
	}
	out.ID = s.newID()
	createdAt := s.now()
	out.CreatedAt = createdAt.Format(time.RFC3339)

	payload, err := json.Marshal(out)
	if err != nil {
		return domain.Assessment{}, perr.Internalf("marshal assessment: %v", err)
	}

	row := repo.RowAssessment{
		ID:             out.ID,
		Title:          in.Title,
		RitualType:     out.RitualType,
		Recommendation: out.Result.Recommendation,
		Score:          out.Result.Score,
		HoursSaved:     out.Savings.PotentialHoursSaved,
		ProtectedMode:  in.ProtectedMode,
		Payload:        payload,
		CreatedAt:      out.CreatedAt,
	}
	if err := s.Repo.Insert(ctx, row); err != nil {
		return domain.Assessment{}, perr.Wrap(err, perr.ErrorCodeDB, "insert assessment")
	}

	s.emitEvent(ctx, out, createdAt)
	return out, nil
}

// Get returns a stored assessment by id
func (s *Svc) Get(ctx context.Context, id string) (domain.Assessment, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.Assessment{}, perr.InvalidArgf("invalid assessment id")
	}
	row, err := s.Repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, stdsql.ErrNoRows) {
			return domain.Assessment{}, perr.NotFoundf("assessment %s not found", id)
		}
		return domain.Assessment{}, err
	}
	var out domain.Assessment
	if err := json.Unmarshal(row.Payload, &out); err != nil {
		return domain.Assessment{}, perr.Internalf("unmarshal assessment payload: %v", err)
	}
	// stored columns are authoritative for identity
	out.ID = row.ID
	out.CreatedAt = row.CreatedAt
	return out, nil
}

// Search lists stored assessment summaries matching the filters
func (s *Svc) Search(ctx context.Context, in domain.SearchInput) ([]domain.Summary, error) {
	if err := bind.Struct(in); err != nil {
		return nil, err
	}
	rows, err := s.Repo.Search(ctx, in.Title, in.Recommendation, in.RitualType, in.Limit)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Summary, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.Summary{
			ID:             r.ID,
			Title:          r.Title,
			RitualType:     r.RitualType,
			Score:          r.Score,
			Recommendation: r.Recommendation,
			HoursSaved:     r.HoursSaved,
			CreatedAt:      r.CreatedAt,
		})
	}
	return out, nil
}

// Delete removes a stored assessment by id
func (s *Svc) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return perr.InvalidArgf("invalid assessment id")
	}
	ok, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return perr.NotFoundf("assessment %s not found", id)
	}
	return nil
}

// Score runs the full scoring pipeline over a validated input
// it is pure, the one-shot CLI calls it without any storage wired
func Score(in domain.AssessmentInput) (domain.Assessment, error) {
	if err := bind.Struct(in); err != nil {
		return domain.Assessment{}, err
	}
	core := in.ToCore()
	if err := core.Validate(); err != nil {
		return domain.Assessment{}, perr.InvalidArgf("%v", err)
	}

	typ := ritual.Detect(core.Title)
	res := assess.ScoreViability(core, in.ProtectedMode)
	br := assess.Breakdown(core, in.ProtectedMode)
	sav := assess.EstimateSavings(core, res.Recommendation)
	acts := assess.PlanActions(core, res.Recommendation, in.ProtectedMode)

	out := domain.Assessment{
		Input:      in,
		RitualType: string(typ),
		Result: domain.ScoreResultDTO{
			Score:          res.Score,
			Recommendation: string(res.Recommendation),
			Reasoning:      res.Reasoning,
		},
		Breakdown: domain.BreakdownDTO{
			Helping: factorDTOs(br.Helping),
			Hurting: factorDTOs(br.Hurting),
		},
		Savings: domain.SavingsDTO{PotentialHoursSaved: sav.PotentialHoursSaved},
		Actions: acts,
	}

	if in.ProtectedMode && typ.Protected() {
		pr, err := assess.ScorePreparedness(core, typ)
		if err != nil {
			return domain.Assessment{}, perr.Internalf("preparedness: %v", err)
		}
		out.Preparedness = &domain.PreparednessDTO{
			Score:     pr.Score,
			Level:     string(pr.Level),
			Tips:      pr.Tips,
			Strengths: pr.Strengths,
		}
	}
	return out, nil
}

func factorDTOs(fs []assess.Factor) []domain.ScoreFactorDTO {
	out := make([]domain.ScoreFactorDTO, 0, len(fs))
	for _, f := range fs {
		out = append(out, domain.ScoreFactorDTO{
			Label:       f.Label,
			Impact:      f.Impact,
			Description: f.Description,
		})
	}
	return out
}

// emitEvent writes a best effort analytics row, failures only log
func (s *Svc) emitEvent(ctx context.Context, a domain.Assessment, createdAt time.Time) {
	if s.ch == nil {
		return
	}
	var prep any
	if a.Preparedness != nil {
		prep = a.Preparedness.Score
	}
	row := []any{
		a.ID,
		a.RitualType,
		a.Result.Recommendation,
		a.Result.Score,
		prep,
		a.Savings.PotentialHoursSaved,
		a.Input.ProtectedMode,
		uint32(len(a.Input.Attendees)),
		uint32(a.Input.DurationMin),
		createdAt,
	}
	if err := s.ch.Insert(ctx, eventsTable, [][]any{row}); err != nil {
		logger.Named("assessments").Warn().Err(err).Str("id", a.ID).Msg("assessment event emit failed")
	}
}
