// Package domain holds DTOs for assessments http and service contracts
package domain

import (
	"meetsense/internal/core/assess"
)

// AttendeeDTO is one invited participant
type AttendeeDTO struct {
	ID         string `json:"id" validate:"required,max=100" example:"u_123"`
	Name       string `json:"name,omitempty" validate:"max=200" example:"Ana"`
	Role       string `json:"role,omitempty" validate:"max=200" example:"Engineering lead"`
	IsDRI      bool   `json:"is_dri" example:"true"`
	IsOptional bool   `json:"is_optional" example:"false"`
}

// AgendaItemDTO is one agenda entry, order is display order
type AgendaItemDTO struct {
	Title       string `json:"title" validate:"required,max=300" example:"Scorecard review"`
	DurationMin int    `json:"duration_min,omitempty" validate:"omitempty,min=1,max=1440" example:"10"`
	Notes       string `json:"notes,omitempty" validate:"max=2000"`
}

// AssessmentInput is the wizard's description of a proposed meeting plus the
// explicit protected-mode flag, never an ambient toggle
type AssessmentInput struct {
	Title            string          `json:"title,omitempty" validate:"max=300" example:"Weekly L10 Meeting"`
	Purpose          string          `json:"purpose" validate:"required,oneof=info_share decide brainstorm align" example:"decide"`
	Urgency          string          `json:"urgency" validate:"required,oneof=today this_week flexible" example:"this_week"`
	DurationMin      int             `json:"duration_min,omitempty" validate:"omitempty,min=1,max=1440" example:"90"`
	DecisionRequired bool            `json:"decision_required" example:"true"`
	Interactivity    string          `json:"interactivity" validate:"required,oneof=high medium low" example:"high"`
	Complexity       string          `json:"complexity" validate:"required,oneof=high medium low" example:"medium"`
	AsyncPossible    *bool           `json:"async_possible,omitempty" example:"false"`
	HasAgenda        bool            `json:"has_agenda" example:"true"`
	AgendaItems      []AgendaItemDTO `json:"agenda_items,omitempty" validate:"max=100,dive"`
	Attendees        []AttendeeDTO   `json:"attendees,omitempty" validate:"max=200,dive"`
	IsRecurring      *bool           `json:"is_recurring,omitempty" example:"true"`
	RecurrenceFreq   string          `json:"recurrence_frequency,omitempty" validate:"omitempty,oneof=daily weekly biweekly monthly quarterly" example:"weekly"`
	ProtectedMode    bool            `json:"protected_mode" example:"true"`
}

// ToCore converts the transport shape into the engine's input value
func (in AssessmentInput) ToCore() assess.Input {
	out := assess.Input{
		Title:               in.Title,
		Purpose:             assess.Purpose(in.Purpose),
		Urgency:             assess.Urgency(in.Urgency),
		DurationMin:         in.DurationMin,
		DecisionRequired:    in.DecisionRequired,
		Interactivity:       assess.Level(in.Interactivity),
		Complexity:          assess.Level(in.Complexity),
		AsyncPossible:       in.AsyncPossible,
		HasAgenda:           in.HasAgenda,
		Recurring:           in.IsRecurring,
		RecurrenceFrequency: assess.Frequency(in.RecurrenceFreq),
	}
	for _, it := range in.AgendaItems {
		out.AgendaItems = append(out.AgendaItems, assess.AgendaItem{
			Title:       it.Title,
			DurationMin: it.DurationMin,
			Notes:       it.Notes,
		})
	}
	for _, a := range in.Attendees {
		out.Attendees = append(out.Attendees, assess.Attendee{
			ID:       a.ID,
			Name:     a.Name,
			Role:     a.Role,
			DRI:      a.IsDRI,
			Optional: a.IsOptional,
		})
	}
	return out
}

// ScoreFactorDTO is one labeled scoring term
type ScoreFactorDTO struct {
	Label       string  `json:"label" example:"Agenda"`
	Impact      float64 `json:"impact" example:"0.5"`
	Description string  `json:"description" example:"Agenda is prepared"`
}

// BreakdownDTO partitions the factors into what helped and what hurt
type BreakdownDTO struct {
	Helping []ScoreFactorDTO `json:"helping"`
	Hurting []ScoreFactorDTO `json:"hurting"`
}

// ScoreResultDTO is the viability verdict
type ScoreResultDTO struct {
	Score          float64 `json:"score" example:"7.5"`
	Recommendation string  `json:"recommendation" example:"proceed"`
	Reasoning      string  `json:"reasoning"`
}

// PreparednessDTO is the readiness verdict for ritual meetings
type PreparednessDTO struct {
	Score     float64  `json:"score" example:"8.0"`
	Level     string   `json:"level" example:"fully_prepared"`
	Tips      []string `json:"tips"`
	Strengths []string `json:"strengths"`
}

// SavingsDTO is the estimated reclaimable cost
type SavingsDTO struct {
	PotentialHoursSaved float64 `json:"potential_hours_saved" example:"4.5"`
}

// Assessment is the full scored payload returned to callers. ID and
// CreatedAt are empty on previews, persistence owns both
type Assessment struct {
	ID           string           `json:"id,omitempty" example:"5f8c1a2e-0b1a-4b7e-9c60-3f6a1f9d2c4b"`
	Input        AssessmentInput  `json:"input"`
	RitualType   string           `json:"ritual_type" example:"l10"`
	Result       ScoreResultDTO   `json:"result"`
	Preparedness *PreparednessDTO `json:"preparedness,omitempty"`
	Breakdown    BreakdownDTO     `json:"breakdown"`
	Savings      SavingsDTO       `json:"savings"`
	Actions      []string         `json:"actions"`
	CreatedAt    string           `json:"created_at,omitempty" example:"2025-09-03T13:00:00Z"`
}

// SearchInput filters stored assessments
type SearchInput struct {
	Title          string `json:"title,omitempty" validate:"max=300" example:"l10"`
	Recommendation string `json:"recommendation,omitempty" validate:"omitempty,oneof=skip async_first shorten proceed" example:"skip"`
	RitualType     string `json:"ritual_type,omitempty" validate:"omitempty,oneof=l10 ids quarterly none" example:"l10"`
	Limit          int    `json:"limit,omitempty" validate:"omitempty,min=1,max=200" example:"50"`
}

// Summary is one row of a search result
type Summary struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	RitualType     string  `json:"ritual_type"`
	Score          float64 `json:"score"`
	Recommendation string  `json:"recommendation"`
	HoursSaved     float64 `json:"hours_saved"`
	CreatedAt      string  `json:"created_at"`
}
