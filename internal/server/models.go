package server

import (
	"github.com/rallyforge/benefits-engine/internal/config"
	"github.com/rallyforge/benefits-engine/internal/domain"
	"github.com/rallyforge/benefits-engine/internal/store"
	"github.com/shopspring/decimal"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error   string              `json:"error"`
	Message string              `json:"message,omitempty"`
	Fields  []config.FieldError `json:"fields,omitempty"`
}

// CombineRequest combines plain ratings, or full conditions when any are given
// so the bilateral factor applies.
type CombineRequest struct {
	Ratings    []int                        `json:"ratings" validate:"dive,min=0,max=100,step10"`
	Conditions []domain.DisabilityCondition `json:"conditions" validate:"dive"`
}

// CompoundRequest projects one account.
type CompoundRequest struct {
	Account       domain.InvestmentAccount `json:"account"`
	Years         int                      `json:"years" validate:"min=1,max=60"`
	InflationRate decimal.Decimal          `json:"inflation_rate"`
}

// CompoundResponse is an account projection.
type CompoundResponse struct {
	EffectiveReturn decimal.Decimal        `json:"effective_return"`
	Years           []domain.YearlyBalance `json:"years"`
}

// IncomeRequest projects several income streams.
type IncomeRequest struct {
	Streams []domain.IncomeStream `json:"streams" validate:"min=1,dive"`
	Years   int                   `json:"years" validate:"min=1,max=60"`
}

// IncomeResponse holds each stream's series and their yearly total.
type IncomeResponse struct {
	Projections []domain.IncomeProjection `json:"projections"`
	Total       []domain.AnnualAmount     `json:"total"`
}

// CompensationRequest looks up VA compensation.
type CompensationRequest struct {
	Rating     int `json:"rating" validate:"min=0,max=100"`
	Dependents int `json:"dependents" validate:"min=0,max=20"`
}

// CRSCRequest classifies conditions for combat-related special compensation.
type CRSCRequest struct {
	Conditions []domain.DisabilityCondition `json:"conditions" validate:"min=1,dive"`
}

// ConditionCategory is the category assigned to one condition.
type ConditionCategory struct {
	Code     string              `json:"code"`
	Category domain.CRSCCategory `json:"category"`
}

// CRSCResponse is the overall category plus the per-condition breakdown.
type CRSCResponse struct {
	Category         domain.CRSCCategory `json:"category"`
	CombatRelated    bool                `json:"combat_related"`
	Conditions       []ConditionCategory `json:"conditions"`
	CombatConditions []string            `json:"combat_conditions"`
	CombatRating     int                 `json:"combat_rating"`
}

// EvidenceRequest scores supplied evidence.
type EvidenceRequest struct {
	Required []string `json:"required"`
	Provided []string `json:"provided"`
}

// RunResponse wraps a scenario comparison with its history id when saved.
type RunResponse struct {
	RunID string `json:"run_id,omitempty"`
	*domain.ScenarioComparison
}

// HistoryResponse lists saved runs.
type HistoryResponse struct {
	Runs []store.RunSummary `json:"runs"`
}
