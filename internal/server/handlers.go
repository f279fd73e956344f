package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/rallyforge/benefits-engine/internal/calculation"
	"github.com/rallyforge/benefits-engine/internal/config"
	"github.com/rallyforge/benefits-engine/internal/domain"
	"github.com/rallyforge/benefits-engine/internal/store"
)

const maxBodyBytes = 1 << 20

var (
	minRate = decimal.NewFromFloat(-0.10)
	maxRate = decimal.NewFromFloat(0.20)
)

// writeJSON encodes v with go-json instead of gin's renderer.
func writeJSON(c *gin.Context, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		_ = c.Error(err)
		c.Data(http.StatusInternalServerError, "application/json; charset=utf-8",
			[]byte(`{"error":"internal_error","message":"failed to encode response"}`))
		return
	}
	c.Data(status, "application/json; charset=utf-8", data)
}

func writeError(c *gin.Context, status int, code, message string) {
	writeJSON(c, status, ErrorResponse{Error: code, Message: message})
}

// writeValidation maps ValidationErrors to a 400 with field detail and
// anything else to a 500.
func writeValidation(c *gin.Context, err error) {
	if fields, ok := config.AsValidationErrors(err); ok {
		writeJSON(c, http.StatusBadRequest, ErrorResponse{
			Error:   "validation_failed",
			Message: "request failed validation",
			Fields:  fields,
		})
		return
	}
	_ = c.Error(err)
	writeError(c, http.StatusInternalServerError, "internal_error", err.Error())
}

// bindJSON decodes the body into dst, rejecting unknown fields, and runs the
// struct-tag rules. It writes the error response itself and reports false on
// failure.
func bindJSON(c *gin.Context, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeError(c, http.StatusBadRequest, "bad_request", fmt.Sprintf("invalid JSON body: %v", err))
		return false
	}
	if err := config.ValidateStruct(dst); err != nil {
		writeValidation(c, err)
		return false
	}
	return true
}

// check finishes a request's cross-field validation.
func check(c *gin.Context, ch *config.Checker) bool {
	if err := ch.Err(); err != nil {
		writeValidation(c, err)
		return false
	}
	return true
}

// Health handles GET /health
// @Summary Liveness probe
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (s *Server) Health(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{"status": "ok"})
}

// CombineRatings handles POST /v1/ratings/combine
// @Summary Combine disability ratings
// @Description Applies the remaining-capacity rule, and the bilateral factor when conditions are given
// @Tags ratings
// @Accept json
// @Produce json
// @Param request body CombineRequest true "Ratings or conditions"
// @Success 200 {object} domain.CombinedRating
// @Failure 400 {object} ErrorResponse
// @Router /v1/ratings/combine [post]
func (s *Server) CombineRatings(c *gin.Context) {
	var req CombineRequest
	if !bindJSON(c, &req) {
		return
	}
	if len(req.Conditions) > 0 {
		writeJSON(c, http.StatusOK, calculation.CombineConditions(req.Conditions))
		return
	}
	writeJSON(c, http.StatusOK, calculation.CombineRatings(req.Ratings))
}

// CompoundProjection handles POST /v1/projections/compound
// @Summary Project an investment account
// @Tags projections
// @Accept json
// @Produce json
// @Param request body CompoundRequest true "Account and horizon"
// @Success 200 {object} CompoundResponse
// @Failure 400 {object} ErrorResponse
// @Router /v1/projections/compound [post]
func (s *Server) CompoundProjection(c *gin.Context) {
	var req CompoundRequest
	if !bindJSON(c, &req) {
		return
	}
	var ch config.Checker
	config.ValidateAccount(&ch, "account", req.Account)
	ch.Range("inflation_rate", req.InflationRate, minRate, maxRate)
	if !check(c, &ch) {
		return
	}

	years, rate := calculation.ProjectAccount(req.Account, req.Years, req.InflationRate)
	writeJSON(c, http.StatusOK, CompoundResponse{EffectiveReturn: rate, Years: years})
}

// IncomeProjection handles POST /v1/projections/income
// @Summary Project COLA-adjusted income streams
// @Tags projections
// @Accept json
// @Produce json
// @Param request body IncomeRequest true "Streams and horizon"
// @Success 200 {object} IncomeResponse
// @Failure 400 {object} ErrorResponse
// @Router /v1/projections/income [post]
func (s *Server) IncomeProjection(c *gin.Context) {
	var req IncomeRequest
	if !bindJSON(c, &req) {
		return
	}
	var ch config.Checker
	for i, st := range req.Streams {
		ch.NonNegative(fmt.Sprintf("streams[%d].monthly_amount", i), st.MonthlyAmount)
		ch.Range(fmt.Sprintf("streams[%d].cola_rate", i), st.COLA(), minRate, maxRate)
	}
	if !check(c, &ch) {
		return
	}

	resp := IncomeResponse{Projections: make([]domain.IncomeProjection, 0, len(req.Streams))}
	for _, st := range req.Streams {
		resp.Projections = append(resp.Projections, calculation.ProjectIncome(st, req.Years))
	}
	resp.Total = calculation.SumIncome(resp.Projections)
	writeJSON(c, http.StatusOK, resp)
}

// Compensation handles POST /v1/compensation
// @Summary Look up monthly VA compensation
// @Tags benefits
// @Accept json
// @Produce json
// @Param request body CompensationRequest true "Rating and dependents"
// @Success 200 {object} domain.CompensationResult
// @Failure 400 {object} ErrorResponse
// @Router /v1/compensation [post]
func (s *Server) Compensation(c *gin.Context) {
	var req CompensationRequest
	if !bindJSON(c, &req) {
		return
	}
	writeJSON(c, http.StatusOK, s.engine.Compensation.MonthlyCompensation(req.Rating, req.Dependents))
}

// ClassifyCRSC handles POST /v1/crsc/classify
// @Summary Classify conditions for CRSC
// @Tags benefits
// @Accept json
// @Produce json
// @Param request body CRSCRequest true "Conditions with combat flags"
// @Success 200 {object} CRSCResponse
// @Failure 400 {object} ErrorResponse
// @Router /v1/crsc/classify [post]
func (s *Server) ClassifyCRSC(c *gin.Context) {
	var req CRSCRequest
	if !bindJSON(c, &req) {
		return
	}

	category, combat := calculation.ClassifyConditions(req.Conditions)
	resp := CRSCResponse{
		Category:         category,
		CombatRelated:    category.IsCombatRelated(),
		Conditions:       make([]ConditionCategory, 0, len(req.Conditions)),
		CombatConditions: make([]string, 0, len(combat)),
	}
	for _, cond := range req.Conditions {
		resp.Conditions = append(resp.Conditions, ConditionCategory{Code: cond.Code, Category: calculation.ClassifyCRSC(cond.Combat)})
	}
	for _, cond := range combat {
		resp.CombatConditions = append(resp.CombatConditions, cond.Code)
	}
	if len(combat) > 0 {
		resp.CombatRating = calculation.CombineConditions(combat).Combined
	}
	writeJSON(c, http.StatusOK, resp)
}

// Offset handles POST /v1/offsets
// @Summary Compute the VA waiver and CRDP/CRSC restoration
// @Tags benefits
// @Accept json
// @Produce json
// @Param request body domain.OffsetInput true "Monthly pay figures"
// @Success 200 {object} domain.OffsetResult
// @Failure 400 {object} ErrorResponse
// @Router /v1/offsets [post]
func (s *Server) Offset(c *gin.Context) {
	var req domain.OffsetInput
	if !bindJSON(c, &req) {
		return
	}
	var ch config.Checker
	ch.NonNegative("retired_pay", req.RetiredPay)
	ch.NonNegative("va_compensation", req.VACompensation)
	ch.NonNegative("combat_compensation", req.CombatCompensation)
	ch.NonNegative("years_of_service", req.YearsOfService)
	if req.CombinedRating < 0 || req.CombinedRating > 100 {
		ch.Add("combined_rating", "must be between 0 and 100")
	}
	if !check(c, &ch) {
		return
	}
	writeJSON(c, http.StatusOK, calculation.ComputeOffset(req))
}

// Pension handles POST /v1/pension
// @Summary Compute monthly retired pay
// @Tags benefits
// @Accept json
// @Produce json
// @Param request body domain.PensionInput true "High-3, multiplier and service"
// @Success 200 {object} domain.PensionResult
// @Failure 400 {object} ErrorResponse
// @Router /v1/pension [post]
func (s *Server) Pension(c *gin.Context) {
	var req domain.PensionInput
	if !bindJSON(c, &req) {
		return
	}
	var ch config.Checker
	ch.NonNegative("high3_average", req.High3Average)
	ch.NonNegative("multiplier", req.Multiplier)
	ch.NonNegative("years_of_service", req.YearsOfService)
	if req.Survivor != nil {
		ch.NonNegative("survivor.base_amount", req.Survivor.BaseAmount)
		ch.Range("survivor.coverage_percent", req.Survivor.CoveragePercent, decimal.Zero, decimal.NewFromInt(1))
	}
	if !check(c, &ch) {
		return
	}
	writeJSON(c, http.StatusOK, calculation.CalculatePension(req))
}

// Budget handles POST /v1/budget
// @Summary Break down a monthly budget
// @Tags planning
// @Accept json
// @Produce json
// @Param request body domain.Budget true "Incomes, expenses and goals"
// @Success 200 {object} domain.BudgetBreakdown
// @Failure 400 {object} ErrorResponse
// @Router /v1/budget [post]
func (s *Server) Budget(c *gin.Context) {
	var req domain.Budget
	if !bindJSON(c, &req) {
		return
	}
	var ch config.Checker
	config.ValidateBudget(&ch, "budget", req)
	if !check(c, &ch) {
		return
	}
	writeJSON(c, http.StatusOK, calculation.BuildBudgetBreakdown(req))
}

// EvidenceConfidence handles POST /v1/evidence/confidence
// @Summary Score claim evidence
// @Tags claims
// @Accept json
// @Produce json
// @Param request body EvidenceRequest true "Required and provided evidence"
// @Success 200 {object} domain.EvidenceAssessment
// @Failure 400 {object} ErrorResponse
// @Router /v1/evidence/confidence [post]
func (s *Server) EvidenceConfidence(c *gin.Context) {
	var req EvidenceRequest
	if !bindJSON(c, &req) {
		return
	}
	writeJSON(c, http.StatusOK, calculation.MatchEvidence(req.Required, req.Provided))
}

// RunScenarios handles POST /v1/scenarios/run
// @Summary Run a full scenario configuration
// @Description Pass save=true to record the run in history
// @Tags scenarios
// @Accept json
// @Produce json
// @Param request body domain.Configuration true "Scenario configuration"
// @Param save query bool false "Save the run"
// @Param label query string false "History label"
// @Success 200 {object} RunResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/scenarios/run [post]
func (s *Server) RunScenarios(c *gin.Context) {
	cfg := config.NewConfiguration()
	dec := json.NewDecoder(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		writeError(c, http.StatusBadRequest, "bad_request", fmt.Sprintf("invalid JSON body: %v", err))
		return
	}
	config.ApplyDefaults(cfg)
	if err := s.parser.ValidateConfiguration(cfg); err != nil {
		writeValidation(c, err)
		return
	}

	save, _ := strconv.ParseBool(c.DefaultQuery("save", "false"))
	if save && s.history == nil {
		writeError(c, http.StatusBadRequest, "bad_request", "run history is not enabled on this server")
		return
	}

	engine, err := s.engine.ForConfiguration(cfg)
	if err != nil {
		writeError(c, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	cmp, err := engine.RunScenarios(c.Request.Context(), cfg)
	if err != nil {
		if errors.Is(err, calculation.ErrUnknownStrategy) {
			writeError(c, http.StatusBadRequest, "bad_request", err.Error())
			return
		}
		_ = c.Error(err)
		writeError(c, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}

	resp := RunResponse{ScenarioComparison: cmp}
	if save {
		label := c.DefaultQuery("label", cfg.Scenarios[0].Name)
		resp.RunID, err = s.history.SaveRun(c.Request.Context(), label, cmp)
		if err != nil {
			_ = c.Error(err)
			writeError(c, http.StatusInternalServerError, "internal_error", "failed to save run")
			return
		}
		s.log.WithField("run_id", resp.RunID).Info("run saved")
	}
	writeJSON(c, http.StatusOK, resp)
}

// ListHistory handles GET /v1/history
// @Summary List saved runs
// @Tags scenarios
// @Produce json
// @Param limit query int false "Maximum runs" default(20)
// @Success 200 {object} HistoryResponse
// @Failure 400 {object} ErrorResponse
// @Router /v1/history [get]
func (s *Server) ListHistory(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 0 {
		writeJSON(c, http.StatusBadRequest, ErrorResponse{
			Error:   "validation_failed",
			Message: "request failed validation",
			Fields:  []config.FieldError{{Field: "limit", Message: "must be a non-negative integer"}},
		})
		return
	}
	runs, err := s.history.ListRuns(c.Request.Context(), limit)
	if err != nil {
		_ = c.Error(err)
		writeError(c, http.StatusInternalServerError, "internal_error", "failed to list runs")
		return
	}
	if runs == nil {
		runs = []store.RunSummary{}
	}
	writeJSON(c, http.StatusOK, HistoryResponse{Runs: runs})
}

// GetHistory handles GET /v1/history/:id
// @Summary Load a saved run
// @Tags scenarios
// @Produce json
// @Param id path string true "Run id"
// @Success 200 {object} domain.ScenarioComparison
// @Failure 404 {object} ErrorResponse
// @Router /v1/history/{id} [get]
func (s *Server) GetHistory(c *gin.Context) {
	cmp, err := s.history.GetRun(c.Request.Context(), c.Param("id"))
	if errors.Is(err, store.ErrRunNotFound) {
		writeError(c, http.StatusNotFound, "not_found", err.Error())
		return
	}
	if err != nil {
		_ = c.Error(err)
		writeError(c, http.StatusInternalServerError, "internal_error", "failed to load run")
		return
	}
	writeJSON(c, http.StatusOK, cmp)
}
