package calculation

import (
	"context"
	"fmt"

	"github.com/rallyforge/benefits-engine/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// Engine runs complete benefit scenarios. Its compensation table and strategy
// registry are fixed at construction so separate engines never share state.
type Engine struct {
	Compensation *CompensationTable
	Strategies   StrategyRegistry
	Concurrency  int
	Logger       Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger.
func WithLogger(l Logger) Option {
	return func(e *Engine) { e.SetLogger(l) }
}

// WithCompensationTable replaces the built-in compensation table.
func WithCompensationTable(t *CompensationTable) Option {
	return func(e *Engine) {
		if t != nil {
			e.Compensation = t
		}
	}
}

// WithStrategies replaces the withdrawal strategy registry.
func WithStrategies(r StrategyRegistry) Option {
	return func(e *Engine) {
		if r != nil {
			e.Strategies = r
		}
	}
}

// WithConcurrency limits how many scenarios RunScenarios works on at once.
// Zero or less means no limit.
func WithConcurrency(n int) Option {
	return func(e *Engine) { e.Concurrency = n }
}

// NewEngine creates an engine with the default table and strategies.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		Compensation: DefaultCompensationTable(),
		Strategies:   DefaultStrategies(),
		Logger:       NopLogger{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// ForConfiguration returns the engine to run cfg with. A configuration that
// overrides the compensation table gets its own copy of the engine.
func (e *Engine) ForConfiguration(cfg *domain.Configuration) (*Engine, error) {
	if cfg == nil || cfg.Compensation == nil {
		return e, nil
	}
	table, err := NewCompensationTable(*cfg.Compensation)
	if err != nil {
		return nil, fmt.Errorf("compensation table: %w", err)
	}
	cp := *e
	cp.Compensation = table
	return &cp, nil
}

// RunScenario computes every figure for one scenario.
func (e *Engine) RunScenario(ctx context.Context, s *domain.Scenario, a domain.Assumptions) (*domain.ScenarioResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	strategy, err := e.Strategies.Resolve(s.Withdrawal)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
	}

	res := &domain.ScenarioResult{
		RunID:  runIDFunc(),
		Name:   s.Name,
		Events: domain.Events{},
	}

	res.Rating = CombineConditions(s.Conditions)
	res.Events = append(res.Events, domain.RatingCombinedEvent{Ratings: res.Rating.Ratings, Combined: res.Rating.Combined})
	e.Logger.Debugf("scenario %s: combined rating %d%% (exact %s)", s.Name, res.Rating.Combined, res.Rating.Exact.StringFixed(2))

	category, combat := ClassifyConditions(s.Conditions)
	res.CombatCategory = category
	res.Compensation = e.Compensation.MonthlyCompensation(res.Rating.Combined, s.Member.Dependents)

	combatPay := decimal.Zero
	if len(combat) > 0 {
		combatPay = e.Compensation.MonthlyCompensation(CombineConditions(combat).Combined, s.Member.Dependents).Monthly
	}

	res.Pension = CalculatePension(s.Member.PensionInput())
	res.Offset = ComputeOffset(domain.OffsetInput{
		RetiredPay:         res.Pension.NetMonthly,
		VACompensation:     res.Compensation.Monthly,
		CombatCompensation: combatPay,
		CombinedRating:     res.Rating.Combined,
		YearsOfService:     s.Member.YearsOfService(),
		Category:           category,
	})
	if res.Offset.Waiver.IsPositive() {
		res.Events = append(res.Events, domain.OffsetAppliedEvent{
			Program:  res.Offset.Elected,
			Waiver:   res.Offset.Waiver,
			Restored: res.Offset.Restored,
		})
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	accumulation, rate := ProjectAccount(s.Account, a.ProjectionYears, a.InflationRate)
	res.Accumulation = accumulation
	final := res.FinalBalance()
	realFinal := final
	if n := len(accumulation); n > 0 {
		realFinal = accumulation[n-1].RealBalance
	}
	res.Events = append(res.Events, domain.AccountProjectedEvent{
		Years:          a.ProjectionYears,
		EffectiveRate:  rate,
		NominalBalance: final,
		RealBalance:    realFinal,
	})

	res.Drawdown = ProjectDrawdown(final, strategy, s.Withdrawal.DesiredAnnual, a.DrawdownReturn, a.DrawdownYears)
	if res.Drawdown.Depleted {
		e.Logger.Warnf("scenario %s: %s withdrawals deplete the account in drawdown year %d", s.Name, strategy.Name(), res.Drawdown.DepletionYear)
		res.Events = append(res.Events, domain.DrawdownDepletedEvent{Strategy: strategy.Name(), Year: res.Drawdown.DepletionYear})
	}

	res.Income = e.incomeProjections(s, res, a)
	res.TotalIncome = SumIncome(res.Income)

	if s.Budget != nil {
		b := BuildBudgetBreakdown(*s.Budget)
		res.Budget = &b
		if !b.MeetsGoal {
			res.Events = append(res.Events, domain.BudgetShortfallEvent{Shortfall: b.ShortfallAmount})
		}
	}
	if s.Evidence != nil {
		ev := MatchEvidence(s.Evidence.Required, s.Evidence.Provided)
		res.Evidence = &ev
	}

	e.Logger.Infof("scenario %s: rating %d%%, VA %s/mo, retired pay %s/mo, final balance %s",
		s.Name, res.Rating.Combined, res.Compensation.Monthly.StringFixed(2),
		res.Offset.NetRetiredPay.Add(res.Offset.Restored).StringFixed(2), final.StringFixed(2))
	return res, nil
}

// incomeProjections builds the COLA-adjusted streams paid after the offset:
// retired pay net of the waiver, VA compensation, any restored special
// compensation, and the scenario's own extra streams.
func (e *Engine) incomeProjections(s *domain.Scenario, res *domain.ScenarioResult, a domain.Assumptions) []domain.IncomeProjection {
	cola := a.COLARate
	streams := []domain.IncomeStream{
		{Source: domain.IncomeRetiredPay, MonthlyAmount: res.Offset.NetRetiredPay, COLARate: &cola},
		{Source: domain.IncomeVACompensation, MonthlyAmount: res.Compensation.Monthly, COLARate: &cola},
	}
	if res.Offset.Restored.IsPositive() {
		streams = append(streams, domain.IncomeStream{Source: domain.IncomeSpecialComp, MonthlyAmount: res.Offset.Restored, COLARate: &cola})
	}
	streams = append(streams, s.Income...)

	out := make([]domain.IncomeProjection, 0, len(streams))
	for _, st := range streams {
		out = append(out, ProjectIncome(st, a.ProjectionYears))
	}
	return out
}

// RunScenarios runs every scenario in cfg concurrently. Results keep the input
// order. The first failure cancels the remaining work.
func (e *Engine) RunScenarios(ctx context.Context, cfg *domain.Configuration) (*domain.ScenarioComparison, error) {
	e.Logger.Infof("running %d scenarios", len(cfg.Scenarios))

	results := make([]domain.ScenarioResult, len(cfg.Scenarios))
	g, gctx := errgroup.WithContext(ctx)
	if e.Concurrency > 0 {
		g.SetLimit(e.Concurrency)
	}
	for i := range cfg.Scenarios {
		i := i
		g.Go(func() error {
			res, err := e.RunScenario(gctx, &cfg.Scenarios[i], cfg.Assumptions)
			if err != nil {
				return err
			}
			results[i] = *res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		e.Logger.Errorf("scenario run failed: %v", err)
		return nil, err
	}

	cmp := &domain.ScenarioComparison{
		GeneratedAt: nowFunc(),
		Assumptions: cfg.Assumptions,
		Results:     results,
	}
	cmp.Analysis = Analyze(results)
	return cmp, nil
}
