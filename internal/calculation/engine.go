package calculation

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/sipcalc/stepup-calculator/internal/domain"
)

// CalculationEngine orchestrates the projections of one or more plans
type CalculationEngine struct {
	BaseYear int
	Debug    bool // Log every snapshot
	Logger   Logger
	// MaxParallel bounds concurrent plan runs in RunPlans; <= 0 means unbounded.
	MaxParallel int
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		BaseYear: domain.DefaultBaseYear,
		Logger:   NopLogger{},
	}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

func (ce *CalculationEngine) logger() Logger {
	if ce.Logger == nil {
		return NopLogger{}
	}
	return ce.Logger
}

// RunPlan calculates the complete report for a single plan
func (ce *CalculationEngine) RunPlan(ctx context.Context, plan *domain.Plan) (*domain.PlanReport, error) {
	baseYear := ce.BaseYear
	if baseYear == 0 {
		baseYear = domain.DefaultBaseYear
	}
	return ce.runPlan(ctx, plan, baseYear)
}

func (ce *CalculationEngine) runPlan(ctx context.Context, plan *domain.Plan, baseYear int) (*domain.PlanReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log := withPlan(ce.logger(), plan.Name)

	params := plan.PlanParameters
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("plan %q: %w", plan.Name, err)
	}

	rate, err := ToPeriodicRate(params.AnnualGrowthRate)
	if err != nil {
		return nil, fmt.Errorf("plan %q: %w", plan.Name, err)
	}
	log.Debugf("annual rate %s -> monthly rate %s", params.AnnualGrowthRate, rate)

	projector := NewProjector(baseYear)
	flat, err := projector.ProjectFlat(params.ContributionAmount, rate, params.HorizonPeriods)
	if err != nil {
		return nil, fmt.Errorf("plan %q: flat projection: %w", plan.Name, err)
	}
	stepUp, err := projector.ProjectStepUp(params.ContributionAmount, rate, params.HorizonPeriods, params.StepUpRate)
	if err != nil {
		return nil, fmt.Errorf("plan %q: step-up projection: %w", plan.Name, err)
	}

	allocations, err := SplitAllocations(params.ContributionAmount, plan.Instruments)
	if err != nil {
		return nil, fmt.Errorf("plan %q: %w", plan.Name, err)
	}

	report := &domain.PlanReport{
		Name:         plan.Name,
		Preset:       plan.Preset,
		Parameters:   params,
		PeriodicRate: rate,
		Flat:         flat,
		StepUp:       stepUp,
		Allocations:  allocations,
		Summary:      MergeSummaries(flat.Snapshots, stepUp.Snapshots),
		Goal:         EvaluateGoal(stepUp.TotalFutureValue, params.TargetValue),
		FlatGoal:     EvaluateGoal(flat.TotalFutureValue, params.TargetValue),
		Shortfall:    decimal.Zero,
		Assumptions:  plan.Assumptions(),
	}
	if !report.Goal.Achieved() {
		report.Shortfall = params.TargetValue.Sub(stepUp.TotalFutureValue)
	}

	if err := CheckAlignment(flat.Snapshots, stepUp.Snapshots); err != nil {
		log.Warnf("%v", err)
		report.Warnings = append(report.Warnings, err.Error())
	}
	if len(plan.Instruments) > 0 {
		if total := plan.TotalWeight(); !total.Equal(decimalHundred) {
			msg := fmt.Sprintf("instrument weights total %s%%; allocations sum to %s of %s",
				total.String(), TotalAllocated(allocations).StringFixed(2), params.ContributionAmount.StringFixed(2))
			log.Warnf("%s", msg)
			report.Warnings = append(report.Warnings, msg)
		}
	}

	if ce.Debug {
		for _, row := range report.Summary {
			if row.Flat != nil && row.StepUp != nil {
				log.Debugf("%s flat invested=%s fv=%s | step-up sip=%s invested=%s fv=%s",
					row.PeriodLabel,
					row.Flat.CumulativeInvested.StringFixed(2), row.Flat.FutureValue.StringFixed(2),
					row.StepUp.CurrentContribution.StringFixed(2), row.StepUp.CumulativeInvested.StringFixed(2), row.StepUp.FutureValue.StringFixed(2))
			}
		}
	}
	log.Infof("flat fv=%s step-up fv=%s target=%s goal=%s",
		flat.TotalFutureValue.StringFixed(2), stepUp.TotalFutureValue.StringFixed(2), params.TargetValue.StringFixed(2), report.Goal)

	return report, nil
}

// RunPlans runs every plan of the configuration concurrently and returns the
// reports in configuration order.
func (ce *CalculationEngine) RunPlans(ctx context.Context, config *domain.Configuration) (*domain.PlanComparison, error) {
	if config == nil || len(config.Plans) == 0 {
		return nil, fmt.Errorf("%w: no plans to run", domain.ErrInvalidInput)
	}
	baseYear := config.EffectiveBaseYear()
	reports := make([]domain.PlanReport, len(config.Plans))

	g, gctx := errgroup.WithContext(ctx)
	if ce.MaxParallel > 0 {
		g.SetLimit(ce.MaxParallel)
	}
	for i := range config.Plans {
		plan := &config.Plans[i]
		g.Go(func() error {
			report, err := ce.runPlan(gctx, plan, baseYear)
			if err != nil {
				return fmt.Errorf("RunPlan failed: %w", err)
			}
			reports[i] = *report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &domain.PlanComparison{
		GeneratedAt: nowFunc(),
		BaseYear:    baseYear,
		Plans:       reports,
	}, nil
}
