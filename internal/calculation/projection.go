package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sipcalc/stepup-calculator/internal/domain"
	"github.com/sipcalc/stepup-calculator/pkg/dateutil"
)

// WorkingPrecision is the number of decimal places kept for growth factors,
// stepped-up contributions and compounded payments. Reports round to 2.
const WorkingPrecision = 16

// Projector runs the flat and step-up projections. BaseYear is the fiscal
// year of periods 1-12.
type Projector struct {
	BaseYear int
}

// NewProjector creates a projector labelling snapshots from baseYear.
func NewProjector(baseYear int) *Projector {
	return &Projector{BaseYear: baseYear}
}

// ProjectFlat projects a constant contribution using the default base year.
func ProjectFlat(contribution, periodicRate decimal.Decimal, horizonPeriods int) (domain.ProjectionResult, error) {
	return NewProjector(domain.DefaultBaseYear).ProjectFlat(contribution, periodicRate, horizonPeriods)
}

// ProjectStepUp projects an escalating contribution using the default base year.
func ProjectStepUp(baseContribution, periodicRate decimal.Decimal, horizonPeriods int, stepUpRate decimal.Decimal) (domain.ProjectionResult, error) {
	return NewProjector(domain.DefaultBaseYear).ProjectStepUp(baseContribution, periodicRate, horizonPeriods, stepUpRate)
}

// ProjectFlat pays the same contribution every period.
func (pr *Projector) ProjectFlat(contribution, periodicRate decimal.Decimal, horizonPeriods int) (domain.ProjectionResult, error) {
	if err := validateProjection(contribution, periodicRate, horizonPeriods); err != nil {
		return domain.ProjectionResult{}, err
	}
	return pr.accumulate(contribution, periodicRate, horizonPeriods, nil), nil
}

// ProjectStepUp raises the contribution by stepUpRate at the start of every
// 12-period block after the first. The increase compounds block over block.
func (pr *Projector) ProjectStepUp(baseContribution, periodicRate decimal.Decimal, horizonPeriods int, stepUpRate decimal.Decimal) (domain.ProjectionResult, error) {
	if err := validateProjection(baseContribution, periodicRate, horizonPeriods); err != nil {
		return domain.ProjectionResult{}, err
	}
	if stepUpRate.IsNegative() {
		return domain.ProjectionResult{}, fmt.Errorf("%w: step-up rate cannot be negative, got %s", domain.ErrInvalidInput, stepUpRate)
	}
	factor := decimalOne.Add(stepUpRate)
	step := func(period int, current decimal.Decimal) decimal.Decimal {
		if dateutil.IsBlockStart(period) {
			return current.Mul(factor).Round(WorkingPrecision)
		}
		return current
	}
	return pr.accumulate(baseContribution, periodicRate, horizonPeriods, step), nil
}

// contributionStep returns the contribution active in period given the one
// active in the previous period.
type contributionStep func(period int, current decimal.Decimal) decimal.Decimal

// accumulate is the compounding loop shared by both variants. The payment of
// period p grows for horizon-p+1 periods, so every future value here is
// measured at the end of the full horizon, snapshots included.
func (pr *Projector) accumulate(initial, periodicRate decimal.Decimal, horizon int, step contributionStep) domain.ProjectionResult {
	growth := growthFactors(periodicRate, horizon)

	result := domain.ProjectionResult{
		TotalInvested:    decimal.Zero,
		TotalFutureValue: decimal.Zero,
		Snapshots:        make([]domain.PeriodSnapshot, 0, dateutil.BlockCount(horizon)),
	}
	current := initial
	for period := 1; period <= horizon; period++ {
		if step != nil {
			current = step(period, current)
		}
		result.TotalFutureValue = result.TotalFutureValue.Add(current.Mul(growth[horizon-period+1]).Round(WorkingPrecision))
		result.TotalInvested = result.TotalInvested.Add(current)

		if dateutil.IsSnapshotPeriod(period, horizon) {
			result.Snapshots = append(result.Snapshots, domain.PeriodSnapshot{
				Period:              period,
				PeriodLabel:         domain.FiscalYear(dateutil.FiscalYearForPeriod(pr.BaseYear, period)),
				CurrentContribution: current,
				CumulativeInvested:  result.TotalInvested,
				FutureValue:         result.TotalFutureValue,
			})
		}
	}
	return result
}

// growthFactors returns (1+rate)^k for k in [0, n], each rounded to
// WorkingPrecision before the next multiplication.
func growthFactors(rate decimal.Decimal, n int) []decimal.Decimal {
	factors := make([]decimal.Decimal, n+1)
	factors[0] = decimalOne
	base := decimalOne.Add(rate)
	for k := 1; k <= n; k++ {
		factors[k] = factors[k-1].Mul(base).Round(WorkingPrecision)
	}
	return factors
}

func validateProjection(contribution, periodicRate decimal.Decimal, horizon int) error {
	if !contribution.IsPositive() {
		return fmt.Errorf("%w: contribution must be positive, got %s", domain.ErrInvalidInput, contribution)
	}
	if horizon < 1 || horizon > domain.MaxHorizonPeriods {
		return fmt.Errorf("%w: horizon must be between 1 and %d periods, got %d", domain.ErrInvalidInput, domain.MaxHorizonPeriods, horizon)
	}
	if periodicRate.LessThan(decimalMinusOne) {
		return fmt.Errorf("%w: periodic rate cannot be below -100%%, got %s", domain.ErrInvalidInput, periodicRate)
	}
	return nil
}
