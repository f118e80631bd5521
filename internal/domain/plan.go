package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MaxHorizonPeriods caps a plan at 100 years of monthly periods.
const MaxHorizonPeriods = 1200

// PlanParameters holds the numeric inputs of a periodic investment plan
type PlanParameters struct {
	ContributionAmount decimal.Decimal `yaml:"contribution_amount" json:"contribution_amount"`
	HorizonPeriods     int             `yaml:"horizon_periods" json:"horizon_periods"`
	AnnualGrowthRate   decimal.Decimal `yaml:"annual_growth_rate" json:"annual_growth_rate"`
	StepUpRate         decimal.Decimal `yaml:"step_up_rate" json:"step_up_rate"`
	TargetValue        decimal.Decimal `yaml:"target_value" json:"target_value"`
}

// Validate checks the plan invariants. Values are never clamped.
func (p PlanParameters) Validate() error {
	if !p.ContributionAmount.IsPositive() {
		return fmt.Errorf("%w: contribution amount must be positive, got %s", ErrInvalidInput, p.ContributionAmount)
	}
	if p.HorizonPeriods < 1 || p.HorizonPeriods > MaxHorizonPeriods {
		return fmt.Errorf("%w: horizon must be between 1 and %d periods, got %d", ErrInvalidInput, MaxHorizonPeriods, p.HorizonPeriods)
	}
	if p.AnnualGrowthRate.IsNegative() {
		return fmt.Errorf("%w: annual growth rate cannot be negative, got %s", ErrInvalidInput, p.AnnualGrowthRate)
	}
	if p.StepUpRate.IsNegative() {
		return fmt.Errorf("%w: step-up rate cannot be negative, got %s", ErrInvalidInput, p.StepUpRate)
	}
	if !p.TargetValue.IsPositive() {
		return fmt.Errorf("%w: target value must be positive, got %s", ErrInvalidInput, p.TargetValue)
	}
	return nil
}

// InstrumentAllocation is one catalogue entry of a plan
type InstrumentAllocation struct {
	Name                  string                `yaml:"name" json:"name"`
	Category              string                `yaml:"category" json:"category"`
	WeightPercent         decimal.Decimal       `yaml:"weight_percent" json:"weight_percent"`
	ContributionFrequency ContributionFrequency `yaml:"contribution_frequency" json:"contribution_frequency"`
	Rationale             string                `yaml:"rationale,omitempty" json:"rationale,omitempty"`
}

// AllocationBreakdown is an instrument with its derived contribution amounts
type AllocationBreakdown struct {
	InstrumentAllocation `yaml:",inline"`
	AllocationAmount     decimal.Decimal `yaml:"allocation_amount" json:"allocation_amount"`
	FrequencyDivisor     int             `yaml:"frequency_divisor" json:"frequency_divisor"`
	PerInstallmentAmount decimal.Decimal `yaml:"per_installment_amount" json:"per_installment_amount"`
}

// FiscalYear tags a snapshot with the plan year it belongs to.
type FiscalYear int

func (fy FiscalYear) String() string { return fmt.Sprintf("FY%d", int(fy)) }

// MarshalText implements encoding.TextMarshaler.
func (fy FiscalYear) MarshalText() ([]byte, error) { return []byte(fy.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (fy *FiscalYear) UnmarshalText(text []byte) error {
	var year int
	if _, err := fmt.Sscanf(string(text), "FY%d", &year); err != nil {
		return fmt.Errorf("%w: bad fiscal year label %q", ErrInvalidInput, string(text))
	}
	*fy = FiscalYear(year)
	return nil
}

// PeriodSnapshot is the state of a projection at a year boundary or at the
// final period of the horizon.
type PeriodSnapshot struct {
	Period              int             `yaml:"period" json:"period"`
	PeriodLabel         FiscalYear      `yaml:"period_label" json:"period_label"`
	CurrentContribution decimal.Decimal `yaml:"current_contribution" json:"current_contribution"`
	CumulativeInvested  decimal.Decimal `yaml:"cumulative_invested" json:"cumulative_invested"`
	// FutureValue sums the contributions paid so far, each compounded to the
	// end of the full horizon.
	FutureValue decimal.Decimal `yaml:"future_value" json:"future_value"`
}

// ProjectionResult is the outcome of one projection run
type ProjectionResult struct {
	TotalInvested    decimal.Decimal  `yaml:"total_invested" json:"total_invested"`
	TotalFutureValue decimal.Decimal  `yaml:"total_future_value" json:"total_future_value"`
	Snapshots        []PeriodSnapshot `yaml:"snapshots" json:"snapshots"`
}

// Gain returns the projected growth over the amount invested.
func (r ProjectionResult) Gain() decimal.Decimal {
	return r.TotalFutureValue.Sub(r.TotalInvested)
}

// FinalContribution returns the contribution active at the last snapshot.
func (r ProjectionResult) FinalContribution() decimal.Decimal {
	if len(r.Snapshots) == 0 {
		return decimal.Zero
	}
	return r.Snapshots[len(r.Snapshots)-1].CurrentContribution
}

// CombinedSummaryRow aligns the flat and step-up snapshots for one label.
// A nil side means that series has no snapshot for the label.
type CombinedSummaryRow struct {
	PeriodLabel FiscalYear      `yaml:"period_label" json:"period_label"`
	Flat        *PeriodSnapshot `yaml:"flat,omitempty" json:"flat,omitempty"`
	StepUp      *PeriodSnapshot `yaml:"step_up,omitempty" json:"step_up,omitempty"`
}

// GoalStatus is the verdict of comparing a projection against its target
type GoalStatus string

const (
	GoalAchieved  GoalStatus = "achieved"
	GoalShortfall GoalStatus = "shortfall"
)

// Achieved reports whether the status is GoalAchieved.
func (s GoalStatus) Achieved() bool { return s == GoalAchieved }
