package domain

import (
	"fmt"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/sipcalc/stepup-calculator/pkg/dateutil"
)

// DefaultBaseYear is the fiscal year assigned to periods 1-12.
const DefaultBaseYear = 2025

// Plan is a named plan as it appears in the configuration file
type Plan struct {
	Name           string   `yaml:"name" json:"name"`
	Preset         PresetID `yaml:"preset,omitempty" json:"preset,omitempty"`
	PlanParameters `yaml:",inline"`
	Instruments    []InstrumentAllocation `yaml:"instruments" json:"instruments"`

	explicit map[string]bool
}

// UnmarshalYAML implements custom YAML unmarshaling for Plan, remembering
// which keys were present so a preset only fills the missing ones.
func (p *Plan) UnmarshalYAML(value *yaml.Node) error {
	type plain Plan
	var aux plain
	if err := value.Decode(&aux); err != nil {
		return err
	}
	*p = Plan(aux)
	if value.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(value.Content); i += 2 {
			p.MarkExplicit(value.Content[i].Value)
		}
	}
	return nil
}

// MarkExplicit records keys (yaml names) as explicitly provided.
func (p *Plan) MarkExplicit(keys ...string) {
	if p.explicit == nil {
		p.explicit = make(map[string]bool, len(keys))
	}
	for _, k := range keys {
		p.explicit[k] = true
	}
}

// IsExplicit reports whether key was explicitly provided.
func (p *Plan) IsExplicit(key string) bool { return p.explicit[key] }

// Configuration is the root of a plan file
type Configuration struct {
	BaseYear int    `yaml:"base_year,omitempty" json:"base_year,omitempty"`
	Plans    []Plan `yaml:"plans" json:"plans"`
}

// EffectiveBaseYear returns the configured base year or DefaultBaseYear.
func (c *Configuration) EffectiveBaseYear() int {
	if c.BaseYear == 0 {
		return DefaultBaseYear
	}
	return c.BaseYear
}

// TotalWeight sums the catalogue weights of the plan.
func (p *Plan) TotalWeight() decimal.Decimal {
	return lo.Reduce(p.Instruments, func(acc decimal.Decimal, in InstrumentAllocation, _ int) decimal.Decimal {
		return acc.Add(in.WeightPercent)
	}, decimal.Zero)
}

// Assumptions renders the plan inputs as human readable lines.
func (p *Plan) Assumptions() []string {
	hundred := decimal.NewFromInt(100)
	years, months := dateutil.YearsAndMonths(p.HorizonPeriods)
	horizon := fmt.Sprintf("%d months (%d years)", p.HorizonPeriods, years)
	if months > 0 {
		horizon = fmt.Sprintf("%d months (%d years %d months)", p.HorizonPeriods, years, months)
	}
	return []string{
		fmt.Sprintf("Monthly contribution: %s", p.ContributionAmount.StringFixed(2)),
		fmt.Sprintf("Investment period: %s", horizon),
		fmt.Sprintf("Expected annual return (CAGR): %s%%", p.AnnualGrowthRate.Mul(hundred).StringFixed(2)),
		fmt.Sprintf("Annual step-up: %s%%", p.StepUpRate.Mul(hundred).StringFixed(2)),
		fmt.Sprintf("Target value: %s", p.TargetValue.StringFixed(0)),
	}
}

// PlanReport is everything computed for one plan
type PlanReport struct {
	Name         string                `json:"name" yaml:"name"`
	Preset       PresetID              `json:"preset,omitempty" yaml:"preset,omitempty"`
	Parameters   PlanParameters        `json:"parameters" yaml:"parameters"`
	PeriodicRate decimal.Decimal       `json:"periodic_rate" yaml:"periodic_rate"`
	Flat         ProjectionResult      `json:"flat" yaml:"flat"`
	StepUp       ProjectionResult      `json:"step_up" yaml:"step_up"`
	Allocations  []AllocationBreakdown `json:"allocations" yaml:"allocations"`
	Summary      []CombinedSummaryRow  `json:"summary" yaml:"summary"`
	Goal         GoalStatus            `json:"goal" yaml:"goal"`
	FlatGoal     GoalStatus            `json:"flat_goal" yaml:"flat_goal"`
	// Shortfall is target minus the step-up future value, zero once achieved.
	Shortfall   decimal.Decimal `json:"shortfall" yaml:"shortfall"`
	Assumptions []string        `json:"assumptions" yaml:"assumptions"`
	Warnings    []string        `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// PlanComparison holds the reports of every plan in a configuration
type PlanComparison struct {
	GeneratedAt time.Time    `json:"generated_at" yaml:"generated_at"`
	BaseYear    int          `json:"base_year" yaml:"base_year"`
	Plans       []PlanReport `json:"plans" yaml:"plans"`
}

// Plan returns the report with the given name.
func (pc *PlanComparison) Plan(name string) (*PlanReport, bool) {
	for i := range pc.Plans {
		if pc.Plans[i].Name == name {
			return &pc.Plans[i], true
		}
	}
	return nil, false
}
