package config

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/sipcalc/stepup-calculator/internal/domain"
)

// DefaultStepUpRate is the annual step-up applied when a plan sets none.
var DefaultStepUpRate = decimal.NewFromFloat(0.10)

// Preset bundles the defaults and the instrument catalogue of a named plan
type Preset struct {
	ID          domain.PresetID
	Name        string
	Parameters  domain.PlanParameters
	Instruments []domain.InstrumentAllocation
}

func fund(name, category string, weight int64, rationale string) domain.InstrumentAllocation {
	return domain.InstrumentAllocation{
		Name:                  name,
		Category:              category,
		WeightPercent:         decimal.NewFromInt(weight),
		ContributionFrequency: domain.Monthly,
		Rationale:             rationale,
	}
}

var presets = map[domain.PresetID]Preset{
	domain.PresetShortTerm: {
		ID:   domain.PresetShortTerm,
		Name: "Portfolio 1: Short-Term (15 Years)",
		Parameters: domain.PlanParameters{
			ContributionAmount: decimal.NewFromInt(25000),
			HorizonPeriods:     180,
			AnnualGrowthRate:   decimal.NewFromFloat(0.125),
			StepUpRate:         DefaultStepUpRate,
			TargetValue:        decimal.NewFromInt(25000000),
		},
		Instruments: []domain.InstrumentAllocation{
			fund("Bandhan Nifty Alpha 50 Index Fund - Direct Plan", "Index Fund", 30,
				"High-alpha stocks for incremental growth."),
			fund("HDFC Balanced Advantage Fund - Direct Plan", "Hybrid Fund", 20,
				"Stability and growth with balanced equity-debt exposure."),
			fund("Invesco India Flexi Cap Fund Direct Growth", "Multicap Fund", 20,
				"Flexibility to invest across market caps for long-term growth."),
			fund("UTI Nifty 200 Quality 30 Index Fund - Growth", "Large-Cap & Mid-Cap Index Fund", 20,
				"Exposure to high-quality large- and mid-cap stocks for steady returns."),
			fund("Tata Digital India Fund Direct Growth", "Sector - Technology", 10,
				"Targeted exposure to a high-growth technology sector."),
		},
	},
	domain.PresetLongTerm: {
		ID:   domain.PresetLongTerm,
		Name: "Portfolio 2: Long-Term (20 Years)",
		Parameters: domain.PlanParameters{
			ContributionAmount: decimal.NewFromInt(25000),
			HorizonPeriods:     240,
			AnnualGrowthRate:   decimal.NewFromFloat(0.125),
			StepUpRate:         DefaultStepUpRate,
			TargetValue:        decimal.NewFromInt(50000000),
		},
		Instruments: []domain.InstrumentAllocation{
			fund("Mirae Asset Nifty Smallcap 250 Momentum Quality 100 ETF", "Small-Cap Index Fund", 25,
				"High-growth potential in small-cap stocks."),
			fund("Kotak Nifty Midcap 150 Momentum 50 Index Fund", "Midcap Index Fund", 20,
				"Targeted exposure to mid-cap momentum stocks for higher returns."),
			fund("Axis Growth Opportunities Fund Direct Growth", "Large & Mid-Cap", 15,
				"Balanced allocation to large and mid-cap stocks."),
			fund("SBI Energy Opportunities Fund Direct Growth", "Thematic Fund", 15,
				"Exposure to the growing energy sector for potential high returns."),
			fund("Invesco India Smallcap Fund - Direct Plan - Growth", "Small-Cap Fund", 15,
				"Focused exposure to high-growth small-cap stocks."),
			fund("UTI Nifty 500 Value 50 Index Fund - Direct Plan Growth", "Value Index Fund", 10,
				"Targeted exposure to a high-growth Value sector."),
		},
	},
}

// GetPreset returns a copy of the named preset.
func GetPreset(id domain.PresetID) (Preset, error) {
	p, ok := presets[id]
	if !ok {
		return Preset{}, fmt.Errorf("%w: unknown preset %q", domain.ErrInvalidInput, string(id))
	}
	p.Instruments = append([]domain.InstrumentAllocation(nil), p.Instruments...)
	return p, nil
}

// AvailablePresets returns every preset sorted by ID.
func AvailablePresets() []Preset {
	out := make([]Preset, 0, len(presets))
	for id := range presets {
		p, _ := GetPreset(id)
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Plan builds a ready-to-run plan from the preset defaults.
func (p Preset) Plan() domain.Plan {
	return domain.Plan{
		Name:           p.Name,
		Preset:         p.ID,
		PlanParameters: p.Parameters,
		Instruments:    append([]domain.InstrumentAllocation(nil), p.Instruments...),
	}
}

// ApplyPreset fills the parameters a plan leaves unset from its preset. A
// zero value counts as unset unless the key was given explicitly; an empty
// catalogue takes the preset's catalogue.
func ApplyPreset(plan *domain.Plan) error {
	if plan.Preset == domain.PresetNone {
		return nil
	}
	p, err := GetPreset(plan.Preset)
	if err != nil {
		return err
	}
	unset := func(key string, zero bool) bool { return zero && !plan.IsExplicit(key) }
	if plan.Name == "" {
		plan.Name = p.Name
	}
	if unset("contribution_amount", plan.ContributionAmount.IsZero()) {
		plan.ContributionAmount = p.Parameters.ContributionAmount
	}
	if unset("horizon_periods", plan.HorizonPeriods == 0) {
		plan.HorizonPeriods = p.Parameters.HorizonPeriods
	}
	if unset("annual_growth_rate", plan.AnnualGrowthRate.IsZero()) {
		plan.AnnualGrowthRate = p.Parameters.AnnualGrowthRate
	}
	if unset("step_up_rate", plan.StepUpRate.IsZero()) {
		plan.StepUpRate = p.Parameters.StepUpRate
	}
	if unset("target_value", plan.TargetValue.IsZero()) {
		plan.TargetValue = p.Parameters.TargetValue
	}
	if len(plan.Instruments) == 0 {
		plan.Instruments = p.Instruments
	}
	return nil
}

// standardTargets is the target ladder offered to users, 10 lakh to 5 crore.
var standardTargets = []int64{
	1000000, 1500000, 2000000, 2500000, 3000000, 4000000, 5000000,
	10000000, 15000000, 20000000, 25000000, 30000000, 40000000, 50000000,
}

// TargetValueOptions returns the standard targets in ascending order with
// defaultTarget inserted if it is not already one of them.
func TargetValueOptions(defaultTarget decimal.Decimal) []decimal.Decimal {
	out := make([]decimal.Decimal, 0, len(standardTargets)+1)
	found := false
	for _, v := range standardTargets {
		d := decimal.NewFromInt(v)
		if d.Equal(defaultTarget) {
			found = true
		}
		out = append(out, d)
	}
	if !found && defaultTarget.IsPositive() {
		out = append(out, defaultTarget)
		sort.Slice(out, func(i, j int) bool { return out[i].LessThan(out[j]) })
	}
	return out
}
