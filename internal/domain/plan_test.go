package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func validParameters() PlanParameters {
	return PlanParameters{
		ContributionAmount: decimal.NewFromInt(25000),
		HorizonPeriods:     180,
		AnnualGrowthRate:   decimal.NewFromFloat(0.125),
		StepUpRate:         decimal.NewFromFloat(0.10),
		TargetValue:        decimal.NewFromInt(25000000),
	}
}

func TestPlanParameters_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *PlanParameters)
		wantErr bool
	}{
		{"valid", func(p *PlanParameters) {}, false},
		{"zero growth is valid", func(p *PlanParameters) { p.AnnualGrowthRate = decimal.Zero }, false},
		{"zero contribution", func(p *PlanParameters) { p.ContributionAmount = decimal.Zero }, true},
		{"negative contribution", func(p *PlanParameters) { p.ContributionAmount = decimal.NewFromInt(-1) }, true},
		{"zero horizon", func(p *PlanParameters) { p.HorizonPeriods = 0 }, true},
		{"negative horizon", func(p *PlanParameters) { p.HorizonPeriods = -12 }, true},
		{"horizon at the cap", func(p *PlanParameters) { p.HorizonPeriods = MaxHorizonPeriods }, false},
		{"horizon past the cap", func(p *PlanParameters) { p.HorizonPeriods = MaxHorizonPeriods + 1 }, true},
		{"negative growth", func(p *PlanParameters) { p.AnnualGrowthRate = decimal.NewFromFloat(-0.01) }, true},
		{"negative step-up", func(p *PlanParameters) { p.StepUpRate = decimal.NewFromFloat(-0.05) }, true},
		{"zero target", func(p *PlanParameters) { p.TargetValue = decimal.Zero }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validParameters()
			tt.mutate(&p)
			err := p.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestContributionFrequency(t *testing.T) {
	tests := []struct {
		in      string
		want    ContributionFrequency
		divisor int
	}{
		{"monthly", Monthly, 1},
		{"Monthly", Monthly, 1},
		{"15-days", SemiMonthly, 2},
		{"semi_monthly", SemiMonthly, 2},
		{"weekly", Weekly, 4},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			f, err := ParseContributionFrequency(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, f)
			d, err := f.Divisor()
			require.NoError(t, err)
			assert.Equal(t, tt.divisor, d)
		})
	}

	_, err := ParseContributionFrequency("daily")
	assert.ErrorIs(t, err, ErrInvalidFrequency)

	_, err = ContributionFrequency(3).Divisor()
	assert.ErrorIs(t, err, ErrInvalidFrequency)
	_, err = ContributionFrequency(0).Divisor()
	assert.ErrorIs(t, err, ErrInvalidFrequency)
}

func TestInstrumentAllocation_YAML(t *testing.T) {
	src := "name: Index Fund\ncategory: Index\nweight_percent: 30\ncontribution_frequency: weekly\n"
	var in InstrumentAllocation
	require.NoError(t, yaml.Unmarshal([]byte(src), &in))
	assert.Equal(t, "Index Fund", in.Name)
	assert.True(t, in.WeightPercent.Equal(decimal.NewFromInt(30)))
	assert.Equal(t, Weekly, in.ContributionFrequency)

	bad := "name: X\nweight_percent: 10\ncontribution_frequency: hourly\n"
	err := yaml.Unmarshal([]byte(bad), &in)
	assert.ErrorIs(t, err, ErrInvalidFrequency)
}

func TestFiscalYear_Text(t *testing.T) {
	assert.Equal(t, "FY2025", FiscalYear(2025).String())

	b, err := json.Marshal(PeriodSnapshot{PeriodLabel: 2031})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"period_label":"FY2031"`)

	var fy FiscalYear
	require.NoError(t, fy.UnmarshalText([]byte("FY2040")))
	assert.Equal(t, FiscalYear(2040), fy)
	assert.ErrorIs(t, fy.UnmarshalText([]byte("2040")), ErrInvalidInput)
}

func TestParsePresetID(t *testing.T) {
	id, err := ParsePresetID("Short-Term")
	require.NoError(t, err)
	assert.Equal(t, PresetShortTerm, id)

	id, err = ParsePresetID("long_term")
	require.NoError(t, err)
	assert.Equal(t, PresetLongTerm, id)

	_, err = ParsePresetID("mid_term")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestProjectionResult_Helpers(t *testing.T) {
	r := ProjectionResult{
		TotalInvested:    decimal.NewFromInt(100),
		TotalFutureValue: decimal.NewFromInt(150),
		Snapshots: []PeriodSnapshot{
			{CurrentContribution: decimal.NewFromInt(10)},
			{CurrentContribution: decimal.NewFromInt(11)},
		},
	}
	assert.True(t, r.Gain().Equal(decimal.NewFromInt(50)))
	assert.True(t, r.FinalContribution().Equal(decimal.NewFromInt(11)))
	assert.True(t, ProjectionResult{}.FinalContribution().IsZero())
}

func TestPlan_AssumptionsAndWeight(t *testing.T) {
	p := Plan{
		Name:           "p",
		PlanParameters: validParameters(),
		Instruments: []InstrumentAllocation{
			{WeightPercent: decimal.NewFromInt(60)},
			{WeightPercent: decimal.NewFromInt(30)},
		},
	}
	assert.True(t, p.TotalWeight().Equal(decimal.NewFromInt(90)))
	lines := p.Assumptions()
	assert.Contains(t, lines, "Investment period: 180 months (15 years)")
	assert.Contains(t, lines, "Expected annual return (CAGR): 12.50%")

	p.HorizonPeriods = 30
	assert.Contains(t, p.Assumptions(), "Investment period: 30 months (2 years 6 months)")
	assert.True(t, (&Plan{}).TotalWeight().IsZero())

	cfg := Configuration{}
	assert.Equal(t, DefaultBaseYear, cfg.EffectiveBaseYear())
	cfg.BaseYear = 2030
	assert.Equal(t, 2030, cfg.EffectiveBaseYear())
}
