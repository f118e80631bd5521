package calculation

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sipcalc/stepup-calculator/internal/domain"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertDecimal(t *testing.T, want, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	if !want.Equal(got) {
		assert.Fail(t, fmt.Sprintf("decimal mismatch: want %s, got %s", want, got), msgAndArgs...)
	}
}

func TestProjectFlat_ZeroGrowthSingleYear(t *testing.T) {
	res, err := ProjectFlat(d("25000"), decimal.Zero, 12)
	require.NoError(t, err)

	assertDecimal(t, d("300000"), res.TotalInvested)
	assertDecimal(t, d("300000"), res.TotalFutureValue)
	require.Len(t, res.Snapshots, 1)
	assert.Equal(t, 12, res.Snapshots[0].Period)
	assert.Equal(t, domain.FiscalYear(2025), res.Snapshots[0].PeriodLabel)
	assertDecimal(t, d("300000"), res.Snapshots[0].CumulativeInvested)
}

func TestProjectFlat_CompoundsToHorizonEnd(t *testing.T) {
	// 1000 x (1.01^3 + 1.01^2 + 1.01)
	res, err := ProjectFlat(d("1000"), d("0.01"), 3)
	require.NoError(t, err)
	assertDecimal(t, d("3060.401"), res.TotalFutureValue)
	assertDecimal(t, d("3000"), res.TotalInvested)
	require.Len(t, res.Snapshots, 1)
	assert.Equal(t, 3, res.Snapshots[0].Period)
}

func TestProjectFlat_SnapshotValuedAtHorizonEnd(t *testing.T) {
	// The period-12 snapshot of a 13-period plan holds the first twelve
	// payments compounded to period 13, not to period 12.
	res, err := ProjectFlat(d("100"), d("0.01"), 13)
	require.NoError(t, err)
	require.Len(t, res.Snapshots, 2)
	assertDecimal(t, d("1293.74213237622311"), res.Snapshots[0].FutureValue)
	assertDecimal(t, d("1394.74213237622311"), res.Snapshots[1].FutureValue)
	assertDecimal(t, res.TotalFutureValue, res.Snapshots[1].FutureValue)
	assert.Equal(t, domain.FiscalYear(2026), res.Snapshots[1].PeriodLabel)
}

func TestProjectFlat_TotalInvestedIsContributionTimesHorizon(t *testing.T) {
	for _, horizon := range []int{1, 7, 12, 13, 60, 180, 241} {
		res, err := ProjectFlat(d("2500.50"), d("0.0099"), horizon)
		require.NoError(t, err)
		assertDecimal(t, d("2500.50").Mul(decimal.NewFromInt(int64(horizon))), res.TotalInvested, "horizon %d", horizon)
	}
}

func TestProjectStepUp_ZeroStepUpMatchesFlat(t *testing.T) {
	for _, horizon := range []int{1, 11, 12, 25, 120, 180} {
		flat, err := ProjectFlat(d("25000"), d("0.0099"), horizon)
		require.NoError(t, err)
		stepUp, err := ProjectStepUp(d("25000"), d("0.0099"), horizon, decimal.Zero)
		require.NoError(t, err)

		assertDecimal(t, flat.TotalFutureValue, stepUp.TotalFutureValue, "horizon %d", horizon)
		assertDecimal(t, flat.TotalInvested, stepUp.TotalInvested, "horizon %d", horizon)
		assert.Len(t, stepUp.Snapshots, len(flat.Snapshots))
	}
}

func TestProjectStepUp_SecondBlockContribution(t *testing.T) {
	rate, err := ToPeriodicRate(d("0.12"))
	require.NoError(t, err)

	res, err := ProjectStepUp(d("10000"), rate, 24, d("0.10"))
	require.NoError(t, err)
	require.Len(t, res.Snapshots, 2)

	assertDecimal(t, d("10000"), res.Snapshots[0].CurrentContribution)
	assertDecimal(t, d("120000"), res.Snapshots[0].CumulativeInvested)
	assertDecimal(t, d("11000"), res.Snapshots[1].CurrentContribution)
	assertDecimal(t, d("252000"), res.TotalInvested)
}

func TestProjectStepUp_PartialFinalBlock(t *testing.T) {
	res, err := ProjectStepUp(d("1000"), decimal.Zero, 30, d("0.10"))
	require.NoError(t, err)
	require.Len(t, res.Snapshots, 3)

	periods := []int{12, 24, 30}
	labels := []domain.FiscalYear{2025, 2026, 2027}
	contributions := []string{"1000", "1100", "1210"}
	for i, s := range res.Snapshots {
		assert.Equal(t, periods[i], s.Period)
		assert.Equal(t, labels[i], s.PeriodLabel)
		assertDecimal(t, d(contributions[i]), s.CurrentContribution)
	}
	// 12x1000 + 12x1100 + 6x1210
	assertDecimal(t, d("32460"), res.TotalInvested)
	assertDecimal(t, res.TotalInvested, res.TotalFutureValue)
}

func TestProjectStepUp_ExactValues(t *testing.T) {
	res, err := ProjectStepUp(d("1000"), d("0.01"), 14, d("0.1"))
	require.NoError(t, err)
	assertDecimal(t, d("14200"), res.TotalInvested)
	assertDecimal(t, d("15299.9055369998534"), res.TotalFutureValue)
}

func TestProjectStepUp_MonotonicEscalation(t *testing.T) {
	res, err := ProjectStepUp(d("25000"), d("0.0099"), 180, d("0.07"))
	require.NoError(t, err)
	require.Len(t, res.Snapshots, 15)
	for i := 1; i < len(res.Snapshots); i++ {
		prev, cur := res.Snapshots[i-1], res.Snapshots[i]
		assert.True(t, cur.CurrentContribution.GreaterThanOrEqual(prev.CurrentContribution), "block %d", i+1)
		assert.True(t, cur.CumulativeInvested.GreaterThan(prev.CumulativeInvested))
		assert.True(t, cur.FutureValue.GreaterThan(prev.FutureValue))
	}
}

func TestProjectStepUp_LongHorizonStaysBounded(t *testing.T) {
	res, err := ProjectStepUp(d("25000"), d("0.0099"), domain.MaxHorizonPeriods, d("0.0731"))
	require.NoError(t, err)
	require.Len(t, res.Snapshots, 100)

	for _, v := range []decimal.Decimal{res.TotalFutureValue, res.Snapshots[99].CurrentContribution} {
		assert.GreaterOrEqual(t, v.Exponent(), int32(-WorkingPrecision), "value %s", v)
		assert.LessOrEqual(t, v.NumDigits(), 40, "value %s", v)
	}
	assertDecimal(t, d("824694710933.2539197018410021"), res.TotalFutureValue)
}

func TestProjector_BaseYear(t *testing.T) {
	res, err := NewProjector(2030).ProjectFlat(d("100"), decimal.Zero, 36)
	require.NoError(t, err)
	require.Len(t, res.Snapshots, 3)
	assert.Equal(t, domain.FiscalYear(2030), res.Snapshots[0].PeriodLabel)
	assert.Equal(t, domain.FiscalYear(2032), res.Snapshots[2].PeriodLabel)
}

func TestProjection_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		run  func() error
	}{
		{"zero contribution", func() error { _, err := ProjectFlat(decimal.Zero, d("0.01"), 12); return err }},
		{"negative contribution", func() error { _, err := ProjectStepUp(d("-5"), d("0.01"), 12, decimal.Zero); return err }},
		{"zero horizon", func() error { _, err := ProjectFlat(d("100"), d("0.01"), 0); return err }},
		{"horizon past the cap", func() error { _, err := ProjectFlat(d("100"), d("0.01"), domain.MaxHorizonPeriods+1); return err }},
		{"rate below -100%", func() error { _, err := ProjectFlat(d("100"), d("-1.01"), 12); return err }},
		{"negative step-up", func() error { _, err := ProjectStepUp(d("100"), d("0.01"), 12, d("-0.1")); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.run(), domain.ErrInvalidInput)
		})
	}
}
