package calculation

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/sipcalc/stepup-calculator/internal/domain"
)

// SplitAllocations divides one periodic contribution across the catalogue.
// Weights are used as given; a catalogue not summing to 100% allocates more
// or less than the contribution.
func SplitAllocations(contributionAmount decimal.Decimal, instruments []domain.InstrumentAllocation) ([]domain.AllocationBreakdown, error) {
	if !contributionAmount.IsPositive() {
		return nil, fmt.Errorf("%w: contribution must be positive, got %s", domain.ErrInvalidInput, contributionAmount)
	}

	out := make([]domain.AllocationBreakdown, 0, len(instruments))
	for _, in := range instruments {
		divisor, err := in.ContributionFrequency.Divisor()
		if err != nil {
			return nil, fmt.Errorf("instrument %q: %w", in.Name, err)
		}
		allocation := contributionAmount.Mul(in.WeightPercent).Div(decimalHundred)
		out = append(out, domain.AllocationBreakdown{
			InstrumentAllocation: in,
			AllocationAmount:     allocation,
			FrequencyDivisor:     divisor,
			PerInstallmentAmount: allocation.Div(decimal.NewFromInt(int64(divisor))),
		})
	}
	return out, nil
}

// TotalAllocated sums the allocation amounts of a breakdown.
func TotalAllocated(breakdown []domain.AllocationBreakdown) decimal.Decimal {
	return lo.Reduce(breakdown, func(acc decimal.Decimal, b domain.AllocationBreakdown, _ int) decimal.Decimal {
		return acc.Add(b.AllocationAmount)
	}, decimal.Zero)
}
