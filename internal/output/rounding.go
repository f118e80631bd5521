package output

import (
	"github.com/shopspring/decimal"

	"github.com/sipcalc/stepup-calculator/internal/domain"
)

// amountPlaces is the precision of monetary values in serialized reports.
// The engine computes exactly; formatters round only on the way out.
const amountPlaces = 2

func roundAmount(d decimal.Decimal) decimal.Decimal { return d.Round(amountPlaces) }

func roundSnapshot(s domain.PeriodSnapshot) domain.PeriodSnapshot {
	s.CurrentContribution = roundAmount(s.CurrentContribution)
	s.CumulativeInvested = roundAmount(s.CumulativeInvested)
	s.FutureValue = roundAmount(s.FutureValue)
	return s
}

func roundProjection(r domain.ProjectionResult) domain.ProjectionResult {
	out := domain.ProjectionResult{
		TotalInvested:    roundAmount(r.TotalInvested),
		TotalFutureValue: roundAmount(r.TotalFutureValue),
		Snapshots:        make([]domain.PeriodSnapshot, len(r.Snapshots)),
	}
	for i, s := range r.Snapshots {
		out.Snapshots[i] = roundSnapshot(s)
	}
	return out
}

// roundedComparison returns a copy of results with every monetary value
// rounded for serialization. Rates are left untouched.
func roundedComparison(results *domain.PlanComparison) *domain.PlanComparison {
	out := &domain.PlanComparison{
		GeneratedAt: results.GeneratedAt,
		BaseYear:    results.BaseYear,
		Plans:       make([]domain.PlanReport, len(results.Plans)),
	}
	for i, p := range results.Plans {
		p.Flat = roundProjection(p.Flat)
		p.StepUp = roundProjection(p.StepUp)
		p.Shortfall = roundAmount(p.Shortfall)

		allocations := make([]domain.AllocationBreakdown, len(p.Allocations))
		for j, a := range p.Allocations {
			a.AllocationAmount = roundAmount(a.AllocationAmount)
			a.PerInstallmentAmount = roundAmount(a.PerInstallmentAmount)
			allocations[j] = a
		}
		p.Allocations = allocations

		summary := make([]domain.CombinedSummaryRow, len(p.Summary))
		for j, row := range p.Summary {
			if row.Flat != nil {
				s := roundSnapshot(*row.Flat)
				row.Flat = &s
			}
			if row.StepUp != nil {
				s := roundSnapshot(*row.StepUp)
				row.StepUp = &s
			}
			summary[j] = row
		}
		p.Summary = summary
		out.Plans[i] = p
	}
	return out
}
