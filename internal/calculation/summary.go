package calculation

import (
	"fmt"
	"slices"

	"github.com/samber/lo"

	"github.com/sipcalc/stepup-calculator/internal/domain"
)

func snapshotLabel(s domain.PeriodSnapshot) domain.FiscalYear { return s.PeriodLabel }

func labelsOf(snapshots []domain.PeriodSnapshot) []domain.FiscalYear {
	return lo.Map(snapshots, func(s domain.PeriodSnapshot, _ int) domain.FiscalYear { return s.PeriodLabel })
}

// MergeSummaries outer-joins two snapshot series on their period label.
// Every label of either series yields exactly one row, in chronological
// order. Labels found on one side only leave the other side nil.
func MergeSummaries(flat, stepUp []domain.PeriodSnapshot) []domain.CombinedSummaryRow {
	flatBy := lo.KeyBy(flat, snapshotLabel)
	stepUpBy := lo.KeyBy(stepUp, snapshotLabel)

	labels := lo.Uniq(append(labelsOf(flat), labelsOf(stepUp)...))
	slices.Sort(labels)

	return lo.Map(labels, func(label domain.FiscalYear, _ int) domain.CombinedSummaryRow {
		row := domain.CombinedSummaryRow{PeriodLabel: label}
		if s, ok := flatBy[label]; ok {
			row.Flat = &s
		}
		if s, ok := stepUpBy[label]; ok {
			row.StepUp = &s
		}
		return row
	})
}

// CheckAlignment reports ErrMisaligned when the two series do not carry the
// same set of labels. Callers treat it as a warning.
func CheckAlignment(flat, stepUp []domain.PeriodSnapshot) error {
	flatOnly, stepUpOnly := lo.Difference(labelsOf(flat), labelsOf(stepUp))
	if len(flatOnly) == 0 && len(stepUpOnly) == 0 {
		return nil
	}
	return fmt.Errorf("%w: flat-only labels %v, step-up-only labels %v", domain.ErrMisaligned, flatOnly, stepUpOnly)
}
