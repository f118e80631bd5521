package output

import (
	"bytes"
	"encoding/csv"

	"github.com/sipcalc/stepup-calculator/internal/domain"
)

// summaryHeader lists the combined year-by-year columns. Cells of a series
// missing a year are left empty.
var summaryHeader = []string{
	"Plan", "Year",
	"NonSIPAmount", "NonInvestedAmount", "NonFutureValue",
	"StepupSIPAmount", "StepupInvestedAmount", "StepupFutureValue",
}

// CSVSummarizer implements the combined summary CSV output (one row per plan and year).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string       { return "csv" }
func (c CSVSummarizer) Extension() string  { return "csv" }
func (c CSVSummarizer) FilePrefix() string { return reportPrefix }

func (c CSVSummarizer) Format(results *domain.PlanComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(summaryHeader); err != nil {
		return nil, err
	}
	for _, plan := range results.Plans {
		for _, row := range plan.Summary {
			if err := w.Write(summaryRecord(plan.Name, row)); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func summaryRecord(plan string, row domain.CombinedSummaryRow) []string {
	rec := []string{plan, row.PeriodLabel.String(), "", "", "", "", "", ""}
	if f := row.Flat; f != nil {
		rec[2] = FormatAmount(f.CurrentContribution)
		rec[3] = FormatAmount(f.CumulativeInvested)
		rec[4] = FormatAmount(f.FutureValue)
	}
	if s := row.StepUp; s != nil {
		rec[5] = FormatAmount(s.CurrentContribution)
		rec[6] = FormatAmount(s.CumulativeInvested)
		rec[7] = FormatAmount(s.FutureValue)
	}
	return rec
}
