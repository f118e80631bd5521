package output

import (
	"bytes"
	"encoding/csv"

	"github.com/sipcalc/stepup-calculator/internal/domain"
)

var allocationHeader = []string{
	"Plan", "Fund Name", "Category", "Allocation (%)", "Allocation Amount",
	"SIP Amount per Installment", "Installments per Month", "Investment Frequency", "Rationale",
}

// CSVAllocationExporter writes the per-instrument allocation breakdown of every plan.
type CSVAllocationExporter struct{}

func (c CSVAllocationExporter) Name() string       { return "allocations-csv" }
func (c CSVAllocationExporter) Extension() string  { return "csv" }
func (c CSVAllocationExporter) FilePrefix() string { return "sip_allocations" }

func (c CSVAllocationExporter) Format(results *domain.PlanComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(allocationHeader); err != nil {
		return nil, err
	}
	for _, plan := range results.Plans {
		for _, a := range plan.Allocations {
			row := []string{
				plan.Name,
				a.Name,
				a.Category,
				a.WeightPercent.String(),
				FormatAmount(a.AllocationAmount),
				FormatAmount(a.PerInstallmentAmount),
				intToString(a.FrequencyDivisor),
				a.ContributionFrequency.String(),
				a.Rationale,
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
