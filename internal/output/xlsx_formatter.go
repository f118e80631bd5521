package output

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/sipcalc/stepup-calculator/internal/domain"
)

const (
	plansSheet       = "Plans"
	summarySheet     = "Summary"
	allocationsSheet = "Allocations"
)

var plansHeader = []string{
	"Plan", "Preset", "SIP Amount", "Investment Period (months)", "CAGR", "Monthly Rate", "Step-Up",
	"Target Value", "Invested", "Future Value", "Step-Up Invested", "Step-Up Future Value", "Goal", "Shortfall",
	"Gain", "Step-Up Gain", "Final Step-Up SIP",
}

// XLSXFormatter writes a workbook with one sheet for plan totals, one for the
// combined year-by-year summary and one for the allocation breakdown.
type XLSXFormatter struct{}

func (x XLSXFormatter) Name() string       { return "xlsx" }
func (x XLSXFormatter) Extension() string  { return "xlsx" }
func (x XLSXFormatter) FilePrefix() string { return reportPrefix }

func (x XLSXFormatter) Format(results *domain.PlanComparison) ([]byte, error) {
	rounded := roundedComparison(results)

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", plansSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	for _, name := range []string{summarySheet, allocationsSheet} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("create sheet %s: %w", name, err)
		}
	}

	w := &sheetWriter{file: f}
	w.row(plansSheet, 1, stringsToCells(plansHeader))
	for i, p := range rounded.Plans {
		w.row(plansSheet, i+2, []interface{}{
			p.Name,
			string(p.Preset),
			num(p.Parameters.ContributionAmount),
			p.Parameters.HorizonPeriods,
			num(p.Parameters.AnnualGrowthRate),
			num(p.PeriodicRate),
			num(p.Parameters.StepUpRate),
			num(p.Parameters.TargetValue),
			num(p.Flat.TotalInvested),
			num(p.Flat.TotalFutureValue),
			num(p.StepUp.TotalInvested),
			num(p.StepUp.TotalFutureValue),
			string(p.Goal),
			num(p.Shortfall),
			num(p.Flat.Gain()),
			num(p.StepUp.Gain()),
			num(p.StepUp.FinalContribution()),
		})
	}

	w.row(summarySheet, 1, stringsToCells(summaryHeader))
	line := 2
	for _, p := range rounded.Plans {
		for _, r := range p.Summary {
			cells := []interface{}{p.Name, r.PeriodLabel.String(), nil, nil, nil, nil, nil, nil}
			if r.Flat != nil {
				cells[2], cells[3], cells[4] = num(r.Flat.CurrentContribution), num(r.Flat.CumulativeInvested), num(r.Flat.FutureValue)
			}
			if r.StepUp != nil {
				cells[5], cells[6], cells[7] = num(r.StepUp.CurrentContribution), num(r.StepUp.CumulativeInvested), num(r.StepUp.FutureValue)
			}
			w.row(summarySheet, line, cells)
			line++
		}
	}

	w.row(allocationsSheet, 1, stringsToCells(allocationHeader))
	line = 2
	for _, p := range rounded.Plans {
		for _, a := range p.Allocations {
			w.row(allocationsSheet, line, []interface{}{
				p.Name, a.Name, a.Category, num(a.WeightPercent), num(a.AllocationAmount),
				num(a.PerInstallmentAmount), a.FrequencyDivisor, a.ContributionFrequency.String(), a.Rationale,
			})
			line++
		}
	}
	if w.err != nil {
		return nil, w.err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// sheetWriter keeps the first error so rows can be written without checks.
type sheetWriter struct {
	file *excelize.File
	err  error
}

func (w *sheetWriter) row(sheet string, row int, cells []interface{}) {
	if w.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		w.err = err
		return
	}
	if err := w.file.SetSheetRow(sheet, cell, &cells); err != nil {
		w.err = fmt.Errorf("%s row %d: %w", sheet, row, err)
	}
}

func stringsToCells(values []string) []interface{} {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}

func num(d decimal.Decimal) float64 { return d.InexactFloat64() }
