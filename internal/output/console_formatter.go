package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/sipcalc/stepup-calculator/internal/domain"
)

// ConsoleFormatter renders a human readable report for the terminal.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string       { return "console" }
func (c ConsoleFormatter) Extension() string  { return "txt" }
func (c ConsoleFormatter) FilePrefix() string { return reportPrefix }

func (c ConsoleFormatter) Format(results *domain.PlanComparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "SIP PLAN SUMMARY")
	fmt.Fprintln(&buf, "================================")
	for i := range results.Plans {
		if i > 0 {
			fmt.Fprintln(&buf)
		}
		if err := writePlan(&buf, &results.Plans[i]); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

func writePlan(buf *bytes.Buffer, plan *domain.PlanReport) error {
	params := plan.Parameters
	fmt.Fprintf(buf, "%s\n", plan.Name)
	fmt.Fprintf(buf, "  SIP Amount (Monthly): %s\n", FormatAmount(params.ContributionAmount))
	fmt.Fprintf(buf, "  Investment Period:    %d months\n", params.HorizonPeriods)
	fmt.Fprintf(buf, "  CAGR:                 %s (monthly rate %s)\n", FormatRate(params.AnnualGrowthRate), FormatRate(plan.PeriodicRate))
	fmt.Fprintf(buf, "  Step-Up:              %s per year\n", FormatRate(params.StepUpRate))
	fmt.Fprintf(buf, "  Target Value:         %s\n", params.TargetValue.StringFixed(0))
	fmt.Fprintln(buf)

	fmt.Fprintf(buf, "  Non-Step-Up Plan: invested %s, future value %s, gain %s\n",
		FormatAmount(plan.Flat.TotalInvested), FormatAmount(plan.Flat.TotalFutureValue), FormatAmount(plan.Flat.Gain()))
	fmt.Fprintf(buf, "  Step-Up Plan:     invested %s, future value %s, gain %s, final SIP %s\n",
		FormatAmount(plan.StepUp.TotalInvested), FormatAmount(plan.StepUp.TotalFutureValue),
		FormatAmount(plan.StepUp.Gain()), FormatAmount(plan.StepUp.FinalContribution()))
	if plan.Goal.Achieved() {
		fmt.Fprintf(buf, "  Target achieved: the step-up plan reaches %s.\n", params.TargetValue.StringFixed(0))
	} else {
		fmt.Fprintf(buf, "  Target not reached: short by %s. Consider increasing the SIP amount or step-up rate.\n",
			FormatAmount(plan.Shortfall))
	}

	if len(plan.Allocations) > 0 {
		fmt.Fprintln(buf)
		tw := tabwriter.NewWriter(buf, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "  Fund\tCategory\tAlloc %\tAmount\tPer Installment\tFrequency")
		for _, a := range plan.Allocations {
			fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\t%s\n", a.Name, a.Category, a.WeightPercent.String(),
				FormatAmount(a.AllocationAmount), FormatAmount(a.PerInstallmentAmount), a.ContributionFrequency)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	fmt.Fprintln(buf)
	tw := tabwriter.NewWriter(buf, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "  Year\tSIP\tInvested\tFuture Value\tStep-Up SIP\tStep-Up Invested\tStep-Up Future Value\t")
	for _, row := range plan.Summary {
		rec := summaryRecord(plan.Name, row)
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\t%s\t%s\t\n", rec[1], rec[2], rec[3], rec[4], rec[5], rec[6], rec[7])
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, w := range plan.Warnings {
		fmt.Fprintf(buf, "  warning: %s\n", w)
	}
	return nil
}
