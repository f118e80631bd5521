package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/sipcalc/stepup-calculator/internal/config"
	"github.com/sipcalc/stepup-calculator/internal/domain"
)

// quickFlags maps plan keys to the flags that set them.
var quickFlags = map[string]string{
	"contribution_amount": "amount",
	"horizon_periods":     "months",
	"annual_growth_rate":  "cagr",
	"step_up_rate":        "step-up",
	"target_value":        "target",
}

func newQuickCmd() *cobra.Command {
	var (
		preset    string
		name      string
		amount    string
		months    int
		cagr      string
		stepUp    string
		target    string
		format    string
		outputDir string
		baseYear  int
	)
	cmd := &cobra.Command{
		Use:   "quick",
		Short: "Evaluate a single plan from flags",
		Example: "  sipcalc quick --preset short_term --amount 30000\n" +
			"  sipcalc quick --amount 10000 --months 120 --cagr 0.12 --step-up 0.1 --target 5000000",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := domain.ParsePresetID(preset)
			if err != nil {
				return err
			}
			plan := domain.Plan{Name: name, Preset: id}
			decimals := map[string]struct {
				raw string
				dst *decimal.Decimal
			}{
				"amount":  {amount, &plan.ContributionAmount},
				"cagr":    {cagr, &plan.AnnualGrowthRate},
				"step-up": {stepUp, &plan.StepUpRate},
				"target":  {target, &plan.TargetValue},
			}
			for flag, v := range decimals {
				if !cmd.Flags().Changed(flag) {
					continue
				}
				if *v.dst, err = decimal.NewFromString(v.raw); err != nil {
					return fmt.Errorf("--%s: %w", flag, err)
				}
			}
			if cmd.Flags().Changed("months") {
				plan.HorizonPeriods = months
			}
			for key, flag := range quickFlags {
				if cmd.Flags().Changed(flag) {
					plan.MarkExplicit(key)
				}
			}
			if plan.Preset == domain.PresetNone && !cmd.Flags().Changed("step-up") {
				plan.StepUpRate = config.DefaultStepUpRate
			}
			if plan.Name == "" && plan.Preset == domain.PresetNone {
				plan.Name = "Quick plan"
			}

			if err := config.ApplyPreset(&plan); err != nil {
				return err
			}
			cfg := &domain.Configuration{BaseYear: baseYear, Plans: []domain.Plan{plan}}
			if err := config.NewInputParser().ValidateConfiguration(cfg); err != nil {
				return err
			}
			return runAndReport(cmd, cfg, format, outputDir)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&preset, "preset", "p", "", "preset supplying defaults (short_term or long_term)")
	f.StringVar(&name, "name", "", "plan name")
	f.StringVar(&amount, "amount", "", "monthly SIP amount")
	f.IntVar(&months, "months", 0, "investment period in months")
	f.StringVar(&cagr, "cagr", "", "expected annual return as a fraction (0.125 = 12.5%)")
	f.StringVar(&stepUp, "step-up", "", "annual step-up as a fraction (0.1 = 10%)")
	f.StringVar(&target, "target", "", "target value")
	f.StringVarP(&format, "format", "f", "console", "output format")
	f.StringVarP(&outputDir, "output-dir", "o", ".", "directory for file outputs")
	f.IntVar(&baseYear, "base-year", domain.DefaultBaseYear, "fiscal year of the first period")
	return cmd
}
