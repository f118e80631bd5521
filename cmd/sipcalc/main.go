package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sipcalc/stepup-calculator/internal/calculation"
	"github.com/sipcalc/stepup-calculator/internal/config"
	"github.com/sipcalc/stepup-calculator/internal/domain"
	"github.com/sipcalc/stepup-calculator/internal/logging"
	"github.com/sipcalc/stepup-calculator/internal/output"
)

var (
	logLevel  string
	logFormat string
	debug     bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "sipcalc",
		Short:        "Step-up SIP projection calculator",
		Long:         "Projects flat and annually stepped-up monthly investment plans, splits contributions across funds and checks them against a target value.",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "console", "log encoding (console or json)")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "log every yearly snapshot")

	root.AddCommand(
		newRunCmd(),
		newQuickCmd(),
		newPresetsCmd(),
		newExampleConfigCmd(),
		newValidateCmd(),
	)
	return root
}

// newEngine builds a calculation engine logging through zap.
func newEngine() (*calculation.CalculationEngine, *zap.SugaredLogger, error) {
	logger, err := logging.New(logging.Config{Level: logLevel, Encoding: logFormat, Development: debug})
	if err != nil {
		return nil, nil, fmt.Errorf("create logger: %w", err)
	}
	engine := calculation.NewCalculationEngine()
	engine.SetLogger(logger)
	engine.Debug = debug
	return engine, logger, nil
}

func newRunCmd() *cobra.Command {
	var (
		configFile string
		format     string
		outputDir  string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run every plan of a configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewInputParser().LoadFromFile(configFile)
			if err != nil {
				return err
			}
			return runAndReport(cmd, cfg, format, outputDir)
		},
	}
	cmd.Flags().StringVarP(&configFile, "config", "c", "config.yaml", "configuration file")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format ("+strings.Join(output.AvailableFormatterNames(), ", ")+" or all)")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", ".", "directory for file outputs")
	return cmd
}

// runAndReport evaluates the configuration and prints or writes the report.
func runAndReport(cmd *cobra.Command, cfg *domain.Configuration, format, outputDir string) error {
	engine, logger, err := newEngine()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	engine.BaseYear = cfg.EffectiveBaseYear()

	results, err := engine.RunPlans(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("run plans: %w", err)
	}

	if output.NormalizeFormatName(format) == "console" {
		data, err := output.ConsoleFormatter{}.Format(results)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	files, err := output.GenerateReport(results, format, outputDir)
	for _, f := range files {
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", f)
	}
	return err
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the built-in plan presets and target values",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, p := range config.AvailablePresets() {
				fmt.Fprintf(out, "%s: %s\n", p.ID, p.Name)
				fmt.Fprintf(out, "  SIP %s/month for %d months at %s, step-up %s, target %s\n",
					output.FormatAmount(p.Parameters.ContributionAmount), p.Parameters.HorizonPeriods,
					output.FormatRate(p.Parameters.AnnualGrowthRate), output.FormatRate(p.Parameters.StepUpRate),
					p.Parameters.TargetValue.StringFixed(0))
				for _, in := range p.Instruments {
					fmt.Fprintf(out, "  - %s (%s) %s%%\n", in.Name, in.Category, in.WeightPercent)
				}
				targets := make([]string, 0)
				for _, t := range config.TargetValueOptions(p.Parameters.TargetValue) {
					targets = append(targets, t.StringFixed(0))
				}
				fmt.Fprintf(out, "  targets: %s\n", strings.Join(targets, ", "))
			}
			return nil
		},
	}
}

func newExampleConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example-config [file]",
		Short: "Write an example configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := "example_config.yaml"
			if len(args) == 1 {
				filename = args[0]
			}
			cfg := config.NewInputParser().CreateExampleConfiguration()
			if err := config.SaveConfiguration(cfg, filename); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "example configuration written to %s\n", filename)
			return nil
		},
	}
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "configuration is valid: %d plan(s)\n", len(cfg.Plans))
			return nil
		},
	}
}
