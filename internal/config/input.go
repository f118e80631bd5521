package config

import (
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/sipcalc/stepup-calculator/internal/domain"
)

// InputParser handles parsing of plan configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.LoadFromBytes(data)
}

// LoadFromBytes parses, completes and validates a YAML configuration.
func (ip *InputParser) LoadFromBytes(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	for i := range config.Plans {
		if err := ApplyPreset(&config.Plans[i]); err != nil {
			return nil, fmt.Errorf("plan %d: %w", i, err)
		}
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config.BaseYear != 0 && (config.BaseYear < 1900 || config.BaseYear > 3000) {
		return fmt.Errorf("%w: base year must be between 1900 and 3000, got %d", domain.ErrInvalidInput, config.BaseYear)
	}
	if len(config.Plans) == 0 {
		return fmt.Errorf("%w: no plans provided", domain.ErrInvalidInput)
	}

	dupes := lo.FindDuplicates(lo.Map(config.Plans, func(p domain.Plan, _ int) string { return p.Name }))
	if len(dupes) > 0 {
		return fmt.Errorf("%w: duplicate plan names %v", domain.ErrInvalidInput, dupes)
	}

	for i := range config.Plans {
		if err := ip.validatePlan(&config.Plans[i]); err != nil {
			return fmt.Errorf("plan %d validation failed: %w", i, err)
		}
	}
	return nil
}

// validatePlan validates a single plan
func (ip *InputParser) validatePlan(plan *domain.Plan) error {
	if plan.Name == "" {
		return fmt.Errorf("%w: plan name is required", domain.ErrInvalidInput)
	}
	if err := plan.PlanParameters.Validate(); err != nil {
		return err
	}
	for j, in := range plan.Instruments {
		if err := ip.validateInstrument(&in); err != nil {
			return fmt.Errorf("instrument %d (%s): %w", j, in.Name, err)
		}
	}
	return nil
}

// validateInstrument validates a single catalogue entry
func (ip *InputParser) validateInstrument(in *domain.InstrumentAllocation) error {
	if in.Name == "" {
		return fmt.Errorf("%w: instrument name is required", domain.ErrInvalidInput)
	}
	if in.WeightPercent.IsNegative() || in.WeightPercent.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("%w: weight must be between 0 and 100, got %s", domain.ErrInvalidInput, in.WeightPercent)
	}
	if _, err := in.ContributionFrequency.Divisor(); err != nil {
		return err
	}
	return nil
}

// CreateExampleConfiguration creates an example configuration with both presets
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	config := &domain.Configuration{BaseYear: domain.DefaultBaseYear}
	for _, p := range AvailablePresets() {
		config.Plans = append(config.Plans, p.Plan())
	}
	// Show the sub-period frequencies in the example.
	if len(config.Plans) > 0 && len(config.Plans[0].Instruments) > 2 {
		config.Plans[0].Instruments[0].ContributionFrequency = domain.Weekly
		config.Plans[0].Instruments[1].ContributionFrequency = domain.SemiMonthly
	}
	return config
}

// SaveConfiguration writes a configuration as YAML.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
