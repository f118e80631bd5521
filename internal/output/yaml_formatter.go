package output

import (
	"gopkg.in/yaml.v3"

	"github.com/sipcalc/stepup-calculator/internal/domain"
)

// YAMLFormatter serializes the plan comparison as YAML.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string       { return "yaml" }
func (y YAMLFormatter) Extension() string  { return "yaml" }
func (y YAMLFormatter) FilePrefix() string { return reportPrefix }

func (y YAMLFormatter) Format(results *domain.PlanComparison) ([]byte, error) {
	return yaml.Marshal(roundedComparison(results))
}
