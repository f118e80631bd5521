package output

import (
	"encoding/json"

	"github.com/sipcalc/stepup-calculator/internal/domain"
)

// JSONFormatter serializes the plan comparison as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string       { return "json" }
func (j JSONFormatter) Extension() string  { return "json" }
func (j JSONFormatter) FilePrefix() string { return reportPrefix }

func (j JSONFormatter) Format(results *domain.PlanComparison) ([]byte, error) {
	return json.MarshalIndent(roundedComparison(results), "", "  ")
}
