package calculation

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/sipcalc/stepup-calculator/internal/domain"
)

// RatePrecision is the number of decimal places the periodic rate is
// rounded to right after conversion.
const RatePrecision = 4

var (
	decimalOne      = decimal.NewFromInt(1)
	decimalMinusOne = decimal.NewFromInt(-1)
	decimalHundred  = decimal.NewFromInt(100)
)

// ToPeriodicRate converts an annual growth rate into the effective monthly
// rate (1+annual)^(1/12) - 1, rounded to RatePrecision places. Every
// compounding step downstream uses the rounded value.
func ToPeriodicRate(annualRate decimal.Decimal) (decimal.Decimal, error) {
	if annualRate.LessThan(decimalMinusOne) {
		return decimal.Zero, fmt.Errorf("%w: annual rate cannot be below -100%%, got %s", domain.ErrInvalidInput, annualRate)
	}
	if annualRate.IsZero() {
		return decimal.Zero, nil
	}
	base := decimalOne.Add(annualRate).InexactFloat64()
	monthly := math.Pow(base, 1.0/12) - 1
	if math.IsInf(monthly, 0) || math.IsNaN(monthly) {
		return decimal.Zero, fmt.Errorf("%w: annual rate %s is out of range", domain.ErrInvalidInput, annualRate)
	}
	return decimal.NewFromFloat(monthly).Round(RatePrecision), nil
}
