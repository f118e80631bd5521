package output

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// FormatAmount formats a monetary value with 2 decimals and no currency symbol.
func FormatAmount(amount decimal.Decimal) string { return amount.StringFixed(2) }

// FormatPercentage formats a decimal that is already a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatRate formats a fractional rate (0.125) as a percentage (12.50%).
func FormatRate(rate decimal.Decimal) string {
	return FormatPercentage(rate.Mul(decimal.NewFromInt(100)))
}

func intToString(i int) string { return strconv.Itoa(i) }
