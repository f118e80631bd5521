//go:build unit

package output

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestIntToString(t *testing.T) {
	if got, want := intToString(42), "42"; got != want {
		t.Errorf("intToString(42) = %q, want %q", got, want)
	}
}

func TestFormatRate(t *testing.T) {
	if got, want := FormatRate(decimal.RequireFromString("0.125")), "12.50%"; got != want {
		t.Errorf("FormatRate(0.125) = %q, want %q", got, want)
	}
	if got, want := FormatRate(decimal.RequireFromString("0.0099")), "0.99%"; got != want {
		t.Errorf("FormatRate(0.0099) = %q, want %q", got, want)
	}
}
