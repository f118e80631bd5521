package domain

import (
	"fmt"
	"strings"
)

// ContributionFrequency is the number of installments an instrument's
// allocation is split into within one period.
type ContributionFrequency int

const (
	Monthly     ContributionFrequency = 1
	SemiMonthly ContributionFrequency = 2
	Weekly      ContributionFrequency = 4
)

var frequencyNames = map[ContributionFrequency]string{
	Monthly:     "monthly",
	SemiMonthly: "semi_monthly",
	Weekly:      "weekly",
}

var frequencyAliases = map[string]ContributionFrequency{
	"monthly":      Monthly,
	"semi_monthly": SemiMonthly,
	"semi-monthly": SemiMonthly,
	"semimonthly":  SemiMonthly,
	"15-days":      SemiMonthly,
	"fortnightly":  SemiMonthly,
	"weekly":       Weekly,
}

// ParseContributionFrequency resolves a frequency selector such as "weekly"
// or "15-days".
func ParseContributionFrequency(s string) (ContributionFrequency, error) {
	f, ok := frequencyAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFrequency, s)
	}
	return f, nil
}

// Divisor returns the installments per period, failing for values outside
// the known set.
func (f ContributionFrequency) Divisor() (int, error) {
	if _, ok := frequencyNames[f]; !ok {
		return 0, fmt.Errorf("%w: %d", ErrInvalidFrequency, int(f))
	}
	return int(f), nil
}

func (f ContributionFrequency) String() string {
	if n, ok := frequencyNames[f]; ok {
		return n
	}
	return fmt.Sprintf("frequency(%d)", int(f))
}

// MarshalText implements encoding.TextMarshaler.
func (f ContributionFrequency) MarshalText() ([]byte, error) {
	if _, err := f.Divisor(); err != nil {
		return nil, err
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *ContributionFrequency) UnmarshalText(text []byte) error {
	parsed, err := ParseContributionFrequency(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
