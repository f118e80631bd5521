package dateutil

// PeriodsPerYear is the number of monthly periods in one plan year.
const PeriodsPerYear = 12

// YearsElapsed returns the number of whole plan years completed before the
// given 1-based period starts.
func YearsElapsed(period int) int {
	if period < 1 {
		return 0
	}
	return (period - 1) / PeriodsPerYear
}

// FiscalYearForPeriod returns the fiscal year a 1-based period falls in,
// counting from baseYear for periods 1-12.
func FiscalYearForPeriod(baseYear, period int) int {
	return baseYear + YearsElapsed(period)
}

// IsBlockStart reports whether the period opens a new 12-period block after
// the first one (13, 25, 37, ...).
func IsBlockStart(period int) bool {
	return period > 1 && (period-1)%PeriodsPerYear == 0
}

// IsSnapshotPeriod reports whether a snapshot is taken at period: every year
// boundary plus the final period of the horizon.
func IsSnapshotPeriod(period, horizon int) bool {
	return period%PeriodsPerYear == 0 || period == horizon
}

// BlockCount returns the number of (possibly partial) 12-period blocks in a
// horizon.
func BlockCount(horizon int) int {
	if horizon < 1 {
		return 0
	}
	return (horizon + PeriodsPerYear - 1) / PeriodsPerYear
}

// YearsAndMonths splits a horizon into whole years and remaining months.
func YearsAndMonths(horizon int) (years, months int) {
	if horizon < 0 {
		return 0, 0
	}
	return horizon / PeriodsPerYear, horizon % PeriodsPerYear
}
