package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/sipcalc/stepup-calculator/internal/domain"
)

// EvaluateGoal reports GoalAchieved when the projection reaches the target.
func EvaluateGoal(projectedFutureValue, targetValue decimal.Decimal) domain.GoalStatus {
	if projectedFutureValue.GreaterThanOrEqual(targetValue) {
		return domain.GoalAchieved
	}
	return domain.GoalShortfall
}
