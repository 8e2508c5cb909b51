// Package service implements the goal planning domain services: progress and
// schedule calculations, validation reports and goal recommendations.
//
// Every service is a pure computation over immutable inputs and is safe for
// concurrent use.
package service

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/goal-planner/backend/internal/domain/entity"
	"github.com/goal-planner/backend/internal/domain/valueobject"
)

// daysPerMonth is the month length used for all schedule arithmetic.
const daysPerMonth = 30

var hundred = decimal.NewFromInt(100)

// GoalCalculationService computes progress, remaining amounts and schedules for goals.
type GoalCalculationService struct {
	now func() time.Time
}

// CalculationOption configures a GoalCalculationService.
type CalculationOption func(*GoalCalculationService)

// WithClock sets the clock used to compute months until a goal's deadline.
func WithClock(now func() time.Time) CalculationOption {
	return func(s *GoalCalculationService) {
		if now != nil {
			s.now = now
		}
	}
}

// NewGoalCalculationService creates a new GoalCalculationService instance.
func NewGoalCalculationService(opts ...CalculationOption) *GoalCalculationService {
	s := &GoalCalculationService{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CalculateProgress returns the rounded completion percentage in [0, 100].
func (s *GoalCalculationService) CalculateProgress(goal *entity.Goal, current valueobject.Money) int {
	if current.IsZero() {
		return 0
	}

	target := goal.TargetValue().Amount()
	if current.Amount().GreaterThanOrEqual(target) {
		return 100
	}

	return int(current.Amount().Div(target).Mul(hundred).Round(0).IntPart())
}

// CalculateRemainingAmount returns max(0, target − current).
func (s *GoalCalculationService) CalculateRemainingAmount(goal *entity.Goal, current valueobject.Money) valueobject.Money {
	return goal.RemainingAmount(current)
}

// CalculateEstimatedCompletionTime returns the number of months needed to reach the
// target at the goal's monthly contribution. It returns +Inf when the contribution is zero.
func (s *GoalCalculationService) CalculateEstimatedCompletionTime(goal *entity.Goal, current valueobject.Money) float64 {
	remaining := goal.RemainingAmount(current)
	if remaining.IsZero() {
		return 0
	}

	contribution := goal.MonthlyContribution()
	if contribution.IsZero() {
		return math.Inf(1)
	}

	return remaining.Amount().Div(contribution.Amount()).Ceil().InexactFloat64()
}

// CalculateOptimalMonthlyContribution spreads the remaining amount evenly over the
// months left until the deadline. Once the deadline is reached the whole remaining
// amount is due at once.
func (s *GoalCalculationService) CalculateOptimalMonthlyContribution(goal *entity.Goal, current valueobject.Money) valueobject.Money {
	remaining := goal.RemainingAmount(current)
	if remaining.IsZero() {
		return remaining
	}

	months := s.MonthsUntilDeadline(goal)
	if months <= 0 {
		return remaining
	}

	perMonth := remaining.Amount().Div(decimal.NewFromInt(int64(months))).Round(2)
	return moneyOf(perMonth, remaining.Currency())
}

// CalculateTotalContributionNeeded returns monthlyContribution × numParcela.
func (s *GoalCalculationService) CalculateTotalContributionNeeded(goal *entity.Goal) valueobject.Money {
	return goal.TotalContributionNeeded()
}

// IsGoalAchievable reports whether the monthly contribution fits the available budget.
func (s *GoalCalculationService) IsGoalAchievable(goal *entity.Goal) bool {
	return !goal.MonthlyContribution().GreaterThan(goal.AvailablePerMonth())
}

// MonthsUntilDeadline returns the whole months (rounded up) between now and the goal's end date.
func (s *GoalCalculationService) MonthsUntilDeadline(goal *entity.Goal) int {
	days := goal.EndDate().Sub(s.now()).Hours() / 24
	if days <= 0 {
		return 0
	}
	return int(math.Ceil(days / daysPerMonth))
}

// AnalyzeGoalFeasibility combines deficits and the schedule into a single report.
func (s *GoalCalculationService) AnalyzeGoalFeasibility(goal *entity.Goal, current valueobject.Money) valueobject.FeasibilityAnalysis {
	monthlyDeficit := floorDiff(goal.MonthlyContribution(), goal.AvailablePerMonth())
	totalDeficit := floorDiff(goal.TargetValue(), goal.TotalContributionNeeded())
	estimated := s.CalculateEstimatedCompletionTime(goal, current)
	monthsLeft := s.MonthsUntilDeadline(goal)

	recommendations := []string{}
	if !monthlyDeficit.IsZero() {
		recommendations = append(recommendations, fmt.Sprintf(
			"Reduce the monthly contribution or free up %s per month in your budget", monthlyDeficit))
	}
	if !totalDeficit.IsZero() {
		recommendations = append(recommendations, fmt.Sprintf(
			"Planned contributions fall short of the target by %s; increase the contribution or the number of installments", totalDeficit))
	}
	lateSchedule := estimated > float64(monthsLeft)
	if lateSchedule {
		if math.IsInf(estimated, 1) {
			recommendations = append(recommendations, "Set a monthly contribution greater than zero to make progress")
		} else {
			recommendations = append(recommendations, fmt.Sprintf(
				"At the current contribution the goal needs %d months but only %d remain; extend the deadline or contribute more",
				int(estimated), monthsLeft))
		}
	}

	isFeasible := monthlyDeficit.IsZero() && totalDeficit.IsZero() && !lateSchedule
	if isFeasible {
		recommendations = append(recommendations, "The goal is on track; keep the current contribution")
	}

	return valueobject.FeasibilityAnalysis{
		IsFeasible:          isFeasible,
		MonthlyDeficit:      monthlyDeficit,
		TotalDeficit:        totalDeficit,
		EstimatedMonths:     estimated,
		MonthsUntilDeadline: monthsLeft,
		Recommendations:     recommendations,
	}
}

// floorDiff returns max(0, a − b) in a's currency.
func floorDiff(a, b valueobject.Money) valueobject.Money {
	diff := a.Amount().Sub(b.Amount())
	if diff.IsNegative() {
		diff = decimal.Zero
	}
	return moneyOf(diff, a.Currency())
}

// moneyOf builds a Money from an amount already known to be non-negative.
func moneyOf(amount decimal.Decimal, currency string) valueobject.Money {
	if currency == "" {
		currency = valueobject.DefaultCurrency
	}
	m, err := valueobject.NewMoneyFromDecimal(amount, currency)
	if err != nil {
		zero, _ := valueobject.Zero(valueobject.DefaultCurrency)
		return zero
	}
	return m
}

// durationMonths returns the goal's window length in 30-day months.
func durationMonths(goal *entity.Goal) float64 {
	return goal.EndDate().Sub(goal.StartDate()).Hours() / 24 / daysPerMonth
}

// requiredPerMonth returns the monthly amount needed to hit the target within the goal's window.
func requiredPerMonth(goal *entity.Goal) decimal.Decimal {
	months := durationMonths(goal)
	if months <= 0 {
		return goal.TargetValue().Amount()
	}
	return goal.TargetValue().Amount().Div(decimal.NewFromFloat(months))
}
