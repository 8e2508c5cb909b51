package service

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/goal-planner/backend/internal/domain/entity"
	"github.com/goal-planner/backend/internal/domain/valueobject"
)

// Validation thresholds.
const (
	highTargetValue          = 50000
	shortTimelineMonths      = 12
	longTimelineMonths       = 60
	cautionTimelineMonths    = 36
	comfortableBudgetRatio   = 0.8
	maxRequiredBudgetRatio   = 1.5
	scorePenaltyOverBudget   = 30
	scorePenaltyShortfall    = 25
	scorePenaltyTightBudget  = 15
	scorePenaltyBadPriority  = 10
	scoreThresholdRisky      = 70
	scoreComfortable         = 100
	highImportanceMaxPrio    = 2
	lowImportanceMinPriority = 3
)

// GoalValidationService evaluates goals against business rules and reports every
// problem found instead of stopping at the first one.
type GoalValidationService struct{}

// NewGoalValidationService creates a new GoalValidationService instance.
func NewGoalValidationService() *GoalValidationService {
	return &GoalValidationService{}
}

// ValidateGoalFeasibility checks the contribution plan against the budget and the target.
func (s *GoalValidationService) ValidateGoalFeasibility(goal *entity.Goal) valueobject.ValidationResult {
	res := valueobject.NewValidationResult()

	contribution := goal.MonthlyContribution()
	available := goal.AvailablePerMonth()
	if contribution.GreaterThan(available) {
		res.Add(valueobject.SeverityError, fmt.Sprintf(
			"Monthly contribution (%s) exceeds the amount available per month (%s)", contribution, available))
	}

	total := goal.TotalContributionNeeded()
	if total.Amount().LessThan(goal.TargetValue().Amount()) {
		res.Add(valueobject.SeverityError, fmt.Sprintf(
			"Total contributions (%s) are less than the target value (%s)", total, goal.TargetValue()))
	}

	months := durationMonths(goal)
	if goal.TargetValue().Amount().GreaterThan(decimal.NewFromInt(highTargetValue)) && months < shortTimelineMonths {
		res.Add(valueobject.SeverityWarning, fmt.Sprintf(
			"High target value (%s) with a timeline shorter than %d months", goal.TargetValue(), shortTimelineMonths))
	}

	required := requiredPerMonth(goal)
	if required.GreaterThan(available.Amount().Mul(decimal.NewFromFloat(comfortableBudgetRatio))) {
		res.Add(valueobject.SeverityWarning, fmt.Sprintf(
			"Required monthly amount (%s) exceeds 80%% of the amount available per month", required.StringFixed(2)))
	}

	return res
}

// ValidateGoalConflicts checks a new goal against the user's active goals for budget
// overcommitment and overlapping goals of the same type.
func (s *GoalValidationService) ValidateGoalConflicts(newGoal *entity.Goal, existing []*entity.Goal) valueobject.ConflictResult {
	conflicts := []string{}

	active := make([]*entity.Goal, 0, len(existing))
	for _, g := range existing {
		if g == nil || !g.IsActive() || g.Equals(newGoal) {
			continue
		}
		active = append(active, g)
	}

	total := newGoal.MonthlyContribution().Amount()
	for _, g := range active {
		total = total.Add(g.MonthlyContribution().Amount())
	}

	available := newGoal.AvailablePerMonth()
	if total.GreaterThan(available.Amount()) {
		conflicts = append(conflicts, fmt.Sprintf(
			"Total monthly contributions (%s %s) exceed the amount available per month (%s)",
			total.StringFixed(2), available.Currency(), available))
	}

	for _, g := range active {
		if g.Type() != newGoal.Type() {
			continue
		}
		if periodsOverlap(g, newGoal) {
			conflicts = append(conflicts, fmt.Sprintf(
				"Goal %q of the same type (%s) overlaps this goal's period", g.Description(), g.Type()))
		}
	}

	return valueobject.ConflictResult{
		HasConflicts: len(conflicts) > 0,
		Conflicts:    conflicts,
	}
}

// periodsOverlap is an inclusive interval intersection test.
func periodsOverlap(a, b *entity.Goal) bool {
	return !a.StartDate().After(b.EndDate()) && !b.StartDate().After(a.EndDate())
}

// ValidateGoalTimeline checks the goal's date window against its target.
func (s *GoalValidationService) ValidateGoalTimeline(goal *entity.Goal) valueobject.ValidationResult {
	res := valueobject.NewValidationResult()

	if !goal.EndDate().After(goal.StartDate()) {
		res.Add(valueobject.SeverityError, "End date must be after start date")
		return res
	}

	required := requiredPerMonth(goal)
	limit := goal.AvailablePerMonth().Amount().Mul(decimal.NewFromFloat(maxRequiredBudgetRatio))
	if required.GreaterThan(limit) {
		res.Add(valueobject.SeverityError, fmt.Sprintf(
			"Timeline too short: reaching the target requires %s per month, more than 1.5x the amount available",
			required.StringFixed(2)))
	}

	if months := durationMonths(goal); months > longTimelineMonths {
		res.Add(valueobject.SeverityWarning, fmt.Sprintf(
			"Long timeline (%.0f months); consider splitting the goal into smaller milestones", months))
	}

	return res
}

// ValidateGoalPriority checks the priority range and its consistency with importance.
func (s *GoalValidationService) ValidateGoalPriority(goal *entity.Goal) valueobject.ValidationResult {
	res := valueobject.NewValidationResult()

	if !priorityInRange(goal.Priority()) {
		res.Add(valueobject.SeverityError, fmt.Sprintf(
			"Priority must be between %d and %d", entity.MinPriority, entity.MaxPriority))
	}

	switch {
	case goal.Importance() == entity.ImportanceHigh && goal.Priority() > highImportanceMaxPrio:
		res.Add(valueobject.SeverityWarning, "High importance goal has a low priority; consider raising its priority")
	case goal.Importance() == entity.ImportanceLow && goal.Priority() < lowImportanceMinPriority:
		res.Add(valueobject.SeverityWarning, "Low importance goal has a high priority; consider lowering its priority")
	}

	return res
}

// ValidateGoalPriorities checks a set of goals for duplicate priorities and gaps in the sequence.
func (s *GoalValidationService) ValidateGoalPriorities(goals []*entity.Goal) valueobject.ValidationResult {
	res := valueobject.NewValidationResult()

	counts := make(map[int]int, len(goals))
	for _, g := range goals {
		counts[g.Priority()]++
	}

	unique := make([]int, 0, len(counts))
	duplicates := []string{}
	for p, n := range counts {
		unique = append(unique, p)
		if n > 1 {
			duplicates = append(duplicates, strconv.Itoa(p))
		}
	}
	sort.Ints(unique)
	sort.Strings(duplicates)

	if len(duplicates) > 0 {
		res.Add(valueobject.SeverityError, "Duplicate priorities found: "+strings.Join(duplicates, ", "))
	}

	for i, p := range unique {
		if p != i+1 {
			res.Add(valueobject.SeverityWarning, fmt.Sprintf(
				"Priority sequence has gaps; %d distinct priorities should be numbered 1 to %d", len(unique), len(unique)))
			break
		}
	}

	return res
}

// GetValidationSummary runs the single-goal validators and scores the goal from 0 to 100.
func (s *GoalValidationService) GetValidationSummary(goal *entity.Goal) valueobject.ValidationSummary {
	combined := valueobject.NewValidationResult()
	combined.Merge(s.ValidateGoalFeasibility(goal))
	combined.Merge(s.ValidateGoalTimeline(goal))
	combined.Merge(s.ValidateGoalPriority(goal))

	score := s.feasibilityScore(goal)

	recommendations := []string{}
	if combined.IsValid {
		if score < scoreThresholdRisky {
			recommendations = append(recommendations,
				"The plan is risky: increase the monthly contribution or extend the deadline")
		} else if score < scoreComfortable {
			recommendations = append(recommendations,
				"The plan is feasible but tight: review your budget before committing")
		}
		if durationMonths(goal) > cautionTimelineMonths {
			recommendations = append(recommendations,
				"Long-term goal: review progress periodically and adjust contributions")
		}
	}

	return valueobject.ValidationSummary{
		IsValid:          combined.IsValid,
		Errors:           combined.Errors,
		Warnings:         combined.Warnings,
		FeasibilityScore: score,
		Recommendations:  recommendations,
	}
}

func (s *GoalValidationService) feasibilityScore(goal *entity.Goal) int {
	score := 100

	available := goal.AvailablePerMonth()
	if goal.MonthlyContribution().GreaterThan(available) {
		score -= scorePenaltyOverBudget
	}
	if goal.TotalContributionNeeded().Amount().LessThan(goal.TargetValue().Amount()) {
		score -= scorePenaltyShortfall
	}
	if requiredPerMonth(goal).GreaterThan(available.Amount().Mul(decimal.NewFromFloat(comfortableBudgetRatio))) {
		score -= scorePenaltyTightBudget
	}
	if !priorityInRange(goal.Priority()) {
		score -= scorePenaltyBadPriority
	}

	if score < 0 {
		return 0
	}
	return score
}

func priorityInRange(p int) bool {
	return p >= entity.MinPriority && p <= entity.MaxPriority
}
