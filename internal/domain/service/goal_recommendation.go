package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/goal-planner/backend/internal/domain/entity"
	"github.com/goal-planner/backend/internal/domain/valueobject"
)

const (
	retirementAge            = 65
	minRetirementYears       = 20
	retirementMinAge         = 30
	housePurchaseMaxAge      = 40
	investmentHorizonMonths  = 24
	housePurchaseHorizon     = 60
	emergencyMonths          = 3
	emergencyMonthsNoSavings = 6
	maxReasonableMonths      = 120
	incomeMultipleLimit      = 100
	minFeasibleConfidence    = 60
)

// emergencyKeywords identify an existing emergency fund by its description.
var emergencyKeywords = []string{"emergência", "emergencia"}

// monthBounds are the allowed timeline lengths for a recommendation type; 0 means unbounded.
type monthBounds struct {
	min, max int
}

var timelineBounds = map[entity.RecommendationType]monthBounds{
	entity.RecommendationEmergencyFund: {min: 1, max: 12},
	entity.RecommendationRetirement:    {min: 120},
	entity.RecommendationHousePurchase: {min: 36, max: 120},
	entity.RecommendationInvestment:    {min: 24, max: 60},
}

var defaultTimelineBounds = monthBounds{min: 6, max: 24}

// incomeShares are the share of monthly income to set aside per recommendation type and risk level.
var incomeShares = map[entity.RecommendationType]map[entity.RiskTolerance]float64{
	entity.RecommendationEmergencyFund: {
		entity.RiskConservative: 0.15, entity.RiskModerate: 0.15, entity.RiskAggressive: 0.15,
	},
	entity.RecommendationRetirement: {
		entity.RiskConservative: 0.15, entity.RiskModerate: 0.175, entity.RiskAggressive: 0.20,
	},
	entity.RecommendationHousePurchase: {
		entity.RiskConservative: 0.25, entity.RiskModerate: 0.25, entity.RiskAggressive: 0.25,
	},
	entity.RecommendationInvestment: {
		entity.RiskConservative: 0.20, entity.RiskModerate: 0.25, entity.RiskAggressive: 0.30,
	},
}

const defaultIncomeShare = 0.10

// recommendationRule is one heuristic of the recommendation engine: exists reports
// whether the user already has an equivalent goal, applies decides whether the
// profile qualifies and build sizes the candidate.
type recommendationRule struct {
	name    entity.RecommendationType
	exists  func(goals []*entity.Goal) bool
	applies func(profile entity.FinancialProfile) bool
	build   func(s *GoalRecommendationService, profile entity.FinancialProfile) entity.GoalRecommendation
}

// GoalRecommendationService proposes, sizes, schedules and ranks new goals from a financial profile.
type GoalRecommendationService struct {
	rules []recommendationRule
}

// NewGoalRecommendationService creates a new GoalRecommendationService with the default rule set.
func NewGoalRecommendationService() *GoalRecommendationService {
	return &GoalRecommendationService{rules: defaultRules()}
}

func defaultRules() []recommendationRule {
	return []recommendationRule{
		{
			name:    entity.RecommendationEmergencyFund,
			exists:  hasEmergencyFund,
			applies: func(entity.FinancialProfile) bool { return true },
			build: func(s *GoalRecommendationService, p entity.FinancialProfile) entity.GoalRecommendation {
				months := emergencyMonths
				if p.CurrentSavings.IsZero() {
					months = emergencyMonthsNoSavings
				}
				return entity.GoalRecommendation{
					Type:        entity.RecommendationEmergencyFund,
					TargetValue: scale(p.FixedExpenses, decimal.NewFromInt(int64(months))),
					Priority:    1,
					Importance:  entity.ImportanceHigh,
					Description: fmt.Sprintf("Reserva de emergência equivalente a %d meses de despesas fixas", months),
				}
			},
		},
		{
			name:    entity.RecommendationRetirement,
			exists:  hasTaggedGoal(entity.RecommendationRetirement),
			applies: func(p entity.FinancialProfile) bool { return p.Age > retirementMinAge },
			build: func(s *GoalRecommendationService, p entity.FinancialProfile) entity.GoalRecommendation {
				years := retirementAge - p.Age
				if years < minRetirementYears {
					years = minRetirementYears
				}
				monthly := p.MonthlyIncome.Amount().Mul(decimal.NewFromFloat(0.15))
				target := monthly.Mul(decimal.NewFromInt(int64(12 * years)))
				return entity.GoalRecommendation{
					Type:        entity.RecommendationRetirement,
					TargetValue: moneyOf(target.Round(2), p.MonthlyIncome.Currency()),
					Priority:    2,
					Importance:  entity.ImportanceHigh,
					Description: fmt.Sprintf("Plano de aposentadoria com 15%% da renda por %d anos", years),
				}
			},
		},
		{
			name:    entity.RecommendationInvestment,
			exists:  hasTaggedGoal(entity.RecommendationInvestment),
			applies: func(entity.FinancialProfile) bool { return true },
			build: func(s *GoalRecommendationService, p entity.FinancialProfile) entity.GoalRecommendation {
				return entity.GoalRecommendation{
					Type:        entity.RecommendationInvestment,
					TargetValue: s.CalculateOptimalGoalValue(p.MonthlyIncome, investmentHorizonMonths, entity.RecommendationInvestment, p.RiskTolerance),
					Priority:    3,
					Importance:  entity.ImportanceMedium,
					Description: "Carteira de investimentos diversificada",
				}
			},
		},
		{
			name:    entity.RecommendationHousePurchase,
			exists:  hasTaggedGoal(entity.RecommendationHousePurchase),
			applies: func(p entity.FinancialProfile) bool { return p.Age < housePurchaseMaxAge },
			build: func(s *GoalRecommendationService, p entity.FinancialProfile) entity.GoalRecommendation {
				return entity.GoalRecommendation{
					Type:        entity.RecommendationHousePurchase,
					TargetValue: s.CalculateOptimalGoalValue(p.MonthlyIncome, housePurchaseHorizon, entity.RecommendationHousePurchase, p.RiskTolerance),
					Priority:    4,
					Importance:  entity.ImportanceMedium,
					Description: "Entrada para compra da casa própria",
				}
			},
		},
		{
			name:    entity.RecommendationVacation,
			exists:  hasTaggedGoal(entity.RecommendationVacation),
			applies: func(entity.FinancialProfile) bool { return true },
			build: func(s *GoalRecommendationService, p entity.FinancialProfile) entity.GoalRecommendation {
				return entity.GoalRecommendation{
					Type:        entity.RecommendationVacation,
					TargetValue: scale(p.MonthlyIncome, decimal.NewFromFloat(0.5)),
					Priority:    5,
					Importance:  entity.ImportanceLow,
					Description: "Viagem de férias",
				}
			},
		},
	}
}

// hasEmergencyFund detects an emergency fund by its description or its strategy tag.
func hasEmergencyFund(goals []*entity.Goal) bool {
	for _, g := range goals {
		if g.Strategy() == string(entity.RecommendationEmergencyFund) {
			return true
		}
		desc := strings.ToLower(g.Description())
		for _, kw := range emergencyKeywords {
			if strings.Contains(desc, kw) {
				return true
			}
		}
	}
	return false
}

// hasTaggedGoal matches goals whose type or strategy carries the recommendation tag.
// Accepted recommendations are stored with their tag as strategy.
func hasTaggedGoal(tag entity.RecommendationType) func([]*entity.Goal) bool {
	return func(goals []*entity.Goal) bool {
		for _, g := range goals {
			if string(g.Type()) == string(tag) || g.Strategy() == string(tag) {
				return true
			}
		}
		return false
	}
}

// GenerateGoalRecommendations runs the rule list against the profile, skipping rules
// already covered by an existing goal, and returns the candidates in priority order.
func (s *GoalRecommendationService) GenerateGoalRecommendations(profile entity.FinancialProfile, existing []*entity.Goal) []entity.GoalRecommendation {
	if !profile.RiskTolerance.IsValid() {
		profile.RiskTolerance = entity.RiskModerate
	}

	recs := make([]entity.GoalRecommendation, 0, len(s.rules))
	for _, rule := range s.rules {
		if rule.exists(existing) || !rule.applies(profile) {
			continue
		}
		rec := rule.build(s, profile)
		rec.Timeline = s.SuggestGoalTimeline(rec.TargetValue, profile.AvailablePerMonth, rec.Type)
		recs = append(recs, rec)
	}

	available := profile.AvailablePerMonth
	return s.PrioritizeGoals(recs, &available)
}

// SuggestGoalTimeline proposes a number of months and a monthly contribution for a
// target value, keeping the contribution within the available budget.
func (s *GoalRecommendationService) SuggestGoalTimeline(value, available valueobject.Money, recType entity.RecommendationType) entity.Timeline {
	bounds, ok := timelineBounds[recType]
	if !ok {
		bounds = defaultTimelineBounds
	}

	var months int
	if available.IsZero() {
		months = bounds.max
		if months == 0 {
			months = bounds.min
		}
	} else {
		months = int(value.Amount().Div(available.Amount()).Ceil().IntPart())
	}
	if months < bounds.min {
		months = bounds.min
	}
	if bounds.max > 0 && months > bounds.max {
		months = bounds.max
	}
	if months < 1 {
		months = 1
	}

	contribution := value.Amount().Div(decimal.NewFromInt(int64(months))).Ceil()
	if !available.IsZero() && contribution.GreaterThan(available.Amount()) {
		months = int(value.Amount().Div(available.Amount()).Ceil().IntPart())
		contribution = available.Amount()
	}

	return entity.Timeline{
		Months:              months,
		MonthlyContribution: moneyOf(contribution, value.Currency()),
	}
}

// CalculateOptimalGoalValue sizes a goal as a share of monthly income over a number of months.
// An empty risk tolerance is treated as moderate.
func (s *GoalRecommendationService) CalculateOptimalGoalValue(income valueobject.Money, months int, recType entity.RecommendationType, risk entity.RiskTolerance) valueobject.Money {
	if !risk.IsValid() {
		risk = entity.RiskModerate
	}

	share := defaultIncomeShare
	if byRisk, ok := incomeShares[recType]; ok {
		share = byRisk[risk]
	}

	value := income.Amount().Mul(decimal.NewFromFloat(share)).Mul(decimal.NewFromInt(int64(months)))
	return moneyOf(value.Round(2), income.Currency())
}

// PrioritizeGoals returns the recommendations in a stable order: those that fit the
// available budget first (only when a budget is given), then by importance, then by priority.
func (s *GoalRecommendationService) PrioritizeGoals(recs []entity.GoalRecommendation, available *valueobject.Money) []entity.GoalRecommendation {
	sorted := make([]entity.GoalRecommendation, len(recs))
	copy(sorted, recs)

	fits := func(r entity.GoalRecommendation) bool {
		return !r.Timeline.MonthlyContribution.Amount().GreaterThan(available.Amount())
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if available != nil {
			fa, fb := fits(a), fits(b)
			if fa != fb {
				return fa
			}
		}
		if a.Importance.Rank() != b.Importance.Rank() {
			return a.Importance.Rank() > b.Importance.Rank()
		}
		return a.Priority < b.Priority
	})

	return sorted
}

// ValidateRecommendationFeasibility scores how realistic a recommendation is for the profile.
func (s *GoalRecommendationService) ValidateRecommendationFeasibility(rec entity.GoalRecommendation, profile entity.FinancialProfile) valueobject.FeasibilityCheck {
	confidence := 100
	reasons := []string{}

	contribution := rec.Timeline.MonthlyContribution.Amount()
	available := profile.AvailablePerMonth.Amount()

	if contribution.GreaterThan(available) {
		confidence -= 50
		reasons = append(reasons, "Monthly contribution exceeds the available budget")
	}
	if rec.TargetValue.Amount().GreaterThan(profile.MonthlyIncome.Amount().Mul(decimal.NewFromInt(incomeMultipleLimit))) {
		confidence -= 30
		reasons = append(reasons, "Target value is more than 100 times the monthly income")
	}
	if rec.Timeline.Months > maxReasonableMonths {
		confidence -= 20
		reasons = append(reasons, "Timeline is longer than 10 years")
	}
	if contribution.GreaterThan(available.Mul(decimal.NewFromFloat(comfortableBudgetRatio))) {
		confidence -= 10
		reasons = append(reasons, "Monthly contribution uses more than 80% of the available budget")
	}

	if confidence < 0 {
		confidence = 0
	}

	return valueobject.FeasibilityCheck{
		IsFeasible: confidence >= minFeasibleConfidence,
		Confidence: confidence,
		Reasons:    reasons,
	}
}

// scale multiplies a Money by a non-negative decimal factor, rounding to cents.
func scale(m valueobject.Money, factor decimal.Decimal) valueobject.Money {
	return moneyOf(m.Amount().Mul(factor).Round(2), m.Currency())
}
