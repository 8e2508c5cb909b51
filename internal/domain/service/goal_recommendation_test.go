package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goal-planner/backend/internal/domain/entity"
)

func baseProfile() entity.FinancialProfile {
	return entity.FinancialProfile{
		MonthlyIncome:     brl(10000),
		FixedExpenses:     brl(4000),
		AvailablePerMonth: brl(3000),
		CurrentSavings:    brl(5000),
		Age:               35,
		RiskTolerance:     entity.RiskModerate,
	}
}

func recommendationTypes(recs []entity.GoalRecommendation) []entity.RecommendationType {
	types := make([]entity.RecommendationType, len(recs))
	for i, r := range recs {
		types[i] = r.Type
	}
	return types
}

func findRecommendation(t *testing.T, recs []entity.GoalRecommendation, recType entity.RecommendationType) entity.GoalRecommendation {
	t.Helper()
	for _, r := range recs {
		if r.Type == recType {
			return r
		}
	}
	t.Fatalf("recommendation %s not found", recType)
	return entity.GoalRecommendation{}
}

func TestGenerateGoalRecommendations(t *testing.T) {
	svc := NewGoalRecommendationService()

	recs := svc.GenerateGoalRecommendations(baseProfile(), nil)

	assert.Equal(t, []entity.RecommendationType{
		entity.RecommendationEmergencyFund,
		entity.RecommendationRetirement,
		entity.RecommendationInvestment,
		entity.RecommendationHousePurchase,
		entity.RecommendationVacation,
	}, recommendationTypes(recs))

	emergency := findRecommendation(t, recs, entity.RecommendationEmergencyFund)
	assert.Equal(t, float64(12000), emergency.TargetValue.Float64())
	assert.Equal(t, 1, emergency.Priority)
	assert.Equal(t, entity.ImportanceHigh, emergency.Importance)
	assert.Equal(t, 4, emergency.Timeline.Months)
	assert.Equal(t, float64(3000), emergency.Timeline.MonthlyContribution.Float64())

	retirement := findRecommendation(t, recs, entity.RecommendationRetirement)
	assert.Equal(t, float64(540000), retirement.TargetValue.Float64())
	assert.Equal(t, 180, retirement.Timeline.Months)

	investment := findRecommendation(t, recs, entity.RecommendationInvestment)
	assert.Equal(t, float64(60000), investment.TargetValue.Float64())
	assert.Equal(t, 24, investment.Timeline.Months)
	assert.Equal(t, float64(2500), investment.Timeline.MonthlyContribution.Float64())

	house := findRecommendation(t, recs, entity.RecommendationHousePurchase)
	assert.Equal(t, float64(150000), house.TargetValue.Float64())
	assert.Equal(t, 50, house.Timeline.Months)

	vacation := findRecommendation(t, recs, entity.RecommendationVacation)
	assert.Equal(t, float64(5000), vacation.TargetValue.Float64())
	assert.Equal(t, 6, vacation.Timeline.Months)
	assert.Equal(t, float64(834), vacation.Timeline.MonthlyContribution.Float64())
}

func TestGenerateGoalRecommendations_ProfileRules(t *testing.T) {
	svc := NewGoalRecommendationService()

	t.Run("no savings doubles emergency fund", func(t *testing.T) {
		profile := baseProfile()
		profile.CurrentSavings = brl(0)

		recs := svc.GenerateGoalRecommendations(profile, nil)
		emergency := findRecommendation(t, recs, entity.RecommendationEmergencyFund)
		assert.Equal(t, float64(24000), emergency.TargetValue.Float64())
	})

	t.Run("young user gets no retirement plan", func(t *testing.T) {
		profile := baseProfile()
		profile.Age = 25

		types := recommendationTypes(svc.GenerateGoalRecommendations(profile, nil))
		assert.NotContains(t, types, entity.RecommendationRetirement)
		assert.Contains(t, types, entity.RecommendationHousePurchase)
	})

	t.Run("older user gets minimum retirement horizon and no house", func(t *testing.T) {
		profile := baseProfile()
		profile.Age = 50

		recs := svc.GenerateGoalRecommendations(profile, nil)
		assert.NotContains(t, recommendationTypes(recs), entity.RecommendationHousePurchase)

		retirement := findRecommendation(t, recs, entity.RecommendationRetirement)
		// 15% of 10000 for 20 years
		assert.Equal(t, float64(360000), retirement.TargetValue.Float64())
	})
}

func TestGenerateGoalRecommendations_SkipsExistingGoals(t *testing.T) {
	svc := NewGoalRecommendationService()

	emergency := newGoal(t, func(p *entity.GoalParams) {
		p.Type = entity.GoalTypeEconomy
		p.Description = "Reserva de Emergência"
	})
	vacation := newGoal(t, func(p *entity.GoalParams) {
		p.Description = "Viagem para o Chile"
		p.Strategy = string(entity.RecommendationVacation)
	})

	types := recommendationTypes(svc.GenerateGoalRecommendations(baseProfile(), []*entity.Goal{emergency, vacation}))
	assert.NotContains(t, types, entity.RecommendationEmergencyFund)
	assert.NotContains(t, types, entity.RecommendationVacation)
	assert.Contains(t, types, entity.RecommendationInvestment)

	tagged := newGoal(t, func(p *entity.GoalParams) {
		p.Type = entity.GoalTypeEconomy
		p.Description = "Colchão financeiro"
		p.Strategy = string(entity.RecommendationEmergencyFund)
	})
	types = recommendationTypes(svc.GenerateGoalRecommendations(baseProfile(), []*entity.Goal{tagged}))
	assert.NotContains(t, types, entity.RecommendationEmergencyFund)
}

func TestSuggestGoalTimeline(t *testing.T) {
	svc := NewGoalRecommendationService()

	tests := []struct {
		name             string
		value            float64
		available        float64
		recType          entity.RecommendationType
		wantMonths       int
		wantContribution float64
	}{
		{name: "emergency fund within a year", value: 15000, available: 2000, recType: entity.RecommendationEmergencyFund, wantMonths: 8, wantContribution: 1875},
		{name: "emergency fund capped at 12 months then stretched", value: 60000, available: 2000, recType: entity.RecommendationEmergencyFund, wantMonths: 30, wantContribution: 2000},
		{name: "retirement at least ten years", value: 60000, available: 2000, recType: entity.RecommendationRetirement, wantMonths: 120, wantContribution: 500},
		{name: "house purchase minimum", value: 30000, available: 3000, recType: entity.RecommendationHousePurchase, wantMonths: 36, wantContribution: 834},
		{name: "investment budget cap", value: 100000, available: 1000, recType: entity.RecommendationInvestment, wantMonths: 100, wantContribution: 1000},
		{name: "other types at least six months", value: 1000, available: 2000, recType: entity.RecommendationVacation, wantMonths: 6, wantContribution: 167},
		{name: "other types at most two years", value: 24000, available: 500, recType: "custom", wantMonths: 48, wantContribution: 500},
		{name: "no budget uses bounds", value: 12000, available: 0, recType: entity.RecommendationRetirement, wantMonths: 120, wantContribution: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timeline := svc.SuggestGoalTimeline(brl(tt.value), brl(tt.available), tt.recType)
			assert.Equal(t, tt.wantMonths, timeline.Months)
			assert.Equal(t, tt.wantContribution, timeline.MonthlyContribution.Float64())
		})
	}
}

func TestSuggestGoalTimeline_EmergencyFundWithinAYear(t *testing.T) {
	svc := NewGoalRecommendationService()

	timeline := svc.SuggestGoalTimeline(brl(15000), brl(2000), entity.RecommendationEmergencyFund)
	assert.LessOrEqual(t, timeline.Months, 12)
}

func TestCalculateOptimalGoalValue(t *testing.T) {
	svc := NewGoalRecommendationService()
	income := brl(10000)

	tests := []struct {
		name    string
		months  int
		recType entity.RecommendationType
		risk    entity.RiskTolerance
		want    float64
	}{
		{name: "emergency", months: 12, recType: entity.RecommendationEmergencyFund, risk: entity.RiskModerate, want: 18000},
		{name: "investment conservative", months: 24, recType: entity.RecommendationInvestment, risk: entity.RiskConservative, want: 48000},
		{name: "investment moderate by default", months: 24, recType: entity.RecommendationInvestment, risk: "", want: 60000},
		{name: "investment aggressive", months: 24, recType: entity.RecommendationInvestment, risk: entity.RiskAggressive, want: 72000},
		{name: "retirement conservative", months: 12, recType: entity.RecommendationRetirement, risk: entity.RiskConservative, want: 18000},
		{name: "retirement aggressive", months: 12, recType: entity.RecommendationRetirement, risk: entity.RiskAggressive, want: 24000},
		{name: "house purchase", months: 60, recType: entity.RecommendationHousePurchase, risk: entity.RiskModerate, want: 150000},
		{name: "other types", months: 24, recType: entity.RecommendationVacation, risk: entity.RiskModerate, want: 24000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.CalculateOptimalGoalValue(income, tt.months, tt.recType, tt.risk)
			assert.Equal(t, tt.want, got.Float64())
			assert.Equal(t, "BRL", got.Currency())
		})
	}
}

func TestPrioritizeGoals(t *testing.T) {
	svc := NewGoalRecommendationService()

	rec := func(recType entity.RecommendationType, importance entity.Importance, priority int, contribution float64) entity.GoalRecommendation {
		return entity.GoalRecommendation{
			Type:       recType,
			Importance: importance,
			Priority:   priority,
			Timeline:   entity.Timeline{Months: 12, MonthlyContribution: brl(contribution)},
		}
	}

	input := []entity.GoalRecommendation{
		rec("a", entity.ImportanceLow, 5, 100),
		rec("b", entity.ImportanceHigh, 2, 5000),
		rec("c", entity.ImportanceMedium, 3, 100),
		rec("d", entity.ImportanceHigh, 1, 100),
		rec("e", entity.ImportanceMedium, 3, 200),
	}

	t.Run("without budget", func(t *testing.T) {
		sorted := svc.PrioritizeGoals(input, nil)
		assert.Equal(t, []entity.RecommendationType{"d", "b", "c", "e", "a"}, recommendationTypes(sorted))
	})

	t.Run("with budget", func(t *testing.T) {
		budget := brl(1000)
		sorted := svc.PrioritizeGoals(input, &budget)
		assert.Equal(t, []entity.RecommendationType{"d", "c", "e", "a", "b"}, recommendationTypes(sorted))
	})

	t.Run("input is not modified", func(t *testing.T) {
		_ = svc.PrioritizeGoals(input, nil)
		assert.Equal(t, entity.RecommendationType("a"), input[0].Type)
	})
}

func TestValidateRecommendationFeasibility(t *testing.T) {
	svc := NewGoalRecommendationService()
	profile := baseProfile()

	t.Run("comfortable recommendation", func(t *testing.T) {
		rec := entity.GoalRecommendation{
			TargetValue: brl(12000),
			Timeline:    entity.Timeline{Months: 12, MonthlyContribution: brl(1000)},
		}

		check := svc.ValidateRecommendationFeasibility(rec, profile)
		assert.True(t, check.IsFeasible)
		assert.Equal(t, 100, check.Confidence)
		assert.Empty(t, check.Reasons)
	})

	t.Run("uses most of the budget", func(t *testing.T) {
		rec := entity.GoalRecommendation{
			TargetValue: brl(36000),
			Timeline:    entity.Timeline{Months: 12, MonthlyContribution: brl(3000)},
		}

		check := svc.ValidateRecommendationFeasibility(rec, profile)
		assert.True(t, check.IsFeasible)
		assert.Equal(t, 90, check.Confidence)
		require.Len(t, check.Reasons, 1)
	})

	t.Run("over budget", func(t *testing.T) {
		rec := entity.GoalRecommendation{
			TargetValue: brl(48000),
			Timeline:    entity.Timeline{Months: 12, MonthlyContribution: brl(4000)},
		}

		check := svc.ValidateRecommendationFeasibility(rec, profile)
		assert.False(t, check.IsFeasible)
		assert.Equal(t, 40, check.Confidence)
	})

	t.Run("confidence floors at zero", func(t *testing.T) {
		rec := entity.GoalRecommendation{
			TargetValue: brl(2000000),
			Timeline:    entity.Timeline{Months: 180, MonthlyContribution: brl(4000)},
		}

		check := svc.ValidateRecommendationFeasibility(rec, profile)
		assert.False(t, check.IsFeasible)
		assert.Equal(t, 0, check.Confidence)
		assert.Len(t, check.Reasons, 4)
	})
}
