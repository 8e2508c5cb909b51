package entity

import "github.com/goal-planner/backend/internal/domain/valueobject"

// RiskTolerance represents how much investment risk a user accepts.
type RiskTolerance string

const (
	RiskConservative RiskTolerance = "conservador"
	RiskModerate     RiskTolerance = "moderado"
	RiskAggressive   RiskTolerance = "agressivo"
)

// IsValid reports whether the risk tolerance is a known level.
func (r RiskTolerance) IsValid() bool {
	return r == RiskConservative || r == RiskModerate || r == RiskAggressive
}

// RecommendationType tags the kind of goal a recommendation proposes.
type RecommendationType string

const (
	RecommendationEmergencyFund RecommendationType = "emergency_fund"
	RecommendationRetirement    RecommendationType = "retirement"
	RecommendationInvestment    RecommendationType = "investment"
	RecommendationHousePurchase RecommendationType = "house_purchase"
	RecommendationVacation      RecommendationType = "vacation"
)

// GoalType maps a recommendation onto the goal type used when it is accepted.
func (t RecommendationType) GoalType() GoalType {
	if t == RecommendationHousePurchase || t == RecommendationVacation {
		return GoalTypePurchase
	}
	return GoalTypeEconomy
}

// FinancialProfile is a transient snapshot of a user's finances used to generate recommendations.
type FinancialProfile struct {
	MonthlyIncome     valueobject.Money
	FixedExpenses     valueobject.Money
	AvailablePerMonth valueobject.Money
	CurrentSavings    valueobject.Money
	Age               int
	RiskTolerance     RiskTolerance
}

// Timeline is a contribution plan for a recommended goal.
type Timeline struct {
	Months              int
	MonthlyContribution valueobject.Money
}

// GoalRecommendation is a system-proposed candidate goal.
type GoalRecommendation struct {
	Type        RecommendationType
	TargetValue valueobject.Money
	Priority    int
	Timeline    Timeline
	Importance  Importance
	Description string
}
