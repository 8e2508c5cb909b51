package dto

import (
	"fmt"
	"time"

	"github.com/goal-planner/backend/internal/application/usecase/goal"
	"github.com/goal-planner/backend/internal/domain/entity"
)

// RecommendGoalsRequest represents the financial profile sent to obtain recommendations.
type RecommendGoalsRequest struct {
	MonthlyIncome     float64 `json:"monthly_income"`
	FixedExpenses     float64 `json:"fixed_expenses"`
	AvailablePerMonth float64 `json:"available_per_month"`
	CurrentSavings    float64 `json:"current_savings"`
	Currency          string  `json:"currency,omitempty"`
	Age               int     `json:"age"`
	RiskTolerance     string  `json:"risk_tolerance"`
}

// ToProfileData converts the request into use case input.
func (r RecommendGoalsRequest) ToProfileData() goal.ProfileData {
	return goal.ProfileData{
		MonthlyIncome:     r.MonthlyIncome,
		FixedExpenses:     r.FixedExpenses,
		AvailablePerMonth: r.AvailablePerMonth,
		CurrentSavings:    r.CurrentSavings,
		Currency:          r.Currency,
		Age:               r.Age,
		RiskTolerance:     entity.RiskTolerance(r.RiskTolerance),
	}
}

// FeasibilityCheckResponse represents the confidence report of a recommendation.
type FeasibilityCheckResponse struct {
	IsFeasible bool     `json:"is_feasible"`
	Confidence int      `json:"confidence"`
	Reasons    []string `json:"reasons"`
}

// RecommendationResponse represents a recommended goal in API responses.
type RecommendationResponse struct {
	Type                string                   `json:"type"`
	Description         string                   `json:"description"`
	TargetValue         MoneyResponse            `json:"target_value"`
	Priority            int                      `json:"priority"`
	Importance          string                   `json:"importance"`
	Months              int                      `json:"months"`
	MonthlyContribution MoneyResponse            `json:"monthly_contribution"`
	Feasibility         FeasibilityCheckResponse `json:"feasibility"`
}

// RecommendGoalsResponse represents the response for goal recommendations.
type RecommendGoalsResponse struct {
	Recommendations []RecommendationResponse `json:"recommendations"`
	Cached          bool                     `json:"cached"`
}

// ToRecommendGoalsResponse converts the recommend output to a RecommendGoalsResponse DTO.
func ToRecommendGoalsResponse(output *goal.RecommendGoalsOutput) RecommendGoalsResponse {
	recs := make([]RecommendationResponse, len(output.Recommendations))
	for i, scored := range output.Recommendations {
		rec := scored.Recommendation
		recs[i] = RecommendationResponse{
			Type:                string(rec.Type),
			Description:         rec.Description,
			TargetValue:         ToMoneyResponse(rec.TargetValue),
			Priority:            rec.Priority,
			Importance:          string(rec.Importance),
			Months:              rec.Timeline.Months,
			MonthlyContribution: ToMoneyResponse(rec.Timeline.MonthlyContribution),
			Feasibility: FeasibilityCheckResponse{
				IsFeasible: scored.Feasibility.IsFeasible,
				Confidence: scored.Feasibility.Confidence,
				Reasons:    nonNil(scored.Feasibility.Reasons),
			},
		}
	}
	return RecommendGoalsResponse{
		Recommendations: recs,
		Cached:          output.Cached,
	}
}

// AcceptRecommendationRequest represents the request body for turning a recommendation into a goal.
type AcceptRecommendationRequest struct {
	Type                string  `json:"type"`
	Description         string  `json:"description"`
	TargetValue         float64 `json:"target_value"`
	Months              int     `json:"months"`
	MonthlyContribution float64 `json:"monthly_contribution"`
	Priority            int     `json:"priority"`
	Importance          string  `json:"importance"`
	Currency            string  `json:"currency,omitempty"`
	StartDate           string  `json:"start_date,omitempty"`
	MonthlyIncome       float64 `json:"monthly_income"`
	FixedExpenses       float64 `json:"fixed_expenses"`
	AvailablePerMonth   float64 `json:"available_per_month"`
}

// ToInput converts the request into use case input. An empty start date is left zero.
func (r AcceptRecommendationRequest) ToInput() (goal.AcceptRecommendationInput, error) {
	var start time.Time
	if r.StartDate != "" {
		parsed, err := time.Parse(DateLayout, r.StartDate)
		if err != nil {
			return goal.AcceptRecommendationInput{}, fmt.Errorf("start_date must be formatted as %s", DateLayout)
		}
		start = parsed
	}

	return goal.AcceptRecommendationInput{
		Type:                entity.RecommendationType(r.Type),
		Description:         r.Description,
		TargetValue:         r.TargetValue,
		Months:              r.Months,
		MonthlyContribution: r.MonthlyContribution,
		Priority:            r.Priority,
		Importance:          entity.Importance(r.Importance),
		Currency:            r.Currency,
		StartDate:           start,
		MonthlyIncome:       r.MonthlyIncome,
		FixedExpenses:       r.FixedExpenses,
		AvailablePerMonth:   r.AvailablePerMonth,
	}, nil
}
