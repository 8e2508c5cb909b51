package dto

import (
	"fmt"
	"math"
	"time"

	"github.com/goal-planner/backend/internal/application/usecase/goal"
	"github.com/goal-planner/backend/internal/domain/entity"
	"github.com/goal-planner/backend/internal/domain/valueobject"
)

// DateLayout is the date format used in requests and responses.
const DateLayout = "2006-01-02"

// GoalRequest represents the fields of a goal in request bodies.
type GoalRequest struct {
	Description         string  `json:"description"`
	Type                string  `json:"type"`
	TargetValue         float64 `json:"target_value"`
	Currency            string  `json:"currency,omitempty"`
	StartDate           string  `json:"start_date"`
	EndDate             string  `json:"end_date"`
	MonthlyIncome       float64 `json:"monthly_income"`
	FixedExpenses       float64 `json:"fixed_expenses"`
	AvailablePerMonth   float64 `json:"available_per_month"`
	Importance          string  `json:"importance"`
	Priority            int     `json:"priority"`
	Strategy            string  `json:"strategy,omitempty"`
	MonthlyContribution float64 `json:"monthly_contribution"`
	NumParcela          int     `json:"num_parcela"`
}

// ToGoalData converts the request into use case input, parsing the dates.
func (r GoalRequest) ToGoalData() (goal.GoalData, error) {
	start, err := time.Parse(DateLayout, r.StartDate)
	if err != nil {
		return goal.GoalData{}, fmt.Errorf("start_date must be formatted as %s", DateLayout)
	}
	end, err := time.Parse(DateLayout, r.EndDate)
	if err != nil {
		return goal.GoalData{}, fmt.Errorf("end_date must be formatted as %s", DateLayout)
	}

	return goal.GoalData{
		Description:         r.Description,
		Type:                entity.GoalType(r.Type),
		TargetValue:         r.TargetValue,
		Currency:            r.Currency,
		StartDate:           start,
		EndDate:             end,
		MonthlyIncome:       r.MonthlyIncome,
		FixedExpenses:       r.FixedExpenses,
		AvailablePerMonth:   r.AvailablePerMonth,
		Importance:          entity.Importance(r.Importance),
		Priority:            r.Priority,
		Strategy:            r.Strategy,
		MonthlyContribution: r.MonthlyContribution,
		NumParcela:          r.NumParcela,
	}, nil
}

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	GoalRequest
	Strict bool `json:"strict,omitempty"`
}

// ImportGoalsRequest represents the request body for a bulk goal import.
type ImportGoalsRequest struct {
	Goals  []GoalRequest `json:"goals" binding:"required,min=1"`
	Strict bool          `json:"strict,omitempty"`
}

// UpdateGoalRequest represents the request body for goal update.
type UpdateGoalRequest struct {
	Description         *string  `json:"description,omitempty"`
	MonthlyContribution *float64 `json:"monthly_contribution,omitempty"`
	NumParcela          *int     `json:"num_parcela,omitempty"`
}

// UpdateGoalStatusRequest represents the request body for a status change.
type UpdateGoalStatusRequest struct {
	Action string `json:"action" binding:"required,oneof=complete pause cancel reactivate"`
}

// MoneyResponse represents a Money value in API responses.
type MoneyResponse struct {
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Formatted string  `json:"formatted"`
}

// ToMoneyResponse converts a Money value to a MoneyResponse DTO.
func ToMoneyResponse(m valueobject.Money) MoneyResponse {
	return MoneyResponse{
		Amount:    m.Float64(),
		Currency:  m.Currency(),
		Formatted: m.Format(),
	}
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID                      string        `json:"id"`
	UserID                  string        `json:"user_id"`
	Description             string        `json:"description"`
	Type                    string        `json:"type"`
	TargetValue             MoneyResponse `json:"target_value"`
	StartDate               string        `json:"start_date"`
	EndDate                 string        `json:"end_date"`
	MonthlyIncome           MoneyResponse `json:"monthly_income"`
	FixedExpenses           MoneyResponse `json:"fixed_expenses"`
	AvailablePerMonth       MoneyResponse `json:"available_per_month"`
	Importance              string        `json:"importance"`
	Priority                int           `json:"priority"`
	Strategy                *string       `json:"strategy"`
	MonthlyContribution     MoneyResponse `json:"monthly_contribution"`
	NumParcela              int           `json:"num_parcela"`
	TotalContributionNeeded MoneyResponse `json:"total_contribution_needed"`
	Status                  string        `json:"status"`
	CreatedAt               time.Time     `json:"created_at"`
}

// ToGoalResponse converts a domain Goal entity to a GoalResponse DTO.
func ToGoalResponse(g *entity.Goal) GoalResponse {
	var strategy *string
	if s := g.Strategy(); s != "" {
		strategy = &s
	}

	return GoalResponse{
		ID:                      g.ID().String(),
		UserID:                  g.UserID().String(),
		Description:             g.Description(),
		Type:                    string(g.Type()),
		TargetValue:             ToMoneyResponse(g.TargetValue()),
		StartDate:               g.StartDate().Format(DateLayout),
		EndDate:                 g.EndDate().Format(DateLayout),
		MonthlyIncome:           ToMoneyResponse(g.MonthlyIncome()),
		FixedExpenses:           ToMoneyResponse(g.FixedExpenses()),
		AvailablePerMonth:       ToMoneyResponse(g.AvailablePerMonth()),
		Importance:              string(g.Importance()),
		Priority:                g.Priority(),
		Strategy:                strategy,
		MonthlyContribution:     ToMoneyResponse(g.MonthlyContribution()),
		NumParcela:              g.NumParcela(),
		TotalContributionNeeded: ToMoneyResponse(g.TotalContributionNeeded()),
		Status:                  string(g.Status()),
		CreatedAt:               g.CreatedAt(),
	}
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals         []GoalResponse           `json:"goals"`
	Total         int64                    `json:"total"`
	PriorityCheck ValidationResultResponse `json:"priority_check"`
}

// ToGoalListResponse converts the list output to a GoalListResponse DTO.
func ToGoalListResponse(output *goal.ListGoalsOutput) GoalListResponse {
	goals := make([]GoalResponse, len(output.Goals))
	for i, g := range output.Goals {
		goals[i] = ToGoalResponse(g)
	}
	return GoalListResponse{
		Goals:         goals,
		Total:         output.Total,
		PriorityCheck: ToValidationResultResponse(output.PriorityCheck),
	}
}

// GoalProgressResponse represents a goal along with its progress figures.
// EstimatedMonths is null when the goal can never be reached at its current contribution.
type GoalProgressResponse struct {
	Goal                       GoalResponse  `json:"goal"`
	Progress                   int           `json:"progress"`
	RemainingAmount            MoneyResponse `json:"remaining_amount"`
	EstimatedMonths            *float64      `json:"estimated_months"`
	MonthsUntilDeadline        int           `json:"months_until_deadline"`
	OptimalMonthlyContribution MoneyResponse `json:"optimal_monthly_contribution"`
}

// ToGoalProgressResponse converts the get output to a GoalProgressResponse DTO.
func ToGoalProgressResponse(output *goal.GetGoalOutput) GoalProgressResponse {
	return GoalProgressResponse{
		Goal:                       ToGoalResponse(output.Goal),
		Progress:                   output.Progress,
		RemainingAmount:            ToMoneyResponse(output.RemainingAmount),
		EstimatedMonths:            finiteOrNil(output.EstimatedMonths),
		MonthsUntilDeadline:        output.MonthsUntilDeadline,
		OptimalMonthlyContribution: ToMoneyResponse(output.OptimalMonthlyContribution),
	}
}

func finiteOrNil(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}

// ValidationResultResponse represents a list of errors and warnings.
type ValidationResultResponse struct {
	IsValid  bool     `json:"is_valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// ToValidationResultResponse converts a ValidationResult to its DTO.
func ToValidationResultResponse(r valueobject.ValidationResult) ValidationResultResponse {
	return ValidationResultResponse{
		IsValid:  r.IsValid,
		Errors:   nonNil(r.Errors),
		Warnings: nonNil(r.Warnings),
	}
}

// ValidationSummaryResponse represents the aggregate validation of a goal.
type ValidationSummaryResponse struct {
	IsValid          bool     `json:"is_valid"`
	Errors           []string `json:"errors"`
	Warnings         []string `json:"warnings"`
	FeasibilityScore int      `json:"feasibility_score"`
	Recommendations  []string `json:"recommendations"`
}

// ToValidationSummaryResponse converts a ValidationSummary to its DTO.
func ToValidationSummaryResponse(s valueobject.ValidationSummary) ValidationSummaryResponse {
	return ValidationSummaryResponse{
		IsValid:          s.IsValid,
		Errors:           nonNil(s.Errors),
		Warnings:         nonNil(s.Warnings),
		FeasibilityScore: s.FeasibilityScore,
		Recommendations:  nonNil(s.Recommendations),
	}
}

// ConflictResponse represents the conflicts found for a goal.
type ConflictResponse struct {
	HasConflicts bool     `json:"has_conflicts"`
	Conflicts    []string `json:"conflicts"`
}

// ToConflictResponse converts a ConflictResult to its DTO.
func ToConflictResponse(c valueobject.ConflictResult) ConflictResponse {
	return ConflictResponse{
		HasConflicts: c.HasConflicts,
		Conflicts:    nonNil(c.Conflicts),
	}
}

// CreateGoalResponse represents the response for goal creation.
type CreateGoalResponse struct {
	Goal       GoalResponse              `json:"goal"`
	Validation ValidationSummaryResponse `json:"validation"`
	Conflicts  ConflictResponse          `json:"conflicts"`
}

// ToCreateGoalResponse converts the create output to a CreateGoalResponse DTO.
func ToCreateGoalResponse(output *goal.CreateGoalOutput) CreateGoalResponse {
	return CreateGoalResponse{
		Goal:       ToGoalResponse(output.Goal),
		Validation: ToValidationSummaryResponse(output.Summary),
		Conflicts:  ToConflictResponse(output.Conflicts),
	}
}

// FeasibilityAnalysisResponse represents the deficit and schedule analysis of a goal.
type FeasibilityAnalysisResponse struct {
	IsFeasible          bool          `json:"is_feasible"`
	MonthlyDeficit      MoneyResponse `json:"monthly_deficit"`
	TotalDeficit        MoneyResponse `json:"total_deficit"`
	EstimatedMonths     *float64      `json:"estimated_months"`
	MonthsUntilDeadline int           `json:"months_until_deadline"`
	Recommendations     []string      `json:"recommendations"`
}

// GoalValidationResponse represents the full validation report of a goal.
type GoalValidationResponse struct {
	GoalID      string                      `json:"goal_id"`
	Achievable  bool                        `json:"achievable"`
	Summary     ValidationSummaryResponse   `json:"summary"`
	Feasibility FeasibilityAnalysisResponse `json:"feasibility"`
}

// ToGoalValidationResponse converts the validate output to a GoalValidationResponse DTO.
func ToGoalValidationResponse(output *goal.ValidateGoalOutput) GoalValidationResponse {
	f := output.Feasibility
	return GoalValidationResponse{
		GoalID:     output.Goal.ID().String(),
		Achievable: output.Achievable,
		Summary:    ToValidationSummaryResponse(output.Summary),
		Feasibility: FeasibilityAnalysisResponse{
			IsFeasible:          f.IsFeasible,
			MonthlyDeficit:      ToMoneyResponse(f.MonthlyDeficit),
			TotalDeficit:        ToMoneyResponse(f.TotalDeficit),
			EstimatedMonths:     finiteOrNil(f.EstimatedMonths),
			MonthsUntilDeadline: f.MonthsUntilDeadline,
			Recommendations:     nonNil(f.Recommendations),
		},
	}
}

// CheckConflictsResponse represents the conflict check of a candidate goal.
type CheckConflictsResponse struct {
	Conflicts  ConflictResponse         `json:"conflicts"`
	Priorities ValidationResultResponse `json:"priorities"`
}

// ToCheckConflictsResponse converts the check output to a CheckConflictsResponse DTO.
func ToCheckConflictsResponse(output *goal.CheckGoalConflictsOutput) CheckConflictsResponse {
	return CheckConflictsResponse{
		Conflicts:  ToConflictResponse(output.Conflicts),
		Priorities: ToValidationResultResponse(output.Priorities),
	}
}

// ImportItemResponse represents the outcome of one imported goal.
type ImportItemResponse struct {
	Index int            `json:"index"`
	Goal  *GoalResponse  `json:"goal,omitempty"`
	Error *ErrorResponse `json:"error,omitempty"`
}

// ImportGoalsResponse represents the response for a bulk goal import.
type ImportGoalsResponse struct {
	Imported int                  `json:"imported"`
	Failed   int                  `json:"failed"`
	Items    []ImportItemResponse `json:"items"`
}

// StatusChangeResponse represents the response for a goal status change.
type StatusChangeResponse struct {
	Goal           GoalResponse `json:"goal"`
	PreviousStatus string       `json:"previous_status"`
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
