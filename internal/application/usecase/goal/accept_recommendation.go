package goal

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/goal-planner/backend/internal/domain/entity"
	domainerror "github.com/goal-planner/backend/internal/domain/error"
)

// AcceptRecommendationInput turns a recommendation into a goal.
// The plan starts on StartDate, or on the current date when zero.
type AcceptRecommendationInput struct {
	UserID              uuid.UUID
	Type                entity.RecommendationType
	Description         string
	TargetValue         float64
	Months              int
	MonthlyContribution float64
	Priority            int
	Importance          entity.Importance
	Currency            string
	StartDate           time.Time
	MonthlyIncome       float64
	FixedExpenses       float64
	AvailablePerMonth   float64
}

// AcceptRecommendationUseCase creates a goal from a recommendation, tagging it with
// the recommendation type as strategy so it is not proposed again.
type AcceptRecommendationUseCase struct {
	create *CreateGoalUseCase
	now    func() time.Time
}

// NewAcceptRecommendationUseCase creates a new AcceptRecommendationUseCase instance.
func NewAcceptRecommendationUseCase(create *CreateGoalUseCase, now func() time.Time) *AcceptRecommendationUseCase {
	if now == nil {
		now = time.Now
	}
	return &AcceptRecommendationUseCase{
		create: create,
		now:    now,
	}
}

// Execute creates the goal.
func (uc *AcceptRecommendationUseCase) Execute(ctx context.Context, input AcceptRecommendationInput) (*CreateGoalOutput, error) {
	if input.Months <= 0 {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidInstallments,
			domainerror.ErrInvalidInstallments.Error(),
			domainerror.ErrInvalidInstallments,
		)
	}

	start := input.StartDate
	if start.IsZero() {
		now := uc.now().UTC()
		start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}

	return uc.create.Execute(ctx, CreateGoalInput{
		UserID: input.UserID,
		GoalData: GoalData{
			Description:         input.Description,
			Type:                input.Type.GoalType(),
			TargetValue:         input.TargetValue,
			Currency:            input.Currency,
			StartDate:           start,
			EndDate:             start.AddDate(0, input.Months, 0),
			MonthlyIncome:       input.MonthlyIncome,
			FixedExpenses:       input.FixedExpenses,
			AvailablePerMonth:   input.AvailablePerMonth,
			Importance:          input.Importance,
			Priority:            input.Priority,
			Strategy:            string(input.Type),
			MonthlyContribution: input.MonthlyContribution,
			NumParcela:          input.Months,
		},
	})
}
