package goal

import (
	"context"

	"github.com/google/uuid"

	"github.com/goal-planner/backend/internal/application/adapter"
	"github.com/goal-planner/backend/internal/domain/entity"
	"github.com/goal-planner/backend/internal/domain/service"
	"github.com/goal-planner/backend/internal/domain/valueobject"
)

// GetGoalInput represents the input for getting a goal.
// CurrentAmount is the amount already saved toward the goal, in the goal's currency.
type GetGoalInput struct {
	GoalID        uuid.UUID
	UserID        uuid.UUID
	CurrentAmount float64
}

// GetGoalOutput represents the output of getting a goal.
type GetGoalOutput struct {
	Goal                       *entity.Goal
	Progress                   int
	RemainingAmount            valueobject.Money
	EstimatedMonths            float64
	MonthsUntilDeadline        int
	OptimalMonthlyContribution valueobject.Money
}

// GetGoalUseCase handles getting a goal by ID along with its progress figures.
type GetGoalUseCase struct {
	goalRepo   adapter.GoalRepository
	calculator *service.GoalCalculationService
}

// NewGetGoalUseCase creates a new GetGoalUseCase instance.
func NewGetGoalUseCase(goalRepo adapter.GoalRepository, calculator *service.GoalCalculationService) *GetGoalUseCase {
	return &GetGoalUseCase{
		goalRepo:   goalRepo,
		calculator: calculator,
	}
}

// Execute performs the goal retrieval.
func (uc *GetGoalUseCase) Execute(ctx context.Context, input GetGoalInput) (*GetGoalOutput, error) {
	goal, err := findOwnedGoal(ctx, uc.goalRepo, input.GoalID, input.UserID)
	if err != nil {
		return nil, err
	}

	current, err := currentAmount(goal, input.CurrentAmount)
	if err != nil {
		return nil, err
	}

	return &GetGoalOutput{
		Goal:                       goal,
		Progress:                   uc.calculator.CalculateProgress(goal, current),
		RemainingAmount:            uc.calculator.CalculateRemainingAmount(goal, current),
		EstimatedMonths:            uc.calculator.CalculateEstimatedCompletionTime(goal, current),
		MonthsUntilDeadline:        uc.calculator.MonthsUntilDeadline(goal),
		OptimalMonthlyContribution: uc.calculator.CalculateOptimalMonthlyContribution(goal, current),
	}, nil
}
