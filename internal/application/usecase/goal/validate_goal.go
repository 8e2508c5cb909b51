package goal

import (
	"context"

	"github.com/google/uuid"

	"github.com/goal-planner/backend/internal/application/adapter"
	"github.com/goal-planner/backend/internal/domain/entity"
	"github.com/goal-planner/backend/internal/domain/service"
	"github.com/goal-planner/backend/internal/domain/valueobject"
)

// ValidateGoalInput represents the input for validating a stored goal.
type ValidateGoalInput struct {
	GoalID        uuid.UUID
	UserID        uuid.UUID
	CurrentAmount float64
}

// ValidateGoalOutput represents the validation report of a goal.
type ValidateGoalOutput struct {
	Goal        *entity.Goal
	Summary     valueobject.ValidationSummary
	Feasibility valueobject.FeasibilityAnalysis
	Achievable  bool
}

// ValidateGoalUseCase produces the full validation and feasibility report for a goal.
type ValidateGoalUseCase struct {
	goalRepo   adapter.GoalRepository
	validator  *service.GoalValidationService
	calculator *service.GoalCalculationService
}

// NewValidateGoalUseCase creates a new ValidateGoalUseCase instance.
func NewValidateGoalUseCase(
	goalRepo adapter.GoalRepository,
	validator *service.GoalValidationService,
	calculator *service.GoalCalculationService,
) *ValidateGoalUseCase {
	return &ValidateGoalUseCase{
		goalRepo:   goalRepo,
		validator:  validator,
		calculator: calculator,
	}
}

// Execute performs the validation.
func (uc *ValidateGoalUseCase) Execute(ctx context.Context, input ValidateGoalInput) (*ValidateGoalOutput, error) {
	goal, err := findOwnedGoal(ctx, uc.goalRepo, input.GoalID, input.UserID)
	if err != nil {
		return nil, err
	}

	current, err := currentAmount(goal, input.CurrentAmount)
	if err != nil {
		return nil, err
	}

	return &ValidateGoalOutput{
		Goal:        goal,
		Summary:     uc.validator.GetValidationSummary(goal),
		Feasibility: uc.calculator.AnalyzeGoalFeasibility(goal, current),
		Achievable:  uc.calculator.IsGoalAchievable(goal),
	}, nil
}
