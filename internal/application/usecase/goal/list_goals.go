package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/goal-planner/backend/internal/application/adapter"
	"github.com/goal-planner/backend/internal/domain/entity"
	domainerror "github.com/goal-planner/backend/internal/domain/error"
	"github.com/goal-planner/backend/internal/domain/service"
	"github.com/goal-planner/backend/internal/domain/valueobject"
)

// ListGoalsInput represents the input for listing goals.
// Nil filters match every goal.
type ListGoalsInput struct {
	UserID uuid.UUID
	Status *entity.GoalStatus
	Type   *entity.GoalType
}

// ListGoalsOutput represents the output of listing goals.
type ListGoalsOutput struct {
	Goals []*entity.Goal
	// Total is the number of goals the user owns, before filtering.
	Total int64
	// PriorityCheck reports duplicate priorities and gaps among the user's active goals.
	PriorityCheck valueobject.ValidationResult
}

// ListGoalsUseCase handles listing goals logic.
type ListGoalsUseCase struct {
	goalRepo  adapter.GoalRepository
	validator *service.GoalValidationService
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(goalRepo adapter.GoalRepository, validator *service.GoalValidationService) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		goalRepo:  goalRepo,
		validator: validator,
	}
}

// Execute performs the goal listing.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
	if input.Status != nil && !input.Status.IsValid() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalStatus,
			"status must be 'active', 'completed', 'paused' or 'cancelled'",
			domainerror.ErrInvalidGoalStatus,
		)
	}
	if input.Type != nil && !input.Type.IsValid() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalType,
			domainerror.ErrInvalidGoalType.Error(),
			domainerror.ErrInvalidGoalType,
		)
	}

	goals, err := uc.goalRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	total, err := uc.goalRepo.CountByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to count goals: %w", err)
	}

	filtered := make([]*entity.Goal, 0, len(goals))
	for _, g := range goals {
		if input.Status != nil && g.Status() != *input.Status {
			continue
		}
		if input.Type != nil && g.Type() != *input.Type {
			continue
		}
		filtered = append(filtered, g)
	}

	return &ListGoalsOutput{
		Goals:         filtered,
		Total:         total,
		PriorityCheck: uc.validator.ValidateGoalPriorities(activeGoals(goals)),
	}, nil
}
