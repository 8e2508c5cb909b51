package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/goal-planner/backend/internal/application/adapter"
	"github.com/goal-planner/backend/internal/domain/entity"
	domainerror "github.com/goal-planner/backend/internal/domain/error"
	"github.com/goal-planner/backend/internal/domain/valueobject"
)

// UpdateGoalInput represents the input for goal update.
type UpdateGoalInput struct {
	GoalID              uuid.UUID
	UserID              uuid.UUID
	Description         *string  // Optional
	MonthlyContribution *float64 // Optional
	NumParcela          *int     // Optional, defaults to the current value
}

// UpdateGoalOutput represents the output of goal update.
type UpdateGoalOutput struct {
	Goal *entity.Goal
}

// UpdateGoalUseCase handles goal update logic.
// Every change produces a new, re-validated Goal that replaces the stored one.
type UpdateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal update.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	goal, err := findOwnedGoal(ctx, uc.goalRepo, input.GoalID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Description != nil {
		goal, err = goal.WithDescription(*input.Description)
		if err != nil {
			return nil, domainerror.WrapGoalConstructionError(err)
		}
	}

	if input.MonthlyContribution != nil || input.NumParcela != nil {
		contribution := goal.MonthlyContribution()
		if input.MonthlyContribution != nil {
			contribution, err = valueobject.NewMoney(*input.MonthlyContribution, contribution.Currency())
			if err != nil {
				return nil, domainerror.WrapGoalConstructionError(err)
			}
		}

		numParcela := goal.NumParcela()
		if input.NumParcela != nil {
			numParcela = *input.NumParcela
		}

		goal, err = goal.WithMonthlyContribution(contribution, numParcela)
		if err != nil {
			return nil, domainerror.WrapGoalConstructionError(err)
		}
	}

	saved, err := uc.goalRepo.Save(ctx, goal)
	if err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return &UpdateGoalOutput{
		Goal: saved,
	}, nil
}
