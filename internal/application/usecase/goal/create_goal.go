package goal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/goal-planner/backend/internal/application/adapter"
	"github.com/goal-planner/backend/internal/domain/entity"
	domainerror "github.com/goal-planner/backend/internal/domain/error"
	"github.com/goal-planner/backend/internal/domain/service"
	"github.com/goal-planner/backend/internal/domain/valueobject"
)

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	UserID uuid.UUID
	GoalData
	// Strict rejects goals that fail validation or conflict with the user's active goals.
	Strict bool
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal      *entity.Goal
	Summary   valueobject.ValidationSummary
	Conflicts valueobject.ConflictResult
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo        adapter.GoalRepository
	validator       *service.GoalValidationService
	defaultCurrency string
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(
	goalRepo adapter.GoalRepository,
	validator *service.GoalValidationService,
	defaultCurrency string,
) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo:        goalRepo,
		validator:       validator,
		defaultCurrency: defaultCurrency,
	}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	goal, err := input.GoalData.build(input.UserID, uc.defaultCurrency)
	if err != nil {
		return nil, err
	}

	existing, err := uc.goalRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user goals: %w", err)
	}

	summary := uc.validator.GetValidationSummary(goal)
	conflicts := uc.validator.ValidateGoalConflicts(goal, existing)

	if input.Strict {
		if !summary.IsValid {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFeasible,
				"goal is not financially feasible",
				domainerror.ErrGoalNotFeasible,
			).WithDetails(summary.Errors)
		}
		if conflicts.HasConflicts {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalConflict,
				"goal conflicts with existing goals",
				domainerror.ErrGoalConflict,
			).WithDetails(conflicts.Conflicts)
		}
	}

	saved, err := uc.goalRepo.Save(ctx, goal)
	if err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	slog.Info("Goal created",
		"goalID", saved.ID(),
		"userID", saved.UserID(),
		"feasibilityScore", summary.FeasibilityScore,
		"conflicts", len(conflicts.Conflicts),
	)

	return &CreateGoalOutput{
		Goal:      saved,
		Summary:   summary,
		Conflicts: conflicts,
	}, nil
}
