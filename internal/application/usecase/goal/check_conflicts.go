package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/goal-planner/backend/internal/application/adapter"
	"github.com/goal-planner/backend/internal/domain/entity"
	"github.com/goal-planner/backend/internal/domain/service"
	"github.com/goal-planner/backend/internal/domain/valueobject"
)

// CheckGoalConflictsInput represents a candidate goal to be checked before it is created.
type CheckGoalConflictsInput struct {
	UserID uuid.UUID
	GoalData
}

// CheckGoalConflictsOutput represents the conflict report for a candidate goal.
type CheckGoalConflictsOutput struct {
	Candidate *entity.Goal
	Conflicts valueobject.ConflictResult
	// Priorities checks the candidate together with the user's active goals.
	Priorities valueobject.ValidationResult
}

// CheckGoalConflictsUseCase checks a candidate goal against the user's existing goals without saving it.
type CheckGoalConflictsUseCase struct {
	goalRepo        adapter.GoalRepository
	validator       *service.GoalValidationService
	defaultCurrency string
}

// NewCheckGoalConflictsUseCase creates a new CheckGoalConflictsUseCase instance.
func NewCheckGoalConflictsUseCase(
	goalRepo adapter.GoalRepository,
	validator *service.GoalValidationService,
	defaultCurrency string,
) *CheckGoalConflictsUseCase {
	return &CheckGoalConflictsUseCase{
		goalRepo:        goalRepo,
		validator:       validator,
		defaultCurrency: defaultCurrency,
	}
}

// Execute performs the conflict check.
func (uc *CheckGoalConflictsUseCase) Execute(ctx context.Context, input CheckGoalConflictsInput) (*CheckGoalConflictsOutput, error) {
	candidate, err := input.GoalData.build(input.UserID, uc.defaultCurrency)
	if err != nil {
		return nil, err
	}

	existing, err := uc.goalRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user goals: %w", err)
	}

	return &CheckGoalConflictsOutput{
		Candidate:  candidate,
		Conflicts:  uc.validator.ValidateGoalConflicts(candidate, existing),
		Priorities: uc.validator.ValidateGoalPriorities(append(activeGoals(existing), candidate)),
	}, nil
}
