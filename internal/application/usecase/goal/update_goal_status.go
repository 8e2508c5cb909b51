package goal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/goal-planner/backend/internal/application/adapter"
	"github.com/goal-planner/backend/internal/domain/entity"
	domainerror "github.com/goal-planner/backend/internal/domain/error"
)

// StatusAction names a lifecycle transition of a goal.
type StatusAction string

const (
	StatusActionComplete   StatusAction = "complete"
	StatusActionPause      StatusAction = "pause"
	StatusActionCancel     StatusAction = "cancel"
	StatusActionReactivate StatusAction = "reactivate"
)

var statusTransitions = map[StatusAction]func(*entity.Goal) *entity.Goal{
	StatusActionComplete:   (*entity.Goal).MarkAsCompleted,
	StatusActionPause:      (*entity.Goal).MarkAsPaused,
	StatusActionCancel:     (*entity.Goal).MarkAsCancelled,
	StatusActionReactivate: (*entity.Goal).Reactivate,
}

// UpdateGoalStatusInput represents the input for a goal status change.
type UpdateGoalStatusInput struct {
	GoalID uuid.UUID
	UserID uuid.UUID
	Action StatusAction
}

// UpdateGoalStatusOutput represents the output of a goal status change.
type UpdateGoalStatusOutput struct {
	Goal           *entity.Goal
	PreviousStatus entity.GoalStatus
}

// UpdateGoalStatusUseCase moves a goal through its lifecycle.
type UpdateGoalStatusUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewUpdateGoalStatusUseCase creates a new UpdateGoalStatusUseCase instance.
func NewUpdateGoalStatusUseCase(goalRepo adapter.GoalRepository) *UpdateGoalStatusUseCase {
	return &UpdateGoalStatusUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the status change.
func (uc *UpdateGoalStatusUseCase) Execute(ctx context.Context, input UpdateGoalStatusInput) (*UpdateGoalStatusOutput, error) {
	transition, ok := statusTransitions[input.Action]
	if !ok {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidStatusTransition,
			"action must be 'complete', 'pause', 'cancel' or 'reactivate'",
			domainerror.ErrInvalidStatusTransition,
		)
	}

	goal, err := findOwnedGoal(ctx, uc.goalRepo, input.GoalID, input.UserID)
	if err != nil {
		return nil, err
	}

	updated := transition(goal)

	saved, err := uc.goalRepo.Save(ctx, updated)
	if err != nil {
		return nil, fmt.Errorf("failed to update goal status: %w", err)
	}

	slog.Info("Goal status changed",
		"goalID", saved.ID(),
		"from", goal.Status(),
		"to", saved.Status(),
	)

	return &UpdateGoalStatusOutput{
		Goal:           saved,
		PreviousStatus: goal.Status(),
	}, nil
}
