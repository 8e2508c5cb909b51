// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/goal-planner/backend/internal/domain/entity"
)

// GoalRepository defines the interface for goal persistence operations.
type GoalRepository interface {
	// Save inserts the goal or replaces the stored version with the same ID.
	Save(ctx context.Context, goal *entity.Goal) (*entity.Goal, error)

	// FindByID retrieves a goal by its ID.
	// Returns domainerror.ErrGoalNotFound when no goal matches.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)

	// FindAll retrieves every goal.
	FindAll(ctx context.Context) ([]*entity.Goal, error)

	// FindByUserID retrieves all goals for a given user.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error)

	// FindByType retrieves all goals of the given type.
	FindByType(ctx context.Context, goalType entity.GoalType) ([]*entity.Goal, error)

	// FindByStatus retrieves all goals in the given status.
	FindByStatus(ctx context.Context, status entity.GoalStatus) ([]*entity.Goal, error)

	// FindActive retrieves all active goals.
	FindActive(ctx context.Context) ([]*entity.Goal, error)

	// FindByDateRange retrieves goals whose period overlaps [start, end].
	FindByDateRange(ctx context.Context, start, end time.Time) ([]*entity.Goal, error)

	// Delete removes a goal (soft delete). Reports whether a goal was removed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	// Count returns the number of goals.
	Count(ctx context.Context) (int64, error)

	// CountByUserID returns the number of goals owned by a user.
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)

	// CountActive returns the number of active goals.
	CountActive(ctx context.Context) (int64, error)
}
