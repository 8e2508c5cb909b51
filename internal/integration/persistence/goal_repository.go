// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/goal-planner/backend/internal/application/adapter"
	"github.com/goal-planner/backend/internal/domain/entity"
	domainerror "github.com/goal-planner/backend/internal/domain/error"
	"github.com/goal-planner/backend/internal/integration/persistence/model"
)

// goalRepository implements the adapter.GoalRepository interface.
type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new goal repository instance.
func NewGoalRepository(db *gorm.DB) adapter.GoalRepository {
	return &goalRepository{
		db: db,
	}
}

// Save inserts the goal or replaces the stored version with the same ID.
func (r *goalRepository) Save(ctx context.Context, goal *entity.Goal) (*entity.Goal, error) {
	goalModel := model.GoalFromEntity(goal)
	if err := r.db.WithContext(ctx).Save(goalModel).Error; err != nil {
		return nil, err
	}
	return goal, nil
}

// FindByID retrieves a goal by its ID.
func (r *goalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	var goalModel model.GoalModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrGoalNotFound
		}
		return nil, result.Error
	}
	return goalModel.ToEntity()
}

// FindAll retrieves every goal.
func (r *goalRepository) FindAll(ctx context.Context) ([]*entity.Goal, error) {
	return r.find(r.db.WithContext(ctx))
}

// FindByUserID retrieves all goals for a given user.
func (r *goalRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	return r.find(r.db.WithContext(ctx).Where("user_id = ?", userID))
}

// FindByType retrieves all goals of the given type.
func (r *goalRepository) FindByType(ctx context.Context, goalType entity.GoalType) ([]*entity.Goal, error) {
	return r.find(r.db.WithContext(ctx).Where("type = ?", string(goalType)))
}

// FindByStatus retrieves all goals in the given status.
func (r *goalRepository) FindByStatus(ctx context.Context, status entity.GoalStatus) ([]*entity.Goal, error) {
	return r.find(r.db.WithContext(ctx).Where("status = ?", string(status)))
}

// FindActive retrieves all active goals.
func (r *goalRepository) FindActive(ctx context.Context) ([]*entity.Goal, error) {
	return r.FindByStatus(ctx, entity.GoalStatusActive)
}

// FindByDateRange retrieves goals whose period overlaps [start, end].
func (r *goalRepository) FindByDateRange(ctx context.Context, start, end time.Time) ([]*entity.Goal, error) {
	return r.find(r.db.WithContext(ctx).
		Where("start_date <= ? AND end_date >= ?", end.UTC(), start.UTC()))
}

// Delete removes a goal from the database (soft delete).
func (r *goalRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&model.GoalModel{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Count returns the number of goals.
func (r *goalRepository) Count(ctx context.Context) (int64, error) {
	return r.count(r.db.WithContext(ctx))
}

// CountByUserID returns the number of goals owned by a user.
func (r *goalRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	return r.count(r.db.WithContext(ctx).Where("user_id = ?", userID))
}

// CountActive returns the number of active goals.
func (r *goalRepository) CountActive(ctx context.Context) (int64, error) {
	return r.count(r.db.WithContext(ctx).Where("status = ?", string(entity.GoalStatusActive)))
}

// find runs a scoped query ordered by priority then creation date. Rows that fail entity
// validation are skipped and logged so one bad row does not hide the rest.
func (r *goalRepository) find(query *gorm.DB) ([]*entity.Goal, error) {
	var goalModels []model.GoalModel
	result := query.
		Order("priority ASC").
		Order("created_at ASC").
		Find(&goalModels)
	if result.Error != nil {
		return nil, result.Error
	}

	goals := make([]*entity.Goal, 0, len(goalModels))
	for i := range goalModels {
		goal, err := goalModels[i].ToEntity()
		if err != nil {
			slog.Warn("Skipping invalid goal row", "goalID", goalModels[i].ID, "error", err)
			continue
		}
		goals = append(goals, goal)
	}
	return goals, nil
}

func (r *goalRepository) count(query *gorm.DB) (int64, error) {
	var count int64
	if err := query.Model(&model.GoalModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
