package adapter

import (
	"context"

	"github.com/goal-planner/backend/internal/domain/entity"
)

// RecommendationCache stores generated recommendations under a caller-built key.
type RecommendationCache interface {
	// Get returns the cached recommendations and whether the key was present.
	Get(ctx context.Context, key string) ([]entity.GoalRecommendation, bool, error)

	// Set stores recommendations under key.
	Set(ctx context.Context, key string, recs []entity.GoalRecommendation) error
}
