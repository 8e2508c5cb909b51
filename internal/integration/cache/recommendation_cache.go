// Package cache implements caching adapters backed by Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/goal-planner/backend/internal/application/adapter"
	"github.com/goal-planner/backend/internal/domain/entity"
	"github.com/goal-planner/backend/internal/domain/valueobject"
)

// cachedMoney is the wire form of a Money value.
type cachedMoney struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

type cachedRecommendation struct {
	Type                string      `json:"type"`
	TargetValue         cachedMoney `json:"target_value"`
	Priority            int         `json:"priority"`
	Months              int         `json:"months"`
	MonthlyContribution cachedMoney `json:"monthly_contribution"`
	Importance          string      `json:"importance"`
	Description         string      `json:"description"`
}

// recommendationCache implements adapter.RecommendationCache on Redis.
type recommendationCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRecommendationCache creates a Redis-backed recommendation cache whose entries expire after ttl.
func NewRecommendationCache(client *redis.Client, ttl time.Duration) adapter.RecommendationCache {
	return &recommendationCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the cached recommendations and whether the key was present.
func (c *recommendationCache) Get(ctx context.Context, key string) ([]entity.GoalRecommendation, bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cache: %w", err)
	}

	var cached []cachedRecommendation
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached recommendations: %w", err)
	}

	recs := make([]entity.GoalRecommendation, 0, len(cached))
	for _, cr := range cached {
		rec, err := cr.toRecommendation()
		if err != nil {
			return nil, false, fmt.Errorf("failed to decode cached recommendations: %w", err)
		}
		recs = append(recs, rec)
	}
	return recs, true, nil
}

// Set stores recommendations under key.
func (c *recommendationCache) Set(ctx context.Context, key string, recs []entity.GoalRecommendation) error {
	cached := make([]cachedRecommendation, 0, len(recs))
	for _, rec := range recs {
		cached = append(cached, cachedRecommendation{
			Type:                string(rec.Type),
			TargetValue:         toCachedMoney(rec.TargetValue),
			Priority:            rec.Priority,
			Months:              rec.Timeline.Months,
			MonthlyContribution: toCachedMoney(rec.Timeline.MonthlyContribution),
			Importance:          string(rec.Importance),
			Description:         rec.Description,
		})
	}

	raw, err := json.Marshal(cached)
	if err != nil {
		return fmt.Errorf("failed to encode recommendations: %w", err)
	}

	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cache: %w", err)
	}
	return nil
}

func toCachedMoney(m valueobject.Money) cachedMoney {
	return cachedMoney{Amount: m.Amount(), Currency: m.Currency()}
}

func (m cachedMoney) toMoney() (valueobject.Money, error) {
	return valueobject.NewMoneyFromDecimal(m.Amount, m.Currency)
}

func (cr cachedRecommendation) toRecommendation() (entity.GoalRecommendation, error) {
	target, err := cr.TargetValue.toMoney()
	if err != nil {
		return entity.GoalRecommendation{}, err
	}
	contribution, err := cr.MonthlyContribution.toMoney()
	if err != nil {
		return entity.GoalRecommendation{}, err
	}

	return entity.GoalRecommendation{
		Type:        entity.RecommendationType(cr.Type),
		TargetValue: target,
		Priority:    cr.Priority,
		Timeline: entity.Timeline{
			Months:              cr.Months,
			MonthlyContribution: contribution,
		},
		Importance:  entity.Importance(cr.Importance),
		Description: cr.Description,
	}, nil
}
