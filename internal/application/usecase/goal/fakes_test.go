package goal

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/goal-planner/backend/internal/domain/entity"
	domainerror "github.com/goal-planner/backend/internal/domain/error"
)

var errStorage = errors.New("storage unavailable")

// memoryGoalRepository is an in-memory adapter.GoalRepository.
type memoryGoalRepository struct {
	mu      sync.Mutex
	goals   map[uuid.UUID]*entity.Goal
	failing bool
}

func newMemoryGoalRepository() *memoryGoalRepository {
	return &memoryGoalRepository{goals: map[uuid.UUID]*entity.Goal{}}
}

func (r *memoryGoalRepository) filter(keep func(*entity.Goal) bool) ([]*entity.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failing {
		return nil, errStorage
	}

	out := []*entity.Goal{}
	for _, g := range r.goals {
		if keep(g) {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt().Before(out[j].CreatedAt()) })
	return out, nil
}

func (r *memoryGoalRepository) Save(_ context.Context, goal *entity.Goal) (*entity.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failing {
		return nil, errStorage
	}
	r.goals[goal.ID()] = goal
	return goal, nil
}

func (r *memoryGoalRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failing {
		return nil, errStorage
	}
	g, ok := r.goals[id]
	if !ok {
		return nil, domainerror.ErrGoalNotFound
	}
	return g, nil
}

func (r *memoryGoalRepository) FindAll(context.Context) ([]*entity.Goal, error) {
	return r.filter(func(*entity.Goal) bool { return true })
}

func (r *memoryGoalRepository) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	return r.filter(func(g *entity.Goal) bool { return g.UserID() == userID })
}

func (r *memoryGoalRepository) FindByType(_ context.Context, goalType entity.GoalType) ([]*entity.Goal, error) {
	return r.filter(func(g *entity.Goal) bool { return g.Type() == goalType })
}

func (r *memoryGoalRepository) FindByStatus(_ context.Context, status entity.GoalStatus) ([]*entity.Goal, error) {
	return r.filter(func(g *entity.Goal) bool { return g.Status() == status })
}

func (r *memoryGoalRepository) FindActive(context.Context) ([]*entity.Goal, error) {
	return r.filter((*entity.Goal).IsActive)
}

func (r *memoryGoalRepository) FindByDateRange(_ context.Context, start, end time.Time) ([]*entity.Goal, error) {
	return r.filter(func(g *entity.Goal) bool {
		return !g.StartDate().After(end) && !g.EndDate().Before(start)
	})
}

func (r *memoryGoalRepository) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failing {
		return false, errStorage
	}
	_, ok := r.goals[id]
	delete(r.goals, id)
	return ok, nil
}

func (r *memoryGoalRepository) Count(ctx context.Context) (int64, error) {
	all, err := r.FindAll(ctx)
	return int64(len(all)), err
}

func (r *memoryGoalRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	goals, err := r.FindByUserID(ctx, userID)
	return int64(len(goals)), err
}

func (r *memoryGoalRepository) CountActive(ctx context.Context) (int64, error) {
	goals, err := r.FindActive(ctx)
	return int64(len(goals)), err
}

// memoryRecommendationCache is an in-memory adapter.RecommendationCache that counts hits.
type memoryRecommendationCache struct {
	entries map[string][]entity.GoalRecommendation
	hits    int
	getErr  error
}

func newMemoryRecommendationCache() *memoryRecommendationCache {
	return &memoryRecommendationCache{entries: map[string][]entity.GoalRecommendation{}}
}

func (c *memoryRecommendationCache) Get(_ context.Context, key string) ([]entity.GoalRecommendation, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	recs, ok := c.entries[key]
	if ok {
		c.hits++
	}
	return recs, ok, nil
}

func (c *memoryRecommendationCache) Set(_ context.Context, key string, recs []entity.GoalRecommendation) error {
	c.entries[key] = recs
	return nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// apartmentGoal is a 100k purchase over 2024–2025 funded with 1500/month out of 2000 available.
func apartmentGoal() GoalData {
	return GoalData{
		Description:         "Comprar apartamento",
		Type:                entity.GoalTypePurchase,
		TargetValue:         100000,
		StartDate:           date(2024, time.January, 1),
		EndDate:             date(2025, time.December, 31),
		MonthlyIncome:       8000,
		FixedExpenses:       6000,
		AvailablePerMonth:   2000,
		Importance:          entity.ImportanceHigh,
		Priority:            1,
		MonthlyContribution: 1500,
		NumParcela:          24,
	}
}

// travelGoal fits comfortably in the same budget.
func travelGoal() GoalData {
	return GoalData{
		Description:         "Viagem para o Japão",
		Type:                entity.GoalTypeEconomy,
		TargetValue:         12000,
		StartDate:           date(2024, time.January, 1),
		EndDate:             date(2024, time.December, 31),
		MonthlyIncome:       8000,
		FixedExpenses:       6000,
		AvailablePerMonth:   2000,
		Importance:          entity.ImportanceMedium,
		Priority:            2,
		MonthlyContribution: 1000,
		NumParcela:          12,
	}
}

func requireGoalErrorCode(t *testing.T, err error, code domainerror.GoalErrorCode) *domainerror.GoalError {
	t.Helper()

	var goalErr *domainerror.GoalError
	require.ErrorAs(t, err, &goalErr)
	require.Equal(t, code, goalErr.Code)
	return goalErr
}

func seedGoal(t *testing.T, repo *memoryGoalRepository, userID uuid.UUID, data GoalData) *entity.Goal {
	t.Helper()

	goal, err := data.build(userID, "BRL")
	require.NoError(t, err)
	_, err = repo.Save(context.Background(), goal)
	require.NoError(t, err)
	return goal
}
