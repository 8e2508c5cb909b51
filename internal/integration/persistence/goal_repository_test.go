package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/goal-planner/backend/internal/domain/entity"
	domainerror "github.com/goal-planner/backend/internal/domain/error"
	"github.com/goal-planner/backend/internal/domain/valueobject"
	"github.com/goal-planner/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every connection to :memory: opens a fresh database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&model.GoalModel{}))
	return db
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func testGoal(t *testing.T, userID uuid.UUID, mutate func(p *entity.GoalParams)) *entity.Goal {
	t.Helper()

	brl := func(v float64) valueobject.Money { return valueobject.MustMoney(v, "BRL") }
	p := entity.GoalParams{
		UserID:              userID,
		Description:         "Comprar apartamento",
		Type:                entity.GoalTypePurchase,
		TargetValue:         brl(100000),
		StartDate:           day(2024, time.January, 1),
		EndDate:             day(2025, time.December, 31),
		MonthlyIncome:       brl(8000),
		FixedExpenses:       brl(6000),
		AvailablePerMonth:   brl(2000),
		Importance:          entity.ImportanceHigh,
		Priority:            1,
		MonthlyContribution: brl(1500.50),
		NumParcela:          24,
	}
	if mutate != nil {
		mutate(&p)
	}

	goal, err := entity.NewGoal(p)
	require.NoError(t, err)
	return goal
}

func TestGoalRepository_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewGoalRepository(newTestDB(t))
	userID := uuid.New()

	goal := testGoal(t, userID, func(p *entity.GoalParams) { p.Strategy = "house_purchase" })
	_, err := repo.Save(ctx, goal)
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, goal.ID())
	require.NoError(t, err)

	assert.True(t, found.Equals(goal))
	assert.Equal(t, userID, found.UserID())
	assert.Equal(t, "Comprar apartamento", found.Description())
	assert.Equal(t, entity.GoalTypePurchase, found.Type())
	assert.True(t, found.TargetValue().Equals(goal.TargetValue()))
	assert.Equal(t, "1500.50", found.MonthlyContribution().Amount().StringFixed(2))
	assert.Equal(t, "BRL", found.AvailablePerMonth().Currency())
	assert.Equal(t, entity.ImportanceHigh, found.Importance())
	assert.Equal(t, "house_purchase", found.Strategy())
	assert.Equal(t, 24, found.NumParcela())
	assert.Equal(t, entity.GoalStatusActive, found.Status())
	assert.True(t, found.StartDate().Equal(goal.StartDate()))
	assert.True(t, found.EndDate().Equal(goal.EndDate()))
}

func TestGoalRepository_SaveReplacesExisting(t *testing.T) {
	ctx := context.Background()
	repo := NewGoalRepository(newTestDB(t))

	goal := testGoal(t, uuid.New(), nil)
	_, err := repo.Save(ctx, goal)
	require.NoError(t, err)

	_, err = repo.Save(ctx, goal.MarkAsPaused())
	require.NoError(t, err)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	found, err := repo.FindByID(ctx, goal.ID())
	require.NoError(t, err)
	assert.Equal(t, entity.GoalStatusPaused, found.Status())
	assert.Empty(t, found.Strategy())
}

func TestGoalRepository_FindByIDNotFound(t *testing.T) {
	repo := NewGoalRepository(newTestDB(t))

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerror.ErrGoalNotFound)
}

func TestGoalRepository_Queries(t *testing.T) {
	ctx := context.Background()
	repo := NewGoalRepository(newTestDB(t))
	alice, bob := uuid.New(), uuid.New()

	house := testGoal(t, alice, func(p *entity.GoalParams) { p.Priority = 2 })
	trip := testGoal(t, alice, func(p *entity.GoalParams) {
		p.Description = "Viagem"
		p.Type = entity.GoalTypeEconomy
		p.Priority = 1
		p.StartDate = day(2026, time.January, 1)
		p.EndDate = day(2026, time.June, 30)
	})
	car := testGoal(t, bob, func(p *entity.GoalParams) {
		p.Description = "Carro"
		p.Status = entity.GoalStatusCompleted
	})
	for _, g := range []*entity.Goal{house, trip, car} {
		_, err := repo.Save(ctx, g)
		require.NoError(t, err)
	}

	descriptions := func(goals []*entity.Goal) []string {
		out := make([]string, len(goals))
		for i, g := range goals {
			out[i] = g.Description()
		}
		return out
	}

	t.Run("FindAll", func(t *testing.T) {
		goals, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, goals, 3)
	})

	t.Run("FindByUserID orders by priority", func(t *testing.T) {
		goals, err := repo.FindByUserID(ctx, alice)
		require.NoError(t, err)
		assert.Equal(t, []string{"Viagem", "Comprar apartamento"}, descriptions(goals))
	})

	t.Run("FindByType", func(t *testing.T) {
		goals, err := repo.FindByType(ctx, entity.GoalTypeEconomy)
		require.NoError(t, err)
		assert.Equal(t, []string{"Viagem"}, descriptions(goals))
	})

	t.Run("FindByStatus", func(t *testing.T) {
		goals, err := repo.FindByStatus(ctx, entity.GoalStatusCompleted)
		require.NoError(t, err)
		assert.Equal(t, []string{"Carro"}, descriptions(goals))
	})

	t.Run("FindActive", func(t *testing.T) {
		goals, err := repo.FindActive(ctx)
		require.NoError(t, err)
		assert.Len(t, goals, 2)
	})

	t.Run("FindByDateRange matches overlapping periods", func(t *testing.T) {
		goals, err := repo.FindByDateRange(ctx, day(2026, time.March, 1), day(2026, time.April, 1))
		require.NoError(t, err)
		assert.Equal(t, []string{"Viagem"}, descriptions(goals))

		goals, err = repo.FindByDateRange(ctx, day(2025, time.December, 1), day(2026, time.January, 1))
		require.NoError(t, err)
		assert.Len(t, goals, 3)
	})

	t.Run("counts", func(t *testing.T) {
		total, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)

		byUser, err := repo.CountByUserID(ctx, alice)
		require.NoError(t, err)
		assert.Equal(t, int64(2), byUser)

		active, err := repo.CountActive(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), active)
	})
}

func TestGoalRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewGoalRepository(newTestDB(t))

	goal := testGoal(t, uuid.New(), nil)
	_, err := repo.Save(ctx, goal)
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, goal.ID())
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = repo.FindByID(ctx, goal.ID())
	assert.ErrorIs(t, err, domainerror.ErrGoalNotFound)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	deleted, err = repo.Delete(ctx, goal.ID())
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestGoalModel_ToEntityRejectsCorruptRows(t *testing.T) {
	goal := testGoal(t, uuid.New(), nil)
	row := model.GoalFromEntity(goal)
	row.Priority = 9

	_, err := row.ToEntity()
	assert.ErrorIs(t, err, domainerror.ErrInvalidPriority)
}
