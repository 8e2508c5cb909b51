package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/goal-planner/backend/internal/domain/entity"
	"github.com/goal-planner/backend/internal/domain/valueobject"
)

func brl(amount float64) valueobject.Money {
	return valueobject.MustMoney(amount, "BRL")
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// baseGoalParams is the reference scenario: a 100k goal over 2024–2025 funded with 1500/month.
func baseGoalParams() entity.GoalParams {
	return entity.GoalParams{
		UserID:              uuid.New(),
		Description:         "Comprar apartamento",
		Type:                entity.GoalTypePurchase,
		TargetValue:         brl(100000),
		StartDate:           date(2024, time.January, 1),
		EndDate:             date(2025, time.December, 31),
		MonthlyIncome:       brl(8000),
		FixedExpenses:       brl(6000),
		AvailablePerMonth:   brl(2000),
		Importance:          entity.ImportanceHigh,
		Priority:            1,
		MonthlyContribution: brl(1500),
		NumParcela:          24,
	}
}

func newGoal(t *testing.T, mutate func(p *entity.GoalParams)) *entity.Goal {
	t.Helper()

	p := baseGoalParams()
	if mutate != nil {
		mutate(&p)
	}
	g, err := entity.NewGoal(p)
	require.NoError(t, err)
	return g
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
