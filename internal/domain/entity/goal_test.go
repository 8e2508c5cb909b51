package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerror "github.com/goal-planner/backend/internal/domain/error"
	"github.com/goal-planner/backend/internal/domain/valueobject"
)

func brl(amount float64) valueobject.Money {
	return valueobject.MustMoney(amount, "BRL")
}

func validParams() GoalParams {
	return GoalParams{
		UserID:              uuid.New(),
		Description:         "Comprar carro",
		Type:                GoalTypePurchase,
		TargetValue:         brl(100000),
		StartDate:           time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:             time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		MonthlyIncome:       brl(8000),
		FixedExpenses:       brl(6000),
		AvailablePerMonth:   brl(2000),
		Importance:          ImportanceHigh,
		Priority:            1,
		MonthlyContribution: brl(1500),
		NumParcela:          24,
	}
}

func TestNewGoal_Defaults(t *testing.T) {
	g, err := NewGoal(validParams())
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, g.ID())
	assert.Equal(t, GoalStatusActive, g.Status())
	assert.False(t, g.CreatedAt().IsZero())
	assert.True(t, g.IsPurchase())
	assert.False(t, g.IsEconomy())
	assert.True(t, g.IsActive())
}

func TestNewGoal_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *GoalParams)
		wantErr error
	}{
		{
			name:    "empty description",
			mutate:  func(p *GoalParams) { p.Description = "   " },
			wantErr: domainerror.ErrEmptyDescription,
		},
		{
			name:    "invalid type",
			mutate:  func(p *GoalParams) { p.Type = "investimento" },
			wantErr: domainerror.ErrInvalidGoalType,
		},
		{
			name:    "priority too low",
			mutate:  func(p *GoalParams) { p.Priority = 0 },
			wantErr: domainerror.ErrInvalidPriority,
		},
		{
			name:    "priority too high",
			mutate:  func(p *GoalParams) { p.Priority = 6 },
			wantErr: domainerror.ErrInvalidPriority,
		},
		{
			name:    "end date equal to start date",
			mutate:  func(p *GoalParams) { p.EndDate = p.StartDate },
			wantErr: domainerror.ErrInvalidDateRange,
		},
		{
			name:    "end date before start date",
			mutate:  func(p *GoalParams) { p.EndDate = p.StartDate.AddDate(0, -1, 0) },
			wantErr: domainerror.ErrInvalidDateRange,
		},
		{
			name:    "invalid importance",
			mutate:  func(p *GoalParams) { p.Importance = "urgente" },
			wantErr: domainerror.ErrInvalidImportance,
		},
		{
			name:    "zero installments",
			mutate:  func(p *GoalParams) { p.NumParcela = 0 },
			wantErr: domainerror.ErrInvalidInstallments,
		},
		{
			name:    "unknown status",
			mutate:  func(p *GoalParams) { p.Status = "archived" },
			wantErr: domainerror.ErrInvalidGoalStatus,
		},
		{
			name:    "contribution in another currency",
			mutate:  func(p *GoalParams) { p.MonthlyContribution = valueobject.MustMoney(5000, "USD") },
			wantErr: domainerror.ErrCurrencyMismatch,
		},
		{
			name:    "available budget in another currency",
			mutate:  func(p *GoalParams) { p.AvailablePerMonth = valueobject.MustMoney(1000, "USD") },
			wantErr: domainerror.ErrCurrencyMismatch,
		},
		{
			name:    "description checked before date range",
			mutate:  func(p *GoalParams) { p.Description = ""; p.EndDate = p.StartDate },
			wantErr: domainerror.ErrEmptyDescription,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validParams()
			tt.mutate(&p)

			g, err := NewGoal(p)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewGoal_MixedCurrencyIsInvalidMoney(t *testing.T) {
	p := validParams()
	p.MonthlyContribution = valueobject.MustMoney(5000, "USD")

	_, err := NewGoal(p)
	require.Error(t, err)
	assert.Equal(t, domainerror.ErrCodeInvalidMoney, domainerror.WrapGoalConstructionError(err).Code)
}

func TestNewGoal_DateRangeMessage(t *testing.T) {
	p := validParams()
	p.EndDate = p.StartDate.Add(-time.Hour)

	_, err := NewGoal(p)
	require.Error(t, err)
	assert.Equal(t, "End date must be after start date", err.Error())
}

func TestGoal_DerivedValues(t *testing.T) {
	g, err := NewGoal(validParams())
	require.NoError(t, err)

	assert.Equal(t, float64(36000), g.TotalContributionNeeded().Float64())

	assert.Equal(t, float64(0), g.ProgressPercentage(brl(0)))
	assert.Equal(t, float64(25), g.ProgressPercentage(brl(25000)))
	assert.Equal(t, float64(100), g.ProgressPercentage(brl(150000)))

	assert.Equal(t, float64(75000), g.RemainingAmount(brl(25000)).Float64())
	assert.True(t, g.RemainingAmount(brl(200000)).IsZero())
}

func TestGoal_ProgressWithZeroTarget(t *testing.T) {
	p := validParams()
	p.TargetValue = brl(0)
	g, err := NewGoal(p)
	require.NoError(t, err)

	assert.Equal(t, float64(0), g.ProgressPercentage(brl(500)))
}

func TestGoal_StatusTransitions(t *testing.T) {
	original, err := NewGoal(validParams())
	require.NoError(t, err)

	completed := original.MarkAsCompleted()
	paused := original.MarkAsPaused()
	cancelled := original.MarkAsCancelled()
	reactivated := cancelled.Reactivate()

	assert.True(t, completed.IsCompleted())
	assert.True(t, paused.IsPaused())
	assert.True(t, cancelled.IsCancelled())
	assert.True(t, reactivated.IsActive())

	// original is untouched
	assert.True(t, original.IsActive())

	for _, g := range []*Goal{completed, paused, cancelled, reactivated} {
		assert.Equal(t, original.ID(), g.ID())
		assert.Equal(t, original.CreatedAt(), g.CreatedAt())
		assert.Equal(t, original.Description(), g.Description())
		assert.True(t, original.TargetValue().Equals(g.TargetValue()))
		assert.True(t, original.Equals(g))
	}

	_, err = original.WithStatus("archived")
	assert.ErrorIs(t, err, domainerror.ErrInvalidGoalStatus)
}

func TestGoal_WithReconstruction(t *testing.T) {
	original, err := NewGoal(validParams())
	require.NoError(t, err)

	updated, err := original.WithMonthlyContribution(brl(2000), 50)
	require.NoError(t, err)
	assert.Equal(t, float64(100000), updated.TotalContributionNeeded().Float64())
	assert.Equal(t, float64(1500), original.MonthlyContribution().Float64())
	assert.Equal(t, original.ID(), updated.ID())

	_, err = original.WithDescription("")
	assert.ErrorIs(t, err, domainerror.ErrEmptyDescription)
}

func TestGoal_EqualityIsByID(t *testing.T) {
	a, err := NewGoal(validParams())
	require.NoError(t, err)
	b, err := NewGoal(validParams())
	require.NoError(t, err)

	assert.False(t, a.Equals(b))
	assert.False(t, a.Equals(nil))

	p := b.Params()
	p.ID = a.ID()
	p.Description = "Outra descrição"
	c, err := NewGoal(p)
	require.NoError(t, err)
	assert.True(t, a.Equals(c))
}

func TestGoal_ToMap(t *testing.T) {
	p := validParams()
	p.Strategy = "investir em CDB"
	g, err := NewGoal(p)
	require.NoError(t, err)

	m := g.ToMap()
	assert.Equal(t, float64(100000), m["target_value"])
	assert.Equal(t, float64(1500), m["monthly_contribution"])
	assert.Equal(t, "2024-01-01T00:00:00Z", m["start_date"])
	assert.Equal(t, "2025-12-31T00:00:00Z", m["end_date"])
	assert.Equal(t, "compra", m["type"])
	assert.Equal(t, "active", m["status"])
	assert.Equal(t, "investir em CDB", m["strategy"])
	assert.Equal(t, 24, m["num_parcela"])
}

func TestImportance_Rank(t *testing.T) {
	assert.Greater(t, ImportanceHigh.Rank(), ImportanceMedium.Rank())
	assert.Greater(t, ImportanceMedium.Rank(), ImportanceLow.Rank())
	assert.Equal(t, 0, Importance("x").Rank())
}
