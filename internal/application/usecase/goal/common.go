// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/goal-planner/backend/internal/application/adapter"
	"github.com/goal-planner/backend/internal/domain/entity"
	domainerror "github.com/goal-planner/backend/internal/domain/error"
	"github.com/goal-planner/backend/internal/domain/valueobject"
)

// GoalData carries the user-supplied fields of a goal.
// Amounts are expressed in Currency, which falls back to the configured default when empty.
type GoalData struct {
	Description         string
	Type                entity.GoalType
	TargetValue         float64
	Currency            string
	StartDate           time.Time
	EndDate             time.Time
	MonthlyIncome       float64
	FixedExpenses       float64
	AvailablePerMonth   float64
	Importance          entity.Importance
	Priority            int
	Strategy            string
	MonthlyContribution float64
	NumParcela          int
}

// build validates the data and creates a Goal entity owned by userID.
// Invariant violations are returned as *domainerror.GoalError carrying the original message.
func (d GoalData) build(userID uuid.UUID, defaultCurrency string) (*entity.Goal, error) {
	currency := d.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	p := entity.GoalParams{
		UserID:      userID,
		Description: d.Description,
		Type:        d.Type,
		StartDate:   d.StartDate.UTC(),
		EndDate:     d.EndDate.UTC(),
		Importance:  d.Importance,
		Priority:    d.Priority,
		Strategy:    d.Strategy,
		NumParcela:  d.NumParcela,
	}

	amounts := []struct {
		dst    *valueobject.Money
		amount float64
	}{
		{&p.TargetValue, d.TargetValue},
		{&p.MonthlyIncome, d.MonthlyIncome},
		{&p.FixedExpenses, d.FixedExpenses},
		{&p.AvailablePerMonth, d.AvailablePerMonth},
		{&p.MonthlyContribution, d.MonthlyContribution},
	}
	for _, a := range amounts {
		m, err := valueobject.NewMoney(a.amount, currency)
		if err != nil {
			return nil, domainerror.WrapGoalConstructionError(err)
		}
		*a.dst = m
	}

	goal, err := entity.NewGoal(p)
	if err != nil {
		return nil, domainerror.WrapGoalConstructionError(err)
	}
	return goal, nil
}

// findOwnedGoal loads a goal and checks that it belongs to userID.
func findOwnedGoal(ctx context.Context, repo adapter.GoalRepository, goalID, userID uuid.UUID) (*entity.Goal, error) {
	goal, err := repo.FindByID(ctx, goalID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFound,
				"goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}

	if goal.UserID() != userID {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeUnauthorizedGoalAccess,
			"not authorized to access this goal",
			domainerror.ErrUnauthorizedGoalAccess,
		)
	}

	return goal, nil
}

// currentAmount converts the caller's saved amount into the goal's currency.
func currentAmount(goal *entity.Goal, amount float64) (valueobject.Money, error) {
	m, err := valueobject.NewMoney(amount, goal.TargetValue().Currency())
	if err != nil {
		return valueobject.Money{}, domainerror.WrapGoalConstructionError(err)
	}
	return m, nil
}

// activeGoals filters goals down to the active ones.
func activeGoals(goals []*entity.Goal) []*entity.Goal {
	active := make([]*entity.Goal, 0, len(goals))
	for _, g := range goals {
		if g.IsActive() {
			active = append(active, g)
		}
	}
	return active
}
