// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/goal-planner/backend/internal/domain/error"
	"github.com/goal-planner/backend/internal/domain/valueobject"
)

// GoalType represents what kind of objective a goal is.
type GoalType string

const (
	GoalTypeEconomy  GoalType = "economia"
	GoalTypePurchase GoalType = "compra"
)

// IsValid reports whether the type is one of the supported tags.
func (t GoalType) IsValid() bool {
	return t == GoalTypeEconomy || t == GoalTypePurchase
}

// GoalStatus represents the lifecycle state of a goal.
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusPaused    GoalStatus = "paused"
	GoalStatusCancelled GoalStatus = "cancelled"
)

// IsValid reports whether the status is a known lifecycle state.
func (s GoalStatus) IsValid() bool {
	switch s {
	case GoalStatusActive, GoalStatusCompleted, GoalStatusPaused, GoalStatusCancelled:
		return true
	}
	return false
}

// Importance represents how important a goal is to the user.
type Importance string

const (
	ImportanceLow    Importance = "baixa"
	ImportanceMedium Importance = "média"
	ImportanceHigh   Importance = "alta"
)

// IsValid reports whether the importance is a known level.
func (i Importance) IsValid() bool {
	return i == ImportanceLow || i == ImportanceMedium || i == ImportanceHigh
}

// Rank orders importance levels: alta > média > baixa.
func (i Importance) Rank() int {
	switch i {
	case ImportanceHigh:
		return 3
	case ImportanceMedium:
		return 2
	case ImportanceLow:
		return 1
	}
	return 0
}

const (
	MinPriority = 1
	MaxPriority = 5
)

// GoalParams holds the fields used to build a Goal.
// Zero ID, Status and CreatedAt are filled with defaults by NewGoal.
type GoalParams struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	Description         string
	Type                GoalType
	TargetValue         valueobject.Money
	StartDate           time.Time
	EndDate             time.Time
	MonthlyIncome       valueobject.Money
	FixedExpenses       valueobject.Money
	AvailablePerMonth   valueobject.Money
	Importance          Importance
	Priority            int
	Strategy            string
	MonthlyContribution valueobject.Money
	NumParcela          int
	Status              GoalStatus
	CreatedAt           time.Time
}

// Goal represents a financial objective in the Goal Planner system.
// A Goal is immutable once built; every change produces a new instance.
type Goal struct {
	p GoalParams
}

// NewGoal validates params and creates a new Goal entity.
func NewGoal(p GoalParams) (*Goal, error) {
	p.Description = strings.TrimSpace(p.Description)
	p.Strategy = strings.TrimSpace(p.Strategy)

	if p.Description == "" {
		return nil, domainerror.ErrEmptyDescription
	}
	if !p.Type.IsValid() {
		return nil, domainerror.ErrInvalidGoalType
	}
	if p.Priority < MinPriority || p.Priority > MaxPriority {
		return nil, domainerror.ErrInvalidPriority
	}
	if !p.EndDate.After(p.StartDate) {
		return nil, domainerror.ErrInvalidDateRange
	}
	if !p.Importance.IsValid() {
		return nil, domainerror.ErrInvalidImportance
	}
	if p.NumParcela <= 0 {
		return nil, domainerror.ErrInvalidInstallments
	}
	currency := p.TargetValue.Currency()
	for _, m := range []valueobject.Money{p.MonthlyIncome, p.FixedExpenses, p.AvailablePerMonth, p.MonthlyContribution} {
		if m.Currency() != currency {
			return nil, domainerror.ErrCurrencyMismatch
		}
	}

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Status == "" {
		p.Status = GoalStatusActive
	}
	if !p.Status.IsValid() {
		return nil, domainerror.ErrInvalidGoalStatus
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}

	return &Goal{p: p}, nil
}

func (g *Goal) ID() uuid.UUID                          { return g.p.ID }
func (g *Goal) UserID() uuid.UUID                      { return g.p.UserID }
func (g *Goal) Description() string                    { return g.p.Description }
func (g *Goal) Type() GoalType                         { return g.p.Type }
func (g *Goal) TargetValue() valueobject.Money         { return g.p.TargetValue }
func (g *Goal) StartDate() time.Time                   { return g.p.StartDate }
func (g *Goal) EndDate() time.Time                     { return g.p.EndDate }
func (g *Goal) MonthlyIncome() valueobject.Money       { return g.p.MonthlyIncome }
func (g *Goal) FixedExpenses() valueobject.Money       { return g.p.FixedExpenses }
func (g *Goal) AvailablePerMonth() valueobject.Money   { return g.p.AvailablePerMonth }
func (g *Goal) Importance() Importance                 { return g.p.Importance }
func (g *Goal) Priority() int                          { return g.p.Priority }
func (g *Goal) Strategy() string                       { return g.p.Strategy }
func (g *Goal) MonthlyContribution() valueobject.Money { return g.p.MonthlyContribution }
func (g *Goal) NumParcela() int                        { return g.p.NumParcela }
func (g *Goal) Status() GoalStatus                     { return g.p.Status }
func (g *Goal) CreatedAt() time.Time                   { return g.p.CreatedAt }

// Params returns a copy of the goal's fields, suitable for building a modified goal.
func (g *Goal) Params() GoalParams {
	return g.p
}

func (g *Goal) IsEconomy() bool   { return g.p.Type == GoalTypeEconomy }
func (g *Goal) IsPurchase() bool  { return g.p.Type == GoalTypePurchase }
func (g *Goal) IsActive() bool    { return g.p.Status == GoalStatusActive }
func (g *Goal) IsCompleted() bool { return g.p.Status == GoalStatusCompleted }
func (g *Goal) IsPaused() bool    { return g.p.Status == GoalStatusPaused }
func (g *Goal) IsCancelled() bool { return g.p.Status == GoalStatusCancelled }

// TotalContributionNeeded returns monthlyContribution × numParcela.
func (g *Goal) TotalContributionNeeded() valueobject.Money {
	total, err := g.p.MonthlyContribution.MultiplyInt(g.p.NumParcela)
	if err != nil {
		// numParcela is positive by construction
		return g.p.MonthlyContribution
	}
	return total
}

// ProgressPercentage returns current/target × 100 clamped to [0, 100].
func (g *Goal) ProgressPercentage(current valueobject.Money) float64 {
	target := g.p.TargetValue.Amount()
	if target.IsZero() {
		return 0
	}

	pct := current.Amount().Div(target).Mul(decimal.NewFromInt(100))
	if pct.LessThan(decimal.Zero) {
		return 0
	}
	if pct.GreaterThan(decimal.NewFromInt(100)) {
		return 100
	}
	return pct.InexactFloat64()
}

// RemainingAmount returns max(0, target − current).
func (g *Goal) RemainingAmount(current valueobject.Money) valueobject.Money {
	diff := g.p.TargetValue.Amount().Sub(current.Amount())
	if diff.IsNegative() {
		diff = decimal.Zero
	}
	remaining, err := valueobject.NewMoneyFromDecimal(diff, g.p.TargetValue.Currency())
	if err != nil {
		return g.p.TargetValue
	}
	return remaining
}

// MarkAsCompleted returns a copy of the goal with status completed.
func (g *Goal) MarkAsCompleted() *Goal { return g.withStatus(GoalStatusCompleted) }

// MarkAsPaused returns a copy of the goal with status paused.
func (g *Goal) MarkAsPaused() *Goal { return g.withStatus(GoalStatusPaused) }

// MarkAsCancelled returns a copy of the goal with status cancelled.
func (g *Goal) MarkAsCancelled() *Goal { return g.withStatus(GoalStatusCancelled) }

// Reactivate returns a copy of the goal with status active.
func (g *Goal) Reactivate() *Goal { return g.withStatus(GoalStatusActive) }

func (g *Goal) withStatus(status GoalStatus) *Goal {
	p := g.p
	p.Status = status
	return &Goal{p: p}
}

// WithStatus returns a copy of the goal with the given status.
func (g *Goal) WithStatus(status GoalStatus) (*Goal, error) {
	if !status.IsValid() {
		return nil, domainerror.ErrInvalidGoalStatus
	}
	return g.withStatus(status), nil
}

// WithDescription returns a re-validated copy of the goal with a new description.
func (g *Goal) WithDescription(description string) (*Goal, error) {
	p := g.p
	p.Description = description
	return NewGoal(p)
}

// WithMonthlyContribution returns a re-validated copy of the goal with a new contribution plan.
func (g *Goal) WithMonthlyContribution(contribution valueobject.Money, numParcela int) (*Goal, error) {
	p := g.p
	p.MonthlyContribution = contribution
	p.NumParcela = numParcela
	return NewGoal(p)
}

// Equals reports identity equality: two goals are equal iff their IDs match.
func (g *Goal) Equals(other *Goal) bool {
	if g == nil || other == nil {
		return false
	}
	return g.p.ID == other.p.ID
}

// ToMap returns a plain record of the goal with Money fields flattened
// to their amount and dates formatted as ISO-8601.
func (g *Goal) ToMap() map[string]any {
	var strategy any
	if g.p.Strategy != "" {
		strategy = g.p.Strategy
	}

	return map[string]any{
		"id":                   g.p.ID.String(),
		"user_id":              g.p.UserID.String(),
		"description":          g.p.Description,
		"type":                 string(g.p.Type),
		"target_value":         g.p.TargetValue.Float64(),
		"currency":             g.p.TargetValue.Currency(),
		"start_date":           g.p.StartDate.Format(time.RFC3339),
		"end_date":             g.p.EndDate.Format(time.RFC3339),
		"monthly_income":       g.p.MonthlyIncome.Float64(),
		"fixed_expenses":       g.p.FixedExpenses.Float64(),
		"available_per_month":  g.p.AvailablePerMonth.Float64(),
		"importance":           string(g.p.Importance),
		"priority":             g.p.Priority,
		"strategy":             strategy,
		"monthly_contribution": g.p.MonthlyContribution.Float64(),
		"num_parcela":          g.p.NumParcela,
		"status":               string(g.p.Status),
		"created_at":           g.p.CreatedAt.Format(time.RFC3339),
	}
}
