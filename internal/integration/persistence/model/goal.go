// Package model defines database models for persistence layer.
package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/goal-planner/backend/internal/domain/entity"
	"github.com/goal-planner/backend/internal/domain/valueobject"
)

// GoalModel represents the goals table in the database.
// All amounts of a goal share the Currency column.
type GoalModel struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID              uuid.UUID       `gorm:"type:uuid;not null;index"`
	Description         string          `gorm:"type:varchar(255);not null"`
	Type                string          `gorm:"type:varchar(20);not null;index"`
	Currency            string          `gorm:"type:char(3);not null;default:'BRL'"`
	TargetValue         decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	StartDate           time.Time       `gorm:"type:date;not null;index"`
	EndDate             time.Time       `gorm:"type:date;not null;index"`
	MonthlyIncome       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	FixedExpenses       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	AvailablePerMonth   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Importance          string          `gorm:"type:varchar(10);not null"`
	Priority            int             `gorm:"not null"`
	Strategy            *string         `gorm:"type:varchar(100)"`
	MonthlyContribution decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	NumParcela          int             `gorm:"not null"`
	Status              string          `gorm:"type:varchar(20);not null;default:'active';index"`
	CreatedAt           time.Time       `gorm:"not null"`
	UpdatedAt           time.Time       `gorm:"not null"`
	DeletedAt           gorm.DeletedAt  `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goals"
}

// ToEntity converts a GoalModel to a domain Goal entity.
// Rows that no longer satisfy the entity invariants are reported as errors.
func (m *GoalModel) ToEntity() (*entity.Goal, error) {
	p := entity.GoalParams{
		ID:          m.ID,
		UserID:      m.UserID,
		Description: m.Description,
		Type:        entity.GoalType(m.Type),
		StartDate:   m.StartDate.UTC(),
		EndDate:     m.EndDate.UTC(),
		Importance:  entity.Importance(m.Importance),
		Priority:    m.Priority,
		NumParcela:  m.NumParcela,
		Status:      entity.GoalStatus(m.Status),
		CreatedAt:   m.CreatedAt.UTC(),
	}
	if m.Strategy != nil {
		p.Strategy = *m.Strategy
	}

	amounts := []struct {
		dst    *valueobject.Money
		amount decimal.Decimal
	}{
		{&p.TargetValue, m.TargetValue},
		{&p.MonthlyIncome, m.MonthlyIncome},
		{&p.FixedExpenses, m.FixedExpenses},
		{&p.AvailablePerMonth, m.AvailablePerMonth},
		{&p.MonthlyContribution, m.MonthlyContribution},
	}
	for _, a := range amounts {
		money, err := valueobject.NewMoneyFromDecimal(a.amount, m.Currency)
		if err != nil {
			return nil, fmt.Errorf("goal %s: %w", m.ID, err)
		}
		*a.dst = money
	}

	goal, err := entity.NewGoal(p)
	if err != nil {
		return nil, fmt.Errorf("goal %s: %w", m.ID, err)
	}
	return goal, nil
}

// GoalFromEntity creates a GoalModel from a domain Goal entity.
func GoalFromEntity(goal *entity.Goal) *GoalModel {
	var strategy *string
	if s := goal.Strategy(); s != "" {
		strategy = &s
	}

	return &GoalModel{
		ID:                  goal.ID(),
		UserID:              goal.UserID(),
		Description:         goal.Description(),
		Type:                string(goal.Type()),
		Currency:            goal.TargetValue().Currency(),
		TargetValue:         goal.TargetValue().Amount(),
		StartDate:           goal.StartDate(),
		EndDate:             goal.EndDate(),
		MonthlyIncome:       goal.MonthlyIncome().Amount(),
		FixedExpenses:       goal.FixedExpenses().Amount(),
		AvailablePerMonth:   goal.AvailablePerMonth().Amount(),
		Importance:          string(goal.Importance()),
		Priority:            goal.Priority(),
		Strategy:            strategy,
		MonthlyContribution: goal.MonthlyContribution().Amount(),
		NumParcela:          goal.NumParcela(),
		Status:              string(goal.Status()),
		CreatedAt:           goal.CreatedAt(),
	}
}
