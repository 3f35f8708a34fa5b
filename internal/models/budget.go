package models

import (
	"errors"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// BudgetPeriod is the period a budget limit applies to.
type BudgetPeriod string

const (
	BudgetPeriodDaily   BudgetPeriod = "daily"
	BudgetPeriodWeekly  BudgetPeriod = "weekly"
	BudgetPeriodMonthly BudgetPeriod = "monthly"
)

// Budget represents a spending limit for one period.
type Budget struct {
	DefaultModel
	Name   BudgetPeriod
	Amount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

var (
	ErrBudgetPeriodInvalid     = errors.New("the budget period must be one of 'daily', 'weekly' or 'monthly'")
	ErrBudgetAmountNotPositive = errors.New("the budget amount must be positive")
)

// BeforeSave validates the budget.
func (b *Budget) BeforeSave(_ *gorm.DB) error {
	if !slices.Contains([]BudgetPeriod{BudgetPeriodDaily, BudgetPeriodWeekly, BudgetPeriodMonthly}, b.Name) {
		return ErrBudgetPeriodInvalid
	}

	if !b.Amount.IsPositive() {
		return ErrBudgetAmountNotPositive
	}

	return nil
}
