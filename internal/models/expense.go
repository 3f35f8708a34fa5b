package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense represents a single monetary record of money spent.
//
// Both category and subcategory are optional. An expense without a
// category is uncategorized.
type Expense struct {
	DefaultModel
	Date          time.Time
	Amount        decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Description   string
	CategoryID    *uuid.UUID
	Category      *Category `json:"-"`
	SubcategoryID *uuid.UUID
	Subcategory   *Subcategory `json:"-"`
}

var (
	ErrExpenseAmountNotPositive = errors.New("the expense amount must be positive")
	ErrExpenseDateRequired      = errors.New("the expense date must be set")
)

// BeforeSave validates the expense and normalizes its data.
func (e *Expense) BeforeSave(_ *gorm.DB) error {
	if e.Date.IsZero() {
		return ErrExpenseDateRequired
	}
	e.Date = e.Date.In(time.UTC)

	if !e.Amount.IsPositive() {
		return ErrExpenseAmountNotPositive
	}

	e.Description = strings.TrimSpace(e.Description)

	return nil
}

// AfterFind updates the date to use UTC as
// timezone, not +0000. Yes, this is different.
func (e *Expense) AfterFind(tx *gorm.DB) error {
	err := e.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	e.Date = e.Date.In(time.UTC)
	return nil
}
