package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Income represents a single monetary record of money received.
//
// The source is a free-text label, there is no foreign key relationship
// to any other resource.
type Income struct {
	DefaultModel
	Date        time.Time
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Source      string
	Description string
	ImageURL    string
	Icon        string
}

var (
	ErrIncomeAmountNotPositive = errors.New("the income amount must be positive")
	ErrIncomeDateRequired      = errors.New("the income date must be set")
	ErrIncomeSourceRequired    = errors.New("the income source must be set")
)

// BeforeSave validates the income and normalizes its data.
func (i *Income) BeforeSave(_ *gorm.DB) error {
	if i.Date.IsZero() {
		return ErrIncomeDateRequired
	}
	i.Date = i.Date.In(time.UTC)

	if !i.Amount.IsPositive() {
		return ErrIncomeAmountNotPositive
	}

	i.Source = strings.TrimSpace(i.Source)
	if i.Source == "" {
		return ErrIncomeSourceRequired
	}

	i.Description = strings.TrimSpace(i.Description)
	i.ImageURL = strings.TrimSpace(i.ImageURL)
	i.Icon = strings.TrimSpace(i.Icon)

	return nil
}

// AfterFind updates the date to use UTC as
// timezone, not +0000. Yes, this is different.
func (i *Income) AfterFind(tx *gorm.DB) error {
	err := i.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	i.Date = i.Date.In(time.UTC)
	return nil
}
