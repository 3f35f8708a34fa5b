package models_test

import (
	"testing"
	"time"

	"github.com/fintrack-app/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestIncomeValidation() {
	tests := []struct {
		name   string
		income models.Income
		err    error
	}{
		{"No date", models.Income{Amount: decimal.NewFromInt(10), Source: "Salary"}, models.ErrIncomeDateRequired},
		{"Zero amount", models.Income{Date: time.Now(), Source: "Salary"}, models.ErrIncomeAmountNotPositive},
		{"No source", models.Income{Date: time.Now(), Amount: decimal.NewFromInt(10)}, models.ErrIncomeSourceRequired},
		{"Whitespace source", models.Income{Date: time.Now(), Amount: decimal.NewFromInt(10), Source: "   "}, models.ErrIncomeSourceRequired},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&tt.income).Error
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestIncomeTrims() {
	income := models.Income{
		Date:        time.Now(),
		Amount:      decimal.NewFromInt(2500),
		Source:      "  Salary  ",
		Description: "  March payout  ",
		ImageURL:    " https://example.com/salary.png ",
		Icon:        " cash ",
	}

	err := models.DB.Create(&income).Error
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), "Salary", income.Source)
	assert.Equal(suite.T(), "March payout", income.Description)
	assert.Equal(suite.T(), "https://example.com/salary.png", income.ImageURL)
	assert.Equal(suite.T(), "cash", income.Icon)
}
