package models_test

import (
	"testing"

	"github.com/fintrack-app/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestBudgetValidation() {
	tests := []struct {
		name   string
		budget models.Budget
		err    error
	}{
		{"No period", models.Budget{Amount: decimal.NewFromInt(100)}, models.ErrBudgetPeriodInvalid},
		{"Unknown period", models.Budget{Name: "yearly", Amount: decimal.NewFromInt(100)}, models.ErrBudgetPeriodInvalid},
		{"Case sensitive period", models.Budget{Name: "Monthly", Amount: decimal.NewFromInt(100)}, models.ErrBudgetPeriodInvalid},
		{"Zero amount", models.Budget{Name: models.BudgetPeriodMonthly}, models.ErrBudgetAmountNotPositive},
		{"Negative amount", models.Budget{Name: models.BudgetPeriodMonthly, Amount: decimal.NewFromInt(-1)}, models.ErrBudgetAmountNotPositive},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&tt.budget).Error
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetCreate() {
	budget := models.Budget{Name: models.BudgetPeriodWeekly, Amount: decimal.NewFromInt(250)}

	err := models.DB.Create(&budget).Error
	assert.Nil(suite.T(), err)
}
