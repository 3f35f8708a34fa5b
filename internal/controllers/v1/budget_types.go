package v1

import (
	"fmt"

	"github.com/fintrack-app/backend/internal/httputil"
	"github.com/fintrack-app/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type BudgetEditable struct {
	Name   models.BudgetPeriod `json:"name" binding:"required" example:"monthly"`           // The period the budget applies to: daily, weekly or monthly
	Amount decimal.Decimal     `json:"amount" binding:"required" example:"1000" minimum:"0.00000001"` // The spending limit for the period
}

// model returns the database resource for the API representation of the editable fields
func (editable BudgetEditable) model() models.Budget {
	return models.Budget{
		Name:   editable.Name,
		Amount: editable.Amount,
	}
}

type BudgetLinks struct {
	Self string `json:"self" example:"https://example.com/v1/budgets/d430d7c3-d14c-4712-9336-ee56965a6673"` // The budget itself
}

// Budget is the representation of a Budget in API v1.
type Budget struct {
	models.DefaultModel
	BudgetEditable
	Links BudgetLinks `json:"links"`
}

// newBudget returns the API v1 representation of the resource
func newBudget(c *gin.Context, model models.Budget) Budget {
	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			Name:   model.Name,
			Amount: model.Amount,
		},
		Links: BudgetLinks{
			Self: fmt.Sprintf("%s/v1/budgets/%s", httputil.RequestHost(c), model.ID),
		},
	}
}

type BudgetResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Budget `json:"data"`                                                          // The Budget data
}

type BudgetListResponse struct {
	Data  []Budget `json:"data"`                                                          // List of budgets
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
