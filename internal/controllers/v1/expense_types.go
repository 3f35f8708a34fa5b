package v1

import (
	"fmt"
	"time"

	"github.com/fintrack-app/backend/internal/httputil"
	"github.com/fintrack-app/backend/internal/models"
	"github.com/fintrack-app/backend/internal/reports"
	ft_uuid "github.com/fintrack-app/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ExpenseEditable struct {
	Date time.Time `json:"date" binding:"required" example:"2024-03-15T18:43:00Z"` // Date of the expense. Source of truth for all time-bucketing

	Amount decimal.Decimal `json:"amount" binding:"required" example:"14.03" minimum:"0.00000001"` // The amount spent

	Description   string     `json:"description" example:"Lunch" default:""`                      // A free-text description
	CategoryID    *uuid.UUID `json:"categoryId" example:"fd81dc45-a3a2-468e-a6fa-b2618f30aa45"`   // ID of the category, unset for uncategorized expenses
	SubcategoryID *uuid.UUID `json:"subcategoryId" example:"8e16b456-a719-48ce-9fec-e115cfa7cbcc"` // ID of the subcategory, optionally narrowing the category
}

// model returns the database resource for the API representation of the editable fields
func (editable ExpenseEditable) model() models.Expense {
	return models.Expense{
		Date:          editable.Date,
		Amount:        editable.Amount,
		Description:   editable.Description,
		CategoryID:    editable.CategoryID,
		SubcategoryID: editable.SubcategoryID,
	}
}

type ExpenseLinks struct {
	Self string `json:"self" example:"https://example.com/v1/expenses/d430d7c3-d14c-4712-9336-ee56965a6673"` // The expense itself
}

// Expense is the representation of an Expense in API v1.
type Expense struct {
	models.DefaultModel
	ExpenseEditable
	Links ExpenseLinks `json:"links"`
}

// newExpense returns the API v1 representation of the resource
func newExpense(c *gin.Context, model models.Expense) Expense {
	return Expense{
		DefaultModel: model.DefaultModel,
		ExpenseEditable: ExpenseEditable{
			Date:          model.Date,
			Amount:        model.Amount,
			Description:   model.Description,
			CategoryID:    model.CategoryID,
			SubcategoryID: model.SubcategoryID,
		},
		Links: ExpenseLinks{
			Self: fmt.Sprintf("%s/v1/expenses/%s", httputil.RequestHost(c), model.ID),
		},
	}
}

type ExpenseResponse struct {
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Expense `json:"data"`                                                          // The Expense data
}

type ExpenseListResponse struct {
	Data        []Expense       `json:"data"`                                                          // One page of expenses
	TotalAmount decimal.Decimal `json:"totalAmount" example:"350"`                                     // Summed amount over all matching expenses, not just the page
	Error       *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination  *Pagination     `json:"pagination"`                                                    // Pagination information
}

type ExpenseReportResponse struct {
	Report []reports.BucketTotal `json:"report"`                                                        // Aggregated or ranked totals, dense and label-aligned
	Data   []Expense             `json:"data"`                                                          // Top 5 matching expenses by amount, descending
	Error  *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ExpenseQueryFilter struct {
	Page          int          `form:"page"`        // Pagination page, 1-based. Defaults to 1.
	PageSize      int          `form:"pageSize"`    // Maximum number of expenses per page. Defaults to 10.
	Filter        string       `form:"filter"`      // Restrict to a date window: today, week, month or year
	CategoryID    ft_uuid.UUID `form:"category"`    // Restrict to this category and rank by category
	SubcategoryID ft_uuid.UUID `form:"subcategory"` // Restrict to this subcategory and rank by subcategory
	ReportType    string       `form:"reportType"`  // Bucketed aggregate report: daily, weekly, monthly or yearly
}
