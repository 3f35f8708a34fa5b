package v1

import (
	"fmt"
	"time"

	"github.com/fintrack-app/backend/internal/httputil"
	"github.com/fintrack-app/backend/internal/models"
	"github.com/fintrack-app/backend/internal/reports"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type IncomeEditable struct {
	Date time.Time `json:"date" binding:"required" example:"2024-03-01T09:00:00Z"` // Date of the income. Source of truth for all time-bucketing

	Amount decimal.Decimal `json:"amount" binding:"required" example:"2500" minimum:"0.00000001"` // The amount received

	Source      string `json:"source" binding:"required" example:"Salary"` // Free-text origin label
	Description string `json:"description" example:"March payout" default:""`
	ImageURL    string `json:"imageUrl" example:"https://example.com/salary.png" default:""` // Optional image shown by clients
	Icon        string `json:"icon" example:"cash" default:""`                               // Optional icon name shown by clients
}

// model returns the database resource for the API representation of the editable fields
func (editable IncomeEditable) model() models.Income {
	return models.Income{
		Date:        editable.Date,
		Amount:      editable.Amount,
		Source:      editable.Source,
		Description: editable.Description,
		ImageURL:    editable.ImageURL,
		Icon:        editable.Icon,
	}
}

type IncomeLinks struct {
	Self string `json:"self" example:"https://example.com/v1/income/d430d7c3-d14c-4712-9336-ee56965a6673"` // The income itself
}

// Income is the representation of an Income in API v1.
type Income struct {
	models.DefaultModel
	IncomeEditable
	Links IncomeLinks `json:"links"`
}

// newIncome returns the API v1 representation of the resource
func newIncome(c *gin.Context, model models.Income) Income {
	return Income{
		DefaultModel: model.DefaultModel,
		IncomeEditable: IncomeEditable{
			Date:        model.Date,
			Amount:      model.Amount,
			Source:      model.Source,
			Description: model.Description,
			ImageURL:    model.ImageURL,
			Icon:        model.Icon,
		},
		Links: IncomeLinks{
			Self: fmt.Sprintf("%s/v1/income/%s", httputil.RequestHost(c), model.ID),
		},
	}
}

type IncomeResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Income `json:"data"`                                                          // The Income data
}

type IncomeListResponse struct {
	Data        []Income        `json:"data"`                                                          // One page of incomes
	TotalAmount decimal.Decimal `json:"totalAmount" example:"2500"`                                    // Summed amount over all matching incomes, not just the page
	Error       *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination  *Pagination     `json:"pagination"`                                                    // Pagination information
}

type IncomeReportResponse struct {
	Report []reports.BucketTotal `json:"report"`                                                        // Aggregated totals, dense and label-aligned
	Data   []Income              `json:"data"`                                                          // Top 5 matching incomes by amount, descending
	Error  *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type IncomeQueryFilter struct {
	Page       int    `form:"page"`       // Pagination page, 1-based. Defaults to 1.
	PageSize   int    `form:"pageSize"`   // Maximum number of incomes per page. Defaults to 10.
	Filter     string `form:"filter"`     // Restrict to a date window: today, week, month or year
	ReportType string `form:"reportType"` // Bucketed aggregate report: daily, weekly, monthly or yearly
}
