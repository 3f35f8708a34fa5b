package v1

import (
	"net/http"

	"github.com/fintrack-app/backend/internal/httputil"
	"github.com/fintrack-app/backend/internal/models"
	"github.com/fintrack-app/backend/internal/reports"
	ft_uuid "github.com/fintrack-app/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func RegisterExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsExpenseList)
		r.GET("", GetExpenses)
		r.POST("", CreateExpense)
	}

	// Expense with ID
	{
		r.OPTIONS("/:id", OptionsExpenseDetail)
		r.GET("/:id", GetExpense)
		r.PUT("/:id", UpdateExpense)
		r.DELETE("/:id", DeleteExpense)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/v1/expenses [options]
func OptionsExpenseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id} [options]
func OptionsExpenseDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.First(&models.Expense{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPutDelete(c)
}

// @Summary		List or report expenses
// @Description	Returns a paginated list of expenses. When reportType is set, returns a time-bucketed aggregate report instead. When category or subcategory is set, returns a top-5 ranking for that dimension instead.
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseListResponse
// @Failure		400	{object}	ExpenseListResponse
// @Failure		500	{object}	ExpenseListResponse
// @Router			/v1/expenses [get]
// @Param			page		query	int		false	"Pagination page, 1-based. Defaults to 1."
// @Param			pageSize	query	int		false	"Maximum number of expenses per page. Defaults to 10."
// @Param			filter		query	string	false	"Restrict to a date window: today, week, month or year"
// @Param			category	query	string	false	"Restrict to this category and rank the report by category"
// @Param			subcategory	query	string	false	"Restrict to this subcategory and rank the report by subcategory"
// @Param			reportType	query	string	false	"Bucketed aggregate report: daily, weekly, monthly or yearly"
func GetExpenses(c *gin.Context) {
	var filter ExpenseQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ExpenseListResponse{Error: &s})
		return
	}

	request := resolveRecordRequest(
		filter.Filter, filter.ReportType,
		filter.CategoryID != ft_uuid.Nil, filter.SubcategoryID != ft_uuid.Nil,
		filter.Page, filter.PageSize,
	)

	// base returns a fresh query for the base restrictions. Report
	// sub-queries run concurrently and gorm chains must not be shared
	// across goroutines.
	base := func() *gorm.DB {
		q := models.DB.Model(&models.Expense{})

		if request.window != nil {
			q = request.window.Apply(q, "expenses.date")
		}

		if request.kind == kindDimensional {
			if request.dimension == reports.DimensionCategory {
				q = q.Where("expenses.category_id = ?", filter.CategoryID.UUID)
			} else {
				q = q.Where("expenses.subcategory_id = ?", filter.SubcategoryID.UUID)
			}
		}

		return q
	}

	switch request.kind {
	case kindBucketed:
		report, top, err := expenseReport(base, func(q *gorm.DB) ([]reports.BucketTotal, error) {
			return reports.AggregateByBucket(q, "expenses.date", request.buckets)
		})
		if err != nil {
			s := err.Error()
			c.JSON(status(err), ExpenseReportResponse{Error: &s})
			return
		}

		c.JSON(http.StatusOK, ExpenseReportResponse{Report: report, Data: newExpenses(c, top)})

	case kindDimensional:
		report, top, err := expenseReport(base, func(q *gorm.DB) ([]reports.BucketTotal, error) {
			return reports.RankByDimension(q, request.dimension)
		})
		if err != nil {
			s := err.Error()
			c.JSON(status(err), ExpenseReportResponse{Error: &s})
			return
		}

		c.JSON(http.StatusOK, ExpenseReportResponse{Report: report, Data: newExpenses(c, top)})

	default:
		listExpenses(c, base, request)
	}
}

// expenseReport runs the report aggregation and the top-5 raw records
// side-channel concurrently. Either both succeed or the whole report
// fails, partial reports are never returned.
func expenseReport(base func() *gorm.DB, aggregate func(*gorm.DB) ([]reports.BucketTotal, error)) ([]reports.BucketTotal, []models.Expense, error) {
	var report []reports.BucketTotal
	var top []models.Expense

	g := new(errgroup.Group)

	g.Go(func() error {
		var err error
		report, err = aggregate(base())
		return err
	})

	g.Go(func() error {
		return base().
			Order("amount DESC").
			Limit(reportRecordLimit).
			Find(&top).Error
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return report, top, nil
}

// listExpenses answers the plain paginated listing.
func listExpenses(c *gin.Context, base func() *gorm.DB, request recordRequest) {
	q := base().
		Order("datetime(expenses.date) DESC, datetime(expenses.created_at) DESC").
		Offset((request.page - 1) * request.pageSize).
		Limit(request.pageSize)

	var expenses []models.Expense
	err := q.Find(&expenses).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseListResponse{Error: &s})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseListResponse{Error: &s})
		return
	}

	// The total amount covers the whole matching set, not just the page
	var totalAmount decimal.NullDecimal
	err = base().Select("SUM(amount)").Row().Scan(&totalAmount)
	if err != nil {
		s := models.ErrGeneral.Error()
		c.JSON(http.StatusInternalServerError, ExpenseListResponse{Error: &s})
		return
	}

	pagination := newPagination(count, request.page, request.pageSize)
	c.JSON(http.StatusOK, ExpenseListResponse{
		Data:        newExpenses(c, expenses),
		TotalAmount: totalAmount.Decimal,
		Pagination:  &pagination,
	})
}

func newExpenses(c *gin.Context, expenses []models.Expense) []Expense {
	data := make([]Expense, 0, len(expenses))
	for _, expense := range expenses {
		data = append(data, newExpense(c, expense))
	}

	return data
}

// @Summary		Create expense
// @Description	Creates a new expense
// @Tags			Expenses
// @Produce		json
// @Success		201		{object}	ExpenseResponse
// @Failure		400		{object}	ExpenseResponse
// @Failure		500		{object}	ExpenseResponse
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/v1/expenses [post]
func CreateExpense(c *gin.Context) {
	var editable ExpenseEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ExpenseResponse{Error: &s})
		return
	}

	expense := editable.model()
	err = models.DB.Create(&expense).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &s})
		return
	}

	data := newExpense(c, expense)
	c.JSON(http.StatusCreated, ExpenseResponse{Data: &data})
}

// @Summary		Get expense
// @Description	Returns a specific expense
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseResponse
// @Failure		400	{object}	ExpenseResponse
// @Failure		404	{object}	ExpenseResponse
// @Failure		500	{object}	ExpenseResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id} [get]
func GetExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &s})
		return
	}

	var expense models.Expense
	err = models.DB.First(&expense, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &s})
		return
	}

	data := newExpense(c, expense)
	c.JSON(http.StatusOK, ExpenseResponse{Data: &data})
}

// @Summary		Replace expense
// @Description	Replaces an existing expense with the submitted data. All fields are replaced, there is no partial update.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		200		{object}	ExpenseResponse
// @Failure		400		{object}	ExpenseResponse
// @Failure		404		{object}	ExpenseResponse
// @Failure		500		{object}	ExpenseResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/v1/expenses/{id} [put]
func UpdateExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &s})
		return
	}

	var expense models.Expense
	err = models.DB.First(&expense, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &s})
		return
	}

	var editable ExpenseEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ExpenseResponse{Error: &s})
		return
	}

	// Full replacement: the ID and creation timestamp survive, every
	// other field comes from the request body
	updated := editable.model()
	updated.DefaultModel = expense.DefaultModel

	err = models.DB.Save(&updated).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &s})
		return
	}

	data := newExpense(c, updated)
	c.JSON(http.StatusOK, ExpenseResponse{Data: &data})
}

// @Summary		Delete expense
// @Description	Deletes an expense
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id} [delete]
func DeleteExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var expense models.Expense
	err = models.DB.First(&expense, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&expense).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
