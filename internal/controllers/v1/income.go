package v1

import (
	"net/http"

	"github.com/fintrack-app/backend/internal/httputil"
	"github.com/fintrack-app/backend/internal/models"
	"github.com/fintrack-app/backend/internal/reports"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// RegisterIncomeRoutes registers the routes for incomes with
// the RouterGroup that is passed.
func RegisterIncomeRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsIncomeList)
		r.GET("", GetIncomes)
		r.POST("", CreateIncome)
	}

	// Income with ID
	{
		r.OPTIONS("/:id", OptionsIncomeDetail)
		r.GET("/:id", GetIncome)
		r.PUT("/:id", UpdateIncome)
		r.DELETE("/:id", DeleteIncome)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Income
// @Success		204
// @Router			/v1/income [options]
func OptionsIncomeList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Income
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/income/{id} [options]
func OptionsIncomeDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.First(&models.Income{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPutDelete(c)
}

// @Summary		List or report income
// @Description	Returns a paginated list of incomes. When reportType is set, returns a time-bucketed aggregate report instead.
// @Tags			Income
// @Produce		json
// @Success		200	{object}	IncomeListResponse
// @Failure		400	{object}	IncomeListResponse
// @Failure		500	{object}	IncomeListResponse
// @Router			/v1/income [get]
// @Param			page		query	int		false	"Pagination page, 1-based. Defaults to 1."
// @Param			pageSize	query	int		false	"Maximum number of incomes per page. Defaults to 10."
// @Param			filter		query	string	false	"Restrict to a date window: today, week, month or year"
// @Param			reportType	query	string	false	"Bucketed aggregate report: daily, weekly, monthly or yearly"
func GetIncomes(c *gin.Context) {
	var filter IncomeQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, IncomeListResponse{Error: &s})
		return
	}

	// Incomes have no category dimension, only listing and bucketed
	// reports apply
	request := resolveRecordRequest(filter.Filter, filter.ReportType, false, false, filter.Page, filter.PageSize)

	base := func() *gorm.DB {
		q := models.DB.Model(&models.Income{})

		if request.window != nil {
			q = request.window.Apply(q, "incomes.date")
		}

		return q
	}

	if request.kind == kindBucketed {
		var report []reports.BucketTotal
		var top []models.Income

		g := new(errgroup.Group)

		g.Go(func() error {
			var err error
			report, err = reports.AggregateByBucket(base(), "incomes.date", request.buckets)
			return err
		})

		g.Go(func() error {
			return base().
				Order("amount DESC").
				Limit(reportRecordLimit).
				Find(&top).Error
		})

		if err := g.Wait(); err != nil {
			s := err.Error()
			c.JSON(status(err), IncomeReportResponse{Error: &s})
			return
		}

		c.JSON(http.StatusOK, IncomeReportResponse{Report: report, Data: newIncomes(c, top)})
		return
	}

	q := base().
		Order("datetime(incomes.date) DESC, datetime(incomes.created_at) DESC").
		Offset((request.page - 1) * request.pageSize).
		Limit(request.pageSize)

	var incomes []models.Income
	err := q.Find(&incomes).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeListResponse{Error: &s})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeListResponse{Error: &s})
		return
	}

	var totalAmount decimal.NullDecimal
	err = base().Select("SUM(amount)").Row().Scan(&totalAmount)
	if err != nil {
		s := models.ErrGeneral.Error()
		c.JSON(http.StatusInternalServerError, IncomeListResponse{Error: &s})
		return
	}

	pagination := newPagination(count, request.page, request.pageSize)
	c.JSON(http.StatusOK, IncomeListResponse{
		Data:        newIncomes(c, incomes),
		TotalAmount: totalAmount.Decimal,
		Pagination:  &pagination,
	})
}

func newIncomes(c *gin.Context, incomes []models.Income) []Income {
	data := make([]Income, 0, len(incomes))
	for _, income := range incomes {
		data = append(data, newIncome(c, income))
	}

	return data
}

// @Summary		Create income
// @Description	Creates a new income
// @Tags			Income
// @Produce		json
// @Success		201		{object}	IncomeResponse
// @Failure		400		{object}	IncomeResponse
// @Failure		500		{object}	IncomeResponse
// @Param			income	body		IncomeEditable	true	"Income"
// @Router			/v1/income [post]
func CreateIncome(c *gin.Context) {
	var editable IncomeEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, IncomeResponse{Error: &s})
		return
	}

	income := editable.model()
	err = models.DB.Create(&income).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{Error: &s})
		return
	}

	data := newIncome(c, income)
	c.JSON(http.StatusCreated, IncomeResponse{Data: &data})
}

// @Summary		Get income
// @Description	Returns a specific income
// @Tags			Income
// @Produce		json
// @Success		200	{object}	IncomeResponse
// @Failure		400	{object}	IncomeResponse
// @Failure		404	{object}	IncomeResponse
// @Failure		500	{object}	IncomeResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/income/{id} [get]
func GetIncome(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{Error: &s})
		return
	}

	var income models.Income
	err = models.DB.First(&income, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{Error: &s})
		return
	}

	data := newIncome(c, income)
	c.JSON(http.StatusOK, IncomeResponse{Data: &data})
}

// @Summary		Replace income
// @Description	Replaces an existing income with the submitted data. All fields are replaced, there is no partial update.
// @Tags			Income
// @Accept			json
// @Produce		json
// @Success		200		{object}	IncomeResponse
// @Failure		400		{object}	IncomeResponse
// @Failure		404		{object}	IncomeResponse
// @Failure		500		{object}	IncomeResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			income	body		IncomeEditable	true	"Income"
// @Router			/v1/income/{id} [put]
func UpdateIncome(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{Error: &s})
		return
	}

	var income models.Income
	err = models.DB.First(&income, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{Error: &s})
		return
	}

	var editable IncomeEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, IncomeResponse{Error: &s})
		return
	}

	updated := editable.model()
	updated.DefaultModel = income.DefaultModel

	err = models.DB.Save(&updated).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{Error: &s})
		return
	}

	data := newIncome(c, updated)
	c.JSON(http.StatusOK, IncomeResponse{Data: &data})
}

// @Summary		Delete income
// @Description	Deletes an income
// @Tags			Income
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/income/{id} [delete]
func DeleteIncome(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var income models.Income
	err = models.DB.First(&income, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&income).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
