package v1

import (
	"net/http"

	"github.com/fintrack-app/backend/internal/httputil"
	"github.com/fintrack-app/backend/internal/models"
	ft_uuid "github.com/fintrack-app/backend/internal/uuid"
	"github.com/gin-gonic/gin"
)

// RegisterSubcategoryRoutes registers the routes for subcategories with
// the RouterGroup that is passed.
func RegisterSubcategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsSubcategoryList)
		r.GET("", GetSubcategories)
		r.POST("", CreateSubcategory)
	}

	// Subcategory with ID
	{
		r.OPTIONS("/:id", OptionsSubcategoryDetail)
		r.GET("/:id", GetSubcategory)
		r.PUT("/:id", UpdateSubcategory)
		r.DELETE("/:id", DeleteSubcategory)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Subcategories
// @Success		204
// @Router			/v1/subcategories [options]
func OptionsSubcategoryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Subcategories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/subcategories/{id} [options]
func OptionsSubcategoryDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.First(&models.Subcategory{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPutDelete(c)
}

// @Summary		Get subcategories
// @Description	Returns the list of subcategories, optionally restricted to one category
// @Tags			Subcategories
// @Produce		json
// @Success		200	{object}	SubcategoryListResponse
// @Failure		400	{object}	SubcategoryListResponse
// @Failure		500	{object}	SubcategoryListResponse
// @Router			/v1/subcategories [get]
// @Param			category	query	string	false	"Only return subcategories of this category"
func GetSubcategories(c *gin.Context) {
	var filter SubcategoryQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, SubcategoryListResponse{Error: &s})
		return
	}

	q := models.DB.Order("name ASC")
	if filter.CategoryID != ft_uuid.Nil {
		q = q.Where("category_id = ?", filter.CategoryID.UUID)
	}

	var subcategories []models.Subcategory
	err := q.Find(&subcategories).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubcategoryListResponse{Error: &s})
		return
	}

	data := make([]Subcategory, 0, len(subcategories))
	for _, subcategory := range subcategories {
		data = append(data, newSubcategory(c, subcategory))
	}

	c.JSON(http.StatusOK, SubcategoryListResponse{Data: data})
}

// @Summary		Create subcategory
// @Description	Creates a new subcategory
// @Tags			Subcategories
// @Produce		json
// @Success		201				{object}	SubcategoryResponse
// @Failure		400				{object}	SubcategoryResponse
// @Failure		500				{object}	SubcategoryResponse
// @Param			subcategory	body		SubcategoryEditable	true	"Subcategory"
// @Router			/v1/subcategories [post]
func CreateSubcategory(c *gin.Context) {
	var editable SubcategoryEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, SubcategoryResponse{Error: &s})
		return
	}

	subcategory := editable.model()
	err = models.DB.Create(&subcategory).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubcategoryResponse{Error: &s})
		return
	}

	data := newSubcategory(c, subcategory)
	c.JSON(http.StatusCreated, SubcategoryResponse{Data: &data})
}

// @Summary		Get subcategory
// @Description	Returns a specific subcategory
// @Tags			Subcategories
// @Produce		json
// @Success		200	{object}	SubcategoryResponse
// @Failure		400	{object}	SubcategoryResponse
// @Failure		404	{object}	SubcategoryResponse
// @Failure		500	{object}	SubcategoryResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/subcategories/{id} [get]
func GetSubcategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubcategoryResponse{Error: &s})
		return
	}

	var subcategory models.Subcategory
	err = models.DB.First(&subcategory, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubcategoryResponse{Error: &s})
		return
	}

	data := newSubcategory(c, subcategory)
	c.JSON(http.StatusOK, SubcategoryResponse{Data: &data})
}

// @Summary		Replace subcategory
// @Description	Replaces an existing subcategory with the submitted data
// @Tags			Subcategories
// @Accept			json
// @Produce		json
// @Success		200				{object}	SubcategoryResponse
// @Failure		400				{object}	SubcategoryResponse
// @Failure		404				{object}	SubcategoryResponse
// @Failure		500				{object}	SubcategoryResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			subcategory	body		SubcategoryEditable	true	"Subcategory"
// @Router			/v1/subcategories/{id} [put]
func UpdateSubcategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubcategoryResponse{Error: &s})
		return
	}

	var subcategory models.Subcategory
	err = models.DB.First(&subcategory, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubcategoryResponse{Error: &s})
		return
	}

	var editable SubcategoryEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, SubcategoryResponse{Error: &s})
		return
	}

	updated := editable.model()
	updated.DefaultModel = subcategory.DefaultModel

	err = models.DB.Save(&updated).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubcategoryResponse{Error: &s})
		return
	}

	data := newSubcategory(c, updated)
	c.JSON(http.StatusOK, SubcategoryResponse{Data: &data})
}

// @Summary		Delete subcategory
// @Description	Deletes a subcategory
// @Tags			Subcategories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/subcategories/{id} [delete]
func DeleteSubcategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var subcategory models.Subcategory
	err = models.DB.First(&subcategory, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&subcategory).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
