package v1

import (
	"net/http"

	"github.com/fintrack-app/backend/internal/httputil"
	"github.com/fintrack-app/backend/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCategoryList)
		r.GET("", GetCategories)
		r.POST("", CreateCategory)
	}

	// Category with ID
	{
		r.OPTIONS("/:id", OptionsCategoryDetail)
		r.GET("/:id", GetCategory)
		r.PUT("/:id", UpdateCategory)
		r.DELETE("/:id", DeleteCategory)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/categories/{id} [options]
func OptionsCategoryDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.First(&models.Category{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPutDelete(c)
}

// @Summary		Get categories
// @Description	Returns the list of all categories
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Failure		500	{object}	CategoryListResponse
// @Router			/v1/categories [get]
func GetCategories(c *gin.Context) {
	var categories []models.Category
	err := models.DB.Order("name ASC").Find(&categories).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryListResponse{Error: &s})
		return
	}

	data := make([]Category, 0, len(categories))
	for _, category := range categories {
		data = append(data, newCategory(c, category))
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: data})
}

// @Summary		Create category
// @Description	Creates a new category
// @Tags			Categories
// @Produce		json
// @Success		201			{object}	CategoryResponse
// @Failure		400			{object}	CategoryResponse
// @Failure		500			{object}	CategoryResponse
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories [post]
func CreateCategory(c *gin.Context) {
	var editable CategoryEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, CategoryResponse{Error: &s})
		return
	}

	category := editable.model()
	err = models.DB.Create(&category).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &s})
		return
	}

	data := newCategory(c, category)
	c.JSON(http.StatusCreated, CategoryResponse{Data: &data})
}

// @Summary		Get category
// @Description	Returns a specific category
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryResponse
// @Failure		400	{object}	CategoryResponse
// @Failure		404	{object}	CategoryResponse
// @Failure		500	{object}	CategoryResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/categories/{id} [get]
func GetCategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &s})
		return
	}

	var category models.Category
	err = models.DB.First(&category, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &s})
		return
	}

	data := newCategory(c, category)
	c.JSON(http.StatusOK, CategoryResponse{Data: &data})
}

// @Summary		Replace category
// @Description	Replaces an existing category with the submitted data
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		200			{object}	CategoryResponse
// @Failure		400			{object}	CategoryResponse
// @Failure		404			{object}	CategoryResponse
// @Failure		500			{object}	CategoryResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories/{id} [put]
func UpdateCategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &s})
		return
	}

	var category models.Category
	err = models.DB.First(&category, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &s})
		return
	}

	var editable CategoryEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, CategoryResponse{Error: &s})
		return
	}

	updated := editable.model()
	updated.DefaultModel = category.DefaultModel

	err = models.DB.Save(&updated).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &s})
		return
	}

	data := newCategory(c, updated)
	c.JSON(http.StatusOK, CategoryResponse{Data: &data})
}

// @Summary		Delete category
// @Description	Deletes a category and all of its subcategories. The store does not cascade, the deletion of the subcategories is orchestrated here.
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/categories/{id} [delete]
func DeleteCategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var category models.Category
	err = models.DB.First(&category, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	// Subcategories go first so that no subcategory is left behind with
	// a dangling category reference
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("category_id = ?", category.ID).Delete(&models.Subcategory{}).Error
		if err != nil {
			return err
		}

		return tx.Delete(&category).Error
	})
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
