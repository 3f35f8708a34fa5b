package v1

import (
	"fmt"

	"github.com/fintrack-app/backend/internal/httputil"
	"github.com/fintrack-app/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type CategoryEditable struct {
	Name string `json:"name" binding:"required" example:"Groceries"` // Name of the category
}

// model returns the database resource for the API representation of the editable fields
func (editable CategoryEditable) model() models.Category {
	return models.Category{
		Name: editable.Name,
	}
}

type CategoryLinks struct {
	Self          string `json:"self" example:"https://example.com/v1/categories/d430d7c3-d14c-4712-9336-ee56965a6673"`                      // The category itself
	Subcategories string `json:"subcategories" example:"https://example.com/v1/subcategories?category=d430d7c3-d14c-4712-9336-ee56965a6673"` // Subcategories of this category
}

// Category is the representation of a Category in API v1.
type Category struct {
	models.DefaultModel
	CategoryEditable
	Links CategoryLinks `json:"links"`
}

// newCategory returns the API v1 representation of the resource
func newCategory(c *gin.Context, model models.Category) Category {
	url := httputil.RequestHost(c)

	return Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			Name: model.Name,
		},
		Links: CategoryLinks{
			Self:          fmt.Sprintf("%s/v1/categories/%s", url, model.ID),
			Subcategories: fmt.Sprintf("%s/v1/subcategories?category=%s", url, model.ID),
		},
	}
}

type CategoryResponse struct {
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Category `json:"data"`                                                          // The Category data
}

type CategoryListResponse struct {
	Data  []Category `json:"data"`                                                          // List of categories
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
