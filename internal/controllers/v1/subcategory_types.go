package v1

import (
	"fmt"

	"github.com/fintrack-app/backend/internal/httputil"
	"github.com/fintrack-app/backend/internal/models"
	ft_uuid "github.com/fintrack-app/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SubcategoryEditable struct {
	Name       string    `json:"name" binding:"required" example:"Vegetables"`                                      // Name of the subcategory
	CategoryID uuid.UUID `json:"categoryId" binding:"required" example:"fd81dc45-a3a2-468e-a6fa-b2618f30aa45"` // ID of the category this subcategory belongs to
}

// model returns the database resource for the API representation of the editable fields
func (editable SubcategoryEditable) model() models.Subcategory {
	return models.Subcategory{
		Name:       editable.Name,
		CategoryID: editable.CategoryID,
	}
}

type SubcategoryLinks struct {
	Self     string `json:"self" example:"https://example.com/v1/subcategories/d430d7c3-d14c-4712-9336-ee56965a6673"`   // The subcategory itself
	Category string `json:"category" example:"https://example.com/v1/categories/fd81dc45-a3a2-468e-a6fa-b2618f30aa45"` // The category this subcategory belongs to
}

// Subcategory is the representation of a Subcategory in API v1.
type Subcategory struct {
	models.DefaultModel
	SubcategoryEditable
	Links SubcategoryLinks `json:"links"`
}

// newSubcategory returns the API v1 representation of the resource
func newSubcategory(c *gin.Context, model models.Subcategory) Subcategory {
	url := httputil.RequestHost(c)

	return Subcategory{
		DefaultModel: model.DefaultModel,
		SubcategoryEditable: SubcategoryEditable{
			Name:       model.Name,
			CategoryID: model.CategoryID,
		},
		Links: SubcategoryLinks{
			Self:     fmt.Sprintf("%s/v1/subcategories/%s", url, model.ID),
			Category: fmt.Sprintf("%s/v1/categories/%s", url, model.CategoryID),
		},
	}
}

type SubcategoryResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Subcategory `json:"data"`                                                          // The Subcategory data
}

type SubcategoryListResponse struct {
	Data  []Subcategory `json:"data"`                                                          // List of subcategories
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type SubcategoryQueryFilter struct {
	CategoryID ft_uuid.UUID `form:"category"` // Only return subcategories of this category
}
