package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Subcategory represents a subdivision of a Category.
//
// Deleting a category does not cascade to its subcategories in the
// schema, the category controller orchestrates that deletion.
type Subcategory struct {
	DefaultModel
	Name       string
	CategoryID uuid.UUID
	Category   Category `json:"-"`
}

var (
	ErrSubcategoryNameRequired     = errors.New("the subcategory name must be set")
	ErrSubcategoryCategoryRequired = errors.New("the subcategory must reference a category")
	ErrReferencedResourceMissing   = errors.New("a resource referenced in the request does not exist")
)

// BeforeSave trims whitespace and validates the subcategory.
func (s *Subcategory) BeforeSave(_ *gorm.DB) error {
	s.Name = strings.TrimSpace(s.Name)
	if s.Name == "" {
		return ErrSubcategoryNameRequired
	}

	if s.CategoryID == uuid.Nil {
		return ErrSubcategoryCategoryRequired
	}

	return nil
}
