package models

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Category represents a category that expenses are recorded against.
type Category struct {
	DefaultModel
	Name string
}

var ErrCategoryNameRequired = errors.New("the category name must be set")

// BeforeSave trims whitespace and validates the category.
func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return ErrCategoryNameRequired
	}

	return nil
}
