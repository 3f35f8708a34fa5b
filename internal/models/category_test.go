package models_test

import (
	"github.com/fintrack-app/backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCategoryNameRequired() {
	for _, name := range []string{"", "   "} {
		category := models.Category{Name: name}

		err := models.DB.Create(&category).Error
		assert.ErrorIs(suite.T(), err, models.ErrCategoryNameRequired)
	}
}

func (suite *TestSuiteStandard) TestCategoryNotFoundMessage() {
	err := models.DB.First(&models.Category{}, uuid.New()).Error

	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
	assert.Equal(suite.T(), "there is no category matching your query", err.Error())
}
