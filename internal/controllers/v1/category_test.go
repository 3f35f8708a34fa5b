package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/fintrack-app/backend/internal/controllers/v1"
	"github.com/fintrack-app/backend/internal/models"
	"github.com/fintrack-app/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestCategory(t *testing.T, editable v1.CategoryEditable, expectedStatus ...int) v1.CategoryResponse {
	if editable.Name == "" {
		editable.Name = uuid.NewString()
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/categories", editable)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var category v1.CategoryResponse
	test.DecodeResponse(t, &r, &category)

	return category
}

// TestCategoriesDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestCategoriesDBClosed() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestCategory(t, v1.CategoryEditable{}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/categories", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.CategoryListResponse
				test.DecodeResponse(t, &recorder, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}

// TestCategoriesOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestCategoriesOptions() {
	tests := []struct {
		name   string
		id     string // path at the Categories endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No Category with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Category exists", createTestCategory(suite.T(), v1.CategoryEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/categories", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PUT, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesCreate() {
	category := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Groceries"})

	require.NotNil(suite.T(), category.Data)
	assert.Equal(suite.T(), "Groceries", category.Data.Name)
	assert.NotEqual(suite.T(), uuid.Nil, category.Data.ID)
	assert.Contains(suite.T(), category.Data.Links.Subcategories, fmt.Sprintf("/v1/subcategories?category=%s", category.Data.ID))
}

func (suite *TestSuiteStandard) TestCategoriesCreateInvalid() {
	tests := []struct {
		name string
		body any
	}{
		{"Empty body", ""},
		{"Broken JSON", `{ "name": "Groc`},
		{"No name", map[string]string{}},
		{"Whitespace name", map[string]string{"name": "   "}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/categories", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

// TestCategoriesGetSorted verifies that the category list is sorted by
// name, not creation order.
func (suite *TestSuiteStandard) TestCategoriesGetSorted() {
	_ = createTestCategory(suite.T(), v1.CategoryEditable{Name: "Transport"})
	_ = createTestCategory(suite.T(), v1.CategoryEditable{Name: "Groceries"})
	_ = createTestCategory(suite.T(), v1.CategoryEditable{Name: "Rent"})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.Len(suite.T(), response.Data, 3)
	assert.Equal(suite.T(), "Groceries", response.Data[0].Name)
	assert.Equal(suite.T(), "Rent", response.Data[1].Name)
	assert.Equal(suite.T(), "Transport", response.Data[2].Name)
}

func (suite *TestSuiteStandard) TestCategoriesGetSingle() {
	category := createTestCategory(suite.T(), v1.CategoryEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing Category", category.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET ID nil", uuid.Nil.String(), http.StatusNotFound, http.MethodGet},
		{"GET Non-existing Category", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID (negative number)", "-56", http.StatusBadRequest, http.MethodGet},
		{"GET Invalid ID (string)", "notAnID", http.StatusBadRequest, http.MethodGet},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/categories/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesUpdate() {
	category := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Groceries"})

	r := test.Request(suite.T(), http.MethodPut, category.Data.Links.Self, v1.CategoryEditable{Name: "Food"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &updated)

	assert.Equal(suite.T(), "Food", updated.Data.Name)
	assert.Equal(suite.T(), category.Data.ID, updated.Data.ID)
}

func (suite *TestSuiteStandard) TestCategoriesUpdateInvalid() {
	category := createTestCategory(suite.T(), v1.CategoryEditable{})

	tests := []struct {
		name   string
		id     string
		body   any
		status int
	}{
		{"Invalid body", category.Data.ID.String(), `{ "name": 2" }`, http.StatusBadRequest},
		{"Non-existing Category", uuid.New().String(), v1.CategoryEditable{Name: "Nope"}, http.StatusNotFound},
		{"Invalid ID", "stillNotAnID", v1.CategoryEditable{Name: "Nope"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPut, fmt.Sprintf("http://example.com/v1/categories/%s", tt.id), tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

// TestCategoriesDeleteCascades verifies that deleting a category also
// deletes its subcategories.
func (suite *TestSuiteStandard) TestCategoriesDeleteCascades() {
	category := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Groceries"})
	other := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Transport"})

	subcategory := createTestSubcategory(suite.T(), v1.SubcategoryEditable{Name: "Fruit", CategoryID: category.Data.ID})
	kept := createTestSubcategory(suite.T(), v1.SubcategoryEditable{Name: "Fuel", CategoryID: other.Data.ID})

	r := test.Request(suite.T(), http.MethodDelete, category.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, category.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodGet, subcategory.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	// Subcategories of other categories are untouched
	r = test.Request(suite.T(), http.MethodGet, kept.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestCategoriesDelete() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Delete Existing Category", createTestCategory(suite.T(), v1.CategoryEditable{}).Data.ID.String(), http.StatusNoContent},
		{"Delete Non-existing Category", uuid.New().String(), http.StatusNotFound},
		{"Delete Invalid ID", "notAnID", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodDelete, fmt.Sprintf("http://example.com/v1/categories/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}
