package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/fintrack-app/backend/internal/controllers/v1"
	"github.com/fintrack-app/backend/internal/models"
	"github.com/fintrack-app/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestExpense(t *testing.T, editable v1.ExpenseEditable, expectedStatus ...int) v1.ExpenseResponse {
	if editable.Date.IsZero() {
		editable.Date = time.Now().UTC()
	}

	if editable.Amount.IsZero() {
		editable.Amount = decimal.NewFromInt(10)
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/expenses", editable)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var expense v1.ExpenseResponse
	test.DecodeResponse(t, &r, &expense)

	return expense
}

// TestExpensesDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestExpensesDBClosed() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestExpense(t, v1.ExpenseEditable{}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/expenses", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.ExpenseListResponse
				test.DecodeResponse(t, &recorder, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
			},
		},
		{
			"Report fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/expenses?reportType=daily", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)
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

// TestExpensesOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestExpensesOptions() {
	tests := []struct {
		name   string
		id     string // path at the Expenses endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No Expense with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Expense exists", createTestExpense(suite.T(), v1.ExpenseEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/expenses", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PUT, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesCreate() {
	category := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Groceries"})

	expense := createTestExpense(suite.T(), v1.ExpenseEditable{
		Date:        time.Date(2024, 3, 15, 18, 43, 0, 0, time.UTC),
		Amount:      decimal.NewFromFloat(14.03),
		Description: "  Lunch  ",
		CategoryID:  &category.Data.ID,
	})

	require.NotNil(suite.T(), expense.Data)
	assert.True(suite.T(), expense.Data.Amount.Equal(decimal.NewFromFloat(14.03)))
	assert.Equal(suite.T(), "Lunch", expense.Data.Description, "Whitespace must be trimmed from the description")
	require.NotNil(suite.T(), expense.Data.CategoryID)
	assert.Equal(suite.T(), category.Data.ID, *expense.Data.CategoryID)
	assert.Nil(suite.T(), expense.Data.SubcategoryID)
	assert.Contains(suite.T(), expense.Data.Links.Self, fmt.Sprintf("/v1/expenses/%s", expense.Data.ID))
}

func (suite *TestSuiteStandard) TestExpensesCreateInvalid() {
	brokenRef := uuid.New()

	tests := []struct {
		name string
		body any
	}{
		{"Empty body", ""},
		{"Broken JSON", `{ "amount": 14.`},
		{"No date", map[string]any{"amount": 14.03}},
		{"No amount", map[string]any{"date": "2024-03-15T18:43:00Z"}},
		{"Negative amount", map[string]any{"date": "2024-03-15T18:43:00Z", "amount": -5}},
		{"Unparseable date", map[string]any{"date": "2024-03-15 18:43", "amount": 14.03}},
		{"Broken category reference", map[string]any{"date": "2024-03-15T18:43:00Z", "amount": 14.03, "categoryId": brokenRef}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/expenses", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesGetSingle() {
	expense := createTestExpense(suite.T(), v1.ExpenseEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing Expense", expense.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET ID nil", uuid.Nil.String(), http.StatusNotFound, http.MethodGet},
		{"GET Non-existing Expense", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID (negative number)", "-56", http.StatusBadRequest, http.MethodGet},
		{"GET Invalid ID (string)", "notAnID", http.StatusBadRequest, http.MethodGet},
		{"DELETE Non-existing Expense", uuid.New().String(), http.StatusNotFound, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/expenses/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

// TestExpensesUpdate verifies that an update replaces all editable
// fields, fields missing from the body are cleared.
func (suite *TestSuiteStandard) TestExpensesUpdate() {
	category := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Groceries"})

	expense := createTestExpense(suite.T(), v1.ExpenseEditable{
		Date:        time.Date(2024, 3, 15, 18, 43, 0, 0, time.UTC),
		Amount:      decimal.NewFromInt(20),
		Description: "Lunch",
		CategoryID:  &category.Data.ID,
	})

	r := test.Request(suite.T(), http.MethodPut, expense.Data.Links.Self, v1.ExpenseEditable{
		Date:   time.Date(2024, 3, 16, 12, 0, 0, 0, time.UTC),
		Amount: decimal.NewFromInt(25),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &updated)

	assert.Equal(suite.T(), expense.Data.ID, updated.Data.ID)
	assert.True(suite.T(), updated.Data.Amount.Equal(decimal.NewFromInt(25)))
	assert.Equal(suite.T(), "", updated.Data.Description, "The description must be replaced, not merged")
	assert.Nil(suite.T(), updated.Data.CategoryID, "The category reference must be replaced, not merged")
}

func (suite *TestSuiteStandard) TestExpensesDelete() {
	expense := createTestExpense(suite.T(), v1.ExpenseEditable{})

	r := test.Request(suite.T(), http.MethodDelete, expense.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, expense.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

// TestExpensesListPagination verifies the pagination arithmetic of the
// expense listing.
func (suite *TestSuiteStandard) TestExpensesListPagination() {
	for i := 0; i < 23; i++ {
		_ = createTestExpense(suite.T(), v1.ExpenseEditable{Amount: decimal.NewFromInt(int64(i + 1))})
	}

	tests := []struct {
		name       string
		query      string
		len        int
		page       int
		totalPages int
	}{
		{"Defaults", "", 10, 1, 3},
		{"Last page is partial", "page=3", 3, 3, 3},
		{"Page past the end is empty", "page=4", 0, 4, 3},
		{"Custom page size", "pageSize=5&page=2", 5, 2, 5},
		{"Page size larger than the set", "pageSize=100", 23, 1, 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/expenses?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.ExpenseListResponse
			test.DecodeResponse(t, &r, &response)

			assert.Len(t, response.Data, tt.len)

			require.NotNil(t, response.Pagination)
			assert.Equal(t, int64(23), response.Pagination.Total)
			assert.Equal(t, tt.page, response.Pagination.Page)
			assert.Equal(t, tt.totalPages, response.Pagination.TotalPages)
		})
	}
}

// TestExpensesListSorted verifies that expenses are listed newest first.
func (suite *TestSuiteStandard) TestExpensesListSorted() {
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{Date: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), Description: "Oldest"})
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{Date: time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC), Description: "Newest"})
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{Date: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), Description: "Middle"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 3)
	assert.Equal(suite.T(), "Newest", response.Data[0].Description)
	assert.Equal(suite.T(), "Middle", response.Data[1].Description)
	assert.Equal(suite.T(), "Oldest", response.Data[2].Description)
}

// TestExpensesListFilterWeek verifies that the week filter restricts the
// listing and that the total amount covers exactly the matching set.
func (suite *TestSuiteStandard) TestExpensesListFilterWeek() {
	now := time.Now().UTC()

	_ = createTestExpense(suite.T(), v1.ExpenseEditable{Date: now, Amount: decimal.NewFromInt(100)})
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{Date: now, Amount: decimal.NewFromInt(150)})
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{Date: now, Amount: decimal.NewFromInt(100)})

	// Well outside the current week
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{Date: now.AddDate(0, 0, -14), Amount: decimal.NewFromInt(999)})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses?filter=week", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Len(suite.T(), response.Data, 3)
	assert.True(suite.T(), response.TotalAmount.Equal(decimal.NewFromInt(350)), "Total amount is %s, expected 350", response.TotalAmount)
	require.NotNil(suite.T(), response.Pagination)
	assert.Equal(suite.T(), int64(3), response.Pagination.Total)
}

func (suite *TestSuiteStandard) TestExpensesListFilterToday() {
	now := time.Now().UTC()

	_ = createTestExpense(suite.T(), v1.ExpenseEditable{Date: now, Amount: decimal.NewFromInt(12)})
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{Date: now.AddDate(0, 0, -2), Amount: decimal.NewFromInt(55)})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses?filter=today", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Len(suite.T(), response.Data, 1)
	assert.True(suite.T(), response.TotalAmount.Equal(decimal.NewFromInt(12)))
}

// TestExpensesListFilterUnknown verifies that an unrecognized filter
// keyword does not restrict the listing.
func (suite *TestSuiteStandard) TestExpensesListFilterUnknown() {
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{Date: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)})
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses?filter=fortnight", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Len(suite.T(), response.Data, 2)
}

func (suite *TestSuiteStandard) TestExpensesListInvalidQuery() {
	for _, query := range []string{"category=notAnID", "subcategory=2"} {
		suite.T().Run(query, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/expenses?%s", query), "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

// TestExpensesReportDaily verifies the weekday report: seven entries in
// weekday order, empty weekdays filled with a zero total.
func (suite *TestSuiteStandard) TestExpensesReportDaily() {
	// A Sunday and two expenses on the following Monday
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{Date: time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(100)})
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{Date: time.Date(2024, 3, 11, 8, 0, 0, 0, time.UTC), Amount: decimal.NewFromFloat(50.5)})
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{Date: time.Date(2024, 3, 11, 20, 0, 0, 0, time.UTC), Amount: decimal.NewFromFloat(49.5)})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses?reportType=daily", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseReportResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Report, 7)
	assert.Equal(suite.T(), "Sunday", response.Report[0].Name)
	assert.Equal(suite.T(), "Saturday", response.Report[6].Name)

	for _, entry := range response.Report {
		switch entry.Name {
		case "Sunday", "Monday":
			assert.True(suite.T(), entry.Total.Equal(decimal.NewFromInt(100)), "%s total is %s, expected 100", entry.Name, entry.Total)
		default:
			assert.True(suite.T(), entry.Total.IsZero(), "%s total is %s, expected 0", entry.Name, entry.Total)
		}
	}

	// The raw records are the highest expenses, largest first
	require.Len(suite.T(), response.Data, 3)
	assert.True(suite.T(), response.Data[0].Amount.Equal(decimal.NewFromInt(100)))
	assert.True(suite.T(), response.Data[1].Amount.Equal(decimal.NewFromFloat(50.5)))
	assert.True(suite.T(), response.Data[2].Amount.Equal(decimal.NewFromFloat(49.5)))
}

// TestExpensesReportMonthly verifies that the monthly report covers the
// current year only, regardless of any filter sent along.
func (suite *TestSuiteStandard) TestExpensesReportMonthly() {
	now := time.Now().UTC()

	_ = createTestExpense(suite.T(), v1.ExpenseEditable{Date: now, Amount: decimal.NewFromInt(42)})
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{Date: now.AddDate(-1, 0, 0), Amount: decimal.NewFromInt(999)})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses?reportType=monthly&filter=today", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseReportResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Report, 12)

	for _, entry := range response.Report {
		if entry.Name == now.Month().String() {
			assert.True(suite.T(), entry.Total.Equal(decimal.NewFromInt(42)), "%s total is %s, expected 42", entry.Name, entry.Total)
		} else {
			assert.True(suite.T(), entry.Total.IsZero(), "%s total is %s, expected 0", entry.Name, entry.Total)
		}
	}
}

// TestExpensesReportWeekly verifies that the weekly report aggregates
// records of the current month into their week buckets.
func (suite *TestSuiteStandard) TestExpensesReportWeekly() {
	now := time.Now().UTC()
	inMonth := time.Date(now.Year(), now.Month(), 10, 12, 0, 0, 0, time.UTC)

	_ = createTestExpense(suite.T(), v1.ExpenseEditable{Date: inMonth, Amount: decimal.NewFromInt(75)})
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{Date: inMonth.AddDate(0, -2, 0), Amount: decimal.NewFromInt(999)})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses?reportType=weekly", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseReportResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotEmpty(suite.T(), response.Report)
	assert.Equal(suite.T(), "Week 1", response.Report[0].Name)

	sum := decimal.Zero
	for _, entry := range response.Report {
		sum = sum.Add(entry.Total)
	}
	assert.True(suite.T(), sum.Equal(decimal.NewFromInt(75)), "summed report total is %s, expected 75", sum)
}

// TestExpensesReportTopRecordsCapped verifies that a report returns at
// most five raw records.
func (suite *TestSuiteStandard) TestExpensesReportTopRecordsCapped() {
	for i := 0; i < 7; i++ {
		_ = createTestExpense(suite.T(), v1.ExpenseEditable{Amount: decimal.NewFromInt(int64(i + 1))})
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses?reportType=daily", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseReportResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 5)
	assert.True(suite.T(), response.Data[0].Amount.Equal(decimal.NewFromInt(7)))
	assert.True(suite.T(), response.Data[4].Amount.Equal(decimal.NewFromInt(3)))
}

// TestExpensesReportUnknownType verifies that an unrecognized report
// type falls back to the plain listing.
func (suite *TestSuiteStandard) TestExpensesReportUnknownType() {
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses?reportType=hourly", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Len(suite.T(), response.Data, 1)
	require.NotNil(suite.T(), response.Pagination, "An unknown report type must answer with the paginated listing")
}

// TestExpensesRankByCategory verifies the category ranking: the category
// parameter restricts the expenses and selects the ranking axis.
func (suite *TestSuiteStandard) TestExpensesRankByCategory() {
	groceries := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Groceries"})
	transport := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Transport"})

	_ = createTestExpense(suite.T(), v1.ExpenseEditable{Amount: decimal.NewFromInt(30), CategoryID: &groceries.Data.ID})
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{Amount: decimal.NewFromInt(20), CategoryID: &groceries.Data.ID})
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{Amount: decimal.NewFromInt(70), CategoryID: &transport.Data.ID})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/expenses?category=%s", groceries.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseReportResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Report, 1, "Only the requested category may be ranked")
	assert.Equal(suite.T(), "Groceries", response.Report[0].Name)
	assert.True(suite.T(), response.Report[0].Total.Equal(decimal.NewFromInt(50)))

	require.Len(suite.T(), response.Data, 2)
	assert.True(suite.T(), response.Data[0].Amount.Equal(decimal.NewFromInt(30)))
}

// TestExpensesRankBySubcategory verifies the subcategory ranking.
func (suite *TestSuiteStandard) TestExpensesRankBySubcategory() {
	groceries := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Groceries"})
	fruit := createTestSubcategory(suite.T(), v1.SubcategoryEditable{Name: "Fruit", CategoryID: groceries.Data.ID})

	_ = createTestExpense(suite.T(), v1.ExpenseEditable{Amount: decimal.NewFromInt(12), CategoryID: &groceries.Data.ID, SubcategoryID: &fruit.Data.ID})
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{Amount: decimal.NewFromInt(8), CategoryID: &groceries.Data.ID})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/expenses?subcategory=%s", fruit.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseReportResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Report, 1)
	assert.Equal(suite.T(), "Fruit", response.Report[0].Name)
	assert.True(suite.T(), response.Report[0].Total.Equal(decimal.NewFromInt(12)))
}

// TestExpensesRankPrecedence verifies that the dimension parameters win
// over reportType and that category wins over subcategory.
func (suite *TestSuiteStandard) TestExpensesRankPrecedence() {
	groceries := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Groceries"})
	fruit := createTestSubcategory(suite.T(), v1.SubcategoryEditable{Name: "Fruit", CategoryID: groceries.Data.ID})

	_ = createTestExpense(suite.T(), v1.ExpenseEditable{Amount: decimal.NewFromInt(25), CategoryID: &groceries.Data.ID, SubcategoryID: &fruit.Data.ID})

	tests := []struct {
		name  string
		query string
	}{
		{"Category wins over reportType", fmt.Sprintf("category=%s&reportType=daily", groceries.Data.ID)},
		{"Category wins over subcategory", fmt.Sprintf("category=%s&subcategory=%s", groceries.Data.ID, fruit.Data.ID)},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/expenses?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.ExpenseReportResponse
			test.DecodeResponse(t, &r, &response)

			require.Len(t, response.Report, 1)
			assert.Equal(t, "Groceries", response.Report[0].Name)
			assert.True(t, response.Report[0].Total.Equal(decimal.NewFromInt(25)))
		})
	}
}
