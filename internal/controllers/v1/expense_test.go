package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	v1 "github.com/spendwise/backend/internal/controllers/v1"
	"github.com/spendwise/backend/internal/models"
	"github.com/spendwise/backend/test"
	"github.com/stretchr/testify/assert"
)

func createTestExpense(t *testing.T, e v1.ExpenseEditable, expectedStatus ...int) v1.ExpenseResponse {
	if e.UserID == uuid.Nil {
		e.UserID = createTestUser(t, v1.UserEditable{Name: "Test user"}).Data.ID
	}

	if e.Amount.IsZero() {
		e.Amount = decimal.NewFromInt(10)
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.ExpenseEditable{e}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/expenses", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var expense v1.ExpenseCreateResponse
	test.DecodeResponse(t, &r, &expense)

	if r.Code == http.StatusCreated {
		return expense.Data[0]
	}

	return v1.ExpenseResponse{}
}

func (suite *TestSuiteStandard) TestExpensesCreate() {
	expense := createTestExpense(suite.T(), v1.ExpenseEditable{
		Amount:      decimal.NewFromFloat(14.5),
		Description: "Groceries for the week",
	})

	suite.Assert().True(expense.Data.Amount.Equal(decimal.NewFromFloat(14.5)))
	suite.Assert().Equal("Groceries for the week", expense.Data.Description)
	suite.Assert().Contains(expense.Data.Links.Self, fmt.Sprintf("/v1/expenses/%s", expense.Data.ID))
}

func (suite *TestSuiteStandard) TestExpensesCreateUnknownUser() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/expenses", []v1.ExpenseEditable{{
		UserID: uuid.New(),
		Amount: decimal.NewFromInt(10),
	}})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestExpensesCreateUnknownCategory() {
	user := createTestUser(suite.T(), v1.UserEditable{Name: "No category"})
	categoryID := uuid.New()

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/expenses", []v1.ExpenseEditable{{
		UserID:     user.Data.ID,
		CategoryID: &categoryID,
		Amount:     decimal.NewFromInt(10),
	}})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestExpensesCreateInvalidStatus() {
	user := createTestUser(suite.T(), v1.UserEditable{Name: "Invalid status"})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/expenses", []v1.ExpenseEditable{{
		UserID: user.Data.ID,
		Amount: decimal.NewFromInt(10),
		Status: "MAYBE",
	}})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.ExpenseCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Contains(*response.Data[0].Error, "PENDING, APPROVED or REJECTED")
}

func (suite *TestSuiteStandard) TestExpensesCreateMatchRuleCategorization() {
	user := createTestUser(suite.T(), v1.UserEditable{Name: "Auto categorized"})
	category := createTestCategory(suite.T(), v1.CategoryEditable{UserID: user.Data.ID, Name: "Groceries"})

	createTestMatchRule(suite.T(), v1.MatchRuleEditable{
		UserID:     user.Data.ID,
		CategoryID: category.Data.ID,
		Match:      "REWE*",
	})

	// An expense without a category gets one from the match rules
	expense := createTestExpense(suite.T(), v1.ExpenseEditable{
		UserID:      user.Data.ID,
		Description: "REWE Wilhelmstraße",
	})
	suite.Require().NotNil(expense.Data.CategoryID)
	suite.Assert().Equal(category.Data.ID, *expense.Data.CategoryID)

	// An expense that no rule matches stays uncategorized
	expense = createTestExpense(suite.T(), v1.ExpenseEditable{
		UserID:      user.Data.ID,
		Description: "Cinema tickets",
	})
	suite.Assert().Nil(expense.Data.CategoryID)
}

func (suite *TestSuiteStandard) TestExpensesGet() {
	created := createTestExpense(suite.T(), v1.ExpenseEditable{Description: "Get me"})

	r := test.Request(suite.T(), http.MethodGet, created.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var expense v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &expense)
	suite.Assert().Equal("Get me", expense.Data.Description)

	// The status defaults to PENDING
	suite.Assert().Equal(models.ExpenseStatusPending, expense.Data.Status)
}

func (suite *TestSuiteStandard) TestExpensesList() {
	user := createTestUser(suite.T(), v1.UserEditable{Name: "Expense sorting"})

	createTestExpense(suite.T(), v1.ExpenseEditable{
		UserID:      user.Data.ID,
		Description: "Older",
		Date:        time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	})
	createTestExpense(suite.T(), v1.ExpenseEditable{
		UserID:      user.Data.ID,
		Description: "Newer",
		Date:        time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 2)

	// Expenses are sorted by date, newest first
	suite.Assert().Equal("Newer", response.Data[0].Description)
	suite.Assert().Equal("Older", response.Data[1].Description)
}

func (suite *TestSuiteStandard) TestExpensesListFilter() {
	user := createTestUser(suite.T(), v1.UserEditable{Name: "Filtered expenses"})
	category := createTestCategory(suite.T(), v1.CategoryEditable{UserID: user.Data.ID, Name: "Food"})

	createTestExpense(suite.T(), v1.ExpenseEditable{
		UserID:      user.Data.ID,
		CategoryID:  &category.Data.ID,
		Status:      models.ExpenseStatusApproved,
		Description: "Supermarket run",
		Date:        time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	})
	createTestExpense(suite.T(), v1.ExpenseEditable{
		UserID:      user.Data.ID,
		Description: "Cinema tickets",
		Date:        time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
	})

	tests := []struct {
		query string
		count int
	}{
		{fmt.Sprintf("user=%s", user.Data.ID), 2},
		{fmt.Sprintf("category=%s", category.Data.ID), 1},
		{"status=APPROVED", 1},
		{"description=cinema", 1},
		{"from=2024-02-01", 1},
		{"to=2024-01-31", 1},
		{"from=2024-01-01&to=2024-02-28", 2},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/expenses?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.ExpenseListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesUpdate() {
	created := createTestExpense(suite.T(), v1.ExpenseEditable{Description: "Pending"})

	r := test.Request(suite.T(), http.MethodPatch, created.Data.Links.Self, map[string]any{
		"status": "APPROVED",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var expense v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &expense)
	suite.Assert().Equal(models.ExpenseStatusApproved, expense.Data.Status)
	suite.Assert().Equal("Pending", expense.Data.Description)
}

func (suite *TestSuiteStandard) TestExpensesDelete() {
	created := createTestExpense(suite.T(), v1.ExpenseEditable{})

	r := test.Request(suite.T(), http.MethodDelete, created.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, created.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestExpensesDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
