package v1_test

import (
	"net/http"

	v1 "github.com/spendwise/backend/internal/controllers/v1"
	"github.com/spendwise/backend/test"
)

func (suite *TestSuiteStandard) TestGetRoot() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal("http://example.com/v1/budgets", response.Links.Budgets)
	suite.Assert().Equal("http://example.com/v1/categories", response.Links.Categories)
	suite.Assert().Equal("http://example.com/v1/dashboard", response.Links.Dashboard)
	suite.Assert().Equal("http://example.com/v1/expenses", response.Links.Expenses)
	suite.Assert().Equal("http://example.com/v1/match-rules", response.Links.MatchRules)
	suite.Assert().Equal("http://example.com/v1/notifications", response.Links.Notifications)
	suite.Assert().Equal("http://example.com/v1/reports/expenses", response.Links.Reports)
	suite.Assert().Equal("http://example.com/v1/teams", response.Links.Teams)
	suite.Assert().Equal("http://example.com/v1/users", response.Links.Users)
}

func (suite *TestSuiteStandard) TestOptionsRoot() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, DELETE", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestCleanup() {
	user := createTestUser(suite.T(), v1.UserEditable{Name: "Delete everything"})
	category := createTestCategory(suite.T(), v1.CategoryEditable{UserID: user.Data.ID})
	createTestExpense(suite.T(), v1.ExpenseEditable{UserID: user.Data.ID, CategoryID: &category.Data.ID})
	createTestBudget(suite.T(), v1.BudgetEditable{UserID: user.Data.ID})

	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// All resources are gone
	for _, path := range []string{"users", "categories", "expenses", "budgets"} {
		r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/"+path, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

		var response struct {
			Data []any `json:"data"`
		}
		test.DecodeResponse(suite.T(), &r, &response)
		suite.Assert().Empty(response.Data, "resources left over at /v1/%s", path)
	}
}

func (suite *TestSuiteStandard) TestCleanupWrongConfirmation() {
	user := createTestUser(suite.T(), v1.UserEditable{Name: "Survivor"})

	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=on-second-thought-no", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodGet, user.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestCleanupDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
