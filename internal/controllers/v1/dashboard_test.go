package v1_test

import (
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	v1 "github.com/spendwise/backend/internal/controllers/v1"
	"github.com/spendwise/backend/internal/models"
	"github.com/spendwise/backend/internal/types"
	"github.com/spendwise/backend/test"
)

func (suite *TestSuiteStandard) TestDashboard() {
	user := createTestUser(suite.T(), v1.UserEditable{Name: "Dashboard"})
	category := createTestCategory(suite.T(), v1.CategoryEditable{UserID: user.Data.ID, Name: "Food"})

	createTestBudget(suite.T(), v1.BudgetEditable{UserID: user.Data.ID, Amount: decimal.NewFromInt(1500)})

	// The dashboard counts expenses of every status
	createTestExpense(suite.T(), v1.ExpenseEditable{
		UserID:     user.Data.ID,
		CategoryID: &category.Data.ID,
		Amount:     decimal.NewFromInt(300),
		Status:     models.ExpenseStatusApproved,
		Date:       time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	})
	createTestExpense(suite.T(), v1.ExpenseEditable{
		UserID: user.Data.ID,
		Amount: decimal.NewFromInt(100),
		Date:   time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
	})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/dashboard?user=%s", user.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(int64(2), response.Data.TotalExpenses)
	suite.Assert().True(response.Data.TotalAmountSpent.Equal(decimal.NewFromInt(400)))

	// 400 of 1500, rounded to two decimal places
	suite.Assert().True(response.Data.BudgetUsagePercentage.Equal(decimal.RequireFromString("26.67")))

	suite.Require().Len(response.Data.CategoryBreakdown, 1)
	suite.Assert().Equal("Food", response.Data.CategoryBreakdown[0].CategoryName)

	suite.Require().Len(response.Data.MonthlyTrend, 2)
	suite.Assert().Equal(types.NewMonth(2024, 1), response.Data.MonthlyTrend[0].Period)
	suite.Assert().Equal(types.NewMonth(2024, 2), response.Data.MonthlyTrend[1].Period)

	suite.Assert().Len(response.Data.RecentExpenses, 2)
}

func (suite *TestSuiteStandard) TestDashboardUnknownUser() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/dashboard?user=6a8e40e8-8806-47f3-a12e-ec45e43e4b3b", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(int64(0), response.Data.TotalExpenses)
	suite.Assert().True(response.Data.TotalAmountSpent.IsZero())
	suite.Assert().Empty(response.Data.RecentExpenses)
}

func (suite *TestSuiteStandard) TestDashboardUserParameter() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/dashboard", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Contains(*response.Error, "user parameter")
}

func (suite *TestSuiteStandard) TestDashboardDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/dashboard?user=6a8e40e8-8806-47f3-a12e-ec45e43e4b3b", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
