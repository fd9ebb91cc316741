package models_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spendwise/backend/internal/models"
)

func (suite *TestSuiteStandard) TestBudgetAlerts() {
	user := suite.createTestUser(models.User{Name: "Alerts"})

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	budget := suite.createTestBudget(models.Budget{
		UserID:         user.ID,
		Amount:         decimal.NewFromInt(1000),
		Period:         models.BudgetPeriodMonthly,
		StartDate:      start,
		EndDate:        end,
		AlertThreshold: decimal.NewFromInt(80),
	})

	suite.createTestExpense(models.Expense{
		UserID: user.ID,
		Amount: decimal.NewFromInt(850),
		Status: models.ExpenseStatusApproved,
		Date:   time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	})

	alerts, err := models.CheckBudgetAlerts(user.ID)
	suite.Require().Nil(err)

	suite.Require().Len(alerts, 1)
	suite.Assert().Equal(budget.ID, alerts[0].BudgetID)
	suite.Assert().Nil(alerts[0].CategoryID)
	suite.Assert().True(alerts[0].AmountSpent.Equal(decimal.NewFromInt(850)), "AmountSpent is %s, should be 850", alerts[0].AmountSpent)
	suite.Assert().True(alerts[0].UsagePercentage.Equal(decimal.NewFromInt(85)), "UsagePercentage is %s, should be 85", alerts[0].UsagePercentage)
	suite.Assert().True(alerts[0].AlertThreshold.Equal(decimal.NewFromInt(80)), "AlertThreshold is %s, should be 80", alerts[0].AlertThreshold)
	suite.Assert().Equal(models.BudgetPeriodMonthly, alerts[0].Period)
}

func (suite *TestSuiteStandard) TestBudgetAlertsBelowThreshold() {
	user := suite.createTestUser(models.User{Name: "No alerts"})

	suite.createTestBudget(models.Budget{
		UserID:         user.ID,
		Amount:         decimal.NewFromInt(1000),
		Period:         models.BudgetPeriodMonthly,
		StartDate:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		AlertThreshold: decimal.NewFromInt(80),
	})

	suite.createTestExpense(models.Expense{
		UserID: user.ID,
		Amount: decimal.NewFromInt(500),
		Status: models.ExpenseStatusApproved,
		Date:   time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	})

	alerts, err := models.CheckBudgetAlerts(user.ID)
	suite.Require().Nil(err)
	suite.Assert().Empty(alerts)
}

// A budget exactly at its threshold alerts, the comparison is inclusive.
func (suite *TestSuiteStandard) TestBudgetAlertsThresholdInclusive() {
	user := suite.createTestUser(models.User{Name: "Boundary"})

	suite.createTestBudget(models.Budget{
		UserID:         user.ID,
		Amount:         decimal.NewFromInt(1000),
		Period:         models.BudgetPeriodMonthly,
		StartDate:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		AlertThreshold: decimal.NewFromInt(80),
	})

	suite.createTestExpense(models.Expense{
		UserID: user.ID,
		Amount: decimal.NewFromInt(800),
		Status: models.ExpenseStatusApproved,
		Date:   time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	})

	alerts, err := models.CheckBudgetAlerts(user.ID)
	suite.Require().Nil(err)
	suite.Require().Len(alerts, 1)
	suite.Assert().True(alerts[0].UsagePercentage.Equal(decimal.NewFromInt(80)), "UsagePercentage is %s, should be 80", alerts[0].UsagePercentage)
}

// An overall budget counts expenses of every category.
func (suite *TestSuiteStandard) TestBudgetAlertsOverallBudget() {
	user := suite.createTestUser(models.User{Name: "Overall"})
	food := suite.createTestCategory(models.Category{UserID: user.ID, Name: "Food"})

	suite.createTestBudget(models.Budget{
		UserID:         user.ID,
		Amount:         decimal.NewFromInt(1000),
		Period:         models.BudgetPeriodMonthly,
		StartDate:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		AlertThreshold: decimal.NewFromInt(75),
	})

	suite.createTestExpense(models.Expense{
		UserID:     user.ID,
		CategoryID: &food.ID,
		Amount:     decimal.NewFromInt(500),
		Status:     models.ExpenseStatusApproved,
		Date:       time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	})

	suite.createTestExpense(models.Expense{
		UserID: user.ID,
		Amount: decimal.NewFromInt(300),
		Status: models.ExpenseStatusApproved,
		Date:   time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
	})

	alerts, err := models.CheckBudgetAlerts(user.ID)
	suite.Require().Nil(err)
	suite.Require().Len(alerts, 1)
	suite.Assert().True(alerts[0].UsagePercentage.Equal(decimal.NewFromInt(80)), "UsagePercentage is %s, should be 80", alerts[0].UsagePercentage)
}

// A category budget only counts expenses of its own category.
func (suite *TestSuiteStandard) TestBudgetAlertsCategoryBudget() {
	user := suite.createTestUser(models.User{Name: "Category alerts"})
	food := suite.createTestCategory(models.Category{UserID: user.ID, Name: "Food"})
	transport := suite.createTestCategory(models.Category{UserID: user.ID, Name: "Transport"})

	suite.createTestBudget(models.Budget{
		UserID:         user.ID,
		CategoryID:     &food.ID,
		Amount:         decimal.NewFromInt(100),
		Period:         models.BudgetPeriodMonthly,
		StartDate:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		AlertThreshold: decimal.NewFromInt(80),
	})

	// Transport spending must not count toward the food budget
	suite.createTestExpense(models.Expense{
		UserID:     user.ID,
		CategoryID: &transport.ID,
		Amount:     decimal.NewFromInt(500),
		Status:     models.ExpenseStatusApproved,
		Date:       time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	})

	suite.createTestExpense(models.Expense{
		UserID:     user.ID,
		CategoryID: &food.ID,
		Amount:     decimal.NewFromInt(50),
		Status:     models.ExpenseStatusApproved,
		Date:       time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	})

	alerts, err := models.CheckBudgetAlerts(user.ID)
	suite.Require().Nil(err)
	suite.Assert().Empty(alerts)

	suite.createTestExpense(models.Expense{
		UserID:     user.ID,
		CategoryID: &food.ID,
		Amount:     decimal.NewFromInt(40),
		Status:     models.ExpenseStatusApproved,
		Date:       time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
	})

	alerts, err = models.CheckBudgetAlerts(user.ID)
	suite.Require().Nil(err)
	suite.Require().Len(alerts, 1)
	suite.Assert().Equal(&food.ID, alerts[0].CategoryID)
	suite.Assert().True(alerts[0].UsagePercentage.Equal(decimal.NewFromInt(90)), "UsagePercentage is %s, should be 90", alerts[0].UsagePercentage)
}

// Only approved expenses within the budget's date range count.
func (suite *TestSuiteStandard) TestBudgetAlertsWindowAndStatus() {
	user := suite.createTestUser(models.User{Name: "Window"})

	suite.createTestBudget(models.Budget{
		UserID:         user.ID,
		Amount:         decimal.NewFromInt(100),
		Period:         models.BudgetPeriodMonthly,
		StartDate:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		AlertThreshold: decimal.NewFromInt(80),
	})

	// Outside of the date range
	suite.createTestExpense(models.Expense{
		UserID: user.ID,
		Amount: decimal.NewFromInt(90),
		Status: models.ExpenseStatusApproved,
		Date:   time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	})

	// Not approved
	suite.createTestExpense(models.Expense{
		UserID: user.ID,
		Amount: decimal.NewFromInt(90),
		Status: models.ExpenseStatusPending,
		Date:   time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	})

	alerts, err := models.CheckBudgetAlerts(user.ID)
	suite.Require().Nil(err)
	suite.Assert().Empty(alerts)
}

func (suite *TestSuiteStandard) TestBudgetAlertsDBError() {
	suite.CloseDB()

	_, err := models.CheckBudgetAlerts(uuid.New())
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
