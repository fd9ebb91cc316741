package models_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spendwise/backend/internal/models"
	"github.com/spendwise/backend/internal/types"
)

func (suite *TestSuiteStandard) TestExpenseReport() {
	user := suite.createTestUser(models.User{Name: "Report"})
	food := suite.createTestCategory(models.Category{UserID: user.ID, Name: "Food"})

	suite.createTestExpense(models.Expense{
		UserID:     user.ID,
		CategoryID: &food.ID,
		Amount:     decimal.NewFromInt(100),
		Status:     models.ExpenseStatusApproved,
		Date:       time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	})

	suite.createTestExpense(models.Expense{
		UserID:     user.ID,
		CategoryID: &food.ID,
		Amount:     decimal.NewFromInt(50),
		Status:     models.ExpenseStatusPending,
		Date:       time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
	})

	// Uncategorized, shows up with an empty category name
	suite.createTestExpense(models.Expense{
		UserID: user.ID,
		Amount: decimal.NewFromInt(30),
		Status: models.ExpenseStatusApproved,
		Date:   time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC),
	})

	// Outside of the date window
	suite.createTestExpense(models.Expense{
		UserID: user.ID,
		Amount: decimal.NewFromInt(999),
		Status: models.ExpenseStatusApproved,
		Date:   time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	})

	report, err := models.GetExpenseReport(
		user.ID,
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC),
	)
	suite.Require().Nil(err)

	suite.Require().Len(report, 2)

	suite.Assert().Equal("Food", report[0].CategoryName)
	suite.Assert().Equal(types.NewMonth(2024, 1), report[0].Month)
	suite.Assert().Equal(int64(2), report[0].Count)
	suite.Assert().True(report[0].Amount.Equal(decimal.NewFromInt(150)), "Amount is %s, should be 150", report[0].Amount)

	suite.Assert().Equal("", report[1].CategoryName)
	suite.Assert().Equal(types.NewMonth(2024, 2), report[1].Month)
	suite.Assert().Equal(int64(1), report[1].Count)
	suite.Assert().True(report[1].Amount.Equal(decimal.NewFromInt(30)), "Amount is %s, should be 30", report[1].Amount)
}

func (suite *TestSuiteStandard) TestExpenseReportEmpty() {
	report, err := models.GetExpenseReport(
		uuid.New(),
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	)
	suite.Require().Nil(err)
	suite.Assert().Empty(report)
}
