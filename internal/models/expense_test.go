package models_test

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/spendwise/backend/internal/models"
)

func (suite *TestSuiteStandard) TestExpenseAmountMustBePositive() {
	user := suite.createTestUser(models.User{Name: "Expense validation"})

	expense := models.Expense{
		UserID: user.ID,
		Amount: decimal.Zero,
	}

	err := models.DB.Create(&expense).Error
	suite.Assert().ErrorIs(err, models.ErrExpenseAmountNotPositive)
}

func (suite *TestSuiteStandard) TestExpenseStatusValidation() {
	user := suite.createTestUser(models.User{Name: "Status"})

	expense := models.Expense{
		UserID: user.ID,
		Amount: decimal.NewFromInt(10),
		Status: "MAYBE",
	}

	err := models.DB.Create(&expense).Error
	suite.Assert().ErrorIs(err, models.ErrExpenseStatusInvalid)
}

func (suite *TestSuiteStandard) TestExpenseDefaults() {
	user := suite.createTestUser(models.User{Name: "Defaults"})

	expense := suite.createTestExpense(models.Expense{
		UserID:      user.ID,
		Amount:      decimal.NewFromInt(10),
		Description: "  coffee  ",
	})

	// The date defaults to the current day
	suite.Assert().WithinDuration(time.Now(), expense.Date, time.Minute)
	suite.Assert().Equal("coffee", expense.Description)

	var reloaded models.Expense
	err := models.DB.First(&reloaded, expense.ID).Error
	suite.Require().Nil(err)
	suite.Assert().Equal(models.ExpenseStatusPending, reloaded.Status)
}
