package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetOverview summarizes all budgets of a user against their
// all-time approved spending.
type BudgetOverview struct {
	Budgets        []Budget        `json:"budgets"`
	TotalBudget    decimal.Decimal `json:"totalBudget" example:"1500"`
	TotalSpent     decimal.Decimal `json:"totalSpent" example:"300"`
	Remaining      decimal.Decimal `json:"remaining" example:"1200"` // May be negative when a user overspends
	PercentageUsed decimal.Decimal `json:"percentageUsed" example:"20"`
}

// GetBudgetOverview computes the budget overview for a user.
//
// TotalBudget sums every budget of the user regardless of period,
// category or overlap. TotalSpent sums the user's APPROVED expenses
// without any date or category restriction, so it is the all-time
// spend, not the spend within any budget's own window. An unknown user
// yields a zeroed overview, not an error.
func GetBudgetOverview(userID uuid.UUID) (BudgetOverview, error) {
	overview := BudgetOverview{
		Budgets: make([]Budget, 0),
	}

	err := DB.
		Where(&Budget{UserID: userID}).
		Order("created_at ASC").
		Find(&overview.Budgets).Error
	if err != nil {
		return BudgetOverview{}, err
	}

	for _, budget := range overview.Budgets {
		overview.TotalBudget = overview.TotalBudget.Add(budget.Amount)
	}

	spent, err := expenseSum(DB.Where(&Expense{UserID: userID, Status: ExpenseStatusApproved}))
	if err != nil {
		return BudgetOverview{}, err
	}

	overview.TotalSpent = spent
	overview.Remaining = overview.TotalBudget.Sub(spent)

	if !overview.TotalBudget.IsZero() {
		overview.PercentageUsed = spent.Div(overview.TotalBudget).Mul(decimal.NewFromInt(100))
	}

	return overview, nil
}

// expenseSum sums the amounts of all expenses matching the query.
func expenseSum(query *gorm.DB) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	err := query.
		Model(&Expense{}).
		Select("SUM(amount)").
		Row().
		Scan(&sum)
	if err != nil {
		return decimal.Zero, err
	}

	// If no expenses are found, the value is nil
	if !sum.Valid {
		return decimal.Zero, nil
	}

	return sum.Decimal, nil
}
