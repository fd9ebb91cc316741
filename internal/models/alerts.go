package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetAlert reports a budget that has reached its alert threshold.
type BudgetAlert struct {
	BudgetID        uuid.UUID       `json:"budgetId"`
	CategoryID      *uuid.UUID      `json:"categoryId"` // nil for overall budgets
	BudgetAmount    decimal.Decimal `json:"budgetAmount" example:"1000"`
	AmountSpent     decimal.Decimal `json:"amountSpent" example:"850"`
	UsagePercentage decimal.Decimal `json:"usagePercentage" example:"85"`
	AlertThreshold  decimal.Decimal `json:"alertThreshold" example:"80"`
	Period          BudgetPeriod    `json:"period" example:"MONTHLY"`
	StartDate       time.Time       `json:"startDate" example:"2024-01-01T00:00:00Z"`
	EndDate         time.Time       `json:"endDate" example:"2024-01-31T00:00:00Z"`
}

// CheckBudgetAlerts scans all budgets of a user and reports those whose
// usage has reached the alert threshold.
//
// Usage counts APPROVED expenses dated within the budget's own window.
// For budgets with a category only expenses of that category count, for
// overall budgets all of the user's expenses in the window count. The
// threshold comparison is inclusive, a budget exactly at its threshold
// alerts. Budgets are checked in creation order so that the result is
// deterministic.
func CheckBudgetAlerts(userID uuid.UUID) ([]BudgetAlert, error) {
	var budgets []Budget
	err := DB.
		Where(&Budget{UserID: userID}).
		Order("created_at ASC").
		Find(&budgets).Error
	if err != nil {
		return nil, err
	}

	alerts := make([]BudgetAlert, 0)
	for _, budget := range budgets {
		query := DB.
			Where(&Expense{UserID: userID, Status: ExpenseStatusApproved}).
			Where("date >= ? AND date <= ?", budget.StartDate, budget.EndDate)

		if budget.CategoryID != nil {
			query = query.Where("category_id = ?", budget.CategoryID)
		}

		spent, err := expenseSum(query)
		if err != nil {
			return nil, err
		}

		usage := decimal.Zero
		if !budget.Amount.IsZero() {
			usage = spent.Div(budget.Amount).Mul(decimal.NewFromInt(100))
		}

		if usage.GreaterThanOrEqual(budget.AlertThreshold) {
			alerts = append(alerts, BudgetAlert{
				BudgetID:        budget.ID,
				CategoryID:      budget.CategoryID,
				BudgetAmount:    budget.Amount,
				AmountSpent:     spent,
				UsagePercentage: usage,
				AlertThreshold:  budget.AlertThreshold,
				Period:          budget.Period,
				StartDate:       budget.StartDate,
				EndDate:         budget.EndDate,
			})
		}
	}

	return alerts, nil
}
