package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/types"
)

// CategoryBreakdown is the spending in a single category, named for display.
type CategoryBreakdown struct {
	CategoryName string          `json:"categoryName" example:"Food"`
	AmountSpent  decimal.Decimal `json:"amountSpent" example:"300"`
	Percentage   decimal.Decimal `json:"percentage" example:"75"` // Share of the user's total spending
}

// DashboardStats is the spending summary shown on a user's dashboard.
type DashboardStats struct {
	TotalExpenses         int64               `json:"totalExpenses" example:"7"`
	TotalAmountSpent      decimal.Decimal     `json:"totalAmountSpent" example:"400"`
	BudgetUsagePercentage decimal.Decimal     `json:"budgetUsagePercentage" example:"26.67"` // Rounded to two decimal places
	CategoryBreakdown     []CategoryBreakdown `json:"categoryBreakdown"`
	MonthlyTrend          []TrendPoint        `json:"monthlyTrend"`
	RecentExpenses        []Expense           `json:"recentExpenses"`
}

// GetDashboardStats computes the dashboard summary for a user.
//
// The dashboard counts every expense regardless of status. This differs
// from the budget figures, which only count APPROVED expenses. The
// asymmetry is inherited behavior and must not be unified silently.
func GetDashboardStats(userID uuid.UUID) (DashboardStats, error) {
	stats := DashboardStats{
		CategoryBreakdown: make([]CategoryBreakdown, 0),
		MonthlyTrend:      make([]TrendPoint, 0),
		RecentExpenses:    make([]Expense, 0),
	}

	err := DB.
		Model(&Expense{}).
		Where(&Expense{UserID: userID}).
		Count(&stats.TotalExpenses).Error
	if err != nil {
		return DashboardStats{}, err
	}

	total, err := expenseSum(DB.Where(&Expense{UserID: userID}))
	if err != nil {
		return DashboardStats{}, err
	}
	stats.TotalAmountSpent = total

	var budgetSum decimal.NullDecimal
	err = DB.
		Model(&Budget{}).
		Where(&Budget{UserID: userID}).
		Select("SUM(amount)").
		Row().
		Scan(&budgetSum)
	if err != nil {
		return DashboardStats{}, err
	}

	// The only rounded percentage in the backend. All others are
	// returned in full precision.
	if budgetSum.Valid && !budgetSum.Decimal.IsZero() {
		stats.BudgetUsagePercentage = total.Div(budgetSum.Decimal).Mul(decimal.NewFromInt(100)).Round(2)
	}

	var breakdown []CategoryBreakdown
	err = DB.
		Model(&Expense{}).
		Select("categories.name AS category_name, SUM(expenses.amount) AS amount_spent").
		Joins("JOIN categories ON categories.id = expenses.category_id AND categories.deleted_at IS NULL").
		Where("expenses.user_id = ?", userID).
		Group("categories.name").
		Order("amount_spent DESC").
		Scan(&breakdown).Error
	if err != nil {
		return DashboardStats{}, err
	}

	for _, entry := range breakdown {
		if !total.IsZero() {
			entry.Percentage = entry.AmountSpent.Div(total).Mul(decimal.NewFromInt(100))
		}

		stats.CategoryBreakdown = append(stats.CategoryBreakdown, entry)
	}

	var months []struct {
		Month  string
		Amount decimal.Decimal
	}
	err = DB.
		Model(&Expense{}).
		Select("strftime('%Y-%m', date) AS month, SUM(amount) AS amount").
		Where(&Expense{UserID: userID}).
		Group("month").
		Order("month ASC").
		Scan(&months).Error
	if err != nil {
		return DashboardStats{}, err
	}

	for _, row := range months {
		month, err := types.ParseMonth(row.Month)
		if err != nil {
			return DashboardStats{}, err
		}

		stats.MonthlyTrend = append(stats.MonthlyTrend, TrendPoint{
			Period: month,
			Amount: row.Amount,
		})
	}

	err = DB.
		Where(&Expense{UserID: userID}).
		Order("created_at DESC").
		Limit(5).
		Find(&stats.RecentExpenses).Error
	if err != nil {
		return DashboardStats{}, err
	}

	return stats, nil
}
