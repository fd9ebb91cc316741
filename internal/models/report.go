package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/types"
)

// ReportRow is one line of an expense report: the expenses of one
// category in one month.
type ReportRow struct {
	CategoryName string          `json:"categoryName" example:"Food"` // Empty for uncategorized expenses
	Month        types.Month     `json:"month" example:"2024-01"`
	Count        int64           `json:"count" example:"3"`
	Amount       decimal.Decimal `json:"amount" example:"123.45"`
}

// GetExpenseReport aggregates a user's expenses per category and month
// within a date window, inclusive on both ends. All statuses count.
//
// Rendering the report into a file format is up to the caller.
func GetExpenseReport(userID uuid.UUID, from, to time.Time) ([]ReportRow, error) {
	var rows []struct {
		CategoryName string
		Month        string
		Count        int64
		Amount       decimal.Decimal
	}

	err := DB.
		Model(&Expense{}).
		Select("COALESCE(categories.name, '') AS category_name, strftime('%Y-%m', expenses.date) AS month, COUNT(*) AS count, SUM(expenses.amount) AS amount").
		Joins("LEFT JOIN categories ON categories.id = expenses.category_id AND categories.deleted_at IS NULL").
		Where("expenses.user_id = ?", userID).
		Where("expenses.date >= ? AND expenses.date <= ?", from, to).
		Group("category_name").
		Group("month").
		Order("month ASC").
		Order("category_name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	report := make([]ReportRow, 0, len(rows))
	for _, row := range rows {
		month, err := types.ParseMonth(row.Month)
		if err != nil {
			return nil, err
		}

		report = append(report, ReportRow{
			CategoryName: row.CategoryName,
			Month:        month,
			Count:        row.Count,
			Amount:       row.Amount,
		})
	}

	return report, nil
}
