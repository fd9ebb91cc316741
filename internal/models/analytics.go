package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/types"
)

// Recommendations returned by GetBudgetAnalytics.
const (
	RecommendationReduceSpending   = "You have used more than 90% of your budget. Consider reducing spending or increasing your budget."
	RecommendationIncreaseSpending = "You have used less than half of your budget. There is room to increase spending or savings."
)

// AnalyticsParams scopes budget analytics to a user, a period type and
// a date window.
type AnalyticsParams struct {
	UserID    uuid.UUID
	Period    BudgetPeriod
	StartDate time.Time
	EndDate   time.Time
}

// CategorySpend is the spending in a single category within a date window.
type CategorySpend struct {
	CategoryID  *uuid.UUID      `json:"categoryId"`
	AmountSpent decimal.Decimal `json:"amountSpent" example:"300"`
	Percentage  decimal.Decimal `json:"percentage" example:"75"` // Share of the total spending in the window
}

// TrendPoint is the spending in a single month.
type TrendPoint struct {
	Period types.Month     `json:"period" example:"2024-01"`
	Amount decimal.Decimal `json:"amount" example:"400"`
}

// BudgetAnalytics is the spending analysis for a user within a date window.
type BudgetAnalytics struct {
	TotalBudgeted     decimal.Decimal `json:"totalBudgeted" example:"1500"`
	TotalSpent        decimal.Decimal `json:"totalSpent" example:"300"`
	BudgetUtilization decimal.Decimal `json:"budgetUtilization" example:"20"`
	CategoryBreakdown []CategorySpend `json:"categoryBreakdown"`
	SpendingTrend     []TrendPoint    `json:"spendingTrend"`
	Recommendations   []string        `json:"recommendations"`
}

// GetBudgetAnalytics computes the spending analysis for a user.
//
// Budgets count when their period type matches and their date range
// overlaps the window. Spending counts APPROVED expenses dated within
// the window, inclusive on both ends.
//
// The spending trend has exactly one bucket, keyed by the month of the
// window's start date. This is a known simplification, not a per-month
// breakdown across the range.
func GetBudgetAnalytics(params AnalyticsParams) (BudgetAnalytics, error) {
	analytics := BudgetAnalytics{
		CategoryBreakdown: make([]CategorySpend, 0),
		SpendingTrend:     make([]TrendPoint, 0),
		Recommendations:   make([]string, 0),
	}

	var budgets []Budget
	err := DB.
		Where(&Budget{UserID: params.UserID, Period: params.Period}).
		Where("end_date >= ?", params.StartDate).
		Where("start_date <= ?", params.EndDate).
		Find(&budgets).Error
	if err != nil {
		return BudgetAnalytics{}, err
	}

	for _, budget := range budgets {
		analytics.TotalBudgeted = analytics.TotalBudgeted.Add(budget.Amount)
	}

	var spends []CategorySpend
	err = DB.
		Model(&Expense{}).
		Select("category_id, SUM(amount) AS amount_spent").
		Where(&Expense{UserID: params.UserID, Status: ExpenseStatusApproved}).
		Where("date >= ? AND date <= ?", params.StartDate, params.EndDate).
		Group("category_id").
		Order("amount_spent DESC").
		Scan(&spends).Error
	if err != nil {
		return BudgetAnalytics{}, err
	}

	for _, spend := range spends {
		analytics.TotalSpent = analytics.TotalSpent.Add(spend.AmountSpent)
	}

	for _, spend := range spends {
		if !analytics.TotalSpent.IsZero() {
			spend.Percentage = spend.AmountSpent.Div(analytics.TotalSpent).Mul(decimal.NewFromInt(100))
		}

		analytics.CategoryBreakdown = append(analytics.CategoryBreakdown, spend)
	}

	if !analytics.TotalBudgeted.IsZero() {
		analytics.BudgetUtilization = analytics.TotalSpent.Div(analytics.TotalBudgeted).Mul(decimal.NewFromInt(100))
	}

	analytics.SpendingTrend = append(analytics.SpendingTrend, TrendPoint{
		Period: types.MonthOf(params.StartDate),
		Amount: analytics.TotalSpent,
	})

	if analytics.BudgetUtilization.GreaterThan(decimal.NewFromInt(90)) {
		analytics.Recommendations = append(analytics.Recommendations, RecommendationReduceSpending)
	}

	if analytics.BudgetUtilization.LessThan(decimal.NewFromInt(50)) {
		analytics.Recommendations = append(analytics.Recommendations, RecommendationIncreaseSpending)
	}

	return analytics, nil
}
