package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetPeriod is the period a budget is tracked for.
type BudgetPeriod string

const (
	BudgetPeriodMonthly BudgetPeriod = "MONTHLY"
	BudgetPeriodYearly  BudgetPeriod = "YEARLY"
)

var (
	ErrBudgetAmountNotPositive      = errors.New("budget amounts must be larger than zero")
	ErrBudgetPeriodInvalid          = errors.New("budget periods must be MONTHLY or YEARLY")
	ErrBudgetEndDateBeforeStartDate = errors.New("the budget end date must not be before its start date")
	ErrBudgetThresholdInvalid       = errors.New("alert thresholds must be a percentage between 0 and 100")
)

// Budget is a spending limit for a user over a fixed date range.
//
// A budget with a category only tracks spending in that category, a
// budget without one tracks all of the user's spending.
type Budget struct {
	DefaultModel
	UserID         uuid.UUID
	User           User `json:"-"`
	CategoryID     *uuid.UUID
	Category       Category        `json:"-"`
	Amount         decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Period         BudgetPeriod    `gorm:"default:MONTHLY"`
	StartDate      time.Time
	EndDate        time.Time
	AlertThreshold decimal.Decimal `gorm:"type:DECIMAL(5,2);default:80"` // Percentage of the amount at which an alert is raised
}

func (b Budget) Self() string {
	return "Budget"
}

// AfterFind enforces UTC for the budget dates, see DefaultModel.AfterFind.
func (b *Budget) AfterFind(tx *gorm.DB) (err error) {
	err = b.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	b.StartDate = b.StartDate.In(time.UTC)
	b.EndDate = b.EndDate.In(time.UTC)
	return nil
}

// BeforeSave validates the budget and normalizes its dates to UTC.
func (b *Budget) BeforeSave(_ *gorm.DB) error {
	// Ensure that the Category ID is nil and not a pointer to a nil UUID
	// when it is not set
	if b.CategoryID != nil && *b.CategoryID == uuid.Nil {
		b.CategoryID = nil
	}

	if !b.Amount.IsPositive() {
		return ErrBudgetAmountNotPositive
	}

	if b.Period != "" && b.Period != BudgetPeriodMonthly && b.Period != BudgetPeriodYearly {
		return ErrBudgetPeriodInvalid
	}

	if b.AlertThreshold.IsNegative() || b.AlertThreshold.GreaterThan(decimal.NewFromInt(100)) {
		return ErrBudgetThresholdInvalid
	}

	b.StartDate = b.StartDate.In(time.UTC)
	b.EndDate = b.EndDate.In(time.UTC)

	if b.EndDate.Before(b.StartDate) {
		return ErrBudgetEndDateBeforeStartDate
	}

	return nil
}
