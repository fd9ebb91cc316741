package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ExpenseStatus is the state of an expense in the approval workflow.
//
// The workflow itself lives outside of this backend, handlers only
// store the status. Only APPROVED expenses count toward budget
// consumption.
type ExpenseStatus string

const (
	ExpenseStatusPending  ExpenseStatus = "PENDING"
	ExpenseStatusApproved ExpenseStatus = "APPROVED"
	ExpenseStatusRejected ExpenseStatus = "REJECTED"
)

var (
	ErrExpenseAmountNotPositive = errors.New("expense amounts must be larger than zero")
	ErrExpenseStatusInvalid     = errors.New("expense statuses must be PENDING, APPROVED or REJECTED")
)

// Expense is a single spending record of a user.
type Expense struct {
	DefaultModel
	UserID      uuid.UUID
	User        User `json:"-"`
	CategoryID  *uuid.UUID
	Category    Category        `json:"-"`
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Status      ExpenseStatus   `gorm:"default:PENDING"`
	Description string
	Date        time.Time // Day the expense occurred, not the day it was recorded
}

func (e Expense) Self() string {
	return "Expense"
}

// AfterFind enforces UTC for the expense date, see DefaultModel.AfterFind.
func (e *Expense) AfterFind(tx *gorm.DB) (err error) {
	err = e.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	e.Date = e.Date.In(time.UTC)
	return nil
}

// BeforeSave validates the expense and normalizes its date to UTC.
func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Description = strings.TrimSpace(e.Description)

	// Ensure that the Category ID is nil and not a pointer to a nil UUID
	// when it is not set
	if e.CategoryID != nil && *e.CategoryID == uuid.Nil {
		e.CategoryID = nil
	}

	if !e.Amount.IsPositive() {
		return ErrExpenseAmountNotPositive
	}

	if e.Status != "" && e.Status != ExpenseStatusPending && e.Status != ExpenseStatusApproved && e.Status != ExpenseStatusRejected {
		return ErrExpenseStatusInvalid
	}

	if e.Date.IsZero() {
		e.Date = time.Now().In(time.UTC)
	} else {
		e.Date = e.Date.In(time.UTC)
	}

	return nil
}
