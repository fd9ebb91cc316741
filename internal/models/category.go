package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is an optional grouping dimension for budgets and expenses.
//
// A budget without a category is an "overall" budget, it applies across
// all of a user's spending.
type Category struct {
	DefaultModel
	UserID uuid.UUID `gorm:"uniqueIndex:category_user_name"`
	User   User      `json:"-"`
	Name   string    `gorm:"uniqueIndex:category_user_name"`
	Note   string
}

func (c Category) Self() string {
	return "Category"
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Note = strings.TrimSpace(c.Note)

	return nil
}
