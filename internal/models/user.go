package models

import (
	"strings"

	"gorm.io/gorm"
)

// User represents a person tracking their expenses.
//
// Authentication is handled outside of this backend, users are
// referenced by their ID only.
type User struct {
	DefaultModel
	Name   string
	Email  string `gorm:"uniqueIndex"`
	Active bool   `gorm:"default:true"`
	Note   string
}

func (u User) Self() string {
	return "User"
}

// BeforeSave trims whitespace and normalizes the email address.
func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.Note = strings.TrimSpace(u.Note)

	return nil
}
