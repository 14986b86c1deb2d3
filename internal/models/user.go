package models

import (
	"strings"

	"gorm.io/gorm"
)

// User is an account that owns expenses.
type User struct {
	DefaultModel
	Name         string `gorm:"not null"`
	Email        string `gorm:"not null;uniqueIndex"`
	PasswordHash string `gorm:"not null"`
}

// BeforeSave trims whitespace and lowercases the email address.
func (u *User) BeforeSave(_ *gorm.DB) (err error) {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	return nil
}
