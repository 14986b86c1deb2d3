package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ratnesh1929/Expense-Tracker/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

// Expense is a single spending entry of a user.
type Expense struct {
	DefaultModel
	OwnerID     uuid.UUID       `gorm:"type:uuid;not null;index:idx_expense_owner_date,priority:1"`
	Owner       User            `gorm:"constraint:OnDelete:CASCADE"`
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8);not null;check:amount_non_negative,amount >= 0"`
	Category    string          `gorm:"not null"`
	Date        time.Time       `gorm:"not null;index:idx_expense_owner_date,priority:2"` // Always 00:00 UTC of the day
	Description string
}

// AfterFind enforces UTC for all times.
func (e *Expense) AfterFind(tx *gorm.DB) (err error) {
	err = e.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	e.Date = e.Date.In(time.UTC)
	return
}

// BeforeSave
//   - truncates the date to the calendar day in UTC
//   - trims whitespace from string fields
//   - normalizes the category so that equal looking categories are grouped together
func (e *Expense) BeforeSave(_ *gorm.DB) (err error) {
	e.Category = norm.NFC.String(strings.TrimSpace(e.Category))
	e.Description = strings.TrimSpace(e.Description)

	if !e.Date.IsZero() {
		e.Date = types.DateOf(e.Date).Time()
	}

	return nil
}
