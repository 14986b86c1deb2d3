// Package v1 implements the handlers for the v1 API.
package v1

import (
	"github.com/ratnesh1929/Expense-Tracker/internal/auth"
	"github.com/ratnesh1929/Expense-Tracker/internal/expense"
)

// Controller holds the services the handlers operate on.
type Controller struct {
	Expenses expense.Service
	Auth     auth.Service
}
