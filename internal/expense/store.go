package expense

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ratnesh1929/Expense-Tracker/internal/models"
	"github.com/shopspring/decimal"
)

// Store persists expenses.
//
// Every method is scoped to an owner. Records of other owners must be
// indistinguishable from records that do not exist. Implementations
// return ErrNotFound, ErrValidation or ErrStorage and never retry.
type Store interface {
	// Create persists a new expense and sets its ID.
	Create(ctx context.Context, expense *models.Expense) error

	// Get returns the expense with the ID.
	Get(ctx context.Context, owner, id uuid.UUID) (models.Expense, error)

	// Range returns all expenses with from <= date < until, most recent first.
	Range(ctx context.Context, owner uuid.UUID, from, until time.Time) ([]models.Expense, error)

	// Replace overwrites all editable fields of the expense with the ID.
	Replace(ctx context.Context, owner, id uuid.UUID, editable Editable) (models.Expense, error)

	// Delete removes the expense with the ID.
	Delete(ctx context.Context, owner, id uuid.UUID) error

	// Totals returns the sum of amounts per category for from <= date < until.
	Totals(ctx context.Context, owner uuid.UUID, from, until time.Time) (map[string]decimal.Decimal, error)
}
