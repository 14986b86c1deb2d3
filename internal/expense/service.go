// Package expense implements recording, querying and exporting
// of expenses for a single owner.
package expense

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ratnesh1929/Expense-Tracker/internal/models"
	"github.com/ratnesh1929/Expense-Tracker/internal/types"
	"github.com/shopspring/decimal"
)

// Editable contains all fields of an expense that the owner can set.
type Editable struct {
	Amount      decimal.Decimal
	Category    string
	Date        time.Time
	Description string
}

func (e Editable) validate() error {
	if e.Amount.IsNegative() {
		return errAmountNegative
	}

	if significantDigits(e.Amount) > maxSignificantDigits {
		return errAmountPrecision
	}

	if strings.TrimSpace(e.Category) == "" {
		return errCategoryEmpty
	}

	if e.Date.IsZero() {
		return errDateMissing
	}

	return nil
}

// maxSignificantDigits is the precision a float64 holds without rounding.
// SQLite stores amounts as REAL.
const maxSignificantDigits = 15

func significantDigits(d decimal.Decimal) int {
	digits := strings.Replace(d.Abs().String(), ".", "", 1)
	return len(strings.Trim(digits, "0"))
}

// Service exposes the expense operations for an owner. The owner
// is always passed in and trusted, authentication happens before.
type Service struct {
	store Store
}

// NewService returns a Service that persists to store.
func NewService(store Store) Service {
	return Service{store: store}
}

// Add records a new expense.
func (s Service) Add(ctx context.Context, owner uuid.UUID, editable Editable) (models.Expense, error) {
	if err := editable.validate(); err != nil {
		return models.Expense{}, err
	}

	expense := models.Expense{
		OwnerID:     owner,
		Amount:      editable.Amount,
		Category:    editable.Category,
		Date:        editable.Date,
		Description: editable.Description,
	}

	if err := s.store.Create(ctx, &expense); err != nil {
		return models.Expense{}, err
	}

	return expense, nil
}

// Get returns a single expense.
func (s Service) Get(ctx context.Context, owner, id uuid.UUID) (models.Expense, error) {
	return s.store.Get(ctx, owner, id)
}

// List returns all expenses in the month, most recent first.
func (s Service) List(ctx context.Context, owner uuid.UUID, month string) ([]models.Expense, error) {
	m, err := parseMonth(month)
	if err != nil {
		return nil, err
	}

	expenses, err := s.store.Range(ctx, owner, m.Start(), m.Next())
	if err != nil {
		return nil, err
	}

	if expenses == nil {
		expenses = []models.Expense{}
	}

	return expenses, nil
}

// Update replaces all editable fields of an expense.
func (s Service) Update(ctx context.Context, owner, id uuid.UUID, editable Editable) (models.Expense, error) {
	if err := editable.validate(); err != nil {
		return models.Expense{}, err
	}

	return s.store.Replace(ctx, owner, id, editable)
}

// Delete removes an expense permanently.
func (s Service) Delete(ctx context.Context, owner, id uuid.UUID) error {
	return s.store.Delete(ctx, owner, id)
}

// Summary returns the total amount per category for the month.
func (s Service) Summary(ctx context.Context, owner uuid.UUID, month string) (map[string]decimal.Decimal, error) {
	m, err := parseMonth(month)
	if err != nil {
		return nil, err
	}

	totals, err := s.store.Totals(ctx, owner, m.Start(), m.Next())
	if err != nil {
		return nil, err
	}

	if totals == nil {
		totals = map[string]decimal.Decimal{}
	}

	return totals, nil
}

func parseMonth(month string) (types.Month, error) {
	if strings.TrimSpace(month) == "" {
		return types.Month{}, errMonthMissing
	}

	m, err := types.ParseMonth(month)
	if err != nil {
		return types.Month{}, errMonthInvalid
	}

	return m, nil
}
