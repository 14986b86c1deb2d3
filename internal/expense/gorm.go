package expense

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/ratnesh1929/Expense-Tracker/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore is the Store backed by a gorm database.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore returns a Store using db.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) owned(ctx context.Context, owner uuid.UUID) *gorm.DB {
	return s.db.WithContext(ctx).Where("expenses.owner_id = ?", owner)
}

// inRange restricts a query to expenses with from <= date < until.
func inRange(q *gorm.DB, from, until time.Time) *gorm.DB {
	return q.Where("expenses.date >= date(?)", from).Where("expenses.date < date(?)", until)
}

func (s *GormStore) Create(ctx context.Context, expense *models.Expense) error {
	return translate(s.db.WithContext(ctx).Omit(clause.Associations).Create(expense).Error)
}

func (s *GormStore) Get(ctx context.Context, owner, id uuid.UUID) (models.Expense, error) {
	var expense models.Expense
	err := s.owned(ctx, owner).Where("expenses.id = ?", id).First(&expense).Error
	if err != nil {
		return models.Expense{}, translate(err)
	}

	return expense, nil
}

func (s *GormStore) Range(ctx context.Context, owner uuid.UUID, from, until time.Time) ([]models.Expense, error) {
	expenses := make([]models.Expense, 0)

	err := inRange(s.owned(ctx, owner), from, until).
		Order("expenses.date DESC, expenses.created_at DESC").
		Find(&expenses).Error
	if err != nil {
		return nil, translate(err)
	}

	return expenses, nil
}

func (s *GormStore) Replace(ctx context.Context, owner, id uuid.UUID, editable Editable) (models.Expense, error) {
	var expense models.Expense

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("expenses.owner_id = ? AND expenses.id = ?", owner, id).First(&expense).Error
		if err != nil {
			return err
		}

		expense.Amount = editable.Amount
		expense.Category = editable.Category
		expense.Date = editable.Date
		expense.Description = editable.Description

		return tx.Omit(clause.Associations).Save(&expense).Error
	})
	if err != nil {
		return models.Expense{}, translate(err)
	}

	return expense, nil
}

func (s *GormStore) Delete(ctx context.Context, owner, id uuid.UUID) error {
	result := s.owned(ctx, owner).Where("expenses.id = ?", id).Delete(&models.Expense{})
	if result.Error != nil {
		return translate(result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *GormStore) Totals(ctx context.Context, owner uuid.UUID, from, until time.Time) (map[string]decimal.Decimal, error) {
	var rows []struct {
		Category string
		Amount   decimal.Decimal
	}

	// SQLite stores amounts as REAL, so the sum is calculated here
	// with exact decimals
	err := inRange(s.owned(ctx, owner), from, until).
		Model(&models.Expense{}).
		Select("expenses.category", "expenses.amount").
		Find(&rows).Error
	if err != nil {
		return nil, translate(err)
	}

	totals := make(map[string]decimal.Decimal)
	for _, row := range rows {
		totals[row.Category] = totals[row.Category].Add(row.Amount)
	}

	return totals, nil
}

// translate maps database errors to the errors of this package.
//
// Errors that are not caused by the request are logged and replaced
// by ErrStorage so that no details leak to the client.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, models.ErrResourceNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, models.ErrAmountNegative):
		return errAmountNegative
	}

	log.Error().Str("store", "gorm").Msgf("%T: %v", err, err.Error())
	return ErrStorage
}
