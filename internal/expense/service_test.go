package expense_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ratnesh1929/Expense-Tracker/internal/expense"
	"github.com/ratnesh1929/Expense-Tracker/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestAdd() {
	owner := suite.createUser()

	e, err := suite.service.Add(context.Background(), owner, expense.Editable{
		Amount:      decimal.NewFromInt(50),
		Category:    " Food ",
		Date:        time.Date(2024, 3, 5, 13, 37, 0, 0, time.UTC),
		Description: "lunch",
	})
	suite.Require().Nil(err)

	suite.Assert().NotEqual(uuid.Nil, e.ID)
	suite.Assert().Equal(owner, e.OwnerID)
	suite.Assert().Equal("Food", e.Category)
	suite.Assert().Equal(day(2024, 3, 5), e.Date)

	found, err := suite.service.Get(context.Background(), owner, e.ID)
	suite.Require().Nil(err)
	suite.Assert().True(decimal.NewFromInt(50).Equal(found.Amount))
	suite.Assert().Equal("lunch", found.Description)
}

func (suite *TestSuiteStandard) TestAddZeroAmount() {
	owner := suite.createUser()

	_, err := suite.service.Add(context.Background(), owner, expense.Editable{
		Amount:   decimal.Zero,
		Category: "Gift",
		Date:     day(2024, 3, 1),
	})
	suite.Assert().Nil(err)
}

func (suite *TestSuiteStandard) TestAddAmountPrecision() {
	owner := suite.createUser()

	for _, amount := range []string{"1234567890.12345", "0.00000001", "100000000000000000000"} {
		e := suite.add(owner, amount, "Food", day(2024, 3, 5), "")

		found, err := suite.service.Get(context.Background(), owner, e.ID)
		suite.Require().Nil(err)
		suite.Assert().Equal(amount, found.Amount.String())
	}

	_, err := suite.service.Add(context.Background(), owner, expense.Editable{
		Amount:   decimal.RequireFromString("1234567890.123456"),
		Category: "Food",
		Date:     day(2024, 3, 5),
	})
	suite.Assert().ErrorIs(err, expense.ErrValidation)
	suite.Assert().Contains(err.Error(), "15 significant digits")
}

func (suite *TestSuiteStandard) TestAddInvalid() {
	owner := suite.createUser()

	tests := []struct {
		name     string
		editable expense.Editable
	}{
		{"Negative amount", expense.Editable{Amount: decimal.NewFromInt(-5), Category: "Food", Date: day(2024, 3, 5)}},
		{"Empty category", expense.Editable{Amount: decimal.NewFromInt(5), Category: "  ", Date: day(2024, 3, 5)}},
		{"Missing date", expense.Editable{Amount: decimal.NewFromInt(5), Category: "Food"}},
		{"Too many digits", expense.Editable{Amount: decimal.RequireFromString("999999999999.99999999"), Category: "Food", Date: day(2024, 3, 5)}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			_, err := suite.service.Add(context.Background(), owner, tt.editable)
			assert.ErrorIs(t, err, expense.ErrValidation)
		})
	}

	// Nothing was written
	var count int64
	models.DB.Model(&models.Expense{}).Where("owner_id = ?", owner).Count(&count)
	suite.Assert().Equal(int64(0), count)
}

func (suite *TestSuiteStandard) TestListMonthRange() {
	owner := suite.createUser()

	suite.add(owner, "1", "Food", day(2024, 2, 29), "")
	first := suite.add(owner, "2", "Food", day(2024, 3, 1), "")
	middle := suite.add(owner, "3", "Food", day(2024, 3, 15), "")
	last := suite.add(owner, "4", "Food", day(2024, 3, 31), "")
	suite.add(owner, "5", "Food", day(2024, 4, 1), "")

	expenses, err := suite.service.List(context.Background(), owner, "2024-03")
	suite.Require().Nil(err)
	suite.Require().Len(expenses, 3)

	// Most recent first
	suite.Assert().Equal(last.ID, expenses[0].ID)
	suite.Assert().Equal(middle.ID, expenses[1].ID)
	suite.Assert().Equal(first.ID, expenses[2].ID)
}

func (suite *TestSuiteStandard) TestListDecemberRollover() {
	owner := suite.createUser()

	december := suite.add(owner, "10", "Gifts", day(2024, 12, 31), "")
	suite.add(owner, "20", "Gifts", day(2025, 1, 1), "")

	expenses, err := suite.service.List(context.Background(), owner, "2024-12")
	suite.Require().Nil(err)
	suite.Require().Len(expenses, 1)
	suite.Assert().Equal(december.ID, expenses[0].ID)
}

func (suite *TestSuiteStandard) TestListEmpty() {
	owner := suite.createUser()

	expenses, err := suite.service.List(context.Background(), owner, "2024-03")
	suite.Require().Nil(err)
	suite.Assert().NotNil(expenses)
	suite.Assert().Len(expenses, 0)
}

func (suite *TestSuiteStandard) TestListMonthInvalid() {
	owner := suite.createUser()

	for _, month := range []string{"", "2024", "2024-13", "03-2024"} {
		_, err := suite.service.List(context.Background(), owner, month)
		suite.Assert().ErrorIs(err, expense.ErrValidation, "month %q", month)
	}
}

func (suite *TestSuiteStandard) TestOwnerIsolation() {
	owner := suite.createUser()
	other := suite.createUser()

	e := suite.add(owner, "50", "Food", day(2024, 3, 5), "lunch")

	_, err := suite.service.Get(context.Background(), other, e.ID)
	suite.Assert().ErrorIs(err, expense.ErrNotFound)

	_, err = suite.service.Update(context.Background(), other, e.ID, expense.Editable{
		Amount:   decimal.NewFromInt(1),
		Category: "Hacked",
		Date:     day(2024, 3, 5),
	})
	suite.Assert().ErrorIs(err, expense.ErrNotFound)

	err = suite.service.Delete(context.Background(), other, e.ID)
	suite.Assert().ErrorIs(err, expense.ErrNotFound)

	expenses, err := suite.service.List(context.Background(), other, "2024-03")
	suite.Require().Nil(err)
	suite.Assert().Len(expenses, 0)

	summary, err := suite.service.Summary(context.Background(), other, "2024-03")
	suite.Require().Nil(err)
	suite.Assert().Len(summary, 0)

	// The owner's expense is unchanged
	found, err := suite.service.Get(context.Background(), owner, e.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal("Food", found.Category)
	suite.Assert().True(decimal.NewFromInt(50).Equal(found.Amount))
}

func (suite *TestSuiteStandard) TestUpdate() {
	owner := suite.createUser()
	e := suite.add(owner, "50", "Food", day(2024, 3, 5), "lunch")

	updated, err := suite.service.Update(context.Background(), owner, e.ID, expense.Editable{
		Amount:   decimal.RequireFromString("12.5"),
		Category: "Transport",
		Date:     day(2024, 4, 2),
	})
	suite.Require().Nil(err)

	suite.Assert().Equal(e.ID, updated.ID)
	suite.Assert().Equal(owner, updated.OwnerID)
	suite.Assert().Equal("Transport", updated.Category)
	suite.Assert().Equal("", updated.Description, "Update is a full replace")
	suite.Assert().True(decimal.RequireFromString("12.5").Equal(updated.Amount))

	// The expense moved to April
	march, err := suite.service.List(context.Background(), owner, "2024-03")
	suite.Require().Nil(err)
	suite.Assert().Len(march, 0)

	april, err := suite.service.List(context.Background(), owner, "2024-04")
	suite.Require().Nil(err)
	suite.Require().Len(april, 1)
	suite.Assert().Equal(e.ID, april[0].ID)
}

func (suite *TestSuiteStandard) TestUpdateNegativeAmount() {
	owner := suite.createUser()
	e := suite.add(owner, "50", "Food", day(2024, 3, 5), "lunch")

	_, err := suite.service.Update(context.Background(), owner, e.ID, expense.Editable{
		Amount:   decimal.NewFromInt(-1),
		Category: "Food",
		Date:     day(2024, 3, 5),
	})
	suite.Assert().ErrorIs(err, expense.ErrValidation)
}

func (suite *TestSuiteStandard) TestUpdateAmountPrecision() {
	owner := suite.createUser()
	e := suite.add(owner, "50", "Food", day(2024, 3, 5), "lunch")

	_, err := suite.service.Update(context.Background(), owner, e.ID, expense.Editable{
		Amount:   decimal.RequireFromString("999999999999.99999999"),
		Category: "Food",
		Date:     day(2024, 3, 5),
	})
	suite.Assert().ErrorIs(err, expense.ErrValidation)

	found, err := suite.service.Get(context.Background(), owner, e.ID)
	suite.Require().Nil(err)
	suite.Assert().True(decimal.NewFromInt(50).Equal(found.Amount))
}

func (suite *TestSuiteStandard) TestUpdateNotFound() {
	owner := suite.createUser()

	_, err := suite.service.Update(context.Background(), owner, uuid.New(), expense.Editable{
		Amount:   decimal.NewFromInt(1),
		Category: "Food",
		Date:     day(2024, 3, 5),
	})
	suite.Assert().ErrorIs(err, expense.ErrNotFound)
}

func (suite *TestSuiteStandard) TestDelete() {
	owner := suite.createUser()
	e := suite.add(owner, "50", "Food", day(2024, 3, 5), "lunch")

	err := suite.service.Delete(context.Background(), owner, e.ID)
	suite.Require().Nil(err)

	_, err = suite.service.Get(context.Background(), owner, e.ID)
	suite.Assert().ErrorIs(err, expense.ErrNotFound)

	err = suite.service.Delete(context.Background(), owner, e.ID)
	suite.Assert().ErrorIs(err, expense.ErrNotFound)
}

func (suite *TestSuiteStandard) TestSummary() {
	owner := suite.createUser()

	suite.add(owner, "0.1", "Food", day(2024, 3, 1), "")
	suite.add(owner, "0.2", "Food", day(2024, 3, 2), "")
	suite.add(owner, "100", "Rent", day(2024, 3, 3), "")
	suite.add(owner, "999", "Rent", day(2024, 4, 1), "")

	summary, err := suite.service.Summary(context.Background(), owner, "2024-03")
	suite.Require().Nil(err)
	suite.Require().Len(summary, 2)

	suite.Assert().True(decimal.RequireFromString("0.3").Equal(summary["Food"]), "Food total is %s", summary["Food"])
	suite.Assert().True(decimal.NewFromInt(100).Equal(summary["Rent"]), "Rent total is %s", summary["Rent"])
}

func (suite *TestSuiteStandard) TestSummaryGroupsNormalizedCategories() {
	owner := suite.createUser()

	suite.add(owner, "1", "Café", day(2024, 3, 1), "")
	suite.add(owner, "2", " Café", day(2024, 3, 2), "")

	summary, err := suite.service.Summary(context.Background(), owner, "2024-03")
	suite.Require().Nil(err)
	suite.Require().Len(summary, 1)
	suite.Assert().True(decimal.NewFromInt(3).Equal(summary["Café"]))
}

func (suite *TestSuiteStandard) TestSummaryEmpty() {
	owner := suite.createUser()

	summary, err := suite.service.Summary(context.Background(), owner, "2024-03")
	suite.Require().Nil(err)
	suite.Assert().NotNil(summary)
	suite.Assert().Len(summary, 0)
}

func (suite *TestSuiteStandard) TestSummaryMonthMissing() {
	_, err := suite.service.Summary(context.Background(), suite.createUser(), "")
	suite.Assert().ErrorIs(err, expense.ErrValidation)
}

func (suite *TestSuiteStandard) TestStorageError() {
	owner := suite.createUser()
	e := suite.add(owner, "50", "Food", day(2024, 3, 5), "lunch")
	suite.CloseDB()

	_, err := suite.service.List(context.Background(), owner, "2024-03")
	suite.Assert().ErrorIs(err, expense.ErrStorage)

	_, err = suite.service.Get(context.Background(), owner, e.ID)
	suite.Assert().ErrorIs(err, expense.ErrStorage)

	err = suite.service.Delete(context.Background(), owner, e.ID)
	suite.Assert().ErrorIs(err, expense.ErrStorage)

	_, err = suite.service.Summary(context.Background(), owner, "2024-03")
	suite.Assert().ErrorIs(err, expense.ErrStorage)
}
