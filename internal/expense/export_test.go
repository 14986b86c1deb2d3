package expense_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"github.com/ratnesh1929/Expense-Tracker/internal/expense"
	"github.com/xuri/excelize/v2"
)

func (suite *TestSuiteStandard) TestExportCSV() {
	owner := suite.createUser()
	suite.add(owner, "50", "Food", day(2024, 3, 5), "lunch")

	doc, err := suite.service.ExportCSV(context.Background(), owner, "2024-03")
	suite.Require().Nil(err)

	suite.Assert().Equal("text/csv", doc.ContentType)
	suite.Assert().Equal("expenses-2024-03.csv", doc.Filename)
	suite.Assert().Equal("date,amount,category,description\n2024-03-05,50,Food,lunch\n", string(doc.Body))
}

func (suite *TestSuiteStandard) TestExportCSVOrderAndQuoting() {
	owner := suite.createUser()
	suite.add(owner, "12.5", "Food", day(2024, 3, 1), "bread, milk")
	suite.add(owner, "1000", "Rent", day(2024, 3, 20), `the "big" one`)

	doc, err := suite.service.ExportCSV(context.Background(), owner, "2024-03")
	suite.Require().Nil(err)

	lines := strings.Split(strings.TrimSuffix(string(doc.Body), "\n"), "\n")
	suite.Require().Len(lines, 3)
	suite.Assert().Equal(`2024-03-20,1000,Rent,"the ""big"" one"`, lines[1])
	suite.Assert().Equal(`2024-03-01,12.5,Food,"bread, milk"`, lines[2])
}

func (suite *TestSuiteStandard) TestExportCSVEmpty() {
	_, err := suite.service.ExportCSV(context.Background(), suite.createUser(), "2024-03")
	suite.Assert().ErrorIs(err, expense.ErrNotFound)
}

func (suite *TestSuiteStandard) TestExportCSVMonthMissing() {
	_, err := suite.service.ExportCSV(context.Background(), suite.createUser(), "")
	suite.Assert().ErrorIs(err, expense.ErrValidation)
}

func (suite *TestSuiteStandard) TestExportJSON() {
	owner := suite.createUser()
	first := suite.add(owner, "50", "Food", day(2024, 3, 5), "lunch")
	second := suite.add(owner, "20.25", "Transport", day(2024, 3, 7), "")
	suite.add(owner, "99", "Food", day(2024, 4, 1), "")

	export, err := suite.service.ExportJSON(context.Background(), owner, "2024-03")
	suite.Require().Nil(err)

	suite.Assert().Equal("2024-03", export.Month)
	suite.Assert().Equal("70.25", export.TotalExpenses.String())
	suite.Require().Len(export.Expenses, 2)
	suite.Assert().Equal(second.ID, export.Expenses[0].ID)
	suite.Assert().Equal(first.ID, export.Expenses[1].ID)
	suite.Assert().Equal("2024-03-05", export.Expenses[1].Date.String())

	doc, err := export.Document()
	suite.Require().Nil(err)
	suite.Assert().Equal("application/json", doc.ContentType)
	suite.Assert().Equal("expenses-2024-03.json", doc.Filename)

	// The owner is never part of an export
	var raw map[string]any
	suite.Require().Nil(json.Unmarshal(doc.Body, &raw))
	for _, e := range raw["expenses"].([]any) {
		suite.Assert().ElementsMatch([]string{"id", "amount", "category", "date", "description"}, keys(e.(map[string]any)))
	}
	suite.Assert().NotContains(string(doc.Body), owner.String())

	// Amounts are numbers so that clients can add them up
	suite.Assert().Equal(70.25, raw["totalExpenses"])
	suite.Assert().Equal(20.25, raw["expenses"].([]any)[0].(map[string]any)["amount"])
	suite.Assert().Contains(string(doc.Body), `"totalExpenses": 70.25`)
}

func (suite *TestSuiteStandard) TestExportJSONEmpty() {
	export, err := suite.service.ExportJSON(context.Background(), suite.createUser(), "2024-03")
	suite.Require().Nil(err)

	suite.Assert().True(export.TotalExpenses.IsZero())
	suite.Assert().NotNil(export.Expenses)
	suite.Assert().Len(export.Expenses, 0)

	doc, err := export.Document()
	suite.Require().Nil(err)
	suite.Assert().Contains(string(doc.Body), `"expenses": []`)
	suite.Assert().Contains(string(doc.Body), `"totalExpenses": 0,`)
}

func (suite *TestSuiteStandard) TestExportJSONMonthMissing() {
	_, err := suite.service.ExportJSON(context.Background(), suite.createUser(), " ")
	suite.Assert().ErrorIs(err, expense.ErrValidation)
}

func (suite *TestSuiteStandard) TestExportXLSX() {
	owner := suite.createUser()
	suite.add(owner, "50", "Food", day(2024, 3, 5), "lunch")

	doc, err := suite.service.ExportXLSX(context.Background(), owner, "2024-03")
	suite.Require().Nil(err)
	suite.Assert().Equal("expenses-2024-03.xlsx", doc.Filename)
	suite.Assert().Equal(expense.ContentTypeXLSX, doc.ContentType)

	f, err := excelize.OpenReader(bytes.NewReader(doc.Body))
	suite.Require().Nil(err)
	defer f.Close()

	rows, err := f.GetRows("Expenses")
	suite.Require().Nil(err)
	suite.Require().Len(rows, 2)
	suite.Assert().Equal([]string{"date", "amount", "category", "description"}, rows[0])
	suite.Assert().Equal([]string{"2024-03-05", "50", "Food", "lunch"}, rows[1])
}

func (suite *TestSuiteStandard) TestExportXLSXEmpty() {
	_, err := suite.service.ExportXLSX(context.Background(), suite.createUser(), "2024-03")
	suite.Assert().ErrorIs(err, expense.ErrNotFound)
}

func keys(m map[string]any) []string {
	k := make([]string, 0, len(m))
	for key := range m {
		k = append(k, key)
	}
	return k
}
