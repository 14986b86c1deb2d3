package v1_test

import (
	"net/http"

	v1 "github.com/ratnesh1929/Expense-Tracker/internal/controllers/v1"
	"github.com/ratnesh1929/Expense-Tracker/internal/test"
	"github.com/ratnesh1929/Expense-Tracker/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestSummary() {
	auth := token(suite.T())

	createTestExpense(suite.T(), auth, v1.ExpenseEditable{Amount: decimal.RequireFromString("0.1"), Category: "Transport"})
	createTestExpense(suite.T(), auth, v1.ExpenseEditable{Amount: decimal.RequireFromString("0.2"), Category: "Transport"})
	createTestExpense(suite.T(), auth, v1.ExpenseEditable{Amount: decimal.NewFromInt(50), Category: "Food"})
	createTestExpense(suite.T(), auth, v1.ExpenseEditable{Amount: decimal.NewFromInt(7), Category: "Books"})

	// Different month and different user are not part of the summary
	createTestExpense(suite.T(), auth, v1.ExpenseEditable{Amount: decimal.NewFromInt(1000), Category: "Food", Date: types.NewDate(2024, 4, 1)})
	createTestExpense(suite.T(), token(suite.T()), v1.ExpenseEditable{Amount: decimal.NewFromInt(1000), Category: "Food"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses/summary?month=2024-03", "", auth)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SummaryResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 3)
	suite.Assert().Equal("Books", response.Data[0].Category)
	suite.Assert().Equal("Food", response.Data[1].Category)
	suite.Assert().Equal("Transport", response.Data[2].Category)

	suite.Assert().True(decimal.NewFromInt(7).Equal(response.Data[0].Total))
	suite.Assert().True(decimal.NewFromInt(50).Equal(response.Data[1].Total))
	suite.Assert().True(decimal.RequireFromString("0.3").Equal(response.Data[2].Total), "got %s", response.Data[2].Total)
}

func (suite *TestSuiteStandard) TestSummaryEmpty() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses/summary?month=2024-03", "", token(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().JSONEq(`{ "data": [], "error": null }`, r.Body.String())
}

func (suite *TestSuiteStandard) TestSummaryMonthMissing() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses/summary", "", token(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.SummaryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Nil(response.Data)
	suite.Assert().Contains(*response.Error, "month")
}

func (suite *TestSuiteStandard) TestSummaryDBClosed() {
	auth := token(suite.T())
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses/summary?month=2024-03", "", auth)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
