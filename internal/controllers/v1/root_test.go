package v1_test

import (
	"net/http"

	v1 "github.com/ratnesh1929/Expense-Tracker/internal/controllers/v1"
	"github.com/ratnesh1929/Expense-Tracker/internal/test"
)

func (suite *TestSuiteStandard) TestGetV1() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal(v1.Links{
		Register: "http://example.com/v1/auth/register",
		Login:    "http://example.com/v1/auth/login",
		Expenses: "http://example.com/v1/expenses",
		Summary:  "http://example.com/v1/expenses/summary",
		Export:   "http://example.com/v1/expenses/export",
	}, response.Links)
}

func (suite *TestSuiteStandard) TestOptionsV1() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))
}
