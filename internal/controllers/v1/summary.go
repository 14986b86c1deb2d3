package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ratnesh1929/Expense-Tracker/internal/auth"
	"github.com/ratnesh1929/Expense-Tracker/internal/httputil"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// OptionsSummary returns the allowed HTTP verbs
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Expenses
//	@Success		204
//	@Router			/v1/expenses/summary [options]
func (co Controller) OptionsSummary(c *gin.Context) {
	httputil.OptionsGet(c)
}

// GetSummary returns the totals per category for a month
//
//	@Summary		Get summary
//	@Description	Returns the sum of all expenses per category in a month, sorted by category
//	@Tags			Expenses
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200		{object}	SummaryResponse
//	@Failure		400		{object}	SummaryResponse
//	@Failure		401		{object}	httpError
//	@Failure		500		{object}	SummaryResponse
//	@Param			month	query		string	true	"Year and month in YYYY-MM format"
//	@Router			/v1/expenses/summary [get]
func (co Controller) GetSummary(c *gin.Context) {
	var query QueryMonth
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, SummaryResponse{
			Error: message(err),
		})
		return
	}

	totals, err := co.Expenses.Summary(c.Request.Context(), auth.Owner(c), query.Month)
	if err != nil {
		c.JSON(status(err), SummaryResponse{
			Error: message(err),
		})
		return
	}

	categories := maps.Keys(totals)
	slices.Sort(categories)

	data := make([]CategoryTotal, 0, len(categories))
	for _, category := range categories {
		data = append(data, CategoryTotal{
			Category: category,
			Total:    totals[category],
		})
	}

	c.JSON(http.StatusOK, SummaryResponse{Data: data})
}
