package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ratnesh1929/Expense-Tracker/internal/auth"
	"github.com/ratnesh1929/Expense-Tracker/internal/httputil"
)

// RegisterExpenseRoutes registers the routes for expenses. All routes
// except OPTIONS require authentication.
func (co Controller) RegisterExpenseRoutes(r *gin.RouterGroup, authenticate gin.HandlerFunc) {
	{
		r.OPTIONS("", co.OptionsExpenses)
		r.OPTIONS("/summary", co.OptionsSummary)
		r.OPTIONS("/export", co.OptionsExport)
		r.OPTIONS("/export/csv", co.OptionsExport)
		r.OPTIONS("/export/xlsx", co.OptionsExport)
		r.OPTIONS("/:id", co.OptionsExpenseDetail)
	}

	authenticated := r.Group("", authenticate)
	{
		authenticated.GET("", co.GetExpenses)
		authenticated.POST("", co.CreateExpense)
	}
	{
		authenticated.GET("/summary", co.GetSummary)
		authenticated.GET("/export", co.ExportJSON)
		authenticated.GET("/export/csv", co.ExportCSV)
		authenticated.GET("/export/xlsx", co.ExportXLSX)
	}
	{
		authenticated.GET("/:id", co.GetExpense)
		authenticated.PUT("/:id", co.UpdateExpense)
		authenticated.DELETE("/:id", co.DeleteExpense)
	}
}

// OptionsExpenses returns the allowed HTTP verbs
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Expenses
//	@Success		204
//	@Router			/v1/expenses [options]
func (co Controller) OptionsExpenses(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// OptionsExpenseDetail returns the allowed HTTP verbs
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Expenses
//	@Success		204
//	@Failure		400	{object}	httpError
//	@Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
//	@Router			/v1/expenses/{id} [options]
func (co Controller) OptionsExpenseDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPutDelete(c)
}

// CreateExpense records a new expense
//
//	@Summary		Create expense
//	@Description	Records a new expense for the authenticated user
//	@Tags			Expenses
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Success		201		{object}	ExpenseResponse
//	@Failure		400		{object}	ExpenseResponse
//	@Failure		401		{object}	httpError
//	@Failure		500		{object}	ExpenseResponse
//	@Param			expense	body		ExpenseEditable	true	"Expense"
//	@Router			/v1/expenses [post]
func (co Controller) CreateExpense(c *gin.Context) {
	var editable ExpenseEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), ExpenseResponse{
			Error: message(err),
		})
		return
	}

	e, err := co.Expenses.Add(c.Request.Context(), auth.Owner(c), editable.editable())
	if err != nil {
		c.JSON(status(err), ExpenseResponse{
			Error: message(err),
		})
		return
	}

	apiResource := newExpense(c, e)
	c.JSON(http.StatusCreated, ExpenseResponse{Data: &apiResource})
}

// GetExpenses returns the expenses of a month
//
//	@Summary		Get expenses
//	@Description	Returns all expenses of the authenticated user in a month, most recent first
//	@Tags			Expenses
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200		{object}	ExpenseListResponse
//	@Failure		400		{object}	ExpenseListResponse
//	@Failure		401		{object}	httpError
//	@Failure		500		{object}	ExpenseListResponse
//	@Param			month	query		string	true	"Year and month in YYYY-MM format"
//	@Router			/v1/expenses [get]
func (co Controller) GetExpenses(c *gin.Context) {
	var query QueryMonth
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, ExpenseListResponse{
			Error: message(err),
		})
		return
	}

	expenses, err := co.Expenses.List(c.Request.Context(), auth.Owner(c), query.Month)
	if err != nil {
		c.JSON(status(err), ExpenseListResponse{
			Error: message(err),
		})
		return
	}

	// Transform resources to their API representation
	data := make([]Expense, 0, len(expenses))
	for _, e := range expenses {
		data = append(data, newExpense(c, e))
	}

	c.JSON(http.StatusOK, ExpenseListResponse{Data: data})
}

// GetExpense returns a specific expense
//
//	@Summary		Get expense
//	@Description	Returns a specific expense of the authenticated user
//	@Tags			Expenses
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	ExpenseResponse
//	@Failure		400	{object}	ExpenseResponse
//	@Failure		401	{object}	httpError
//	@Failure		404	{object}	ExpenseResponse
//	@Failure		500	{object}	ExpenseResponse
//	@Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
//	@Router			/v1/expenses/{id} [get]
func (co Controller) GetExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), ExpenseResponse{
			Error: message(err),
		})
		return
	}

	e, err := co.Expenses.Get(c.Request.Context(), auth.Owner(c), uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), ExpenseResponse{
			Error: message(err),
		})
		return
	}

	apiResource := newExpense(c, e)
	c.JSON(http.StatusOK, ExpenseResponse{Data: &apiResource})
}

// UpdateExpense replaces an expense
//
//	@Summary		Update expense
//	@Description	Replaces amount, category, date and description of an existing expense. Fields that are not set are reset.
//	@Tags			Expenses
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200		{object}	ExpenseResponse
//	@Failure		400		{object}	ExpenseResponse
//	@Failure		401		{object}	httpError
//	@Failure		404		{object}	ExpenseResponse
//	@Failure		500		{object}	ExpenseResponse
//	@Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
//	@Param			expense	body		ExpenseEditable	true	"Expense"
//	@Router			/v1/expenses/{id} [put]
func (co Controller) UpdateExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), ExpenseResponse{
			Error: message(err),
		})
		return
	}

	var editable ExpenseEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), ExpenseResponse{
			Error: message(err),
		})
		return
	}

	e, err := co.Expenses.Update(c.Request.Context(), auth.Owner(c), uri.ID.UUID, editable.editable())
	if err != nil {
		c.JSON(status(err), ExpenseResponse{
			Error: message(err),
		})
		return
	}

	apiResource := newExpense(c, e)
	c.JSON(http.StatusOK, ExpenseResponse{Data: &apiResource})
}

// DeleteExpense deletes an expense
//
//	@Summary		Delete expense
//	@Description	Deletes an expense of the authenticated user
//	@Tags			Expenses
//	@Security		BearerAuth
//	@Success		204
//	@Failure		400	{object}	httpError
//	@Failure		401	{object}	httpError
//	@Failure		404	{object}	httpError
//	@Failure		500	{object}	httpError
//	@Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
//	@Router			/v1/expenses/{id} [delete]
func (co Controller) DeleteExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: *message(err),
		})
		return
	}

	err = co.Expenses.Delete(c.Request.Context(), auth.Owner(c), uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: *message(err),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
