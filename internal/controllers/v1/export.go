package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ratnesh1929/Expense-Tracker/internal/auth"
	"github.com/ratnesh1929/Expense-Tracker/internal/expense"
	"github.com/ratnesh1929/Expense-Tracker/internal/httputil"
)

// OptionsExport returns the allowed HTTP verbs
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Export
//	@Success		204
//	@Router			/v1/expenses/export [options]
//	@Router			/v1/expenses/export/csv [options]
//	@Router			/v1/expenses/export/xlsx [options]
func (co Controller) OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// ExportJSON exports a month as JSON document
//
//	@Summary		Export JSON
//	@Description	Exports all expenses of a month together with their total as a JSON file. A month without expenses has a total of 0.
//	@Tags			Export
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200		{object}	expense.JSONExport
//	@Failure		400		{object}	httpError
//	@Failure		401		{object}	httpError
//	@Failure		500		{object}	httpError
//	@Param			month	query		string	true	"Year and month in YYYY-MM format"
//	@Router			/v1/expenses/export [get]
func (co Controller) ExportJSON(c *gin.Context) {
	var query QueryMonth
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	export, err := co.Expenses.ExportJSON(c.Request.Context(), auth.Owner(c), query.Month)
	if err != nil {
		c.JSON(status(err), httpError{Error: *message(err)})
		return
	}

	doc, err := export.Document()
	if err != nil {
		c.JSON(status(err), httpError{Error: *message(err)})
		return
	}

	httputil.Attachment(c, doc.ContentType, doc.Filename, doc.Body)
}

// ExportCSV exports a month as CSV file
//
//	@Summary		Export CSV
//	@Description	Exports all expenses of a month as CSV file with the columns date, amount, category and description
//	@Tags			Export
//	@Produce		text/csv
//	@Security		BearerAuth
//	@Success		200
//	@Failure		400		{object}	httpError
//	@Failure		401		{object}	httpError
//	@Failure		404		{object}	httpError
//	@Failure		500		{object}	httpError
//	@Param			month	query		string	true	"Year and month in YYYY-MM format"
//	@Router			/v1/expenses/export/csv [get]
func (co Controller) ExportCSV(c *gin.Context) {
	co.export(c, co.Expenses.ExportCSV)
}

// ExportXLSX exports a month as spreadsheet
//
//	@Summary		Export XLSX
//	@Description	Exports all expenses of a month as Excel spreadsheet with the same columns as the CSV export
//	@Tags			Export
//	@Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Security		BearerAuth
//	@Success		200
//	@Failure		400		{object}	httpError
//	@Failure		401		{object}	httpError
//	@Failure		404		{object}	httpError
//	@Failure		500		{object}	httpError
//	@Param			month	query		string	true	"Year and month in YYYY-MM format"
//	@Router			/v1/expenses/export/xlsx [get]
func (co Controller) ExportXLSX(c *gin.Context) {
	co.export(c, co.Expenses.ExportXLSX)
}

// export sends the document rendered by render as attachment.
func (co Controller) export(c *gin.Context, render func(context.Context, uuid.UUID, string) (expense.Document, error)) {
	var query QueryMonth
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	doc, err := render(c.Request.Context(), auth.Owner(c), query.Month)
	if err != nil {
		c.JSON(status(err), httpError{Error: *message(err)})
		return
	}

	httputil.Attachment(c, doc.ContentType, doc.Filename, doc.Body)
}
