package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ratnesh1929/Expense-Tracker/internal/expense"
	"github.com/ratnesh1929/Expense-Tracker/internal/models"
	"github.com/ratnesh1929/Expense-Tracker/internal/types"
	"github.com/shopspring/decimal"
)

type ExpenseEditable struct {
	Amount      decimal.Decimal `json:"amount" example:"50" minimum:"0" default:"0"`                  // The amount spent. Must not be negative and must not have more than 15 significant digits
	Category    string          `json:"category" example:"Food"`                                      // Category of the expense. Expenses are summarized by category
	Date        types.Date      `json:"date" example:"2024-03-05" swaggertype:"string" format:"date"` // Day of the expense. RFC3339 timestamps are accepted, the time of day is dropped
	Description string          `json:"description" example:"lunch" default:""`                       // Free text description
}

// editable returns the fields to be stored for the API representation of the editable fields
func (editable ExpenseEditable) editable() expense.Editable {
	return expense.Editable{
		Amount:      editable.Amount,
		Category:    editable.Category,
		Date:        editable.Date.Time(),
		Description: editable.Description,
	}
}

type ExpenseLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/expenses/3c1f0f4a-8c9e-4bb5-8f0e-33b9a0b3d1a2"` // The expense itself
}

type Expense struct {
	ID        uuid.UUID `json:"id" example:"3c1f0f4a-8c9e-4bb5-8f0e-33b9a0b3d1a2"` // ID of the expense
	CreatedAt time.Time `json:"createdAt" example:"2024-03-05T12:24:53.312584Z"`   // Time the expense was created
	UpdatedAt time.Time `json:"updatedAt" example:"2024-03-05T12:24:53.312584Z"`   // Last time the expense was updated
	ExpenseEditable
	Links ExpenseLinks `json:"links"`
}

// newExpense returns the API v1 representation of the resource
func newExpense(c *gin.Context, model models.Expense) Expense {
	url := c.GetString(string(models.DBContextURL))

	return Expense{
		ID:        model.ID,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
		ExpenseEditable: ExpenseEditable{
			Amount:      model.Amount,
			Category:    model.Category,
			Date:        types.DateOf(model.Date),
			Description: model.Description,
		},
		Links: ExpenseLinks{
			Self: fmt.Sprintf("%s/v1/expenses/%s", url, model.ID),
		},
	}
}

type ExpenseResponse struct {
	Data  *Expense `json:"data"`                                                          // Data for the expense
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ExpenseListResponse struct {
	Data  []Expense `json:"data"`                                            // List of expenses
	Error *string   `json:"error" example:"the month parameter is required"` // The error, if any occurred
}

type CategoryTotal struct {
	Category string          `json:"category" example:"Food"` // Name of the category
	Total    decimal.Decimal `json:"total" example:"127.5"`   // Sum of all expenses in the category
}

type SummaryResponse struct {
	Data  []CategoryTotal `json:"data"`                                            // Totals per category, sorted by category
	Error *string         `json:"error" example:"the month parameter is required"` // The error, if any occurred
}
