package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ratnesh1929/Expense-Tracker/internal/httputil"
	"github.com/ratnesh1929/Expense-Tracker/internal/models"
)

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Register string `json:"register" example:"https://example.com/api/v1/auth/register"`   // URL of the registration endpoint
	Login    string `json:"login" example:"https://example.com/api/v1/auth/login"`         // URL of the login endpoint
	Expenses string `json:"expenses" example:"https://example.com/api/v1/expenses"`        // URL of expense list endpoint
	Summary  string `json:"summary" example:"https://example.com/api/v1/expenses/summary"` // URL of the monthly summary endpoint
	Export   string `json:"export" example:"https://example.com/api/v1/expenses/export"`   // URL of the JSON export endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Register: url + "/v1/auth/register",
			Login:    url + "/v1/auth/login",
			Expenses: url + "/v1/expenses",
			Summary:  url + "/v1/expenses/summary",
			Export:   url + "/v1/expenses/export",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
