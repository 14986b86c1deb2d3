// Package healthz implements the health check endpoint.
package healthz

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ratnesh1929/Expense-Tracker/internal/httputil"
	"github.com/ratnesh1929/Expense-Tracker/internal/models"
	"github.com/rs/zerolog/log"
)

// RegisterRoutes registers the routes for the healthz endpoint.
func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", Get)
}

// Options returns the allowed HTTP verbs
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

type Response struct {
	Error string `json:"error" example:"The database cannot be accessed"`
}

// Get returns the application health
//
//	@Summary		Get health
//	@Description	Returns the application health and, if not healthy, an error
//	@Tags			General
//	@Produce		json
//	@Success		200
//	@Failure		500	{object}	Response
//	@Router			/healthz [get]
func Get(c *gin.Context) {
	sqlDB, err := models.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}

	if err != nil {
		log.Error().Msgf("Healthz: %v", err)
		c.JSON(http.StatusInternalServerError, Response{
			Error: models.ErrGeneral.Error(),
		})
		return
	}

	c.Status(http.StatusOK)
}
