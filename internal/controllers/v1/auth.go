package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ratnesh1929/Expense-Tracker/internal/httputil"
)

// RegisterAuthRoutes registers the routes for registration and login.
func (co Controller) RegisterAuthRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("/register", co.OptionsAuth)
		r.POST("/register", co.Register)
	}
	{
		r.OPTIONS("/login", co.OptionsAuth)
		r.POST("/login", co.Login)
	}
}

// OptionsAuth returns the allowed HTTP verbs
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Auth
//	@Success		204
//	@Router			/v1/auth/register [options]
//	@Router			/v1/auth/login [options]
func (co Controller) OptionsAuth(c *gin.Context) {
	httputil.OptionsPost(c)
}

// Register creates a new user
//
//	@Summary		Register
//	@Description	Creates a new user and returns a token for it
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Success		201		{object}	SessionResponse
//	@Failure		400		{object}	SessionResponse
//	@Failure		500		{object}	SessionResponse
//	@Param			user	body		RegisterRequest	true	"User"
//	@Router			/v1/auth/register [post]
func (co Controller) Register(c *gin.Context) {
	var request RegisterRequest

	err := httputil.BindData(c, &request)
	if err != nil {
		c.JSON(status(err), SessionResponse{
			Error: message(err),
		})
		return
	}

	session, err := co.Auth.Register(c.Request.Context(), request.Name, request.Email, request.Password)
	if err != nil {
		c.JSON(status(err), SessionResponse{
			Error: message(err),
		})
		return
	}

	apiResource := newSession(session)
	c.JSON(http.StatusCreated, SessionResponse{Data: &apiResource})
}

// Login returns a token for valid credentials
//
//	@Summary		Login
//	@Description	Verifies the credentials and returns a token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Success		200			{object}	SessionResponse
//	@Failure		400			{object}	SessionResponse
//	@Failure		401			{object}	SessionResponse
//	@Failure		500			{object}	SessionResponse
//	@Param			credentials	body		LoginRequest	true	"Credentials"
//	@Router			/v1/auth/login [post]
func (co Controller) Login(c *gin.Context) {
	var request LoginRequest

	err := httputil.BindData(c, &request)
	if err != nil {
		c.JSON(status(err), SessionResponse{
			Error: message(err),
		})
		return
	}

	session, err := co.Auth.Login(c.Request.Context(), request.Email, request.Password)
	if err != nil {
		c.JSON(status(err), SessionResponse{
			Error: message(err),
		})
		return
	}

	apiResource := newSession(session)
	c.JSON(http.StatusOK, SessionResponse{Data: &apiResource})
}
