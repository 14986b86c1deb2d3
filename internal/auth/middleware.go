package auth

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ratnesh1929/Expense-Tracker/internal/httputil"
	"github.com/ratnesh1929/Expense-Tracker/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const ownerKey = "expense_tracker_owner"

// Middleware authenticates requests with an "Authorization: Bearer <token>"
// header. The token must be valid and belong to an existing user.
func Middleware(issuer Issuer, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearer(c.GetHeader("Authorization"))
		if !ok {
			abort(c, http.StatusUnauthorized, ErrUnauthorized)
			return
		}

		owner, err := issuer.Verify(token)
		if err != nil {
			abort(c, http.StatusUnauthorized, ErrUnauthorized)
			return
		}

		var count int64
		err = db.WithContext(c.Request.Context()).Model(&models.User{}).Where("id = ?", owner).Count(&count).Error
		if err != nil {
			log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
			abort(c, http.StatusInternalServerError, models.ErrGeneral)
			return
		}

		if count == 0 {
			abort(c, http.StatusUnauthorized, ErrUnauthorized)
			return
		}

		c.Set(ownerKey, owner)
		c.Next()
	}
}

// Owner returns the ID of the authenticated user. It returns uuid.Nil
// when the request did not pass through Middleware.
func Owner(c *gin.Context) uuid.UUID {
	owner, _ := c.Get(ownerKey)
	id, _ := owner.(uuid.UUID)
	return id
}

func bearer(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)
	return token, token != ""
}

func abort(c *gin.Context, status int, err error) {
	httputil.NewError(c, status, err)
	c.Abort()
}
