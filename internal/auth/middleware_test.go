package auth_test

import (
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ratnesh1929/Expense-Tracker/internal/auth"
	"github.com/ratnesh1929/Expense-Tracker/internal/models"
)

func (suite *TestSuiteStandard) serve(header string) *httptest.ResponseRecorder {
	r := gin.New()
	r.GET("/", auth.Middleware(suite.issuer, models.DB), func(c *gin.Context) {
		c.String(http.StatusOK, auth.Owner(c).String())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func (suite *TestSuiteStandard) TestMiddleware() {
	session, err := suite.service.Register(suite.T().Context(), "Ada", "ada@example.com", "secret")
	suite.Require().Nil(err)

	w := suite.serve("Bearer " + session.Token)
	suite.Assert().Equal(http.StatusOK, w.Code)
	suite.Assert().Equal(session.User.ID.String(), w.Body.String())

	w = suite.serve("bearer " + session.Token)
	suite.Assert().Equal(http.StatusOK, w.Code, "The scheme is case insensitive")
}

func (suite *TestSuiteStandard) TestMiddlewareUnauthorized() {
	unknownUser, err := suite.issuer.Issue(uuid.New())
	suite.Require().Nil(err)

	expired, err := auth.NewIssuer("test secret", -time.Minute).Issue(uuid.New())
	suite.Require().Nil(err)

	for _, header := range []string{"", "Bearer", "Bearer ", "Basic dXNlcjpwYXNz", "Bearer garbage", "Bearer " + expired, "Bearer " + unknownUser} {
		w := suite.serve(header)
		suite.Assert().Equal(http.StatusUnauthorized, w.Code, "header %q", header)
		suite.Assert().Contains(w.Body.String(), auth.ErrUnauthorized.Error())
	}
}

func (suite *TestSuiteStandard) TestMiddlewareDatabaseError() {
	token, err := suite.issuer.Issue(uuid.New())
	suite.Require().Nil(err)
	suite.CloseDB()

	w := suite.serve("Bearer " + token)
	suite.Assert().Equal(http.StatusInternalServerError, w.Code)
}

func (suite *TestSuiteStandard) TestOwnerWithoutMiddleware() {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	suite.Assert().Equal(uuid.Nil, auth.Owner(c))
}
