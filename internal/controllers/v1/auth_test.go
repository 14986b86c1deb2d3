package v1_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/ratnesh1929/Expense-Tracker/internal/controllers/v1"
	"github.com/ratnesh1929/Expense-Tracker/internal/test"
	"github.com/stretchr/testify/assert"
)

// register creates a new user and returns its session.
func register(t *testing.T, request v1.RegisterRequest, expectedStatus ...int) v1.SessionResponse {
	if request.Name == "" {
		request.Name = "Test User"
	}

	if request.Email == "" {
		request.Email = uuid.NewString() + "@example.com"
	}

	if request.Password == "" {
		request.Password = "correct horse battery staple"
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/auth/register", request)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.SessionResponse
	test.DecodeResponse(t, &r, &response)

	return response
}

// token registers a new user and returns the Authorization header for it.
func token(t *testing.T) map[string]string {
	return test.Bearer(register(t, v1.RegisterRequest{}).Data.Token)
}

func (suite *TestSuiteStandard) TestRegister() {
	response := register(suite.T(), v1.RegisterRequest{Name: "Ada", Email: "Ada@Example.com"})

	suite.Assert().Nil(response.Error)
	suite.Assert().Equal("Ada", response.Data.User.Name)
	suite.Assert().Equal("ada@example.com", response.Data.User.Email)
	suite.Assert().NotEmpty(response.Data.Token)

	// The password hash is never part of a response
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/login", v1.LoginRequest{
		Email:    "ada@example.com",
		Password: "correct horse battery staple",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().NotContains(r.Body.String(), "$2a$")
}

func (suite *TestSuiteStandard) TestRegisterFails() {
	register(suite.T(), v1.RegisterRequest{Email: "ada@example.com"})

	tests := []struct {
		name    string
		body    any
		message string
	}{
		{"Duplicate email", v1.RegisterRequest{Name: "Ada", Email: "ADA@example.com", Password: "x"}, "already exists"},
		{"Missing name", map[string]string{"email": "grace@example.com", "password": "x"}, "name is required"},
		{"Invalid email", v1.RegisterRequest{Name: "Grace", Email: "grace", Password: "x"}, "valid email"},
		{"Missing password", map[string]string{"name": "Grace", "email": "grace@example.com"}, "password is required"},
		{"Password too long", v1.RegisterRequest{Name: "Grace", Email: "grace@example.com", Password: strings.Repeat("x", 73)}, "72 bytes"},
		{"Broken body", `{ "name": `, "un-parseable"},
		{"Empty body", "", "must not be empty"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/auth/register", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.SessionResponse
			test.DecodeResponse(t, &r, &response)
			assert.Nil(t, response.Data)
			assert.Contains(t, *response.Error, tt.message)
		})
	}
}

func (suite *TestSuiteStandard) TestLogin() {
	registered := register(suite.T(), v1.RegisterRequest{Email: "ada@example.com", Password: "secret"})

	tests := []struct {
		name     string
		email    string
		password string
		status   int
	}{
		{"Valid", "ada@example.com", "secret", http.StatusOK},
		{"Email is case insensitive", "ADA@example.com", "secret", http.StatusOK},
		{"Wrong password", "ada@example.com", "wrong", http.StatusUnauthorized},
		{"Unknown email", "grace@example.com", "secret", http.StatusUnauthorized},
		{"Missing password", "ada@example.com", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/auth/login", v1.LoginRequest{Email: tt.email, Password: tt.password})
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.SessionResponse
			test.DecodeResponse(t, &r, &response)

			if tt.status == http.StatusOK {
				assert.Equal(t, registered.Data.User.ID, response.Data.User.ID)
				assert.NotEmpty(t, response.Data.Token)
				return
			}

			assert.Nil(t, response.Data)
		})
	}
}

func (suite *TestSuiteStandard) TestLoginDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/login", v1.LoginRequest{Email: "ada@example.com", Password: "secret"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}

func (suite *TestSuiteStandard) TestAuthOptions() {
	for _, path := range []string{"register", "login"} {
		r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/auth/"+path, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
		suite.Assert().Equal("OPTIONS, POST", r.Header().Get("allow"))
	}
}
