package v1

import (
	"github.com/google/uuid"
	"github.com/ratnesh1929/Expense-Tracker/internal/auth"
)

type RegisterRequest struct {
	Name     string `json:"name" example:"Ada Lovelace" binding:"required"`           // Display name of the user
	Email    string `json:"email" example:"ada@example.com" binding:"required,email"` // Email address, used to log in
	Password string `json:"password" example:"correct horse battery staple" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" example:"ada@example.com" binding:"required"`
	Password string `json:"password" example:"correct horse battery staple" binding:"required"`
}

type User struct {
	ID    uuid.UUID `json:"id" example:"9b6f4f52-7b0c-4fd4-9e2d-5b8a4c0f7e11"` // ID of the user
	Name  string    `json:"name" example:"Ada Lovelace"`                       // Display name of the user
	Email string    `json:"email" example:"ada@example.com"`                   // Email address of the user
}

type Session struct {
	User  User   `json:"user"`
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."` // Bearer token for the Authorization header
}

func newSession(s auth.Session) Session {
	return Session{
		User: User{
			ID:    s.User.ID,
			Name:  s.User.Name,
			Email: s.User.Email,
		},
		Token: s.Token,
	}
}

type SessionResponse struct {
	Data  *Session `json:"data"`                                // The user and a token
	Error *string  `json:"error" example:"invalid credentials"` // The error, if any occurred
}
