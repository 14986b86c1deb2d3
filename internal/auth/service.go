// Package auth implements user accounts and bearer token authentication.
package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/ratnesh1929/Expense-Tracker/internal/models"
	"gorm.io/gorm"
)

// Session is a user together with a freshly issued token.
type Session struct {
	User  models.User
	Token string
}

// Service registers and logs in users.
type Service struct {
	db         *gorm.DB
	issuer     Issuer
	bcryptCost int
}

// NewService returns a Service storing users in db.
func NewService(db *gorm.DB, issuer Issuer, bcryptCost int) Service {
	return Service{db: db, issuer: issuer, bcryptCost: bcryptCost}
}

// Register creates a new user and returns a session for it.
func (s Service) Register(ctx context.Context, name, email, password string) (Session, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || password == "" {
		return Session{}, ErrFieldsRequired
	}

	hash, err := HashPassword(password, s.bcryptCost)
	if err != nil {
		return Session{}, err
	}

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}

	err = s.db.WithContext(ctx).Create(&user).Error
	if errors.Is(err, models.ErrEmailNotUnique) {
		return Session{}, ErrUserExists
	} else if err != nil {
		return Session{}, err
	}

	return s.session(user)
}

// Login verifies the credentials and returns a session.
//
// An unknown email and a wrong password both return ErrInvalidCredentials.
func (s Service) Login(ctx context.Context, email, password string) (Session, error) {
	var user models.User

	err := s.db.WithContext(ctx).Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		return Session{}, ErrInvalidCredentials
	} else if err != nil {
		return Session{}, err
	}

	if !CheckPassword(user.PasswordHash, password) {
		return Session{}, ErrInvalidCredentials
	}

	return s.session(user)
}

func (s Service) session(user models.User) (Session, error) {
	token, err := s.issuer.Issue(user.ID)
	if err != nil {
		return Session{}, err
	}

	return Session{User: user, Token: token}, nil
}
