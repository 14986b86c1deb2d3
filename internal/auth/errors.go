package auth

import "errors"

var (
	ErrFieldsRequired     = errors.New("name, email and password are required")
	ErrUserExists         = errors.New("a user with this email address already exists")
	ErrPasswordTooLong    = errors.New("the password must not be longer than 72 bytes")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("not authorized, a valid bearer token is required")
)
