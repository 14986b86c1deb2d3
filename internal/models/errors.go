package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
	ErrAmountNegative   = errors.New("the amount must not be negative")
	ErrEmailNotUnique   = errors.New("a user with this email address already exists")
)
