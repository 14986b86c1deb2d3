package v1

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ratnesh1929/Expense-Tracker/internal/auth"
	"github.com/ratnesh1929/Expense-Tracker/internal/expense"
	"github.com/ratnesh1929/Expense-Tracker/internal/httputil"
	"github.com/ratnesh1929/Expense-Tracker/internal/models"
	et_uuid "github.com/ratnesh1929/Expense-Tracker/internal/uuid"
	"github.com/rs/zerolog/log"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the HTTP status for an error.
func status(err error) int {
	var jsonUnmarshalTypeError *json.UnmarshalTypeError

	switch {
	case errors.Is(err, expense.ErrValidation),
		errors.Is(err, httputil.ErrInvalidBody),
		errors.Is(err, httputil.ErrRequestBodyEmpty),
		errors.Is(err, et_uuid.ErrInvalid),
		errors.Is(err, auth.ErrFieldsRequired),
		errors.Is(err, auth.ErrUserExists),
		errors.Is(err, auth.ErrPasswordTooLong),
		errors.As(err, &jsonUnmarshalTypeError):
		return http.StatusBadRequest
	case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, expense.ErrNotFound):
		return http.StatusNotFound
	}

	return http.StatusInternalServerError
}

// message returns the error message for the client. Server errors
// are logged and replaced with a general message.
func message(err error) *string {
	s := err.Error()
	if status(err) == http.StatusInternalServerError && !errors.Is(err, expense.ErrStorage) && !errors.Is(err, models.ErrGeneral) {
		log.Error().Msgf("%T: %v", err, s)
		s = models.ErrGeneral.Error()
	}

	return &s
}
