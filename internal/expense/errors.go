package expense

import "errors"

// Error classes. Use errors.Is to check which class an error belongs to.
var (
	ErrValidation = errors.New("the request contains invalid data")
	ErrNotFound   = errors.New("there is no expense matching your query")
	ErrStorage    = errors.New("an error occurred on the server during your request")
)

var (
	errAmountNegative  = validationError("the amount must not be negative")
	errAmountPrecision = validationError("the amount must not have more than 15 significant digits")
	errCategoryEmpty   = validationError("the category must be set")
	errDateMissing     = validationError("the date must be set")
	errMonthMissing    = validationError("the month parameter is required (YYYY-MM format)")
	errMonthInvalid    = validationError("could not parse the specified month, did you use YYYY-MM format?")
	errNoDataForMonth  = notFoundError("no expenses found for this month")
)

// validationError is an error with a specific message that belongs
// to the ErrValidation class.
type validationError string

func (e validationError) Error() string {
	return string(e)
}

func (e validationError) Is(target error) bool {
	return target == ErrValidation
}

// notFoundError is an error with a specific message that belongs
// to the ErrNotFound class.
type notFoundError string

func (e notFoundError) Error() string {
	return string(e)
}

func (e notFoundError) Is(target error) bool {
	return target == ErrNotFound
}
