package usecases

import "errors"

// Validation errors map to 400 responses; anything else is a store failure.
var (
	ErrMissingSmoke  = errors.New("smoke value is required")
	ErrMissingStatus = errors.New("status is required")
)

func IsValidationError(err error) bool {
	return errors.Is(err, ErrMissingSmoke) || errors.Is(err, ErrMissingStatus)
}
