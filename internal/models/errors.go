package models

import (
	"errors"
	"fmt"
)

var ErrDuplicateReview = errors.New("models: review has already been created")

// ValidationError is a client input error: a value outside its allowed
// domain or of the wrong type.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// IsValidationError reports whether err is or wraps a *ValidationError.
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
