package forms

import "errors"

// Sentinel kinds for form errors.
var (
	ErrValidation = errors.New("validation failed")
)
