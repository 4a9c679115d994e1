package validators

import "errors"

var (
	// ErrValidation marks any request payload that fails validation.
	// Callers match it with errors.Is to map the failure to an HTTP 422.
	ErrValidation = errors.New("invalid inputs passed")
)
