// Package validators provides abstractions for input validation of
// incoming request payloads.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//
// Usage patterns:
//  1. Inject a Validator implementation into services or handlers.
//  2. Call Validate with context and the decoded request body.
//
// This package decouples validation logic from transport layers and storage,
// enabling reusable and testable validation strategies.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input. A failure is reported as an
	// error wrapping [ErrValidation].
	Validate(context.Context, any) error
}
