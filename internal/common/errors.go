// Package common defines the sentinel errors shared across CourseMate
// components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Account directory errors.
	ErrAccountExists     = errors.New("account already exists")
	ErrAccountNotFound   = errors.New("account not found")
	ErrInvalidCredential = errors.New("invalid credential")

	// Session errors.
	ErrNoActiveSession = errors.New("no active session")

	// Input validation errors (produced by the presentation layer, never by
	// the stores themselves).
	ErrValidation = errors.New("validation error")

	// Infrastructure errors.
	ErrStorage = errors.New("storage error")
	ErrFetch   = errors.New("fetch error")
)
