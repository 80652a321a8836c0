package usecase

import "errors"

var (
	// ErrInvalidCredentials is returned when no user matches a login attempt.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrValidation wraps input errors detected by a service.
	ErrValidation = errors.New("validation failed")
)
