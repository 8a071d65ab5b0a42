package utils

import "errors"

var (
	// ErrNotFoundOrForbidden covers both a missing row and a row owned by a
	// different user. The two cases are deliberately indistinguishable so a
	// caller cannot probe for the existence of other users' records.
	ErrNotFoundOrForbidden = errors.New("record not found or not accessible")

	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrValidation         = errors.New("validation failed")
	ErrDispatchFailed     = errors.New("failed to send email")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
	ErrDatabaseError      = errors.New("database error")
)
