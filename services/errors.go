package services

import "errors"

// The two error kinds the HTTP boundary translates. Everything else is a
// storage failure and maps to a 500.
var (
	ErrNotFound   = errors.New("record not found")
	ErrValidation = errors.New("validation failed")
)
