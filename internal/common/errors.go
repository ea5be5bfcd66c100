// Package common defines shared constants and sentinel errors used across
// paybook layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Record and account lookups.
	ErrNotFound = errors.New("not found")

	// Account directory errors.
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotLoggedIn        = errors.New("not logged in")

	// Input validation (name/position length, negative amounts, bad period).
	ErrValidation = errors.New("validation error")

	// Session token errors (malformed, expired or wrongly signed).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
