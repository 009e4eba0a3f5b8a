package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Auth errors. ErrInvalidCredentials is returned both for an unknown
	// username and for a wrong password.
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotLoggedIn        = errors.New("not logged in")

	// Validation errors.
	ErrRequiredField    = errors.New("required field is empty")
	ErrPasswordTooShort = errors.New("password is too short")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrInvalidStatus    = errors.New("invalid status")

	// CLI errors.
	ErrUnknownKind = errors.New("unknown record kind")
)
