package store

import "errors"

var (
	ErrMissingField       = errors.New("username and password are required")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNoSession          = errors.New("no active session")
)
