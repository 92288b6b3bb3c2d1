package services

import "errors"

// Sentinel errors services wrap their failures with; controllers map them to
// HTTP status codes.
var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrConflict           = errors.New("conflict")
	ErrInvalidState       = errors.New("invalid state")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ErrItemNotFound is the data-layer miss; repositories translate it into
// ErrNotFound with domain context.
var ErrItemNotFound = errors.New("item not found")
