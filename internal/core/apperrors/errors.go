// Package apperrors holds the error kinds shared by services and the HTTP layer.
// Callers wrap them with fmt.Errorf("%w: ...") and match with errors.Is.
package apperrors

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrAlreadyLiked       = errors.New("album already liked")
	ErrWriteFailed        = errors.New("write failed")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")
	ErrConflict           = errors.New("conflict")
	ErrValidation         = errors.New("validation failed")
)
