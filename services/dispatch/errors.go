package dispatch

import "errors"

// Domain error taxonomy. Handlers map these onto HTTP status codes; the
// store and usecases never touch HTTP.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrValidation         = errors.New("validation failed")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
)
