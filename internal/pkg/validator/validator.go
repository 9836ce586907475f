package validator

import (
	"github.com/go-playground/validator/v10"
)

// RequestValidator adapts go-playground/validator to Echo's Validator interface
type RequestValidator struct {
	validate *validator.Validate
}

// New creates a request validator
func New() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate checks struct-level validation tags on a bound request payload
func (v *RequestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}
