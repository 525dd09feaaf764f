package validation

import (
	"github.com/go-playground/validator/v10"
)

// Echo adapter so controllers can call c.Validate(&req) on bound requests.
type RequestValidator struct {
	validate *validator.Validate
}

func New() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

func (v *RequestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
