package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/places-directory/internal/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate checks struct tags and converts failures into the shared
// VALIDATION_ERROR shape so handlers can pass the result straight to
// utils.SendError.
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	if verrs, ok := err.(validator.ValidationErrors); ok {
		details := make(map[string]interface{}, len(verrs))
		for _, fe := range verrs {
			details[fe.Field()] = fe.Tag()
		}
		return errors.ErrValidation.WithDetails(details)
	}

	return errors.ErrValidation
}

// GetValidator exposes the underlying instance for custom configuration.
func GetValidator() *validator.Validate {
	return validate
}
