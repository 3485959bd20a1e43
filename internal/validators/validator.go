// Package validators centralises request-payload validation on top of
// go-playground/validator. Models declare their constraints via `validate`
// struct tags; services call the typed helpers before touching storage.
package validators

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"carmarket/models"
)

// Validator wraps a configured validator.Validate instance.
// Safe for concurrent use; the underlying instance caches struct metadata.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	return &Validator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// ValidateCar checks a car payload before it is saved: vendor is required,
// speed and price must be non-negative.
func (v *Validator) ValidateCar(car models.Car) error {
	if err := v.validate.Struct(car); err != nil {
		return fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	return nil
}

// ValidateCredentials checks a login/signup payload: username and password
// are required.
func (v *Validator) ValidateCredentials(creds models.Credentials) error {
	if err := v.validate.Struct(creds); err != nil {
		return fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	return nil
}
