package cli

import (
	"fmt"

	"github.com/coursemate/coursemate/internal/common"
	"github.com/go-playground/validator/v10"
)

// The stores deliberately accept any credentials; username/email/password
// validation is the presentation layer's job, so it lives here, in front of
// the controller.

type registerInput struct {
	Username string `validate:"required,min=3,max=32"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

type loginInput struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

type profileInput struct {
	Username string `validate:"required,min=3,max=32"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// checkInput validates v and wraps any violation in common.ErrValidation so
// callers can branch on the error kind instead of parsing messages.
func checkInput(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %w", common.ErrValidation, err)
	}
	return nil
}
