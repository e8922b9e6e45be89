package validators

import (
	"context"

	"github.com/MKhiriev/dev-connector/models"
)

// Field names of registration and login payloads.
const (
	FieldName      = "name"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldPassword2 = "password2"
)

const (
	nameMinLength     = 2
	nameMaxLength     = 30
	passwordMinLength = 6
	passwordMaxLength = 30
	// bcrypt rejects longer input
	passwordMaxBytes = 72
)

// UserValidator validates registration and login payloads.
type UserValidator struct {
}

// NewUserValidator constructs a new UserValidator
// and returns it as the Validator interface.
func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateRegister(req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword, FieldPassword2}
	}

	errs := FieldErrors{}
	for _, f := range fields {
		switch f {
		case FieldName:
			if isEmpty(req.Name) {
				errs.add(FieldName, "Name field is required")
			} else if !lengthBetween(req.Name, nameMinLength, nameMaxLength) {
				errs.add(FieldName, "Name must be between 2 and 30 characters")
			}
		case FieldEmail:
			v.checkEmail(errs, req.Email)
		case FieldPassword:
			if isEmpty(req.Password) {
				errs.add(FieldPassword, "Password field is required")
			} else if !lengthBetween(req.Password, passwordMinLength, passwordMaxLength) {
				errs.add(FieldPassword, "Password must be at least 6 characters")
			} else if len(req.Password) > passwordMaxBytes {
				errs.add(FieldPassword, "Password is too long")
			}
		case FieldPassword2:
			if isEmpty(req.Password2) {
				errs.add(FieldPassword2, "Confirm Password field is required")
			} else if req.Password != req.Password2 {
				errs.add(FieldPassword2, "Passwords must match")
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.errOrNil()
}

func (v *UserValidator) validateLogin(req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	errs := FieldErrors{}
	for _, f := range fields {
		switch f {
		case FieldEmail:
			v.checkEmail(errs, req.Email)
		case FieldPassword:
			if isEmpty(req.Password) {
				errs.add(FieldPassword, "Password field is required")
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.errOrNil()
}

func (v *UserValidator) checkEmail(errs FieldErrors, email string) {
	if isEmpty(email) {
		errs.add(FieldEmail, "Email field is required")
	} else if !isEmail(email) {
		errs.add(FieldEmail, "Email is invalid")
	}
}
