package auth

import (
	"github.com/heartmarshall/bud-backend/internal/auth"
	"github.com/heartmarshall/bud-backend/internal/domain"
)

// RegisterInput holds parameters for password registration.
type RegisterInput struct {
	Email           string
	Password        string
	PasswordConfirm string
}

// Validate validates the register input. Email must already be normalized.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if !auth.IsEmail(i.Email) {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}

	switch {
	case i.Password == "":
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	case len(i.Password) < auth.MinPasswordLength:
		errs = append(errs, domain.FieldError{Field: "password", Message: "at least 8 characters"})
	case len(i.Password) > auth.MaxPasswordLength:
		errs = append(errs, domain.FieldError{Field: "password", Message: "at most 72 characters"})
	}

	if i.Password != i.PasswordConfirm {
		errs = append(errs, domain.FieldError{Field: "password2", Message: "passwords do not match"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginPasswordInput holds parameters for email + password login.
type LoginPasswordInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginPasswordInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) > auth.MaxPasswordLength {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// GoogleLoginInput holds the authorization code returned by Google.
type GoogleLoginInput struct {
	Code string
}

// Validate validates the Google login input.
func (i GoogleLoginInput) Validate() error {
	if i.Code == "" {
		return domain.NewValidationError("code", "required")
	}
	if len(i.Code) > 4096 {
		return domain.NewValidationError("code", "too long")
	}
	return nil
}

// RefreshInput holds parameters for token refresh operation.
type RefreshInput struct {
	RefreshToken string
}

// Validate validates the refresh input.
func (i RefreshInput) Validate() error {
	var errs []domain.FieldError

	if i.RefreshToken == "" {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "required"})
	} else if len(i.RefreshToken) > 512 {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
