package reading

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/bud-backend/internal/domain"
)

const (
	DefaultSessionsLimit = 20
	MaxSessionsLimit     = 100
)

// LogSessionInput holds the parameters of one reading sitting.
type LogSessionInput struct {
	BookID          uuid.UUID
	StartPage       int
	EndPage         int
	DurationMinutes int
}

// Validate checks all fields and collects all errors.
func (i LogSessionInput) Validate() error {
	var errs []domain.FieldError

	if i.BookID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "book_id", Message: "required"})
	}
	if i.StartPage < 0 {
		errs = append(errs, domain.FieldError{Field: "start_page", Message: "must be >= 0"})
	}
	if i.EndPage < 0 {
		errs = append(errs, domain.FieldError{Field: "end_page", Message: "must be >= 0"})
	}
	if i.DurationMinutes < 0 {
		errs = append(errs, domain.FieldError{Field: "duration_minutes", Message: "must be >= 0"})
	}
	if i.EndPage < i.StartPage {
		errs = append(errs, domain.FieldError{Field: "end_page", Message: "must be >= start_page"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListSessionsInput holds pagination for the session history.
type ListSessionsInput struct {
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListSessionsInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 || i.Limit > MaxSessionsLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 100"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
