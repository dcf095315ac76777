package catalog

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/bud-backend/internal/domain"
)

const (
	maxTitleLength  = 500
	maxAuthorLength = 300
)

// ListBooksInput filters the catalog listing.
type ListBooksInput struct {
	Query    string
	GenreIDs []uuid.UUID
	Limit    int
	Offset   int
}

// Validate checks all fields and collects all errors.
func (i ListBooksInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be >= 0"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// BookInput carries the editable fields of a book. A nil GenreIDs leaves the
// genres of an existing book untouched; an empty slice clears them.
type BookInput struct {
	Title         string
	Author        string
	Description   string
	ISBN10        *string
	ISBN13        *string
	TotalPages    int
	CoverURL      string
	Language      string
	PublishedDate string
	Publisher     string
	GenreIDs      []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i BookInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if utf8.RuneCountInString(title) > maxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}

	author := strings.TrimSpace(i.Author)
	if author == "" {
		errs = append(errs, domain.FieldError{Field: "author", Message: "required"})
	} else if utf8.RuneCountInString(author) > maxAuthorLength {
		errs = append(errs, domain.FieldError{Field: "author", Message: "too long"})
	}

	if i.TotalPages < 0 {
		errs = append(errs, domain.FieldError{Field: "total_pages", Message: "must be >= 0"})
	}
	if v := blankToNil(i.ISBN10); v != nil && len(*v) != 10 {
		errs = append(errs, domain.FieldError{Field: "isbn_10", Message: "must be 10 characters"})
	}
	if v := blankToNil(i.ISBN13); v != nil && len(*v) != 13 {
		errs = append(errs, domain.FieldError{Field: "isbn_13", Message: "must be 13 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// apply copies the input onto b.
func (i BookInput) apply(b *domain.Book) {
	b.Title = strings.TrimSpace(i.Title)
	b.Author = strings.TrimSpace(i.Author)
	b.Description = i.Description
	b.ISBN10 = blankToNil(i.ISBN10)
	b.ISBN13 = blankToNil(i.ISBN13)
	b.TotalPages = i.TotalPages
	b.CoverURL = i.CoverURL
	b.Language = i.Language
	if b.Language == "" {
		b.Language = "en"
	}
	b.PublishedDate = i.PublishedDate
	b.Publisher = i.Publisher
}

func blankToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
