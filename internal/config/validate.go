package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
		return fmt.Errorf("auth.bcrypt_cost must be within 4..31 (got %d)", c.Auth.BcryptCost)
	}

	if c.Email.VerificationTTL <= 0 {
		return fmt.Errorf("email.verification_ttl must be > 0 (got %s)", c.Email.VerificationTTL)
	}
	switch strings.ToLower(c.Email.Driver) {
	case "log":
	case "smtp":
		if c.Email.SMTPHost == "" {
			return fmt.Errorf("email.smtp_host is required when email.driver is smtp")
		}
	default:
		return fmt.Errorf("email.driver must be one of log, smtp (got %q)", c.Email.Driver)
	}

	if c.Catalog.MaxBooksPerUser < 0 {
		return fmt.Errorf("catalog.max_books_per_user must be >= 0 (got %d)", c.Catalog.MaxBooksPerUser)
	}
	if c.Catalog.DefaultPageSize <= 0 || c.Catalog.DefaultPageSize > c.Catalog.MaxPageSize {
		return fmt.Errorf("catalog.default_page_size must be within 1..%d (got %d)",
			c.Catalog.MaxPageSize, c.Catalog.DefaultPageSize)
	}

	if c.GoogleBooks.MaxResults <= 0 || c.GoogleBooks.MaxResults > 40 {
		return fmt.Errorf("google_books.max_results must be within 1..40 (got %d)", c.GoogleBooks.MaxResults)
	}

	if err := c.Reading.validate(); err != nil {
		return fmt.Errorf("reading: %w", err)
	}

	return nil
}

func (r *ReadingConfig) validate() error {
	tz := strings.TrimSpace(r.Timezone)
	if tz == "" {
		tz = "UTC"
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return fmt.Errorf("timezone %q: %w", r.Timezone, err)
	}
	r.Location = loc
	return nil
}
