package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"unicode"
)

// VerificationCodeLength is the number of digits in an email verification code.
const VerificationCodeLength = 6

var (
	codePattern   = regexp.MustCompile(`^\d{6}$`)
	slugStripper  = regexp.MustCompile(`[^a-z0-9]+`)
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	maxCodeNumber = big.NewInt(1_000_000)
)

// GenerateVerificationCode returns a uniformly random zero-padded 6-digit code.
func GenerateVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, maxCodeNumber)
	if err != nil {
		return "", fmt.Errorf("generate code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// IsVerificationCode reports whether s has the shape of a verification code.
func IsVerificationCode(s string) bool {
	return codePattern.MatchString(s)
}

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsEmail performs a shallow syntactic check of an email address.
func IsEmail(email string) bool {
	return len(email) <= 254 && emailPattern.MatchString(email)
}

// MaxUsernameLength bounds generated usernames, excluding any "-N" suffix.
const MaxUsernameLength = 24

// UsernameBase derives a username from the local part of an email address:
// lowercased, non-alphanumerics collapsed to "-", trimmed to MaxUsernameLength.
// Falls back to "reader" when nothing usable remains.
func UsernameBase(email string) string {
	local, _, _ := strings.Cut(email, "@")
	local = strings.ToLower(strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return '-'
		}
		return r
	}, local))

	slug := strings.Trim(slugStripper.ReplaceAllString(local, "-"), "-")
	if len(slug) > MaxUsernameLength {
		slug = strings.TrimRight(slug[:MaxUsernameLength], "-")
	}
	if slug == "" {
		return "reader"
	}
	return slug
}

// Slugify turns a display name into a URL-safe slug.
func Slugify(s string) string {
	return strings.Trim(slugStripper.ReplaceAllString(strings.ToLower(s), "-"), "-")
}
