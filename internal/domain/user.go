package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an application account.
type User struct {
	ID              uuid.UUID
	Email           string
	Username        string
	Name            string
	AvatarURL       *string
	Role            Role
	IsActive        bool
	EmailVerified   bool
	EmailVerifiedAt *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsAdmin reports whether the user may manage the shared catalog.
func (u *User) IsAdmin() bool {
	return u.Role.IsAdmin()
}

// CanLogin returns a ForbiddenError describing why the user may not sign in,
// or nil when the account is usable.
func (u *User) CanLogin() error {
	if !u.EmailVerified {
		return NewForbiddenError("verify your email before logging in")
	}
	if !u.IsActive {
		return NewForbiddenError("your account is not approved yet")
	}
	return nil
}

// RefreshToken represents a hashed refresh token stored in the database.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// IsRevoked returns true if the token has been revoked.
func (t *RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}

// IsExpired returns true if the token has expired relative to now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}

// EmailVerificationToken is a single-use numeric code sent to a new user.
type EmailVerificationToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Code      string
	ExpiresAt time.Time
	UsedAt    *time.Time
	CreatedAt time.Time
}

// IsUsable reports whether the code has not been used and has not expired.
func (t *EmailVerificationToken) IsUsable(now time.Time) bool {
	return t.UsedAt == nil && now.Before(t.ExpiresAt)
}
