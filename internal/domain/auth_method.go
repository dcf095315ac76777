package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuthMethodType names a way of signing in.
type AuthMethodType string

const (
	AuthMethodPassword AuthMethodType = "password"
	AuthMethodGoogle   AuthMethodType = "google"
)

func (m AuthMethodType) String() string { return string(m) }

// AuthMethod is one credential of a user. Password methods carry a bcrypt
// hash, Google methods the account subject. An account created by
// registration can later gain a Google method with the same email.
type AuthMethod struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Method       AuthMethodType
	ProviderID   *string
	PasswordHash *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewPasswordMethod returns an unsaved password credential.
func NewPasswordMethod(userID uuid.UUID, hash string) *AuthMethod {
	return &AuthMethod{UserID: userID, Method: AuthMethodPassword, PasswordHash: &hash}
}

// NewGoogleMethod returns an unsaved Google credential for subject.
func NewGoogleMethod(userID uuid.UUID, subject string) *AuthMethod {
	return &AuthMethod{UserID: userID, Method: AuthMethodGoogle, ProviderID: &subject}
}
