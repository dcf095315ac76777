package auth

import (
	"time"

	"github.com/heartmarshall/bud-backend/internal/domain"
)

// AuthResult is returned by every operation that signs a user in.
type AuthResult struct {
	AccessToken  string
	RefreshToken string // raw token, NOT hash
	ExpiresIn    time.Duration
	User         *domain.User
}
