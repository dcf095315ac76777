package app

import (
	"context"

	"github.com/heartmarshall/bud-backend/internal/auth"
	"github.com/heartmarshall/bud-backend/internal/domain"
)

// Optional collaborators. A disabled integration must stay an untyped nil.

type catalogCache interface {
	Get(ctx context.Context, query string, maxResults int) ([]domain.GoogleVolume, bool, error)
	Set(ctx context.Context, query string, maxResults int, vols []domain.GoogleVolume) error
}

type pinger interface {
	Ping(ctx context.Context) error
}

type oauthVerifier interface {
	VerifyCode(ctx context.Context, code string) (*auth.OAuthIdentity, error)
}
