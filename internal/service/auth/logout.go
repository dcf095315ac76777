package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/bud-backend/internal/auth"
	"github.com/heartmarshall/bud-backend/internal/domain"
	"github.com/heartmarshall/bud-backend/pkg/ctxutil"
)

// Logout revokes all refresh tokens for the authenticated user.
func (s *Service) Logout(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.tokens.RevokeAllByUser(ctx, userID); err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}

	s.log.InfoContext(ctx, "user logged out", slog.String("user_id", userID.String()))
	return nil
}

// ValidateToken validates an access token and returns its claims.
// Returns ErrUnauthorized if the token is invalid or expired.
func (s *Service) ValidateToken(ctx context.Context, token string) (auth.Claims, error) {
	claims, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return auth.Claims{}, domain.ErrUnauthorized
	}
	return claims, nil
}

// CleanupExpiredTokens removes expired or revoked refresh tokens and expired
// verification codes. Returns the number of rows deleted from each table.
func (s *Service) CleanupExpiredTokens(ctx context.Context) (refresh int, codes int, err error) {
	refresh, err = s.tokens.DeleteExpired(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "token cleanup failed", slog.String("error", err.Error()))
		return 0, 0, fmt.Errorf("auth.CleanupExpiredTokens refresh: %w", err)
	}

	codes, err = s.verifications.DeleteExpired(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "verification cleanup failed", slog.String("error", err.Error()))
		return refresh, 0, fmt.Errorf("auth.CleanupExpiredTokens codes: %w", err)
	}

	if refresh > 0 || codes > 0 {
		s.log.InfoContext(ctx, "cleaned up expired tokens",
			slog.Int("refresh_tokens", refresh),
			slog.Int("verification_codes", codes))
	}
	return refresh, codes, nil
}
