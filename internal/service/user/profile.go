package user

import (
	"context"
	"fmt"

	"github.com/heartmarshall/bud-backend/internal/domain"
	"github.com/heartmarshall/bud-backend/pkg/ctxutil"
)

// GetProfile returns the authenticated user's profile. Accounts that are not
// verified or not active get a ForbiddenError.
func (s *Service) GetProfile(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetProfile: %w", err)
	}

	if !user.EmailVerified || !user.IsActive {
		return nil, domain.NewForbiddenError("user is not approved")
	}
	return user, nil
}
