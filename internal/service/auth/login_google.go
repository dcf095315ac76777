package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/bud-backend/internal/auth"
	"github.com/heartmarshall/bud-backend/internal/domain"
)

// LoginWithGoogle signs a user in with a Google authorization code.
// A known Google identity logs in; an unknown identity whose email matches an
// existing account is linked to it; otherwise a verified, active account is
// created. Google has already verified the email, so linked accounts are
// marked verified too.
func (s *Service) LoginWithGoogle(ctx context.Context, input GoogleLoginInput) (*AuthResult, error) {
	if s.oauth == nil {
		return nil, domain.NewValidationError("provider", "google sign-in is not configured")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	identity, err := s.oauth.VerifyCode(ctx, input.Code)
	if err != nil {
		return nil, fmt.Errorf("auth.LoginWithGoogle oauth verification: %w", err)
	}
	identity.Email = auth.NormalizeEmail(identity.Email)

	am, err := s.authMethods.GetByOAuth(ctx, domain.AuthMethodGoogle, identity.ProviderID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("auth.LoginWithGoogle get auth method: %w", err)
	}

	var (
		user  *domain.User
		event string
	)
	switch {
	case am != nil:
		user, err = s.users.GetByID(ctx, am.UserID)
		if err != nil {
			return nil, fmt.Errorf("auth.LoginWithGoogle get user: %w", err)
		}
		event = "user logged in via google"

	default:
		user, err = s.users.GetByEmail(ctx, identity.Email)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("auth.LoginWithGoogle get user by email: %w", err)
		}
		if user != nil {
			user, err = s.linkGoogle(ctx, user, identity)
			event = "google linked to existing account"
		} else {
			user, err = s.registerGoogleUser(ctx, identity)
			event = "user registered via google"
		}
		if err != nil {
			return nil, err
		}
	}

	if err := user.CanLogin(); err != nil {
		return nil, err
	}

	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.LoginWithGoogle issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, event, slog.String("user_id", user.ID.String()))
	return result, nil
}

func (s *Service) linkGoogle(ctx context.Context, user *domain.User, identity *auth.OAuthIdentity) (*domain.User, error) {
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.authMethods.Create(txCtx, domain.NewGoogleMethod(user.ID, identity.ProviderID)); err != nil {
			return fmt.Errorf("link google: %w", err)
		}

		if !user.EmailVerified {
			verified, err := s.users.MarkEmailVerified(txCtx, user.ID, s.now())
			if err != nil {
				return fmt.Errorf("mark verified: %w", err)
			}
			user = verified
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.LoginWithGoogle link: %w", err)
		}
		// Concurrent link: the method exists now, re-read the account.
		return s.users.GetByID(ctx, user.ID)
	}
	return user, nil
}

func (s *Service) registerGoogleUser(ctx context.Context, identity *auth.OAuthIdentity) (*domain.User, error) {
	var createdUser *domain.User

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		username, err := s.uniqueUsername(txCtx, auth.UsernameBase(identity.Email))
		if err != nil {
			return err
		}

		now := s.now()
		user, err := s.users.Create(txCtx, &domain.User{
			ID:              uuid.New(),
			Email:           identity.Email,
			Username:        username,
			Name:            derefOrEmpty(identity.Name),
			AvatarURL:       identity.AvatarURL,
			Role:            domain.RoleUser,
			IsActive:        true,
			EmailVerified:   true,
			EmailVerifiedAt: &now,
			CreatedAt:       now,
			UpdatedAt:       now,
		})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		if _, err := s.authMethods.Create(txCtx, domain.NewGoogleMethod(user.ID, identity.ProviderID)); err != nil {
			return fmt.Errorf("create auth method: %w", err)
		}

		createdUser = user
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			// Race: another request registered the same identity.
			am, retryErr := s.authMethods.GetByOAuth(ctx, domain.AuthMethodGoogle, identity.ProviderID)
			if retryErr == nil {
				if user, retryErr := s.users.GetByID(ctx, am.UserID); retryErr == nil {
					return user, nil
				}
			}
			return nil, fmt.Errorf("auth.LoginWithGoogle: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("auth.LoginWithGoogle register user: %w", err)
	}

	return createdUser, nil
}
