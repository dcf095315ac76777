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

// Register creates an inactive, unverified account with a password and
// emails a verification code. No tokens are issued until the email is verified.
// Returns ErrAlreadyExists if the email is taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	input.Email = auth.NormalizeEmail(input.Email)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	var (
		createdUser *domain.User
		code        string
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		username, err := s.uniqueUsername(txCtx, auth.UsernameBase(input.Email))
		if err != nil {
			return err
		}

		now := s.now()
		user, err := s.users.Create(txCtx, &domain.User{
			ID:        uuid.New(),
			Email:     input.Email,
			Username:  username,
			Role:      domain.RoleUser,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		if _, err := s.authMethods.Create(txCtx, domain.NewPasswordMethod(user.ID, hash)); err != nil {
			return fmt.Errorf("create auth method: %w", err)
		}

		code, err = s.issueVerificationCode(txCtx, user.ID)
		if err != nil {
			return err
		}

		createdUser = user
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.Register: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	s.sendVerificationEmail(ctx, createdUser, code)

	s.log.InfoContext(ctx, "user registered via password",
		slog.String("user_id", createdUser.ID.String()))

	return createdUser, nil
}
