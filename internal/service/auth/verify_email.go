package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/bud-backend/internal/adapter/mailer"
	"github.com/heartmarshall/bud-backend/internal/auth"
	"github.com/heartmarshall/bud-backend/internal/domain"
)

// VerifyEmail consumes a verification code, activates the account and signs
// the user in.
func (s *Service) VerifyEmail(ctx context.Context, code string) (*AuthResult, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domain.NewValidationError("code", "required")
	}
	if !auth.IsVerificationCode(code) {
		return nil, domain.NewValidationError("code", "verification code must be a 6-digit number")
	}

	token, err := s.verifications.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewValidationError("code", "invalid token")
		}
		return nil, fmt.Errorf("auth.VerifyEmail get token: %w", err)
	}

	now := s.now()
	if !token.IsUsable(now) {
		return nil, domain.NewValidationError("code", "token expired or already used")
	}

	var user *domain.User
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.verifications.MarkUsed(txCtx, token.ID, now); err != nil {
			return fmt.Errorf("mark token used: %w", err)
		}
		var err error
		user, err = s.users.MarkEmailVerified(txCtx, token.UserID, now)
		if err != nil {
			return fmt.Errorf("mark verified: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			// Another request consumed the same code first.
			return nil, domain.NewValidationError("code", "token expired or already used")
		}
		return nil, fmt.Errorf("auth.VerifyEmail: %w", err)
	}

	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.VerifyEmail issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "email verified", slog.String("user_id", user.ID.String()))
	return result, nil
}

// ResendVerification issues a fresh code to an unverified account. Unknown
// and already verified emails succeed silently so the endpoint cannot be
// used to probe for accounts.
func (s *Service) ResendVerification(ctx context.Context, email string) error {
	email = auth.NormalizeEmail(email)
	if !auth.IsEmail(email) {
		return domain.NewValidationError("email", "invalid email")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("auth.ResendVerification get user: %w", err)
	}
	if user.EmailVerified {
		return nil
	}

	var code string
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		code, err = s.issueVerificationCode(txCtx, user.ID)
		return err
	})
	if err != nil {
		return fmt.Errorf("auth.ResendVerification: %w", err)
	}

	s.sendVerificationEmail(ctx, user, code)
	return nil
}

// issueVerificationCode replaces any outstanding codes of the user with a
// new one. Codes are globally unique, so a collision is retried.
func (s *Service) issueVerificationCode(ctx context.Context, userID uuid.UUID) (string, error) {
	if err := s.verifications.DeleteByUser(ctx, userID); err != nil {
		return "", fmt.Errorf("delete old codes: %w", err)
	}

	expiresAt := s.now().Add(s.verifyTTL)
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := s.newCode()
		if err != nil {
			return "", err
		}

		_, err = s.verifications.Create(ctx, userID, code, expiresAt)
		if err == nil {
			return code, nil
		}
		if !errors.Is(err, domain.ErrAlreadyExists) {
			return "", fmt.Errorf("create code: %w", err)
		}
	}
	return "", fmt.Errorf("create code: %w", domain.ErrConflict)
}

// sendVerificationEmail delivers the code. Delivery failures are logged only:
// the account exists and the user can ask for another code.
func (s *Service) sendVerificationEmail(ctx context.Context, user *domain.User, code string) {
	msg := mailer.Message{
		To:      user.Email,
		Subject: "Verify your Bud account email",
		Body: fmt.Sprintf(
			"Hi %s,\n\nWelcome to Bud! Use this 6-digit verification code:\n\n%s\n\nThis code expires in %s.\n\nThanks,\nBud Team\n",
			displayName(user), code, s.verifyTTL,
		),
	}
	if err := s.mail.Send(ctx, msg); err != nil {
		s.log.ErrorContext(ctx, "send verification email",
			slog.String("user_id", user.ID.String()),
			slog.String("error", err.Error()))
	}
}

func displayName(u *domain.User) string {
	if u.Name != "" {
		return u.Name
	}
	return u.Username
}
