package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/bud-backend/internal/adapter/mailer"
	"github.com/heartmarshall/bud-backend/internal/auth"
	"github.com/heartmarshall/bud-backend/internal/config"
	"github.com/heartmarshall/bud-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	MarkEmailVerified(ctx context.Context, id uuid.UUID, at time.Time) (*domain.User, error)
}

// tokenRepo defines the refresh token repository interface needed by auth service.
type tokenRepo interface {
	Create(ctx context.Context, token *domain.RefreshToken) error
	GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	RevokeByID(ctx context.Context, id uuid.UUID) error
	RevokeAllByUser(ctx context.Context, userID uuid.UUID) error
	DeleteExpired(ctx context.Context) (int, error)
}

// verificationRepo stores email verification codes.
type verificationRepo interface {
	Create(ctx context.Context, userID uuid.UUID, code string, expiresAt time.Time) (*domain.EmailVerificationToken, error)
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
	GetByCode(ctx context.Context, code string) (*domain.EmailVerificationToken, error)
	MarkUsed(ctx context.Context, id uuid.UUID, at time.Time) error
	DeleteExpired(ctx context.Context) (int, error)
}

// authMethodRepo defines the auth method repository interface needed by auth service.
type authMethodRepo interface {
	GetByOAuth(ctx context.Context, method domain.AuthMethodType, providerID string) (*domain.AuthMethod, error)
	GetByUserAndMethod(ctx context.Context, userID uuid.UUID, method domain.AuthMethodType) (*domain.AuthMethod, error)
	Create(ctx context.Context, am *domain.AuthMethod) (*domain.AuthMethod, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// oauthVerifier exchanges a Google authorization code for the user's identity.
type oauthVerifier interface {
	VerifyCode(ctx context.Context, code string) (*auth.OAuthIdentity, error)
}

type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID, role domain.Role) (string, error)
	ValidateAccessToken(token string) (auth.Claims, error)
	GenerateRefreshToken() (raw string, hash string, err error)
}

type passwordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) (bool, error)
}

type mailSender interface {
	Send(ctx context.Context, msg mailer.Message) error
}

// maxCodeAttempts bounds retries when a freshly generated verification code
// collides with an outstanding one.
const maxCodeAttempts = 10

// maxUsernameAttempts bounds the "-N" suffixes tried for a derived username.
const maxUsernameAttempts = 100

// Service implements auth operations.
type Service struct {
	log           *slog.Logger
	users         userRepo
	tokens        tokenRepo
	verifications verificationRepo
	authMethods   authMethodRepo
	tx            txManager
	oauth         oauthVerifier
	jwt           jwtManager
	hasher        passwordHasher
	mail          mailSender
	cfg           config.AuthConfig
	verifyTTL     time.Duration
	now           func() time.Time
	newCode       func() (string, error)
}

// NewService creates a new auth service instance. oauth may be nil when
// Google sign-in is not configured.
func NewService(
	logger *slog.Logger,
	users userRepo,
	tokens tokenRepo,
	verifications verificationRepo,
	authMethods authMethodRepo,
	tx txManager,
	oauth oauthVerifier,
	jwt jwtManager,
	hasher passwordHasher,
	mail mailSender,
	cfg config.AuthConfig,
	emailCfg config.EmailConfig,
) *Service {
	return &Service{
		log:           logger.With("service", "auth"),
		users:         users,
		tokens:        tokens,
		verifications: verifications,
		authMethods:   authMethods,
		tx:            tx,
		oauth:         oauth,
		jwt:           jwt,
		hasher:        hasher,
		mail:          mail,
		cfg:           cfg,
		verifyTTL:     emailCfg.VerificationTTL,
		now:           time.Now,
		newCode:       auth.GenerateVerificationCode,
	}
}

// issueTokens generates access and refresh tokens for the given user, stores
// the refresh token hash in DB, and returns an AuthResult.
func (s *Service) issueTokens(ctx context.Context, user *domain.User) (*AuthResult, error) {
	accessToken, err := s.jwt.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	rawRefresh, hashRefresh, err := s.jwt.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	refreshToken := &domain.RefreshToken{
		UserID:    user.ID,
		TokenHash: hashRefresh,
		ExpiresAt: s.now().Add(s.cfg.RefreshTokenTTL),
	}
	if err := s.tokens.Create(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &AuthResult{
		AccessToken:  accessToken,
		RefreshToken: rawRefresh,
		ExpiresIn:    s.cfg.AccessTokenTTL,
		User:         user,
	}, nil
}

// uniqueUsername appends "-N" to base until the name is free.
func (s *Service) uniqueUsername(ctx context.Context, base string) (string, error) {
	candidate := base
	for n := 1; n <= maxUsernameAttempts; n++ {
		taken, err := s.users.UsernameExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("check username: %w", err)
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, n)
	}
	return "", fmt.Errorf("no free username for %q: %w", base, domain.ErrConflict)
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
