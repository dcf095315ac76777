// Package verification implements email verification code persistence.
package verification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/bud-backend/internal/adapter/postgres"
	"github.com/heartmarshall/bud-backend/internal/domain"
)

// Repo stores email verification codes.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new verification repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const columns = `id, user_id, code, expires_at, used_at, created_at`

const createSQL = `
INSERT INTO email_verification_tokens (user_id, code, expires_at)
VALUES ($1, $2, $3)
RETURNING ` + columns

const deleteByUserSQL = `DELETE FROM email_verification_tokens WHERE user_id = $1`

const getByCodeSQL = `SELECT ` + columns + ` FROM email_verification_tokens WHERE code = $1`

const markUsedSQL = `
UPDATE email_verification_tokens SET used_at = $2
WHERE id = $1 AND used_at IS NULL`

const deleteExpiredSQL = `
DELETE FROM email_verification_tokens WHERE expires_at < now() OR used_at IS NOT NULL`

// Create stores a new code. A colliding code yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, code string, expiresAt time.Time) (*domain.EmailVerificationToken, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, createSQL,
		userID, code, expiresAt.UTC().Truncate(time.Microsecond),
	)

	var t domain.EmailVerificationToken
	if err := row.Scan(&t.ID, &t.UserID, &t.Code, &t.ExpiresAt, &t.UsedAt, &t.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "email_verification_token", userID)
	}
	return &t, nil
}

// DeleteByUser removes every code issued to the user.
func (r *Repo) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, deleteByUserSQL, userID); err != nil {
		return postgres.MapError(err, "email_verification_token", userID)
	}
	return nil
}

// GetByCode returns the token for a code regardless of its state.
func (r *Repo) GetByCode(ctx context.Context, code string) (*domain.EmailVerificationToken, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getByCodeSQL, code)

	var t domain.EmailVerificationToken
	if err := row.Scan(&t.ID, &t.UserID, &t.Code, &t.ExpiresAt, &t.UsedAt, &t.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "email_verification_token", code)
	}
	return &t, nil
}

// MarkUsed consumes a code. Returns domain.ErrConflict if it was already used.
func (r *Repo) MarkUsed(ctx context.Context, id uuid.UUID, at time.Time) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, markUsedSQL, id, at.UTC().Truncate(time.Microsecond))
	if err != nil {
		return postgres.MapError(err, "email_verification_token", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("email_verification_token %s: %w", id, domain.ErrConflict)
	}
	return nil
}

// DeleteExpired removes expired and consumed codes.
func (r *Repo) DeleteExpired(ctx context.Context) (int, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, deleteExpiredSQL)
	if err != nil {
		return 0, fmt.Errorf("email_verification_token delete expired: %w", err)
	}
	return int(tag.RowsAffected()), nil
}
