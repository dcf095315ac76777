// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/bud-backend/internal/adapter/postgres"
	"github.com/heartmarshall/bud-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const userColumns = `id, email, username, name, avatar_url, role, is_active, email_verified, email_verified_at, created_at, updated_at`

const getByIDSQL = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

const getByEmailSQL = `SELECT ` + userColumns + ` FROM users WHERE email = $1`

const usernameExistsSQL = `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`

const createSQL = `
INSERT INTO users (id, email, username, name, avatar_url, role, is_active, email_verified, email_verified_at, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
RETURNING ` + userColumns

const markVerifiedSQL = `
UPDATE users
SET email_verified = true, email_verified_at = $2, is_active = true, updated_at = $2
WHERE id = $1
RETURNING ` + userColumns

const setRoleSQL = `
UPDATE users
SET role = $2, is_active = true, email_verified = true,
    email_verified_at = COALESCE(email_verified_at, now()), updated_at = now()
WHERE email = $1
RETURNING ` + userColumns

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getByIDSQL, id)

	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// GetByEmail returns a user by (already normalized) email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getByEmailSQL, email)

	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	return u, nil
}

// UsernameExists reports whether the username is already taken.
func (r *Repo) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, usernameExistsSQL, username).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "user", username)
	}
	return exists, nil
}

// Create inserts a new user and returns the persisted row.
// A duplicate email or username yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	now := u.CreatedAt
	if now.IsZero() {
		now = time.Now().UTC()
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, createSQL,
		u.ID, u.Email, u.Username, u.Name, u.AvatarURL, string(u.Role),
		u.IsActive, u.EmailVerified, u.EmailVerifiedAt, now.Truncate(time.Microsecond),
	)

	created, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	return created, nil
}

// MarkEmailVerified sets the verification flags and activates the account.
func (r *Repo) MarkEmailVerified(ctx context.Context, id uuid.UUID, at time.Time) (*domain.User, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, markVerifiedSQL, id, at.UTC().Truncate(time.Microsecond))

	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// SetRoleByEmail grants a role and marks the account usable.
func (r *Repo) SetRoleByEmail(ctx context.Context, email string, role domain.Role) (*domain.User, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, setRoleSQL, email, string(role))

	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	return u, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u    domain.User
		role string
	)
	if err := row.Scan(
		&u.ID, &u.Email, &u.Username, &u.Name, &u.AvatarURL, &role,
		&u.IsActive, &u.EmailVerified, &u.EmailVerifiedAt, &u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}
	u.Role = domain.Role(role)
	return &u, nil
}
