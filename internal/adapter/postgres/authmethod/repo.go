// Package authmethod implements the AuthMethod repository using PostgreSQL.
package authmethod

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/bud-backend/internal/adapter/postgres"
	"github.com/heartmarshall/bud-backend/internal/domain"
)

// Repo provides auth_methods persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new auth method repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const columns = `id, user_id, method, provider_id, password_hash, created_at, updated_at`

const getByOAuthSQL = `SELECT ` + columns + ` FROM auth_methods WHERE method = $1 AND provider_id = $2`

const getByUserAndMethodSQL = `SELECT ` + columns + ` FROM auth_methods WHERE user_id = $1 AND method = $2`

const createSQL = `
INSERT INTO auth_methods (user_id, method, provider_id, password_hash)
VALUES ($1, $2, $3, $4)
RETURNING ` + columns

// GetByOAuth returns the auth method for the given OAuth provider + provider ID.
func (r *Repo) GetByOAuth(ctx context.Context, method domain.AuthMethodType, providerID string) (*domain.AuthMethod, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getByOAuthSQL, string(method), providerID)

	am, err := scan(row)
	if err != nil {
		return nil, postgres.MapError(err, "auth_method", providerID)
	}
	return am, nil
}

// GetByUserAndMethod returns the auth method for a user with the given method type.
func (r *Repo) GetByUserAndMethod(ctx context.Context, userID uuid.UUID, method domain.AuthMethodType) (*domain.AuthMethod, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getByUserAndMethodSQL, userID, string(method))

	am, err := scan(row)
	if err != nil {
		return nil, postgres.MapError(err, "auth_method", userID)
	}
	return am, nil
}

// Create inserts a new auth method row.
func (r *Repo) Create(ctx context.Context, am *domain.AuthMethod) (*domain.AuthMethod, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, createSQL,
		am.UserID, string(am.Method), am.ProviderID, am.PasswordHash,
	)

	created, err := scan(row)
	if err != nil {
		return nil, postgres.MapError(err, "auth_method", am.UserID)
	}
	return created, nil
}

func scan(row pgx.Row) (*domain.AuthMethod, error) {
	var (
		am     domain.AuthMethod
		method string
	)
	if err := row.Scan(&am.ID, &am.UserID, &method, &am.ProviderID, &am.PasswordHash, &am.CreatedAt, &am.UpdatedAt); err != nil {
		return nil, fmt.Errorf("scan auth_method: %w", err)
	}
	am.Method = domain.AuthMethodType(method)
	return &am, nil
}
