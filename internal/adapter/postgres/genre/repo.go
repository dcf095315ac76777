// Package genre implements the genre repository using PostgreSQL.
package genre

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/bud-backend/internal/adapter/postgres"
	"github.com/heartmarshall/bud-backend/internal/domain"
)

// Repo provides genre persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new genre repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// The no-op update makes RETURNING yield the existing row on conflict.
const getOrCreateSQL = `
INSERT INTO genres (name, slug) VALUES ($1, $2)
ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
RETURNING id, name, slug`

const listWithBooksSQL = `
SELECT g.id, g.name, g.slug
FROM genres g
WHERE EXISTS (SELECT 1 FROM book_genres bg WHERE bg.genre_id = g.id)
ORDER BY g.name`

// GetOrCreate returns the genre with the given name, creating it if needed.
func (r *Repo) GetOrCreate(ctx context.Context, name, slug string) (*domain.Genre, error) {
	var g domain.Genre
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getOrCreateSQL, name, slug).
		Scan(&g.ID, &g.Name, &g.Slug)
	if err != nil {
		return nil, postgres.MapError(err, "genre", name)
	}
	return &g, nil
}

// ListWithBooks returns genres that are attached to at least one book.
func (r *Repo) ListWithBooks(ctx context.Context) ([]domain.Genre, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, listWithBooksSQL)
	if err != nil {
		return nil, fmt.Errorf("list genres: %w", err)
	}
	defer rows.Close()

	genres := []domain.Genre{}
	for rows.Next() {
		var g domain.Genre
		if err := rows.Scan(&g.ID, &g.Name, &g.Slug); err != nil {
			return nil, fmt.Errorf("scan genre: %w", err)
		}
		genres = append(genres, g)
	}
	return genres, rows.Err()
}
