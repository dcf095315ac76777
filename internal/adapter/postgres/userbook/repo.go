// Package userbook implements persistence for the per-user book links that
// track reading status and progress.
package userbook

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/bud-backend/internal/adapter/postgres"
	"github.com/heartmarshall/bud-backend/internal/domain"
)

// Repo provides user_books persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user book repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const linkColumns = `id, user_id, book_id, status, current_page, started_at, finished_at, created_at, updated_at`

const getByUserAndBookSQL = `
SELECT ` + linkColumns + `
FROM user_books
WHERE user_id = $1 AND book_id = $2`

const getByUserAndBookForUpdateSQL = getByUserAndBookSQL + `
FOR UPDATE`

const getByIDSQL = `
SELECT ` + linkColumns + `
FROM user_books
WHERE id = $1 AND user_id = $2`

const insertIfAbsentSQL = `
INSERT INTO user_books (user_id, book_id, status, current_page, started_at, created_at, updated_at)
VALUES ($1, $2, $3, 0, $4, $5, $5)
ON CONFLICT (user_id, book_id) DO NOTHING
RETURNING ` + linkColumns

// Only rows that are not already READING are touched, so a READING link is
// left as is and RETURNING yields nothing.
const upsertReadingSQL = `
INSERT INTO user_books AS ub (user_id, book_id, status, current_page, started_at, created_at, updated_at)
VALUES ($1, $2, 'READING', 0, $3, $3, $3)
ON CONFLICT (user_id, book_id) DO UPDATE
SET status = 'READING',
    started_at = COALESCE(ub.started_at, EXCLUDED.started_at),
    finished_at = NULL,
    updated_at = EXCLUDED.updated_at
WHERE ub.status <> 'READING'
RETURNING ` + linkColumns

const updateSQL = `
UPDATE user_books
SET status = $3, current_page = $4, started_at = $5, finished_at = $6, updated_at = $7
WHERE id = $1 AND user_id = $2
RETURNING ` + linkColumns

const listByUserSQL = `
SELECT ` + linkColumns + `
FROM user_books
WHERE user_id = $1
ORDER BY updated_at DESC, id`

const listByUserAndStatusSQL = `
SELECT ` + linkColumns + `
FROM user_books
WHERE user_id = $1 AND status = $2
ORDER BY updated_at DESC, id`

const countByStatusSQL = `SELECT count(*) FROM user_books WHERE user_id = $1 AND status = $2`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByUserAndBook returns the link between a user and a book.
// When called inside a transaction the row is locked until commit.
func (r *Repo) GetByUserAndBook(ctx context.Context, userID, bookID uuid.UUID) (*domain.UserBook, error) {
	query := getByUserAndBookSQL
	if postgres.InTx(ctx) {
		query = getByUserAndBookForUpdateSQL
	}

	link, err := scanLink(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, userID, bookID))
	if err != nil {
		return nil, postgres.MapError(err, "user_book", bookID)
	}
	return link, nil
}

// GetByID returns a link owned by the user.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.UserBook, error) {
	link, err := scanLink(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getByIDSQL, id, userID))
	if err != nil {
		return nil, postgres.MapError(err, "user_book", id)
	}
	return link, nil
}

// ListByUser returns every link of the user, most recently updated first.
// A nil status returns links in any status.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, status *domain.ReadingStatus) ([]*domain.UserBook, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		rows pgx.Rows
		err  error
	)
	if status != nil {
		rows, err = q.Query(ctx, listByUserAndStatusSQL, userID, string(*status))
	} else {
		rows, err = q.Query(ctx, listByUserSQL, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("list user_books: %w", err)
	}
	defer rows.Close()

	links := []*domain.UserBook{}
	for rows.Next() {
		link, err := scanLink(rows)
		if err != nil {
			return nil, err
		}
		links = append(links, link)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list user_books: %w", err)
	}
	return links, nil
}

// CountByStatus returns how many of the user's links are in the given status.
func (r *Repo) CountByStatus(ctx context.Context, userID uuid.UUID, status domain.ReadingStatus) (int, error) {
	var n int
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, countByStatusSQL, userID, string(status)).Scan(&n)
	if err != nil {
		return 0, postgres.MapError(err, "user_book", userID)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// InsertIfAbsent creates a link in the given status unless one already exists.
// It returns (nil, nil) when the link already exists.
func (r *Repo) InsertIfAbsent(ctx context.Context, userID, bookID uuid.UUID, status domain.ReadingStatus, startedAt *time.Time, now time.Time) (*domain.UserBook, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, insertIfAbsentSQL,
		userID, bookID, string(status), truncPtr(startedAt), now.UTC().Truncate(time.Microsecond),
	)

	link, err := scanLink(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, postgres.MapError(err, "user_book", bookID)
	}
	return link, nil
}

// UpsertReading moves the link to READING in a single statement, creating it
// if needed. started_at is set only when it was unset and finished_at is cleared.
// It returns (nil, nil) when the link is already READING.
func (r *Repo) UpsertReading(ctx context.Context, userID, bookID uuid.UUID, now time.Time) (*domain.UserBook, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, upsertReadingSQL,
		userID, bookID, now.UTC().Truncate(time.Microsecond),
	)

	link, err := scanLink(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, postgres.MapError(err, "user_book", bookID)
	}
	return link, nil
}

// Update persists status, page and timestamps of an existing link.
func (r *Repo) Update(ctx context.Context, link *domain.UserBook) (*domain.UserBook, error) {
	updatedAt := link.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, updateSQL,
		link.ID, link.UserID, string(link.Status), link.CurrentPage,
		truncPtr(link.StartedAt), truncPtr(link.FinishedAt), updatedAt.UTC().Truncate(time.Microsecond),
	)

	updated, err := scanLink(row)
	if err != nil {
		return nil, postgres.MapError(err, "user_book", link.ID)
	}
	return updated, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanLink(row pgx.Row) (*domain.UserBook, error) {
	var (
		l      domain.UserBook
		status string
	)
	if err := row.Scan(
		&l.ID, &l.UserID, &l.BookID, &status, &l.CurrentPage,
		&l.StartedAt, &l.FinishedAt, &l.CreatedAt, &l.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("scan user_book: %w", err)
	}
	l.Status = domain.ReadingStatus(status)
	return &l, nil
}

func truncPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC().Truncate(time.Microsecond)
	return &v
}
