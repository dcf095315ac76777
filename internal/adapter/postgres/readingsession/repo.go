// Package readingsession implements the append-only reading session log.
package readingsession

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/bud-backend/internal/adapter/postgres"
	"github.com/heartmarshall/bud-backend/internal/domain"
)

// Repo provides reading_sessions persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new reading session repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const sessionColumns = `id, user_id, book_id, user_book_id, start_page, end_page, pages_read, duration_minutes, xp_earned, created_at`

const createSQL = `
INSERT INTO reading_sessions (id, user_id, book_id, user_book_id, start_page, end_page, pages_read, duration_minutes, xp_earned, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING ` + sessionColumns

const countByUserSQL = `SELECT count(*) FROM reading_sessions WHERE user_id = $1`

const listByUserSQL = `
SELECT s.id, s.user_id, s.book_id, s.user_book_id, s.start_page, s.end_page, s.pages_read,
       s.duration_minutes, s.xp_earned, s.created_at, b.title
FROM reading_sessions s
JOIN books b ON b.id = s.book_id
WHERE s.user_id = $1
ORDER BY s.created_at DESC, s.id
LIMIT $2 OFFSET $3`

const totalsSQL = `
SELECT COALESCE(SUM(xp_earned), 0), COALESCE(SUM(duration_minutes), 0)
FROM reading_sessions
WHERE user_id = $1`

// Days are computed in the caller's zone; $3 is an exclusive upper bound.
const activeDaysSQL = `
SELECT DISTINCT (created_at AT TIME ZONE $2)::date AS day
FROM reading_sessions
WHERE user_id = $1 AND (created_at AT TIME ZONE $2)::date < $3::date
ORDER BY day DESC
LIMIT $4`

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// Create appends a session.
func (r *Repo) Create(ctx context.Context, s *domain.ReadingSession) (*domain.ReadingSession, error) {
	id := s.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, createSQL,
		id, s.UserID, s.BookID, s.UserBookID, s.StartPage, s.EndPage, s.PagesRead,
		s.DurationMinutes, s.XPEarned, s.CreatedAt.UTC().Truncate(time.Microsecond),
	)

	var out domain.ReadingSession
	if err := row.Scan(
		&out.ID, &out.UserID, &out.BookID, &out.UserBookID, &out.StartPage, &out.EndPage, &out.PagesRead,
		&out.DurationMinutes, &out.XPEarned, &out.CreatedAt,
	); err != nil {
		return nil, postgres.MapError(err, "reading_session", id)
	}
	return &out, nil
}

// ListByUser returns a page of the user's sessions, newest first, plus the total count.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.ReadingSession, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var total int
	if err := q.QueryRow(ctx, countByUserSQL, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count reading sessions: %w", err)
	}

	rows, err := q.Query(ctx, listByUserSQL, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list reading sessions: %w", err)
	}
	defer rows.Close()

	sessions := []*domain.ReadingSession{}
	for rows.Next() {
		var s domain.ReadingSession
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.BookID, &s.UserBookID, &s.StartPage, &s.EndPage, &s.PagesRead,
			&s.DurationMinutes, &s.XPEarned, &s.CreatedAt, &s.BookTitle,
		); err != nil {
			return nil, 0, fmt.Errorf("scan reading session: %w", err)
		}
		sessions = append(sessions, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list reading sessions: %w", err)
	}

	return sessions, total, nil
}

// Totals returns the user's summed XP and minutes. Both are 0 with no sessions.
func (r *Repo) Totals(ctx context.Context, userID uuid.UUID) (xp int, minutes int, err error) {
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, totalsSQL, userID).Scan(&xp, &minutes); err != nil {
		return 0, 0, postgres.MapError(err, "reading_session", userID)
	}
	return xp, minutes, nil
}

// ActiveDays returns up to limit distinct calendar days (in loc) strictly
// before the day of `before` on which the user logged a session, newest first.
// Each day is returned as midnight in loc.
func (r *Repo) ActiveDays(ctx context.Context, userID uuid.UUID, loc *time.Location, before time.Time, limit int) ([]time.Time, error) {
	bound := before.In(loc).Format(time.DateOnly)

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, activeDaysSQL, userID, loc.String(), bound, limit)
	if err != nil {
		return nil, fmt.Errorf("active days: %w", err)
	}
	defer rows.Close()

	days := []time.Time{}
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scan active day: %w", err)
		}
		days = append(days, time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("active days: %w", err)
	}
	return days, nil
}
