package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/bud-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a verified, active user with role USER.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return SeedUserWithRole(t, pool, domain.RoleUser)
}

// SeedUserWithRole creates a verified, active user with the given role.
func SeedUserWithRole(t *testing.T, pool *pgxpool.Pool, role domain.Role) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:              uuid.New(),
		Email:           "reader-" + suffix + "@example.com",
		Username:        "reader-" + suffix,
		Name:            "Reader " + suffix,
		Role:            role,
		IsActive:        true,
		EmailVerified:   true,
		EmailVerifiedAt: &now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, username, name, role, is_active, email_verified, email_verified_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		user.ID, user.Email, user.Username, user.Name, string(user.Role),
		user.IsActive, user.EmailVerified, user.EmailVerifiedAt, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedBook creates a book with the given page count.
func SeedBook(t *testing.T, pool *pgxpool.Pool, totalPages int) domain.Book {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	book := domain.Book{
		ID:         uuid.New(),
		Title:      "Book " + suffix,
		Author:     "Author " + suffix,
		TotalPages: totalPages,
		Language:   "en",
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO books (id, title, author, total_pages, language, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		book.ID, book.Title, book.Author, book.TotalPages, book.Language, book.CreatedAt, book.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedBook: %v", err)
	}

	return book
}

// SeedGenre creates a genre with a unique name.
func SeedGenre(t *testing.T, pool *pgxpool.Pool) domain.Genre {
	t.Helper()

	suffix := uniqueSuffix()
	g := domain.Genre{ID: uuid.New(), Name: "Genre " + suffix, Slug: "genre-" + suffix}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO genres (id, name, slug) VALUES ($1, $2, $3)`,
		g.ID, g.Name, g.Slug,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedGenre: %v", err)
	}

	return g
}

// SeedUserBook returns the id of the (user, book) link, creating a READING
// link when none exists. Existing links are left unchanged.
func SeedUserBook(t *testing.T, pool *pgxpool.Pool, userID, bookID uuid.UUID) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := pool.QueryRow(context.Background(),
		`INSERT INTO user_books (user_id, book_id, status, started_at)
		 VALUES ($1, $2, 'READING', now())
		 ON CONFLICT (user_id, book_id) DO UPDATE SET updated_at = user_books.updated_at
		 RETURNING id`,
		userID, bookID,
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: SeedUserBook: %v", err)
	}

	return id
}

// SeedSession inserts a reading session at the given time under the
// (user, book) link, creating the link if needed. The link's progress is not
// updated.
func SeedSession(t *testing.T, pool *pgxpool.Pool, userID, bookID uuid.UUID, minutes, xp int, at time.Time) {
	t.Helper()

	linkID := SeedUserBook(t, pool, userID, bookID)

	_, err := pool.Exec(context.Background(),
		`INSERT INTO reading_sessions (user_id, book_id, user_book_id, start_page, end_page, pages_read, duration_minutes, xp_earned, created_at)
		 VALUES ($1, $2, $3, 0, 10, 10, $4, $5, $6)`,
		userID, bookID, linkID, minutes, xp, at,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSession: %v", err)
	}
}
