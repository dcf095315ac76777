// Package book implements the shared book catalog repository using PostgreSQL.
// Listing queries are built with squirrel; fixed lookups use raw SQL.
package book

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

// Repo provides book persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new book repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const bookColumns = `b.id, b.title, b.author, b.description, b.isbn_10, b.isbn_13, b.google_books_id,
	b.total_pages, b.cover_url, b.language, b.published_date, b.publisher, b.added_by, b.created_at, b.updated_at`

const getByIDSQL = `SELECT ` + bookColumns + ` FROM books b WHERE b.id = $1`

const getByGoogleIDSQL = `SELECT ` + bookColumns + ` FROM books b WHERE b.google_books_id = $1`

const getByIDsSQL = `SELECT ` + bookColumns + ` FROM books b WHERE b.id = ANY($1)`

const countAddedBySQL = `SELECT count(*) FROM books WHERE added_by = $1`

const createSQL = `
INSERT INTO books AS b (id, title, author, description, isbn_10, isbn_13, google_books_id,
	total_pages, cover_url, language, published_date, publisher, added_by, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $14)
RETURNING ` + bookColumns

const updateSQL = `
UPDATE books AS b
SET title = $2, author = $3, description = $4, isbn_10 = $5, isbn_13 = $6,
	total_pages = $7, cover_url = $8, language = $9, published_date = $10, publisher = $11,
	updated_at = now()
WHERE b.id = $1
RETURNING ` + bookColumns

const deleteSQL = `DELETE FROM books WHERE id = $1`

const genresByBookIDsSQL = `
SELECT bg.book_id, g.id, g.name, g.slug
FROM book_genres bg
JOIN genres g ON g.id = bg.genre_id
WHERE bg.book_id = ANY($1)
ORDER BY g.name`

const clearGenresSQL = `DELETE FROM book_genres WHERE book_id = $1`

const addGenresSQL = `
INSERT INTO book_genres (book_id, genre_id)
SELECT $1, unnest($2::uuid[])
ON CONFLICT DO NOTHING`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a book with its genres.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b, err := scanBook(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "book", id)
	}
	if err := r.attachGenres(ctx, []*domain.Book{b}); err != nil {
		return nil, err
	}
	return b, nil
}

// GetByGoogleID returns the book imported from the given Google Books volume.
func (r *Repo) GetByGoogleID(ctx context.Context, googleID string) (*domain.Book, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b, err := scanBook(q.QueryRow(ctx, getByGoogleIDSQL, googleID))
	if err != nil {
		return nil, postgres.MapError(err, "book", googleID)
	}
	if err := r.attachGenres(ctx, []*domain.Book{b}); err != nil {
		return nil, err
	}
	return b, nil
}

// GetByIDs returns the books with the given ids, without genres, in no particular order.
// Missing ids are skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Book, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, getByIDsSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("get books by ids: %w", err)
	}
	defer rows.Close()

	return scanBooks(rows)
}

// CountAddedBy returns how many books the user has added to the catalog.
func (r *Repo) CountAddedBy(ctx context.Context, userID uuid.UUID) (int, error) {
	var n int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, countAddedBySQL, userID).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "book", userID)
	}
	return n, nil
}

// List returns a page of books matching the filter, newest first, plus the total count.
func (r *Repo) List(ctx context.Context, filter domain.BookFilter) ([]*domain.Book, int, error) {
	f := normalizeFilter(filter)
	q := postgres.QuerierFromCtx(ctx, r.pool)

	countSQL, countArgs, err := applyFilter(psql.Select("count(*)").From("books b"), f).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count books: %w", err)
	}

	listSQL, listArgs, err := applyFilter(psql.Select(bookColumns).From("books b"), f).
		OrderBy("b.created_at DESC", "b.id").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	rows, err := q.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()

	books, err := scanBooks(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("list books: %w", err)
	}

	if err := r.attachGenres(ctx, books); err != nil {
		return nil, 0, err
	}

	return books, total, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a book. A duplicate ISBN or Google Books id yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, b *domain.Book) (*domain.Book, error) {
	id := b.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	now := time.Now().UTC().Truncate(time.Microsecond)

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, createSQL,
		id, b.Title, b.Author, b.Description, b.ISBN10, b.ISBN13, b.GoogleBooksID,
		b.TotalPages, b.CoverURL, b.Language, b.PublishedDate, b.Publisher, b.AddedBy, now,
	)

	created, err := scanBook(row)
	if err != nil {
		return nil, postgres.MapError(err, "book", id)
	}
	return created, nil
}

// Update overwrites the editable fields of a book.
func (r *Repo) Update(ctx context.Context, b *domain.Book) (*domain.Book, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, updateSQL,
		b.ID, b.Title, b.Author, b.Description, b.ISBN10, b.ISBN13,
		b.TotalPages, b.CoverURL, b.Language, b.PublishedDate, b.Publisher,
	)

	updated, err := scanBook(row)
	if err != nil {
		return nil, postgres.MapError(err, "book", b.ID)
	}
	return updated, nil
}

// Delete removes a book. Links and sessions referencing it are removed by cascade.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "book", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("book %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// SetGenres replaces the genres of a book.
func (r *Repo) SetGenres(ctx context.Context, bookID uuid.UUID, genreIDs []uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, clearGenresSQL, bookID); err != nil {
		return postgres.MapError(err, "book_genres", bookID)
	}
	if len(genreIDs) == 0 {
		return nil
	}
	if _, err := q.Exec(ctx, addGenresSQL, bookID, genreIDs); err != nil {
		return postgres.MapError(err, "book_genres", bookID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) attachGenres(ctx context.Context, books []*domain.Book) error {
	if len(books) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(books))
	byID := make(map[uuid.UUID]*domain.Book, len(books))
	for i, b := range books {
		ids[i] = b.ID
		byID[b.ID] = b
		b.Genres = []domain.Genre{}
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, genresByBookIDsSQL, ids)
	if err != nil {
		return fmt.Errorf("load book genres: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			bookID uuid.UUID
			g      domain.Genre
		)
		if err := rows.Scan(&bookID, &g.ID, &g.Name, &g.Slug); err != nil {
			return fmt.Errorf("scan book genre: %w", err)
		}
		if b, ok := byID[bookID]; ok {
			b.Genres = append(b.Genres, g)
		}
	}
	return rows.Err()
}

func scanBook(row pgx.Row) (*domain.Book, error) {
	var b domain.Book
	if err := row.Scan(
		&b.ID, &b.Title, &b.Author, &b.Description, &b.ISBN10, &b.ISBN13, &b.GoogleBooksID,
		&b.TotalPages, &b.CoverURL, &b.Language, &b.PublishedDate, &b.Publisher, &b.AddedBy,
		&b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("scan book: %w", err)
	}
	return &b, nil
}

func scanBooks(rows pgx.Rows) ([]*domain.Book, error) {
	books := []*domain.Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return books, nil
}

