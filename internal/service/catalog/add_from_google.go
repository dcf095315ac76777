package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/bud-backend/internal/auth"
	"github.com/heartmarshall/bud-backend/internal/domain"
)

// maxSlugAttempts bounds the suffixes tried when a new genre's slug is taken
// by a differently named genre.
const maxSlugAttempts = 5

// AddFromGoogle imports a Google Books volume into the catalog. When a book
// with that volume id already exists it is returned with created=false.
// The provider is called outside the transaction.
func (s *Service) AddFromGoogle(ctx context.Context, googleBooksID string) (book *domain.Book, created bool, err error) {
	userID, isAdmin, err := caller(ctx)
	if err != nil {
		return nil, false, err
	}
	googleBooksID = strings.TrimSpace(googleBooksID)
	if googleBooksID == "" {
		return nil, false, domain.NewValidationError("google_books_id", "required")
	}

	if !isAdmin {
		if err := s.checkQuota(ctx, userID); err != nil {
			return nil, false, err
		}
	}

	existing, err := s.books.GetByGoogleID(ctx, googleBooksID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, fmt.Errorf("get book by google id: %w", err)
	}

	vol, err := s.volumes.GetVolume(ctx, googleBooksID)
	if err != nil {
		s.log.WarnContext(ctx, "google books fetch failed",
			slog.String("google_books_id", googleBooksID),
			slog.String("error", err.Error()),
		)
		return nil, false, fmt.Errorf("could not fetch book: %w", domain.ErrNotFound)
	}
	if vol == nil {
		return nil, false, fmt.Errorf("could not fetch book: %w", domain.ErrNotFound)
	}

	genreIDs, err := s.resolveGenres(ctx, vol.Categories)
	if err != nil {
		return nil, false, err
	}

	candidate := bookFromVolume(vol, userID)

	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		b, createErr := s.books.Create(txCtx, candidate)
		if createErr != nil {
			return createErr
		}
		if len(genreIDs) > 0 {
			if err := s.books.SetGenres(txCtx, b.ID, genreIDs); err != nil {
				return fmt.Errorf("set genres: %w", err)
			}
		}
		book = b
		return nil
	})
	if txErr != nil {
		if errors.Is(txErr, domain.ErrAlreadyExists) {
			// Another request imported the same volume first.
			existing, err := s.books.GetByGoogleID(ctx, googleBooksID)
			if err != nil {
				return nil, false, fmt.Errorf("get book after conflict: %w", txErr)
			}
			return existing, false, nil
		}
		return nil, false, fmt.Errorf("create book: %w", txErr)
	}

	full, err := s.books.GetByID(ctx, book.ID)
	if err != nil {
		return nil, false, fmt.Errorf("reload book: %w", err)
	}

	s.log.InfoContext(ctx, "book imported from google",
		slog.String("user_id", userID.String()),
		slog.String("book_id", full.ID.String()),
		slog.String("google_books_id", googleBooksID),
	)
	return full, true, nil
}

func (s *Service) checkQuota(ctx context.Context, userID uuid.UUID) error {
	count, err := s.books.CountAddedBy(ctx, userID)
	if err != nil {
		return fmt.Errorf("count added books: %w", err)
	}
	if count >= s.maxPerUser {
		return domain.NewValidationError("google_books_id",
			fmt.Sprintf("You can add up to %d books. Remove one of yours first.", s.maxPerUser))
	}
	return nil
}

// resolveGenres gets or creates a genre per category. Each insert commits on
// its own so a slug clash cannot abort the book transaction.
func (s *Service) resolveGenres(ctx context.Context, categories []string) ([]uuid.UUID, error) {
	seen := make(map[string]bool, len(categories))
	ids := make([]uuid.UUID, 0, len(categories))

	for _, raw := range categories {
		name := strings.TrimSpace(raw)
		if name == "" || seen[strings.ToLower(name)] {
			continue
		}
		seen[strings.ToLower(name)] = true

		g, err := s.getOrCreateGenre(ctx, name)
		if err != nil {
			return nil, err
		}
		ids = append(ids, g.ID)
	}
	return ids, nil
}

func (s *Service) getOrCreateGenre(ctx context.Context, name string) (*domain.Genre, error) {
	base := auth.Slugify(name)
	if base == "" {
		base = "genre"
	}

	slug := base
	for attempt := 1; attempt <= maxSlugAttempts; attempt++ {
		g, err := s.genres.GetOrCreate(ctx, name, slug)
		if err == nil {
			return g, nil
		}
		if !errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("get or create genre %q: %w", name, err)
		}
		slug = base + "-" + strconv.Itoa(attempt+1)
	}
	return nil, fmt.Errorf("genre %q: no free slug: %w", name, domain.ErrConflict)
}

func bookFromVolume(v *domain.GoogleVolume, addedBy uuid.UUID) *domain.Book {
	gid := v.GoogleBooksID
	b := &domain.Book{
		Title:         v.Title,
		Author:        v.Author,
		Description:   v.Description,
		GoogleBooksID: &gid,
		TotalPages:    v.PageCount,
		CoverURL:      v.CoverURL,
		Language:      v.Language,
		PublishedDate: v.PublishedDate,
		Publisher:     v.Publisher,
		AddedBy:       &addedBy,
	}
	if v.ISBN10 != "" {
		isbn := v.ISBN10
		b.ISBN10 = &isbn
	}
	if v.ISBN13 != "" {
		isbn := v.ISBN13
		b.ISBN13 = &isbn
	}
	return b
}
