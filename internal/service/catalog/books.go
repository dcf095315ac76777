package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/bud-backend/internal/domain"
)

// BookPage is one page of the catalog listing.
type BookPage struct {
	Books []*domain.Book
	Total int
}

// ListBooks returns catalog books, newest first.
func (s *Service) ListBooks(ctx context.Context, input ListBooksInput) (*BookPage, error) {
	if _, _, err := caller(ctx); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = s.pageSize
	}
	if limit > s.maxPage {
		limit = s.maxPage
	}

	books, total, err := s.books.List(ctx, domain.BookFilter{
		Query:    input.Query,
		GenreIDs: input.GenreIDs,
		Limit:    limit,
		Offset:   input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return &BookPage{Books: books, Total: total}, nil
}

// GetBook returns a single book with its genres.
func (s *Service) GetBook(ctx context.Context, id uuid.UUID) (*domain.Book, error) {
	if _, _, err := caller(ctx); err != nil {
		return nil, err
	}
	book, err := s.books.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get book: %w", err)
	}
	return book, nil
}

// CreateBook adds a book by hand. Admin only.
func (s *Service) CreateBook(ctx context.Context, input BookInput) (*domain.Book, error) {
	userID, isAdmin, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	if !isAdmin {
		return nil, domain.NewForbiddenError("only administrators can add books directly")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	candidate := &domain.Book{AddedBy: &userID}
	input.apply(candidate)

	var id uuid.UUID
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		created, err := s.books.Create(txCtx, candidate)
		if err != nil {
			return err
		}
		id = created.ID
		if len(input.GenreIDs) > 0 {
			return s.books.SetGenres(txCtx, id, input.GenreIDs)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}

	s.log.InfoContext(ctx, "book created",
		slog.String("user_id", userID.String()),
		slog.String("book_id", id.String()),
	)
	return s.GetBook(ctx, id)
}

// UpdateBook overwrites the editable fields of a book. Admin only.
func (s *Service) UpdateBook(ctx context.Context, id uuid.UUID, input BookInput) (*domain.Book, error) {
	_, isAdmin, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	if !isAdmin {
		return nil, domain.NewForbiddenError("only administrators can edit books")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		book, err := s.books.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		input.apply(book)
		if _, err := s.books.Update(txCtx, book); err != nil {
			return err
		}
		if input.GenreIDs != nil {
			return s.books.SetGenres(txCtx, id, input.GenreIDs)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update book: %w", err)
	}
	return s.GetBook(ctx, id)
}

// DeleteBook removes a book. Admins may delete any book; other users only
// the ones they added.
func (s *Service) DeleteBook(ctx context.Context, id uuid.UUID) error {
	userID, isAdmin, err := caller(ctx)
	if err != nil {
		return err
	}

	book, err := s.books.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get book: %w", err)
	}
	if !isAdmin && (book.AddedBy == nil || *book.AddedBy != userID) {
		return domain.NewForbiddenError("Only the person who added this book can remove it.")
	}

	if err := s.books.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete book: %w", err)
	}

	s.log.InfoContext(ctx, "book deleted",
		slog.String("user_id", userID.String()),
		slog.String("book_id", id.String()),
	)
	return nil
}

// ListGenres returns genres attached to at least one book.
func (s *Service) ListGenres(ctx context.Context) ([]domain.Genre, error) {
	if _, _, err := caller(ctx); err != nil {
		return nil, err
	}
	genres, err := s.genres.ListWithBooks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list genres: %w", err)
	}
	return genres, nil
}
