package reading

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/bud-backend/internal/domain"
	"github.com/heartmarshall/bud-backend/pkg/ctxutil"
)

// StartReading moves the user's link to the book into READING, creating it
// when absent. Calling it on a link that is already READING changes nothing.
func (s *Service) StartReading(ctx context.Context, bookID uuid.UUID) (*domain.UserBook, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if bookID == uuid.Nil {
		return nil, domain.NewValidationError("book_id", "required")
	}

	book, err := s.books.GetByID(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("get book: %w", err)
	}

	link, err := s.links.UpsertReading(ctx, userID, bookID, s.now())
	if err != nil {
		return nil, fmt.Errorf("upsert user book: %w", err)
	}
	if link == nil {
		// Already READING: the upsert's WHERE clause skipped the row.
		link, err = s.links.GetByUserAndBook(ctx, userID, bookID)
		if err != nil {
			return nil, fmt.Errorf("get user book: %w", err)
		}
	} else {
		s.log.InfoContext(ctx, "reading started",
			slog.String("user_id", userID.String()),
			slog.String("book_id", bookID.String()),
		)
	}

	summary := book.Summary()
	link.Book = &summary
	return link, nil
}
