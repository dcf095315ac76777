package reading

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/bud-backend/internal/domain"
	"github.com/heartmarshall/bud-backend/pkg/ctxutil"
)

// LogSession records a reading sitting, awards XP and advances the user's
// link to the book. The link ends on end_page even when that is lower than
// before, and reaching the last page finishes the book.
func (s *Service) LogSession(ctx context.Context, input LogSessionInput) (*domain.ReadingSession, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	book, err := s.books.GetByID(ctx, input.BookID)
	if err != nil {
		return nil, fmt.Errorf("get book: %w", err)
	}

	pagesRead := max(0, input.EndPage-input.StartPage)
	xp := XPForSession(pagesRead, input.DurationMinutes)

	var (
		session  *domain.ReadingSession
		finished bool
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := s.now()

		link, err := s.getOrCreateLink(txCtx, userID, book.ID)
		if err != nil {
			return err
		}

		session, err = s.sessions.Create(txCtx, &domain.ReadingSession{
			UserID:          userID,
			BookID:          book.ID,
			UserBookID:      link.ID,
			StartPage:       input.StartPage,
			EndPage:         input.EndPage,
			PagesRead:       pagesRead,
			DurationMinutes: input.DurationMinutes,
			XPEarned:        xp,
			CreatedAt:       now,
		})
		if err != nil {
			return fmt.Errorf("create session: %w", err)
		}

		link.CurrentPage = input.EndPage
		if link.Status != domain.ReadingStatusReading {
			link.Status = domain.ReadingStatusReading
			if link.StartedAt == nil {
				link.StartedAt = &now
			}
		}
		if book.TotalPages > 0 && input.EndPage >= book.TotalPages {
			link.Status = domain.ReadingStatusFinished
			link.FinishedAt = &now
			finished = true
		}
		link.UpdatedAt = now

		if _, err := s.links.Update(txCtx, link); err != nil {
			return fmt.Errorf("update user book: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	session.BookTitle = book.Title
	s.log.InfoContext(ctx, "reading session logged",
		slog.String("user_id", userID.String()),
		slog.String("book_id", book.ID.String()),
		slog.Int("pages_read", pagesRead),
		slog.Int("xp", xp),
		slog.Bool("finished", finished),
	)
	return session, nil
}

// getOrCreateLink returns the locked link for (user, book), creating a
// READING link when none exists. A concurrent creator wins the unique
// constraint; the loser re-reads the row, retrying once if it is not yet visible.
func (s *Service) getOrCreateLink(ctx context.Context, userID, bookID uuid.UUID) (*domain.UserBook, error) {
	now := s.now()
	link, err := s.links.InsertIfAbsent(ctx, userID, bookID, domain.ReadingStatusReading, &now, now)
	if err != nil {
		return nil, fmt.Errorf("create user book: %w", err)
	}
	if link != nil {
		return link, nil
	}

	for attempt := 0; ; attempt++ {
		link, err = s.links.GetByUserAndBook(ctx, userID, bookID)
		if err == nil {
			return link, nil
		}
		if !errors.Is(err, domain.ErrNotFound) || attempt >= 1 {
			return nil, fmt.Errorf("get user book: %w", err)
		}
	}
}
