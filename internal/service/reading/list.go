package reading

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/bud-backend/internal/domain"
	"github.com/heartmarshall/bud-backend/pkg/ctxutil"
)

// GetCurrentlyReading returns the user's READING links with book summaries.
func (s *Service) GetCurrentlyReading(ctx context.Context) ([]*domain.UserBook, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	status := domain.ReadingStatusReading
	links, err := s.links.ListByUser(ctx, userID, &status)
	if err != nil {
		return nil, fmt.Errorf("list reading: %w", err)
	}
	if err := s.attachBooks(ctx, links); err != nil {
		return nil, fmt.Errorf("attach books: %w", err)
	}
	return links, nil
}

// ListUserBooks returns every link of the user, most recently updated first.
func (s *Service) ListUserBooks(ctx context.Context) ([]*domain.UserBook, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	links, err := s.links.ListByUser(ctx, userID, nil)
	if err != nil {
		return nil, fmt.Errorf("list user books: %w", err)
	}
	if err := s.attachBooks(ctx, links); err != nil {
		return nil, fmt.Errorf("attach books: %w", err)
	}
	return links, nil
}

// GetUserBook returns one link owned by the user.
func (s *Service) GetUserBook(ctx context.Context, id uuid.UUID) (*domain.UserBook, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	link, err := s.links.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get user book: %w", err)
	}
	if err := s.attachBooks(ctx, []*domain.UserBook{link}); err != nil {
		return nil, fmt.Errorf("attach books: %w", err)
	}
	return link, nil
}

// SessionPage is one page of the session history.
type SessionPage struct {
	Sessions []*domain.ReadingSession
	Total    int
}

// ListSessions returns the user's sessions newest first.
func (s *Service) ListSessions(ctx context.Context, input ListSessionsInput) (*SessionPage, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultSessionsLimit
	}

	sessions, total, err := s.sessions.ListByUser(ctx, userID, limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return &SessionPage{Sessions: sessions, Total: total}, nil
}
