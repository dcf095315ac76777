// Package reading tracks per-user progress through books: status
// transitions, logged sessions, XP and streaks.
package reading

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/bud-backend/internal/config"
	"github.com/heartmarshall/bud-backend/internal/domain"
)

type bookRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error)
}

type bookSummaries interface {
	Summaries(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.BookSummary, error)
}

type userBookRepo interface {
	GetByUserAndBook(ctx context.Context, userID, bookID uuid.UUID) (*domain.UserBook, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.UserBook, error)
	ListByUser(ctx context.Context, userID uuid.UUID, status *domain.ReadingStatus) ([]*domain.UserBook, error)
	CountByStatus(ctx context.Context, userID uuid.UUID, status domain.ReadingStatus) (int, error)
	InsertIfAbsent(ctx context.Context, userID, bookID uuid.UUID, status domain.ReadingStatus, startedAt *time.Time, now time.Time) (*domain.UserBook, error)
	UpsertReading(ctx context.Context, userID, bookID uuid.UUID, now time.Time) (*domain.UserBook, error)
	Update(ctx context.Context, link *domain.UserBook) (*domain.UserBook, error)
}

type sessionRepo interface {
	Create(ctx context.Context, s *domain.ReadingSession) (*domain.ReadingSession, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.ReadingSession, int, error)
	Totals(ctx context.Context, userID uuid.UUID) (xp int, minutes int, err error)
	ActiveDays(ctx context.Context, userID uuid.UUID, loc *time.Location, before time.Time, limit int) ([]time.Time, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements the reading progress operations.
type Service struct {
	log       *slog.Logger
	books     bookRepo
	summaries bookSummaries
	links     userBookRepo
	sessions  sessionRepo
	tx        txManager
	loc       *time.Location
	now       func() time.Time
}

// NewService creates a reading service. Calendar days for streaks are
// evaluated in cfg.Location (UTC when unset).
func NewService(
	logger *slog.Logger,
	books bookRepo,
	summaries bookSummaries,
	links userBookRepo,
	sessions sessionRepo,
	tx txManager,
	cfg config.ReadingConfig,
) *Service {
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		log:       logger.With("service", "reading"),
		books:     books,
		summaries: summaries,
		links:     links,
		sessions:  sessions,
		tx:        tx,
		loc:       loc,
		now:       time.Now,
	}
}

// attachBooks embeds book summaries into links with one batched lookup.
func (s *Service) attachBooks(ctx context.Context, links []*domain.UserBook) error {
	if len(links) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(links))
	seen := make(map[uuid.UUID]struct{}, len(links))
	for _, l := range links {
		if _, ok := seen[l.BookID]; ok {
			continue
		}
		seen[l.BookID] = struct{}{}
		ids = append(ids, l.BookID)
	}

	byID, err := s.summaries.Summaries(ctx, ids)
	if err != nil {
		return err
	}
	for _, l := range links {
		if b, ok := byID[l.BookID]; ok {
			l.Book = &b
		}
	}
	return nil
}
