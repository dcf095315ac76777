package reading

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/bud-backend/internal/domain"
	"github.com/heartmarshall/bud-backend/pkg/ctxutil"
)

// streakBatch is how many distinct active days are fetched per round trip
// while walking back from today.
const streakBatch = 60

// GetReadingStats aggregates the user's whole session history.
func (s *Service) GetReadingStats(ctx context.Context) (*domain.ReadingStats, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var xp, minutes, finished, streak int

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		xp, minutes, err = s.sessions.Totals(gctx, userID)
		if err != nil {
			return fmt.Errorf("session totals: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		finished, err = s.links.CountByStatus(gctx, userID, domain.ReadingStatusFinished)
		if err != nil {
			return fmt.Errorf("count finished: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		streak, err = s.currentStreak(gctx, userID)
		if err != nil {
			return fmt.Errorf("streak: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &domain.ReadingStats{
		TotalXP:        xp,
		CurrentStreak:  streak,
		BooksFinished:  finished,
		TotalTimeHours: domain.RoundTo1(float64(minutes) / 60),
	}, nil
}

// currentStreak counts consecutive days ending today that have at least one
// session. It walks the distinct active days newest first and stops at the
// first gap, so a day without a session today yields 0.
func (s *Service) currentStreak(ctx context.Context, userID uuid.UUID) (int, error) {
	now := s.now().In(s.loc)
	expected := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)
	before := expected.AddDate(0, 0, 1)

	streak := 0
	for {
		days, err := s.sessions.ActiveDays(ctx, userID, s.loc, before, streakBatch)
		if err != nil {
			return 0, err
		}
		for _, d := range days {
			if !sameDay(d, expected) {
				return streak, nil
			}
			streak++
			expected = expected.AddDate(0, 0, -1)
		}
		if len(days) < streakBatch {
			return streak, nil
		}
		before = days[len(days)-1]
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
