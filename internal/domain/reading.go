package domain

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// UserBook links a user to a book and tracks their progress through it.
// At most one exists per (user, book).
type UserBook struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	BookID      uuid.UUID
	Status      ReadingStatus
	CurrentPage int
	StartedAt   *time.Time
	FinishedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Book *BookSummary
}

// ProgressPercent returns current/total as a percentage rounded to one decimal.
// A book without a known page count reports 0.
func (l *UserBook) ProgressPercent() float64 {
	if l.Book == nil || l.Book.TotalPages <= 0 {
		return 0
	}
	return RoundTo1(float64(l.CurrentPage) / float64(l.Book.TotalPages) * 100)
}

// ReadingSession is an immutable record of one sitting. It belongs to the
// UserBook it advanced and is deleted with it.
type ReadingSession struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	BookID          uuid.UUID
	UserBookID      uuid.UUID
	StartPage       int
	EndPage         int
	PagesRead       int
	DurationMinutes int
	XPEarned        int
	CreatedAt       time.Time

	BookTitle string
}

// ReadingStats is the per-user aggregate view.
type ReadingStats struct {
	TotalXP        int
	CurrentStreak  int
	BooksFinished  int
	TotalTimeHours float64
}

// RoundTo1 rounds the exact binary value of v to the nearest tenth, ties to
// even: 0.25 gives 0.2 and 0.35 (stored just below) gives 0.3.
func RoundTo1(v float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 1, 64), 64)
	return r
}
