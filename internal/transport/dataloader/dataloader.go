// Package dataloader provides per-request loaders that batch book lookups
// made while assembling reading-progress lists into single SQL calls.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/bud-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type bookRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Book, error)
}

// Loaders contains the per-request loader instances. Created via NewLoaders.
type Loaders struct {
	BookByID *dataloader.Loader[uuid.UUID, *domain.BookSummary]
}

// NewLoaders creates loaders backed by repo. Results are cached for the
// lifetime of the Loaders value, so build one per request.
func NewLoaders(repo bookRepo) *Loaders {
	return &Loaders{
		BookByID: dataloader.NewBatchedLoader(
			newBookBatchFn(repo),
			dataloader.WithWait[uuid.UUID, *domain.BookSummary](wait),
			dataloader.WithBatchCapacity[uuid.UUID, *domain.BookSummary](maxBatch),
		),
	}
}

func newBookBatchFn(repo bookRepo) dataloader.BatchFunc[uuid.UUID, *domain.BookSummary] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.BookSummary] {
		books, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.BookSummary](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.BookSummary, len(books))
		for _, b := range books {
			s := b.Summary()
			byID[b.ID] = &s
		}

		// Missing books resolve to nil without an error.
		results := make([]*dataloader.Result[*domain.BookSummary], len(keys))
		for i, key := range keys {
			results[i] = &dataloader.Result[*domain.BookSummary]{Data: byID[key]}
		}
		return results
	}
}

func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
func FromContext(ctx context.Context) (*Loaders, bool) {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	return l, ok && l != nil
}
