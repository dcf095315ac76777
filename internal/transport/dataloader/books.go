package dataloader

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/bud-backend/internal/domain"
)

// Books resolves book summaries for the reading service. Inside an HTTP
// request it goes through the request's loader; elsewhere it queries the
// repository directly.
type Books struct {
	repo bookRepo
}

// NewBooks creates a Books resolver backed by repo.
func NewBooks(repo bookRepo) *Books {
	return &Books{repo: repo}
}

// Summaries returns summaries keyed by book ID. Unknown IDs are absent from the map.
func (b *Books) Summaries(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.BookSummary, error) {
	out := make(map[uuid.UUID]domain.BookSummary, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	if l, ok := FromContext(ctx); ok {
		vals, errs := l.BookByID.LoadMany(ctx, ids)()
		for i, err := range errs {
			if err != nil {
				return nil, fmt.Errorf("load book %s: %w", ids[i], err)
			}
		}
		for i, v := range vals {
			if v != nil {
				out[ids[i]] = *v
			}
		}
		return out, nil
	}

	books, err := b.repo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get books: %w", err)
	}
	for _, book := range books {
		out[book.ID] = book.Summary()
	}
	return out, nil
}
