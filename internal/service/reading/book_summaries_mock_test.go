package reading

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/bud-backend/internal/domain"
	"sync"
)

var _ bookSummaries = &bookSummariesMock{}

type bookSummariesMock struct {
	SummariesFunc func(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.BookSummary, error)

	calls struct {
		Summaries []struct {
			Ctx context.Context
			Ids []uuid.UUID
		}
	}
	lockSummaries sync.RWMutex
}

func (mock *bookSummariesMock) Summaries(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.BookSummary, error) {
	if mock.SummariesFunc == nil {
		panic("bookSummariesMock.SummariesFunc: method is nil but bookSummaries.Summaries was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ids []uuid.UUID
	}{
		Ctx: ctx,
		Ids: ids,
	}
	mock.lockSummaries.Lock()
	mock.calls.Summaries = append(mock.calls.Summaries, callInfo)
	mock.lockSummaries.Unlock()
	return mock.SummariesFunc(ctx, ids)
}

func (mock *bookSummariesMock) SummariesCalls() []struct {
	Ctx context.Context
	Ids []uuid.UUID
} {
	mock.lockSummaries.RLock()
	calls := mock.calls.Summaries
	mock.lockSummaries.RUnlock()
	return calls
}
