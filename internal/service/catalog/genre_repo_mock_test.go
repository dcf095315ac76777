package catalog

import (
	"context"
	"github.com/heartmarshall/bud-backend/internal/domain"
	"sync"
)

var _ genreRepo = &genreRepoMock{}

type genreRepoMock struct {
	GetOrCreateFunc   func(ctx context.Context, name string, slug string) (*domain.Genre, error)
	ListWithBooksFunc func(ctx context.Context) ([]domain.Genre, error)

	calls struct {
		GetOrCreate []struct {
			Ctx  context.Context
			Name string
			Slug string
		}
		ListWithBooks []struct {
			Ctx context.Context
		}
	}
	lockGetOrCreate   sync.RWMutex
	lockListWithBooks sync.RWMutex
}

func (mock *genreRepoMock) GetOrCreate(ctx context.Context, name string, slug string) (*domain.Genre, error) {
	if mock.GetOrCreateFunc == nil {
		panic("genreRepoMock.GetOrCreateFunc: method is nil but genreRepo.GetOrCreate was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
		Slug string
	}{
		Ctx:  ctx,
		Name: name,
		Slug: slug,
	}
	mock.lockGetOrCreate.Lock()
	mock.calls.GetOrCreate = append(mock.calls.GetOrCreate, callInfo)
	mock.lockGetOrCreate.Unlock()
	return mock.GetOrCreateFunc(ctx, name, slug)
}

func (mock *genreRepoMock) GetOrCreateCalls() []struct {
	Ctx  context.Context
	Name string
	Slug string
} {
	mock.lockGetOrCreate.RLock()
	calls := mock.calls.GetOrCreate
	mock.lockGetOrCreate.RUnlock()
	return calls
}

func (mock *genreRepoMock) ListWithBooks(ctx context.Context) ([]domain.Genre, error) {
	if mock.ListWithBooksFunc == nil {
		panic("genreRepoMock.ListWithBooksFunc: method is nil but genreRepo.ListWithBooks was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListWithBooks.Lock()
	mock.calls.ListWithBooks = append(mock.calls.ListWithBooks, callInfo)
	mock.lockListWithBooks.Unlock()
	return mock.ListWithBooksFunc(ctx)
}

func (mock *genreRepoMock) ListWithBooksCalls() []struct {
	Ctx context.Context
} {
	mock.lockListWithBooks.RLock()
	calls := mock.calls.ListWithBooks
	mock.lockListWithBooks.RUnlock()
	return calls
}
