package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/bud-backend/internal/domain"
	"github.com/heartmarshall/bud-backend/internal/service/reading"
	"sync"
)

var _ readingService = &readingServiceMock{}

type readingServiceMock struct {
	GetCurrentlyReadingFunc func(ctx context.Context) ([]*domain.UserBook, error)
	GetReadingStatsFunc     func(ctx context.Context) (*domain.ReadingStats, error)
	GetUserBookFunc         func(ctx context.Context, id uuid.UUID) (*domain.UserBook, error)
	ListSessionsFunc        func(ctx context.Context, input reading.ListSessionsInput) (*reading.SessionPage, error)
	ListUserBooksFunc       func(ctx context.Context) ([]*domain.UserBook, error)
	LogSessionFunc          func(ctx context.Context, input reading.LogSessionInput) (*domain.ReadingSession, error)
	StartReadingFunc        func(ctx context.Context, bookID uuid.UUID) (*domain.UserBook, error)

	calls struct {
		GetCurrentlyReading []struct {
			Ctx context.Context
		}
		GetReadingStats []struct {
			Ctx context.Context
		}
		GetUserBook []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		ListSessions []struct {
			Ctx   context.Context
			Input reading.ListSessionsInput
		}
		ListUserBooks []struct {
			Ctx context.Context
		}
		LogSession []struct {
			Ctx   context.Context
			Input reading.LogSessionInput
		}
		StartReading []struct {
			Ctx    context.Context
			BookID uuid.UUID
		}
	}
	lockGetCurrentlyReading sync.RWMutex
	lockGetReadingStats     sync.RWMutex
	lockGetUserBook         sync.RWMutex
	lockListSessions        sync.RWMutex
	lockListUserBooks       sync.RWMutex
	lockLogSession          sync.RWMutex
	lockStartReading        sync.RWMutex
}

func (mock *readingServiceMock) GetCurrentlyReading(ctx context.Context) ([]*domain.UserBook, error) {
	if mock.GetCurrentlyReadingFunc == nil {
		panic("readingServiceMock.GetCurrentlyReadingFunc: method is nil but readingService.GetCurrentlyReading was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockGetCurrentlyReading.Lock()
	mock.calls.GetCurrentlyReading = append(mock.calls.GetCurrentlyReading, callInfo)
	mock.lockGetCurrentlyReading.Unlock()
	return mock.GetCurrentlyReadingFunc(ctx)
}

func (mock *readingServiceMock) GetCurrentlyReadingCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetCurrentlyReading.RLock()
	calls := mock.calls.GetCurrentlyReading
	mock.lockGetCurrentlyReading.RUnlock()
	return calls
}

func (mock *readingServiceMock) GetReadingStats(ctx context.Context) (*domain.ReadingStats, error) {
	if mock.GetReadingStatsFunc == nil {
		panic("readingServiceMock.GetReadingStatsFunc: method is nil but readingService.GetReadingStats was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockGetReadingStats.Lock()
	mock.calls.GetReadingStats = append(mock.calls.GetReadingStats, callInfo)
	mock.lockGetReadingStats.Unlock()
	return mock.GetReadingStatsFunc(ctx)
}

func (mock *readingServiceMock) GetReadingStatsCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetReadingStats.RLock()
	calls := mock.calls.GetReadingStats
	mock.lockGetReadingStats.RUnlock()
	return calls
}

func (mock *readingServiceMock) GetUserBook(ctx context.Context, id uuid.UUID) (*domain.UserBook, error) {
	if mock.GetUserBookFunc == nil {
		panic("readingServiceMock.GetUserBookFunc: method is nil but readingService.GetUserBook was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetUserBook.Lock()
	mock.calls.GetUserBook = append(mock.calls.GetUserBook, callInfo)
	mock.lockGetUserBook.Unlock()
	return mock.GetUserBookFunc(ctx, id)
}

func (mock *readingServiceMock) GetUserBookCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetUserBook.RLock()
	calls := mock.calls.GetUserBook
	mock.lockGetUserBook.RUnlock()
	return calls
}

func (mock *readingServiceMock) ListSessions(ctx context.Context, input reading.ListSessionsInput) (*reading.SessionPage, error) {
	if mock.ListSessionsFunc == nil {
		panic("readingServiceMock.ListSessionsFunc: method is nil but readingService.ListSessions was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input reading.ListSessionsInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockListSessions.Lock()
	mock.calls.ListSessions = append(mock.calls.ListSessions, callInfo)
	mock.lockListSessions.Unlock()
	return mock.ListSessionsFunc(ctx, input)
}

func (mock *readingServiceMock) ListSessionsCalls() []struct {
	Ctx   context.Context
	Input reading.ListSessionsInput
} {
	mock.lockListSessions.RLock()
	calls := mock.calls.ListSessions
	mock.lockListSessions.RUnlock()
	return calls
}

func (mock *readingServiceMock) ListUserBooks(ctx context.Context) ([]*domain.UserBook, error) {
	if mock.ListUserBooksFunc == nil {
		panic("readingServiceMock.ListUserBooksFunc: method is nil but readingService.ListUserBooks was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListUserBooks.Lock()
	mock.calls.ListUserBooks = append(mock.calls.ListUserBooks, callInfo)
	mock.lockListUserBooks.Unlock()
	return mock.ListUserBooksFunc(ctx)
}

func (mock *readingServiceMock) ListUserBooksCalls() []struct {
	Ctx context.Context
} {
	mock.lockListUserBooks.RLock()
	calls := mock.calls.ListUserBooks
	mock.lockListUserBooks.RUnlock()
	return calls
}

func (mock *readingServiceMock) LogSession(ctx context.Context, input reading.LogSessionInput) (*domain.ReadingSession, error) {
	if mock.LogSessionFunc == nil {
		panic("readingServiceMock.LogSessionFunc: method is nil but readingService.LogSession was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input reading.LogSessionInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockLogSession.Lock()
	mock.calls.LogSession = append(mock.calls.LogSession, callInfo)
	mock.lockLogSession.Unlock()
	return mock.LogSessionFunc(ctx, input)
}

func (mock *readingServiceMock) LogSessionCalls() []struct {
	Ctx   context.Context
	Input reading.LogSessionInput
} {
	mock.lockLogSession.RLock()
	calls := mock.calls.LogSession
	mock.lockLogSession.RUnlock()
	return calls
}

func (mock *readingServiceMock) StartReading(ctx context.Context, bookID uuid.UUID) (*domain.UserBook, error) {
	if mock.StartReadingFunc == nil {
		panic("readingServiceMock.StartReadingFunc: method is nil but readingService.StartReading was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		BookID uuid.UUID
	}{
		Ctx:    ctx,
		BookID: bookID,
	}
	mock.lockStartReading.Lock()
	mock.calls.StartReading = append(mock.calls.StartReading, callInfo)
	mock.lockStartReading.Unlock()
	return mock.StartReadingFunc(ctx, bookID)
}

func (mock *readingServiceMock) StartReadingCalls() []struct {
	Ctx    context.Context
	BookID uuid.UUID
} {
	mock.lockStartReading.RLock()
	calls := mock.calls.StartReading
	mock.lockStartReading.RUnlock()
	return calls
}
