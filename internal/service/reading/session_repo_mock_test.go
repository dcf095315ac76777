package reading

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/bud-backend/internal/domain"
	"sync"
	"time"
)

var _ sessionRepo = &sessionRepoMock{}

type sessionRepoMock struct {
	ActiveDaysFunc func(ctx context.Context, userID uuid.UUID, loc *time.Location, before time.Time, limit int) ([]time.Time, error)
	CreateFunc     func(ctx context.Context, s *domain.ReadingSession) (*domain.ReadingSession, error)
	ListByUserFunc func(ctx context.Context, userID uuid.UUID, limit int, offset int) ([]*domain.ReadingSession, int, error)
	TotalsFunc     func(ctx context.Context, userID uuid.UUID) (int, int, error)

	calls struct {
		ActiveDays []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Loc    *time.Location
			Before time.Time
			Limit  int
		}
		Create []struct {
			Ctx context.Context
			S   *domain.ReadingSession
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Limit  int
			Offset int
		}
		Totals []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockActiveDays sync.RWMutex
	lockCreate     sync.RWMutex
	lockListByUser sync.RWMutex
	lockTotals     sync.RWMutex
}

func (mock *sessionRepoMock) ActiveDays(ctx context.Context, userID uuid.UUID, loc *time.Location, before time.Time, limit int) ([]time.Time, error) {
	if mock.ActiveDaysFunc == nil {
		panic("sessionRepoMock.ActiveDaysFunc: method is nil but sessionRepo.ActiveDays was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Loc    *time.Location
		Before time.Time
		Limit  int
	}{
		Ctx:    ctx,
		UserID: userID,
		Loc:    loc,
		Before: before,
		Limit:  limit,
	}
	mock.lockActiveDays.Lock()
	mock.calls.ActiveDays = append(mock.calls.ActiveDays, callInfo)
	mock.lockActiveDays.Unlock()
	return mock.ActiveDaysFunc(ctx, userID, loc, before, limit)
}

func (mock *sessionRepoMock) ActiveDaysCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Loc    *time.Location
	Before time.Time
	Limit  int
} {
	mock.lockActiveDays.RLock()
	calls := mock.calls.ActiveDays
	mock.lockActiveDays.RUnlock()
	return calls
}

func (mock *sessionRepoMock) Create(ctx context.Context, s *domain.ReadingSession) (*domain.ReadingSession, error) {
	if mock.CreateFunc == nil {
		panic("sessionRepoMock.CreateFunc: method is nil but sessionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   *domain.ReadingSession
	}{
		Ctx: ctx,
		S:   s,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *sessionRepoMock) CreateCalls() []struct {
	Ctx context.Context
	S   *domain.ReadingSession
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *sessionRepoMock) ListByUser(ctx context.Context, userID uuid.UUID, limit int, offset int) ([]*domain.ReadingSession, int, error) {
	if mock.ListByUserFunc == nil {
		panic("sessionRepoMock.ListByUserFunc: method is nil but sessionRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Limit  int
		Offset int
	}{
		Ctx:    ctx,
		UserID: userID,
		Limit:  limit,
		Offset: offset,
	}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID, limit, offset)
}

func (mock *sessionRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Limit  int
	Offset int
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *sessionRepoMock) Totals(ctx context.Context, userID uuid.UUID) (int, int, error) {
	if mock.TotalsFunc == nil {
		panic("sessionRepoMock.TotalsFunc: method is nil but sessionRepo.Totals was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockTotals.Lock()
	mock.calls.Totals = append(mock.calls.Totals, callInfo)
	mock.lockTotals.Unlock()
	return mock.TotalsFunc(ctx, userID)
}

func (mock *sessionRepoMock) TotalsCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockTotals.RLock()
	calls := mock.calls.Totals
	mock.lockTotals.RUnlock()
	return calls
}
