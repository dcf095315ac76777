package reading

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/bud-backend/internal/domain"
	"sync"
	"time"
)

var _ userBookRepo = &userBookRepoMock{}

type userBookRepoMock struct {
	CountByStatusFunc    func(ctx context.Context, userID uuid.UUID, status domain.ReadingStatus) (int, error)
	GetByIDFunc          func(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.UserBook, error)
	GetByUserAndBookFunc func(ctx context.Context, userID uuid.UUID, bookID uuid.UUID) (*domain.UserBook, error)
	InsertIfAbsentFunc   func(ctx context.Context, userID uuid.UUID, bookID uuid.UUID, status domain.ReadingStatus, startedAt *time.Time, now time.Time) (*domain.UserBook, error)
	ListByUserFunc       func(ctx context.Context, userID uuid.UUID, status *domain.ReadingStatus) ([]*domain.UserBook, error)
	UpdateFunc           func(ctx context.Context, link *domain.UserBook) (*domain.UserBook, error)
	UpsertReadingFunc    func(ctx context.Context, userID uuid.UUID, bookID uuid.UUID, now time.Time) (*domain.UserBook, error)

	calls struct {
		CountByStatus []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Status domain.ReadingStatus
		}
		GetByID []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Id     uuid.UUID
		}
		GetByUserAndBook []struct {
			Ctx    context.Context
			UserID uuid.UUID
			BookID uuid.UUID
		}
		InsertIfAbsent []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			BookID    uuid.UUID
			Status    domain.ReadingStatus
			StartedAt *time.Time
			Now       time.Time
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Status *domain.ReadingStatus
		}
		Update []struct {
			Ctx  context.Context
			Link *domain.UserBook
		}
		UpsertReading []struct {
			Ctx    context.Context
			UserID uuid.UUID
			BookID uuid.UUID
			Now    time.Time
		}
	}
	lockCountByStatus    sync.RWMutex
	lockGetByID          sync.RWMutex
	lockGetByUserAndBook sync.RWMutex
	lockInsertIfAbsent   sync.RWMutex
	lockListByUser       sync.RWMutex
	lockUpdate           sync.RWMutex
	lockUpsertReading    sync.RWMutex
}

func (mock *userBookRepoMock) CountByStatus(ctx context.Context, userID uuid.UUID, status domain.ReadingStatus) (int, error) {
	if mock.CountByStatusFunc == nil {
		panic("userBookRepoMock.CountByStatusFunc: method is nil but userBookRepo.CountByStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Status domain.ReadingStatus
	}{
		Ctx:    ctx,
		UserID: userID,
		Status: status,
	}
	mock.lockCountByStatus.Lock()
	mock.calls.CountByStatus = append(mock.calls.CountByStatus, callInfo)
	mock.lockCountByStatus.Unlock()
	return mock.CountByStatusFunc(ctx, userID, status)
}

func (mock *userBookRepoMock) CountByStatusCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Status domain.ReadingStatus
} {
	mock.lockCountByStatus.RLock()
	calls := mock.calls.CountByStatus
	mock.lockCountByStatus.RUnlock()
	return calls
}

func (mock *userBookRepoMock) GetByID(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.UserBook, error) {
	if mock.GetByIDFunc == nil {
		panic("userBookRepoMock.GetByIDFunc: method is nil but userBookRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Id     uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
		Id:     id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, id)
}

func (mock *userBookRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Id     uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userBookRepoMock) GetByUserAndBook(ctx context.Context, userID uuid.UUID, bookID uuid.UUID) (*domain.UserBook, error) {
	if mock.GetByUserAndBookFunc == nil {
		panic("userBookRepoMock.GetByUserAndBookFunc: method is nil but userBookRepo.GetByUserAndBook was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		BookID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
		BookID: bookID,
	}
	mock.lockGetByUserAndBook.Lock()
	mock.calls.GetByUserAndBook = append(mock.calls.GetByUserAndBook, callInfo)
	mock.lockGetByUserAndBook.Unlock()
	return mock.GetByUserAndBookFunc(ctx, userID, bookID)
}

func (mock *userBookRepoMock) GetByUserAndBookCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	BookID uuid.UUID
} {
	mock.lockGetByUserAndBook.RLock()
	calls := mock.calls.GetByUserAndBook
	mock.lockGetByUserAndBook.RUnlock()
	return calls
}

func (mock *userBookRepoMock) InsertIfAbsent(ctx context.Context, userID uuid.UUID, bookID uuid.UUID, status domain.ReadingStatus, startedAt *time.Time, now time.Time) (*domain.UserBook, error) {
	if mock.InsertIfAbsentFunc == nil {
		panic("userBookRepoMock.InsertIfAbsentFunc: method is nil but userBookRepo.InsertIfAbsent was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		BookID    uuid.UUID
		Status    domain.ReadingStatus
		StartedAt *time.Time
		Now       time.Time
	}{
		Ctx:       ctx,
		UserID:    userID,
		BookID:    bookID,
		Status:    status,
		StartedAt: startedAt,
		Now:       now,
	}
	mock.lockInsertIfAbsent.Lock()
	mock.calls.InsertIfAbsent = append(mock.calls.InsertIfAbsent, callInfo)
	mock.lockInsertIfAbsent.Unlock()
	return mock.InsertIfAbsentFunc(ctx, userID, bookID, status, startedAt, now)
}

func (mock *userBookRepoMock) InsertIfAbsentCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	BookID    uuid.UUID
	Status    domain.ReadingStatus
	StartedAt *time.Time
	Now       time.Time
} {
	mock.lockInsertIfAbsent.RLock()
	calls := mock.calls.InsertIfAbsent
	mock.lockInsertIfAbsent.RUnlock()
	return calls
}

func (mock *userBookRepoMock) ListByUser(ctx context.Context, userID uuid.UUID, status *domain.ReadingStatus) ([]*domain.UserBook, error) {
	if mock.ListByUserFunc == nil {
		panic("userBookRepoMock.ListByUserFunc: method is nil but userBookRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Status *domain.ReadingStatus
	}{
		Ctx:    ctx,
		UserID: userID,
		Status: status,
	}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID, status)
}

func (mock *userBookRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Status *domain.ReadingStatus
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *userBookRepoMock) Update(ctx context.Context, link *domain.UserBook) (*domain.UserBook, error) {
	if mock.UpdateFunc == nil {
		panic("userBookRepoMock.UpdateFunc: method is nil but userBookRepo.Update was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Link *domain.UserBook
	}{
		Ctx:  ctx,
		Link: link,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, link)
}

func (mock *userBookRepoMock) UpdateCalls() []struct {
	Ctx  context.Context
	Link *domain.UserBook
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *userBookRepoMock) UpsertReading(ctx context.Context, userID uuid.UUID, bookID uuid.UUID, now time.Time) (*domain.UserBook, error) {
	if mock.UpsertReadingFunc == nil {
		panic("userBookRepoMock.UpsertReadingFunc: method is nil but userBookRepo.UpsertReading was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		BookID uuid.UUID
		Now    time.Time
	}{
		Ctx:    ctx,
		UserID: userID,
		BookID: bookID,
		Now:    now,
	}
	mock.lockUpsertReading.Lock()
	mock.calls.UpsertReading = append(mock.calls.UpsertReading, callInfo)
	mock.lockUpsertReading.Unlock()
	return mock.UpsertReadingFunc(ctx, userID, bookID, now)
}

func (mock *userBookRepoMock) UpsertReadingCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	BookID uuid.UUID
	Now    time.Time
} {
	mock.lockUpsertReading.RLock()
	calls := mock.calls.UpsertReading
	mock.lockUpsertReading.RUnlock()
	return calls
}
