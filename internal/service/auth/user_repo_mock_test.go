package auth

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/bud-backend/internal/domain"
	"sync"
	"time"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	CreateFunc            func(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByEmailFunc        func(ctx context.Context, email string) (*domain.User, error)
	GetByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	MarkEmailVerifiedFunc func(ctx context.Context, id uuid.UUID, at time.Time) (*domain.User, error)
	UsernameExistsFunc    func(ctx context.Context, username string) (bool, error)

	calls struct {
		Create []struct {
			Ctx  context.Context
			User *domain.User
		}
		GetByEmail []struct {
			Ctx   context.Context
			Email string
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		MarkEmailVerified []struct {
			Ctx context.Context
			Id  uuid.UUID
			At  time.Time
		}
		UsernameExists []struct {
			Ctx      context.Context
			Username string
		}
	}
	lockCreate            sync.RWMutex
	lockGetByEmail        sync.RWMutex
	lockGetByID           sync.RWMutex
	lockMarkEmailVerified sync.RWMutex
	lockUsernameExists    sync.RWMutex
}

func (mock *userRepoMock) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		User *domain.User
	}{
		Ctx:  ctx,
		User: user,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, user)
}

func (mock *userRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	User *domain.User
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if mock.GetByEmailFunc == nil {
		panic("userRepoMock.GetByEmailFunc: method is nil but userRepo.GetByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{
		Ctx:   ctx,
		Email: email,
	}
	mock.lockGetByEmail.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, callInfo)
	mock.lockGetByEmail.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *userRepoMock) GetByEmailCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockGetByEmail.RLock()
	calls := mock.calls.GetByEmail
	mock.lockGetByEmail.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) MarkEmailVerified(ctx context.Context, id uuid.UUID, at time.Time) (*domain.User, error) {
	if mock.MarkEmailVerifiedFunc == nil {
		panic("userRepoMock.MarkEmailVerifiedFunc: method is nil but userRepo.MarkEmailVerified was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
		At  time.Time
	}{
		Ctx: ctx,
		Id:  id,
		At:  at,
	}
	mock.lockMarkEmailVerified.Lock()
	mock.calls.MarkEmailVerified = append(mock.calls.MarkEmailVerified, callInfo)
	mock.lockMarkEmailVerified.Unlock()
	return mock.MarkEmailVerifiedFunc(ctx, id, at)
}

func (mock *userRepoMock) MarkEmailVerifiedCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
	At  time.Time
} {
	mock.lockMarkEmailVerified.RLock()
	calls := mock.calls.MarkEmailVerified
	mock.lockMarkEmailVerified.RUnlock()
	return calls
}

func (mock *userRepoMock) UsernameExists(ctx context.Context, username string) (bool, error) {
	if mock.UsernameExistsFunc == nil {
		panic("userRepoMock.UsernameExistsFunc: method is nil but userRepo.UsernameExists was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Username string
	}{
		Ctx:      ctx,
		Username: username,
	}
	mock.lockUsernameExists.Lock()
	mock.calls.UsernameExists = append(mock.calls.UsernameExists, callInfo)
	mock.lockUsernameExists.Unlock()
	return mock.UsernameExistsFunc(ctx, username)
}

func (mock *userRepoMock) UsernameExistsCalls() []struct {
	Ctx      context.Context
	Username string
} {
	mock.lockUsernameExists.RLock()
	calls := mock.calls.UsernameExists
	mock.lockUsernameExists.RUnlock()
	return calls
}
