package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/bud-backend/internal/domain"
	"github.com/heartmarshall/bud-backend/internal/service/catalog"
	"sync"
)

var _ catalogService = &catalogServiceMock{}

type catalogServiceMock struct {
	AddFromGoogleFunc func(ctx context.Context, googleBooksID string) (*domain.Book, bool, error)
	CreateBookFunc    func(ctx context.Context, input catalog.BookInput) (*domain.Book, error)
	DeleteBookFunc    func(ctx context.Context, id uuid.UUID) error
	GetBookFunc       func(ctx context.Context, id uuid.UUID) (*domain.Book, error)
	ListBooksFunc     func(ctx context.Context, input catalog.ListBooksInput) (*catalog.BookPage, error)
	ListGenresFunc    func(ctx context.Context) ([]domain.Genre, error)
	SearchGoogleFunc  func(ctx context.Context, query string) ([]domain.GoogleVolume, error)
	UpdateBookFunc    func(ctx context.Context, id uuid.UUID, input catalog.BookInput) (*domain.Book, error)

	calls struct {
		AddFromGoogle []struct {
			Ctx           context.Context
			GoogleBooksID string
		}
		CreateBook []struct {
			Ctx   context.Context
			Input catalog.BookInput
		}
		DeleteBook []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetBook []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		ListBooks []struct {
			Ctx   context.Context
			Input catalog.ListBooksInput
		}
		ListGenres []struct {
			Ctx context.Context
		}
		SearchGoogle []struct {
			Ctx   context.Context
			Query string
		}
		UpdateBook []struct {
			Ctx   context.Context
			Id    uuid.UUID
			Input catalog.BookInput
		}
	}
	lockAddFromGoogle sync.RWMutex
	lockCreateBook    sync.RWMutex
	lockDeleteBook    sync.RWMutex
	lockGetBook       sync.RWMutex
	lockListBooks     sync.RWMutex
	lockListGenres    sync.RWMutex
	lockSearchGoogle  sync.RWMutex
	lockUpdateBook    sync.RWMutex
}

func (mock *catalogServiceMock) AddFromGoogle(ctx context.Context, googleBooksID string) (*domain.Book, bool, error) {
	if mock.AddFromGoogleFunc == nil {
		panic("catalogServiceMock.AddFromGoogleFunc: method is nil but catalogService.AddFromGoogle was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		GoogleBooksID string
	}{
		Ctx:           ctx,
		GoogleBooksID: googleBooksID,
	}
	mock.lockAddFromGoogle.Lock()
	mock.calls.AddFromGoogle = append(mock.calls.AddFromGoogle, callInfo)
	mock.lockAddFromGoogle.Unlock()
	return mock.AddFromGoogleFunc(ctx, googleBooksID)
}

func (mock *catalogServiceMock) AddFromGoogleCalls() []struct {
	Ctx           context.Context
	GoogleBooksID string
} {
	mock.lockAddFromGoogle.RLock()
	calls := mock.calls.AddFromGoogle
	mock.lockAddFromGoogle.RUnlock()
	return calls
}

func (mock *catalogServiceMock) CreateBook(ctx context.Context, input catalog.BookInput) (*domain.Book, error) {
	if mock.CreateBookFunc == nil {
		panic("catalogServiceMock.CreateBookFunc: method is nil but catalogService.CreateBook was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input catalog.BookInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateBook.Lock()
	mock.calls.CreateBook = append(mock.calls.CreateBook, callInfo)
	mock.lockCreateBook.Unlock()
	return mock.CreateBookFunc(ctx, input)
}

func (mock *catalogServiceMock) CreateBookCalls() []struct {
	Ctx   context.Context
	Input catalog.BookInput
} {
	mock.lockCreateBook.RLock()
	calls := mock.calls.CreateBook
	mock.lockCreateBook.RUnlock()
	return calls
}

func (mock *catalogServiceMock) DeleteBook(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteBookFunc == nil {
		panic("catalogServiceMock.DeleteBookFunc: method is nil but catalogService.DeleteBook was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockDeleteBook.Lock()
	mock.calls.DeleteBook = append(mock.calls.DeleteBook, callInfo)
	mock.lockDeleteBook.Unlock()
	return mock.DeleteBookFunc(ctx, id)
}

func (mock *catalogServiceMock) DeleteBookCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDeleteBook.RLock()
	calls := mock.calls.DeleteBook
	mock.lockDeleteBook.RUnlock()
	return calls
}

func (mock *catalogServiceMock) GetBook(ctx context.Context, id uuid.UUID) (*domain.Book, error) {
	if mock.GetBookFunc == nil {
		panic("catalogServiceMock.GetBookFunc: method is nil but catalogService.GetBook was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetBook.Lock()
	mock.calls.GetBook = append(mock.calls.GetBook, callInfo)
	mock.lockGetBook.Unlock()
	return mock.GetBookFunc(ctx, id)
}

func (mock *catalogServiceMock) GetBookCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetBook.RLock()
	calls := mock.calls.GetBook
	mock.lockGetBook.RUnlock()
	return calls
}

func (mock *catalogServiceMock) ListBooks(ctx context.Context, input catalog.ListBooksInput) (*catalog.BookPage, error) {
	if mock.ListBooksFunc == nil {
		panic("catalogServiceMock.ListBooksFunc: method is nil but catalogService.ListBooks was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input catalog.ListBooksInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockListBooks.Lock()
	mock.calls.ListBooks = append(mock.calls.ListBooks, callInfo)
	mock.lockListBooks.Unlock()
	return mock.ListBooksFunc(ctx, input)
}

func (mock *catalogServiceMock) ListBooksCalls() []struct {
	Ctx   context.Context
	Input catalog.ListBooksInput
} {
	mock.lockListBooks.RLock()
	calls := mock.calls.ListBooks
	mock.lockListBooks.RUnlock()
	return calls
}

func (mock *catalogServiceMock) ListGenres(ctx context.Context) ([]domain.Genre, error) {
	if mock.ListGenresFunc == nil {
		panic("catalogServiceMock.ListGenresFunc: method is nil but catalogService.ListGenres was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListGenres.Lock()
	mock.calls.ListGenres = append(mock.calls.ListGenres, callInfo)
	mock.lockListGenres.Unlock()
	return mock.ListGenresFunc(ctx)
}

func (mock *catalogServiceMock) ListGenresCalls() []struct {
	Ctx context.Context
} {
	mock.lockListGenres.RLock()
	calls := mock.calls.ListGenres
	mock.lockListGenres.RUnlock()
	return calls
}

func (mock *catalogServiceMock) SearchGoogle(ctx context.Context, query string) ([]domain.GoogleVolume, error) {
	if mock.SearchGoogleFunc == nil {
		panic("catalogServiceMock.SearchGoogleFunc: method is nil but catalogService.SearchGoogle was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Query string
	}{
		Ctx:   ctx,
		Query: query,
	}
	mock.lockSearchGoogle.Lock()
	mock.calls.SearchGoogle = append(mock.calls.SearchGoogle, callInfo)
	mock.lockSearchGoogle.Unlock()
	return mock.SearchGoogleFunc(ctx, query)
}

func (mock *catalogServiceMock) SearchGoogleCalls() []struct {
	Ctx   context.Context
	Query string
} {
	mock.lockSearchGoogle.RLock()
	calls := mock.calls.SearchGoogle
	mock.lockSearchGoogle.RUnlock()
	return calls
}

func (mock *catalogServiceMock) UpdateBook(ctx context.Context, id uuid.UUID, input catalog.BookInput) (*domain.Book, error) {
	if mock.UpdateBookFunc == nil {
		panic("catalogServiceMock.UpdateBookFunc: method is nil but catalogService.UpdateBook was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Id    uuid.UUID
		Input catalog.BookInput
	}{
		Ctx:   ctx,
		Id:    id,
		Input: input,
	}
	mock.lockUpdateBook.Lock()
	mock.calls.UpdateBook = append(mock.calls.UpdateBook, callInfo)
	mock.lockUpdateBook.Unlock()
	return mock.UpdateBookFunc(ctx, id, input)
}

func (mock *catalogServiceMock) UpdateBookCalls() []struct {
	Ctx   context.Context
	Id    uuid.UUID
	Input catalog.BookInput
} {
	mock.lockUpdateBook.RLock()
	calls := mock.calls.UpdateBook
	mock.lockUpdateBook.RUnlock()
	return calls
}
