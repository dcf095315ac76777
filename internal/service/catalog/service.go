// Package catalog manages the shared book catalog and its Google Books import.
package catalog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/bud-backend/internal/config"
	"github.com/heartmarshall/bud-backend/internal/domain"
	"github.com/heartmarshall/bud-backend/pkg/ctxutil"
)

type bookRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error)
	GetByGoogleID(ctx context.Context, googleID string) (*domain.Book, error)
	CountAddedBy(ctx context.Context, userID uuid.UUID) (int, error)
	List(ctx context.Context, filter domain.BookFilter) ([]*domain.Book, int, error)
	Create(ctx context.Context, b *domain.Book) (*domain.Book, error)
	Update(ctx context.Context, b *domain.Book) (*domain.Book, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetGenres(ctx context.Context, bookID uuid.UUID, genreIDs []uuid.UUID) error
}

type genreRepo interface {
	GetOrCreate(ctx context.Context, name, slug string) (*domain.Genre, error)
	ListWithBooks(ctx context.Context) ([]domain.Genre, error)
}

type volumeProvider interface {
	Search(ctx context.Context, query string, maxResults int) ([]domain.GoogleVolume, error)
	GetVolume(ctx context.Context, id string) (*domain.GoogleVolume, error)
}

type searchCache interface {
	Get(ctx context.Context, query string, maxResults int) ([]domain.GoogleVolume, bool, error)
	Set(ctx context.Context, query string, maxResults int, vols []domain.GoogleVolume) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements catalog browsing, curation and import.
type Service struct {
	log        *slog.Logger
	books      bookRepo
	genres     genreRepo
	volumes    volumeProvider
	cache      searchCache
	tx         txManager
	maxPerUser int
	maxResults int
	pageSize   int
	maxPage    int
}

// NewService creates a catalog service. cache may be nil, in which case every
// search goes to the provider.
func NewService(
	logger *slog.Logger,
	books bookRepo,
	genres genreRepo,
	volumes volumeProvider,
	cache searchCache,
	tx txManager,
	catalogCfg config.CatalogConfig,
	googleCfg config.GoogleBooksConfig,
) *Service {
	maxResults := googleCfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}
	pageSize := catalogCfg.DefaultPageSize
	if pageSize <= 0 {
		pageSize = 20
	}
	maxPage := catalogCfg.MaxPageSize
	if maxPage < pageSize {
		maxPage = pageSize
	}
	return &Service{
		log:        logger.With("service", "catalog"),
		books:      books,
		genres:     genres,
		volumes:    volumes,
		cache:      cache,
		tx:         tx,
		maxPerUser: catalogCfg.MaxBooksPerUser,
		maxResults: maxResults,
		pageSize:   pageSize,
		maxPage:    maxPage,
	}
}

// caller returns the authenticated user and whether they administer the catalog.
func caller(ctx context.Context) (uuid.UUID, bool, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, false, domain.ErrUnauthorized
	}
	return userID, domain.Role(ctxutil.UserRoleFromCtx(ctx)).IsAdmin(), nil
}
