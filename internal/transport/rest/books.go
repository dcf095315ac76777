package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/bud-backend/internal/domain"
	"github.com/heartmarshall/bud-backend/internal/service/catalog"
)

type catalogService interface {
	SearchGoogle(ctx context.Context, query string) ([]domain.GoogleVolume, error)
	AddFromGoogle(ctx context.Context, googleBooksID string) (*domain.Book, bool, error)
	ListBooks(ctx context.Context, input catalog.ListBooksInput) (*catalog.BookPage, error)
	GetBook(ctx context.Context, id uuid.UUID) (*domain.Book, error)
	CreateBook(ctx context.Context, input catalog.BookInput) (*domain.Book, error)
	UpdateBook(ctx context.Context, id uuid.UUID, input catalog.BookInput) (*domain.Book, error)
	DeleteBook(ctx context.Context, id uuid.UUID) error
	ListGenres(ctx context.Context) ([]domain.Genre, error)
}

// BookHandler serves the catalog endpoints.
type BookHandler struct {
	svc catalogService
	log *slog.Logger
}

// NewBookHandler creates a BookHandler.
func NewBookHandler(svc catalogService, logger *slog.Logger) *BookHandler {
	return &BookHandler{svc: svc, log: logger.With("handler", "books")}
}

type bookRequest struct {
	Title         string      `json:"title"`
	Author        string      `json:"author"`
	Description   string      `json:"description"`
	ISBN10        *string     `json:"isbn_10"`
	ISBN13        *string     `json:"isbn_13"`
	TotalPages    int         `json:"total_pages"`
	CoverURL      string      `json:"cover_url"`
	Language      string      `json:"language"`
	PublishedDate string      `json:"published_date"`
	Publisher     string      `json:"publisher"`
	GenreIDs      []uuid.UUID `json:"genre_ids"`
}

func (b bookRequest) input() catalog.BookInput {
	return catalog.BookInput{
		Title:         b.Title,
		Author:        b.Author,
		Description:   b.Description,
		ISBN10:        b.ISBN10,
		ISBN13:        b.ISBN13,
		TotalPages:    b.TotalPages,
		CoverURL:      b.CoverURL,
		Language:      b.Language,
		PublishedDate: b.PublishedDate,
		Publisher:     b.Publisher,
		GenreIDs:      b.GenreIDs,
	}
}

type addFromGoogleRequest struct {
	GoogleBooksID string `json:"google_books_id"`
}

// List handles GET /api/books?q=&genre=&limit=&offset=. The genre parameter
// may repeat.
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var genreIDs []uuid.UUID
	for _, raw := range q["genre"] {
		id, err := uuid.Parse(strings.TrimSpace(raw))
		if err != nil {
			respondError(w, r, h.log, domain.NewValidationError("genre", "must be a valid id"))
			return
		}
		genreIDs = append(genreIDs, id)
	}

	limit, ok := queryInt(w, r, "limit", 0)
	if !ok {
		return
	}
	offset, ok := queryInt(w, r, "offset", 0)
	if !ok {
		return
	}

	page, err := h.svc.ListBooks(r.Context(), catalog.ListBooksInput{
		Query:    q.Get("q"),
		GenreIDs: genreIDs,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	results := make([]bookResponse, 0, len(page.Books))
	for _, b := range page.Books {
		results = append(results, toBookResponse(b))
	}
	writeJSON(w, http.StatusOK, pageResponse[bookResponse]{Count: page.Total, Results: results})
}

// Get handles GET /api/books/{id}.
func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	book, err := h.svc.GetBook(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toBookResponse(book))
}

// Create handles POST /api/books.
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req bookRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	book, err := h.svc.CreateBook(r.Context(), req.input())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toBookResponse(book))
}

// Update handles PUT /api/books/{id}.
func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req bookRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	book, err := h.svc.UpdateBook(r.Context(), id, req.input())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toBookResponse(book))
}

// Delete handles DELETE /api/books/{id}.
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteBook(r.Context(), id); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SearchGoogle handles GET /api/books/search-google?q=.
func (h *BookHandler) SearchGoogle(w http.ResponseWriter, r *http.Request) {
	vols, err := h.svc.SearchGoogle(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	out := make([]volumeResponse, 0, len(vols))
	for _, v := range vols {
		out = append(out, toVolumeResponse(v))
	}
	writeJSON(w, http.StatusOK, out)
}

// AddFromGoogle handles POST /api/books/add-from-google. A newly imported
// book answers 201, an existing one 200.
func (h *BookHandler) AddFromGoogle(w http.ResponseWriter, r *http.Request) {
	var req addFromGoogleRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	book, created, err := h.svc.AddFromGoogle(r.Context(), req.GoogleBooksID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, toBookResponse(book))
}

// Genres handles GET /api/genres.
func (h *BookHandler) Genres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.svc.ListGenres(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toGenreResponses(genres))
}
