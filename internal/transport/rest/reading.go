package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/bud-backend/internal/domain"
	"github.com/heartmarshall/bud-backend/internal/service/reading"
)

type readingService interface {
	StartReading(ctx context.Context, bookID uuid.UUID) (*domain.UserBook, error)
	LogSession(ctx context.Context, input reading.LogSessionInput) (*domain.ReadingSession, error)
	GetReadingStats(ctx context.Context) (*domain.ReadingStats, error)
	GetCurrentlyReading(ctx context.Context) ([]*domain.UserBook, error)
	ListUserBooks(ctx context.Context) ([]*domain.UserBook, error)
	GetUserBook(ctx context.Context, id uuid.UUID) (*domain.UserBook, error)
	ListSessions(ctx context.Context, input reading.ListSessionsInput) (*reading.SessionPage, error)
}

// ReadingHandler serves the reading progress endpoints.
type ReadingHandler struct {
	svc readingService
	log *slog.Logger
}

// NewReadingHandler creates a ReadingHandler.
func NewReadingHandler(svc readingService, logger *slog.Logger) *ReadingHandler {
	return &ReadingHandler{svc: svc, log: logger.With("handler", "reading")}
}

type startReadingRequest struct {
	BookID uuid.UUID `json:"book_id"`
}

// Pointers distinguish an omitted field from an explicit zero.
type logSessionRequest struct {
	BookID          uuid.UUID `json:"book_id"`
	StartPage       *int      `json:"start_page"`
	EndPage         *int      `json:"end_page"`
	DurationMinutes *int      `json:"duration_minutes"`
}

func (req logSessionRequest) validate() error {
	var errs []domain.FieldError
	if req.StartPage == nil {
		errs = append(errs, domain.FieldError{Field: "start_page", Message: "required"})
	}
	if req.EndPage == nil {
		errs = append(errs, domain.FieldError{Field: "end_page", Message: "required"})
	}
	if req.DurationMinutes == nil {
		errs = append(errs, domain.FieldError{Field: "duration_minutes", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// List handles GET /api/reading/progress.
func (h *ReadingHandler) List(w http.ResponseWriter, r *http.Request) {
	links, err := h.svc.ListUserBooks(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserBookResponses(links))
}

// Get handles GET /api/reading/progress/{id}.
func (h *ReadingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	link, err := h.svc.GetUserBook(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserBookResponse(link))
}

// Start handles POST /api/reading/progress/start.
func (h *ReadingHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req startReadingRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	link, err := h.svc.StartReading(r.Context(), req.BookID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserBookResponse(link))
}

// LogSession handles POST /api/reading/progress/log-session.
func (h *ReadingHandler) LogSession(w http.ResponseWriter, r *http.Request) {
	var req logSessionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.validate(); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	session, err := h.svc.LogSession(r.Context(), reading.LogSessionInput{
		BookID:          req.BookID,
		StartPage:       *req.StartPage,
		EndPage:         *req.EndPage,
		DurationMinutes: *req.DurationMinutes,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSessionResponse(session))
}

// Stats handles GET /api/reading/progress/stats.
func (h *ReadingHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.GetReadingStats(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, statsResponse{
		TotalXP:        stats.TotalXP,
		CurrentStreak:  stats.CurrentStreak,
		BooksFinished:  stats.BooksFinished,
		TotalTimeHours: stats.TotalTimeHours,
	})
}

// CurrentlyReading handles GET /api/reading/progress/currently-reading.
func (h *ReadingHandler) CurrentlyReading(w http.ResponseWriter, r *http.Request) {
	links, err := h.svc.GetCurrentlyReading(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserBookResponses(links))
}

// Sessions handles GET /api/reading/sessions?limit=&offset=.
func (h *ReadingHandler) Sessions(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryInt(w, r, "limit", 0)
	if !ok {
		return
	}
	offset, ok := queryInt(w, r, "offset", 0)
	if !ok {
		return
	}

	page, err := h.svc.ListSessions(r.Context(), reading.ListSessionsInput{Limit: limit, Offset: offset})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	results := make([]sessionResponse, 0, len(page.Sessions))
	for _, s := range page.Sessions {
		results = append(results, toSessionResponse(s))
	}
	writeJSON(w, http.StatusOK, pageResponse[sessionResponse]{Count: page.Total, Results: results})
}
