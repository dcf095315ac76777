package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/bud-backend/internal/domain"
	authsvc "github.com/heartmarshall/bud-backend/internal/service/auth"
)

type userResponse struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	EmailVerified bool      `json:"email_verified"`
	Username      string    `json:"username"`
	Name          string    `json:"name"`
	AvatarURL     *string   `json:"avatar_url"`
	Role          string    `json:"role"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:            u.ID,
		Email:         u.Email,
		EmailVerified: u.EmailVerified,
		Username:      u.Username,
		Name:          u.Name,
		AvatarURL:     u.AvatarURL,
		Role:          u.Role.String(),
		IsActive:      u.IsActive,
		CreatedAt:     u.CreatedAt,
	}
}

type authResponse struct {
	Access    string       `json:"access"`
	Refresh   string       `json:"refresh"`
	TokenType string       `json:"token_type"`
	ExpiresIn int          `json:"expires_in"`
	User      userResponse `json:"user"`
}

func toAuthResponse(r *authsvc.AuthResult) authResponse {
	return authResponse{
		Access:    r.AccessToken,
		Refresh:   r.RefreshToken,
		TokenType: "Bearer",
		ExpiresIn: int(r.ExpiresIn.Seconds()),
		User:      toUserResponse(r.User),
	}
}

type genreResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

func toGenreResponses(genres []domain.Genre) []genreResponse {
	out := make([]genreResponse, 0, len(genres))
	for _, g := range genres {
		out = append(out, genreResponse{ID: g.ID, Name: g.Name, Slug: g.Slug})
	}
	return out
}

type bookResponse struct {
	ID            uuid.UUID       `json:"id"`
	Title         string          `json:"title"`
	Author        string          `json:"author"`
	ISBN10        *string         `json:"isbn_10"`
	ISBN13        *string         `json:"isbn_13"`
	TotalPages    int             `json:"total_pages"`
	CoverURL      string          `json:"cover_url"`
	Description   string          `json:"description"`
	Publisher     string          `json:"publisher"`
	PublishedDate string          `json:"published_date"`
	Language      string          `json:"language"`
	GoogleBooksID *string         `json:"google_books_id"`
	Genres        []genreResponse `json:"genres"`
	AddedBy       *uuid.UUID      `json:"added_by"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func toBookResponse(b *domain.Book) bookResponse {
	return bookResponse{
		ID:            b.ID,
		Title:         b.Title,
		Author:        b.Author,
		ISBN10:        b.ISBN10,
		ISBN13:        b.ISBN13,
		TotalPages:    b.TotalPages,
		CoverURL:      b.CoverURL,
		Description:   b.Description,
		Publisher:     b.Publisher,
		PublishedDate: b.PublishedDate,
		Language:      b.Language,
		GoogleBooksID: b.GoogleBooksID,
		Genres:        toGenreResponses(b.Genres),
		AddedBy:       b.AddedBy,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

type pageResponse[T any] struct {
	Count   int `json:"count"`
	Results []T `json:"results"`
}

type volumeResponse struct {
	GoogleBooksID string   `json:"google_books_id"`
	Title         string   `json:"title"`
	Author        string   `json:"author"`
	ISBN10        *string  `json:"isbn_10"`
	ISBN13        *string  `json:"isbn_13"`
	TotalPages    int      `json:"total_pages"`
	CoverURL      string   `json:"cover_url"`
	Description   string   `json:"description"`
	Publisher     string   `json:"publisher"`
	PublishedDate string   `json:"published_date"`
	Language      string   `json:"language"`
	Categories    []string `json:"categories"`
}

func toVolumeResponse(v domain.GoogleVolume) volumeResponse {
	categories := v.Categories
	if categories == nil {
		categories = []string{}
	}
	return volumeResponse{
		GoogleBooksID: v.GoogleBooksID,
		Title:         v.Title,
		Author:        v.Author,
		ISBN10:        nilIfEmpty(v.ISBN10),
		ISBN13:        nilIfEmpty(v.ISBN13),
		TotalPages:    v.PageCount,
		CoverURL:      v.CoverURL,
		Description:   v.Description,
		Publisher:     v.Publisher,
		PublishedDate: v.PublishedDate,
		Language:      v.Language,
		Categories:    categories,
	}
}

type bookSummaryResponse struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	Author     string    `json:"author"`
	CoverURL   string    `json:"cover_url"`
	TotalPages int       `json:"total_pages"`
}

type userBookResponse struct {
	ID              uuid.UUID            `json:"id"`
	Book            *bookSummaryResponse `json:"book"`
	Status          string               `json:"status"`
	CurrentPage     int                  `json:"current_page"`
	StartedAt       *time.Time           `json:"started_at"`
	FinishedAt      *time.Time           `json:"finished_at"`
	ProgressPercent float64              `json:"progress_percent"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

func toUserBookResponse(l *domain.UserBook) userBookResponse {
	resp := userBookResponse{
		ID:              l.ID,
		Status:          l.Status.String(),
		CurrentPage:     l.CurrentPage,
		StartedAt:       l.StartedAt,
		FinishedAt:      l.FinishedAt,
		ProgressPercent: l.ProgressPercent(),
		CreatedAt:       l.CreatedAt,
		UpdatedAt:       l.UpdatedAt,
	}
	if l.Book != nil {
		resp.Book = &bookSummaryResponse{
			ID:         l.Book.ID,
			Title:      l.Book.Title,
			Author:     l.Book.Author,
			CoverURL:   l.Book.CoverURL,
			TotalPages: l.Book.TotalPages,
		}
	}
	return resp
}

func toUserBookResponses(links []*domain.UserBook) []userBookResponse {
	out := make([]userBookResponse, 0, len(links))
	for _, l := range links {
		out = append(out, toUserBookResponse(l))
	}
	return out
}

type sessionResponse struct {
	ID              uuid.UUID `json:"id"`
	Book            uuid.UUID `json:"book"`
	UserBook        uuid.UUID `json:"user_book"`
	BookTitle       string    `json:"book_title"`
	StartPage       int       `json:"start_page"`
	EndPage         int       `json:"end_page"`
	PagesRead       int       `json:"pages_read"`
	DurationMinutes int       `json:"duration_minutes"`
	XPEarned        int       `json:"xp_earned"`
	CreatedAt       time.Time `json:"created_at"`
}

func toSessionResponse(s *domain.ReadingSession) sessionResponse {
	return sessionResponse{
		ID:              s.ID,
		Book:            s.BookID,
		UserBook:        s.UserBookID,
		BookTitle:       s.BookTitle,
		StartPage:       s.StartPage,
		EndPage:         s.EndPage,
		PagesRead:       s.PagesRead,
		DurationMinutes: s.DurationMinutes,
		XPEarned:        s.XPEarned,
		CreatedAt:       s.CreatedAt,
	}
}

type statsResponse struct {
	TotalXP        int     `json:"total_xp"`
	CurrentStreak  int     `json:"current_streak"`
	BooksFinished  int     `json:"books_finished"`
	TotalTimeHours float64 `json:"total_time_hours"`
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
