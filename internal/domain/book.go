package domain

import (
	"time"

	"github.com/google/uuid"
)

// Book is a catalog entry shared by all users.
type Book struct {
	ID            uuid.UUID
	Title         string
	Author        string
	Description   string
	ISBN10        *string
	ISBN13        *string
	GoogleBooksID *string
	TotalPages    int
	CoverURL      string
	Language      string
	PublishedDate string
	Publisher     string
	AddedBy       *uuid.UUID
	Genres        []Genre
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Summary returns the short form embedded in reading progress responses.
func (b *Book) Summary() BookSummary {
	return BookSummary{
		ID:         b.ID,
		Title:      b.Title,
		Author:     b.Author,
		CoverURL:   b.CoverURL,
		TotalPages: b.TotalPages,
	}
}

// BookSummary is a compact view of a book.
type BookSummary struct {
	ID         uuid.UUID
	Title      string
	Author     string
	CoverURL   string
	TotalPages int
}

// Genre is a catalog category.
type Genre struct {
	ID   uuid.UUID
	Name string
	Slug string
}

// BookFilter narrows catalog listings. Zero values mean "no restriction".
type BookFilter struct {
	Query    string
	GenreIDs []uuid.UUID
	Limit    int
	Offset   int
}

// GoogleVolume is a normalized Google Books search result.
type GoogleVolume struct {
	GoogleBooksID string
	Title         string
	Author        string
	Description   string
	ISBN10        string
	ISBN13        string
	PageCount     int
	CoverURL      string
	Language      string
	PublishedDate string
	Publisher     string
	Categories    []string
}
