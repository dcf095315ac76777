package googlebooks

import (
	"strings"

	"github.com/heartmarshall/bud-backend/internal/domain"
)

const (
	unknownTitle    = "Unknown Title"
	unknownAuthor   = "Unknown Author"
	defaultLanguage = "en"
)

type volumesResponse struct {
	TotalItems int      `json:"totalItems"`
	Items      []volume `json:"items"`
}

type volume struct {
	ID         string     `json:"id"`
	VolumeInfo volumeInfo `json:"volumeInfo"`
}

type volumeInfo struct {
	Title               string               `json:"title"`
	Subtitle            string               `json:"subtitle"`
	Authors             []string             `json:"authors"`
	Publisher           string               `json:"publisher"`
	PublishedDate       string               `json:"publishedDate"`
	Description         string               `json:"description"`
	IndustryIdentifiers []industryIdentifier `json:"industryIdentifiers"`
	PageCount           int                  `json:"pageCount"`
	Categories          []string             `json:"categories"`
	ImageLinks          *imageLinks          `json:"imageLinks"`
	Language            string               `json:"language"`
}

type industryIdentifier struct {
	Type       string `json:"type"`
	Identifier string `json:"identifier"`
}

type imageLinks struct {
	SmallThumbnail string `json:"smallThumbnail"`
	Thumbnail      string `json:"thumbnail"`
}

// toDomain normalizes a raw volume into the shape the catalog stores.
func (v volume) toDomain() domain.GoogleVolume {
	info := v.VolumeInfo

	out := domain.GoogleVolume{
		GoogleBooksID: v.ID,
		Title:         strings.TrimSpace(info.Title),
		Author:        strings.Join(nonEmpty(info.Authors), ", "),
		Description:   info.Description,
		PageCount:     max(info.PageCount, 0),
		CoverURL:      coverURL(info.ImageLinks),
		Language:      info.Language,
		PublishedDate: info.PublishedDate,
		Publisher:     info.Publisher,
		Categories:    nonEmpty(info.Categories),
	}
	if out.Title == "" {
		out.Title = unknownTitle
	}
	if out.Author == "" {
		out.Author = unknownAuthor
	}
	if out.Language == "" {
		out.Language = defaultLanguage
	}

	for _, id := range info.IndustryIdentifiers {
		switch id.Type {
		case "ISBN_10":
			out.ISBN10 = id.Identifier
		case "ISBN_13":
			out.ISBN13 = id.Identifier
		}
	}

	return out
}

// coverURL prefers the regular thumbnail, forces https and drops the page-curl effect.
func coverURL(links *imageLinks) string {
	if links == nil {
		return ""
	}
	u := links.Thumbnail
	if u == "" {
		u = links.SmallThumbnail
	}
	if u == "" {
		return ""
	}
	if rest, ok := strings.CutPrefix(u, "http://"); ok {
		u = "https://" + rest
	}
	return strings.ReplaceAll(u, "&edge=curl", "")
}

func nonEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
