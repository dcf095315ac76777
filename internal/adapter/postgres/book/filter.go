package book

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/bud-backend/internal/domain"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func normalizeFilter(f domain.BookFilter) domain.BookFilter {
	f.Query = strings.TrimSpace(f.Query)
	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}

// applyFilter adds the WHERE clauses shared by the list and count queries.
func applyFilter(b sq.SelectBuilder, f domain.BookFilter) sq.SelectBuilder {
	if f.Query != "" {
		pattern := "%" + escapeLike(f.Query) + "%"
		b = b.Where(sq.Or{
			sq.ILike{"b.title": pattern},
			sq.ILike{"b.author": pattern},
		})
	}
	if len(f.GenreIDs) > 0 {
		b = b.Where(sq.Expr(
			"EXISTS (SELECT 1 FROM book_genres bg WHERE bg.book_id = b.id AND bg.genre_id = ANY(?))",
			f.GenreIDs,
		))
	}
	return b
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
