package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/bud-backend/internal/domain"
)

// SearchGoogle queries Google Books. Cached results are served when present;
// cache errors fall through to the provider.
func (s *Service) SearchGoogle(ctx context.Context, query string) ([]domain.GoogleVolume, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.NewValidationError("q", `query parameter "q" is required`)
	}

	if s.cache != nil {
		vols, ok, err := s.cache.Get(ctx, query, s.maxResults)
		switch {
		case err != nil:
			s.log.WarnContext(ctx, "search cache read failed",
				slog.String("query", query),
				slog.String("error", err.Error()),
			)
		case ok:
			return vols, nil
		}
	}

	vols, err := s.volumes.Search(ctx, query, s.maxResults)
	if err != nil {
		return nil, fmt.Errorf("search google books: %w", err)
	}
	if vols == nil {
		vols = []domain.GoogleVolume{}
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, query, s.maxResults, vols); err != nil {
			s.log.WarnContext(ctx, "search cache write failed",
				slog.String("query", query),
				slog.String("error", err.Error()),
			)
		}
	}
	return vols, nil
}
