package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/rsdoc"
)

// Ensure LoggingRegistry implements rsdoc.Registry.
var _ rsdoc.Registry = (*LoggingRegistry)(nil)

// LoggingRegistry wraps a Registry with logging of crate searches.
type LoggingRegistry struct {
	next   rsdoc.Registry
	logger *slog.Logger
}

// NewLoggingRegistry creates a new LoggingRegistry.
func NewLoggingRegistry(next rsdoc.Registry, logger *slog.Logger) *LoggingRegistry {
	return &LoggingRegistry{next: next, logger: logger}
}

// SearchCrates delegates to the wrapped registry and logs the result size.
func (r *LoggingRegistry) SearchCrates(ctx context.Context, query string, page int) (result *rsdoc.CrateSearchResult, err error) {
	defer func(begin time.Time) {
		total := 0
		if result != nil {
			total = result.Total
		}
		r.logger.DebugContext(ctx, "registry search",
			"query", query,
			"page", page,
			"total", total,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.SearchCrates(ctx, query, page)
}
