package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/rsdoc"
	"github.com/google/uuid"
)

// Ensure LoggingService implements rsdoc.DocService.
var _ rsdoc.DocService = (*LoggingService)(nil)

// LoggingService wraps a DocService, logging one line per call with a
// request id, the operation, its duration and any error.
type LoggingService struct {
	next   rsdoc.DocService
	logger *slog.Logger
}

// NewLoggingService creates a new LoggingService.
func NewLoggingService(next rsdoc.DocService, logger *slog.Logger) *LoggingService {
	return &LoggingService{next: next, logger: logger}
}

// log writes the record for a finished call. Failures log at warn level.
func (s *LoggingService) log(ctx context.Context, op string, begin time.Time, err error, attrs ...any) {
	level := slog.LevelInfo
	if err != nil {
		level = slog.LevelWarn
		attrs = append(attrs, "code", rsdoc.ErrorCode(err))
	}
	attrs = append([]any{
		"request_id", uuid.NewString(),
		"op", op,
	}, attrs...)
	attrs = append(attrs,
		"duration", time.Since(begin),
		"err", err,
	)
	s.logger.Log(ctx, level, "doc request", attrs...)
}

func (s *LoggingService) SearchCrates(ctx context.Context, query string, page int) (result *rsdoc.CrateSearchResult, err error) {
	defer func(begin time.Time) {
		s.log(ctx, "search_crates", begin, err, "query", query, "page", page)
	}(time.Now())
	return s.next.SearchCrates(ctx, query, page)
}

func (s *LoggingService) CrateInfo(ctx context.Context, crate string) (info *rsdoc.CrateInfo, err error) {
	defer func(begin time.Time) {
		s.log(ctx, "crate_info", begin, err, "crate", crate)
	}(time.Now())
	return s.next.CrateInfo(ctx, crate)
}

func (s *LoggingService) CrateFeatures(ctx context.Context, crate string) (features []rsdoc.Feature, err error) {
	defer func(begin time.Time) {
		s.log(ctx, "crate_features", begin, err, "crate", crate, "count", len(features))
	}(time.Now())
	return s.next.CrateFeatures(ctx, crate)
}

func (s *LoggingService) ItemDefinition(ctx context.Context, itemPath string) (def *rsdoc.ItemDefinition, err error) {
	defer func(begin time.Time) {
		s.log(ctx, "item_definition", begin, err, "path", itemPath)
	}(time.Now())
	return s.next.ItemDefinition(ctx, itemPath)
}

func (s *LoggingService) ItemExamples(ctx context.Context, itemPath string) (examples []string, err error) {
	defer func(begin time.Time) {
		s.log(ctx, "item_examples", begin, err, "path", itemPath, "count", len(examples))
	}(time.Now())
	return s.next.ItemExamples(ctx, itemPath)
}

func (s *LoggingService) ItemExample(ctx context.Context, itemPath string, n int) (example string, err error) {
	defer func(begin time.Time) {
		s.log(ctx, "item_example", begin, err, "path", itemPath, "n", n)
	}(time.Now())
	return s.next.ItemExample(ctx, itemPath, n)
}

func (s *LoggingService) SearchInCrate(ctx context.Context, crate, query string) (symbols []rsdoc.Symbol, err error) {
	defer func(begin time.Time) {
		s.log(ctx, "search_in_crate", begin, err, "crate", crate, "query", query, "count", len(symbols))
	}(time.Now())
	return s.next.SearchInCrate(ctx, crate, query)
}
