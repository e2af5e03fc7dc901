// Package slog provides logging decorators for wikinote interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/jturek/wikinote"
)

// Ensure LoggingSource implements wikinote.ArticleSource.
var _ wikinote.ArticleSource = (*LoggingSource)(nil)

// LoggingSource wraps an ArticleSource with debug logging.
type LoggingSource struct {
	next   wikinote.ArticleSource
	logger *slog.Logger
}

// NewLoggingSource creates a new LoggingSource.
func NewLoggingSource(next wikinote.ArticleSource, logger *slog.Logger) *LoggingSource {
	return &LoggingSource{next: next, logger: logger}
}

// RandomTitle delegates to the wrapped source and logs the operation.
func (s *LoggingSource) RandomTitle(ctx context.Context) (title string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("random title",
			"title", title,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.RandomTitle(ctx)
}

// ArticleHTML delegates to the wrapped source and logs the operation.
func (s *LoggingSource) ArticleHTML(ctx context.Context, title string) (html string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("article html",
			"title", title,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ArticleHTML(ctx, title)
}

// CanonicalURL delegates to the wrapped source.
func (s *LoggingSource) CanonicalURL(title string) string {
	return s.next.CanonicalURL(title)
}
