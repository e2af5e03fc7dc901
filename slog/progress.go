package slog

import (
	"log/slog"

	"github.com/jturek/wikinote/acquire"
)

// NewProgress returns a ProgressFunc that logs acquisition events: attempt
// starts and unsuitable articles at info level, failures and exhaustion at
// warn level.
func NewProgress(logger *slog.Logger) acquire.ProgressFunc {
	return func(e acquire.Event) {
		switch e.Type {
		case acquire.EventAttempt:
			logger.Info("fetching random article",
				"run", e.RunID,
				"attempt", e.Attempt,
				"max", e.Max,
			)
		case acquire.EventError:
			logger.Warn("fetch attempt failed",
				"run", e.RunID,
				"attempt", e.Attempt,
				"err", e.Err,
			)
		case acquire.EventUnsuitable:
			logger.Info("article has too few sections",
				"run", e.RunID,
				"attempt", e.Attempt,
				"title", e.Title,
			)
		case acquire.EventExhausted:
			logger.Warn("no suitable article found",
				"run", e.RunID,
				"attempts", e.Max,
			)
		}
	}
}
