// Package acquire implements the bounded retry loop that fetches random
// articles until one meets the suitability criterion.
//
// The loop is strictly sequential: each attempt fully resolves before the
// next begins, and its only suspension points are the network calls and
// the delay inserted after a failed fetch.
package acquire

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jturek/wikinote"
)

// DefaultRetryDelay is the pause inserted after a failed fetch before the
// next attempt.
const DefaultRetryDelay = 1 * time.Second

// EventType indicates the type of progress event.
type EventType int

const (
	// EventAttempt is emitted when an attempt starts.
	EventAttempt EventType = iota

	// EventError is emitted when either network call of an attempt fails.
	EventError

	// EventUnsuitable is emitted when a fetched article has too few
	// headings. Not an error; the loop simply moves on.
	EventUnsuitable

	// EventExhausted is emitted when the attempt budget runs out.
	EventExhausted
)

// Event reports progress during an acquisition run.
type Event struct {
	Type    EventType
	RunID   string
	Attempt int // 1-based
	Max     int
	Title   string // set for EventUnsuitable
	Err     error  // set for EventError
}

// ProgressFunc is a callback for reporting acquisition progress.
type ProgressFunc func(Event)

// Acquirer runs fetch, extract, evaluate cycles until an article is
// accepted or the retry budget is exhausted.
type Acquirer struct {
	Source    wikinote.ArticleSource
	Extractor wikinote.HeadingExtractor

	// Progress, if set, receives events as the run proceeds.
	Progress ProgressFunc

	// RetryDelay is the pause after a failed fetch. Zero means no delay;
	// tests rely on that.
	RetryDelay time.Duration

	// Now stamps accepted articles. Defaults to time.Now.
	Now func() time.Time
}

// Acquire produces one accepted article, or an ENOTFOUND error once the
// attempt budget is spent. Errors from individual attempts are absorbed
// and converted into retries; they never escape the loop. The one
// exception is context cancellation, which returns the context's error so
// a caller-imposed timeout is never misreported as exhaustion.
func (a *Acquirer) Acquire(ctx context.Context, cfg wikinote.Config) (*wikinote.Article, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	now := a.Now
	if now == nil {
		now = time.Now
	}

	runID := uuid.New().String()

	for attempt := 1; attempt <= cfg.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		a.notify(Event{Type: EventAttempt, RunID: runID, Attempt: attempt, Max: cfg.MaxRetries})

		title, html, err := a.fetch(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			a.notify(Event{Type: EventError, RunID: runID, Attempt: attempt, Max: cfg.MaxRetries, Err: err})
			if a.RetryDelay > 0 {
				select {
				case <-ctx.Done():
					return nil, ctx.Err()
				case <-time.After(a.RetryDelay):
				}
			}
			continue
		}

		headings := a.Extractor.Extract(html, cfg.Exclusions)
		if !wikinote.Suitable(headings, cfg.MinHeadings) {
			a.notify(Event{Type: EventUnsuitable, RunID: runID, Attempt: attempt, Max: cfg.MaxRetries, Title: title})
			continue
		}

		return &wikinote.Article{
			ID:        uuid.New().String(),
			Title:     title,
			URL:       a.Source.CanonicalURL(title),
			Headings:  headings,
			FetchedAt: now(),
		}, nil
	}

	a.notify(Event{Type: EventExhausted, RunID: runID, Attempt: cfg.MaxRetries, Max: cfg.MaxRetries})
	return nil, wikinote.Errorf(wikinote.ENOTFOUND, "no suitable article found after %d attempts", cfg.MaxRetries)
}

// fetch performs the two network calls of one attempt.
func (a *Acquirer) fetch(ctx context.Context) (title, html string, err error) {
	title, err = a.Source.RandomTitle(ctx)
	if err != nil {
		return "", "", err
	}
	html, err = a.Source.ArticleHTML(ctx, title)
	if err != nil {
		return "", "", err
	}
	return title, html, nil
}

func (a *Acquirer) notify(e Event) {
	if a.Progress != nil {
		a.Progress(e)
	}
}
