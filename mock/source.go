package mock

import (
	"context"

	"github.com/jturek/wikinote"
)

var _ wikinote.ArticleSource = (*ArticleSource)(nil)

// ArticleSource is a mock implementation of wikinote.ArticleSource.
type ArticleSource struct {
	RandomTitleFn  func(ctx context.Context) (string, error)
	ArticleHTMLFn  func(ctx context.Context, title string) (string, error)
	CanonicalURLFn func(title string) string
}

func (s *ArticleSource) RandomTitle(ctx context.Context) (string, error) {
	return s.RandomTitleFn(ctx)
}

func (s *ArticleSource) ArticleHTML(ctx context.Context, title string) (string, error) {
	return s.ArticleHTMLFn(ctx, title)
}

func (s *ArticleSource) CanonicalURL(title string) string {
	return s.CanonicalURLFn(title)
}

var _ wikinote.SummarySource = (*SummarySource)(nil)

// SummarySource is a mock implementation of wikinote.SummarySource.
type SummarySource struct {
	SummaryFn func(ctx context.Context, title string) (string, error)
}

func (s *SummarySource) Summary(ctx context.Context, title string) (string, error) {
	return s.SummaryFn(ctx, title)
}
