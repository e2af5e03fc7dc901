// Package wikinote fetches random Wikipedia articles, checks that their
// section structure meets a configurable minimum, and renders structured
// markdown notes from the extracted headings.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, yaml/).
package wikinote

import "context"

// ArticleSource provides random article titles and their rendered HTML.
// Implementations hide the network API details.
type ArticleSource interface {
	// RandomTitle returns the title of a randomly chosen article.
	RandomTitle(ctx context.Context) (string, error)

	// ArticleHTML returns the rendered body HTML for the titled article.
	ArticleHTML(ctx context.Context, title string) (string, error)

	// CanonicalURL returns the canonical page URL for the titled article.
	CanonicalURL(title string) string
}

// SummarySource provides the lead-section extract HTML for an article.
// It is optional; notes include a summary block only when one is requested.
type SummarySource interface {
	Summary(ctx context.Context, title string) (string, error)
}

// HeadingExtractor extracts section headings from rendered article HTML.
// Implementations hide content-region scoping and edit-link stripping.
type HeadingExtractor interface {
	// Extract returns the kept headings in document order. Malformed or
	// empty input yields an empty result, never an error.
	Extract(html string, exclusions ExclusionSet) []Heading
}

// Converter converts HTML fragments to Markdown.
type Converter interface {
	Convert(html string) (string, error)
}

// NoteWriter persists a rendered note body.
type NoteWriter interface {
	// WriteNote writes the body under a name derived from the article and
	// returns the path of the written file.
	WriteNote(ctx context.Context, article *Article, body string) (path string, err error)
}
