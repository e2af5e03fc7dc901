package wikinote

import "time"

// Heading levels kept by the extractor. MediaWiki reserves h1 for the page
// title; anything deeper than h4 is sub-sub-section noise.
const (
	MinHeadingLevel = 2
	MaxHeadingLevel = 4
)

// Heading represents one section heading extracted from an article.
// Two headings are equal when both Level and Text match exactly.
// Immutable once created.
type Heading struct {
	Level int
	Text  string
}

// Article is a fetched, parsed, and validated article ready for rendering.
// It is created only when acquisition succeeds and is never mutated after
// creation; the caller that receives it from the acquisition loop owns it.
type Article struct {
	ID        string
	Title     string
	URL       string
	Headings  []Heading
	FetchedAt time.Time
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if a.Title == "" {
		return Errorf(EINVALID, "article title required")
	}
	if a.URL == "" {
		return Errorf(EINVALID, "article URL required")
	}
	return nil
}

// Suitable reports whether the extracted headings meet the configured
// minimum count.
func Suitable(headings []Heading, minHeadings int) bool {
	return len(headings) >= minHeadings
}
