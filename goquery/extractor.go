// Package goquery provides a goquery-based implementation of
// wikinote.HeadingExtractor for rendered MediaWiki article HTML.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jturek/wikinote"
)

// contentSelector matches the primary content container in rendered
// MediaWiki HTML. Extraction falls back to the whole document when the
// container is absent.
const contentSelector = "div.mw-parser-output"

// editSectionSelector matches the "[ edit ]" affordance MediaWiki embeds
// inside each heading. It must be removed before text extraction so the
// edit-link text never leaks into the heading text.
const editSectionSelector = "span.mw-editsection"

// headingSelector matches the three section heading levels kept in notes.
// h1 is the page title and h5/h6 are below the granularity worth keeping.
const headingSelector = "h2, h3, h4"

// Ensure Extractor implements wikinote.HeadingExtractor at compile time.
var _ wikinote.HeadingExtractor = (*Extractor)(nil)

// Extractor extracts section headings from rendered article HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the article's section headings in document order.
// Headings whose text, case-insensitively, matches the exclusion set are
// dropped, as are exact (level, text) duplicates of an already-kept
// heading. Whitespace-only headings participate in both checks with the
// empty string as their text.
func (e *Extractor) Extract(html string, exclusions wikinote.ExclusionSet) []wikinote.Heading {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	root := doc.Selection
	if content := doc.Find(contentSelector); content.Length() > 0 {
		root = content.First()
	}

	seen := make(map[wikinote.Heading]struct{})
	var headings []wikinote.Heading

	root.Find(headingSelector).Each(func(_ int, sel *goquery.Selection) {
		level := headingLevel(goquery.NodeName(sel))
		if level == 0 {
			return
		}

		sel.Find(editSectionSelector).Remove()
		text := strings.TrimSpace(sel.Text())

		if exclusions.Contains(text) {
			return
		}

		h := wikinote.Heading{Level: level, Text: text}
		if _, ok := seen[h]; ok {
			return
		}
		seen[h] = struct{}{}
		headings = append(headings, h)
	})

	return headings
}

func headingLevel(name string) int {
	switch name {
	case "h2":
		return 2
	case "h3":
		return 3
	case "h4":
		return 4
	}
	return 0
}
