package mock

import "github.com/jturek/wikinote"

var _ wikinote.HeadingExtractor = (*HeadingExtractor)(nil)

// HeadingExtractor is a mock implementation of wikinote.HeadingExtractor.
type HeadingExtractor struct {
	ExtractFn func(html string, exclusions wikinote.ExclusionSet) []wikinote.Heading
}

func (e *HeadingExtractor) Extract(html string, exclusions wikinote.ExclusionSet) []wikinote.Heading {
	return e.ExtractFn(html, exclusions)
}
