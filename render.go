package wikinote

import (
	"strings"
	"time"
)

// NoteTag is the constant tag marker placed in the note front-matter and
// appended to the title heading.
const NoteTag = "#wikipedia"

// NoSectionsPlaceholder is emitted in place of the heading list when an
// article has no kept headings.
const NoSectionsPlaceholder = "No sections found."

const (
	dateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02 15:04:05"
)

// fileNameReplacer strips path separators from titles before they become
// file names.
var fileNameReplacer = strings.NewReplacer("/", "-", "\\", "-", ":", "-")

// RenderNote renders the note body for an accepted article. The output is
// deterministic given the article, the timestamp, and the optional summary
// markdown: a front-matter tag line, a timestamp line, a link line, a
// title heading, then one heading line per record, each followed by a
// blank line. All strings are emitted verbatim.
func RenderNote(a *Article, now time.Time, summary string) string {
	var b strings.Builder

	b.WriteString(NoteTag)
	b.WriteString("\n\n")
	b.WriteString("Created: ")
	b.WriteString(now.Format(timestampLayout))
	b.WriteString("\nLink: ")
	b.WriteString(a.URL)
	b.WriteString("\n\n# ")
	b.WriteString(a.Title)
	b.WriteString(" ")
	b.WriteString(NoteTag)
	b.WriteString("\n\n")

	if len(a.Headings) == 0 {
		b.WriteString(NoSectionsPlaceholder)
		b.WriteString("\n")
	} else {
		for _, h := range a.Headings {
			b.WriteString(strings.Repeat("#", h.Level))
			b.WriteString(" ")
			b.WriteString(h.Text)
			b.WriteString("\n\n")
		}
	}

	if summary != "" {
		b.WriteString("---\n\n")
		b.WriteString(summary)
		if !strings.HasSuffix(summary, "\n") {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// NoteFileName derives the suggested file name for an article's note.
// Example: "2024-01-01 Wikipedia Note - Foo.md". Path separators in the
// title are replaced so the name stays a single path element.
func NoteFileName(a *Article) string {
	title := fileNameReplacer.Replace(a.Title)
	return a.FetchedAt.Format(dateLayout) + " Wikipedia Note - " + title + ".md"
}
