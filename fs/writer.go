// Package fs persists rendered notes as markdown files.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jturek/wikinote"
)

// Ensure Writer implements wikinote.NoteWriter at compile time.
var _ wikinote.NoteWriter = (*Writer)(nil)

// Writer writes notes into a base directory, creating it when missing.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteNote writes the rendered body to a file named after the article.
// An existing note is never overwritten; the name gets a numeric suffix
// instead. Returns the path of the written file.
func (w *Writer) WriteNote(ctx context.Context, article *wikinote.Article, body string) (string, error) {
	if err := article.Validate(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return "", err
	}

	name := wikinote.NoteFileName(article)
	base := strings.TrimSuffix(name, ".md")

	path := filepath.Join(w.baseDir, name)
	for n := 2; ; n++ {
		_, err := os.Stat(path)
		if os.IsNotExist(err) {
			break
		}
		if err != nil {
			return "", err
		}
		path = filepath.Join(w.baseDir, fmt.Sprintf("%s (%d).md", base, n))
	}

	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		return "", err
	}
	return path, nil
}
