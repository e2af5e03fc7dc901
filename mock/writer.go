package mock

import (
	"context"

	"github.com/jturek/wikinote"
)

var _ wikinote.NoteWriter = (*NoteWriter)(nil)

// NoteWriter is a mock implementation of wikinote.NoteWriter.
type NoteWriter struct {
	WriteNoteFn func(ctx context.Context, article *wikinote.Article, body string) (string, error)
}

func (w *NoteWriter) WriteNote(ctx context.Context, article *wikinote.Article, body string) (string, error) {
	return w.WriteNoteFn(ctx, article, body)
}
