package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jturek/wikinote"
	"github.com/jturek/wikinote/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testArticle() *wikinote.Article {
	return &wikinote.Article{
		ID:        "id",
		Title:     "Foo",
		URL:       "https://en.wikipedia.org/wiki/Foo",
		FetchedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestWriter_WriteNote(t *testing.T) {
	t.Parallel()

	t.Run("writes note under the derived file name", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)

		path, err := w.WriteNote(context.Background(), testArticle(), "body\n")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "2024-01-01 Wikipedia Note - Foo.md"), path)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "body\n", string(data))
	})

	t.Run("creates the base directory when missing", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "Wikipedia Notes")
		w := fs.NewWriter(dir)

		path, err := w.WriteNote(context.Background(), testArticle(), "body")
		require.NoError(t, err)
		assert.FileExists(t, path)
	})

	t.Run("suffixes the name instead of overwriting", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)

		first, err := w.WriteNote(context.Background(), testArticle(), "first")
		require.NoError(t, err)

		second, err := w.WriteNote(context.Background(), testArticle(), "second")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "2024-01-01 Wikipedia Note - Foo (2).md"), second)

		data, err := os.ReadFile(first)
		require.NoError(t, err)
		assert.Equal(t, "first", string(data))
	})

	t.Run("rejects an invalid article", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir())

		_, err := w.WriteNote(context.Background(), &wikinote.Article{}, "body")
		require.Error(t, err)
		assert.Equal(t, wikinote.EINVALID, wikinote.ErrorCode(err))
	})
}
