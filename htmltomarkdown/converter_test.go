package htmltomarkdown_test

import (
	"testing"

	"github.com/jturek/wikinote"
	"github.com/jturek/wikinote/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements wikinote.Converter at compile time.
var _ wikinote.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts a lead paragraph", func(t *testing.T) {
		t.Parallel()

		html := `<p><b>Foo</b> is a metasyntactic variable.</p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "**Foo**")
		assert.Contains(t, md, "is a metasyntactic variable.")
	})

	t.Run("converts links", func(t *testing.T) {
		t.Parallel()

		html := `<p>See <a href="https://example.com">the docs</a>.</p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "[the docs](https://example.com)")
	})

	t.Run("empty input converts to empty output", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()

		md, err := conv.Convert("   ")
		require.NoError(t, err)
		assert.Empty(t, md)
	})
}
