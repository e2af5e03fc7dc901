package wikinote_test

import (
	"testing"

	"github.com/jturek/wikinote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExclusionList(t *testing.T) {
	t.Parallel()

	t.Run("trims and lower-cases entries", func(t *testing.T) {
		t.Parallel()

		set := wikinote.ParseExclusionList(" References , External Links,See also")

		assert.Len(t, set, 3)
		assert.True(t, set.Contains("references"))
		assert.True(t, set.Contains("external links"))
		assert.True(t, set.Contains("see also"))
	})

	t.Run("drops empty entries", func(t *testing.T) {
		t.Parallel()

		set := wikinote.ParseExclusionList("references,, , notes")

		assert.Len(t, set, 2)
	})

	t.Run("empty list yields empty set", func(t *testing.T) {
		t.Parallel()

		set := wikinote.ParseExclusionList("")

		assert.Empty(t, set)
	})
}

func TestExclusionSet_Contains(t *testing.T) {
	t.Parallel()

	set := wikinote.ParseExclusionList("references")

	assert.True(t, set.Contains("References"))
	assert.True(t, set.Contains("REFERENCES"))
	assert.False(t, set.Contains("history"))
	assert.False(t, set.Contains(""))
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts zero counts", func(t *testing.T) {
		t.Parallel()

		cfg := wikinote.Config{MinHeadings: 0, MaxRetries: 0}

		require.NoError(t, cfg.Validate())
	})

	t.Run("rejects negative minimum heading count", func(t *testing.T) {
		t.Parallel()

		cfg := wikinote.Config{MinHeadings: -1, MaxRetries: 5}

		err := cfg.Validate()
		require.Error(t, err)
		assert.Equal(t, wikinote.EINVALID, wikinote.ErrorCode(err))
	})

	t.Run("rejects negative retry limit", func(t *testing.T) {
		t.Parallel()

		cfg := wikinote.Config{MinHeadings: 3, MaxRetries: -1}

		err := cfg.Validate()
		require.Error(t, err)
		assert.Equal(t, wikinote.EINVALID, wikinote.ErrorCode(err))
	})
}

func TestSuitable(t *testing.T) {
	t.Parallel()

	headings := []wikinote.Heading{
		{Level: 2, Text: "History"},
		{Level: 3, Text: "Origins"},
	}

	assert.True(t, wikinote.Suitable(headings, 0))
	assert.True(t, wikinote.Suitable(headings, 2))
	assert.False(t, wikinote.Suitable(headings, 3))
	assert.True(t, wikinote.Suitable(nil, 0))
	assert.False(t, wikinote.Suitable(nil, 1))
}
