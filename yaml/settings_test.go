package yaml_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jturek/wikinote"
	"github.com/jturek/wikinote/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings(t *testing.T) {
	t.Parallel()

	t.Run("missing file yields defaults", func(t *testing.T) {
		t.Parallel()

		s, err := yaml.LoadSettings(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, yaml.DefaultSettings(), s)
	})

	t.Run("partial file keeps defaults for absent fields", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "settings.yaml")
		require.NoError(t, os.WriteFile(path, []byte("minHeadings: 5\n"), 0644))

		s, err := yaml.LoadSettings(path)
		require.NoError(t, err)
		assert.Equal(t, 5, s.MinHeadings)
		assert.Equal(t, yaml.DefaultSettings().MaxRetries, s.MaxRetries)
		assert.Equal(t, yaml.DefaultSettings().Dir, s.Dir)
	})

	t.Run("invalid YAML is an invalid-settings error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "settings.yaml")
		require.NoError(t, os.WriteFile(path, []byte("minHeadings: [unclosed"), 0644))

		_, err := yaml.LoadSettings(path)
		require.Error(t, err)
		assert.Equal(t, wikinote.EINVALID, wikinote.ErrorCode(err))
	})
}

func TestSaveSettings_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")
	want := yaml.Settings{
		MinHeadings: 2,
		MaxRetries:  7,
		Exclusions:  "references, notes",
		Dir:         "Notes",
		Language:    "de",
		Summary:     true,
	}

	require.NoError(t, yaml.SaveSettings(path, want))

	got, err := yaml.LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSettings_Config(t *testing.T) {
	t.Parallel()

	t.Run("converts the record", func(t *testing.T) {
		t.Parallel()

		s := yaml.Settings{MinHeadings: 2, MaxRetries: 4, Exclusions: "References, Notes"}

		cfg, err := s.Config()
		require.NoError(t, err)
		assert.Equal(t, 2, cfg.MinHeadings)
		assert.Equal(t, 4, cfg.MaxRetries)
		assert.True(t, cfg.Exclusions.Contains("references"))
		assert.True(t, cfg.Exclusions.Contains("NOTES"))
	})

	t.Run("rejects negative values", func(t *testing.T) {
		t.Parallel()

		s := yaml.Settings{MinHeadings: -1}

		_, err := s.Config()
		require.Error(t, err)
		assert.Equal(t, wikinote.EINVALID, wikinote.ErrorCode(err))
	})
}
