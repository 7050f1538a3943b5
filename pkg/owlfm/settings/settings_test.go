package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "owlfm.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("explicit_file", func(t *testing.T) {
		path := writeConfig(t, "show_hidden: false\neditor_style: monokai\nlog_file: /tmp/owlfm.log\n")
		s, err := Load(path)
		require.NoError(t, err)
		assert.False(t, s.ShowHidden)
		assert.Equal(t, "monokai", s.EditorStyle)
		assert.Equal(t, "/tmp/owlfm.log", s.LogFile)
	})

	t.Run("partial_file_keeps_defaults", func(t *testing.T) {
		path := writeConfig(t, "editor_style: github\n")
		s, err := Load(path)
		require.NoError(t, err)
		assert.True(t, s.ShowHidden)
		assert.Equal(t, "github", s.EditorStyle)
		assert.Equal(t, "", s.LogFile)
	})

	t.Run("malformed_file", func(t *testing.T) {
		path := writeConfig(t, ":::not yaml:::")
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("missing_explicit_file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
		assert.Error(t, err)
	})
}
