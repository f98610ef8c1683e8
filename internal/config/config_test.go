package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, "format: json\ncopy: true\naccent: \"#ff00aa\"\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Format)
	assert.True(t, cfg.Copy)
	assert.Equal(t, "#ff00aa", cfg.Accent)
}

func TestLoad_PartialConfigKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "copy: true\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Format)
	assert.True(t, cfg.Copy)
	assert.Equal(t, Default().Accent, cfg.Accent)
}

func TestLoad_RejectsUnknownField(t *testing.T) {
	path := writeConfig(t, "formatt: json\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "formatt")
}

func TestLoad_RejectsBadFormatValue(t *testing.T) {
	path := writeConfig(t, "format: yaml\n")

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_RejectsBadAccentValue(t *testing.T) {
	path := writeConfig(t, "accent: \"purple\"\n")

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_RejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "format: [unterminated\n")

	_, err := Load(path)
	require.Error(t, err)
}

func TestDefaultPath_UnderUserConfigDir(t *testing.T) {
	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("sixshift", "config.yaml"), filepath.Join(filepath.Base(filepath.Dir(path)), filepath.Base(path)))
}
