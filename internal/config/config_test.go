package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cs := NewConfigServiceAt(filepath.Join(t.TempDir(), "config.toml"))

	cfg, err := cs.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)
	cs := NewConfigServiceAt(path)

	cfg := DefaultConfig()
	cfg.Link.BaseURL = "https://example.test/p/"
	cfg.UISettings.CopyLinkOnChange = true
	require.NoError(t, cs.Save(cfg))

	loaded, err := cs.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadFromPath_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	content := "[link]\nparameter = \"sel\"\nseparator = \"\"\n\n[ui]\nsyntax_highlight = false\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := NewConfigService().LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "sel", cfg.Link.Parameter)
	assert.Equal(t, "_", cfg.Link.Separator, "empty separator falls back")
	assert.Equal(t, "pastePassword", cfg.Link.PasswordParameter)
	assert.False(t, cfg.UISettings.SyntaxHighlight)
	assert.Equal(t, "monokai", cfg.UISettings.Style)
}

func TestLoadFromPath_Errors(t *testing.T) {
	cs := NewConfigService()

	_, err := cs.LoadFromPath(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[link\nparameter = "), 0644))
	_, err = cs.LoadFromPath(path)
	assert.ErrorContains(t, err, "failed to parse config")
}
