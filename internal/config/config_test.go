package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/airdate/internal/domain"
)

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "anime-release-store", cfg.Storage.Key)
	assert.Equal(t, "admin", cfg.Auth.Username)
	assert.Equal(t, "admin", cfg.Auth.Password)
	assert.False(t, cfg.Session.RememberAdmin)
	assert.Equal(t, domain.LanguageItalian, cfg.Language())
	assert.Equal(t, domain.ThemeDark, cfg.Theme())
	assert.Equal(t, "INFO", cfg.Logging.Level)
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
storage:
  path: /tmp/custom.db
session:
  remember_admin: true
ui:
  language: en
  theme: light
`), 0644))
	t.Setenv("AIRDATE_LOGGING_LEVEL", "DEBUG")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/custom.db", cfg.Storage.Path)
	assert.Equal(t, "anime-release-store", cfg.Storage.Key, "unset keys keep defaults")
	assert.True(t, cfg.Session.RememberAdmin)
	assert.Equal(t, domain.LanguageEnglish, cfg.Language())
	assert.Equal(t, domain.ThemeLight, cfg.Theme())
	assert.Equal(t, "DEBUG", cfg.Logging.Level)
}

func TestLoad_RejectsUnknownLanguage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui:\n  language: fr\n"), 0644))

	_, err := Load(path)
	assert.ErrorIs(t, err, domain.ErrInvalidLanguage)
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Storage.Path = ""
	cfg.Auth.PasswordHash = "$2a$10$abcdefghijklmnopqrstuv"
	cfg.UI.Language = "en"
	require.NoError(t, Save(cfg, path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "", got.Storage.Path)
	assert.Equal(t, cfg.Auth.PasswordHash, got.Auth.PasswordHash)
	assert.Equal(t, domain.LanguageEnglish, got.Language())
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, filepath.Join(home, "data", "x.db"), expandHome("~/data/x.db"))
	assert.Equal(t, "/abs/x.db", expandHome("/abs/x.db"))
}
