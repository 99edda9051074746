package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ajramos/hcplink/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfigPath_Priority(t *testing.T) {
	t.Setenv(configEnv, "/env/config.json")

	// CLI flag takes precedence
	assert.Equal(t, "/custom/config.json", getConfigPath("/custom/config.json"))

	// Environment variable when no flag
	assert.Equal(t, "/env/config.json", getConfigPath(""))

	// Default when neither flag nor env
	t.Setenv(configEnv, "")
	assert.Contains(t, getConfigPath(""), "config.json")
}

func TestGetConfigPath_ExpandsHomeFromEnv(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Setenv(configEnv, "~/hcplink/config.json")
	assert.Equal(t, filepath.Join(home, "hcplink/config.json"), getConfigPath(""))

	// Only the current user's home is expanded
	t.Setenv(configEnv, "~foo/config.json")
	assert.Equal(t, "~foo/config.json", getConfigPath(""))

	t.Setenv(configEnv, "~")
	assert.Equal(t, home, getConfigPath(""))
}

func TestRunSetup_CreatesFiles(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.json")
	themesDir := filepath.Join(dir, "themes")

	require.NoError(t, runSetup(configPath, themesDir))

	cfg, err := config.LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultKeyBindings(), cfg.Keys)
	require.Len(t, cfg.Resources, 1)
	assert.Equal(t, "example", cfg.Resources[0].ID)
	assert.Equal(t, "unknown", cfg.Resources[0].LinkStatus)

	theme, err := config.NewThemeLoader(themesDir).LoadTheme(config.DefaultThemeName)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultColors(), theme)
}

func TestRunSetup_KeepsExistingConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(configPath, []byte(`{"log_file":"custom.log"}`), 0o644))

	require.NoError(t, runSetup(configPath, filepath.Join(dir, "themes")))

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, `{"log_file":"custom.log"}`, string(data))
}
