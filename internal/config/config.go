package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config holds all configuration for the HCP link TUI application
type Config struct {
	// Resources listed in the main table
	Resources []ResourceConfig `json:"resources"`

	// Layout configuration
	Layout LayoutConfig `json:"layout"`

	// HCP link modal appearance
	Modal ModalConfig `json:"modal"`

	// Keyboard shortcuts
	Keys KeyBindings `json:"keys"`

	// Logging
	LogFile string `json:"log_file"`
}

// ResourceConfig describes one resource that can be linked to HCP
type ResourceConfig struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Type         string `json:"type"`        // cluster, namespace, ...
	LinkStatus   string `json:"link_status"` // connected, disconnected, unknown
	HCPOrgID     string `json:"hcp_org_id,omitempty"`
	HCPProjectID string `json:"hcp_project_id,omitempty"`
	Description  string `json:"description,omitempty"`
}

// LayoutConfig defines layout-specific configuration
type LayoutConfig struct {
	ShowBorders    bool   `json:"show_borders"`
	ShowTitles     bool   `json:"show_titles"`
	CurrentTheme   string `json:"current_theme"`    // Active theme name (e.g., "hcp-dark")
	CustomThemeDir string `json:"custom_theme_dir"` // Custom themes directory (empty = default)
}

// ModalConfig controls how the HCP link modal is drawn
type ModalConfig struct {
	Title  string `json:"title"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// KeyBindings defines keyboard shortcuts for the TUI
type KeyBindings struct {
	OpenLink      string `json:"open_link"`      // Show the HCP link modal for the selected resource
	CloseLink     string `json:"close_link"`     // Hide the modal
	ClearResource string `json:"clear_resource"` // Forget the stored resource id
	Refresh       string `json:"refresh"`        // Reload resources from config
	Help          string `json:"help"`
	Quit          string `json:"quit"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Resources: []ResourceConfig{},
		Layout:    DefaultLayoutConfig(),
		Modal:     DefaultModalConfig(),
		Keys:      DefaultKeyBindings(),
		LogFile:   "",
	}
}

// DefaultLayoutConfig returns default layout configuration
func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		ShowBorders:    true,
		ShowTitles:     true,
		CurrentTheme:   "hcp-dark",
		CustomThemeDir: "",
	}
}

// DefaultModalConfig returns default modal configuration
func DefaultModalConfig() ModalConfig {
	return ModalConfig{
		Title:  "HCP Link",
		Width:  64,
		Height: 14,
	}
}

// DefaultKeyBindings returns default keyboard shortcuts
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		OpenLink:      "l",
		CloseLink:     "h",
		ClearResource: "x",
		Refresh:       "R",
		Help:          "?",
		Quit:          "q",
	}
}

// LoadConfig loads configuration from file. A missing file yields defaults.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			if err := json.Unmarshal(data, cfg); err != nil {
				return nil, err
			}
		}
	}

	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "hcplink")
}

// DefaultConfigPath returns the default configuration file path
func DefaultConfigPath() string {
	dir := DefaultConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.json")
}

// DefaultLogDir returns the default log directory path
func DefaultLogDir() string {
	return DefaultConfigDir()
}

// DefaultThemesDir returns the directory user themes are read from
func DefaultThemesDir() string {
	dir := DefaultConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "themes")
}

// SaveConfig saves the configuration to a file
func (c *Config) SaveConfig(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
