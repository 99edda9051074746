package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultThemeName is the theme used when none is configured
const DefaultThemeName = "hcp-dark"

type themeFile struct {
	HCPLink *ColorsConfig `yaml:"hcplink"`
}

// ThemeLoader handles loading and saving themes
type ThemeLoader struct {
	themesDir string
}

// NewThemeLoader creates a new theme loader
func NewThemeLoader(themesDir string) *ThemeLoader {
	return &ThemeLoader{
		themesDir: themesDir,
	}
}

// LoadTheme loads a theme by name (with or without the .yaml suffix). The
// built-in default theme is returned when no file exists for DefaultThemeName.
func (tl *ThemeLoader) LoadTheme(name string) (*ColorsConfig, error) {
	if name == "" {
		name = DefaultThemeName
	}
	filename := name
	if filepath.Ext(filename) != ".yaml" {
		filename += ".yaml"
	}

	theme, err := tl.LoadThemeFromFile(filename)
	if err != nil && strings.TrimSuffix(filename, ".yaml") == DefaultThemeName {
		return DefaultColors(), nil
	}
	return theme, err
}

// LoadThemeFromFile loads a theme from a YAML file
func (tl *ThemeLoader) LoadThemeFromFile(filename string) (*ColorsConfig, error) {
	// Try to load from themes directory first
	path := filepath.Join(tl.themesDir, filename)
	if !fileExists(path) {
		// Try absolute path
		path = filename
		if !fileExists(path) {
			return nil, fmt.Errorf("theme file not found: %s", filename)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	var theme themeFile
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return nil, fmt.Errorf("failed to parse theme file: %w", err)
	}

	if theme.HCPLink == nil {
		return nil, fmt.Errorf("invalid theme file: missing hcplink section")
	}

	// Fill colors the file left out
	mergeColors(theme.HCPLink, DefaultColors())

	if err := tl.ValidateTheme(theme.HCPLink); err != nil {
		return nil, err
	}

	return theme.HCPLink, nil
}

// ListAvailableThemes returns the theme names found in the themes directory
func (tl *ThemeLoader) ListAvailableThemes() ([]string, error) {
	var themes []string

	entries, err := os.ReadDir(tl.themesDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read themes directory: %w", err)
	}

	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".yaml" {
			themes = append(themes, strings.TrimSuffix(entry.Name(), ".yaml"))
		}
	}

	sort.Strings(themes)
	return themes, nil
}

// SaveThemeToFile saves a theme configuration to a YAML file
func (tl *ThemeLoader) SaveThemeToFile(theme *ColorsConfig, filename string) error {
	if err := os.MkdirAll(tl.themesDir, 0755); err != nil {
		return fmt.Errorf("failed to create themes directory: %w", err)
	}

	data, err := yaml.Marshal(themeFile{HCPLink: theme})
	if err != nil {
		return fmt.Errorf("failed to marshal theme: %w", err)
	}

	if err := os.WriteFile(filepath.Join(tl.themesDir, filename), data, 0644); err != nil {
		return fmt.Errorf("failed to write theme file: %w", err)
	}

	return nil
}

// ValidateTheme validates a theme configuration
func (tl *ThemeLoader) ValidateTheme(theme *ColorsConfig) error {
	if theme == nil {
		return fmt.Errorf("theme is nil")
	}

	requiredColors := []struct {
		name  string
		color Color
	}{
		{"Body.FgColor", theme.Body.FgColor},
		{"Body.BgColor", theme.Body.BgColor},
		{"Link.ConnectedColor", theme.Link.ConnectedColor},
		{"Link.DisconnectedColor", theme.Link.DisconnectedColor},
	}

	for _, req := range requiredColors {
		if req.color == "" {
			return fmt.Errorf("missing required color: %s", req.name)
		}
	}

	return nil
}

// CreateDefaultTheme writes the default theme if none exists
func (tl *ThemeLoader) CreateDefaultTheme() error {
	filename := DefaultThemeName + ".yaml"
	if fileExists(filepath.Join(tl.themesDir, filename)) {
		return nil
	}

	return tl.SaveThemeToFile(DefaultColors(), filename)
}

func mergeColors(dst, def *ColorsConfig) {
	fill := func(c *Color, d Color) {
		if *c == "" {
			*c = d
		}
	}
	fill(&dst.Frame.BorderColor, def.Frame.BorderColor)
	fill(&dst.Frame.FocusColor, def.Frame.FocusColor)
	fill(&dst.Frame.TitleColor, def.Frame.TitleColor)
	fill(&dst.Table.HeaderFgColor, def.Table.HeaderFgColor)
	fill(&dst.Table.SelectedBg, def.Table.SelectedBg)
	fill(&dst.Table.SelectedFg, def.Table.SelectedFg)
	fill(&dst.Link.UnknownColor, def.Link.UnknownColor)
	fill(&dst.Status.InfoColor, def.Status.InfoColor)
	fill(&dst.Status.WarningColor, def.Status.WarningColor)
	fill(&dst.Status.ErrorColor, def.Status.ErrorColor)
	fill(&dst.Status.SuccessColor, def.Status.SuccessColor)
}

// Helper function to check if file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
