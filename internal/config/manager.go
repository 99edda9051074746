package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Manager provides centralized configuration management with validation and watching
type Manager struct {
	mu            sync.RWMutex
	config        *Config
	watchers      []func(*Config)
	errorWatchers []func(path string, err error)

	// File watching
	configPath    string
	lastModTime   time.Time
	failedModTime time.Time // mod time of the last file that failed to load
	watchCancel   context.CancelFunc
	watchRunning  bool
	watchDone     chan struct{}
	watchInterval time.Duration
}

// NewManager creates a new configuration manager
func NewManager() *Manager {
	return &Manager{
		config:        DefaultConfig(),
		watchers:      make([]func(*Config), 0),
		watchInterval: 1 * time.Second,
	}
}

// LoadFromFile loads configuration from a file with validation
func (m *Manager) LoadFromFile(configPath string) error {
	configPath = ExpandHome(configPath)

	cfg, err := LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	m.applyDefaults(cfg)

	if err := m.validateConfig(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	m.mu.Lock()
	m.config = cfg
	m.configPath = configPath

	// Update last modified time for file watching
	if stat, err := os.Stat(configPath); err == nil {
		m.lastModTime = stat.ModTime()
	}
	watchers := m.watchers
	m.mu.Unlock()

	notifyWatchers(watchers, cfg)

	return nil
}

// LoadFromDefaults loads default configuration
func (m *Manager) LoadFromDefaults() {
	cfg := DefaultConfig()
	m.applyDefaults(cfg)

	m.mu.Lock()
	m.config = cfg
	m.configPath = ""
	m.lastModTime = time.Time{}
	watchers := m.watchers
	m.mu.Unlock()

	notifyWatchers(watchers, cfg)
}

// GetConfig returns a copy of the current configuration
func (m *Manager) GetConfig() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return copyConfig(m.config)
}

// ConfigPath returns the path the configuration was loaded from
func (m *Manager) ConfigPath() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.configPath
}

// UpdateConfig updates the configuration with validation
func (m *Manager) UpdateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config cannot be nil")
	}

	cfg = copyConfig(cfg)
	m.applyDefaults(cfg)

	if err := m.validateConfig(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	m.mu.Lock()
	m.config = cfg
	watchers := m.watchers
	m.mu.Unlock()

	notifyWatchers(watchers, cfg)

	return nil
}

// SaveToFile saves the current configuration to a file
func (m *Manager) SaveToFile(filePath string) error {
	m.mu.RLock()
	cfg := copyConfig(m.config)
	m.mu.RUnlock()

	if err := cfg.SaveConfig(ExpandHome(filePath)); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	return nil
}

// Watch starts watching the configuration file for changes
func (m *Manager) Watch(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.configPath == "" {
		return fmt.Errorf("no config file path set")
	}

	if m.watchRunning {
		return fmt.Errorf("already watching configuration file")
	}

	watchCtx, cancel := context.WithCancel(ctx)
	m.watchCancel = cancel
	m.watchRunning = true
	m.watchDone = make(chan struct{})

	go m.watchConfigFile(watchCtx, m.watchInterval, m.watchDone)

	return nil
}

// StopWatching stops watching the configuration file and waits for the
// watcher goroutine to exit
func (m *Manager) StopWatching() {
	m.mu.Lock()
	cancel := m.watchCancel
	done := m.watchDone
	m.watchCancel = nil
	m.watchDone = nil
	m.watchRunning = false
	m.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}
}

// AddWatcher adds a configuration change watcher
func (m *Manager) AddWatcher(watcher func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.watchers = append(m.watchers, watcher)
}

// Reload re-reads the configuration file. A failure is reported to the error
// watchers and remembered, so polling does not report the same file again.
func (m *Manager) Reload() error {
	configPath := m.ConfigPath()
	if configPath == "" {
		return fmt.Errorf("no config file path set")
	}

	var modTime time.Time
	if stat, err := os.Stat(configPath); err == nil {
		modTime = stat.ModTime()
	}

	err := m.LoadFromFile(configPath)
	if err == nil {
		return nil
	}

	m.mu.Lock()
	m.failedModTime = modTime
	watchers := m.errorWatchers
	m.mu.Unlock()

	for _, watcher := range watchers {
		watcher(configPath, err)
	}
	return err
}

// AddErrorWatcher adds a watcher called when a changed file fails to reload.
// It is called once per failing version of the file.
func (m *Manager) AddErrorWatcher(watcher func(path string, err error)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.errorWatchers = append(m.errorWatchers, watcher)
}

// validateConfig validates the configuration
func (m *Manager) validateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config cannot be nil")
	}

	seen := make(map[string]bool, len(cfg.Resources))
	for i, r := range cfg.Resources {
		if strings.TrimSpace(r.ID) == "" {
			return fmt.Errorf("resource %d has no id", i)
		}
		if seen[r.ID] {
			return fmt.Errorf("duplicate resource id %q", r.ID)
		}
		seen[r.ID] = true

		switch r.LinkStatus {
		case "", "connected", "disconnected", "unknown":
		default:
			return fmt.Errorf("resource %q has invalid link status %q", r.ID, r.LinkStatus)
		}
	}

	if cfg.Modal.Width <= 0 || cfg.Modal.Height <= 0 {
		return fmt.Errorf("invalid modal dimensions")
	}

	return nil
}

// applyDefaults applies default values for missing configuration
func (m *Manager) applyDefaults(cfg *Config) {
	defaults := DefaultKeyBindings()
	if cfg.Keys.OpenLink == "" {
		cfg.Keys.OpenLink = defaults.OpenLink
	}
	if cfg.Keys.CloseLink == "" {
		cfg.Keys.CloseLink = defaults.CloseLink
	}
	if cfg.Keys.ClearResource == "" {
		cfg.Keys.ClearResource = defaults.ClearResource
	}
	if cfg.Keys.Refresh == "" {
		cfg.Keys.Refresh = defaults.Refresh
	}
	if cfg.Keys.Help == "" {
		cfg.Keys.Help = defaults.Help
	}
	if cfg.Keys.Quit == "" {
		cfg.Keys.Quit = defaults.Quit
	}

	if cfg.Layout.CurrentTheme == "" {
		cfg.Layout.CurrentTheme = DefaultLayoutConfig().CurrentTheme
	}

	if cfg.Modal.Title == "" {
		cfg.Modal.Title = DefaultModalConfig().Title
	}

	if cfg.Resources == nil {
		cfg.Resources = []ResourceConfig{}
	}
}

// copyConfig creates a deep copy of the configuration
func copyConfig(cfg *Config) *Config {
	if cfg == nil {
		return nil
	}

	out := *cfg
	out.Resources = make([]ResourceConfig, len(cfg.Resources))
	copy(out.Resources, cfg.Resources)
	return &out
}

// ExpandHome expands a leading "~" or "~/" to the user's home directory.
// Other paths, including "~user/...", are returned unchanged.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	if path == "~" {
		return home
	}

	return filepath.Join(home, path[2:])
}

// notifyWatchers hands each watcher its own copy of cfg
func notifyWatchers(watchers []func(*Config), cfg *Config) {
	for _, watcher := range watchers {
		watcher(copyConfig(cfg))
	}
}

// watchConfigFile polls the configuration file for changes
func (m *Manager) watchConfigFile(ctx context.Context, interval time.Duration, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.checkConfigFileChanges()
		}
	}
}

// checkConfigFileChanges checks if the configuration file has changed
func (m *Manager) checkConfigFileChanges() {
	m.mu.RLock()
	configPath := m.configPath
	lastModTime := m.lastModTime
	failedModTime := m.failedModTime
	m.mu.RUnlock()

	if configPath == "" {
		return
	}

	stat, err := os.Stat(configPath)
	if err != nil {
		return
	}

	modTime := stat.ModTime()
	if !modTime.After(lastModTime) || modTime.Equal(failedModTime) {
		return
	}

	// Failures are reported to the error watchers
	_ = m.Reload()
}
