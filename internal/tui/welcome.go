package tui

import (
	"fmt"
	"strings"

	"github.com/ajramos/hcplink/internal/config"
	"github.com/derailed/tview"
)

// getWelcomeShortcuts returns the quick action chips for the configured keys,
// falling back to the defaults for unset bindings
func (a *App) getWelcomeShortcuts() string {
	defaults := config.DefaultKeyBindings()
	key := func(configured, fallback string) string {
		if configured != "" {
			return configured
		}
		return fallback
	}

	return fmt.Sprintf("[%s Help]  [%s Reload]  [%s Quit]",
		key(a.Keys.Help, defaults.Help),
		key(a.Keys.Refresh, defaults.Refresh),
		key(a.Keys.Quit, defaults.Quit),
	)
}

// buildWelcomeText is shown in place of the table while the catalog is empty
func (a *App) buildWelcomeText() string {
	var b strings.Builder

	b.WriteString("[::b]HCP Link[::-]\n\n")
	b.WriteString("Browse your resources and check how they are linked to HCP.\n\n")
	b.WriteString("[::b]Quick actions:[::-]  ")
	b.WriteString(tview.Escape(a.getWelcomeShortcuts()))
	b.WriteString("\n\n")

	path := config.DefaultConfigPath()
	if a.configManager != nil && a.configManager.ConfigPath() != "" {
		path = a.configManager.ConfigPath()
	}

	b.WriteString("No resources are configured yet.\n\n")
	b.WriteString("Setup steps:\n")
	b.WriteString("  1. Run with --setup to create a default configuration.\n")
	b.WriteString(fmt.Sprintf("  2. Add entries to the \"resources\" list in `%s`.\n", tview.Escape(path)))
	b.WriteString("  3. Save the file; it is reloaded automatically.\n")
	return b.String()
}

// welcomeVisible reports whether the catalog is empty
func (a *App) welcomeVisible() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.resources) == 0
}

// bodyView names the view the body area shows: help, welcome or the table
func (a *App) bodyView() string {
	switch {
	case a.showHelp:
		return "help"
	case a.welcomeVisible():
		return "welcome"
	default:
		return "resources"
	}
}

// layoutBody mounts the current body view
func (a *App) layoutBody() {
	body, ok := a.views["body"].(*tview.Flex)
	if !ok {
		return
	}

	name := a.bodyView()
	if name == "welcome" {
		if welcome, ok := a.views["welcome"].(*tview.TextView); ok {
			welcome.SetText(a.buildWelcomeText())
			welcome.ScrollToBeginning()
		}
	}

	body.Clear()
	body.AddItem(a.views[name], 0, 1, true)

	// The modal keeps focus while it is open
	if !a.IsModalPageVisible() {
		a.focusBody()
	}
}
