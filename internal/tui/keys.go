package tui

import (
	"fmt"
	"strings"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
)

// bindKeys installs the global key handler
func (a *App) bindKeys() {
	a.SetInputCapture(a.handleKey)
}

// handleKey routes a key press to the matching action. Keys that are not
// bound are passed on to the focused view so table navigation keeps working.
func (a *App) handleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEscape:
		if a.modalService.IsModalVisible() {
			a.modalService.Hide()
			return nil
		}
		if a.showHelp {
			a.toggleHelp()
			return nil
		}
		return event
	case tcell.KeyEnter:
		// Enter on the table is handled by its selected func
		return event
	case tcell.KeyRune:
	default:
		return event
	}

	key := string(event.Rune())
	if a.logger != nil {
		a.logger.Printf("handleKey: '%s' modal=%t", key, a.modalService.IsModalVisible())
	}

	switch key {
	case a.Keys.OpenLink:
		res, ok := a.selectedResource()
		if !ok {
			a.errorHandler.ShowWarning(a.ctx, "No resource selected")
			return nil
		}
		a.openLink(res)
		return nil
	case a.Keys.CloseLink:
		a.modalService.Hide()
		return nil
	case a.Keys.ClearResource:
		a.modalService.SetResourceID(nil)
		a.errorHandler.ShowInfo(a.ctx, "Resource cleared")
		return nil
	case a.Keys.Refresh:
		a.refresh()
		return nil
	case a.Keys.Help:
		a.toggleHelp()
		return nil
	case a.Keys.Quit:
		a.Stop()
		return nil
	}

	return event
}

// refresh reloads the configuration file when there is one, otherwise it
// redraws from the current catalog
func (a *App) refresh() {
	if a.configManager != nil && a.configManager.ConfigPath() != "" {
		// onConfigChanged or onConfigError update the view
		_ = a.configManager.Reload()
		return
	}

	a.reloadResources()
	a.syncModal(a.modalService.State())
	a.errorHandler.ShowSuccess(a.ctx, "Resources refreshed")
}

// toggleHelp swaps the body content for the help text and back
func (a *App) toggleHelp() {
	a.showHelp = !a.showHelp
	if a.showHelp {
		if help, ok := a.views["help"].(*tview.TextView); ok {
			help.SetText(a.generateHelpText())
			help.ScrollToBeginning()
		}
	}
	a.layoutBody()
}

// generateHelpText lists the active key bindings
func (a *App) generateHelpText() string {
	var sb strings.Builder
	sb.WriteString("[::b]HCP Link[::-]\n\n")

	bindings := []struct {
		key  string
		desc string
	}{
		{a.Keys.OpenLink + ", Enter", "Open the HCP link modal for the selected resource"},
		{a.Keys.CloseLink + ", Esc", "Close the modal"},
		{a.Keys.ClearResource, "Forget the stored resource"},
		{a.Keys.Refresh, "Reload resources"},
		{a.Keys.Help, "Toggle this help"},
		{a.Keys.Quit, "Quit"},
	}
	for _, b := range bindings {
		sb.WriteString(fmt.Sprintf("  %-12s %s\n", tview.Escape(b.key), b.desc))
	}

	if themes, err := a.themeLoader.ListAvailableThemes(); err == nil && len(themes) > 0 {
		sb.WriteString(fmt.Sprintf("\nThemes: %s\n", strings.Join(themes, ", ")))
	}

	return sb.String()
}
