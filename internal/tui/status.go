package tui

import (
	"fmt"

	"github.com/derailed/tcell/v2"
)

// statusBaseline returns the status bar text shown when no message is active
func (a *App) statusBaseline() string {
	state := a.modalService.State()

	link := "modal hidden"
	if state.Visible {
		link = "modal open"
	}

	resource := "no resource"
	if state.HasResourceID() {
		if res := a.lookupResource(state); res != nil {
			resource = resourceSummary(*res)
		} else {
			resource = fmt.Sprintf("%q (unknown)", state.ResourceIDValue())
		}
	}

	a.mu.RLock()
	count := len(a.resources)
	a.mu.RUnlock()

	return fmt.Sprintf("HCP Link | %d resources | %s | %s | Press %s for help", count, resource, link, a.Keys.Help)
}

// getStatusColor returns the theme color for a status level
func (a *App) getStatusColor(level string) tcell.Color {
	if a.currentTheme == nil {
		return tcell.ColorDefault
	}
	return a.currentTheme.StatusColor(level).Color()
}
