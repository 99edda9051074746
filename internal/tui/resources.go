package tui

import (
	"fmt"

	"github.com/ajramos/hcplink/internal/render"
	"github.com/ajramos/hcplink/internal/services"
	"github.com/derailed/tview"
)

// reloadResources copies the catalog into the view state and redraws the table
func (a *App) reloadResources() {
	resources, err := a.resourceService.ListResources(a.ctx)
	if err != nil {
		a.errorHandler.ShowResourceError(a.ctx, "listing", err)
		return
	}

	a.mu.Lock()
	a.resources = resources
	a.mu.Unlock()

	a.renderResourceTable()
	a.updateHeader()
	a.layoutBody()
}

// updateHeader shows the per status resource counts and the active theme
func (a *App) updateHeader() {
	header, ok := a.views["header"].(*tview.TextView)
	if !ok {
		return
	}

	counts := a.resourceService.CountByStatus()
	theme := a.currentTheme
	header.SetText(fmt.Sprintf("[%s::b]HCP Link[-::-]  [%s]%s %d[-]  [%s]%s %d[-]  [%s]%s %d[-]  theme: %s",
		theme.Frame.TitleColor.String(),
		theme.Link.ConnectedColor.String(), render.StatusIcon(services.LinkStatusConnected), counts[services.LinkStatusConnected],
		theme.Link.DisconnectedColor.String(), render.StatusIcon(services.LinkStatusDisconnected), counts[services.LinkStatusDisconnected],
		theme.Link.UnknownColor.String(), render.StatusIcon(services.LinkStatusUnknown), counts[services.LinkStatusUnknown],
		a.Config.Layout.CurrentTheme,
	))
}

// renderResourceTable draws the header row and one row per resource
func (a *App) renderResourceTable() {
	table, ok := a.views["resources"].(*tview.Table)
	if !ok {
		return
	}

	a.mu.RLock()
	resources := a.resources
	width := a.screenWidth
	a.mu.RUnlock()

	// leave room for the border
	if a.Config.Layout.ShowBorders {
		width -= 2
	}

	selected, _ := table.GetSelection()
	table.Clear()

	header := tview.NewTableCell(a.renderer.FormatHeader(width)).
		SetSelectable(false).
		SetExpansion(1).
		SetTextColor(a.currentTheme.Table.HeaderFgColor.Color())
	table.SetCell(0, 0, header)

	for i, r := range resources {
		cell := tview.NewTableCell(tview.Escape(a.renderer.FormatRow(r, width))).
			SetReference(r.ID).
			SetExpansion(1).
			SetTextColor(a.currentTheme.LinkStatusColor(string(r.LinkStatus)).Color())
		table.SetCell(i+1, 0, cell)
	}

	if len(resources) == 0 {
		table.SetCell(1, 0, tview.NewTableCell("No resources configured").SetSelectable(false))
		return
	}

	if selected < 1 {
		selected = 1
	}
	if selected > len(resources) {
		selected = len(resources)
	}
	table.Select(selected, 0)
}

// selectedResource returns the resource under the table cursor
func (a *App) selectedResource() (services.Resource, bool) {
	table, ok := a.views["resources"].(*tview.Table)
	if !ok {
		return services.Resource{}, false
	}
	row, _ := table.GetSelection()
	return a.resourceAtRow(row)
}

func (a *App) resourceAtRow(row int) (services.Resource, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	idx := row - 1
	if idx < 0 || idx >= len(a.resources) {
		return services.Resource{}, false
	}
	return a.resources[idx], true
}

// openLinkForRow stores the row's resource id and shows the HCP link modal
func (a *App) openLinkForRow(row int) {
	res, ok := a.resourceAtRow(row)
	if !ok {
		a.errorHandler.ShowWarning(a.ctx, "No resource selected")
		return
	}
	a.openLink(res)
}

// openLink is the single entry point that drives the modal state for a resource
func (a *App) openLink(res services.Resource) {
	a.modalService.SetResourceID(services.StringPtr(res.ID))
	a.modalService.Show(res)
}

// lookupResource resolves the stored id against the catalog
func (a *App) lookupResource(state services.ModalState) *services.Resource {
	if !state.HasResourceID() {
		return nil
	}
	res, err := a.resourceService.GetResource(a.ctx, state.ResourceIDValue())
	if err != nil {
		if a.logger != nil {
			a.logger.Printf("lookupResource: %v", err)
		}
		return nil
	}
	return res
}

// resourceSummary is the short label used in the status bar
func resourceSummary(res services.Resource) string {
	name := res.Name
	if name == "" {
		name = res.ID
	}
	return fmt.Sprintf("%s %s", render.StatusIcon(res.LinkStatus), name)
}
