package render

import (
	"fmt"
	"strings"

	"github.com/ajramos/hcplink/internal/config"
	"github.com/ajramos/hcplink/internal/services"
	"github.com/derailed/tview"
	"github.com/mattn/go-runewidth"
)

// Column widths used by the resource table (name takes the rest)
const (
	typeWidth   = 12
	statusWidth = 14
	idWidth     = 20
	minName     = 10
)

// ResourceRenderer formats resources for the table and the HCP link modal
type ResourceRenderer struct {
	colors *config.ColorsConfig
}

// NewResourceRenderer creates a renderer with the default colors
func NewResourceRenderer() *ResourceRenderer {
	return &ResourceRenderer{colors: config.DefaultColors()}
}

// UpdateFromConfig updates the renderer with new theme colors
func (rr *ResourceRenderer) UpdateFromConfig(colors *config.ColorsConfig) {
	if colors != nil {
		rr.colors = colors
	}
}

// StatusIcon returns the marker shown next to a link status
func StatusIcon(status services.LinkStatus) string {
	switch status {
	case services.LinkStatusConnected:
		return "●"
	case services.LinkStatusDisconnected:
		return "○"
	default:
		return "?"
	}
}

// FormatRow renders one fixed-width table line: Name | Type | Status | ID
func (rr *ResourceRenderer) FormatRow(r services.Resource, maxWidth int) string {
	name := r.Name
	if name == "" {
		name = r.ID
	}
	status := fmt.Sprintf("%s %s", StatusIcon(r.LinkStatus), r.LinkStatus)

	return formatColumns(name, r.Type, status, r.ID, maxWidth)
}

// FormatHeader renders the table header aligned with FormatRow
func (rr *ResourceRenderer) FormatHeader(maxWidth int) string {
	return formatColumns("NAME", "TYPE", "STATUS", "ID", maxWidth)
}

func formatColumns(name, typ, status, id string, maxWidth int) string {
	// account for separators (" | " x3) = 9
	nameWidth := maxWidth - typeWidth - statusWidth - idWidth - 9
	if nameWidth < minName {
		nameWidth = minName
	}

	return fmt.Sprintf("%s | %s | %s | %s",
		fitWidth(name, nameWidth),
		fitWidth(typ, typeWidth),
		fitWidth(status, statusWidth),
		fitWidth(id, idWidth),
	)
}

// FormatModalBody renders the modal text for the resource a modal concerns.
// res is nil when the stored id does not resolve to a catalog entry.
func (rr *ResourceRenderer) FormatModalBody(state services.ModalState, res *services.Resource) string {
	var sb strings.Builder

	if !state.HasResourceID() {
		sb.WriteString("No resource selected.\n\n")
		sb.WriteString("[::d]Select a resource and open the HCP link to see its details.[::-]")
		return sb.String()
	}

	if res == nil {
		sb.WriteString(fmt.Sprintf("Resource %q not found.\n\n", state.ResourceIDValue()))
		sb.WriteString("[::d]It may have been removed from the configuration.[::-]")
		return sb.String()
	}

	color := rr.colors.LinkStatusColor(string(res.LinkStatus))
	sb.WriteString(fmt.Sprintf("[::b]%s[::-]\n", tview.Escape(displayName(*res))))
	sb.WriteString(fmt.Sprintf("ID:      %s\n", tview.Escape(res.ID)))
	if res.Type != "" {
		sb.WriteString(fmt.Sprintf("Type:    %s\n", tview.Escape(res.Type)))
	}
	sb.WriteString(fmt.Sprintf("Status:  [%s]%s %s[-]\n", color.String(), StatusIcon(res.LinkStatus), res.LinkStatus))
	if res.HCPOrgID != "" {
		sb.WriteString(fmt.Sprintf("Org:     %s\n", tview.Escape(res.HCPOrgID)))
	}
	if res.HCPProjectID != "" {
		sb.WriteString(fmt.Sprintf("Project: %s\n", tview.Escape(res.HCPProjectID)))
	}
	if res.Description != "" {
		sb.WriteString("\n" + tview.Escape(res.Description) + "\n")
	}

	switch res.LinkStatus {
	case services.LinkStatusConnected:
		sb.WriteString("\nThis resource is linked to HCP.")
	case services.LinkStatusDisconnected:
		sb.WriteString("\nThis resource is not linked to HCP.")
	default:
		sb.WriteString("\nHCP link status could not be determined.")
	}

	return sb.String()
}

func displayName(r services.Resource) string {
	if r.Name != "" {
		return r.Name
	}
	return r.ID
}

// fitWidth truncates and pads on the right to fit a fixed width
func fitWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	// Truncate by display width with ellipsis
	s = runewidth.Truncate(s, width, "...")
	// Pad on the right to exact width
	pad := width - runewidth.StringWidth(s)
	if pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}
