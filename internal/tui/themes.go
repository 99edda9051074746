package tui

import (
	"fmt"

	"github.com/ajramos/hcplink/internal/config"
	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
)

// applyTheme loads the configured theme and pushes its colors into the views.
// A missing or invalid theme falls back to the built-in colors.
func (a *App) applyTheme() {
	name := a.Config.Layout.CurrentTheme
	theme, err := a.themeLoader.LoadTheme(name)
	if err != nil {
		if a.logger != nil {
			a.logger.Printf("applyTheme: %v, using built-in colors", err)
		}
		theme = config.DefaultColors()
		if a.errorHandler != nil {
			a.errorHandler.ShowWarning(a.ctx, fmt.Sprintf("Theme %q not available, using default", name))
		}
	}

	a.mu.Lock()
	a.currentTheme = theme
	a.mu.Unlock()
	a.renderer.UpdateFromConfig(theme)

	for key, view := range a.views {
		a.applyFrameColors(key, view, theme)
	}

	if table, ok := a.views["resources"].(*tview.Table); ok {
		table.SetSelectedStyle(tcell.StyleDefault.
			Foreground(theme.Table.SelectedFg.Color()).
			Background(theme.Table.SelectedBg.Color()))
	}
	if status, ok := a.views["status"].(*tview.TextView); ok {
		status.SetTextColor(theme.Status.InfoColor.Color())
	}
	a.renderResourceTable()
	a.updateHeader()
}

// applyFrameColors sets border, title and background colors on views that
// carry a frame
func (a *App) applyFrameColors(key string, view tview.Primitive, theme *config.ColorsConfig) {
	switch v := view.(type) {
	case *tview.Table:
		v.SetBorderColor(theme.Frame.BorderColor.Color())
		v.SetTitleColor(theme.Frame.TitleColor.Color())
		v.SetBackgroundColor(theme.Body.BgColor.Color())
	case *tview.TextView:
		v.SetBorderColor(theme.Frame.BorderColor.Color())
		v.SetTitleColor(theme.Frame.TitleColor.Color())
		v.SetBackgroundColor(theme.Body.BgColor.Color())
		v.SetTextColor(theme.Body.FgColor.Color())
		if key == "hcpLinkBody" {
			v.SetBorderColor(theme.Frame.FocusColor.Color())
		}
	case *tview.Flex:
		v.SetBackgroundColor(theme.Body.BgColor.Color())
	}
}
