package tui

import (
	"github.com/derailed/tview"
)

// initViews builds the main page and the HCP link modal page
func (a *App) initViews() {
	header := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignLeft)
	a.views["header"] = header

	table := tview.NewTable().
		SetSelectable(true, false).
		SetFixed(1, 0)
	table.SetBorder(a.Config.Layout.ShowBorders)
	if a.Config.Layout.ShowTitles {
		table.SetTitle(" Resources ")
	}
	table.SetSelectedFunc(func(row, _ int) {
		a.openLinkForRow(row)
	})
	a.views["resources"] = table

	help := tview.NewTextView().
		SetDynamicColors(true).
		SetWordWrap(true)
	help.SetBorder(true).SetTitle(" Help ")
	a.views["help"] = help

	welcome := tview.NewTextView().
		SetDynamicColors(true).
		SetWordWrap(true)
	welcome.SetBorder(a.Config.Layout.ShowBorders)
	a.views["welcome"] = welcome

	status := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignLeft)
	a.views["status"] = status

	body := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(table, 0, 1, true)
	a.views["body"] = body

	main := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(header, 1, 0, false).
		AddItem(body, 0, 1, true).
		AddItem(status, 1, 0, false)
	a.views["main"] = main

	a.Pages.AddPage(pageMain, main, true, true)
	a.initHCPLinkModal()
}

// centered wraps p in a layout that keeps it in the middle of the screen
func centered(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(p, height, 1, true).
			AddItem(nil, 0, 1, false), width, 1, true).
		AddItem(nil, 0, 1, false)
}

// focusBody moves focus back to the body area
func (a *App) focusBody() {
	a.SetFocus(a.views[a.bodyView()])
}
