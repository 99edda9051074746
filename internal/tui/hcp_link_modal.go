package tui

import (
	"fmt"

	"github.com/ajramos/hcplink/internal/services"
	"github.com/derailed/tview"
)

// initHCPLinkModal builds the modal page. It starts hidden; visibility is
// driven only by the modal service.
func (a *App) initHCPLinkModal() {
	body := tview.NewTextView().
		SetDynamicColors(true).
		SetWordWrap(true)
	body.SetBorder(true).SetTitle(fmt.Sprintf(" %s ", a.Config.Modal.Title))
	a.views["hcpLinkBody"] = body

	hints := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignRight)
	a.views["hcpLinkHints"] = hints
	a.updateModalHints()

	frame := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(body, 0, 1, true).
		AddItem(hints, 1, 0, false)
	a.views["hcpLink"] = frame

	a.Pages.AddPage(pageHCPLink, centered(frame, a.Config.Modal.Width, a.Config.Modal.Height), true, false)
}

func (a *App) updateModalHints() {
	if hints, ok := a.views["hcpLinkHints"].(*tview.TextView); ok {
		hints.SetText(fmt.Sprintf(" Esc/%s close  %s clear resource ", a.Keys.CloseLink, a.Keys.ClearResource))
	}
}

// onModalEvent is the modal service listener. It may be called from any
// goroutine, so the view update is queued onto the UI goroutine.
func (a *App) onModalEvent(e services.ModalEvent) {
	if a.logger != nil {
		a.logger.Printf("onModalEvent: %s visible=%t resource=%q", e.Kind, e.Current.Visible, e.Current.ResourceIDValue())
	}
	a.queueUpdate(func() {
		// Read the latest state rather than e.Current: queued updates may
		// run after later mutations
		a.syncModal(a.modalService.State())
	})
}

// syncModal makes the modal page match state
func (a *App) syncModal(state services.ModalState) {
	if body, ok := a.views["hcpLinkBody"].(*tview.TextView); ok {
		body.SetText(a.renderer.FormatModalBody(state, a.lookupResource(state)))
		body.ScrollToBeginning()
	}

	a.mu.Lock()
	wasVisible := a.modalPageVisible
	a.modalPageVisible = state.Visible
	a.mu.Unlock()

	if state.Visible && !wasVisible {
		a.Pages.ShowPage(pageHCPLink)
		a.SetFocus(a.views["hcpLinkBody"])
	} else if !state.Visible && wasVisible {
		a.Pages.HidePage(pageHCPLink)
		a.focusBody()
	}

	if a.errorHandler != nil {
		a.errorHandler.RefreshStatus()
	}
}

// IsModalPageVisible reports whether the modal page is currently shown
func (a *App) IsModalPageVisible() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.modalPageVisible
}

// ModalBodyText returns the text currently rendered in the modal
func (a *App) ModalBodyText() string {
	if body, ok := a.views["hcpLinkBody"].(*tview.TextView); ok {
		return body.GetText(true)
	}
	return ""
}
