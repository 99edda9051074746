package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/ajramos/hcplink/internal/services"
	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	harnessWidth  = 120
	harnessHeight = 40
)

// testHarness draws an App onto a simulation screen
type testHarness struct {
	Screen tcell.SimulationScreen
	App    *App
}

func newTestHarness(t *testing.T, modal services.HCPLinkModalService) *testHarness {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(harnessWidth, harnessHeight)
	t.Cleanup(screen.Fini)

	return &testHarness{
		Screen: screen,
		App:    newTestApp(t, modal),
	}
}

// Draw renders the page stack onto the screen
func (h *testHarness) Draw() {
	h.DrawComponent(h.App.Pages)
}

// DrawComponent renders a single component onto the screen
func (h *testHarness) DrawComponent(component tview.Primitive) {
	h.Screen.Clear()
	component.SetRect(0, 0, harnessWidth, harnessHeight)
	component.Draw(h.Screen)
	h.Screen.Show()
}

// ScreenContent captures the current screen content as a string
func (h *testHarness) ScreenContent() string {
	width, height := h.Screen.Size()
	var sb strings.Builder

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			mainc, _, _, _ := h.Screen.GetContent(x, y)
			sb.WriteRune(mainc)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// WaitForCondition waits for a condition to be true with timeout
func (h *testHarness) WaitForCondition(condition func() bool, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return false
}

func TestHarness_MainPageRendersResources(t *testing.T) {
	h := newTestHarness(t, nil)
	h.Draw()

	content := h.ScreenContent()
	assert.Contains(t, content, "Resources")
	assert.Contains(t, content, "Primary")
	assert.Contains(t, content, "Staging")
	assert.NotContains(t, content, "ID:      cluster-1")
}

func TestHarness_ModalDrawnOverMain(t *testing.T) {
	h := newTestHarness(t, nil)

	h.App.handleKey(runeKey('l'))
	h.Draw()

	content := h.ScreenContent()
	assert.Contains(t, content, " HCP Link ")
	assert.Contains(t, content, "ID:      cluster-1")
	assert.Contains(t, content, "This resource is linked to HCP.")

	h.App.handleKey(runeKey('h'))
	h.Draw()
	assert.NotContains(t, h.ScreenContent(), "ID:      cluster-1")
}

func TestHarness_ModalFromAnotherGoroutine(t *testing.T) {
	modal := services.NewHCPLinkModalService()
	h := newTestHarness(t, modal)

	go func() {
		modal.SetResourceID(services.StringPtr("cluster-2"))
		modal.Show(nil)
	}()

	require.True(t, h.WaitForCondition(h.App.IsModalPageVisible, time.Second))
	require.True(t, h.WaitForCondition(func() bool {
		return strings.Contains(h.App.ModalBodyText(), "Staging")
	}, time.Second))
}
