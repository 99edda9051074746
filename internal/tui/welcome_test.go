package tui

import (
	"strings"
	"testing"

	"github.com/ajramos/hcplink/internal/config"
	"github.com/derailed/tview"
)

func TestGetWelcomeShortcuts_CustomConfig(t *testing.T) {
	app := &App{
		Keys: config.KeyBindings{
			Help:    "F1",
			Refresh: "r",
			Quit:    "Q",
		},
	}

	shortcuts := app.getWelcomeShortcuts()
	for _, want := range []string{"[F1 Help]", "[r Reload]", "[Q Quit]"} {
		if !strings.Contains(shortcuts, want) {
			t.Errorf("Expected %s, got: %s", want, shortcuts)
		}
	}
}

func TestGetWelcomeShortcuts_DefaultFallback(t *testing.T) {
	app := &App{Keys: config.KeyBindings{}}

	shortcuts := app.getWelcomeShortcuts()
	for _, want := range []string{"[? Help]", "[R Reload]", "[q Quit]"} {
		if !strings.Contains(shortcuts, want) {
			t.Errorf("Expected default %s, got: %s", want, shortcuts)
		}
	}
}

func TestWelcomeShownForEmptyCatalog(t *testing.T) {
	cfg := testConfig(t)
	cfg.Resources = nil
	cfg.Keys.Help = "F1"
	app := newTestAppWithConfig(t, cfg, nil, nil)

	if !app.welcomeVisible() {
		t.Fatal("welcome should be visible with no resources")
	}

	welcome, ok := app.views["welcome"].(*tview.TextView)
	if !ok {
		t.Fatal("welcome view missing")
	}
	text := welcome.GetText(true)
	if !strings.Contains(text, "[F1 Help]") {
		t.Errorf("welcome text should use configured shortcuts, got: %s", text)
	}
	if !strings.Contains(text, "--setup") {
		t.Errorf("welcome text should mention --setup, got: %s", text)
	}
}

func TestWelcomeHiddenWithResources(t *testing.T) {
	app := newTestApp(t, nil)

	if app.welcomeVisible() {
		t.Fatal("welcome should be hidden when resources exist")
	}
	if app.GetFocus() != app.views["resources"] {
		t.Errorf("resource table should have focus, got %T", app.GetFocus())
	}
}
