package tui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/ajramos/hcplink/internal/services"
	"github.com/derailed/tview"
	"github.com/stretchr/testify/assert"
)

// Test ErrorHandler constructor
func TestNewErrorHandler(t *testing.T) {
	app := tview.NewApplication()
	statusView := tview.NewTextView()
	logger := log.New(os.Stdout, "", log.LstdFlags)

	eh := NewErrorHandler(app, nil, statusView, logger)

	assert.NotNil(t, eh)
	assert.Equal(t, app, eh.app)
	assert.Nil(t, eh.appRef)
	assert.Equal(t, statusView, eh.statusView)
	assert.Equal(t, logger, eh.logger)
	assert.Empty(t, eh.currentStatus)
	assert.Empty(t, eh.persistentStatus)
}

func TestNewErrorHandler_NilInputs(t *testing.T) {
	eh := NewErrorHandler(nil, nil, nil, nil)

	assert.NotNil(t, eh)
	assert.Nil(t, eh.app)
	assert.Nil(t, eh.appRef)
	assert.Nil(t, eh.statusView)
	assert.Nil(t, eh.logger)
}

func TestErrorHandler_HandleError_NilError(t *testing.T) {
	eh := &ErrorHandler{}

	assert.NotPanics(t, func() {
		eh.HandleError(context.Background(), nil, "test message")
	})
}

func TestErrorHandler_HandleError_LogsTechnicalError(t *testing.T) {
	var buf strings.Builder
	eh := &ErrorHandler{
		statusView: tview.NewTextView(),
		logger:     log.New(&buf, "", 0),
	}

	eh.HandleError(context.Background(), errors.New("resource lookup failed"), "")

	assert.Contains(t, buf.String(), "ERROR: resource lookup failed")
	assert.Contains(t, buf.String(), "An error occurred")
}

// Test message formatting
func TestErrorHandler_formatMessage(t *testing.T) {
	eh := &ErrorHandler{}

	testCases := []struct {
		message  string
		level    LogLevel
		wantIcon string
	}{
		{"Test info", LogLevelInfo, "ℹ️"},
		{"Test warning", LogLevelWarning, "⚠️"},
		{"Test error", LogLevelError, "❌"},
		{"Test success", LogLevelSuccess, "✅"},
		{"Test unknown", LogLevel(99), "•"},
	}

	for _, tc := range testCases {
		result := eh.formatMessage(tc.message, tc.level)
		assert.Contains(t, result, tc.wantIcon)
		assert.Contains(t, result, tc.message)
	}
}

func TestErrorHandler_levelToString(t *testing.T) {
	eh := &ErrorHandler{}

	testCases := []struct {
		level LogLevel
		want  string
	}{
		{LogLevelInfo, "INFO"},
		{LogLevelWarning, "WARN"},
		{LogLevelError, "ERROR"},
		{LogLevelSuccess, "SUCCESS"},
		{LogLevel(99), "UNKNOWN"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, eh.levelToString(tc.level))
	}
}

func TestErrorHandler_levelToColor_NilAppRef(t *testing.T) {
	eh := &ErrorHandler{appRef: nil}

	assert.NotPanics(t, func() {
		eh.levelToColor(LogLevelInfo)
		eh.levelToColor(LogLevelWarning)
		eh.levelToColor(LogLevelError)
		eh.levelToColor(LogLevelSuccess)
		eh.levelToColor(LogLevel(99))
	})
}

func TestErrorHandler_getBaselineStatus_WithoutAppRef(t *testing.T) {
	eh := &ErrorHandler{appRef: nil}

	assert.Equal(t, "HCP Link • Press ? for help", eh.getBaselineStatus())
}

func TestErrorHandler_refreshStatusDisplay_Priority(t *testing.T) {
	statusView := tview.NewTextView()
	eh := &ErrorHandler{
		statusView: statusView,
	}

	// current > persistent > baseline
	eh.mu.Lock()
	eh.currentStatus = "Current message"
	eh.persistentStatus = "Persistent message"
	eh.refreshStatusDisplay()
	eh.mu.Unlock()
	assert.Equal(t, "Current message", strings.TrimSpace(statusView.GetText(false)))

	eh.mu.Lock()
	eh.currentStatus = ""
	eh.refreshStatusDisplay()
	eh.mu.Unlock()
	assert.Equal(t, "Persistent message", strings.TrimSpace(statusView.GetText(false)))

	eh.mu.Lock()
	eh.persistentStatus = ""
	eh.refreshStatusDisplay()
	eh.mu.Unlock()
	assert.Equal(t, "HCP Link • Press ? for help", strings.TrimSpace(statusView.GetText(false)))
}

func TestErrorHandler_refreshStatusDisplay_NoStatusView(t *testing.T) {
	eh := &ErrorHandler{statusView: nil}

	assert.NotPanics(t, func() {
		eh.refreshStatusDisplay()
	})
}

func TestErrorHandler_ShowMessage_NoApp(t *testing.T) {
	eh := &ErrorHandler{}

	assert.NotPanics(t, func() {
		eh.ShowMessage(context.Background(), "Test message", LogLevelInfo)
	})
}

func TestErrorHandler_ShowMessage_EmptyMessage(t *testing.T) {
	var buf strings.Builder
	eh := &ErrorHandler{logger: log.New(&buf, "", 0)}

	eh.ShowMessage(context.Background(), "   ", LogLevelInfo)

	assert.Empty(t, buf.String())
}

func TestErrorHandler_MessagesThroughApp(t *testing.T) {
	app := newTestApp(t, nil)
	eh := app.GetErrorHandler()
	ctx := context.Background()

	eh.ShowSuccess(ctx, "Saved")
	assert.Contains(t, eh.CurrentStatusText(), "✅ Saved")

	eh.ShowPersistentMessage(ctx, "Watching config", LogLevelInfo)
	// A temporary message still wins while it is active
	assert.Contains(t, eh.CurrentStatusText(), "Saved")

	eh.mu.Lock()
	eh.currentStatus = ""
	eh.mu.Unlock()
	assert.Contains(t, eh.CurrentStatusText(), "Watching config")

	eh.ClearPersistentMessage()
	assert.Contains(t, eh.CurrentStatusText(), "HCP Link |")
}

func TestErrorHandler_StatusAutoClearing(t *testing.T) {
	statusView := tview.NewTextView()
	eh := &ErrorHandler{
		statusView: statusView,
	}

	eh.updateStatusMessage("Test error", LogLevelError)

	eh.mu.RLock()
	firstTimer := eh.statusTimer
	eh.mu.RUnlock()
	assert.NotNil(t, firstTimer)

	eh.updateStatusMessage("Test info", LogLevelInfo)

	eh.mu.RLock()
	defer eh.mu.RUnlock()
	assert.NotNil(t, eh.statusTimer)
	assert.NotSame(t, firstTimer, eh.statusTimer)
	assert.Equal(t, "Test info", eh.currentStatus)

	eh.statusTimer.Stop()
}

func TestErrorHandler_clearCurrentStatusSafely(t *testing.T) {
	app := newTestApp(t, nil)
	eh := app.GetErrorHandler()

	eh.updateStatusMessage("first", LogLevelInfo)
	eh.updateStatusMessage("second", LogLevelInfo)

	// A stale timer must not clear a newer message
	eh.clearCurrentStatusSafely("first")
	assert.Equal(t, "second", eh.CurrentStatusText())

	eh.clearCurrentStatusSafely("second")
	assert.Contains(t, eh.CurrentStatusText(), "HCP Link |")

	eh.mu.Lock()
	eh.statusTimer.Stop()
	eh.mu.Unlock()
}

func TestErrorHandler_ShowResourceError(t *testing.T) {
	app := newTestApp(t, nil)
	eh := app.GetErrorHandler()

	eh.ShowResourceError(context.Background(), "lookup", fmt.Errorf("%w: db-1", services.ErrResourceNotFound))

	assert.Contains(t, eh.CurrentStatusText(), "❌ Resource lookup failed")
}

func TestErrorHandler_HandleError_Severity(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantIcon string
	}{
		{"not found", services.ErrResourceNotFound, "❌"},
		{"invalid id", fmt.Errorf("lookup: %w", services.ErrInvalidResourceID), "❌"},
		{"invalid config", fmt.Errorf("%w: bad json", services.ErrInvalidConfig), "❌"},
		{"transient", errors.New("connection reset"), "⚠️"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t, nil)
			eh := app.GetErrorHandler()

			eh.HandleError(context.Background(), tt.err, "Lookup failed")

			assert.Equal(t, tt.wantIcon+" Lookup failed", eh.CurrentStatusText())
		})
	}
}
