package tui

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/ajramos/hcplink/internal/services"
	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
)

// LogLevel represents the severity of a message
type LogLevel int

const (
	LogLevelInfo LogLevel = iota
	LogLevelWarning
	LogLevelError
	LogLevelSuccess
)

// statusClearDelay is how long a temporary status message stays visible
const statusClearDelay = 5 * time.Second

// ErrorHandler provides consistent error handling and user feedback
type ErrorHandler struct {
	mu         sync.RWMutex
	app        *tview.Application
	appRef     *App // Reference to main App for baseline status and colors
	statusView *tview.TextView
	logger     *log.Logger

	// Status message state
	currentStatus    string
	persistentStatus string
	statusTimer      *time.Timer
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(app *tview.Application, appRef *App, statusView *tview.TextView, logger *log.Logger) *ErrorHandler {
	return &ErrorHandler{
		app:        app,
		appRef:     appRef,
		statusView: statusView,
		logger:     logger,
	}
}

// HandleError logs err and shows userMsg. Permanent errors are shown as
// errors, anything a retry may fix as a warning.
func (eh *ErrorHandler) HandleError(ctx context.Context, err error, userMsg string) {
	if err == nil {
		return
	}

	// Log the technical error
	if eh.logger != nil {
		eh.logger.Printf("ERROR: %v", err)
	}

	if userMsg == "" {
		userMsg = "An error occurred"
	}

	if services.IsPermanentError(err) {
		eh.ShowError(ctx, userMsg)
		return
	}
	eh.ShowWarning(ctx, userMsg)
}

// ShowMessage displays a message to the user
func (eh *ErrorHandler) ShowMessage(ctx context.Context, msg string, level LogLevel) {
	if strings.TrimSpace(msg) == "" {
		return
	}

	formattedMsg := eh.formatMessage(msg, level)

	if eh.logger != nil {
		eh.logger.Printf("%s: %s", eh.levelToString(level), msg)
	}

	eh.queue(func() {
		eh.updateStatusMessage(formattedMsg, level)
	})
}

// ShowPersistentMessage shows a status message that stays until cleared
func (eh *ErrorHandler) ShowPersistentMessage(ctx context.Context, msg string, level LogLevel) {
	formattedMsg := eh.formatMessage(msg, level)

	eh.queue(func() {
		eh.updatePersistentStatus(formattedMsg)
	})
}

// ClearPersistentMessage clears the persistent status message
func (eh *ErrorHandler) ClearPersistentMessage() {
	eh.queue(func() {
		eh.updatePersistentStatus("")
	})
}

// RefreshStatus redraws the status bar, picking up a new baseline
func (eh *ErrorHandler) RefreshStatus() {
	eh.mu.Lock()
	defer eh.mu.Unlock()
	eh.refreshStatusDisplay()
}

// CurrentStatusText returns what the status bar currently shows
func (eh *ErrorHandler) CurrentStatusText() string {
	eh.mu.RLock()
	defer eh.mu.RUnlock()
	return eh.displayTextLocked()
}

// queue runs f on the UI goroutine when there is one
func (eh *ErrorHandler) queue(f func()) {
	if eh.appRef != nil && eh.appRef.queueUpdate != nil {
		eh.appRef.queueUpdate(f)
		return
	}
	if eh.app != nil {
		eh.app.QueueUpdateDraw(f)
	}
}

// formatMessage formats a message with appropriate icon
func (eh *ErrorHandler) formatMessage(msg string, level LogLevel) string {
	var icon string

	switch level {
	case LogLevelInfo:
		icon = "ℹ️"
	case LogLevelWarning:
		icon = "⚠️"
	case LogLevelError:
		icon = "❌"
	case LogLevelSuccess:
		icon = "✅"
	default:
		icon = "•"
	}

	return fmt.Sprintf("%s %s", icon, msg)
}

// levelToString converts LogLevel to string
func (eh *ErrorHandler) levelToString(level LogLevel) string {
	switch level {
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarning:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	case LogLevelSuccess:
		return "SUCCESS"
	default:
		return "UNKNOWN"
	}
}

// levelToColor converts LogLevel to theme-aware tcell.Color
func (eh *ErrorHandler) levelToColor(level LogLevel) tcell.Color {
	if eh.appRef == nil {
		return tcell.ColorDefault
	}
	switch level {
	case LogLevelWarning:
		return eh.appRef.getStatusColor("warning")
	case LogLevelError:
		return eh.appRef.getStatusColor("error")
	case LogLevelSuccess:
		return eh.appRef.getStatusColor("success")
	default:
		return eh.appRef.getStatusColor("info")
	}
}

// updateStatusMessage updates the status message with auto-clear
func (eh *ErrorHandler) updateStatusMessage(msg string, level LogLevel) {
	eh.mu.Lock()
	defer eh.mu.Unlock()

	if eh.statusTimer != nil {
		eh.statusTimer.Stop()
	}

	eh.currentStatus = msg
	if eh.statusView != nil {
		eh.statusView.SetTextColor(eh.levelToColor(level))
	}
	eh.refreshStatusDisplay()

	// Store current message to check against later for race condition prevention
	currentMsg := msg
	eh.statusTimer = time.AfterFunc(statusClearDelay, func() {
		eh.clearCurrentStatusSafely(currentMsg)
	})
}

// clearCurrentStatusSafely clears the current status message unless a newer
// one replaced it in the meantime
func (eh *ErrorHandler) clearCurrentStatusSafely(expectedMsg string) {
	eh.queue(func() {
		eh.mu.Lock()
		defer eh.mu.Unlock()

		if eh.currentStatus == expectedMsg {
			eh.currentStatus = ""
			if eh.statusView != nil {
				eh.statusView.SetTextColor(eh.levelToColor(LogLevelInfo))
			}
			eh.refreshStatusDisplay()
		}
	})
}

// updatePersistentStatus updates the persistent status
func (eh *ErrorHandler) updatePersistentStatus(msg string) {
	eh.mu.Lock()
	defer eh.mu.Unlock()

	eh.persistentStatus = msg
	eh.refreshStatusDisplay()
}

// refreshStatusDisplay refreshes the status display
func (eh *ErrorHandler) refreshStatusDisplay() {
	if eh.statusView == nil {
		return
	}
	eh.statusView.SetText(eh.displayTextLocked())
}

func (eh *ErrorHandler) displayTextLocked() string {
	if eh.currentStatus != "" {
		return eh.currentStatus
	}
	if eh.persistentStatus != "" {
		return eh.persistentStatus
	}
	return eh.getBaselineStatus()
}

// getBaselineStatus returns the baseline status text
func (eh *ErrorHandler) getBaselineStatus() string {
	if eh.appRef != nil {
		return eh.appRef.statusBaseline()
	}
	return "HCP Link • Press ? for help"
}

// Convenience methods for common operations

// ShowInfo shows an info message
func (eh *ErrorHandler) ShowInfo(ctx context.Context, msg string) {
	eh.ShowMessage(ctx, msg, LogLevelInfo)
}

// ShowWarning shows a warning message
func (eh *ErrorHandler) ShowWarning(ctx context.Context, msg string) {
	eh.ShowMessage(ctx, msg, LogLevelWarning)
}

// ShowError shows an error message
func (eh *ErrorHandler) ShowError(ctx context.Context, msg string) {
	eh.ShowMessage(ctx, msg, LogLevelError)
}

// ShowSuccess shows a success message
func (eh *ErrorHandler) ShowSuccess(ctx context.Context, msg string) {
	eh.ShowMessage(ctx, msg, LogLevelSuccess)
}

// ShowResourceError shows a resource lookup error with context
func (eh *ErrorHandler) ShowResourceError(ctx context.Context, operation string, err error) {
	eh.HandleError(ctx, err, fmt.Sprintf("Resource %s failed", operation))
}
