package tui

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/ajramos/hcplink/internal/config"
	"github.com/ajramos/hcplink/internal/render"
	"github.com/ajramos/hcplink/internal/services"
	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
)

// Page names
const (
	pageMain    = "main"
	pageHCPLink = "hcpLink"
)

// App encapsulates the terminal UI around the HCP link modal state
type App struct {
	*tview.Application
	Pages  *tview.Pages
	Config *config.Config
	Keys   config.KeyBindings
	ctx    context.Context
	cancel context.CancelFunc
	mu     sync.RWMutex
	views  map[string]tview.Primitive

	// Configuration and theming
	configManager *config.Manager
	themeLoader   *config.ThemeLoader
	currentTheme  *config.ColorsConfig
	renderer      *render.ResourceRenderer

	// Services
	modalService     services.HCPLinkModalService
	resourceService  *services.ResourceServiceImpl
	errorHandler     *ErrorHandler
	unsubscribeModal func()

	// UI state
	resources        []services.Resource
	modalPageVisible bool
	showHelp         bool
	screenWidth      int
	screenHeight     int

	// Debug logging
	logger  *log.Logger
	logFile *os.File

	// queueUpdate runs f on the UI goroutine and redraws
	queueUpdate func(f func())
}

// NewApp creates the TUI application. modal is the shared HCP link modal
// state; a fresh one is created when nil. manager may be nil when the
// configuration is not file backed.
func NewApp(cfg *config.Config, manager *config.Manager, modal services.HCPLinkModalService) *App {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if modal == nil {
		modal = services.NewHCPLinkModalService()
	}

	ctx, cancel := context.WithCancel(context.Background())

	app := &App{
		Application:   tview.NewApplication(),
		Config:        cfg,
		Keys:          cfg.Keys,
		ctx:           ctx,
		cancel:        cancel,
		views:         make(map[string]tview.Primitive),
		configManager: manager,
		themeLoader:   config.NewThemeLoader(themesDir(cfg)),
		currentTheme:  config.DefaultColors(),
		renderer:      render.NewResourceRenderer(),
		modalService:  modal,
		screenWidth:   80,
		screenHeight:  25,
		logger:        log.New(os.Stdout, "[hcplink] ", log.LstdFlags|log.Lmicroseconds),
	}
	app.queueUpdate = func(f func()) {
		app.QueueUpdateDraw(f)
	}

	// Initialize file logger (logging.go)
	app.initLogger()

	app.Pages = tview.NewPages()

	app.initViews()
	app.initErrorHandler()
	app.initServices()
	app.applyTheme()
	app.bindKeys()

	// Track screen size for column fitting
	app.SetBeforeDrawFunc(func(screen tcell.Screen) bool {
		w, h := screen.Size()
		if w != app.screenWidth || h != app.screenHeight {
			app.screenWidth, app.screenHeight = w, h
			app.renderResourceTable()
		}
		return false
	})

	return app
}

// initServices wires the resource catalog and subscribes the views to the
// modal state
func (a *App) initServices() {
	a.resourceService = services.NewResourceService(resourcesFromConfig(a.Config.Resources))
	a.resourceService.SetLogger(a.logger)
	a.modalService.SetLogger(a.logger)

	_, a.unsubscribeModal = a.modalService.Subscribe(a.onModalEvent)

	if a.configManager != nil {
		a.configManager.AddWatcher(a.onConfigChanged)
		a.configManager.AddErrorWatcher(a.onConfigError)
	}

	a.reloadResources()
	a.syncModal(a.modalService.State())
}

// initErrorHandler creates the status bar feedback handler
func (a *App) initErrorHandler() {
	status, _ := a.views["status"].(*tview.TextView)
	a.errorHandler = NewErrorHandler(a.Application, a, status, a.logger)
}

// GetErrorHandler returns the error handler
func (a *App) GetErrorHandler() *ErrorHandler {
	return a.errorHandler
}

// ModalService returns the shared HCP link modal state
func (a *App) ModalService() services.HCPLinkModalService {
	return a.modalService
}

// ResourceService returns the resource catalog
func (a *App) ResourceService() services.ResourceService {
	return a.resourceService
}

// onConfigChanged is called by the config manager after a reload
func (a *App) onConfigChanged(cfg *config.Config) {
	a.queueUpdate(func() {
		a.mu.Lock()
		a.Config = cfg
		a.Keys = cfg.Keys
		a.mu.Unlock()

		a.resourceService.ReplaceResources(resourcesFromConfig(cfg.Resources))
		a.reloadResources()
		a.applyTheme()
		// The stored id may now resolve differently
		a.syncModal(a.modalService.State())
		a.errorHandler.ClearPersistentMessage()
		a.errorHandler.ShowInfo(a.ctx, "Configuration reloaded")
	})
}

// onConfigError is called by the config manager when a changed file fails to
// load. The previous configuration stays active until the file is fixed.
func (a *App) onConfigError(path string, err error) {
	a.errorHandler.HandleError(a.ctx, fmt.Errorf("%w: %v", services.ErrInvalidConfig, err), "Configuration reload failed")
	a.errorHandler.ShowPersistentMessage(a.ctx,
		fmt.Sprintf("%s is invalid, keeping the previous configuration", filepath.Base(path)), LogLevelWarning)
}

// Run starts the application and blocks until it exits
func (a *App) Run() error {
	a.SetRoot(a.Pages, true)
	a.focusBody()

	if a.configManager != nil && a.configManager.ConfigPath() != "" {
		if err := a.configManager.Watch(a.ctx); err != nil && a.logger != nil {
			a.logger.Printf("config watch not started: %v", err)
		}
	}

	defer a.shutdown()
	return a.Application.Run()
}

// shutdown releases subscriptions, watchers and the log file
func (a *App) shutdown() {
	if a.configManager != nil {
		a.configManager.StopWatching()
	}
	if a.unsubscribeModal != nil {
		a.unsubscribeModal()
		a.unsubscribeModal = nil
	}
	a.cancel()
	a.closeLogger()
}

func resourcesFromConfig(in []config.ResourceConfig) []services.Resource {
	out := make([]services.Resource, 0, len(in))
	for _, r := range in {
		out = append(out, services.Resource{
			ID:           r.ID,
			Name:         r.Name,
			Type:         r.Type,
			LinkStatus:   services.LinkStatus(r.LinkStatus),
			HCPOrgID:     r.HCPOrgID,
			HCPProjectID: r.HCPProjectID,
			Description:  r.Description,
		})
	}
	return out
}

func themesDir(cfg *config.Config) string {
	if cfg.Layout.CustomThemeDir != "" {
		return cfg.Layout.CustomThemeDir
	}
	return config.DefaultThemesDir()
}
