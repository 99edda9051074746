package tui

import (
	"log"
	"os"
	"path/filepath"

	"github.com/ajramos/hcplink/internal/config"
)

// initLogger initializes the file logger. Config log_file wins over the
// default <config dir>/hcplink.log; stdout logging stays when neither works.
func (a *App) initLogger() {
	if a.logFile != nil {
		return
	}

	path := a.Config.LogFile
	if path == "" {
		dir := config.DefaultLogDir()
		if dir == "" {
			return
		}
		path = filepath.Join(dir, "hcplink.log")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return
	}
	a.logFile = f
	a.logger = log.New(f, "[hcplink] ", log.LstdFlags|log.Lmicroseconds)
}

// closeLogger closes the log file if opened
func (a *App) closeLogger() {
	if a.logFile != nil {
		_ = a.logFile.Close()
		a.logFile = nil
	}
}
