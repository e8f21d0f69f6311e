// Package logging configures the structured logger shared by the catalog client
// and the UI. The TUI owns the terminal, so entries go to a file as JSON lines.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
)

// DefaultLogFile is used when no path is configured.
const DefaultLogFile = "mealdeck.log"

// Configure returns a logger writing JSON entries to path. Empty values fall back to
// the default path and missing directories are created. The returned closer releases
// the file handle.
func Configure(path string, debug bool) (*log.Logger, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		path = DefaultLogFile
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(f, debug), f, nil
}

// New returns a JSON logger writing to out.
func New(out io.Writer, debug bool) *log.Logger {
	logger := log.New()
	logger.SetOutput(out)
	logger.SetFormatter(&log.JSONFormatter{})
	logger.SetLevel(log.InfoLevel)
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// Discard returns a logger that drops every entry.
func Discard() *log.Logger {
	return New(io.Discard, false)
}
