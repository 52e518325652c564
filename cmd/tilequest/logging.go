package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tile-quest/internal/games/tilequest"
	"github.com/vovakirdan/tile-quest/internal/platform/tui"
)

// setupLogging builds the shared logger from the global flags and hands it
// to the game and the front end. Interactive sessions log to a file so the
// alternate screen stays clean; the SSH server logs to stderr. The returned
// closer releases the log file.
func setupLogging(toStderr bool) (*log.Logger, func()) {
	var w io.Writer = os.Stderr
	closer := func() {}

	if !toStderr {
		w = io.Discard
		if f, err := openLogFile(flagLogFile); err == nil {
			w = f
			closer = func() { f.Close() }
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tilequest",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		level = log.InfoLevel
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
	}
	logger.SetLevel(level)

	tilequest.SetLogger(logger)
	tui.SetLogger(logger)
	return logger, closer
}

// openLogFile opens path for appending, expanding ~ and creating parents.
// An empty path disables file logging.
func openLogFile(path string) (*os.File, error) {
	if path == "" {
		return nil, os.ErrNotExist
	}
	path = expandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}

// expandHome replaces a leading ~ with the home directory.
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
