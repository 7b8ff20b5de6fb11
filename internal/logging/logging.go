// Package logging builds the structured loggers used across blasters.
// While a game is on screen the terminal belongs to Bubble Tea, so play
// sessions log to a file instead of stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultPath is the log file used by play sessions.
const DefaultPath = "~/.blasters/blasters.log"

// Options configures a logger.
type Options struct {
	Path   string // empty logs to stderr
	Level  string // debug, info, warn, error
	Prefix string
}

// ParseLevel converts a level name, defaulting to info.
func ParseLevel(s string) log.Level {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// New creates a logger. The returned closer releases the log file and is
// never nil.
func New(opts Options) (*log.Logger, io.Closer, error) {
	var (
		w      io.Writer = os.Stderr
		closer io.Closer = nopCloser{}
	)
	if opts.Path != "" {
		path, err := expandHome(opts.Path)
		if err != nil {
			return nil, closer, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, closer, fmt.Errorf("logging: cannot create directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, closer, fmt.Errorf("logging: cannot open %s: %w", path, err)
		}
		w, closer = f, f
	}

	prefix := opts.Prefix
	if prefix == "" {
		prefix = "blasters"
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           ParseLevel(opts.Level),
	})
	return logger, closer, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

func expandHome(p string) (string, error) {
	if !strings.HasPrefix(p, "~") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("logging: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, p[1:]), nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
