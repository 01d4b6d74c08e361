// Package logging builds zerolog loggers from configuration and carries them,
// together with a per-invocation trace ID, through context.Context.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Output and format names accepted in Config.
const (
	OutputStderr = "stderr"
	OutputFile   = "file"

	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config describes how a logger should be built.
type Config struct {
	// Level is a zerolog level name; unparsable values fall back to info.
	Level string
	// Format is "console" or "json".
	Format string
	// Output is "stderr" or "file".
	Output string
	// File is the log file path when Output is "file".
	File string
	// Caller adds file:line to each entry.
	Caller bool
	// Writer replaces stderr as the non-file destination. Tests use it.
	Writer io.Writer
}

// LogPathResult is the outcome of NewLoggerWithPath.
type LogPathResult struct {
	Logger zerolog.Logger

	// UsingFile is true when entries go to FilePath.
	UsingFile bool
	FilePath  string

	// FallbackUsed is true when the requested file could not be opened and
	// the logger fell back to stderr. FallbackReason says why.
	FallbackUsed   bool
	FallbackReason string

	file *os.File
}

// Close releases the log file, if any.
func (r *LogPathResult) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// NewLogger builds a logger and discards the file handle bookkeeping.
// It is meant for short-lived tools and tests.
func NewLogger(cfg Config) zerolog.Logger {
	return NewLoggerWithPath(cfg).Logger
}

// NewLoggerWithPath builds a logger from cfg.
//
// When Output is "file" the file is opened in append mode and created with
// 0600 permissions. If that fails the logger writes to stderr instead and
// the result records the fallback.
func NewLoggerWithPath(cfg Config) LogPathResult {
	lvl, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	var result LogPathResult
	out := cfg.Writer
	if out == nil {
		out = os.Stderr
	}

	if cfg.Output == OutputFile && cfg.File != "" {
		f, openErr := openLogFile(cfg.File)
		if openErr != nil {
			result.FallbackUsed = true
			result.FallbackReason = openErr.Error()
		} else {
			out = f
			result.file = f
			result.UsingFile = true
			result.FilePath = cfg.File
		}
	}

	var w io.Writer = out
	if cfg.Format != FormatJSON && !result.UsingFile {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	zctx := zerolog.New(w).Level(lvl).With().Timestamp()
	if cfg.Caller {
		zctx = zctx.Caller()
	}
	result.Logger = zctx.Logger().Hook(traceHook{})

	return result
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, nil
}

// ComponentLogger returns a child logger tagged with the component name.
func ComponentLogger(l zerolog.Logger, component string) zerolog.Logger {
	return l.With().Str("component", component).Logger()
}

// FromContext returns the logger stored in ctx, or a disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// PrintLogPathMessage tells the operator where the log file is.
func PrintLogPathMessage(w io.Writer, path string) {
	_, _ = fmt.Fprintf(w, "Logging to %s\n", path)
}

// PrintFallbackWarning explains why file logging was not used.
func PrintFallbackWarning(w io.Writer, reason string) {
	_, _ = fmt.Fprintf(w, "Warning: file logging unavailable (%s), logging to stderr\n", reason)
}
