// Package log provides structured logging for rsample: a JSON slog logger
// that lifts cockroachdb/errors stack traces into their own attribute, a
// zerolog sink for generator warnings, and standard attribute keys for
// resampling operations.
package log

import (
	"io"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/shuesler/rsample/pkg/errors"
)

const (
	ErrAttrKey        = "error"
	StacktraceAttrKey = "stacktrace"
)

// libLogger is the logger the resample packages emit through. It is only
// set by Setup; until then Default falls back to the process slog default.
var libLogger atomic.Pointer[slog.Logger]

// Setup builds and installs the library logger: JSON records at the given
// level with stack traces extracted from error attributes. It also wires
// the zerolog warning sink to the same writer, so generator warnings and
// log records end up in one stream. The process-wide slog default is left
// untouched. A nil writer logs to standard error.
func Setup(level string, w io.Writer) (*slog.Logger, error) {
	lvl, err := ToLogLevel(level)
	if err != nil {
		return nil, err
	}
	if w == nil {
		w = os.Stderr
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})
	logger := slog.New(withStacktraces(handler))
	libLogger.Store(logger)
	SetupZerologWarnings(w)
	return logger, nil
}

// Default returns the library logger installed by Setup, or the process
// slog default when Setup has not been called.
func Default() *slog.Logger {
	if l := libLogger.Load(); l != nil {
		return l
	}
	return slog.Default()
}

// ToLogLevel maps a level name onto its slog level.
func ToLogLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, errors.NewValidationError("level", "unknown log level", level)
}

// ErrAttr wraps an error for slog; the stacktrace handler picks it up.
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrAttrKey, err)
}
