package dimcheck

import (
	"go/token"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with dimcheck-specific fields.
type Logger struct {
	*slog.Logger
}

// NewLogger returns a text logger to stderr at the given level.
func NewLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger returns a Logger that discards all output.
func NoopLogger() *Logger {
	return NewLogger(slog.Level(1000)) // unreachable
}

// WithFunc adds the name of the checked dimgo function.
func (l *Logger) WithFunc(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("func", name),
	}
}

// LogChecked logs a call whose dimensions were resolved. diag is the
// reported diagnostic, or "" for a correct call.
func (l *Logger) LogChecked(pos token.Position, diag string) {
	if diag != "" {
		l.Debug("dimension error",
			"pos", pos,
			"diagnostic", diag,
		)
	} else {
		l.Debug("call checked",
			"pos", pos,
		)
	}
}

// LogSkipped logs a call left to the run-time guard.
func (l *Logger) LogSkipped(pos token.Position) {
	l.Debug("call skipped: dimensions are type parameters",
		"pos", pos,
	)
}
