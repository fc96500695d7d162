// Package obs owns the structured logger for the test kit.
//
// Log records are JSON with RFC3339Nano UTC timestamps. Everything goes to
// stderr and test-logs/combined.log; warn and above additionally land in
// test-logs/error.log.
package obs

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

type correlationContextKey struct{}

// Correlation carries per-run correlation identifiers.
type Correlation struct {
	RunID string
	Suite string
	Check string
}

var (
	loggerMu sync.RWMutex
	logger   *slog.Logger
	files    []*os.File
)

// Init configures the global structured logger, creating the log directory
// and its combined.log/error.log files. Passing an empty dir logs to stderr only.
func Init(logDir string) error {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	if logger != nil {
		return nil
	}

	writers := []io.Writer{os.Stderr}
	var errorWriter io.Writer

	if logDir != "" {
		if err := os.MkdirAll(logDir, 0o755); err != nil {
			return err
		}
		combined, err := os.OpenFile(filepath.Join(logDir, "combined.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		errFile, err := os.OpenFile(filepath.Join(logDir, "error.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			combined.Close()
			return err
		}
		files = append(files, combined, errFile)
		writers = append(writers, combined)
		errorWriter = errFile
	}

	logger = newLogger(io.MultiWriter(writers...), errorWriter)
	slog.SetDefault(logger)
	return nil
}

// Close flushes and closes the log files opened by Init.
func Close() {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	for _, f := range files {
		_ = f.Close()
	}
	files = nil
	logger = nil
}

// SetOutputForTests overrides the global logger output for tests.
func SetOutputForTests(w io.Writer) func() {
	loggerMu.Lock()
	prev := logger
	logger = newLogger(w, nil)
	slog.SetDefault(logger)
	loggerMu.Unlock()

	return func() {
		loggerMu.Lock()
		defer loggerMu.Unlock()
		if prev != nil {
			logger = prev
		} else {
			logger = newLogger(os.Stderr, nil)
		}
		slog.SetDefault(logger)
	}
}

func jsonHandler(w io.Writer, level slog.Level) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, attr slog.Attr) slog.Attr {
			if attr.Key == slog.TimeKey {
				t, ok := attr.Value.Any().(time.Time)
				if ok {
					return slog.String(slog.TimeKey, t.UTC().Format(time.RFC3339Nano))
				}
			}
			return attr
		},
	})
}

func newLogger(combined io.Writer, errorOnly io.Writer) *slog.Logger {
	h := jsonHandler(combined, slog.LevelDebug)
	if errorOnly != nil {
		h = teeHandler{primary: h, secondary: jsonHandler(errorOnly, slog.LevelWarn)}
	}
	return slog.New(h)
}

// teeHandler dispatches each record to every handler whose level admits it.
type teeHandler struct {
	primary   slog.Handler
	secondary slog.Handler
}

func (t teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return t.primary.Enabled(ctx, level) || t.secondary.Enabled(ctx, level)
}

func (t teeHandler) Handle(ctx context.Context, rec slog.Record) error {
	var firstErr error
	if t.primary.Enabled(ctx, rec.Level) {
		firstErr = t.primary.Handle(ctx, rec.Clone())
	}
	if t.secondary.Enabled(ctx, rec.Level) {
		if err := t.secondary.Handle(ctx, rec.Clone()); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (t teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return teeHandler{primary: t.primary.WithAttrs(attrs), secondary: t.secondary.WithAttrs(attrs)}
}

func (t teeHandler) WithGroup(name string) slog.Handler {
	return teeHandler{primary: t.primary.WithGroup(name), secondary: t.secondary.WithGroup(name)}
}

func globalLogger() *slog.Logger {
	loggerMu.RLock()
	l := logger
	loggerMu.RUnlock()
	if l != nil {
		return l
	}
	_ = Init("")
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}

// Pkg returns a logger tagged with package name.
func Pkg(pkg string) *slog.Logger {
	return globalLogger().With("pkg", pkg)
}

// From returns a logger with correlation fields from context.
func From(ctx context.Context) *slog.Logger {
	l := globalLogger()
	corr := CorrelationFromContext(ctx)
	attrs := correlationAttrs(corr)
	if len(attrs) == 0 {
		return l
	}
	return l.With(attrs...)
}

// WithCorrelation stores run correlation fields in context.
func WithCorrelation(ctx context.Context, corr Correlation) context.Context {
	existing := CorrelationFromContext(ctx)
	if corr.RunID != "" {
		existing.RunID = strings.TrimSpace(corr.RunID)
	}
	if corr.Suite != "" {
		existing.Suite = corr.Suite
	}
	if corr.Check != "" {
		existing.Check = corr.Check
	}
	return context.WithValue(ctx, correlationContextKey{}, existing)
}

// CorrelationFromContext returns run correlation fields from context.
func CorrelationFromContext(ctx context.Context) Correlation {
	if ctx == nil {
		return Correlation{}
	}
	corr, ok := ctx.Value(correlationContextKey{}).(Correlation)
	if !ok {
		return Correlation{}
	}
	return corr
}

func correlationAttrs(corr Correlation) []any {
	attrs := make([]any, 0, 6)
	if corr.RunID != "" {
		attrs = append(attrs, "run_id", corr.RunID)
	}
	if corr.Suite != "" {
		attrs = append(attrs, "suite", corr.Suite)
	}
	if corr.Check != "" {
		attrs = append(attrs, "check", corr.Check)
	}
	return attrs
}

// NewRunID returns a fresh identifier for one runner invocation.
func NewRunID() string {
	return "run-" + uuid.NewString()
}
