package logger

import (
	"context"
	"io"
	"log/slog"
	"math"
	"os"
	"slices"
	"sync"
	"time"
)

// moduleKey is the attribute key carrying the module name in log output.
const moduleKey = "module"

// floatPrecisionRatio rounds floats to 3 decimal places in log output.
const floatPrecisionRatio = 1000.0

var (
	globalLogger Logger
	globalMu     sync.Mutex
)

// SetGlobal sets the global logger instance. Call once during startup after
// configuration has been loaded.
func SetGlobal(l Logger) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalLogger = l
}

// Global returns the global logger. If SetGlobal has not been called it
// returns a console logger at info level so early log calls are not lost.
func Global() Logger {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalLogger == nil {
		globalLogger = NewSlogLogger(os.Stdout, LogLevelInfo, false)
	}
	return globalLogger
}

// slogLogger implements Logger on top of a shared slog.Logger.
type slogLogger struct {
	module string
	logger *slog.Logger
	level  slog.Level
	fields []Field
}

// NewSlogLogger creates a Logger writing to w at the given level.
// When jsonOutput is true records are emitted as JSON for machine parsing,
// otherwise as human-readable text.
func NewSlogLogger(w io.Writer, level LogLevel, jsonOutput bool) Logger {
	slogLevel := parseLogLevel(level)
	opts := &slog.HandlerOptions{Level: slogLevel}

	var handler slog.Handler
	if jsonOutput {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return &slogLogger{
		logger: slog.New(handler),
		level:  slogLevel,
	}
}

// NewFileLogger creates a JSON Logger appending to the file at path, creating
// it if needed. The returned close function flushes OS buffers via the file
// handle and must be called on shutdown.
func NewFileLogger(path string, level LogLevel) (Logger, func() error, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return NewSlogLogger(f, level, true), f.Close, nil
}

// NewMultiLogger creates a Logger that duplicates every record to all given
// loggers. Used to log both to console and the service log file.
func NewMultiLogger(loggers ...Logger) Logger {
	return &multiLogger{targets: loggers}
}

func parseLogLevel(level LogLevel) slog.Level {
	switch level {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelInfo:
		return slog.LevelInfo
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *slogLogger) Module(name string) Logger {
	if l == nil {
		return nil
	}
	module := name
	if l.module != "" {
		module = l.module + "." + name
	}
	return &slogLogger{
		module: module,
		logger: l.logger,
		level:  l.level,
		fields: slices.Clone(l.fields),
	}
}

func (l *slogLogger) With(fields ...Field) Logger {
	if l == nil {
		return nil
	}
	return &slogLogger{
		module: l.module,
		logger: l.logger,
		level:  l.level,
		fields: slices.Concat(l.fields, fields),
	}
}

func (l *slogLogger) Debug(msg string, fields ...Field) { l.log(slog.LevelDebug, msg, fields...) }
func (l *slogLogger) Info(msg string, fields ...Field)  { l.log(slog.LevelInfo, msg, fields...) }
func (l *slogLogger) Warn(msg string, fields ...Field)  { l.log(slog.LevelWarn, msg, fields...) }
func (l *slogLogger) Error(msg string, fields ...Field) { l.log(slog.LevelError, msg, fields...) }

func (l *slogLogger) log(level slog.Level, msg string, fields ...Field) {
	if l == nil || level < l.level {
		return
	}

	attrs := make([]slog.Attr, 0, len(l.fields)+len(fields)+1)
	if l.module != "" {
		attrs = append(attrs, slog.String(moduleKey, l.module))
	}
	for i := range l.fields {
		attrs = append(attrs, fieldToAttr(l.fields[i]))
	}
	for i := range fields {
		attrs = append(attrs, fieldToAttr(fields[i]))
	}

	l.logger.LogAttrs(context.Background(), level, msg, attrs...)
}

// roundFloat rounds to 3 decimal places for cleaner log output.
func roundFloat(val float64) float64 {
	return math.Round(val*floatPrecisionRatio) / floatPrecisionRatio
}

func fieldToAttr(f Field) slog.Attr {
	switch v := f.Value.(type) {
	case string:
		return slog.String(f.Key, v)
	case int:
		return slog.Int(f.Key, v)
	case int64:
		return slog.Int64(f.Key, v)
	case float32:
		return slog.Float64(f.Key, roundFloat(float64(v)))
	case float64:
		return slog.Float64(f.Key, roundFloat(v))
	case bool:
		return slog.Bool(f.Key, v)
	case time.Time:
		return slog.Time(f.Key, v)
	case time.Duration:
		return slog.String(f.Key, v.Round(time.Millisecond).String())
	default:
		return slog.Any(f.Key, v)
	}
}

// multiLogger fans log calls out to multiple loggers.
type multiLogger struct {
	targets []Logger
}

func (m *multiLogger) Module(name string) Logger {
	scoped := make([]Logger, len(m.targets))
	for i, t := range m.targets {
		scoped[i] = t.Module(name)
	}
	return &multiLogger{targets: scoped}
}

func (m *multiLogger) With(fields ...Field) Logger {
	scoped := make([]Logger, len(m.targets))
	for i, t := range m.targets {
		scoped[i] = t.With(fields...)
	}
	return &multiLogger{targets: scoped}
}

func (m *multiLogger) Debug(msg string, fields ...Field) {
	for _, t := range m.targets {
		t.Debug(msg, fields...)
	}
}

func (m *multiLogger) Info(msg string, fields ...Field) {
	for _, t := range m.targets {
		t.Info(msg, fields...)
	}
}

func (m *multiLogger) Warn(msg string, fields ...Field) {
	for _, t := range m.targets {
		t.Warn(msg, fields...)
	}
}

func (m *multiLogger) Error(msg string, fields ...Field) {
	for _, t := range m.targets {
		t.Error(msg, fields...)
	}
}
