// Package logging provides categorized diagnostic logging for elotools on top of zap.
// Loggers are no-ops until Initialize is called, so library code can log freely in tests.
// Diagnostics go to stderr; command reports are written to stdout by their callers.
package logging

import (
	"fmt"
	"strings"
	"sync"

	"elotools/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/subsystem
type Category string

const (
	CategoryBoot    Category = "boot"    // Startup, config resolution
	CategoryBNCC    Category = "bncc"    // Curriculum extraction, classification, rendering
	CategoryImports Category = "imports" // Import scanning and validation
	CategoryWatch   Category = "watch"   // Source document watcher
)

// Logger is a category-scoped printf-style logger.
type Logger struct {
	category Category
	sugar    *zap.SugaredLogger
}

var (
	loggers   = make(map[Category]*Logger)
	loggersMu sync.RWMutex
	base      = zap.NewNop()
	settings  config.LoggingConfig
)

// Initialize builds the root zap logger from the logging config.
// verbose forces debug level regardless of the configured level.
func Initialize(lc config.LoggingConfig, verbose bool) error {
	level, err := parseLevel(lc.Level)
	if err != nil {
		return err
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	var zc zap.Config
	switch strings.ToLower(lc.Format) {
	case "json":
		zc = zap.NewProductionConfig()
	case "", "console", "text":
		zc = zap.NewDevelopmentConfig()
		zc.DisableStacktrace = true
	default:
		return fmt.Errorf("unknown log format: %s", lc.Format)
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	logger, err := zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	install(logger, lc)
	return nil
}

// InitializeWithCore installs a logger over an existing core. Tests use it with zaptest/observer.
func InitializeWithCore(core zapcore.Core, lc config.LoggingConfig) {
	install(zap.New(core), lc)
}

func install(logger *zap.Logger, lc config.LoggingConfig) {
	loggersMu.Lock()
	defer loggersMu.Unlock()
	base = logger
	settings = lc
	loggers = make(map[Category]*Logger)
}

// Reset drops back to the no-op logger.
func Reset() {
	install(zap.NewNop(), config.LoggingConfig{})
}

func parseLevel(s string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "", "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level: %s", s)
	}
}

// Get returns (or creates) a logger for the given category.
// Disabled categories get a no-op logger.
func Get(category Category) *Logger {
	loggersMu.RLock()
	if l, ok := loggers[category]; ok {
		loggersMu.RUnlock()
		return l
	}
	loggersMu.RUnlock()

	loggersMu.Lock()
	defer loggersMu.Unlock()

	// Double-check after acquiring write lock
	if l, ok := loggers[category]; ok {
		return l
	}

	zl := base.Named(string(category))
	if !settings.IsCategoryEnabled(string(category)) {
		zl = zap.NewNop()
	}
	l := &Logger{category: category, sugar: zl.Sugar()}
	loggers[category] = l
	return l
}

// With returns a child logger carrying structured key/value pairs.
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{category: l.category, sugar: l.sugar.With(keysAndValues...)}
}

func (l *Logger) Debug(format string, args ...interface{}) { l.sugar.Debugf(format, args...) }
func (l *Logger) Info(format string, args ...interface{})  { l.sugar.Infof(format, args...) }
func (l *Logger) Warn(format string, args ...interface{})  { l.sugar.Warnf(format, args...) }
func (l *Logger) Error(format string, args ...interface{}) { l.sugar.Errorf(format, args...) }

// Sync flushes buffered entries.
func Sync() {
	loggersMu.RLock()
	defer loggersMu.RUnlock()
	_ = base.Sync()
}

// Convenience helpers

func Boot(format string, args ...interface{})      { Get(CategoryBoot).Info(format, args...) }
func BNCC(format string, args ...interface{})      { Get(CategoryBNCC).Info(format, args...) }
func BNCCDebug(format string, args ...interface{}) { Get(CategoryBNCC).Debug(format, args...) }
func Imports(format string, args ...interface{})   { Get(CategoryImports).Info(format, args...) }
