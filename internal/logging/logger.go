// Package logging provides config-driven categorized logging for drillbook.
// Every category is a named child of one zap logger built from
// config.LoggingConfig; disabled categories get a no-op logger.
package logging

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"drillbook/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot    Category = "boot"    // CLI startup, config loading
	CategoryCLI     Category = "cli"     // Command dispatch and input decoding
	CategoryArrays  Category = "arrays"  // Array routines
	CategoryHeaders Category = "headers" // Header parsing
	CategoryLogIDs  Category = "logids"  // Log identifier extraction
	CategoryPenalty Category = "penalty" // Closing-hour penalty
)

// Logger wraps a sugared zap logger bound to a category.
type Logger struct {
	category Category
	sugar    *zap.SugaredLogger
}

var (
	loggers   = make(map[Category]*Logger)
	loggersMu sync.RWMutex
	base      = zap.NewNop()
	cfg       config.LoggingConfig
	cfgMu     sync.RWMutex
)

// Build creates a zap logger from the logging config.
func Build(c config.LoggingConfig) (*zap.Logger, error) {
	level, err := parseLevel(c.EffectiveLevel())
	if err != nil {
		return nil, err
	}

	zc := zap.NewProductionConfig()
	if c.Format != "json" {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.DisableStacktrace = !c.DebugMode
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	if c.File != "" {
		zc.OutputPaths = []string{c.File}
	}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// Initialize installs logger as the root of every category logger.
// Category loggers handed out earlier are discarded.
func Initialize(logger *zap.Logger, c config.LoggingConfig) {
	if logger == nil {
		logger = zap.NewNop()
	}

	cfgMu.Lock()
	cfg = c
	base = logger
	cfgMu.Unlock()

	loggersMu.Lock()
	loggers = make(map[Category]*Logger)
	loggersMu.Unlock()

	Get(CategoryBoot).Debug("logging initialized (level=%s format=%s)", c.EffectiveLevel(), c.Format)
}

// Reset drops back to the no-op logger.
func Reset() {
	Initialize(zap.NewNop(), config.LoggingConfig{})
}

// IsCategoryEnabled returns whether a specific category is enabled
func IsCategoryEnabled(category Category) bool {
	cfgMu.RLock()
	defer cfgMu.RUnlock()
	return cfg.IsCategoryEnabled(string(category))
}

// Get returns (or creates) a logger for the given category.
// Returns a no-op logger if the category is disabled.
func Get(category Category) *Logger {
	loggersMu.RLock()
	if l, ok := loggers[category]; ok {
		loggersMu.RUnlock()
		return l
	}
	loggersMu.RUnlock()

	loggersMu.Lock()
	defer loggersMu.Unlock()

	if l, ok := loggers[category]; ok {
		return l
	}

	cfgMu.RLock()
	root := base
	cfgMu.RUnlock()
	if !IsCategoryEnabled(category) {
		root = zap.NewNop()
	}

	l := &Logger{
		category: category,
		sugar:    root.Named(string(category)).Sugar(),
	}
	loggers[category] = l
	return l
}

// With returns a child logger carrying the given fields.
func (l *Logger) With(fields ...zap.Field) *Logger {
	return &Logger{
		category: l.category,
		sugar:    l.sugar.Desugar().With(fields...).Sugar(),
	}
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...interface{}) {
	l.sugar.Debugf(format, args...)
}

// Info logs an informational message
func (l *Logger) Info(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(format string, args ...interface{}) {
	l.sugar.Warnf(format, args...)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
}

func parseLevel(s string) (zapcore.Level, error) {
	if strings.EqualFold(s, "warning") {
		s = "warn"
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(s))); err != nil {
		return level, fmt.Errorf("invalid logging level %q: %w", s, err)
	}
	return level, nil
}

// =============================================================================
// TIMING HELPERS
// =============================================================================

// Timer helps measure operation duration
type Timer struct {
	category Category
	op       string
	start    time.Time
}

// StartTimer begins timing an operation
func StartTimer(category Category, operation string) *Timer {
	return &Timer{
		category: category,
		op:       operation,
		start:    time.Now(),
	}
}

// Stop ends the timer and logs the duration at debug level
func (t *Timer) Stop() time.Duration {
	elapsed := time.Since(t.start)
	Get(t.category).Debug("%s completed in %v", t.op, elapsed)
	return elapsed
}

// StopWithThreshold logs a warning if duration exceeds threshold
func (t *Timer) StopWithThreshold(threshold time.Duration) time.Duration {
	elapsed := time.Since(t.start)
	if elapsed > threshold {
		Get(t.category).Warn("%s took %v (threshold: %v)", t.op, elapsed, threshold)
	} else {
		Get(t.category).Debug("%s completed in %v", t.op, elapsed)
	}
	return elapsed
}
