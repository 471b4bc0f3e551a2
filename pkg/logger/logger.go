// Package logger provides the SDK's package-level diagnostic logger, backed
// by zap. The default logger is a no-op: library code stays silent until the
// embedding application calls Init or Set.
package logger

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu  sync.RWMutex
	log = zap.NewNop().Sugar()
)

// Init builds and installs a zap logger at the given level ("debug", "info",
// "warn", "error"). Development mode uses the human-readable console encoder
// instead of JSON.
func Init(level string, development bool) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parse log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	built, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	Set(built)
	return nil
}

// Set installs l as the package logger. A nil l restores the no-op logger.
func Set(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	if l == nil {
		log = zap.NewNop().Sugar()
		return
	}
	log = l.Sugar()
}

// L returns the current package logger.
func L() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// Debug logs a printf-style message at debug level.
func Debug(format string, args ...any) { L().Debugf(format, args...) }

// Info logs a printf-style message at info level.
func Info(format string, args ...any) { L().Infof(format, args...) }

// Warn logs a printf-style message at warn level.
func Warn(format string, args ...any) { L().Warnf(format, args...) }

// Error logs a printf-style message at error level.
func Error(format string, args ...any) { L().Errorf(format, args...) }
