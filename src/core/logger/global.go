package logger

import (
	"sync"

	"procdsl/src/core/config"
)

var (
	globalLogger *Logger
	once         sync.Once
)

// Init initializes the global logger. Safe to call once per process;
// subsequent calls are no-ops.
func Init(cfg *config.LoggerConfig) error {
	var err error
	once.Do(func() {
		globalLogger, err = New(cfg)
	})
	return err
}

// GetGlobal returns the global logger instance, or nil if Init was never called.
func GetGlobal() *Logger {
	return globalLogger
}

// Debug logs a debug message using the global logger.
func Debug(msg string, fields ...Field) {
	if globalLogger != nil {
		globalLogger.Debug(msg, fields...)
	}
}

// Info logs an info message using the global logger.
func Info(msg string, fields ...Field) {
	if globalLogger != nil {
		globalLogger.Info(msg, fields...)
	}
}

// Warn logs a warning message using the global logger.
func Warn(msg string, fields ...Field) {
	if globalLogger != nil {
		globalLogger.Warn(msg, fields...)
	}
}

// Error logs an error message using the global logger.
func Error(msg string, fields ...Field) {
	if globalLogger != nil {
		globalLogger.Error(msg, fields...)
	}
}

// Fatal logs a fatal message using the global logger and exits.
func Fatal(msg string, fields ...Field) {
	if globalLogger != nil {
		globalLogger.Fatal(msg, fields...)
	}
}

// Close closes the global logger, flushing any buffered entries.
func Close() error {
	if globalLogger != nil {
		return globalLogger.Close()
	}
	return nil
}
