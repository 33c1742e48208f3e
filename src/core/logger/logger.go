package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"procdsl/src/core/config"
)

// Logger wraps a zap.Logger with the rotating file writer and level
// plumbing the compiler's components expect.
type Logger struct {
	zap    *zap.Logger
	writer *lumberjack.Logger
	mu     sync.Mutex
}

// New creates a new logger instance from LoggerConfig.
func New(cfg *config.LoggerConfig) (*Logger, error) {
	if err := os.MkdirAll(cfg.Directory, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	writer := newRotatingWriter(cfg)

	var sink io.Writer = writer
	if cfg.EnableConsole {
		sink = io.MultiWriter(os.Stdout, writer)
	}

	encoder := NewEncoder(cfg.Format)
	level := parseZapLevel(cfg.Level)
	core := zapcore.NewCore(encoder, zapcore.AddSync(sink), level)

	return &Logger{
		zap:    zap.New(core),
		writer: writer,
	}, nil
}

func parseZapLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	case "fatal":
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

func (l *Logger) Debug(msg string, fields ...Field) { l.zap.Debug(msg, fields...) }
func (l *Logger) Info(msg string, fields ...Field)  { l.zap.Info(msg, fields...) }
func (l *Logger) Warn(msg string, fields ...Field)  { l.zap.Warn(msg, fields...) }
func (l *Logger) Error(msg string, fields ...Field) { l.zap.Error(msg, fields...) }
func (l *Logger) Fatal(msg string, fields ...Field) { l.zap.Fatal(msg, fields...) }

// SetLevel does not change anything: it is a no-op placeholder
// retained for API parity. zap cores are immutable,
// so a level change means rebuilding the core — callers needing that
// should construct a new Logger via New.
func (l *Logger) SetLevel(level string) {}

// Close flushes buffered entries and closes the underlying file.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	_ = l.zap.Sync()
	if l.writer != nil {
		return l.writer.Close()
	}
	return nil
}

// String creates a string field.
func String(key, value string) Field { return zap.String(key, value) }

// Int creates an int field.
func Int(key string, value int) Field { return zap.Int(key, value) }

// Int64 creates an int64 field.
func Int64(key string, value int64) Field { return zap.Int64(key, value) }

// Float64 creates a float64 field.
func Float64(key string, value float64) Field { return zap.Float64(key, value) }

// Bool creates a bool field.
func Bool(key string, value bool) Field { return zap.Bool(key, value) }

// Any creates a field holding any value.
func Any(key string, value interface{}) Field { return zap.Any(key, value) }

// Err creates an error field.
func Err(err error) Field { return zap.Error(err) }
