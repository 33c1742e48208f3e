package logger

import (
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"procdsl/src/core/config"
)

// newRotatingWriter builds the logger's file sink: a lumberjack writer
// rotating compiler.log by size and pruning rotated backups by count
// and age, the standard ecosystem pairing for a zapcore sink.
func newRotatingWriter(cfg *config.LoggerConfig) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   filepath.Join(cfg.Directory, "compiler.log"),
		MaxSize:    int(cfg.MaxSize),
		MaxAge:     cfg.MaxAge,
		MaxBackups: cfg.MaxBackups,
	}
}
