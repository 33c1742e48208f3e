package logger

import "go.uber.org/zap"

// Field is a structured log field, backed by zap.Field.
type Field = zap.Field

// ComponentLogger is the logging surface every compiler component depends on.
type ComponentLogger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Fatal(msg string, fields ...Field)
}

// NewComponentLogger creates a new component logger using the global logger.
func NewComponentLogger(component string) ComponentLogger {
	return &componentLogger{component: component}
}

type componentLogger struct {
	component string
}

func (cl *componentLogger) Debug(msg string, fields ...Field) {
	Debug(msg, cl.withComponent(fields)...)
}

func (cl *componentLogger) Info(msg string, fields ...Field) {
	Info(msg, cl.withComponent(fields)...)
}

func (cl *componentLogger) Warn(msg string, fields ...Field) {
	Warn(msg, cl.withComponent(fields)...)
}

func (cl *componentLogger) Error(msg string, fields ...Field) {
	Error(msg, cl.withComponent(fields)...)
}

func (cl *componentLogger) Fatal(msg string, fields ...Field) {
	Fatal(msg, cl.withComponent(fields)...)
}

func (cl *componentLogger) withComponent(fields []Field) []Field {
	return append([]Field{String("component", cl.component)}, fields...)
}
