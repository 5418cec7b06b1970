//go:build debug
// +build debug

package dlog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultLevel = zapcore.DebugLevel

// debugger skips this file's frame so the caller is reported
func (l *Logger) debugger() *zap.SugaredLogger {
	return l.SugaredLogger.WithOptions(zap.AddCallerSkip(1))
}

// Debugf logs at debug level.
// Arguments are handled in the manner of fmt.Printf.
func (l *Logger) Debugf(format string, v ...interface{}) {
	l.debugger().Debugf(format, v...)
}

// Debug logs at debug level.
// Arguments are handled in the manner of fmt.Print.
func (l *Logger) Debug(v ...interface{}) {
	l.debugger().Debug(v...)
}

// Debugw logs at debug level with structured key/value pairs.
func (l *Logger) Debugw(msg string, keysAndValues ...interface{}) {
	l.debugger().Debugw(msg, keysAndValues...)
}
