//go:build !debug
// +build !debug

package dlog

import "go.uber.org/zap/zapcore"

const defaultLevel = zapcore.InfoLevel

// Debugf no-op for release builds
func (l *Logger) Debugf(format string, v ...interface{}) {}

// Debug no-op for release builds
func (l *Logger) Debug(v ...interface{}) {}

// Debugw no-op for release builds
func (l *Logger) Debugw(msg string, keysAndValues ...interface{}) {}
