package dlog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"io"
	"os"
	"strings"
)

type Logger struct {
	*zap.SugaredLogger
}

type LoggerOption struct {
	f func(*loggerConfig)
}

type loggerConfig struct {
	output   io.Writer
	prefix   string
	level    zapcore.Level
	encoding string
}

// NewLogger is a thin wrapper around a zap SugaredLogger.
// Debug functions are only enabled with a build flag of //go:build debug;
// they are otherwise compiled out, and the default level is raised to Info.
func NewLogger(options ...LoggerOption) *Logger {
	c := &loggerConfig{
		output:   os.Stderr,
		level:    defaultLevel,
		encoding: "console",
	}

	for _, option := range options {
		option.f(c)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if c.encoding == "json" {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(c.output), c.level)

	return &Logger{zap.New(core, zap.AddCaller()).Named(c.prefix).Sugar()}
}

// NewNopLogger returns a Logger that discards everything
func NewNopLogger() *Logger {
	return &Logger{zap.NewNop().Sugar()}
}

func LoggerSetOutput(w io.Writer) LoggerOption {
	return LoggerOption{
		func(c *loggerConfig) {
			c.output = w
		},
	}
}

func LoggerSetPrefix(p string) LoggerOption {
	return LoggerOption{
		func(c *loggerConfig) {
			c.prefix = strings.TrimRight(p, ": ")
		},
	}
}

// LoggerSetLevel accepts zap level names ("debug", "info", "warn", "error").
// Unknown names leave the default level in place.
func LoggerSetLevel(level string) LoggerOption {
	return LoggerOption{
		func(c *loggerConfig) {
			var l zapcore.Level
			if err := l.UnmarshalText([]byte(level)); err != nil {
				return
			}
			c.level = l
		},
	}
}

// LoggerSetEncoding selects "json" or "console" output
func LoggerSetEncoding(encoding string) LoggerOption {
	return LoggerOption{
		func(c *loggerConfig) {
			c.encoding = encoding
		},
	}
}
