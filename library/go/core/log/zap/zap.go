package zap

import (
	"github.com/ydb-platform/httpcore/library/go/core/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// callerSkip is number of stack frames to skip when logging caller
	callerSkip = 1
)

// Logger implements log.Logger interface
type Logger struct {
	L *zap.Logger
}

var _ log.Logger = &Logger{}
var _ log.LoggerWith = &Logger{}

// New constructs zap-based logger from provided config
func New(cfg zap.Config) (*Logger, error) {
	zl, err := cfg.Build(zap.AddCallerSkip(callerSkip))
	if err != nil {
		return nil, err
	}

	return &Logger{
		L: zl,
	}, nil
}

// NewWithCore constructs zap-based logger from provided core
func NewWithCore(core zapcore.Core, options ...zap.Option) *Logger {
	options = append(options, zap.AddCallerSkip(callerSkip))

	return &Logger{L: zap.New(core, options...)}
}

// ConsoleConfig returns zap config for logging to console (zap's console encoder)
func ConsoleConfig(level log.Level) zap.Config {
	return zap.Config{
		Level:            zap.NewAtomicLevelAt(ZapifyLevel(level)),
		Encoding:         "console",
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey:     "msg",
			LevelKey:       "level",
			TimeKey:        "ts",
			CallerKey:      "caller",
			NameKey:        "name",
			EncodeLevel:    zapcore.CapitalColorLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
	}
}

// With returns logger that always adds provided key/value to every log entry
func (l *Logger) With(fields ...log.Field) log.Logger {
	return &Logger{
		L: l.L.With(zapifyFields(fields...)...),
	}
}

// Trace logs at Trace log level using fields
func (l *Logger) Trace(msg string, fields ...log.Field) {
	if ce := l.L.Check(zap.DebugLevel, msg); ce != nil {
		ce.Write(zapifyFields(fields...)...)
	}
}

// Debug logs at Debug log level using fields
func (l *Logger) Debug(msg string, fields ...log.Field) {
	if ce := l.L.Check(zap.DebugLevel, msg); ce != nil {
		ce.Write(zapifyFields(fields...)...)
	}
}

// Info logs at Info log level using fields
func (l *Logger) Info(msg string, fields ...log.Field) {
	if ce := l.L.Check(zap.InfoLevel, msg); ce != nil {
		ce.Write(zapifyFields(fields...)...)
	}
}

// Warn logs at Warn log level using fields
func (l *Logger) Warn(msg string, fields ...log.Field) {
	if ce := l.L.Check(zap.WarnLevel, msg); ce != nil {
		ce.Write(zapifyFields(fields...)...)
	}
}

// Error logs at Error log level using fields
func (l *Logger) Error(msg string, fields ...log.Field) {
	if ce := l.L.Check(zap.ErrorLevel, msg); ce != nil {
		ce.Write(zapifyFields(fields...)...)
	}
}

// Fatal logs at Fatal log level using fields
func (l *Logger) Fatal(msg string, fields ...log.Field) {
	if ce := l.L.Check(zap.FatalLevel, msg); ce != nil {
		ce.Write(zapifyFields(fields...)...)
	}
}
