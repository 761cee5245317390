package nop

import (
	"os"

	"github.com/ydb-platform/httpcore/library/go/core/log"
)

// Logger that does nothing
type Logger struct{}

var _ log.Logger = &Logger{}

// Trace implements Trace method of log.Logger interface
func (l *Logger) Trace(msg string, fields ...log.Field) {}

// Debug implements Debug method of log.Logger interface
func (l *Logger) Debug(msg string, fields ...log.Field) {}

// Info implements Info method of log.Logger interface
func (l *Logger) Info(msg string, fields ...log.Field) {}

// Warn implements Warn method of log.Logger interface
func (l *Logger) Warn(msg string, fields ...log.Field) {}

// Error implements Error method of log.Logger interface
func (l *Logger) Error(msg string, fields ...log.Field) {}

// Fatal implements Fatal method of log.Logger interface
func (l *Logger) Fatal(msg string, fields ...log.Field) {
	os.Exit(1)
}
