package log

// Logger is the structured logger used across the server.
type Logger interface {
	// Trace logs at Trace log level using fields
	Trace(msg string, fields ...Field)
	// Debug logs at Debug log level using fields
	Debug(msg string, fields ...Field)
	// Info logs at Info log level using fields
	Info(msg string, fields ...Field)
	// Warn logs at Warn log level using fields
	Warn(msg string, fields ...Field)
	// Error logs at Error log level using fields
	Error(msg string, fields ...Field)
	// Fatal logs at Fatal log level using fields
	Fatal(msg string, fields ...Field)
}

// LoggerWith provides interface for logger modifications.
type LoggerWith interface {
	// With implements 'With'
	With(fields ...Field) Logger
}

// With for loggers that implement LoggerWith interface, returns logger that
// always adds provided key/value to every log entry. Otherwise returns same logger.
func With(l Logger, fields ...Field) Logger {
	e, ok := l.(LoggerWith)
	if !ok {
		return l
	}

	return e.With(fields...)
}

// WriteAt writes message at given level
func WriteAt(l Logger, lvl Level, msg string, fields ...Field) {
	switch lvl {
	case TraceLevel:
		l.Trace(msg, fields...)
	case DebugLevel:
		l.Debug(msg, fields...)
	case InfoLevel:
		l.Info(msg, fields...)
	case WarnLevel:
		l.Warn(msg, fields...)
	case ErrorLevel:
		l.Error(msg, fields...)
	case FatalLevel:
		l.Fatal(msg, fields...)
	}
}
