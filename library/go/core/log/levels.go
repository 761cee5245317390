package log

import (
	"fmt"
	"strings"
)

// Level of logging
type Level int

// Standard log levels
const (
	TraceLevel Level = iota
	DebugLevel
	InfoLevel
	WarnLevel
	ErrorLevel
	FatalLevel
)

// String values for standard log levels
const (
	TraceString = "trace"
	DebugString = "debug"
	InfoString  = "info"
	WarnString  = "warn"
	ErrorString = "error"
	FatalString = "fatal"
)

// String implements Stringer interface for Level
func (l Level) String() string {
	switch l {
	case TraceLevel:
		return TraceString
	case DebugLevel:
		return DebugString
	case InfoLevel:
		return InfoString
	case WarnLevel:
		return WarnString
	case ErrorLevel:
		return ErrorString
	case FatalLevel:
		return FatalString
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// UnmarshalText lets levels be read straight from config files
func (l *Level) UnmarshalText(text []byte) error {
	level, err := ParseLevel(string(text))
	if err != nil {
		return err
	}

	*l = level

	return nil
}

// ParseLevel parses log level from string (case-insensitive)
func ParseLevel(l string) (Level, error) {
	switch strings.ToLower(l) {
	case TraceString:
		return TraceLevel, nil
	case DebugString:
		return DebugLevel, nil
	case InfoString:
		return InfoLevel, nil
	case WarnString:
		return WarnLevel, nil
	case ErrorString:
		return ErrorLevel, nil
	case FatalString:
		return FatalLevel, nil
	default:
		return FatalLevel, fmt.Errorf("unknown log level: %s", l)
	}
}
