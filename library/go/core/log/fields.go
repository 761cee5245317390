package log

import (
	"time"
)

// DefaultErrorFieldName is the default field name used for errors
const DefaultErrorFieldName = "error"

// FieldType is a type of data Field can represent
type FieldType int

const (
	// FieldTypeString is for a string
	FieldTypeString FieldType = iota
	// FieldTypeBoolean is for boolean
	FieldTypeBoolean
	// FieldTypeSigned is for signed integers
	FieldTypeSigned
	// FieldTypeUnsigned is for unsigned integers
	FieldTypeUnsigned
	// FieldTypeDuration is for time.Duration
	FieldTypeDuration
	// FieldTypeError is for an error
	FieldTypeError
	// FieldTypeAny is for any type
	FieldTypeAny
)

// Field stores one structured logging field
type Field struct {
	key      string
	ftype    FieldType
	string   string
	signed   int64
	unsigned uint64
	iface    any
}

// Key returns field key
func (f Field) Key() string { return f.key }

// Type returns field type
func (f Field) Type() FieldType { return f.ftype }

// String returns field string
func (f Field) String() string { return f.string }

// Bool returns field bool
func (f Field) Bool() bool { return f.signed != 0 }

// Signed returns field int64
func (f Field) Signed() int64 { return f.signed }

// Unsigned returns field uint64
func (f Field) Unsigned() uint64 { return f.unsigned }

// Duration returns field time.Duration
func (f Field) Duration() time.Duration { return time.Duration(f.signed) }

// Error returns field error
func (f Field) Error() error {
	if f.iface == nil {
		return nil
	}

	return f.iface.(error)
}

// Any returns contained data as is
func (f Field) Any() any { return f.iface }

// String constructs field with given key and value
func String(key, value string) Field {
	return Field{key: key, ftype: FieldTypeString, string: value}
}

// Bool constructs field of bool
func Bool(key string, value bool) Field {
	var b int64
	if value {
		b = 1
	}

	return Field{key: key, ftype: FieldTypeBoolean, signed: b}
}

// Int constructs field of int
func Int(key string, value int) Field {
	return Int64(key, int64(value))
}

// Int64 constructs field of int64
func Int64(key string, value int64) Field {
	return Field{key: key, ftype: FieldTypeSigned, signed: value}
}

// UInt16 constructs field of uint16
func UInt16(key string, value uint16) Field {
	return UInt64(key, uint64(value))
}

// UInt64 constructs field of uint64
func UInt64(key string, value uint64) Field {
	return Field{key: key, ftype: FieldTypeUnsigned, unsigned: value}
}

// Duration constructs field of time.Duration
func Duration(key string, value time.Duration) Field {
	return Field{key: key, ftype: FieldTypeDuration, signed: int64(value)}
}

// NamedError constructs field of error type
func NamedError(key string, value error) Field {
	return Field{key: key, ftype: FieldTypeError, iface: value}
}

// Error constructs field of error type with default field name
func Error(value error) Field {
	return NamedError(DefaultErrorFieldName, value)
}

// Any tries to deduce interface{} underlying type and constructs Field from it.
func Any(key string, value any) Field {
	switch val := value.(type) {
	case string:
		return String(key, val)
	case bool:
		return Bool(key, val)
	case int:
		return Int(key, val)
	case int64:
		return Int64(key, val)
	case uint64:
		return UInt64(key, val)
	case time.Duration:
		return Duration(key, val)
	case error:
		return NamedError(key, val)
	default:
		return Field{key: key, ftype: FieldTypeAny, iface: value}
	}
}
