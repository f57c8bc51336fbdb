package schema

import "time"

// Kind is the value type discriminator.
type Kind uint8

const (
	KindNull     Kind = iota // Absent / option none
	KindBoolean              // true or false
	KindInteger              // 64-bit signed integer
	KindFloat                // 64-bit float
	KindString               // UTF-8 text
	KindDateTime             // Instant in time
	KindArray                // Ordered list of values
	KindStruct               // Named fields
	KindVariant              // Tagged union, one active case
	KindBlob                 // Raw bytes
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBoolean:
		return "boolean"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindDateTime:
		return "datetime"
	case KindArray:
		return "array"
	case KindStruct:
		return "struct"
	case KindVariant:
		return "variant"
	case KindBlob:
		return "blob"
	default:
		return "unknown"
	}
}

// Value is a single East value tree node.
type Value struct {
	Kind    Kind             // Value type
	Bool    bool             // For KindBoolean
	Int     int64            // For KindInteger
	Float   float64          // For KindFloat
	Str     string           // For KindString
	Time    time.Time        // For KindDateTime
	Items   []Value          // For KindArray
	Fields  map[string]Value // For KindStruct
	Case    string           // For KindVariant
	Payload *Value           // For KindVariant
	Bytes   []byte           // For KindBlob
}

// Null returns the null value.
func Null() Value {
	return Value{Kind: KindNull}
}

// Boolean returns a boolean value.
func Boolean(b bool) Value {
	return Value{Kind: KindBoolean, Bool: b}
}

// Integer returns an integer value.
func Integer(i int64) Value {
	return Value{Kind: KindInteger, Int: i}
}

// Float returns a float value.
func Float(f float64) Value {
	return Value{Kind: KindFloat, Float: f}
}

// String_ returns a string value.
// The underscore avoids clashing with the Stringer convention.
func String_(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// DateTime returns a datetime value, normalized to UTC.
func DateTime(t time.Time) Value {
	return Value{Kind: KindDateTime, Time: t.UTC()}
}

// Array returns an array value holding the given items.
func Array(items ...Value) Value {
	copied := make([]Value, len(items))
	copy(copied, items)
	return Value{Kind: KindArray, Items: copied}
}

// Struct returns a struct value holding the given fields.
// The map is copied so callers cannot mutate the value afterwards.
func Struct(fields map[string]Value) Value {
	copied := make(map[string]Value, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	return Value{Kind: KindStruct, Fields: copied}
}

// Variant returns a tagged-union value with the given active case.
func Variant(caseName string, payload Value) Value {
	return Value{Kind: KindVariant, Case: caseName, Payload: &payload}
}

// Blob returns a raw byte value. The bytes are copied.
func Blob(b []byte) Value {
	copied := make([]byte, len(b))
	copy(copied, b)
	return Value{Kind: KindBlob, Bytes: copied}
}

// Some wraps a value as a present option. Null is the absent case, so Some
// is the identity; it exists to make option-typed call sites explicit.
func Some(v Value) Value {
	return v
}

// None returns the absent option value.
func None() Value {
	return Null()
}

// IsNone reports whether the value is the absent option case.
func (v Value) IsNone() bool {
	return v.Kind == KindNull
}

// Option unwraps an optional value, reporting whether it is present.
func (v Value) Option() (Value, bool) {
	if v.Kind == KindNull {
		return Value{}, false
	}
	return v, true
}

// Equal reports structural equality of two values.
func Equal(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindNull:
		return true
	case KindBoolean:
		return a.Bool == b.Bool
	case KindInteger:
		return a.Int == b.Int
	case KindFloat:
		return a.Float == b.Float
	case KindString:
		return a.Str == b.Str
	case KindDateTime:
		return a.Time.Equal(b.Time)
	case KindArray:
		if len(a.Items) != len(b.Items) {
			return false
		}
		for i := range a.Items {
			if !Equal(a.Items[i], b.Items[i]) {
				return false
			}
		}
		return true
	case KindStruct:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		for k, av := range a.Fields {
			bv, ok := b.Fields[k]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	case KindVariant:
		if a.Case != b.Case {
			return false
		}
		if (a.Payload == nil) != (b.Payload == nil) {
			return false
		}
		if a.Payload == nil {
			return true
		}
		return Equal(*a.Payload, *b.Payload)
	case KindBlob:
		if len(a.Bytes) != len(b.Bytes) {
			return false
		}
		for i := range a.Bytes {
			if a.Bytes[i] != b.Bytes[i] {
				return false
			}
		}
		return true
	default:
		return false
	}
}
