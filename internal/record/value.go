package record

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Value is a sealed interface over the four scalar kinds a row field can
// hold: null, string, number, and boolean. Only types in this package
// implement it, which keeps type switches in the engine exhaustive.
//
// Tables are schemaless: the kind of a column is whatever was last written
// to it. The JSON encoding of a Value is the natural JSON scalar, so a
// persisted table round-trips without losing kind information.
type Value interface {
	recordValue() // Marker method - seals interface to this package
}

// Null represents an absent or explicitly NULL field value.
type Null struct{}

func (Null) recordValue() {}

// MarshalJSON implements json.Marshaler for Null.
func (Null) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

// String represents a string field value.
type String string

func (String) recordValue() {}

// Number represents a numeric field value. Stored as float64 to match the
// JSON number model used by the persisted table format.
type Number float64

func (Number) recordValue() {}

// MarshalJSON implements json.Marshaler for Number.
// Integral values are rendered without a decimal point so that a stored
// integer reads back looking like one.
func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(n.Render()), nil
}

// Bool represents a boolean field value.
type Bool bool

func (Bool) recordValue() {}

// Render returns the display form of a value: the form used for string
// comparison in predicates and for text output. Strings render without
// quotes.
func Render(v Value) string {
	switch t := v.(type) {
	case nil, Null:
		return "NULL"
	case String:
		return string(t)
	case Number:
		return t.Render()
	case Bool:
		if t {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Render returns the shortest decimal form of the number, with no decimal
// point for integral values.
func (n Number) Render() string {
	f := float64(n)
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// FromGo converts a caller-supplied Go value (a positional parameter, a
// seed field) into a Value. Unhandled kinds fall back to their fmt
// rendering as a string rather than failing, matching the engine's
// fail-soft posture.
func FromGo(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null{}
	case Value:
		return t
	case string:
		return String(t)
	case bool:
		return Bool(t)
	case int:
		return Number(t)
	case int32:
		return Number(t)
	case int64:
		return Number(t)
	case float32:
		return Number(t)
	case float64:
		return Number(t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return String(t.String())
		}
		return Number(f)
	default:
		return String(fmt.Sprintf("%v", v))
	}
}

// Unwrap converts a Value back to the plain Go value callers expect:
// nil, string, float64, or bool.
func Unwrap(v Value) any {
	switch t := v.(type) {
	case nil, Null:
		return nil
	case String:
		return string(t)
	case Number:
		return float64(t)
	case Bool:
		return bool(t)
	default:
		return nil
	}
}
