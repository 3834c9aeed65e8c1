package record

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Row is one schemaless record: a mapping from column name to Value that
// remembers the order columns were first set. Column order is preserved
// through JSON marshal/unmarshal so diagnostic output stays stable across
// persistence round trips.
type Row struct {
	cols []string
	vals map[string]Value
}

// NewRow creates an empty row.
func NewRow() *Row {
	return &Row{vals: make(map[string]Value)}
}

// Set writes a column value. A new column is appended to the column order;
// an existing column keeps its position.
func (r *Row) Set(col string, v Value) {
	if v == nil {
		v = Null{}
	}
	if _, ok := r.vals[col]; !ok {
		r.cols = append(r.cols, col)
	}
	r.vals[col] = v
}

// Get returns the value of a column and whether the column is present.
func (r *Row) Get(col string) (Value, bool) {
	v, ok := r.vals[col]
	return v, ok
}

// Has reports whether the column is present in the row.
func (r *Row) Has(col string) bool {
	_, ok := r.vals[col]
	return ok
}

// Columns returns the column names in insertion order. The returned slice
// is a copy.
func (r *Row) Columns() []string {
	out := make([]string, len(r.cols))
	copy(out, r.cols)
	return out
}

// Len returns the number of columns in the row.
func (r *Row) Len() int {
	return len(r.cols)
}

// Clone returns an independent copy of the row. Values are immutable
// scalars, so a shallow value copy is a deep copy.
func (r *Row) Clone() *Row {
	out := &Row{
		cols: make([]string, len(r.cols)),
		vals: make(map[string]Value, len(r.vals)),
	}
	copy(out.cols, r.cols)
	for k, v := range r.vals {
		out.vals[k] = v
	}
	return out
}

// Equal reports whether two rows have the same columns in the same order
// with equal values.
func (r *Row) Equal(other *Row) bool {
	if r == nil || other == nil {
		return r == other
	}
	if len(r.cols) != len(other.cols) {
		return false
	}
	for i, col := range r.cols {
		if other.cols[i] != col {
			return false
		}
		if r.vals[col] != other.vals[col] {
			return false
		}
	}
	return true
}

// MarshalJSON implements json.Marshaler, emitting columns in insertion
// order.
func (r *Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, col := range r.cols {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(col)
		if err != nil {
			return nil, fmt.Errorf("marshal column %q: %w", col, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(r.vals[col])
		if err != nil {
			return nil, fmt.Errorf("marshal value of %q: %w", col, err)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler, preserving the key order of
// the document. Non-scalar values (which the engine never writes) are
// skipped and stored as null.
func (r *Row) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("decode row: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("decode row: expected object, got %v", tok)
	}

	r.cols = nil
	r.vals = make(map[string]Value)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("decode row key: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("decode row key: unexpected token %v", keyTok)
		}

		valTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("decode row value for %q: %w", key, err)
		}
		switch t := valTok.(type) {
		case nil:
			r.Set(key, Null{})
		case string:
			r.Set(key, String(t))
		case float64:
			r.Set(key, Number(t))
		case bool:
			r.Set(key, Bool(t))
		case json.Delim:
			// Nested structure: drain it and record null.
			if err := skipValue(dec, t); err != nil {
				return fmt.Errorf("skip nested value for %q: %w", key, err)
			}
			r.Set(key, Null{})
		default:
			r.Set(key, Null{})
		}
	}

	// Consume closing brace.
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("decode row close: %w", err)
	}
	return nil
}

// skipValue drains the remainder of a nested array or object whose opening
// delimiter has already been read.
func skipValue(dec *json.Decoder, open json.Delim) error {
	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		if d, ok := tok.(json.Delim); ok {
			switch d {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
		}
	}
	return nil
}

// Table is the in-memory form of one persisted table: an ordered sequence
// of rows. Row position is identity; UPDATE replaces a row in place and
// DELETE compacts the sequence.
type Table []*Row

// Clone returns a deep copy of the table.
func (t Table) Clone() Table {
	out := make(Table, len(t))
	for i, row := range t {
		out[i] = row.Clone()
	}
	return out
}

// Marshal serializes the table as a JSON array of ordered row objects.
// This is the persisted on-disk representation.
func (t Table) Marshal() ([]byte, error) {
	if t == nil {
		t = Table{}
	}
	return json.Marshal([]*Row(t))
}

// UnmarshalTable deserializes a persisted table blob.
func UnmarshalTable(data []byte) (Table, error) {
	var rows []*Row
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("unmarshal table: %w", err)
	}
	return Table(rows), nil
}
