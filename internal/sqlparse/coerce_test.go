package sqlparse

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/questlog/questlog/internal/record"
)

func TestCoerceLiteral(t *testing.T) {
	tests := []struct {
		raw  string
		want record.Value
	}{
		{`'hello'`, record.String("hello")},
		{`"hello"`, record.String("hello")},
		{`'123'`, record.String("123")},   // quoted stays a string
		{`'true'`, record.String("true")}, // quoted stays a string
		{`true`, record.Bool(true)},
		{`false`, record.Bool(false)},
		{`True`, record.String("True")}, // booleans are case-sensitive
		{`NULL`, record.Null{}},
		{`null`, record.Null{}},
		{`42`, record.Number(42)},
		{`-3.5`, record.Number(-3.5)},
		{`1e3`, record.Number(1000)},
		{`pending`, record.String("pending")}, // bare word falls back to string
		{`  spaced  `, record.String("spaced")},
		{`'it''s'`, record.String("it's")},
		{`'a\'b'`, record.String("a'b")},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CoerceLiteral(tt.raw), "CoerceLiteral(%q)", tt.raw)
	}
}
