package sqlparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitList_TopLevelOnly(t *testing.T) {
	got := SplitList("a, 'b,c', (d,e)")
	assert.Equal(t, []string{"a", "'b,c'", "(d,e)"}, got)
}

func TestSplitList_NestedBrackets(t *testing.T) {
	got := SplitList(`'w1', {"rivers":[1,2],"caves":{"deep":true}}, 5`)
	assert.Equal(t, []string{
		"'w1'",
		`{"rivers":[1,2],"caves":{"deep":true}}`,
		"5",
	}, got)
}

func TestSplitList_QuotedCommasAndEscapes(t *testing.T) {
	got := SplitList(`"a,b", 'c\'d,e', f`)
	assert.Equal(t, []string{`"a,b"`, `'c\'d,e'`, "f"}, got)
}

func TestSplitList_SingleItem(t *testing.T) {
	assert.Equal(t, []string{"only"}, SplitList("  only  "))
}

func TestSplitList_Empty(t *testing.T) {
	assert.Nil(t, SplitList(""))
	assert.Nil(t, SplitList("   "))
}

func TestSplitList_KeepsEmptyMiddleItems(t *testing.T) {
	assert.Equal(t, []string{"a", "", "b"}, SplitList("a,,b"))
}
