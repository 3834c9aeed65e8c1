package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollectParams_SeparateArgs(t *testing.T) {
	params := collectParams([]string{"completed", "2024-01-01", "42"}, "")
	assert.Equal(t, []any{"completed", "2024-01-01", float64(42)}, params)
}

func TestCollectParams_CommaList(t *testing.T) {
	params := collectParams(nil, `completed, '2024-01-01', q1`)
	assert.Equal(t, []any{"completed", "2024-01-01", "q1"}, params)
}

func TestCollectParams_JSONValueSurvivesList(t *testing.T) {
	params := collectParams(nil, `w1, '{"biome":"forest","rivers":[1,2]}'`)
	assert.Equal(t, []any{"w1", `{"biome":"forest","rivers":[1,2]}`}, params)
}

func TestCollectParams_CoercesKinds(t *testing.T) {
	params := collectParams([]string{"true", "NULL", "3.5", "'50'"}, "")
	assert.Equal(t, []any{true, nil, 3.5, "50"}, params)
}

func TestCollectParams_Empty(t *testing.T) {
	assert.Nil(t, collectParams(nil, ""))
}
