package cli

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/questlog/questlog/internal/record"
)

func sampleRows() []*record.Row {
	a := record.NewRow()
	a.Set("id", record.String("q1"))
	a.Set("title", record.String("Slay the inbox"))
	a.Set("xp", record.Number(50))
	a.Set("done", record.Bool(false))

	// The second row carries a column the first one lacks.
	b := record.NewRow()
	b.Set("id", record.String("q2"))
	b.Set("title", record.String("Walk"))
	b.Set("xp", record.Number(5))
	b.Set("done", record.Bool(true))
	b.Set("notes", record.Null{})

	return []*record.Row{a, b}
}

func TestRenderRows_TextGolden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderRows(&buf, sampleRows(), "text"))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "render_text", buf.Bytes())
}

func TestRenderRows_JSONGolden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderRows(&buf, sampleRows(), "json"))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "render_json", buf.Bytes())
}

func TestRenderRows_EmptyText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderRows(&buf, nil, "text"))
	assert.Equal(t, "(no rows)\n", buf.String())
}

func TestRenderRows_EmptyJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderRows(&buf, []*record.Row{}, "json"))
	assert.Equal(t, "[]\n", buf.String())
}
