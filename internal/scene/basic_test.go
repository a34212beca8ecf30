package scene

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBasicComma(t *testing.T) {
	src := "# header\n1,2,3\n\n0, 0, 0, 1, 1, 1\n"
	doc, err := DecodeBasic(strings.NewReader(src), DefaultRadii)
	require.NoError(t, err)

	assert.True(t, doc.Glyph)
	assert.True(t, doc.Reset)
	require.Len(t, doc.Steps, 1)
	ents := doc.Steps[0].Entities
	require.Len(t, ents, 2)

	assert.Equal(t, Point, ents[0].Kind)
	assert.Equal(t, []float64{1, 2, 3}, ents[0].Position)
	assert.Equal(t, 0.1, ents[0].Radius)
	assert.Equal(t, White, ents[0].Color)

	assert.Equal(t, Vector, ents[1].Kind)
	assert.Equal(t, 0.025, ents[1].Radius)
}

func TestDecodeBasicWhitespace(t *testing.T) {
	doc, err := DecodeBasic(strings.NewReader("1.0 2.0 3.0\n# c\n4 5 6 7 8 9\n"), DefaultRadii)
	require.NoError(t, err)
	ents := doc.Steps[0].Entities
	require.Len(t, ents, 2)
	assert.Equal(t, Point, ents[0].Kind)
	assert.Equal(t, []float64{1, 2, 3}, ents[0].Position)
	assert.Equal(t, Vector, ents[1].Kind)
}

func TestDecodeBasicBadRows(t *testing.T) {
	for _, src := range []string{
		"1,2,3,4\n",
		"1 2\n",
		"1,x,3\n",
		"# only a comment\n",
		"",
	} {
		_, err := DecodeBasic(strings.NewReader(src), DefaultRadii)
		assert.ErrorIs(t, err, ErrMalformedDocument, "%q", src)
	}
}

func TestDecodeBasicKeepsCommaError(t *testing.T) {
	_, err := DecodeBasic(strings.NewReader("1,2,3\n1,2,3,4\n"), DefaultRadii)
	require.ErrorIs(t, err, ErrMalformedDocument)
	assert.Contains(t, err.Error(), "line 2: expected 3 or 6 values, got 4")
	assert.NotContains(t, err.Error(), "ParseFloat")
}
