package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupPrefersShortAlias(t *testing.T) {
	fields := map[string]any{"t": "p", "p": []any{0.0, 0.0, 0.0}, "radius": 2.0, "r": 5.0}

	v, ok := Lookup(fields, KeyRadius)
	require.True(t, ok)
	assert.Equal(t, 5.0, v)

	e, err := Resolver{Defaults: DefaultRadii}.Entity(fields)
	require.NoError(t, err)
	assert.Equal(t, 5.0, e.Radius)
}

func TestAliasesShortFirst(t *testing.T) {
	for _, k := range []Key{KeyType, KeyPosition, KeyColor, KeyOpacity, KeyRadius, KeyDescription} {
		a := Aliases(k)
		require.Len(t, a, 2, k)
		assert.Len(t, a[0], 1, k)
		assert.Equal(t, string(k), a[1])
	}
}

func TestResolveDefaults(t *testing.T) {
	res := Resolver{Defaults: DefaultRadii}
	point := map[string]any{"type": "point", "position": []any{1.0, 2.0, 3.0}}

	e, err := res.Entity(point)
	require.NoError(t, err)
	assert.Equal(t, Point, e.Kind)
	assert.Equal(t, []float64{1, 2, 3}, e.Position)
	assert.Equal(t, White, e.Color)
	assert.Equal(t, 1.0, e.Opacity)
	assert.Equal(t, 0.1, e.Radius)
	assert.Equal(t, DefaultDescription, e.Description)

	vec := map[string]any{"t": "v", "p": []any{0.0, 0.0, 0.0, 1.0, 1.0, 1.0}}
	r, err := res.Resolve(vec, KeyRadius)
	require.NoError(t, err)
	assert.Equal(t, 0.025, r)
}

func TestResolveDoesNotMutateFields(t *testing.T) {
	fields := map[string]any{"t": "p", "p": []any{0.0, 0.0, 0.0}}
	_, err := Resolver{Defaults: DefaultRadii}.Entity(fields)
	require.NoError(t, err)
	assert.Len(t, fields, 2)
}

func TestResolveExplicitValues(t *testing.T) {
	fields := map[string]any{
		"type":        "polyline",
		"position":    []any{0.0, 0.0, 0.0, 1.0, 0.0, 0.0, 1.0, 1.0, 0.0},
		"color":       []any{1.0, 0.0, 0.0},
		"opacity":     0.5,
		"description": "corner",
	}
	e, err := Resolver{Defaults: DefaultRadii}.Entity(fields)
	require.NoError(t, err)
	assert.Equal(t, Polyline, e.Kind)
	assert.Equal(t, Color{1, 0, 0}, e.Color)
	assert.Equal(t, 0.5, e.Opacity)
	assert.Equal(t, "corner", e.Description)
	assert.Len(t, e.Points(), 3)
}

func TestResolveMissingRequired(t *testing.T) {
	res := Resolver{Defaults: DefaultRadii}

	_, err := res.Entity(map[string]any{"p": []any{0.0, 0.0, 0.0}})
	assert.ErrorIs(t, err, ErrMissingRequiredField)

	_, err = res.Entity(map[string]any{"t": "p"})
	assert.ErrorIs(t, err, ErrMissingRequiredField)
}

func TestParseKind(t *testing.T) {
	cases := map[string]Kind{
		"p": Point, "point": Point, "POINT": Point,
		"v": Vector, "vector": Vector,
		"y": Polyline, "polyline": Polyline,
	}
	for tag, want := range cases {
		k, err := ParseKind(tag)
		require.NoError(t, err, tag)
		assert.Equal(t, want, k, tag)
	}
	_, err := ParseKind("cube")
	assert.ErrorIs(t, err, ErrUnrecognizedEntityType)
	_, err = ParseKind("box")
	assert.ErrorIs(t, err, ErrUnrecognizedEntityType)
}

func TestPositionArity(t *testing.T) {
	res := Resolver{Defaults: DefaultRadii}
	bad := []map[string]any{
		{"t": "p", "p": []any{0.0, 0.0}},
		{"t": "v", "p": []any{0.0, 0.0, 0.0}},
		{"t": "y", "p": []any{0.0, 0.0, 0.0}},
		{"t": "y", "p": []any{0.0, 0.0, 0.0, 1.0, 1.0, 1.0, 2.0}},
		{"t": "p", "p": []any{"a", 0.0, 0.0}},
		{"t": "p", "p": []any{0.0, 0.0, 0.0}, "c": []any{1.0, 1.0}},
	}
	for _, f := range bad {
		_, err := res.Entity(f)
		assert.ErrorIs(t, err, ErrMalformedDocument, f)
	}
}
