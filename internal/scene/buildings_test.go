package scene

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const buildingsCSV = `lat,long,number,street,city,state,zip,ground_ft,height_ft
40.0,-75.0,12,Main St,Springfield,PA,19064,100,30
`

func TestFeetToDegrees(t *testing.T) {
	assert.InDelta(t, 0.0, FeetToDegrees(0), 1e-12)
	assert.InDelta(t, 100*.0003048*90/10000*10, FeetToDegrees(100), 1e-12)
}

func TestDecodeBuildings(t *testing.T) {
	doc, err := DecodeBuildings(strings.NewReader(buildingsCSV), DefaultRadii)
	require.NoError(t, err)

	assert.False(t, doc.Glyph)
	assert.True(t, doc.Reset)
	require.Len(t, doc.Steps, 1)
	ents := doc.Steps[0].Entities
	require.Len(t, ents, 2)

	ground, building := ents[0], ents[1]
	assert.Equal(t, Box, ground.Kind)
	assert.Equal(t, SaddleBrown, ground.Color)
	assert.Equal(t, DefaultDescription, ground.Description)
	assert.Equal(t, Silver, building.Color)

	g := FeetToDegrees(100)
	h := FeetToDegrees(30)
	assert.InDelta(t, 40.0-0.0001, ground.Position[0], 1e-12)
	assert.InDelta(t, -g, ground.Position[2], 1e-12)
	assert.InDelta(t, 0, ground.Position[5], 1e-12)
	assert.InDelta(t, -g-h, building.Position[2], 1e-12)
	assert.InDelta(t, -g, building.Position[5], 1e-12)

	assert.Contains(t, building.Description, "12 Main St")
	assert.Contains(t, building.Description, "Springfield, PA 19064")
	assert.Contains(t, building.Description, "Building Height: 30 ft")
}

func TestDecodeBuildingsErrors(t *testing.T) {
	_, err := DecodeBuildings(strings.NewReader(""), DefaultRadii)
	assert.Error(t, err)

	_, err = DecodeBuildings(strings.NewReader("lat,long,ground_ft,height_ft\nx,1,2,3\n"), DefaultRadii)
	assert.ErrorIs(t, err, ErrMalformedDocument)

	_, err = DecodeBuildings(strings.NewReader("lat,long,ground_ft,height_ft\n"), DefaultRadii)
	assert.Error(t, err)
}

func TestLoadBuildingsWithOutline(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "b.csv")
	outline := filepath.Join(dir, "o.csv")
	require.NoError(t, os.WriteFile(path, []byte(buildingsCSV), 0o644))
	require.NoError(t, os.WriteFile(outline, []byte("40,-75\n40.001,-75\n40.001,-75.001\n"), 0o644))

	doc, err := Load(path, LoadOptions{Mode: ModeBuildings, Outline: outline, Defaults: DefaultRadii})
	require.NoError(t, err)
	ents := doc.Steps[0].Entities
	require.Len(t, ents, 3)
	o := ents[2]
	assert.Equal(t, Polyline, o.Kind)
	assert.Equal(t, DarkGreen, o.Color)
	assert.Equal(t, "Outline", o.Description)
	assert.Equal(t, []float64{40, -75, 0, 40.001, -75, 0, 40.001, -75.001, 0}, o.Position)
}

func TestDecodeOutlineTooShort(t *testing.T) {
	_, err := DecodeOutline(strings.NewReader("1,2\n"), DefaultRadii)
	assert.ErrorIs(t, err, ErrMalformedDocument)
}
