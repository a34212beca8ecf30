package tui

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"primview/internal/interp"
	"primview/internal/scene"
)

func TestCanvasArtifacts(t *testing.T) {
	c := NewCanvas()
	a := c.CreateArtifact(interp.Shape{
		Kind:    scene.Point,
		Points:  []r3.Vector{{X: 1, Y: 2, Z: 3}},
		Color:   scene.White,
		Opacity: 1,
		Radius:  0.1,
	})
	b := c.CreateBatchedArtifact(interp.PointBatch, []interp.Instance{
		{Points: []r3.Vector{{}}, Scale: 0.4},
		{Points: []r3.Vector{{X: 1}}, Scale: 0.2, RGBA: [][4]float64{{1, 0, 0, 1}}},
	})
	assert.NotEqual(t, interp.NoHandle, a)
	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, c.Len())

	batch := c.items[b]
	require.Len(t, batch.prims, 2)
	assert.True(t, batch.batch)
	assert.Equal(t, "points glyphs", batch.label)
	assert.InDelta(t, 0.2, batch.prims[0].radiusAt(0), 1e-12)
	assert.Equal(t, [4]float64{1, 1, 1, 1}, batch.prims[0].colorAt(0))
	assert.Equal(t, [4]float64{1, 0, 0, 1}, batch.prims[1].colorAt(3))

	c.RemoveArtifact(a)
	c.RemoveArtifact(a)
	assert.Equal(t, []interp.Handle{b}, c.Handles())
}

func TestCanvasFitsCamera(t *testing.T) {
	c := NewCanvas()
	c.CreateArtifact(interp.Shape{Kind: scene.Vector, Points: []r3.Vector{{}, {X: 2, Y: 2, Z: 2}}, Radius: 0.1})
	c.cam.zoom = 3
	c.cam.panX = 5
	c.ResetCameraToFit()

	assert.InDelta(t, 1, c.cam.center.X, 1e-12)
	assert.InDelta(t, 1, c.cam.center.Z, 1e-12)
	assert.InDelta(t, math.Sqrt(12)/2, c.cam.radius, 1e-12)
	assert.Equal(t, 1.0, c.cam.zoom)
	assert.Zero(t, c.cam.panX)

	empty := NewCanvas()
	empty.ResetCameraToFit()
	assert.Equal(t, 1.0, empty.cam.radius)
}

func TestCameraProjectsCentreToMiddle(t *testing.T) {
	cam := newCamera()
	cam.fit(r3.Vector{X: 5, Y: 5, Z: 5}, 1)
	x, y := cam.project(r3.Vector{X: 5, Y: 5, Z: 5}, 40, 10)
	assert.Equal(t, 40, x)
	assert.Equal(t, 20, y)

	// +Y is up on screen
	_, up := cam.project(r3.Vector{X: 5, Y: 6, Z: 5}, 40, 10)
	assert.Less(t, up, y)

	cam.yaw = math.Pi / 2
	rx, _ := cam.project(r3.Vector{X: 5, Y: 5, Z: 6}, 40, 10)
	assert.Greater(t, rx, x)
}

func TestNearestVertex(t *testing.T) {
	m := Model{canvas: NewCanvas()}
	near := m.canvas.CreateArtifact(interp.Shape{Kind: scene.Point, Points: []r3.Vector{{}}, Radius: 0.1})
	m.canvas.CreateArtifact(interp.Shape{Kind: scene.Point, Points: []r3.Vector{{X: 1, Y: 1}}, Radius: 0.1})
	m.canvas.ResetCameraToFit()

	cx, cy := m.canvas.cam.project(r3.Vector{}, 40, 10)
	h, bx, by, ok := m.nearestVertex(cx+1, cy, 40, 10)
	require.True(t, ok)
	assert.Equal(t, near, h)
	assert.Equal(t, cx, bx)
	assert.Equal(t, cy, by)

	_, _, _, ok = Model{canvas: NewCanvas()}.nearestVertex(0, 0, 40, 10)
	assert.False(t, ok)
}

func TestEntityHex(t *testing.T) {
	assert.Equal(t, "#ffffff", entityHex([4]float64{1, 1, 1, 1}))
	assert.Equal(t, background.Hex(), entityHex([4]float64{1, 0, 0, 0}))
}

func TestCanvasClearAxisFrame(t *testing.T) {
	c := NewCanvas()
	c.SetAxisFrame(interp.Frame{MinX: -1, MaxX: 1})
	_, ok := c.Frame()
	require.True(t, ok)
	c.ClearAxisFrame()
	_, ok = c.Frame()
	assert.False(t, ok)
}

func TestInspectNearestUsesViewport(t *testing.T) {
	m := Model{canvas: NewCanvas(), width: 100, height: 30}
	m.canvas.CreateArtifact(interp.Shape{Kind: scene.Point, Points: []r3.Vector{{X: -1}}})
	mid := m.canvas.CreateArtifact(interp.Shape{Kind: scene.Point, Points: []r3.Vector{{}}})
	m.canvas.CreateArtifact(interp.Shape{Kind: scene.Point, Points: []r3.Vector{{X: 1}}})
	m.canvas.ResetCameraToFit()

	h, ok := m.inspectNearest()
	require.True(t, ok)
	assert.Equal(t, mid, h)
}
