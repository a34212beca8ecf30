package tui

import (
	"math"

	"github.com/golang/geo/r3"

	"primview/internal/interp"
	"primview/internal/scene"
)

// prim is one drawable piece of an artifact. Batched artifacts expand into
// one prim per instance.
type prim struct {
	kind   scene.Kind
	points []r3.Vector
	rgba   [][4]float64 // per point; a single entry applies to all
	radius []float64
}

func (p prim) colorAt(i int) [4]float64 {
	if i < len(p.rgba) {
		return p.rgba[i]
	}
	return p.rgba[len(p.rgba)-1]
}

func (p prim) radiusAt(i int) float64 {
	if i < len(p.radius) {
		return p.radius[i]
	}
	return p.radius[len(p.radius)-1]
}

type artifact struct {
	handle interp.Handle
	label  string
	batch  bool
	prims  []prim
}

// Canvas is the viewer's rendering collaborator. It keeps the artifacts the
// interpreter creates, the axis frame, and the camera used to draw them.
type Canvas struct {
	next  interp.Handle
	items map[interp.Handle]*artifact
	order []interp.Handle

	frame    interp.Frame
	hasFrame bool

	cam camera
}

// NewCanvas returns an empty canvas with a unit camera.
func NewCanvas() *Canvas {
	return &Canvas{
		items: map[interp.Handle]*artifact{},
		cam:   newCamera(),
	}
}

func (c *Canvas) add(a *artifact) interp.Handle {
	c.next++
	a.handle = c.next
	c.items[a.handle] = a
	c.order = append(c.order, a.handle)
	return a.handle
}

func (c *Canvas) CreateArtifact(s interp.Shape) interp.Handle {
	return c.add(&artifact{
		label: s.Kind.String(),
		prims: []prim{{
			kind:   s.Kind,
			points: s.Points,
			rgba:   [][4]float64{{s.Color[0], s.Color[1], s.Color[2], s.Opacity}},
			radius: []float64{s.Radius},
		}},
	})
}

func (c *Canvas) CreateBatchedArtifact(kind interp.BatchKind, instances []interp.Instance) interp.Handle {
	a := &artifact{label: kind.String() + " glyphs", batch: true}
	for _, in := range instances {
		p := prim{points: in.Points, rgba: in.RGBA, radius: in.Radii}
		if kind == interp.PointBatch {
			p.kind = scene.Point
			p.radius = []float64{in.Scale / 2}
		} else {
			p.kind = scene.Polyline
		}
		if len(p.rgba) == 0 {
			p.rgba = [][4]float64{{1, 1, 1, 1}}
		}
		if len(p.radius) == 0 {
			p.radius = []float64{0}
		}
		a.prims = append(a.prims, p)
	}
	return c.add(a)
}

func (c *Canvas) RemoveArtifact(h interp.Handle) {
	if _, ok := c.items[h]; !ok {
		return
	}
	delete(c.items, h)
	for i, o := range c.order {
		if o == h {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

func (c *Canvas) SetAxisFrame(f interp.Frame) {
	c.frame, c.hasFrame = f, true
}

func (c *Canvas) ClearAxisFrame() {
	c.frame, c.hasFrame = interp.Frame{}, false
}

// ResetCameraToFit centres the camera on everything visible and resets
// zoom and pan. Orientation is kept.
func (c *Canvas) ResetCameraToFit() {
	lo := r3.Vector{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	hi := r3.Vector{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	grow := func(p r3.Vector) {
		lo = r3.Vector{X: math.Min(lo.X, p.X), Y: math.Min(lo.Y, p.Y), Z: math.Min(lo.Z, p.Z)}
		hi = r3.Vector{X: math.Max(hi.X, p.X), Y: math.Max(hi.Y, p.Y), Z: math.Max(hi.Z, p.Z)}
	}
	for _, h := range c.order {
		for _, p := range c.items[h].prims {
			for _, pt := range p.points {
				grow(pt)
			}
		}
	}
	if c.hasFrame {
		grow(r3.Vector{X: c.frame.MinX, Y: c.frame.MinY, Z: c.frame.MinZ})
		grow(r3.Vector{X: c.frame.MaxX, Y: c.frame.MaxY, Z: c.frame.MaxZ})
	}
	if lo.X > hi.X {
		c.cam.fit(r3.Vector{}, 1)
		return
	}
	c.cam.fit(lo.Add(hi).Mul(0.5), hi.Sub(lo).Norm()/2)
}

// Len returns the number of artifacts on the canvas.
func (c *Canvas) Len() int { return len(c.order) }

// Handles returns artifact handles in creation order.
func (c *Canvas) Handles() []interp.Handle {
	return append([]interp.Handle(nil), c.order...)
}

// Frame returns the current axis frame.
func (c *Canvas) Frame() (interp.Frame, bool) { return c.frame, c.hasFrame }

// boxCorners returns the eight corners of the box spanned by lo and hi.
func boxCorners(lo, hi r3.Vector) [8]r3.Vector {
	return [8]r3.Vector{
		{X: lo.X, Y: lo.Y, Z: lo.Z},
		{X: hi.X, Y: lo.Y, Z: lo.Z},
		{X: hi.X, Y: hi.Y, Z: lo.Z},
		{X: lo.X, Y: hi.Y, Z: lo.Z},
		{X: lo.X, Y: lo.Y, Z: hi.Z},
		{X: hi.X, Y: lo.Y, Z: hi.Z},
		{X: hi.X, Y: hi.Y, Z: hi.Z},
		{X: lo.X, Y: hi.Y, Z: hi.Z},
	}
}

// boxEdges indexes boxCorners: back face, front face, connecting edges.
var boxEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}
