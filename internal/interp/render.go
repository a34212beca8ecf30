package interp

import (
	"github.com/golang/geo/r3"

	"primview/internal/scene"
)

// Handle identifies an artifact owned by a Renderer.
type Handle uint64

// NoHandle is never returned by a Renderer.
const NoHandle Handle = 0

// Shape describes a single artifact: one sphere, tube or box.
type Shape struct {
	Kind    scene.Kind
	Points  []r3.Vector
	Color   scene.Color
	Opacity float64
	Radius  float64
}

// BatchKind selects the shared prototype of a batched artifact.
type BatchKind int

const (
	// PointBatch instances share a sphere prototype.
	PointBatch BatchKind = iota
	// LineBatch instances share a tube cross-section.
	LineBatch
)

func (k BatchKind) String() string {
	if k == PointBatch {
		return "points"
	}
	return "lines"
}

// Instance is one member of a batched artifact. Point instances hold one
// point and are scaled by Scale on every axis. Line instances carry a
// radius and RGBA per vertex so the tube can vary along its length.
type Instance struct {
	Points []r3.Vector
	Scale  float64
	Radii  []float64
	RGBA   [][4]float64
}

// Frame is the axis-aligned bounding frame drawn around the visible scene.
type Frame struct {
	MinX, MaxX float64
	MinY, MaxY float64
	MinZ, MaxZ float64
}

// Center returns the middle of the frame.
func (f Frame) Center() r3.Vector {
	return r3.Vector{X: (f.MinX + f.MaxX) / 2, Y: (f.MinY + f.MaxY) / 2, Z: (f.MinZ + f.MaxZ) / 2}
}

// Size returns the frame extent on each axis.
func (f Frame) Size() r3.Vector {
	return r3.Vector{X: f.MaxX - f.MinX, Y: f.MaxY - f.MinY, Z: f.MaxZ - f.MinZ}
}

// Renderer is the rendering collaborator the interpreter drives.
type Renderer interface {
	CreateArtifact(s Shape) Handle
	CreateBatchedArtifact(kind BatchKind, instances []Instance) Handle
	RemoveArtifact(h Handle)
	// SetAxisFrame replaces any previously set frame.
	SetAxisFrame(f Frame)
	// ClearAxisFrame removes the frame once nothing visible is left to fit.
	ClearAxisFrame()
	ResetCameraToFit()
}

// ShapeOf converts a resolved entity into the shape handed to the renderer.
func ShapeOf(e scene.Entity) Shape {
	return Shape{
		Kind:    e.Kind,
		Points:  e.Points(),
		Color:   e.Color,
		Opacity: e.Opacity,
		Radius:  e.Radius,
	}
}

func rgba(e scene.Entity) [4]float64 {
	return [4]float64{e.Color[0], e.Color[1], e.Color[2], e.Opacity}
}

// pointInstance builds a sphere glyph scaled to the entity's diameter.
func pointInstance(e scene.Entity) Instance {
	return Instance{
		Points: e.Points(),
		Scale:  e.Radius * 2,
		Radii:  []float64{e.Radius},
		RGBA:   [][4]float64{rgba(e)},
	}
}

// lineInstance attaches the entity's radius and colour to every vertex.
func lineInstance(e scene.Entity) Instance {
	pts := e.Points()
	in := Instance{
		Points: pts,
		Scale:  1,
		Radii:  make([]float64, len(pts)),
		RGBA:   make([][4]float64, len(pts)),
	}
	c := rgba(e)
	for i := range pts {
		in.Radii[i] = e.Radius
		in.RGBA[i] = c
	}
	return in
}
