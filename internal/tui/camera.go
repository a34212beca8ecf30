package tui

import (
	"math"

	"github.com/golang/geo/r3"
)

// camera is an orthographic view: the scene is turned by yaw about the Y
// axis, then by pitch about the X axis, and looked at down -Z with Y up.
type camera struct {
	center r3.Vector
	radius float64

	yaw, pitch float64
	zoom       float64

	// pan offset in cells
	panX, panY int
}

const rotStep = math.Pi / 24

func newCamera() camera {
	return camera{radius: 1, zoom: 1}
}

func (c *camera) fit(center r3.Vector, radius float64) {
	if radius <= 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
		radius = 1
	}
	c.center = center
	c.radius = radius
	c.zoom = 1
	c.panX, c.panY = 0, 0
}

// view rotates p into camera space relative to the centre.
func (c camera) view(p r3.Vector) r3.Vector {
	v := p.Sub(c.center)
	sy, cy := math.Sincos(c.yaw)
	v = r3.Vector{X: v.X*cy + v.Z*sy, Y: v.Y, Z: -v.X*sy + v.Z*cy}
	sp, cp := math.Sincos(c.pitch)
	return r3.Vector{X: v.X, Y: v.Y*cp - v.Z*sp, Z: v.Y*sp + v.Z*cp}
}

// scale returns micro pixels per scene unit for a w x h cell viewport.
func (c camera) scale(w, h int) float64 {
	span := math.Min(float64(w*2), float64(h*4))
	return c.zoom * 0.9 * span / (2 * c.radius)
}

// project maps a scene point to braille micro-pixel coordinates.
func (c camera) project(p r3.Vector, w, h int) (int, int) {
	v := c.view(p)
	s := c.scale(w, h)
	sx := float64(w*2)/2 + v.X*s
	sy := float64(h*4)/2 - v.Y*s
	return int(math.Round(sx)) + c.panX*2, int(math.Round(sy)) + c.panY*4
}
