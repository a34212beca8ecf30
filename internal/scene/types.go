package scene

import "github.com/golang/geo/r3"

// Kind tags an entity's geometry. It is fixed at parse time and never
// inferred later from the length of the position list.
type Kind int

const (
	Point Kind = iota
	Vector
	Polyline
	// Box is produced only by the buildings loader; position is the min
	// corner followed by the max corner.
	Box
)

func (k Kind) String() string {
	switch k {
	case Point:
		return "point"
	case Vector:
		return "vector"
	case Polyline:
		return "polyline"
	case Box:
		return "box"
	}
	return "unknown"
}

// IsLine reports whether the kind is drawn as a tube (vector or polyline).
func (k Kind) IsLine() bool { return k == Vector || k == Polyline }

// Color is an RGB triple with components in [0,1].
type Color [3]float64

var White = Color{1, 1, 1}

// DefaultDescription is used for entities that carry no description.
const DefaultDescription = "No entity description provided"

// Entity is one fully resolved primitive of a step.
type Entity struct {
	Kind        Kind
	Position    []float64
	Color       Color
	Opacity     float64
	Radius      float64
	Description string
}

// Points groups the flat position list into 3D points.
func (e Entity) Points() []r3.Vector {
	pts := make([]r3.Vector, 0, len(e.Position)/3)
	for i := 0; i+2 < len(e.Position); i += 3 {
		pts = append(pts, r3.Vector{X: e.Position[i], Y: e.Position[i+1], Z: e.Position[i+2]})
	}
	return pts
}

// Step is one unit of playback.
type Step struct {
	Entities []Entity
	Hold     bool
	// ResetOverride, when non-nil, replaces Document.Reset for the
	// transition into this step.
	ResetOverride *bool
}

// ShouldReset returns whether entering this step clears non-held artifacts.
func (s Step) ShouldReset(docDefault bool) bool {
	if s.ResetOverride != nil {
		return *s.ResetOverride
	}
	return docDefault
}

// Document is a loaded scene. It is read-only once returned by a loader.
type Document struct {
	Steps []Step
	Glyph bool
	Reset bool
}

// EntityCount returns the number of entities across all steps.
func (d *Document) EntityCount() int {
	n := 0
	for _, s := range d.Steps {
		n += len(s.Entities)
	}
	return n
}

// Defaults carries the radii applied to entities without an explicit radius.
type Defaults struct {
	SphereRadius float64
	TubeRadius   float64
}

// DefaultRadii matches the viewer's built-in configuration.
var DefaultRadii = Defaults{SphereRadius: 0.1, TubeRadius: 0.025}

// RadiusFor returns the default radius for the given kind.
func (d Defaults) RadiusFor(k Kind) float64 {
	if k == Point {
		return d.SphereRadius
	}
	return d.TubeRadius
}
