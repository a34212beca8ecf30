package scene

import (
	"fmt"
	"strings"
)

// Key names a logical entity field.
type Key string

const (
	KeyType        Key = "type"
	KeyPosition    Key = "position"
	KeyColor       Key = "color"
	KeyOpacity     Key = "opacity"
	KeyRadius      Key = "radius"
	KeyDescription Key = "description"
)

// aliases lists the accepted spellings of each field in precedence order.
// The short alias always comes first.
var aliases = map[Key][]string{
	KeyType:        {"t", "type"},
	KeyPosition:    {"p", "position"},
	KeyColor:       {"c", "color"},
	KeyOpacity:     {"o", "opacity"},
	KeyRadius:      {"r", "radius"},
	KeyDescription: {"d", "description"},
}

// Aliases returns the accepted spellings of k, short alias first.
func Aliases(k Key) []string {
	return append([]string(nil), aliases[k]...)
}

var kindTags = map[string]Kind{
	"point":    Point,
	"p":        Point,
	"vector":   Vector,
	"v":        Vector,
	"polyline": Polyline,
	"y":        Polyline,
}

// ParseKind maps a type tag to its kind.
func ParseKind(tag string) (Kind, error) {
	k, ok := kindTags[strings.ToLower(strings.TrimSpace(tag))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnrecognizedEntityType, tag)
	}
	return k, nil
}

// Lookup returns the raw value stored under the first alias of k present in fields.
func Lookup(fields map[string]any, k Key) (any, bool) {
	for _, a := range aliases[k] {
		if v, ok := fields[a]; ok {
			return v, true
		}
	}
	return nil, false
}

// Resolver turns raw entity fields into typed values. It never writes to
// the field map it is given, so a document can be resolved any number of times.
type Resolver struct {
	Defaults Defaults
}

// Resolve returns the value of k for the entity, or its default when absent.
// Type and position have no default.
func (r Resolver) Resolve(fields map[string]any, k Key) (any, error) {
	switch k {
	case KeyType:
		return r.kind(fields)
	case KeyPosition:
		v, ok := Lookup(fields, KeyPosition)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingRequiredField, KeyPosition)
		}
		return floats(v, KeyPosition)
	case KeyColor:
		v, ok := Lookup(fields, KeyColor)
		if !ok {
			return White, nil
		}
		fs, err := floats(v, KeyColor)
		if err != nil {
			return nil, err
		}
		if len(fs) != 3 {
			return nil, fmt.Errorf("%w: color needs 3 components, got %d", ErrMalformedDocument, len(fs))
		}
		return Color{fs[0], fs[1], fs[2]}, nil
	case KeyOpacity:
		v, ok := Lookup(fields, KeyOpacity)
		if !ok {
			return 1.0, nil
		}
		return number(v, KeyOpacity)
	case KeyRadius:
		v, ok := Lookup(fields, KeyRadius)
		if ok {
			return number(v, KeyRadius)
		}
		kind, err := r.kind(fields)
		if err != nil {
			return nil, err
		}
		return r.Defaults.RadiusFor(kind), nil
	case KeyDescription:
		v, ok := Lookup(fields, KeyDescription)
		if !ok {
			return DefaultDescription, nil
		}
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%w: description must be a string", ErrMalformedDocument)
		}
		return s, nil
	}
	return nil, fmt.Errorf("unknown key %q", k)
}

// Entity resolves every field and validates the position against the kind.
func (r Resolver) Entity(fields map[string]any) (Entity, error) {
	kind, err := r.kind(fields)
	if err != nil {
		return Entity{}, err
	}
	var e Entity
	e.Kind = kind
	pos, err := r.Resolve(fields, KeyPosition)
	if err != nil {
		return Entity{}, err
	}
	e.Position = pos.([]float64)
	if err := checkPosition(kind, e.Position); err != nil {
		return Entity{}, err
	}
	c, err := r.Resolve(fields, KeyColor)
	if err != nil {
		return Entity{}, err
	}
	e.Color = c.(Color)
	o, err := r.Resolve(fields, KeyOpacity)
	if err != nil {
		return Entity{}, err
	}
	e.Opacity = o.(float64)
	rad, err := r.Resolve(fields, KeyRadius)
	if err != nil {
		return Entity{}, err
	}
	e.Radius = rad.(float64)
	d, err := r.Resolve(fields, KeyDescription)
	if err != nil {
		return Entity{}, err
	}
	e.Description = d.(string)
	return e, nil
}

func (r Resolver) kind(fields map[string]any) (Kind, error) {
	v, ok := Lookup(fields, KeyType)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMissingRequiredField, KeyType)
	}
	tag, ok := v.(string)
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrUnrecognizedEntityType, v)
	}
	return ParseKind(tag)
}

func checkPosition(k Kind, pos []float64) error {
	switch k {
	case Point:
		if len(pos) != 3 {
			return fmt.Errorf("%w: point needs 3 coordinates, got %d", ErrMalformedDocument, len(pos))
		}
	case Vector, Box:
		if len(pos) != 6 {
			return fmt.Errorf("%w: %s needs 6 coordinates, got %d", ErrMalformedDocument, k, len(pos))
		}
	case Polyline:
		if len(pos) < 6 || len(pos)%3 != 0 {
			return fmt.Errorf("%w: polyline needs at least two 3D points, got %d coordinates", ErrMalformedDocument, len(pos))
		}
	}
	return nil
}

func number(v any, k Key) (float64, error) {
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("%w: %s must be a number", ErrMalformedDocument, k)
	}
	return f, nil
}

func floats(v any, k Key) ([]float64, error) {
	arr, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s must be a list of numbers", ErrMalformedDocument, k)
	}
	out := make([]float64, 0, len(arr))
	for _, el := range arr {
		f, ok := el.(float64)
		if !ok {
			return nil, fmt.Errorf("%w: %s must be a list of numbers", ErrMalformedDocument, k)
		}
		out = append(out, f)
	}
	return out, nil
}
