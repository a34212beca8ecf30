package scene

import "errors"

var (
	// ErrMissingRequiredField is returned when an entity lacks type or position.
	ErrMissingRequiredField = errors.New("missing required field")
	// ErrMalformedDocument is returned when the input does not have the expected shape.
	ErrMalformedDocument = errors.New("malformed document")
	// ErrUnrecognizedEntityType is returned for a type tag outside point/vector/polyline.
	ErrUnrecognizedEntityType = errors.New("unrecognized entity type")
)
