package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// stepEntityKeys are the accepted spellings of a step's entity list, short first.
var stepEntityKeys = []string{"e", "entities"}

// LoadJSON reads a step document from path.
func LoadJSON(path string, d Defaults) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeJSON(f, d)
}

// DecodeJSON parses a step document and resolves every entity against d.
// Any missing field, malformed value or unknown type fails the whole
// document; nothing is returned partially.
func DecodeJSON(r io.Reader, d Defaults) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	doc := &Document{}
	if doc.Reset, err = optBool(raw, "reset", true); err != nil {
		return nil, err
	}
	if doc.Glyph, err = optBool(raw, "glyph", false); err != nil {
		return nil, err
	}
	lv, ok := raw["list"]
	if !ok {
		return nil, fmt.Errorf("%w: list missing", ErrMalformedDocument)
	}
	list, ok := lv.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: list is not a sequence", ErrMalformedDocument)
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("%w: list is empty", ErrMalformedDocument)
	}
	res := Resolver{Defaults: d}
	for i, sv := range list {
		sm, ok := sv.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: step %d is not an object", ErrMalformedDocument, i)
		}
		st, err := decodeStep(sm, res)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		doc.Steps = append(doc.Steps, st)
	}
	return doc, nil
}

func decodeStep(sm map[string]any, res Resolver) (Step, error) {
	var st Step
	var err error
	if st.Hold, err = optBool(sm, "hold", false); err != nil {
		return Step{}, err
	}
	if v, ok := sm["reset"]; ok {
		b, ok := v.(bool)
		if !ok {
			return Step{}, fmt.Errorf("%w: reset must be a boolean", ErrMalformedDocument)
		}
		st.ResetOverride = &b
	}
	var ev any
	for _, k := range stepEntityKeys {
		if v, ok := sm[k]; ok {
			ev = v
			break
		}
	}
	if ev == nil {
		return st, nil
	}
	arr, ok := ev.([]any)
	if !ok {
		return Step{}, fmt.Errorf("%w: entities is not a sequence", ErrMalformedDocument)
	}
	for j, v := range arr {
		fields, ok := v.(map[string]any)
		if !ok {
			return Step{}, fmt.Errorf("entity %d: %w: not an object", j, ErrMalformedDocument)
		}
		e, err := res.Entity(fields)
		if err != nil {
			return Step{}, fmt.Errorf("entity %d: %w", j, err)
		}
		st.Entities = append(st.Entities, e)
	}
	return st, nil
}

func optBool(m map[string]any, key string, def bool) (bool, error) {
	v, ok := m[key]
	if !ok {
		return def, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %s must be a boolean", ErrMalformedDocument, key)
	}
	return b, nil
}
