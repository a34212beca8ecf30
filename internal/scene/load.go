package scene

import (
	"path/filepath"
	"strings"
)

// Mode selects the loader for an input file.
type Mode int

const (
	// ModeAuto picks a loader from the file extension.
	ModeAuto Mode = iota
	ModeJSON
	ModeBasic
	ModeBuildings
)

// LoadOptions configures Load.
type LoadOptions struct {
	Mode     Mode
	Outline  string
	Defaults Defaults
	// NoReset forces the document-level reset policy off.
	NoReset bool
}

// ModeFor returns the loader used for path under ModeAuto: .json is a step
// document, anything else is basic-mode text.
func ModeFor(path string) Mode {
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		return ModeJSON
	}
	return ModeBasic
}

// Load reads path with the loader selected by opts.
func Load(path string, opts LoadOptions) (*Document, error) {
	mode := opts.Mode
	if mode == ModeAuto {
		mode = ModeFor(path)
	}
	var doc *Document
	var err error
	switch mode {
	case ModeBasic:
		doc, err = LoadBasic(path, opts.Defaults)
	case ModeBuildings:
		doc, err = LoadBuildings(path, opts.Outline, opts.Defaults)
	default:
		doc, err = LoadJSON(path, opts.Defaults)
	}
	if err != nil {
		return nil, err
	}
	if opts.NoReset {
		doc.Reset = false
	}
	return doc, nil
}
