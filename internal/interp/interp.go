// Package interp plays a scene document step by step against a Renderer.
//
// The interpreter is single threaded: callers drive it from one goroutine
// (the UI event loop) and every Renderer call happens on that goroutine.
package interp

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"primview/internal/scene"
)

// NoDescription is returned by Describe for handles without a description.
const NoDescription = "No description available"

// Status reports the outcome of Advance.
type Status int

const (
	Advanced Status = iota
	// NoMoreSteps is returned once every step has been played. It is a
	// signal, not an error; polling callers see it repeatedly.
	NoMoreSteps
)

func (s Status) String() string {
	if s == Advanced {
		return "advanced"
	}
	return "no more steps"
}

// Result is returned by Advance.
type Result struct {
	Status  Status
	Step    int
	Handles []Handle
}

// Option configures an Interpreter.
type Option func(in *Interpreter)

// WithAutoResetCamera makes every step, not only the first, refit the camera.
func WithAutoResetCamera(on bool) Option {
	return func(in *Interpreter) { in.autoResetCamera = on }
}

// WithPaddingFloor sets the minimum padding applied to each side of the axis frame.
func WithPaddingFloor(f float64) Option {
	return func(in *Interpreter) { in.paddingFloor = f }
}

// WithLogger sets the logger used for step transitions.
func WithLogger(l *slog.Logger) Option {
	return func(in *Interpreter) {
		if l != nil {
			in.log = l
		}
	}
}

// Interpreter owns the playback state of one document.
type Interpreter struct {
	doc *scene.Document
	r   Renderer

	cursor int
	live   []Handle
	held   []Handle

	running    Samples
	heldBounds Samples

	descriptions map[Handle]string

	frame    Frame
	hasFrame bool

	autoResetCamera bool
	paddingFloor    float64
	log             *slog.Logger
}

// New returns an interpreter positioned before the first step.
func New(doc *scene.Document, r Renderer, opts ...Option) (*Interpreter, error) {
	if doc == nil || len(doc.Steps) == 0 {
		return nil, fmt.Errorf("%w: document has no steps", scene.ErrMalformedDocument)
	}
	in := &Interpreter{
		doc:          doc,
		r:            r,
		descriptions: map[Handle]string{},
		paddingFloor: scene.DefaultRadii.SphereRadius,
		log:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, o := range opts {
		o(in)
	}
	return in, nil
}

// Len returns the number of steps in the document.
func (in *Interpreter) Len() int { return len(in.doc.Steps) }

// Cursor returns the index of the next step to play.
func (in *Interpreter) Cursor() int { return in.cursor }

// Exhausted reports whether every step has been played.
func (in *Interpreter) Exhausted() bool { return in.cursor >= len(in.doc.Steps) }

// Document returns the document being played.
func (in *Interpreter) Document() *scene.Document { return in.doc }

// Live returns the handles of every visible artifact, held ones included.
func (in *Interpreter) Live() []Handle { return slices.Clone(in.live) }

// Held returns the handles that survive resets.
func (in *Interpreter) Held() []Handle { return slices.Clone(in.held) }

// Bounds returns a copy of the samples the current frame is fitted to.
func (in *Interpreter) Bounds() Samples { return in.running.Clone() }

// Frame returns the last axis frame sent to the renderer.
func (in *Interpreter) Frame() (Frame, bool) { return in.frame, in.hasFrame }

// Describe returns the description registered for h.
func (in *Interpreter) Describe(h Handle) string {
	if d, ok := in.descriptions[h]; ok {
		return d
	}
	return NoDescription
}

// Advance plays the next step.
func (in *Interpreter) Advance() Result {
	if in.Exhausted() {
		return Result{Status: NoMoreSteps, Step: in.cursor}
	}
	step := in.doc.Steps[in.cursor]

	reset := step.ShouldReset(in.doc.Reset)
	if reset {
		in.clear()
	}

	for _, e := range step.Entities {
		in.running.Add(e.Position)
		if step.Hold {
			in.heldBounds.Add(e.Position)
		}
	}

	var handles []Handle
	if in.doc.Glyph {
		handles = in.emitGlyphs(step.Entities)
	} else {
		handles = in.emitEach(step.Entities)
	}
	in.live = append(in.live, handles...)
	if step.Hold {
		in.held = append(in.held, handles...)
	}

	if !in.running.Empty() {
		f, err := FitFrame(in.running, in.paddingFloor)
		if err == nil {
			in.frame, in.hasFrame = f, true
			in.r.SetAxisFrame(f)
		}
	} else if in.hasFrame {
		// a reset into an empty step with nothing held
		in.frame, in.hasFrame = Frame{}, false
		in.r.ClearAxisFrame()
	}

	in.cursor++
	if in.cursor == 1 || in.autoResetCamera {
		in.r.ResetCameraToFit()
	}
	in.log.Debug("step played",
		"step", in.cursor-1,
		"reset", reset,
		"hold", step.Hold,
		"entities", len(step.Entities),
		"handles", len(handles),
		"live", len(in.live))
	return Result{Status: Advanced, Step: in.cursor - 1, Handles: handles}
}

// RunAll plays every remaining step and returns how many were played.
// Each step reaches the renderer before the next one is processed.
func (in *Interpreter) RunAll() int {
	n := 0
	for in.Advance().Status == Advanced {
		n++
	}
	return n
}

// AdvanceTo plays steps until the cursor reaches n or the document ends.
func (in *Interpreter) AdvanceTo(n int) int {
	played := 0
	for in.cursor < n && in.Advance().Status == Advanced {
		played++
	}
	return played
}

// clear removes every non-held artifact and restarts the bounds from the
// held samples.
func (in *Interpreter) clear() {
	in.running = in.heldBounds.Clone()
	for _, h := range in.live {
		if slices.Contains(in.held, h) {
			continue
		}
		in.r.RemoveArtifact(h)
		delete(in.descriptions, h)
	}
	in.live = slices.Clone(in.held)
}

func (in *Interpreter) emitEach(entities []scene.Entity) []Handle {
	handles := make([]Handle, 0, len(entities))
	for _, e := range entities {
		h := in.r.CreateArtifact(ShapeOf(e))
		in.descriptions[h] = e.Description
		handles = append(handles, h)
	}
	return handles
}

func (in *Interpreter) emitGlyphs(entities []scene.Entity) []Handle {
	var points, lines []Instance
	var handles []Handle
	for _, e := range entities {
		switch {
		case e.Kind == scene.Point:
			points = append(points, pointInstance(e))
		case e.Kind.IsLine():
			lines = append(lines, lineInstance(e))
		default:
			// boxes have no glyph prototype
			h := in.r.CreateArtifact(ShapeOf(e))
			in.descriptions[h] = e.Description
			handles = append(handles, h)
		}
	}
	if len(points) > 0 {
		handles = append(handles, in.r.CreateBatchedArtifact(PointBatch, points))
	}
	if len(lines) > 0 {
		handles = append(handles, in.r.CreateBatchedArtifact(LineBatch, lines))
	}
	return handles
}
