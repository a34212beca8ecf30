package interp

// Recorder is a Renderer that keeps artifacts in memory and counts calls.
// The info command and the tests use it in place of a viewport.
type Recorder struct {
	next Handle

	Shapes  map[Handle]Shape
	Batches map[Handle]RecordedBatch
	Order   []Handle

	Creates      int
	BatchCreates int
	Removes      int
	CameraResets int

	Frame       Frame
	HasFrame    bool
	Frames      int
	FrameClears int
}

// RecordedBatch is a batched artifact kept by a Recorder.
type RecordedBatch struct {
	Kind      BatchKind
	Instances []Instance
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		Shapes:  map[Handle]Shape{},
		Batches: map[Handle]RecordedBatch{},
	}
}

func (r *Recorder) alloc() Handle {
	r.next++
	r.Order = append(r.Order, r.next)
	return r.next
}

func (r *Recorder) CreateArtifact(s Shape) Handle {
	h := r.alloc()
	r.Shapes[h] = s
	r.Creates++
	return h
}

func (r *Recorder) CreateBatchedArtifact(kind BatchKind, instances []Instance) Handle {
	h := r.alloc()
	r.Batches[h] = RecordedBatch{Kind: kind, Instances: instances}
	r.BatchCreates++
	return h
}

func (r *Recorder) RemoveArtifact(h Handle) {
	delete(r.Shapes, h)
	delete(r.Batches, h)
	for i, o := range r.Order {
		if o == h {
			r.Order = append(r.Order[:i], r.Order[i+1:]...)
			break
		}
	}
	r.Removes++
}

func (r *Recorder) SetAxisFrame(f Frame) {
	r.Frame, r.HasFrame = f, true
	r.Frames++
}

func (r *Recorder) ClearAxisFrame() {
	r.Frame, r.HasFrame = Frame{}, false
	r.FrameClears++
}

func (r *Recorder) ResetCameraToFit() { r.CameraResets++ }

// Visible returns the number of artifacts currently held.
func (r *Recorder) Visible() int { return len(r.Order) }
