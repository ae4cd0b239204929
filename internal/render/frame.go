package render

// Frame is the full set of primitives for one tick. A Frame returned by the
// animation driver owns its slices; the driver never touches them again.
type Frame struct {
	Index  int
	Bounds Rect
	Bodies []Circle
	Arms   []Segment
	Labels []Text
	Traces []Segment
}

// Len counts every primitive in the frame.
func (f Frame) Len() int {
	return len(f.Bodies) + len(f.Arms) + len(f.Labels) + len(f.Traces)
}

// Clone deep-copies the primitive slices.
func (f Frame) Clone() Frame {
	return Frame{
		Index:  f.Index,
		Bounds: f.Bounds,
		Bodies: append([]Circle(nil), f.Bodies...),
		Arms:   append([]Segment(nil), f.Arms...),
		Labels: append([]Text(nil), f.Labels...),
		Traces: append([]Segment(nil), f.Traces...),
	}
}
