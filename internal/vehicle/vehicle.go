// Package vehicle holds the per-vehicle animation state.
package vehicle

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/quadviz/internal/pose"
)

// ErrInvalidRadius indicates a body radius that is not a positive finite number.
var ErrInvalidRadius = errors.New("vehicle: radius must be positive and finite")

const DefaultRadius = 0.5

// Vehicle walks a pose sequence one pose per Advance.
//
// previous is set only after the second Advance; cursor stays in [0, seq.Len()).
type Vehicle struct {
	seq        *pose.Sequence
	cursor     int
	ticks      int
	position   *pose.Pose
	previous   *pose.Pose
	radius     float64
	traceColor string
	label      string
}

func New(seq *pose.Sequence, radius float64, traceColor, label string) (*Vehicle, error) {
	if seq == nil || seq.Len() == 0 {
		return nil, fmt.Errorf("vehicle %q: %w", label, pose.ErrEmptySequence)
	}
	if radius <= 0 || math.IsInf(radius, 0) || math.IsNaN(radius) {
		return nil, fmt.Errorf("vehicle %q: %w (got %v)", label, ErrInvalidRadius, radius)
	}
	return &Vehicle{
		seq:        seq,
		radius:     radius,
		traceColor: traceColor,
		label:      label,
	}, nil
}

// Advance pulls the pose under the cursor and moves the cursor on.
func (v *Vehicle) Advance() {
	next := v.seq.At(v.cursor)
	if v.position != nil {
		prev := *v.position
		v.previous = &prev
	}
	v.position = &next
	v.cursor = (v.cursor + 1) % v.seq.Len()
	v.ticks++
}

// Position returns a copy of the current pose, or nil before the first Advance.
func (v *Vehicle) Position() *pose.Pose {
	if v.position == nil {
		return nil
	}
	p := *v.position
	return &p
}

// Previous returns a copy of the pose from the prior Advance, or nil.
func (v *Vehicle) Previous() *pose.Pose {
	if v.previous == nil {
		return nil
	}
	p := *v.previous
	return &p
}

func (v *Vehicle) Cursor() int              { return v.cursor }
func (v *Vehicle) Ticks() int               { return v.ticks }
func (v *Vehicle) Radius() float64          { return v.radius }
func (v *Vehicle) TraceColor() string       { return v.traceColor }
func (v *Vehicle) Label() string            { return v.label }
func (v *Vehicle) Sequence() *pose.Sequence { return v.seq }
