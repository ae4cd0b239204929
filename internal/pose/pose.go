package pose

import (
	"fmt"
	"math"
)

// Pose is a position plus heading in radians.
type Pose struct {
	X       float64 `yaml:"x" json:"x"`
	Y       float64 `yaml:"y" json:"y"`
	Heading float64 `yaml:"heading" json:"heading"`
}

func (p Pose) IsValid() bool {
	for _, v := range [3]float64{p.X, p.Y, p.Heading} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (p Pose) String() string {
	return fmt.Sprintf("(%.2f, %.2f, %.2frad)", p.X, p.Y, p.Heading)
}

type Sequence struct {
	poses []Pose
}

// NewSequence copies poses into a cyclic sequence.
func NewSequence(poses []Pose) (*Sequence, error) {
	if len(poses) == 0 {
		return nil, ErrEmptySequence
	}
	for i, p := range poses {
		if !p.IsValid() {
			return nil, fmt.Errorf("pose %d %v: %w", i, p, ErrNonFinite)
		}
	}
	s := &Sequence{poses: make([]Pose, len(poses))}
	copy(s.poses, poses)
	return s, nil
}

func (s *Sequence) Len() int { return len(s.poses) }

// At returns the pose at i modulo Len. Negative indices wrap as well.
func (s *Sequence) At(i int) Pose {
	n := len(s.poses)
	i %= n
	if i < 0 {
		i += n
	}
	return s.poses[i]
}

func (s *Sequence) Poses() []Pose {
	out := make([]Pose, len(s.poses))
	copy(out, s.poses)
	return out
}
