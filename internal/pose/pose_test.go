package pose

import (
	"errors"
	"math"
	"testing"
)

func TestNewSequence_Empty(t *testing.T) {
	if _, err := NewSequence(nil); !errors.Is(err, ErrEmptySequence) {
		t.Fatalf("expected ErrEmptySequence, got %v", err)
	}
	if _, err := NewSequence([]Pose{}); !errors.Is(err, ErrEmptySequence) {
		t.Fatalf("expected ErrEmptySequence, got %v", err)
	}
}

func TestNewSequence_NonFinite(t *testing.T) {
	tests := []struct {
		name string
		p    Pose
	}{
		{"NaN x", Pose{X: math.NaN()}},
		{"+Inf y", Pose{Y: math.Inf(1)}},
		{"-Inf heading", Pose{Heading: math.Inf(-1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSequence([]Pose{{}, tt.p})
			if !errors.Is(err, ErrNonFinite) {
				t.Errorf("expected ErrNonFinite, got %v", err)
			}
		})
	}
}

func TestSequence_CopiesInput(t *testing.T) {
	in := []Pose{{X: 1}, {X: 2}}
	s, err := NewSequence(in)
	if err != nil {
		t.Fatal(err)
	}
	in[0].X = 99
	if s.At(0).X != 1 {
		t.Errorf("sequence aliases caller slice: got %v", s.At(0))
	}
	out := s.Poses()
	out[1].X = 42
	if s.At(1).X != 2 {
		t.Errorf("Poses() aliases internal slice: got %v", s.At(1))
	}
}

func TestSequence_AtWraps(t *testing.T) {
	s, _ := NewSequence([]Pose{{X: 0}, {X: 1}, {X: 2}})
	tests := []struct {
		i    int
		want float64
	}{
		{0, 0}, {2, 2}, {3, 0}, {7, 1}, {-1, 2}, {-4, 2},
	}
	for _, tt := range tests {
		if got := s.At(tt.i).X; got != tt.want {
			t.Errorf("At(%d).X = %v, want %v", tt.i, got, tt.want)
		}
	}
}

func TestSweep_DefaultMatchesLinearRamp(t *testing.T) {
	s := DefaultSweep()
	if s.Len() != 280 {
		t.Fatalf("expected 280 poses, got %d", s.Len())
	}
	first, last := s.At(0), s.At(279)
	if math.Abs(first.X+9) > 1e-9 || math.Abs(first.Y+9) > 1e-9 || first.Heading != 0 {
		t.Errorf("unexpected first pose %v", first)
	}
	if math.Abs(last.X-18.9) > 1e-9 || math.Abs(last.Heading-27.9) > 1e-9 {
		t.Errorf("unexpected last pose %v", last)
	}
}

func TestSweep_InvalidSteps(t *testing.T) {
	if _, err := Sweep(Point{}, Point{X: 1}, 0, 0); !errors.Is(err, ErrInvalidSteps) {
		t.Errorf("expected ErrInvalidSteps, got %v", err)
	}
}

func TestOrbit_OnCircle(t *testing.T) {
	s, err := Orbit(Point{X: 2, Y: -1}, 3, 36)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < s.Len(); i++ {
		p := s.At(i)
		d := math.Hypot(p.X-2, p.Y+1)
		if math.Abs(d-3) > 1e-9 {
			t.Errorf("pose %d at distance %v, want 3", i, d)
		}
	}
}
