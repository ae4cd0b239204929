package pose

import "math"

// Point is a bare planar coordinate used by the generators.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

const (
	DefaultSweepSteps       = 280
	DefaultSweepHeadingStep = 0.1
)

var (
	DefaultSweepFrom = Point{X: -9, Y: -9}
	DefaultSweepTo   = Point{X: 19, Y: 19}
)

// Sweep interpolates steps poses from "from" toward "to" with the end point
// excluded. Heading grows by headingStep per pose starting at zero.
func Sweep(from, to Point, steps int, headingStep float64) (*Sequence, error) {
	if steps < 1 {
		return nil, ErrInvalidSteps
	}
	poses := make([]Pose, steps)
	dx := (to.X - from.X) / float64(steps)
	dy := (to.Y - from.Y) / float64(steps)
	for i := range poses {
		poses[i] = Pose{
			X:       from.X + float64(i)*dx,
			Y:       from.Y + float64(i)*dy,
			Heading: float64(i) * headingStep,
		}
	}
	return NewSequence(poses)
}

// DefaultSweep is the diagonal sweep across the default viewport.
func DefaultSweep() *Sequence {
	s, _ := Sweep(DefaultSweepFrom, DefaultSweepTo, DefaultSweepSteps, DefaultSweepHeadingStep)
	return s
}

// Orbit places steps poses counter-clockwise on a circle, each heading
// tangent to the direction of travel.
func Orbit(center Point, radius float64, steps int) (*Sequence, error) {
	if steps < 1 {
		return nil, ErrInvalidSteps
	}
	poses := make([]Pose, steps)
	for i := range poses {
		phi := 2 * math.Pi * float64(i) / float64(steps)
		poses[i] = Pose{
			X:       center.X + radius*math.Cos(phi),
			Y:       center.Y + radius*math.Sin(phi),
			Heading: phi + math.Pi/2,
		}
	}
	return NewSequence(poses)
}
