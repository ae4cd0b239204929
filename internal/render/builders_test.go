package render

import (
	"math"
	"testing"

	"github.com/san-kum/quadviz/internal/pose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMotorLayout_DistanceAndPerpendicular(t *testing.T) {
	poses := []pose.Pose{
		{X: 0, Y: 0, Heading: 0},
		{X: 3, Y: -2, Heading: 0.7},
		{X: -5.5, Y: 11, Heading: -2.3},
		{X: 1, Y: 1, Heading: 4 * math.Pi},
	}
	for _, p := range poses {
		for _, r := range []float64{0.25, 0.5, 2} {
			layout := MotorLayout(p, r)
			for k, pt := range layout {
				d := math.Hypot(pt.X-p.X, pt.Y-p.Y)
				assert.InDelta(t, r, d, 1e-12, "motor %d of %v", k, p)
			}

			d1x, d1y := layout[1].X-layout[0].X, layout[1].Y-layout[0].Y
			d2x, d2y := layout[3].X-layout[2].X, layout[3].Y-layout[2].Y
			assert.InDelta(t, 0, d1x*d2x+d1y*d2y, 1e-12, "diagonals of %v not perpendicular", p)
		}
	}
}

func TestMotorLayout_ZeroHeading(t *testing.T) {
	layout := MotorLayout(pose.Pose{}, math.Sqrt2)
	want := [4]Point{{1, 1}, {-1, -1}, {-1, 1}, {1, -1}}
	for i := range want {
		assert.InDelta(t, want[i].X, layout[i].X, 1e-12)
		assert.InDelta(t, want[i].Y, layout[i].Y, 1e-12)
	}
}

func TestBody(t *testing.T) {
	layout := MotorLayout(pose.Pose{X: 1, Y: 2}, 0.5)
	body := Body(layout, 0.5)
	require.Len(t, body, 4)
	for i, c := range body {
		assert.Equal(t, layout[i], c.Center)
		assert.InDelta(t, 0.2, c.Radius, 1e-12)
		assert.Equal(t, White, c.Fill)
	}
	assert.Equal(t, body[0].Edge, body[2].Edge)
	assert.Equal(t, body[1].Edge, body[3].Edge)
	assert.NotEqual(t, body[0].Edge, body[1].Edge)
}

func TestArms(t *testing.T) {
	layout := MotorLayout(pose.Pose{Heading: 0.3}, 1)
	arms := Arms(layout)
	require.Len(t, arms, 2)
	assert.Equal(t, layout[0], arms[0].From)
	assert.Equal(t, layout[1], arms[0].To)
	assert.Equal(t, layout[2], arms[1].From)
	assert.Equal(t, layout[3], arms[1].To)
}

func TestTraceSegment(t *testing.T) {
	cur := pose.Pose{X: 2, Y: 3}
	assert.Empty(t, TraceSegment(nil, cur, "#008000"))

	prev := pose.Pose{X: 1, Y: 1}
	segs := TraceSegment(&prev, cur, "#008000")
	require.Len(t, segs, 1)
	assert.Equal(t, Point{1, 1}, segs[0].From)
	assert.Equal(t, Point{2, 3}, segs[0].To)
	assert.Equal(t, "#008000", segs[0].Color)
	assert.Equal(t, TraceAlpha, segs[0].Alpha)
}

func TestLabel(t *testing.T) {
	l := Label(pose.Pose{X: 4, Y: -1, Heading: 1}, 0.5, "Quadrotor1")
	assert.Equal(t, Point{4, 0}, l.At)
	assert.Equal(t, "Quadrotor1", l.Content)
}

func TestResolveColor(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"g", "#008000", true},
		{"Green", "#008000", true},
		{" k ", Black, true},
		{"#AbCdEf", "#abcdef", true},
		{"#12345", "", false},
		{"#gg0000", "", false},
		{"chartreuse", "", false},
	}
	for _, tt := range tests {
		got, err := ResolveColor(tt.in)
		if tt.ok {
			assert.NoError(t, err, tt.in)
			assert.Equal(t, tt.want, got)
		} else {
			assert.ErrorIs(t, err, ErrUnknownColor, tt.in)
		}
	}
}

func TestRGB(t *testing.T) {
	r, g, b := RGB("#ff8001")
	assert.Equal(t, []uint8{255, 128, 1}, []uint8{r, g, b})

	r, g, b = RGB("nope")
	assert.Equal(t, []uint8{255, 255, 255}, []uint8{r, g, b})
}

func TestFrameClone(t *testing.T) {
	f := Frame{Traces: []Segment{{Color: "a"}}, Labels: []Text{{Content: "x"}}}
	c := f.Clone()
	c.Traces[0].Color = "b"
	c.Labels[0].Content = "y"
	assert.Equal(t, "a", f.Traces[0].Color)
	assert.Equal(t, "x", f.Labels[0].Content)
	assert.Equal(t, 2, f.Len())
}
