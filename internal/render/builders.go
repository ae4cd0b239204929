package render

import (
	"math"

	"github.com/san-kum/quadviz/internal/pose"
)

const (
	MarkerScale   = 0.4
	MotorEdge     = 2.0
	ArmWidth      = 1.0
	TraceWidth    = 2.0
	TraceAlpha    = 0.1
	LabelFontSize = 7.0
	LabelOffset   = 2.0
)

// Edge colors per motor index; opposite corners differ so heading is readable.
var motorEdges = [4]string{Red, Black, Red, Black}

// MotorLayout returns the four motor centers at distance r from the body
// center. Points 0-1 and 2-3 are the two diagonals of a square rotated by
// the heading.
func MotorLayout(p pose.Pose, r float64) [4]Point {
	ox := r * math.Cos(p.Heading+math.Pi/4)
	oy := r * math.Sin(p.Heading+math.Pi/4)
	return [4]Point{
		{p.X + ox, p.Y + oy},
		{p.X - ox, p.Y - oy},
		{p.X - oy, p.Y + ox},
		{p.X + oy, p.Y - ox},
	}
}

func Body(layout [4]Point, r float64) []Circle {
	out := make([]Circle, len(layout))
	for i, c := range layout {
		out[i] = Circle{
			Center:    c,
			Radius:    MarkerScale * r,
			Fill:      White,
			Edge:      motorEdges[i],
			LineWidth: MotorEdge,
		}
	}
	return out
}

// Arms connects the diagonal motor pairs into an X.
func Arms(layout [4]Point) []Segment {
	return []Segment{
		{From: layout[0], To: layout[1], Color: Black, Width: ArmWidth, Alpha: 1},
		{From: layout[2], To: layout[3], Color: Black, Width: ArmWidth, Alpha: 1},
	}
}

// TraceSegment is empty until a previous pose exists.
func TraceSegment(prev *pose.Pose, cur pose.Pose, color string) []Segment {
	if prev == nil {
		return nil
	}
	return []Segment{{
		From:  Point{prev.X, prev.Y},
		To:    Point{cur.X, cur.Y},
		Color: color,
		Width: TraceWidth,
		Alpha: TraceAlpha,
	}}
}

func Label(p pose.Pose, r float64, text string) Text {
	return Text{
		At:       Point{p.X, p.Y + LabelOffset*r},
		Content:  text,
		FontSize: LabelFontSize,
	}
}
