package render

// Point is a position in world coordinates.
type Point struct {
	X, Y float64
}

// Circle is a filled marker with a stroked edge.
type Circle struct {
	Center    Point
	Radius    float64
	Fill      string
	Edge      string
	LineWidth float64
}

// Segment is a straight stroke between two points.
type Segment struct {
	From, To Point
	Color    string
	Width    float64
	Alpha    float64
}

type Text struct {
	At       Point
	Content  string
	FontSize float64
}

// Rect is an axis-aligned viewport in world coordinates.
type Rect struct {
	XMin float64 `yaml:"x_min"`
	XMax float64 `yaml:"x_max"`
	YMin float64 `yaml:"y_min"`
	YMax float64 `yaml:"y_max"`
}

func (r Rect) Width() float64  { return r.XMax - r.XMin }
func (r Rect) Height() float64 { return r.YMax - r.YMin }

// Valid reports whether the rectangle has positive area.
func (r Rect) Valid() bool {
	return r.XMax > r.XMin && r.YMax > r.YMin
}
