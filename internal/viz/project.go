package viz

import (
	"math"

	"github.com/san-kum/quadviz/internal/render"
)

// projector maps world coordinates onto canvas sub-pixels with one scale
// for both axes, centering the viewport in the canvas.
type projector struct {
	bounds render.Rect
	scale  float64
	ox, oy float64
}

func newProjector(bounds render.Rect, c *Canvas) projector {
	cw, ch := float64(c.SubWidth()-1), float64(c.SubHeight()-1)
	scale := math.Min(cw/bounds.Width(), ch/bounds.Height())
	return projector{
		bounds: bounds,
		scale:  scale,
		ox:     (cw - scale*bounds.Width()) / 2,
		oy:     (ch - scale*bounds.Height()) / 2,
	}
}

func (p projector) point(pt render.Point) (int, int) {
	x := p.ox + (pt.X-p.bounds.XMin)*p.scale
	y := p.oy + (p.bounds.YMax-pt.Y)*p.scale
	return int(math.Round(x)), int(math.Round(y))
}

func (p projector) length(l float64) int {
	return int(math.Round(l * p.scale))
}

// gridStep widens step until neighbouring grid dots are at least minGap
// sub-pixels apart.
func (p projector) gridStep(step float64, minGap float64) float64 {
	if step <= 0 {
		return 0
	}
	for step*p.scale < minGap {
		step *= 2
	}
	return step
}
