// Package export writes single animation frames as still images.
package export

import (
	"fmt"
	"html"
	"math"
	"strings"

	"github.com/san-kum/quadviz/internal/render"
	"github.com/san-kum/quadviz/internal/viz"
)

const (
	background = "#ffffff"
	gridColor  = "#dddddd"
)

// view maps world coordinates to image pixels with equal scale on both axes.
type view struct {
	bounds render.Rect
	scale  float64
	ox, oy float64
}

func newView(bounds render.Rect, width, height int) view {
	scale := math.Min(float64(width)/bounds.Width(), float64(height)/bounds.Height())
	return view{
		bounds: bounds,
		scale:  scale,
		ox:     (float64(width) - scale*bounds.Width()) / 2,
		oy:     (float64(height) - scale*bounds.Height()) / 2,
	}
}

func (v view) point(p render.Point) (float64, float64) {
	return v.ox + (p.X-v.bounds.XMin)*v.scale, v.oy + (v.bounds.YMax-p.Y)*v.scale
}

// FrameToSVG draws a frame: grid, traces, arms, motors and labels.
func FrameToSVG(f render.Frame, width, height int) string {
	if !f.Bounds.Valid() || width <= 0 || height <= 0 {
		return ""
	}
	v := newView(f.Bounds, width, height)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, background))

	sb.WriteString(fmt.Sprintf(`<g stroke="%s" stroke-width="0.5">`+"\n", gridColor))
	for gx := math.Ceil(f.Bounds.XMin); gx <= f.Bounds.XMax; gx++ {
		x0, y0 := v.point(render.Point{X: gx, Y: f.Bounds.YMin})
		x1, y1 := v.point(render.Point{X: gx, Y: f.Bounds.YMax})
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>`+"\n", x0, y0, x1, y1))
	}
	for gy := math.Ceil(f.Bounds.YMin); gy <= f.Bounds.YMax; gy++ {
		x0, y0 := v.point(render.Point{X: f.Bounds.XMin, Y: gy})
		x1, y1 := v.point(render.Point{X: f.Bounds.XMax, Y: gy})
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>`+"\n", x0, y0, x1, y1))
	}
	sb.WriteString("</g>\n")

	for _, s := range f.Traces {
		writeSegment(&sb, v, s)
	}
	for _, s := range f.Arms {
		writeSegment(&sb, v, s)
	}
	for _, c := range f.Bodies {
		cx, cy := v.point(c.Center)
		sb.WriteString(fmt.Sprintf(`<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s" stroke="%s" stroke-width="%.1f"/>`+"\n",
			cx, cy, c.Radius*v.scale, c.Fill, c.Edge, c.LineWidth))
	}
	for _, t := range f.Labels {
		x, y := v.point(t.At)
		sb.WriteString(fmt.Sprintf(`<text x="%.2f" y="%.2f" font-size="%.0f" font-family="monospace">%s</text>`+"\n",
			x, y, t.FontSize*1.5, html.EscapeString(t.Content)))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func writeSegment(sb *strings.Builder, v view, s render.Segment) {
	x0, y0 := v.point(s.From)
	x1, y1 := v.point(s.To)
	sb.WriteString(fmt.Sprintf(`<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.1f" stroke-opacity="%.2f"/>`+"\n",
		x0, y0, x1, y1, s.Color, s.Width, s.Alpha))
}

// CanvasToSVG converts a Braille canvas to SVG format, keeping cell colors.
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2   // 2 sub-pixels per char
	height := float64(canvas.Height) * scale * 4 // 4 sub-pixels per char

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="#00ff00">
`, width, height, width, height))

	// Braille dot-to-bit mapping
	pixelMap := [4][2]int{
		{0x01, 0x08},
		{0x02, 0x10},
		{0x04, 0x20},
		{0x40, 0x80},
	}

	dotRadius := scale * 0.4

	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			r := canvas.Grid[row][col]
			if r <= 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)
			fill := ""
			if c := canvas.Colors[row][col]; c != "" {
				fill = fmt.Sprintf(` fill="%s"`, string(c))
			}

			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4

			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] != 0 {
						cx := baseX + float64(dx)*scale + scale/2
						cy := baseY + float64(dy)*scale + scale/2
						sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"%s/>
`, cx, cy, dotRadius, fill))
					}
				}
			}
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
