package export

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/san-kum/quadviz/internal/render"
)

// WritePNG rasterizes a frame and encodes it as PNG. Traces are blended with
// their alpha so overlapping segments darken, as they do on screen.
func WritePNG(w io.Writer, f render.Frame, width, height int) error {
	return png.Encode(w, Rasterize(f, width, height))
}

func Rasterize(f render.Frame, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(rgba(background, 1)), image.Point{}, draw.Src)
	if !f.Bounds.Valid() || width <= 0 || height <= 0 {
		return img
	}
	v := newView(f.Bounds, width, height)
	grid := rgba(gridColor, 1)

	for gx := math.Ceil(f.Bounds.XMin); gx <= f.Bounds.XMax; gx++ {
		x0, y0 := v.point(render.Point{X: gx, Y: f.Bounds.YMin})
		x1, y1 := v.point(render.Point{X: gx, Y: f.Bounds.YMax})
		line(img, x0, y0, x1, y1, grid)
	}
	for gy := math.Ceil(f.Bounds.YMin); gy <= f.Bounds.YMax; gy++ {
		x0, y0 := v.point(render.Point{X: f.Bounds.XMin, Y: gy})
		x1, y1 := v.point(render.Point{X: f.Bounds.XMax, Y: gy})
		line(img, x0, y0, x1, y1, grid)
	}

	for _, s := range f.Traces {
		segment(img, v, s)
	}
	for _, s := range f.Arms {
		segment(img, v, s)
	}
	for _, c := range f.Bodies {
		cx, cy := v.point(c.Center)
		disc(img, cx, cy, c.Radius*v.scale, rgba(c.Fill, 1))
		ring(img, cx, cy, c.Radius*v.scale, c.LineWidth, rgba(c.Edge, 1))
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
	}
	for _, t := range f.Labels {
		x, y := v.point(t.At)
		d.Dot = fixed.P(int(x), int(y))
		d.DrawString(t.Content)
	}
	return img
}

func segment(img *image.RGBA, v view, s render.Segment) {
	x0, y0 := v.point(s.From)
	x1, y1 := v.point(s.To)
	line(img, x0, y0, x1, y1, rgba(s.Color, s.Alpha))
}

func rgba(hex string, alpha float64) color.NRGBA {
	r, g, b := render.RGB(hex)
	if alpha <= 0 || alpha > 1 {
		alpha = 1
	}
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(alpha * 255))}
}

func blend(img *image.RGBA, x, y int, c color.NRGBA) {
	if !image.Pt(x, y).In(img.Bounds()) {
		return
	}
	src := image.NewUniform(c)
	draw.Draw(img, image.Rect(x, y, x+1, y+1), src, image.Point{}, draw.Over)
}

// line steps along the longer axis one pixel at a time.
func line(img *image.RGBA, x0, y0, x1, y1 float64, c color.NRGBA) {
	steps := int(math.Ceil(math.Max(math.Abs(x1-x0), math.Abs(y1-y0))))
	if steps == 0 {
		blend(img, int(math.Round(x0)), int(math.Round(y0)), c)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		blend(img, int(math.Round(x0+(x1-x0)*t)), int(math.Round(y0+(y1-y0)*t)), c)
	}
}

func disc(img *image.RGBA, cx, cy, r float64, c color.NRGBA) {
	for y := int(cy - r); y <= int(cy+r); y++ {
		for x := int(cx - r); x <= int(cx+r); x++ {
			if math.Hypot(float64(x)-cx, float64(y)-cy) <= r {
				blend(img, x, y, c)
			}
		}
	}
}

func ring(img *image.RGBA, cx, cy, r, w float64, c color.NRGBA) {
	half := math.Max(w, 1) / 2
	for y := int(cy - r - half); y <= int(cy+r+half); y++ {
		for x := int(cx - r - half); x <= int(cx+r+half); x++ {
			if math.Abs(math.Hypot(float64(x)-cx, float64(y)-cy)-r) <= half {
				blend(img, x, y, c)
			}
		}
	}
}
