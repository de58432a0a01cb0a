// Package plot draws response curves into raster images.
//
// Curves are traced on a supersampled canvas and scaled down with a
// Catmull-Rom filter, which smooths the staircase of integer outputs
// without hiding it. Labels are drawn afterwards at the final resolution.
package plot

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/curve"
	"github.com/gogpu/curve/internal/parallel"
	"github.com/gogpu/curve/internal/profile"
)

const (
	// DefaultWidth is the image width used when Options.Width is zero.
	DefaultWidth = 640

	// DefaultHeight is the image height used when Options.Height is zero.
	DefaultHeight = 480

	margin      = 28
	supersample = 2
	divisions   = 4
	lineHeight  = 14
	shade       = 0x30
)

var (
	// ErrEmpty is returned when there is nothing to plot.
	ErrEmpty = errors.New("plot: no curves")

	// ErrSize is returned for an image too small to hold the plot area.
	ErrSize = errors.New("plot: image too small")
)

// Palette colors successive curves, cycling when exhausted.
var Palette = []color.RGBA{
	{0x1f, 0x77, 0xb4, 0xff},
	{0xd6, 0x27, 0x28, 0xff},
	{0x2c, 0xa0, 0x2c, 0xff},
	{0xff, 0x7f, 0x0e, 0xff},
	{0x94, 0x67, 0xbd, 0xff},
	{0x8c, 0x56, 0x4b, 0xff},
}

var (
	gridColor = color.RGBA{0xe0, 0xe0, 0xe0, 0xff}
	axisColor = color.RGBA{0x40, 0x40, 0x40, 0xff}
)

// Options controls the rendered image.
type Options struct {
	Width, Height int

	// Background fills the image. Nil means white.
	Background color.Color

	// Workers is the number of goroutines sampling curves. Zero means
	// GOMAXPROCS.
	Workers int
}

func (o Options) size() (w, h int) {
	w, h = o.Width, o.Height
	if w == 0 {
		w = DefaultWidth
	}
	if h == 0 {
		h = DefaultHeight
	}
	return w, h
}

// Render draws every evaluator onto one chart. Each curve is normalized to
// its own domain, so curves of different widths share the axes.
func Render(evs []profile.Evaluator, opts Options) (*image.RGBA, error) {
	if len(evs) == 0 {
		return nil, ErrEmpty
	}
	w, h := opts.size()
	if w < 4*margin || h < 4*margin {
		return nil, fmt.Errorf("%w: %dx%d", ErrSize, w, h)
	}
	bg := opts.Background
	if bg == nil {
		bg = color.White
	}

	area := image.Rect(margin, margin, w-margin, h-margin)

	big := image.NewRGBA(image.Rect(0, 0, w*supersample, h*supersample))
	draw.Draw(big, big.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	bigArea := image.Rectangle{Min: area.Min.Mul(supersample), Max: area.Max.Mul(supersample)}
	drawGrid(big, bigArea)

	pool := parallel.NewPool(opts.Workers)
	defer pool.Close()
	for i, ev := range evs {
		trace(pool, big, bigArea, ev, Palette[i%len(Palette)])
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(img, img.Bounds(), big, big.Bounds(), draw.Src, nil)
	drawLabels(img, area, evs)

	curve.Logger().Debug("plot rendered", "curves", len(evs), "width", w, "height", h)
	return img, nil
}

// WritePNG renders evs and encodes the result as PNG.
func WritePNG(w io.Writer, evs []profile.Evaluator, opts Options) error {
	img, err := Render(evs, opts)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("plot: encode: %w", err)
	}
	return nil
}

func drawGrid(img *image.RGBA, r image.Rectangle) {
	for i := 1; i < divisions; i++ {
		x := r.Min.X + r.Dx()*i/divisions
		y := r.Min.Y + r.Dy()*i/divisions
		line(img, x, r.Min.Y, x, r.Max.Y-1, gridColor)
		line(img, r.Min.X, y, r.Max.X-1, y, gridColor)
	}
	for t := 0; t < supersample; t++ {
		line(img, r.Min.X, r.Max.Y-1-t, r.Max.X-1, r.Max.Y-1-t, axisColor)
		line(img, r.Min.X+t, r.Min.Y, r.Min.X+t, r.Max.Y-1, axisColor)
	}
}

// trace samples ev once per canvas column, shades the area between the
// curve and zero output, then joins the samples.
func trace(pool *parallel.Pool, img *image.RGBA, r image.Rectangle, ev profile.Evaluator, c color.RGBA) {
	lo, hi := ev.Domain()
	if lo < 0 {
		lo = -hi
	}
	span := hi - lo
	cols := r.Dx() - 1
	rows := int64(r.Dy() - 1)
	toY := func(v int64) int {
		return r.Max.Y - 1 - int((v-lo)*rows/span)
	}

	pts := make([]image.Point, cols+1)
	pool.Chunks(len(pts), pool.Workers(), func(first, last int) {
		for i := first; i < last; i++ {
			in := lo + span*int64(i)/int64(cols)
			out := min(max(ev.Get(in), lo), hi)
			pts[i] = image.Pt(r.Min.X+i, toY(out))
		}
	})

	b := img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	zero := float32(toY(0))
	z.MoveTo(float32(pts[0].X), zero)
	for _, p := range pts {
		z.LineTo(float32(p.X), float32(p.Y))
	}
	z.LineTo(float32(pts[len(pts)-1].X), zero)
	z.ClosePath()
	z.Draw(img, b, image.NewUniform(color.NRGBA{c.R, c.G, c.B, shade}), image.Point{})

	for i := 1; i < len(pts); i++ {
		for t := 0; t < supersample; t++ {
			line(img, pts[i-1].X, pts[i-1].Y-t, pts[i].X, pts[i].Y-t, c)
		}
	}
}

func drawLabels(img *image.RGBA, area image.Rectangle, evs []profile.Evaluator) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(axisColor),
		Face: basicfont.Face7x13,
	}

	left := "0%"
	for _, ev := range evs {
		if lo, _ := ev.Domain(); lo < 0 {
			left = "-100%"
			break
		}
	}
	base := area.Max.Y + lineHeight
	d.Dot = fixed.P(area.Min.X, base)
	d.DrawString(left)
	right := "100%"
	d.Dot = fixed.P(area.Max.X-d.MeasureString(right).Ceil(), base)
	d.DrawString(right)

	for i, ev := range evs {
		d.Src = image.NewUniform(Palette[i%len(Palette)])
		d.Dot = fixed.P(area.Min.X+6, area.Min.Y+lineHeight*(i+1))
		d.DrawString(fmt.Sprintf("%s %s", ev.Name(), ev))
	}
}

// line draws a one-pixel segment with Bresenham's algorithm.
func line(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	dx, sx := abs(x1-x0), sign(x1-x0)
	dy, sy := -abs(y1-y0), sign(y1-y0)
	e := dx + dy
	for {
		img.SetRGBA(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
