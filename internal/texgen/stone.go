// Package texgen draws the procedural stone texture used on the platform.
package texgen

import (
	"image"
	"image/color"
	"image/draw"
	"math/rand/v2"
	"time"

	"github.com/chewxy/math32"
	"golang.org/x/image/vector"
)

// Options controls stone texture generation. Seed == 0 picks a time-based seed, so every
// run looks slightly different; any other seed reproduces the same image.
type Options struct {
	Size     int
	Speckles int
	Streaks  int
	Seed     uint64
}

// DefaultOptions returns the stock texture settings.
func DefaultOptions() Options {
	return Options{
		Size:     512,
		Speckles: 2500,
		Streaks:  20,
	}
}

var (
	baseColor    = color.NRGBA{0x8f, 0x9a, 0xa7, 0xff}
	speckleColor = color.NRGBA{60, 70, 82, 0}
	streakStops  = [3]color.NRGBA{
		{170, 180, 190, alpha(0.05)},
		{60, 70, 82, alpha(0.25)},
		{200, 210, 220, alpha(0.08)},
	}
)

// discSegments is the polygon resolution used for speckles.
const discSegments = 16

// Stone returns a Size×Size stone-like image: a flat base, a pass of translucent dark
// speckles, then a pass of long faint streaks with a light-dark-light gradient.
func Stone(opts Options) *image.RGBA {
	if opts.Size <= 0 {
		opts.Size = DefaultOptions().Size
	}
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	size := float32(opts.Size)
	img := image.NewRGBA(image.Rect(0, 0, opts.Size, opts.Size))
	draw.Draw(img, img.Bounds(), image.NewUniform(baseColor), image.Point{}, draw.Src)

	p := &painter{dst: img}
	for i := 0; i < opts.Speckles; i++ {
		x := rng.Float32() * size
		y := rng.Float32() * size
		radius := rng.Float32()*3 + 1
		c := speckleColor
		c.A = alpha(rng.Float32()*0.25 + 0.05)
		p.disc(x, y, radius, image.NewUniform(c))
	}

	for i := 0; i < opts.Streaks; i++ {
		x0 := rng.Float32() * size
		y0 := rng.Float32() * size
		length := rng.Float32()*150 + 40
		thickness := rng.Float32()*3 + 1
		sin, cos := math32.Sincos(rng.Float32() * 2 * math32.Pi)
		x1 := x0 + cos*length
		y1 := y0 + sin*length
		p.stroke(x0, y0, x1, y1, thickness, &linearGradient{x0: x0, y0: y0, x1: x1, y1: y1, stops: streakStops})
	}
	return img
}

func alpha(f float32) uint8 {
	return uint8(f*255 + 0.5)
}

// painter rasterises one shape at a time into dst, sizing the rasteriser to the shape's
// clipped bounding box.
type painter struct {
	dst *image.RGBA
	z   vector.Rasterizer
}

func (p *painter) disc(cx, cy, r float32, src image.Image) {
	rect, ok := p.begin(cx-r, cy-r, cx+r, cy+r)
	if !ok {
		return
	}
	ox, oy := float32(rect.Min.X), float32(rect.Min.Y)
	for i := 0; i <= discSegments; i++ {
		sin, cos := math32.Sincos(float32(i) / discSegments * 2 * math32.Pi)
		x, y := cx+cos*r-ox, cy+sin*r-oy
		if i == 0 {
			p.z.MoveTo(x, y)
		} else {
			p.z.LineTo(x, y)
		}
	}
	p.z.ClosePath()
	p.z.Draw(p.dst, rect, src, rect.Min)
}

// stroke draws a butt-capped line of the given width.
func (p *painter) stroke(x0, y0, x1, y1, width float32, src image.Image) {
	dx, dy := x1-x0, y1-y0
	l := math32.Hypot(dx, dy)
	if l == 0 {
		return
	}
	nx, ny := -dy/l*width/2, dx/l*width/2
	rect, ok := p.begin(
		min(x0, x1)-width, min(y0, y1)-width,
		max(x0, x1)+width, max(y0, y1)+width,
	)
	if !ok {
		return
	}
	ox, oy := float32(rect.Min.X), float32(rect.Min.Y)
	p.z.MoveTo(x0+nx-ox, y0+ny-oy)
	p.z.LineTo(x1+nx-ox, y1+ny-oy)
	p.z.LineTo(x1-nx-ox, y1-ny-oy)
	p.z.LineTo(x0-nx-ox, y0-ny-oy)
	p.z.ClosePath()
	p.z.Draw(p.dst, rect, src, rect.Min)
}

// begin resets the rasteriser to the integer box around (x0,y0)-(x1,y1) clipped to dst.
func (p *painter) begin(x0, y0, x1, y1 float32) (image.Rectangle, bool) {
	rect := image.Rect(
		int(math32.Floor(x0)), int(math32.Floor(y0)),
		int(math32.Ceil(x1)), int(math32.Ceil(y1)),
	).Intersect(p.dst.Bounds())
	if rect.Empty() {
		return rect, false
	}
	p.z.Reset(rect.Dx(), rect.Dy())
	p.z.DrawOp = draw.Over
	return rect, true
}

// linearGradient is an unbounded image whose colour varies along the segment (x0,y0)-(x1,y1)
// through three evenly spaced stops, clamped beyond the ends.
type linearGradient struct {
	x0, y0, x1, y1 float32
	stops          [3]color.NRGBA
}

func (g *linearGradient) ColorModel() color.Model { return color.NRGBAModel }

func (g *linearGradient) Bounds() image.Rectangle {
	return image.Rect(-1e9, -1e9, 1e9, 1e9)
}

func (g *linearGradient) At(x, y int) color.Color {
	dx, dy := g.x1-g.x0, g.y1-g.y0
	t := ((float32(x)+0.5-g.x0)*dx + (float32(y)+0.5-g.y0)*dy) / (dx*dx + dy*dy)
	t = max(0, min(1, t))
	if t < 0.5 {
		return lerpColor(g.stops[0], g.stops[1], t*2)
	}
	return lerpColor(g.stops[1], g.stops[2], (t-0.5)*2)
}

func lerpColor(a, b color.NRGBA, t float32) color.NRGBA {
	mix := func(u, v uint8) uint8 {
		return uint8(float32(u) + (float32(v)-float32(u))*t + 0.5)
	}
	return color.NRGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), mix(a.A, b.A)}
}
