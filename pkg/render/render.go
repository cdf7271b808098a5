// Package render draws a front elevation of a route into a PNG image.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/siili/climbingroutes/pkg/geometry"
	"github.com/siili/climbingroutes/pkg/route"
	"golang.org/x/image/vector"
)

// ErrInvalidSize is returned for a non-positive image size
var ErrInvalidSize = errors.New("invalid image size")

// circleKappa approximates a quarter circle with a cubic Bézier curve
const circleKappa = float32(0.5522847498)

var (
	background = color.RGBA{245, 245, 240, 255}
	ground     = color.RGBA{120, 110, 100, 255}
	outline    = color.RGBA{255, 255, 255, 255}
)

// Options controls the output image
type Options struct {
	Width  int
	Height int
	// Margin in pixels around the route
	Margin float64
	// ClipRadius is the clip marker radius in world units
	ClipRadius float64
}

// DefaultOptions returns the options used by the render command
func DefaultOptions() Options {
	return Options{
		Width:      800,
		Height:     1000,
		Margin:     40,
		ClipRadius: 0.06,
	}
}

// view maps world X/Y onto image pixels, looking at the wall along -Z
type view struct {
	scale   float64
	offsetX float64
	offsetY float64
}

func newView(bbox geometry.BoundingBox, opts Options) view {
	// The floor is always in the picture
	bbox.Extend(geometry.NewVector3(bbox.Center().X, 0, 0))

	size := bbox.Size()
	w := math.Max(size.X, 1)
	h := math.Max(size.Y, 1)

	usableW := float64(opts.Width) - 2*fitMargin(opts.Margin, opts.Width)
	usableH := float64(opts.Height) - 2*fitMargin(opts.Margin, opts.Height)
	scale := math.Min(usableW/w, usableH/h)

	center := bbox.Center()
	return view{
		scale:   scale,
		offsetX: float64(opts.Width)/2 - center.X*scale,
		offsetY: float64(opts.Height)/2 + center.Y*scale,
	}
}

// fitMargin shrinks the margin of a small image to a quarter of its size on each side
func fitMargin(margin float64, size int) float64 {
	if margin < 0 {
		return 0
	}
	if 2*margin >= float64(size) {
		return float64(size) / 4
	}
	return margin
}

func (v view) project(p geometry.Vector3) (float32, float32) {
	return float32(v.offsetX + p.X*v.scale), float32(v.offsetY - p.Y*v.scale)
}

// Elevation draws the route as seen from the front
func Elevation(chain *route.Chain, opts Options) (*image.RGBA, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, opts.Width, opts.Height)
	}

	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	v := newView(geometry.BoundsOf(chain.Positions()), opts)
	r := vector.NewRasterizer(opts.Width, opts.Height)

	_, groundY := v.project(geometry.Vector3{})
	fill(r, img, ground, func() {
		addRect(r, 0, groundY, float32(opts.Width), groundY+2)
	})

	for _, w := range chain.Waypoints() {
		s, ok := w.Segment()
		if !ok || s.Degenerate {
			continue
		}
		x1, y1 := v.project(s.Start())
		x2, y2 := v.project(s.End())
		width := float32(math.Max(2, 2*route.SegmentRadius*v.scale))
		fill(r, img, s.Color.RGBA, func() {
			addStroke(r, x1, y1, x2, y2, width)
		})
	}

	radius := float32(math.Max(3, opts.ClipRadius*v.scale))
	for _, w := range chain.Waypoints() {
		x, y := v.project(w.Position())
		rr := radius
		if w.IsStart() {
			rr *= 1.4
		}
		fill(r, img, outline, func() {
			addCircle(r, x, y, rr+2)
		})
		fill(r, img, w.Color().RGBA, func() {
			addCircle(r, x, y, rr)
		})
	}

	return img, nil
}

// WritePNG renders the route and encodes it as PNG
func WritePNG(w io.Writer, chain *route.Chain, opts Options) error {
	img, err := Elevation(chain, opts)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

func fill(r *vector.Rasterizer, dst *image.RGBA, c color.RGBA, path func()) {
	b := dst.Bounds()
	r.Reset(b.Dx(), b.Dy())
	path()
	r.Draw(dst, b, image.NewUniform(c), image.Point{})
}

func addRect(r *vector.Rasterizer, x0, y0, x1, y1 float32) {
	r.MoveTo(x0, y0)
	r.LineTo(x1, y0)
	r.LineTo(x1, y1)
	r.LineTo(x0, y1)
	r.ClosePath()
}

// addStroke adds a quad of the given width around the line from (x1,y1) to (x2,y2)
func addStroke(r *vector.Rasterizer, x1, y1, x2, y2, width float32) {
	dx, dy := x2-x1, y2-y1
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		return
	}
	nx, ny := -dy/length*width/2, dx/length*width/2

	r.MoveTo(x1+nx, y1+ny)
	r.LineTo(x2+nx, y2+ny)
	r.LineTo(x2-nx, y2-ny)
	r.LineTo(x1-nx, y1-ny)
	r.ClosePath()
}

func addCircle(r *vector.Rasterizer, cx, cy, radius float32) {
	kr := circleKappa * radius

	r.MoveTo(cx, cy-radius)
	r.CubeTo(cx+kr, cy-radius, cx+radius, cy-kr, cx+radius, cy)
	r.CubeTo(cx+radius, cy+kr, cx+kr, cy+radius, cx, cy+radius)
	r.CubeTo(cx-kr, cy+radius, cx-radius, cy+kr, cx-radius, cy)
	r.CubeTo(cx-radius, cy-kr, cx-kr, cy-radius, cx, cy-radius)
	r.ClosePath()
}
