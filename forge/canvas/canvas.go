// Package canvas provides the RGBA pixel buffer every generator draws into.
//
// All pixel access is bounds-checked: writes outside the buffer are dropped
// and reads outside return transparent black. This lets primitives iterate
// naive bounding boxes without range checks at the call site.
package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
)

// Canvas is a width×height RGBA buffer owned by a single generation call.
type Canvas struct {
	img *image.RGBA
	w   int
	h   int
}

// New returns a canvas initialized to fully transparent black.
func New(w, h int) *Canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Canvas{
		img: image.NewRGBA(image.Rect(0, 0, w, h)),
		w:   w,
		h:   h,
	}
}

// FromImage wraps an existing RGBA image (used when decoding PNGs).
func FromImage(img *image.RGBA) *Canvas {
	b := img.Bounds()
	return &Canvas{img: img, w: b.Dx(), h: b.Dy()}
}

func (c *Canvas) Width() int  { return c.w }
func (c *Canvas) Height() int { return c.h }

// In reports whether (x,y) lies inside the buffer.
func (c *Canvas) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.w && y < c.h
}

// SetPixel writes col at (x,y). Out-of-bounds writes are dropped.
func (c *Canvas) SetPixel(x, y int, col color.RGBA) {
	if !c.In(x, y) {
		return
	}
	c.img.SetRGBA(x, y, col)
}

// PixelAt returns the pixel at (x,y), or transparent black out of bounds.
func (c *Canvas) PixelAt(x, y int) color.RGBA {
	if !c.In(x, y) {
		return color.RGBA{}
	}
	return c.img.RGBAAt(x, y)
}

// BlendPixel interpolates the existing RGB toward col by alpha in [0,1].
// The stored alpha channel is untouched unless alpha reaches 1, in which
// case the pixel is replaced outright.
func (c *Canvas) BlendPixel(x, y int, col color.RGBA, alpha float64) {
	if !c.In(x, y) {
		return
	}
	if alpha <= 0 {
		return
	}
	if alpha >= 1 {
		c.img.SetRGBA(x, y, col)
		return
	}
	ex := c.img.RGBAAt(x, y)
	c.img.SetRGBA(x, y, color.RGBA{
		R: ClampU8(float64(ex.R)*(1-alpha) + float64(col.R)*alpha),
		G: ClampU8(float64(ex.G)*(1-alpha) + float64(col.G)*alpha),
		B: ClampU8(float64(ex.B)*(1-alpha) + float64(col.B)*alpha),
		A: ex.A,
	})
}

// Compose alpha-composites col over the existing pixel using col.A as
// coverage. Fully transparent destinations take col directly; otherwise the
// result alpha is the max of both, so drawing only ever adds coverage.
func (c *Canvas) Compose(x, y int, col color.RGBA) {
	if !c.In(x, y) || col.A == 0 {
		return
	}
	ex := c.img.RGBAAt(x, y)
	if ex.A == 0 {
		c.img.SetRGBA(x, y, col)
		return
	}
	a := float64(col.A) / 255.0
	c.img.SetRGBA(x, y, color.RGBA{
		R: ClampU8(float64(ex.R)*(1-a) + float64(col.R)*a),
		G: ClampU8(float64(ex.G)*(1-a) + float64(col.G)*a),
		B: ClampU8(float64(ex.B)*(1-a) + float64(col.B)*a),
		A: ClampU8(math.Max(float64(ex.A), float64(col.A))),
	})
}

// Image exposes the backing RGBA buffer.
func (c *Canvas) Image() *image.RGBA { return c.img }

// EncodePNG writes the buffer as a lossless PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, c.img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// DecodePNG reads a PNG back into a canvas.
func DecodePNG(r io.Reader) (*Canvas, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode png: %w", err)
	}
	if rgba, ok := img.(*image.RGBA); ok {
		return FromImage(rgba), nil
	}
	b := img.Bounds()
	out := New(b.Dx(), b.Dy())
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			r, g, bl, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			out.SetPixel(x, y, color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(bl >> 8), uint8(a >> 8)})
		}
	}
	return out, nil
}
