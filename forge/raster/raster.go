// Package raster holds the stateless geometry-to-pixel primitives shared by
// every sprite generator. Primitives composite over existing canvas content;
// with opaque colors repeated draws are idempotent.
package raster

import (
	"image/color"
	"math"

	"github.com/PhillipC05/tpt-asset-forge/forge/canvas"
)

// FillRect writes every pixel in [x,x+w) × [y,y+h). Negative sizes are
// normalized to their absolute value, anchored at the same corner.
func FillRect(dst *canvas.Canvas, x, y, w, h int, col color.RGBA) {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			dst.Compose(px, py, col)
		}
	}
}

// FillEllipse fills the axis-aligned ellipse centered at (cx,cy) with radii
// rx, ry. A pixel is inside iff ((x-cx)/rx)² + ((y-cy)/ry)² <= 1. The rim is
// feathered over the outer 15% of the radius, matching the hand-drawn look
// of the original tiles.
func FillEllipse(dst *canvas.Canvas, cx, cy, rx, ry int, col color.RGBA) {
	if rx < 0 {
		rx = -rx
	}
	if ry < 0 {
		ry = -ry
	}
	if rx == 0 || ry == 0 {
		dst.Compose(cx, cy, col)
		return
	}
	for py := cy - ry; py <= cy+ry; py++ {
		for px := cx - rx; px <= cx+rx; px++ {
			dx := float64(px-cx) / float64(rx)
			dy := float64(py-cy) / float64(ry)
			d := dx*dx + dy*dy
			if d > 1.0 {
				continue
			}
			a := col.A
			if d > 0.85 {
				a = canvas.ClampU8(float64(a) * (1.0 - d) / 0.15)
			}
			dst.Compose(px, py, color.RGBA{col.R, col.G, col.B, a})
		}
	}
}

// FillCircle is FillEllipse with equal radii and a distance-based edge feather.
func FillCircle(dst *canvas.Canvas, cx, cy, r int, col color.RGBA) {
	if r < 0 {
		r = -r
	}
	for py := cy - r; py <= cy+r; py++ {
		for px := cx - r; px <= cx+r; px++ {
			dx := float64(px - cx)
			dy := float64(py - cy)
			d := math.Sqrt(dx*dx + dy*dy)
			if d > float64(r) {
				continue
			}
			a := col.A
			if d > float64(r)-1 {
				a = canvas.ClampU8(float64(a) * (float64(r) - d))
			}
			dst.Compose(px, py, color.RGBA{col.R, col.G, col.B, a})
		}
	}
}

// Line draws a segment by parametric stepping. width > 1 thickens the stroke
// perpendicular to the segment direction.
func Line(dst *canvas.Canvas, x1, y1, x2, y2 int, col color.RGBA, width int) {
	if width < 1 {
		width = 1
	}
	if width == 1 {
		segment(dst, float64(x1), float64(y1), float64(x2), float64(y2), col)
		return
	}
	dx := float64(x2 - x1)
	dy := float64(y2 - y1)
	l := math.Sqrt(dx*dx + dy*dy)
	if l == 0 {
		FillCircle(dst, x1, y1, width/2, col)
		return
	}
	nx, ny := -dy/l, dx/l
	half := float64(width-1) / 2
	for t := -half; t <= half; t += 0.5 {
		segment(dst, float64(x1)+nx*t, float64(y1)+ny*t, float64(x2)+nx*t, float64(y2)+ny*t, col)
	}
}

func segment(dst *canvas.Canvas, x0, y0, x1, y1 float64, col color.RGBA) {
	steps := int(math.Max(math.Abs(x1-x0), math.Abs(y1-y0)))
	if steps == 0 {
		dst.Compose(int(math.Round(x0)), int(math.Round(y0)), col)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := x0 + t*(x1-x0)
		y := y0 + t*(y1-y0)
		dst.Compose(int(math.Round(x)), int(math.Round(y)), col)
	}
}

// LineAA draws an anti-aliased single-pixel line, distributing coverage over
// the four neighbouring pixels of each step.
func LineAA(dst *canvas.Canvas, x0, y0, x1, y1 int, col color.RGBA) {
	dx := math.Abs(float64(x1 - x0))
	dy := math.Abs(float64(y1 - y0))
	steps := int(math.Max(dx, dy))
	if steps == 0 {
		dst.Compose(x0, y0, col)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := float64(x0) + t*float64(x1-x0)
		y := float64(y0) + t*float64(y1-y0)
		ix, iy := int(math.Floor(x)), int(math.Floor(y))
		fx, fy := x-float64(ix), y-float64(iy)
		dst.Compose(ix, iy, canvas.WithAlpha(col, canvas.ClampU8(float64(col.A)*(1-fx)*(1-fy))))
		dst.Compose(ix+1, iy, canvas.WithAlpha(col, canvas.ClampU8(float64(col.A)*fx*(1-fy))))
		dst.Compose(ix, iy+1, canvas.WithAlpha(col, canvas.ClampU8(float64(col.A)*(1-fx)*fy)))
		dst.Compose(ix+1, iy+1, canvas.WithAlpha(col, canvas.ClampU8(float64(col.A)*fx*fy)))
	}
}

// FillTriangle fills a triangle by testing every bounding-box pixel against
// the three signed edge functions. Degenerate (zero-area) triangles draw
// nothing.
func FillTriangle(dst *canvas.Canvas, x1, y1, x2, y2, x3, y3 int, col color.RGBA) {
	area := (x2-x1)*(y3-y1) - (x3-x1)*(y2-y1)
	if area == 0 {
		return
	}
	minX := min3(x1, x2, x3)
	maxX := max3(x1, x2, x3)
	minY := min3(y1, y2, y3)
	maxY := max3(y1, y2, y3)
	for py := minY; py <= maxY; py++ {
		for px := minX; px <= maxX; px++ {
			d1 := edgeSign(px, py, x1, y1, x2, y2)
			d2 := edgeSign(px, py, x2, y2, x3, y3)
			d3 := edgeSign(px, py, x3, y3, x1, y1)
			hasNeg := d1 < 0 || d2 < 0 || d3 < 0
			hasPos := d1 > 0 || d2 > 0 || d3 > 0
			if !(hasNeg && hasPos) {
				dst.Compose(px, py, col)
			}
		}
	}
}

func edgeSign(px, py, ax, ay, bx, by int) int {
	return (px-bx)*(ay-by) - (ax-bx)*(py-by)
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func max3(a, b, c int) int {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}
