package raster

import (
	"errors"
	"image/color"
	"testing"

	"github.com/PhillipC05/tpt-asset-forge/forge/canvas"
)

var opaque = color.RGBA{200, 40, 40, 255}

func filledPixels(c *canvas.Canvas) map[[2]int]color.RGBA {
	out := make(map[[2]int]color.RGBA)
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if p := c.PixelAt(x, y); p.A != 0 {
				out[[2]int{x, y}] = p
			}
		}
	}
	return out
}

func TestFillRectHalfOpen(t *testing.T) {
	c := canvas.New(10, 10)
	FillRect(c, 2, 3, 4, 2, opaque)
	got := filledPixels(c)
	if len(got) != 8 {
		t.Fatalf("filled %d pixels, want 8", len(got))
	}
	for y := 3; y < 5; y++ {
		for x := 2; x < 6; x++ {
			if _, ok := got[[2]int{x, y}]; !ok {
				t.Errorf("pixel (%d,%d) not filled", x, y)
			}
		}
	}
}

func TestFillRectNegativeSizeNormalized(t *testing.T) {
	a := canvas.New(10, 10)
	b := canvas.New(10, 10)
	FillRect(a, 6, 5, -4, -2, opaque)
	FillRect(b, 2, 3, 4, 2, opaque)
	if len(filledPixels(a)) != len(filledPixels(b)) {
		t.Fatalf("negative-size rect filled %d pixels, want %d",
			len(filledPixels(a)), len(filledPixels(b)))
	}
	for k := range filledPixels(b) {
		if _, ok := filledPixels(a)[k]; !ok {
			t.Errorf("pixel %v missing from normalized rect", k)
		}
	}
}

func TestPolygonMatchesRect(t *testing.T) {
	cases := []struct {
		name       string
		x, y, w, h int
	}{
		{"small square", 1, 1, 4, 4},
		{"wide", 0, 2, 9, 3},
		{"single row", 3, 3, 5, 1},
		{"full canvas", 0, 0, 12, 12},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rect := canvas.New(12, 12)
			poly := canvas.New(12, 12)
			FillRect(rect, tc.x, tc.y, tc.w, tc.h, opaque)
			err := FillPolygon(poly, []Point{
				Pt(float64(tc.x), float64(tc.y)),
				Pt(float64(tc.x+tc.w), float64(tc.y)),
				Pt(float64(tc.x+tc.w), float64(tc.y+tc.h)),
				Pt(float64(tc.x), float64(tc.y+tc.h)),
			}, opaque)
			if err != nil {
				t.Fatalf("FillPolygon: %v", err)
			}
			for y := 0; y < 12; y++ {
				for x := 0; x < 12; x++ {
					if r, p := rect.PixelAt(x, y), poly.PixelAt(x, y); r != p {
						t.Fatalf("pixel (%d,%d): rect %v, polygon %v", x, y, r, p)
					}
				}
			}
		})
	}
}

func TestFillPolygonTooFewPoints(t *testing.T) {
	c := canvas.New(4, 4)
	for _, pts := range [][]Point{nil, {Pt(1, 1)}, {Pt(1, 1), Pt(2, 2)}} {
		if err := FillPolygon(c, pts, opaque); !errors.Is(err, ErrInvalidGeometry) {
			t.Errorf("FillPolygon(%d points) error = %v, want ErrInvalidGeometry", len(pts), err)
		}
	}
	if len(filledPixels(c)) != 0 {
		t.Error("invalid polygon should draw nothing")
	}
}

func TestFillCircleSymmetry(t *testing.T) {
	c := canvas.New(21, 21)
	FillCircle(c, 10, 10, 7, opaque)
	for y := 0; y < 21; y++ {
		for x := 0; x < 21; x++ {
			p := c.PixelAt(x, y)
			for _, m := range [][2]int{{20 - x, y}, {x, 20 - y}, {y, x}} {
				if q := c.PixelAt(m[0], m[1]); q != p {
					t.Fatalf("pixel (%d,%d)=%v but mirror (%d,%d)=%v", x, y, p, m[0], m[1], q)
				}
			}
		}
	}
	if c.PixelAt(10, 10).A != 255 {
		t.Error("circle center should be opaque")
	}
	if c.PixelAt(0, 0).A != 0 {
		t.Error("corner should stay empty")
	}
}

func TestFillEllipseDegenerateRadius(t *testing.T) {
	c := canvas.New(9, 9)
	FillEllipse(c, 4, 4, 0, 3, opaque)
	if c.PixelAt(4, 4).A == 0 {
		t.Error("zero-radius ellipse should still mark its center")
	}
}

func TestFillTriangleDegenerateIsNoop(t *testing.T) {
	cases := []struct {
		name                   string
		x1, y1, x2, y2, x3, y3 int
	}{
		{"collinear", 1, 1, 3, 3, 5, 5},
		{"repeated point", 2, 2, 2, 2, 6, 6},
		{"all same", 4, 4, 4, 4, 4, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := canvas.New(8, 8)
			FillTriangle(c, tc.x1, tc.y1, tc.x2, tc.y2, tc.x3, tc.y3, opaque)
			if n := len(filledPixels(c)); n != 0 {
				t.Errorf("degenerate triangle filled %d pixels", n)
			}
		})
	}
}

func TestFillTriangleCoversVertices(t *testing.T) {
	c := canvas.New(16, 16)
	FillTriangle(c, 2, 2, 13, 3, 7, 12, opaque)
	for _, v := range [][2]int{{2, 2}, {13, 3}, {7, 12}} {
		if c.PixelAt(v[0], v[1]).A == 0 {
			t.Errorf("vertex %v not filled", v)
		}
	}
	if c.PixelAt(0, 15).A != 0 {
		t.Error("pixel far outside the triangle was filled")
	}
}

func TestLineEndpoints(t *testing.T) {
	c := canvas.New(12, 12)
	Line(c, 1, 1, 10, 8, opaque, 1)
	if c.PixelAt(1, 1).A == 0 || c.PixelAt(10, 8).A == 0 {
		t.Error("line endpoints not drawn")
	}
}

func TestThickLineWiderThanThin(t *testing.T) {
	thin := canvas.New(16, 16)
	thick := canvas.New(16, 16)
	Line(thin, 2, 8, 13, 8, opaque, 1)
	Line(thick, 2, 8, 13, 8, opaque, 3)
	if len(filledPixels(thick)) <= len(filledPixels(thin)) {
		t.Errorf("width-3 line filled %d pixels, thin filled %d",
			len(filledPixels(thick)), len(filledPixels(thin)))
	}
}

func TestLineOutOfBoundsClipped(t *testing.T) {
	c := canvas.New(8, 8)
	Line(c, -5, -5, 20, 20, opaque, 2)
	// Nothing to assert beyond not panicking and staying in bounds.
	if len(filledPixels(c)) == 0 {
		t.Error("clipped line should still touch the canvas")
	}
}

func TestLineAADistributesCoverage(t *testing.T) {
	c := canvas.New(12, 12)
	LineAA(c, 1, 1, 9, 6, color.RGBA{255, 255, 255, 255})
	partial := false
	for _, p := range filledPixels(c) {
		if p.A > 0 && p.A < 255 {
			partial = true
			break
		}
	}
	if !partial {
		t.Error("anti-aliased diagonal should produce partial coverage")
	}
}
