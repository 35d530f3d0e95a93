package raster

import (
	"errors"
	"image/color"
	"math"
	"sort"

	"github.com/PhillipC05/tpt-asset-forge/forge/canvas"
)

// ErrInvalidGeometry is returned for polygons with fewer than three points.
var ErrInvalidGeometry = errors.New("raster: polygon requires at least 3 points")

// Point is a 2-D vertex.
type Point struct {
	X, Y float64
}

// Pt is shorthand for building vertex lists.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// FillPolygon fills an arbitrary polygon using the even-odd scanline rule.
// The point list is implicitly closed. For each scanline y an edge (p1,p2)
// contributes a crossing iff p1.Y <= y < p2.Y or p2.Y <= y < p1.Y; the
// half-open test keeps shared vertices from being counted twice. Crossing
// x-values are sorted ascending and pixels are filled between consecutive
// pairs over the half-open span [ceil(xa), ceil(xb)). Self-intersecting
// polygons fill strictly by this parity rule.
func FillPolygon(dst *canvas.Canvas, pts []Point, col color.RGBA) error {
	if len(pts) < 3 {
		return ErrInvalidGeometry
	}
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	xs := make([]float64, 0, len(pts))
	for y := int(math.Floor(minY)); y <= int(math.Ceil(maxY)); y++ {
		fy := float64(y)
		xs = xs[:0]
		for i := range pts {
			p1 := pts[i]
			p2 := pts[(i+1)%len(pts)]
			if (p1.Y <= fy && fy < p2.Y) || (p2.Y <= fy && fy < p1.Y) {
				t := (fy - p1.Y) / (p2.Y - p1.Y)
				xs = append(xs, p1.X+t*(p2.X-p1.X))
			}
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for x := int(math.Ceil(xs[i])); x < int(math.Ceil(xs[i+1])); x++ {
				dst.Compose(x, y, col)
			}
		}
	}
	return nil
}
