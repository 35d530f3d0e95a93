// Package fx contains the per-pixel post-processing passes applied after the
// base shapes are down: material tints, glows, scatter texture and aging.
// Every pass reads and mutates the current buffer in place; none keeps a
// copy of a previous state.
package fx

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/PhillipC05/tpt-asset-forge/forge/canvas"
)

// TintBlend shifts the RGB of every non-transparent pixel toward target by
// weight in [0,1]. Alpha is never altered. weight 0 is a no-op, weight 1
// replaces RGB outright.
func TintBlend(dst *canvas.Canvas, target color.RGBA, weight float64) {
	weight = canvas.Clamp(weight, 0, 1)
	if weight == 0 {
		return
	}
	for y := 0; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			ex := dst.PixelAt(x, y)
			if ex.A == 0 {
				continue
			}
			dst.SetPixel(x, y, color.RGBA{
				R: canvas.ClampU8(float64(ex.R)*(1-weight) + float64(target.R)*weight),
				G: canvas.ClampU8(float64(ex.G)*(1-weight) + float64(target.G)*weight),
				B: canvas.ClampU8(float64(ex.B)*(1-weight) + float64(target.B)*weight),
				A: ex.A,
			})
		}
	}
}

// Brightness multiplies the RGB of every non-transparent pixel by factor.
func Brightness(dst *canvas.Canvas, factor float64) {
	if factor < 0 {
		factor = 0
	}
	for y := 0; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			ex := dst.PixelAt(x, y)
			if ex.A == 0 {
				continue
			}
			dst.SetPixel(x, y, canvas.Scale(ex, factor))
		}
	}
}

// RadialGlow lays a glow annulus around (cx,cy). Inside inner the falloff is
// 1; between inner and outer it fades linearly to 0. The glow color is
// composited at alpha maxAlpha*falloff and the stored alpha only ever goes
// up. Glows add coverage, never subtract.
func RadialGlow(dst *canvas.Canvas, cx, cy, inner, outer float64, col color.RGBA, maxAlpha float64) {
	if outer <= 0 || outer <= inner {
		return
	}
	maxAlpha = canvas.Clamp(maxAlpha, 0, 1)
	x0 := int(math.Floor(cx - outer))
	x1 := int(math.Ceil(cx + outer))
	y0 := int(math.Floor(cy - outer))
	y1 := int(math.Ceil(cy + outer))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if !dst.In(x, y) {
				continue
			}
			dx := float64(x) - cx
			dy := float64(y) - cy
			d := math.Sqrt(dx*dx + dy*dy)
			if d > outer {
				continue
			}
			fall := 1.0
			if d > inner {
				fall = 1.0 - (d-inner)/(outer-inner)
			}
			a := canvas.ClampU8(maxAlpha * fall * 255)
			if a == 0 {
				continue
			}
			ex := dst.PixelAt(x, y)
			t := float64(a) / 255.0
			out := color.RGBA{
				R: canvas.ClampU8(float64(ex.R)*(1-t) + float64(col.R)*t),
				G: canvas.ClampU8(float64(ex.G)*(1-t) + float64(col.G)*t),
				B: canvas.ClampU8(float64(ex.B)*(1-t) + float64(col.B)*t),
				A: ex.A,
			}
			if a > ex.A {
				out.A = a
			}
			dst.SetPixel(x, y, out)
		}
	}
}

// ScatterNoise visits a density fraction of the region [x,x+w)×[y,y+h) and
// overwrites non-transparent pixels with a random pick from choices. Used
// for grain, scales, rust and weathering texture.
func ScatterNoise(dst *canvas.Canvas, rng *rand.Rand, x, y, w, h int, density float64, choices []color.RGBA) {
	if len(choices) == 0 || w <= 0 || h <= 0 {
		return
	}
	density = canvas.Clamp(density, 0, 1)
	n := int(float64(w*h) * density)
	for i := 0; i < n; i++ {
		px := x + rng.Intn(w)
		py := y + rng.Intn(h)
		ex := dst.PixelAt(px, py)
		if ex.A == 0 {
			continue
		}
		c := choices[rng.Intn(len(choices))]
		dst.SetPixel(px, py, color.RGBA{c.R, c.G, c.B, ex.A})
	}
}

// AgeDarken browns every non-transparent pixel proportionally to factor in
// [0,1]. Blue drops fastest so heavy aging reads as yellowed parchment or
// tarnished metal. Channels clamp at zero.
func AgeDarken(dst *canvas.Canvas, factor float64) {
	factor = canvas.Clamp(factor, 0, 1)
	if factor == 0 {
		return
	}
	for y := 0; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			ex := dst.PixelAt(x, y)
			if ex.A == 0 {
				continue
			}
			dst.SetPixel(x, y, color.RGBA{
				R: canvas.ClampU8(float64(ex.R) * (1 - factor*0.35)),
				G: canvas.ClampU8(float64(ex.G) * (1 - factor*0.45)),
				B: canvas.ClampU8(float64(ex.B) * (1 - factor*0.6)),
				A: ex.A,
			})
		}
	}
}

// Weather streaks dirt and rust down the region, heavier toward the bottom.
func Weather(dst *canvas.Canvas, rng *rand.Rand, x, y, w, h int, intensity float64) {
	if w <= 0 || h <= 0 || intensity <= 0 {
		return
	}
	seed := float64(rng.Int63n(1000))
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			ex := dst.PixelAt(px, py)
			if ex.A == 0 {
				continue
			}
			t := float64(py-y) / float64(h)
			dn := FBM(float64(px)*0.1, float64(py)*0.1, 3, 0.5, seed)
			da := t * t * intensity * 0.4 * (0.5 + dn)
			if da > 0.02 {
				dst.Compose(px, py, color.RGBA{60, 50, 35, canvas.ClampU8(da * 255)})
			}
		}
	}
	// Rust runs
	for i := 0; i < int(intensity*5); i++ {
		rx := x + rng.Intn(w)
		ry := y + h/3 + rng.Intn(maxInt(h/3, 1))
		for j := 0; j < 5+rng.Intn(15); j++ {
			if ry+j < y+h {
				dst.Compose(rx+rng.Intn(3)-1, ry+j, color.RGBA{120, 60, 20, uint8(40 + rng.Intn(40))})
			}
		}
	}
}

// SoftShadow draws a Gaussian-falloff elliptical shadow under a sprite.
func SoftShadow(dst *canvas.Canvas, cx, cy, rx, ry int, intensity float64) {
	if rx <= 0 || ry <= 0 {
		return
	}
	for py := cy - ry*2; py <= cy+ry*2; py++ {
		for px := cx - rx*2; px <= cx+rx*2; px++ {
			dx := float64(px-cx) / float64(rx)
			dy := float64(py-cy) / float64(ry)
			d2 := dx*dx + dy*dy
			if d2 < 4.0 {
				dst.Compose(px, py, color.RGBA{0, 0, 0, canvas.ClampU8(intensity * 255 * math.Exp(-d2*1.2))})
			}
		}
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
