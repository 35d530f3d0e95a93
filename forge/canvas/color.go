package canvas

import "image/color"

// ClampU8 converts a float to a byte, clamping to [0,255].
func ClampU8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Clamp limits v to [lo,hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates between two colors, t in [0,1].
func Lerp(a, b color.RGBA, t float64) color.RGBA {
	t = Clamp(t, 0, 1)
	return color.RGBA{
		R: ClampU8(float64(a.R)*(1-t) + float64(b.R)*t),
		G: ClampU8(float64(a.G)*(1-t) + float64(b.G)*t),
		B: ClampU8(float64(a.B)*(1-t) + float64(b.B)*t),
		A: ClampU8(float64(a.A)*(1-t) + float64(b.A)*t),
	}
}

// Darken scales RGB down by amt in [0,0.9].
func Darken(c color.RGBA, amt float64) color.RGBA {
	f := 1.0 - Clamp(amt, 0, 0.9)
	return color.RGBA{ClampU8(float64(c.R) * f), ClampU8(float64(c.G) * f), ClampU8(float64(c.B) * f), c.A}
}

// Brighten lifts RGB by amt*255.
func Brighten(c color.RGBA, amt float64) color.RGBA {
	return color.RGBA{ClampU8(float64(c.R) + amt*255), ClampU8(float64(c.G) + amt*255), ClampU8(float64(c.B) + amt*255), c.A}
}

// WithAlpha returns c with a replacement alpha.
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	return color.RGBA{c.R, c.G, c.B, a}
}

// Scale multiplies RGB by f, leaving alpha alone.
func Scale(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{ClampU8(float64(c.R) * f), ClampU8(float64(c.G) * f), ClampU8(float64(c.B) * f), c.A}
}
