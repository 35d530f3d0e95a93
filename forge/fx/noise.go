package fx

import "math"

// FBM sums octaves of smoothed value noise. persistence controls how fast
// amplitude falls per octave; seed shifts the lattice so independent passes
// do not correlate.
func FBM(x, y float64, octaves int, persistence, seed float64) float64 {
	total, amp, freq, maxV := 0.0, 1.0, 1.0, 0.0
	for i := 0; i < octaves; i++ {
		total += ValueNoise(x*freq+seed*17.3, y*freq+seed*31.7) * amp
		maxV += amp
		amp *= persistence
		freq *= 2.0
	}
	return total / maxV
}

// ValueNoise is hash-lattice noise with smoothstep interpolation, in [0,1].
func ValueNoise(x, y float64) float64 {
	ix, iy := int(math.Floor(x)), int(math.Floor(y))
	fx, fy := x-math.Floor(x), y-math.Floor(y)
	fx = fx * fx * (3.0 - 2.0*fx)
	fy = fy * fy * (3.0 - 2.0*fy)
	return lerp(
		lerp(hashF(ix, iy), hashF(ix+1, iy), fx),
		lerp(hashF(ix, iy+1), hashF(ix+1, iy+1), fx),
		fy,
	)
}

// Worley returns the distance to the nearest jittered cell point, in [0,1].
// Useful for cracked-stone and scale patterns.
func Worley(x, y, scale float64, seed int) float64 {
	px, py := x/scale, y/scale
	ix, iy := int(math.Floor(px)), int(math.Floor(py))
	minDist := 999.0
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			cx := float64(ix+dx) + hashF(ix+dx+seed, iy+dy+seed*3)
			cy := float64(iy+dy) + hashF(ix+dx+seed*7, iy+dy+seed*11)
			ddx, ddy := px-cx, py-cy
			d := math.Sqrt(ddx*ddx + ddy*ddy)
			if d < minDist {
				minDist = d
			}
		}
	}
	if minDist > 1 {
		return 1
	}
	return minDist
}

func hashF(x, y int) float64 {
	h := x*374761393 + y*668265263
	h = (h ^ (h >> 13)) * 1274126177
	h = h ^ (h >> 16)
	return float64(h&0x7FFFFFFF) / float64(0x7FFFFFFF)
}

func lerp(a, b, t float64) float64 { return a*(1-t) + b*t }
