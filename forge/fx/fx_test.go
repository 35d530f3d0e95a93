package fx

import (
	"image/color"
	"math/rand"
	"testing"

	"github.com/PhillipC05/tpt-asset-forge/forge/canvas"
)

func solidCanvas(w, h int, col color.RGBA) *canvas.Canvas {
	c := canvas.New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c.SetPixel(x, y, col)
		}
	}
	return c
}

func TestTintBlend(t *testing.T) {
	base := color.RGBA{100, 100, 100, 200}
	target := color.RGBA{200, 0, 0, 255}
	cases := []struct {
		name   string
		weight float64
		wantR  uint8
		wantG  uint8
	}{
		{"zero weight is a no-op", 0, 100, 100},
		{"half weight averages", 0.5, 150, 50},
		{"full weight replaces rgb", 1, 200, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := solidCanvas(4, 4, base)
			TintBlend(c, target, tc.weight)
			got := c.PixelAt(1, 1)
			if got.R != tc.wantR || got.G != tc.wantG {
				t.Errorf("got R=%d G=%d, want R=%d G=%d", got.R, got.G, tc.wantR, tc.wantG)
			}
			if got.A != base.A {
				t.Errorf("alpha changed: %d, want %d", got.A, base.A)
			}
		})
	}
}

func TestTintBlendSkipsTransparent(t *testing.T) {
	c := canvas.New(4, 4)
	c.SetPixel(2, 2, color.RGBA{50, 50, 50, 255})
	TintBlend(c, color.RGBA{255, 0, 0, 255}, 1)
	if got := c.PixelAt(0, 0); got != (color.RGBA{}) {
		t.Errorf("transparent pixel became %v", got)
	}
	if got := c.PixelAt(2, 2); got.R != 255 {
		t.Errorf("opaque pixel R = %d, want 255", got.R)
	}
}

func TestBrightness(t *testing.T) {
	c := solidCanvas(2, 2, color.RGBA{100, 100, 100, 255})
	Brightness(c, 1.5)
	if got := c.PixelAt(0, 0).R; got != 150 {
		t.Errorf("R = %d, want 150", got)
	}
	Brightness(c, 10)
	if got := c.PixelAt(0, 0).R; got != 255 {
		t.Errorf("R should clamp at 255, got %d", got)
	}
}

func TestRadialGlowAlphaOnlyRaised(t *testing.T) {
	c := canvas.New(20, 20)
	c.SetPixel(10, 10, color.RGBA{80, 80, 80, 255})
	c.SetPixel(11, 10, color.RGBA{80, 80, 80, 30})

	RadialGlow(c, 10, 10, 3, 8, color.RGBA{255, 200, 60, 255}, 0.5)

	if got := c.PixelAt(10, 10).A; got != 255 {
		t.Errorf("opaque pixel alpha dropped to %d", got)
	}
	if got := c.PixelAt(11, 10).A; got <= 30 {
		t.Errorf("thin pixel alpha = %d, want raised above 30", got)
	}
	// Inside the inner radius the glow lays down coverage even on empty pixels.
	if got := c.PixelAt(9, 10).A; got == 0 {
		t.Error("pixel inside inner radius gained no coverage")
	}
	// Beyond the outer radius nothing changes.
	if got := c.PixelAt(19, 19).A; got != 0 {
		t.Errorf("pixel outside outer radius alpha = %d", got)
	}
}

func TestRadialGlowDegenerateRadii(t *testing.T) {
	c := solidCanvas(4, 4, color.RGBA{10, 10, 10, 255})
	before := c.PixelAt(2, 2)
	RadialGlow(c, 2, 2, 5, 3, color.RGBA{255, 255, 255, 255}, 1)
	RadialGlow(c, 2, 2, 0, 0, color.RGBA{255, 255, 255, 255}, 1)
	if got := c.PixelAt(2, 2); got != before {
		t.Errorf("degenerate glow altered pixel: %v", got)
	}
}

func TestAgeDarken(t *testing.T) {
	c := solidCanvas(2, 2, color.RGBA{200, 200, 200, 255})
	AgeDarken(c, 1)
	got := c.PixelAt(0, 0)
	if got.R != 130 || got.G != 110 || got.B != 80 {
		t.Errorf("got %v, want {130 110 80 255}", got)
	}
	if got.A != 255 {
		t.Errorf("alpha changed to %d", got.A)
	}

	c2 := solidCanvas(2, 2, color.RGBA{200, 200, 200, 255})
	AgeDarken(c2, 0)
	if got := c2.PixelAt(0, 0); got.R != 200 {
		t.Errorf("factor 0 should be a no-op, got %v", got)
	}
}

func TestScatterNoiseKeepsAlphaAndBounds(t *testing.T) {
	c := canvas.New(8, 8)
	for y := 2; y < 6; y++ {
		for x := 2; x < 6; x++ {
			c.SetPixel(x, y, color.RGBA{100, 100, 100, 180})
		}
	}
	rng := rand.New(rand.NewSource(3))
	ScatterNoise(c, rng, 2, 2, 4, 4, 1, []color.RGBA{{255, 0, 0, 255}})
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			p := c.PixelAt(x, y)
			inRegion := x >= 2 && x < 6 && y >= 2 && y < 6
			if !inRegion && p.A != 0 {
				t.Fatalf("pixel (%d,%d) outside region was touched", x, y)
			}
			if inRegion && p.A != 180 {
				t.Fatalf("pixel (%d,%d) alpha = %d, want 180", x, y, p.A)
			}
		}
	}
}

func TestWeatherOnlyDarkensExistingPixels(t *testing.T) {
	c := canvas.New(16, 16)
	for y := 4; y < 12; y++ {
		for x := 4; x < 12; x++ {
			c.SetPixel(x, y, color.RGBA{150, 150, 150, 255})
		}
	}
	rng := rand.New(rand.NewSource(11))
	Weather(c, rng, 4, 4, 8, 8, 1)
	if got := c.PixelAt(0, 0); got.A != 0 {
		t.Errorf("weather leaked outside its region: %v", got)
	}
}

func TestFBMDeterministic(t *testing.T) {
	a := FBM(3.2, 7.1, 4, 0.5, 42)
	b := FBM(3.2, 7.1, 4, 0.5, 42)
	if a != b {
		t.Errorf("FBM not deterministic: %v vs %v", a, b)
	}
	if c := FBM(3.2, 7.1, 4, 0.5, 43); c == a {
		t.Error("different seeds should diverge")
	}
}
