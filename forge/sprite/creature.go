package sprite

import (
	"image/color"
	"math/rand"

	"github.com/PhillipC05/tpt-asset-forge/forge/attr"
	"github.com/PhillipC05/tpt-asset-forge/forge/canvas"
	"github.com/PhillipC05/tpt-asset-forge/forge/fx"
	"github.com/PhillipC05/tpt-asset-forge/forge/raster"
)

func creatureSchema() *attr.Schema {
	return &attr.Schema{
		Family:    "creature",
		AxisOrder: []string{"type", "material", "quality", "size", "element"},
		Defaults: map[string]string{
			"type": "slime", "material": "common_hide", "quality": "common",
			"size": "medium", "element": "none",
		},
		Fractional: map[string]bool{"speed": true},
		NameAxes:   []string{"quality", "element", "type"},
		Axes: map[string]*attr.Axis{
			"type": {Name: "type", Templates: map[string]*attr.Template{
				"slime":      {Key: "slime", Display: "Slime", Base: stats("health", 20, "attack", 4, "speed", 1.5), Tags: []string{"ooze"}},
				"bat":        {Key: "bat", Display: "Bat", Base: stats("health", 10, "attack", 3, "speed", 4), Tags: []string{"flying"}},
				"spider":     {Key: "spider", Display: "Spider", Base: stats("health", 14, "attack", 6, "speed", 3), Tags: []string{"venomous"}},
				"skeleton":   {Key: "skeleton", Display: "Skeleton", Base: stats("health", 25, "attack", 8, "speed", 2), Tags: []string{"undead"}},
				"wolf":       {Key: "wolf", Display: "Wolf", Base: stats("health", 30, "attack", 10, "speed", 3.5), Tags: []string{"beast"}},
				"dragonling": {Key: "dragonling", Display: "Dragonling", Base: stats("health", 60, "attack", 18, "speed", 3), Tags: []string{"draconic"}},
			}},
			// Hide palettes; the tint pass pulls the whole body toward these.
			"material": {Name: "material", Templates: map[string]*attr.Template{
				"common_hide": {Key: "common_hide", Display: "", Color: color.RGBA{120, 140, 90, 255}, Accent: color.RGBA{80, 96, 60, 255}},
				"dark_hide":   {Key: "dark_hide", Display: "Dusk", Color: color.RGBA{70, 66, 90, 255}, Accent: color.RGBA{44, 40, 60, 255}, Mods: stats("attack", 1.1)},
				"albino":      {Key: "albino", Display: "Pale", Color: color.RGBA{220, 214, 206, 255}, Accent: color.RGBA{170, 162, 152, 255}, Mods: stats("health", 0.9, "speed", 1.1)},
				"crimson":     {Key: "crimson", Display: "Crimson", Color: color.RGBA{170, 60, 56, 255}, Accent: color.RGBA{110, 36, 34, 255}, Mods: stats("attack", 1.25, "health", 1.1)},
			}},
			"quality": qualityAxis("health", "attack"),
			"size":    sizeAxis("health", "attack"),
			"element": elementAxis(),
		},
	}
}

func paintCreature(dst *canvas.Canvas, a *attr.ResolvedAsset, rng *rand.Rand) {
	w, h := dst.Width(), dst.Height()
	cx, cy := w/2, h/2
	mat := a.Axis("material")
	body := mat.Color
	shade := mat.Accent
	lit := canvas.Brighten(body, 0.2)
	eye := color.RGBA{240, 60, 50, 255}

	fx.SoftShadow(dst, cx, h-h/7, w/3, h/12, 0.25)

	switch a.Axis("type").Key {
	case "slime":
		// Wobbly dome: ellipse plus jittered rim blobs.
		raster.FillEllipse(dst, cx, cy+h/8, w/3, h/4, canvas.WithAlpha(body, 220))
		for i := 0; i < 5; i++ {
			bx := cx - w/3 + randSpan(rng, w*2/3)
			raster.FillCircle(dst, bx, cy+h/4, 2+rng.Intn(3), canvas.WithAlpha(body, 200))
		}
		raster.FillEllipse(dst, cx-w/10, cy, w/10, h/14, canvas.WithAlpha(lit, 160))
		raster.FillCircle(dst, cx-w/12, cy+h/10, 2, shade)
		raster.FillCircle(dst, cx+w/12, cy+h/10, 2, shade)
	case "bat":
		raster.FillEllipse(dst, cx, cy, w/8, h/7, body)
		for _, dir := range []int{-1, 1} {
			raster.FillTriangle(dst, cx+dir*w/10, cy-h/10, cx+dir*w/3, cy-h/4, cx+dir*w/4, cy+h/8, shade)
			raster.FillTriangle(dst, cx+dir*w/10, cy, cx+dir*w/4, cy+h/8, cx+dir*w/8, cy+h/6, shade)
		}
		raster.FillTriangle(dst, cx-w/16, cy-h/7, cx-w/24, cy-h/5, cx-1, cy-h/7, body)
		raster.FillTriangle(dst, cx+w/16, cy-h/7, cx+w/24, cy-h/5, cx+1, cy-h/7, body)
		dst.SetPixel(cx-2, cy-2, eye)
		dst.SetPixel(cx+2, cy-2, eye)
	case "spider":
		raster.FillEllipse(dst, cx, cy+h/10, w/5, h/7, body)
		raster.FillCircle(dst, cx, cy-h/12, w/8, shade)
		for _, dir := range []int{-1, 1} {
			for i := 0; i < 4; i++ {
				y0 := cy - h/12 + i*h/16
				raster.LineAA(dst, cx, y0, cx+dir*(w/4+randSpan(rng, w/10)), y0-h/10+i*h/20, shade)
			}
		}
		for i := -1; i <= 1; i += 2 {
			dst.SetPixel(cx+i*2, cy-h/12-1, eye)
			dst.SetPixel(cx+i*4, cy-h/12, eye)
		}
	case "skeleton":
		bone := canvas.Brighten(body, 0.35)
		raster.FillCircle(dst, cx, h/4, w/9, bone)
		raster.FillRect(dst, cx-1, h/4+w/9, 3, h/3, bone)
		for i := 0; i < 3; i++ {
			y := h/3 + i*h/12
			raster.Line(dst, cx-w/8, y, cx+w/8, y, bone, 1)
		}
		raster.Line(dst, cx, h/3, cx-w/6, h/2, bone, 1)
		raster.Line(dst, cx, h/3, cx+w/6, h/2, bone, 1)
		raster.Line(dst, cx-1, h/4+w/9+h/3, cx-w/10, h-h/6, bone, 1)
		raster.Line(dst, cx+1, h/4+w/9+h/3, cx+w/10, h-h/6, bone, 1)
		dst.SetPixel(cx-2, h/4-1, color.RGBA{20, 20, 24, 255})
		dst.SetPixel(cx+2, h/4-1, color.RGBA{20, 20, 24, 255})
	case "wolf":
		raster.FillEllipse(dst, cx, cy+h/10, w/3, h/6, body)
		raster.FillCircle(dst, cx+w/4, cy-h/24, w/9, body)
		raster.FillTriangle(dst, cx+w/4, cy-h/6, cx+w/4-w/20, cy-h/24, cx+w/4+w/20, cy-h/24, shade)
		raster.FillTriangle(dst, cx+w/3, cy, cx+w/2-2, cy+2, cx+w/3, cy+h/24, shade)
		for i := 0; i < 4; i++ {
			x := cx - w/4 + i*w/6
			raster.Line(dst, x, cy+h/5, x, h-h/6, shade, 2)
		}
		raster.LineAA(dst, cx-w/3, cy+h/12, cx-w/2+2, cy-h/12, shade)
		dst.SetPixel(cx+w/4+2, cy-h/20, eye)
	case "dragonling":
		raster.FillEllipse(dst, cx, cy+h/12, w/4, h/6, body)
		raster.FillCircle(dst, cx+w/5, cy-h/8, w/10, body)
		for _, dir := range []int{-1, 1} {
			raster.FillTriangle(dst, cx-dir*w/12, cy-h/12, cx-dir*w/2+dir*2, cy-h/3, cx-dir*w/6, cy+h/12, shade)
		}
		// Tail with spade tip
		raster.LineAA(dst, cx-w/4, cy+h/6, cx-w/2+3, cy+h/3, body)
		raster.FillTriangle(dst, cx-w/2+3, cy+h/3-2, cx-w/2+6, cy+h/3+2, cx-w/2, cy+h/3+2, shade)
		for i := 0; i < 4; i++ {
			raster.FillTriangle(dst, cx-w/6+i*w/10, cy-h/24, cx-w/8+i*w/10, cy-h/8, cx-w/10+i*w/10, cy-h/24, lit)
		}
		dst.SetPixel(cx+w/5+2, cy-h/8, eye)
	}

	// Hide speckle in the body palette.
	fx.ScatterNoise(dst, rng, 0, 0, w, h, 0.03, []color.RGBA{shade, lit})
}
