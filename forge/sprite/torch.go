package sprite

import (
	"image/color"
	"math/rand"

	"github.com/PhillipC05/tpt-asset-forge/forge/attr"
	"github.com/PhillipC05/tpt-asset-forge/forge/canvas"
	"github.com/PhillipC05/tpt-asset-forge/forge/fx"
	"github.com/PhillipC05/tpt-asset-forge/forge/raster"
)

// Torch brightness composes four multipliers uniformly: type base times
// fuel, flame (element) and size factors. Unlike armor there is no additive
// fold; the original generators differ here on purpose.
func torchSchema() *attr.Schema {
	return &attr.Schema{
		Family:    "torch",
		AxisOrder: []string{"type", "fuel", "element", "size"},
		Defaults: map[string]string{
			"type": "wall_torch", "fuel": "wood", "element": "ember", "size": "medium",
		},
		Fractional: map[string]bool{"radius": true},
		NameAxes:   []string{"element", "fuel", "type"},
		Axes: map[string]*attr.Axis{
			"type": {Name: "type", Templates: map[string]*attr.Template{
				"wall_torch": {Key: "wall_torch", Display: "Wall Torch", Base: stats("brightness", 60, "burn_time", 120, "radius", 6), Tags: []string{"mounted"}},
				"hand_torch": {Key: "hand_torch", Display: "Torch", Base: stats("brightness", 45, "burn_time", 60, "radius", 4.5), Tags: []string{"handheld"}},
				"brazier":    {Key: "brazier", Display: "Brazier", Base: stats("brightness", 85, "burn_time", 240, "radius", 8), Tags: []string{"standing"}},
				"lantern":    {Key: "lantern", Display: "Lantern", Base: stats("brightness", 50, "burn_time", 300, "radius", 5), Tags: []string{"handheld", "shielded"}},
			}},
			"fuel": {Name: "fuel", Templates: map[string]*attr.Template{
				"wood":    {Key: "wood", Display: "", Color: color.RGBA{110, 74, 40, 255}, Mods: stats("brightness", 1.0, "burn_time", 1.0), Tags: []string{"wood"}},
				"oil":     {Key: "oil", Display: "Oil", Color: color.RGBA{70, 60, 40, 255}, Mods: stats("brightness", 1.2, "burn_time", 1.5), Tags: []string{"oil"}},
				"coal":    {Key: "coal", Display: "Coal", Color: color.RGBA{40, 38, 36, 255}, Mods: stats("brightness", 0.9, "burn_time", 2.2), Tags: []string{"coal"}},
				"magical": {Key: "magical", Display: "Everburning", Color: color.RGBA{80, 70, 120, 255}, Mods: stats("brightness", 1.5, "burn_time", 10.0), Tags: []string{"arcane"}},
			}},
			// The element axis doubles as the flame color; every flame glows.
			"element": {Name: "element", Templates: map[string]*attr.Template{
				"ember":  {Key: "ember", Display: "", Color: color.RGBA{255, 140, 40, 255}, Accent: color.RGBA{255, 220, 120, 255}, Mods: stats("brightness", 1.0, "radius", 1.0), Value: 0.55, Tags: []string{"flame"}},
				"golden": {Key: "golden", Display: "Golden", Color: color.RGBA{255, 200, 60, 255}, Accent: color.RGBA{255, 240, 170, 255}, Mods: stats("brightness", 1.15, "radius", 1.1), Value: 0.6, Tags: []string{"flame"}},
				"blue":   {Key: "blue", Display: "Blue", Color: color.RGBA{90, 160, 255, 255}, Accent: color.RGBA{190, 220, 255, 255}, Mods: stats("brightness", 1.25, "radius", 1.15), Value: 0.6, Tags: []string{"flame", "arcane"}},
				"green":  {Key: "green", Display: "Witchfire", Color: color.RGBA{90, 220, 110, 255}, Accent: color.RGBA{190, 255, 190, 255}, Mods: stats("brightness", 1.1, "radius", 1.05), Value: 0.55, Tags: []string{"flame", "fey"}},
				"violet": {Key: "violet", Display: "Violet", Color: color.RGBA{180, 90, 230, 255}, Accent: color.RGBA{230, 190, 255, 255}, Mods: stats("brightness", 1.2, "radius", 1.1), Value: 0.6, Tags: []string{"flame", "shadow"}},
			}},
			"size": sizeAxis("brightness", "radius"),
		},
	}
}

func paintTorch(dst *canvas.Canvas, a *attr.ResolvedAsset, rng *rand.Rand) {
	w, h := dst.Width(), dst.Height()
	cx := w / 2
	fuel := a.Axis("fuel")
	flame := a.Axis("element")
	wood := fuel.Color
	woodDark := canvas.Darken(wood, 0.3)
	iron := color.RGBA{72, 72, 78, 255}

	flameTop := h / 8
	flameBase := h / 2

	switch a.Axis("type").Key {
	case "wall_torch":
		raster.FillRect(dst, cx-w/20, flameBase, w/10+1, h/3, wood)
		raster.Line(dst, cx-w/20, flameBase, cx-w/20, flameBase+h/3, woodDark, 1)
		raster.FillRect(dst, cx-w/8, flameBase+h/4, w/4, h/20+1, iron)
		raster.FillTriangle(dst, cx-w/8, flameBase+h/4, cx-w/4, h-h/6, cx-w/8+2, h-h/6, iron)
	case "hand_torch":
		raster.Line(dst, cx, flameBase, cx-w/10, h-h/8, wood, 3)
		raster.Line(dst, cx, flameBase, cx-w/10, h-h/8, woodDark, 1)
		raster.FillRect(dst, cx-w/12, flameBase-h/24, w/6, h/16+1, color.RGBA{150, 140, 120, 255})
	case "brazier":
		raster.FillEllipse(dst, cx, flameBase+h/12, w/3, h/10, iron)
		raster.FillEllipse(dst, cx, flameBase+h/16, w/4, h/16, canvas.Darken(iron, 0.3))
		for _, dir := range []int{-1, 0, 1} {
			raster.Line(dst, cx+dir*w/4, flameBase+h/8, cx+dir*w/6, h-h/8, iron, 2)
		}
		// Coals
		for i := 0; i < 6; i++ {
			px := cx - w/5 + randSpan(rng, w*2/5)
			raster.FillCircle(dst, px, flameBase+h/24, 2, canvas.Lerp(fuel.Color, flame.Color, 0.4))
		}
	case "lantern":
		raster.FillRect(dst, cx-w/6, flameBase-h/8, w/3, h/3, iron)
		raster.FillRect(dst, cx-w/6+2, flameBase-h/8+2, w/3-4, h/3-4, canvas.WithAlpha(flame.Accent, 200))
		raster.FillRect(dst, cx-w/5, flameBase+h/5, w*2/5, h/24+1, iron)
		raster.FillRect(dst, cx-w/5, flameBase-h/6, w*2/5, h/24+1, iron)
		raster.Line(dst, cx-w/8, flameBase-h/6, cx, flameBase-h/4, iron, 1)
		raster.Line(dst, cx+w/8, flameBase-h/6, cx, flameBase-h/4, iron, 1)
	}

	// Flame body: stacked jittered triangles, hot core over darker sheath.
	if a.Axis("type").Key != "lantern" {
		for i := 0; i < 5; i++ {
			jx := rng.Intn(5) - 2
			top := flameTop + randSpan(rng, h/12)
			raster.FillTriangle(dst, cx+jx, top, cx-w/8+jx, flameBase, cx+w/8+jx, flameBase, canvas.WithAlpha(flame.Color, 150))
		}
		raster.FillTriangle(dst, cx, flameTop+h/10, cx-w/14, flameBase-2, cx+w/14, flameBase-2, flame.Accent)
		fx.ScatterNoise(dst, rng, cx-w/8, flameTop, w/4, flameBase-flameTop, 0.08, []color.RGBA{flame.Accent, canvas.Brighten(flame.Color, 0.2)})
	} else {
		raster.FillTriangle(dst, cx, flameBase-h/20, cx-w/20, flameBase+h/12, cx+w/20, flameBase+h/12, flame.Accent)
	}

	// Sparks drifting above the flame.
	for i := 0; i < 4; i++ {
		sx := cx - w/6 + randSpan(rng, w/3)
		sy := flameTop - rng.Intn(h/10+1)
		dst.Compose(sx, sy, canvas.WithAlpha(flame.Accent, uint8(120+rng.Intn(100))))
	}
}
