package sprite

import (
	"image/color"
	"math/rand"

	"github.com/PhillipC05/tpt-asset-forge/forge/attr"
	"github.com/PhillipC05/tpt-asset-forge/forge/canvas"
	"github.com/PhillipC05/tpt-asset-forge/forge/fx"
	"github.com/PhillipC05/tpt-asset-forge/forge/raster"
)

func scrollSchema() *attr.Schema {
	return &attr.Schema{
		Family:    "scroll",
		AxisOrder: []string{"type", "material", "quality", "element", "age", "size"},
		Defaults: map[string]string{
			"type": "scroll", "material": "parchment", "quality": "common",
			"element": "none", "age": "new", "size": "medium",
		},
		NameAxes: []string{"quality", "element", "type"},
		Axes: map[string]*attr.Axis{
			"type": {Name: "type", Templates: map[string]*attr.Template{
				"scroll":      {Key: "scroll", Display: "Scroll", Base: stats("power", 20, "value", 50), Tags: []string{"consumable"}},
				"tome":        {Key: "tome", Display: "Tome", Base: stats("power", 45, "value", 200), Tags: []string{"book"}},
				"map":         {Key: "map", Display: "Map", Base: stats("power", 5, "value", 80), Tags: []string{"navigation"}},
				"rune_tablet": {Key: "rune_tablet", Display: "Rune Tablet", Base: stats("power", 60, "value", 350), Tags: []string{"runic"}},
			}},
			"material": {Name: "material", Templates: map[string]*attr.Template{
				"paper":     {Key: "paper", Display: "Paper", Color: color.RGBA{238, 232, 214, 255}, Accent: color.RGBA{200, 192, 168, 255}, Mods: stats("value", 0.8)},
				"parchment": {Key: "parchment", Display: "Parchment", Color: color.RGBA{226, 208, 168, 255}, Accent: color.RGBA{186, 164, 120, 255}, Mods: stats("value", 1.0)},
				"vellum":    {Key: "vellum", Display: "Vellum", Color: color.RGBA{236, 222, 196, 255}, Accent: color.RGBA{196, 178, 146, 255}, Mods: stats("value", 1.4, "power", 1.1)},
				"papyrus":   {Key: "papyrus", Display: "Papyrus", Color: color.RGBA{216, 196, 146, 255}, Accent: color.RGBA{170, 148, 100, 255}, Mods: stats("value", 1.2)},
			}},
			"quality": qualityAxis("power", "value"),
			"element": {Name: "element", Templates: map[string]*attr.Template{
				"none":   {Key: "none", Value: 0},
				"arcane": {Key: "arcane", Display: "Arcane", Color: color.RGBA{140, 100, 230, 255}, Value: 0.4, Mods: stats("power", 1.3), Tags: []string{"arcane"}},
				"fire":   {Key: "fire", Display: "Fire", Color: color.RGBA{236, 98, 36, 255}, Value: 0.4, Mods: stats("power", 1.25), Tags: []string{"fire"}},
				"frost":  {Key: "frost", Display: "Frost", Color: color.RGBA{142, 202, 255, 255}, Value: 0.35, Mods: stats("power", 1.2), Tags: []string{"ice"}},
				"nature": {Key: "nature", Display: "Nature", Color: color.RGBA{110, 200, 110, 255}, Value: 0.35, Mods: stats("power", 1.15), Tags: []string{"nature"}},
			}},
			// Value drives the aging pass; old paper is worth more to collectors.
			"age": {Name: "age", Templates: map[string]*attr.Template{
				"new":       {Key: "new", Value: 0},
				"aged":      {Key: "aged", Display: "Aged", Value: 0.25, Mods: stats("value", 1.2), Tags: []string{"aged"}},
				"ancient":   {Key: "ancient", Display: "Ancient", Value: 0.55, Mods: stats("value", 1.8, "power", 1.2), Tags: []string{"ancient"}},
				"crumbling": {Key: "crumbling", Display: "Crumbling", Value: 0.85, Mods: stats("value", 0.6, "power", 0.8), Tags: []string{"fragile"}},
			}},
			"size": sizeAxis("value"),
		},
	}
}

func paintScroll(dst *canvas.Canvas, a *attr.ResolvedAsset, rng *rand.Rand) {
	w, h := dst.Width(), dst.Height()
	cx := w / 2
	mat := a.Axis("material")
	paper := mat.Color
	edge := mat.Accent
	ink := color.RGBA{70, 58, 48, 255}
	roller := color.RGBA{130, 92, 52, 255}

	fx.SoftShadow(dst, cx, h-h/8, w/3, h/14, 0.18)

	switch a.Axis("type").Key {
	case "scroll":
		// Open sheet between two rollers.
		raster.FillRect(dst, w/6, h/4, w*2/3, h/2, paper)
		raster.FillRect(dst, w/6, h/4, w*2/3, 2, edge)
		raster.FillRect(dst, w/6, h*3/4-2, w*2/3, 2, edge)
		raster.FillEllipse(dst, w/6, h/2, w/20+1, h/4, roller)
		raster.FillEllipse(dst, w-w/6, h/2, w/20+1, h/4, roller)
		for i := 0; i < 5; i++ {
			y := h/4 + h/12 + i*h/14
			raster.Line(dst, w/4, y, w-w/4-rng.Intn(w/8+1), y, ink, 1)
		}
	case "tome":
		raster.FillRect(dst, w/5, h/6, w*3/5, h*2/3, canvas.Darken(roller, 0.2))
		raster.FillRect(dst, w/5+2, h/6+2, w*3/5-4, h*2/3-4, paper)
		raster.FillRect(dst, w/5, h/6, w/14, h*2/3, canvas.Darken(roller, 0.35))
		raster.FillRect(dst, cx-w/16, h/2-h/16, w/8, h/8, canvas.Brighten(roller, 0.3))
		raster.Line(dst, w/5+w/14, h/6+h/8, w/5+w*3/5-4, h/6+h/8, edge, 1)
	case "map":
		raster.FillRect(dst, w/8, h/5, w*3/4, h*3/5, paper)
		// Torn edge
		for x := w / 8; x < w-w/8; x += 3 {
			if rng.Intn(2) == 0 {
				dst.SetPixel(x, h/5, color.RGBA{})
				dst.SetPixel(x, h/5+h*3/5-1, color.RGBA{})
			}
		}
		// Route line with a destination cross
		px, py := w/4, h*2/3
		for i := 0; i < 5; i++ {
			nx := px + w/12 + randSpan(rng, w/12)
			ny := py - rng.Intn(h/8+1)
			raster.LineAA(dst, px, py, nx, ny, ink)
			px, py = nx, ny
		}
		raster.Line(dst, px-2, py-2, px+2, py+2, color.RGBA{180, 40, 40, 255}, 1)
		raster.Line(dst, px-2, py+2, px+2, py-2, color.RGBA{180, 40, 40, 255}, 1)
	case "rune_tablet":
		stone := color.RGBA{130, 126, 120, 255}
		raster.FillRect(dst, w/4, h/6, w/2, h*2/3, stone)
		raster.FillTriangle(dst, w/4, h/6, w/4+w/8, h/6, w/4, h/6+h/8, canvas.Brighten(stone, 0.15))
		el := a.Axis("element")
		runeColor := el.Color
		if el.Value == 0 {
			runeColor = ink
		}
		for i := 0; i < 4; i++ {
			y := h/4 + i*h/7
			raster.Line(dst, cx-w/10, y, cx+w/10, y, runeColor, 1)
			raster.Line(dst, cx-w/10+randSpan(rng, w/5), y-h/24, cx-w/10+randSpan(rng, w/5), y, runeColor, 1)
		}
	}

	fx.ScatterNoise(dst, rng, 0, 0, w, h, 0.02, []color.RGBA{edge, canvas.Brighten(paper, 0.05)})
}
