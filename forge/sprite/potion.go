package sprite

import (
	"image/color"
	"math/rand"

	"github.com/PhillipC05/tpt-asset-forge/forge/attr"
	"github.com/PhillipC05/tpt-asset-forge/forge/canvas"
	"github.com/PhillipC05/tpt-asset-forge/forge/fx"
	"github.com/PhillipC05/tpt-asset-forge/forge/raster"
)

func potionSchema() *attr.Schema {
	return &attr.Schema{
		Family:    "potion",
		AxisOrder: []string{"type", "element", "quality", "size"},
		Defaults: map[string]string{
			"type": "potion", "element": "healing", "quality": "common", "size": "medium",
		},
		NameAxes: []string{"quality", "element", "type"},
		Axes: map[string]*attr.Axis{
			"type": {Name: "type", Templates: map[string]*attr.Template{
				"potion": {Key: "potion", Display: "Potion", Base: stats("potency", 25, "doses", 1), Tags: []string{"drinkable"}},
				"elixir": {Key: "elixir", Display: "Elixir", Base: stats("potency", 50, "doses", 1), Tags: []string{"drinkable", "potent"}},
				"flask":  {Key: "flask", Display: "Flask", Base: stats("potency", 20, "doses", 3), Tags: []string{"drinkable", "refillable"}},
				"vial":   {Key: "vial", Display: "Vial", Base: stats("potency", 15, "doses", 1), Tags: []string{"throwable"}},
			}},
			// The element axis is the liquid: its color fills the glass and
			// its Value drives the aura of the stronger brews.
			"element": {Name: "element", Templates: map[string]*attr.Template{
				"healing": {Key: "healing", Display: "Healing", Color: color.RGBA{210, 50, 60, 255}, Accent: color.RGBA{255, 120, 130, 255}, Value: 0.25, Tags: []string{"restorative"}},
				"mana":    {Key: "mana", Display: "Mana", Color: color.RGBA{60, 90, 220, 255}, Accent: color.RGBA{130, 160, 255, 255}, Value: 0.3, Tags: []string{"arcane"}},
				"poison":  {Key: "poison", Display: "Poison", Color: color.RGBA{80, 180, 60, 255}, Accent: color.RGBA{150, 230, 120, 255}, Value: 0.3, Tags: []string{"toxic"}},
				"fire":    {Key: "fire", Display: "Fire", Color: color.RGBA{236, 120, 40, 255}, Accent: color.RGBA{255, 190, 110, 255}, Value: 0.35, Mods: stats("potency", 1.2), Tags: []string{"volatile"}},
				"frost":   {Key: "frost", Display: "Frost", Color: color.RGBA{130, 200, 240, 255}, Accent: color.RGBA{200, 240, 255, 255}, Value: 0.3, Tags: []string{"ice"}},
			}},
			"quality": qualityAxis("potency"),
			"size":    sizeAxis("potency", "doses"),
		},
	}
}

func paintPotion(dst *canvas.Canvas, a *attr.ResolvedAsset, rng *rand.Rand) {
	w, h := dst.Width(), dst.Height()
	cx := w / 2
	liquid := a.Axis("element").Color
	shine := a.Axis("element").Accent
	glass := color.RGBA{190, 210, 220, 90}
	cork := color.RGBA{150, 110, 64, 255}

	fx.SoftShadow(dst, cx, h-h/8, w/4, h/16, 0.2)

	neckTop := h / 6
	bodyCY := h * 3 / 5

	switch a.Axis("type").Key {
	case "potion":
		// Round-bottom flask: glass first, liquid fills the lower 2/3.
		raster.FillCircle(dst, cx, bodyCY, w/4, glass)
		raster.FillRect(dst, cx-w/14, neckTop, w/7+1, bodyCY-w/4-neckTop+2, glass)
		liquidTop := bodyCY - w/8
		for py := liquidTop; py <= bodyCY+w/4; py++ {
			for px := cx - w/4; px <= cx+w/4; px++ {
				dx := float64(px - cx)
				dy := float64(py - bodyCY)
				if dx*dx+dy*dy <= float64(w*w)/16 {
					dst.Compose(px, py, canvas.WithAlpha(liquid, 230))
				}
			}
		}
		raster.FillRect(dst, cx-w/14, neckTop-h/20, w/7+1, h/20+2, cork)
		raster.FillEllipse(dst, cx-w/10, bodyCY-w/10, w/20+1, w/14, canvas.WithAlpha(shine, 140))
	case "elixir":
		// Tall fluted bottle.
		raster.FillPolygon(dst, []raster.Point{
			raster.Pt(float64(cx-w/14), float64(neckTop)),
			raster.Pt(float64(cx+w/14), float64(neckTop)),
			raster.Pt(float64(cx+w/5), float64(h-h/5)),
			raster.Pt(float64(cx-w/5), float64(h-h/5)),
		}, glass)
		raster.FillPolygon(dst, []raster.Point{
			raster.Pt(float64(cx-w/9), float64(h/2)),
			raster.Pt(float64(cx+w/9), float64(h/2)),
			raster.Pt(float64(cx+w/5-1), float64(h-h/5-1)),
			raster.Pt(float64(cx-w/5+1), float64(h-h/5-1)),
		}, canvas.WithAlpha(liquid, 235))
		raster.FillRect(dst, cx-w/14, neckTop-h/16, w/7+1, h/16+2, cork)
		raster.FillCircle(dst, cx, neckTop-h/16-2, w/20+1, canvas.Brighten(cork, 0.2))
		raster.LineAA(dst, cx-w/8, h/2, cx-w/6, h-h/4, canvas.WithAlpha(shine, 120))
	case "flask":
		// Squat wide flask with strap loops.
		raster.FillEllipse(dst, cx, bodyCY, w/3, h/5, glass)
		raster.FillEllipse(dst, cx, bodyCY+h/24, w/3-2, h/5-h/24, canvas.WithAlpha(liquid, 230))
		raster.FillRect(dst, cx-w/16, h/3, w/8+1, h/8, glass)
		raster.FillRect(dst, cx-w/16, h/3-h/20, w/8+1, h/20+2, cork)
		raster.FillCircle(dst, cx-w/3, bodyCY, 2, cork)
		raster.FillCircle(dst, cx+w/3, bodyCY, 2, cork)
	case "vial":
		raster.FillRect(dst, cx-w/12, h/4, w/6+1, h/2, glass)
		raster.FillRect(dst, cx-w/12+1, h/2-h/12, w/6-1, h/4+h/12, canvas.WithAlpha(liquid, 240))
		raster.FillRect(dst, cx-w/10, h/4-h/18, w/5+1, h/18+2, cork)
		raster.Line(dst, cx-w/16, h/4+2, cx-w/16, h/2, canvas.WithAlpha(shine, 110), 1)
	}

	// Bubbles rising through the brew.
	for i := 0; i < 4+rng.Intn(4); i++ {
		bx := cx - w/8 + rng.Intn(w/4+1)
		by := h/2 + randSpan(rng, h/4)
		dst.Compose(bx, by, canvas.WithAlpha(shine, uint8(90+rng.Intn(90))))
	}
}
