package sprite

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/PhillipC05/tpt-asset-forge/forge/attr"
	"github.com/PhillipC05/tpt-asset-forge/forge/canvas"
	"github.com/PhillipC05/tpt-asset-forge/forge/fx"
	"github.com/PhillipC05/tpt-asset-forge/forge/raster"
)

func weaponSchema() *attr.Schema {
	return &attr.Schema{
		Family:    "weapon",
		AxisOrder: []string{"type", "material", "quality", "size", "element"},
		Defaults: map[string]string{
			"type": "sword", "material": "iron", "quality": "common",
			"size": "medium", "element": "none",
		},
		Fractional: map[string]bool{"weight": true},
		NameAxes:   []string{"quality", "material", "type"},
		Axes: map[string]*attr.Axis{
			"type": {Name: "type", Templates: map[string]*attr.Template{
				"sword":  {Key: "sword", Display: "Sword", Base: stats("damage", 12, "speed", 6, "weight", 3.5), Tags: []string{"blade"}},
				"axe":    {Key: "axe", Display: "Axe", Base: stats("damage", 16, "speed", 4, "weight", 5), Tags: []string{"blade", "heavy"}},
				"mace":   {Key: "mace", Display: "Mace", Base: stats("damage", 14, "speed", 4, "weight", 6), Tags: []string{"blunt", "heavy"}},
				"dagger": {Key: "dagger", Display: "Dagger", Base: stats("damage", 7, "speed", 9, "weight", 1), Tags: []string{"blade", "light"}},
				"spear":  {Key: "spear", Display: "Spear", Base: stats("damage", 11, "speed", 6, "weight", 3), Tags: []string{"polearm"}},
				"bow":    {Key: "bow", Display: "Bow", Base: stats("damage", 9, "speed", 7, "weight", 1.5), Tags: []string{"ranged"}},
			}},
			"material": metalAxis("damage", map[string]float64{
				"iron": 1.0, "steel": 1.2, "mithril": 1.5, "bronze": 0.8,
				"obsidian": 1.3, "dragonbone": 1.6,
			}),
			"quality": qualityAxis("damage"),
			"size":    sizeAxis("damage", "weight"),
			"element": elementAxis(),
		},
	}
}

func paintWeapon(dst *canvas.Canvas, a *attr.ResolvedAsset, rng *rand.Rand) {
	w, h := dst.Width(), dst.Height()
	cx := w / 2
	mat := a.Axis("material")
	base := mat.Color
	dark := mat.Accent
	lit := canvas.Brighten(base, 0.25)
	grip := color.RGBA{96, 62, 34, 255}
	gripDark := color.RGBA{66, 42, 22, 255}

	fx.SoftShadow(dst, cx, h-h/10, w/4, h/16, 0.2)

	switch a.Axis("type").Key {
	case "sword":
		// Blade with a bright edge line, crossguard, wrapped grip, pommel.
		raster.FillPolygon(dst, []raster.Point{
			raster.Pt(float64(cx), float64(h/12)),
			raster.Pt(float64(cx+w/16), float64(h/8)),
			raster.Pt(float64(cx+w/16), float64(h-h/3)),
			raster.Pt(float64(cx-w/16), float64(h-h/3)),
			raster.Pt(float64(cx-w/16), float64(h/8)),
		}, base)
		raster.Line(dst, cx, h/10, cx, h-h/3, lit, 1)
		raster.FillRect(dst, cx-w/6, h-h/3, w/3, h/24+1, dark)
		raster.FillRect(dst, cx-w/28, h-h/3+h/24, w/14+1, h/7, grip)
		for y := h - h/3 + h/24; y < h-h/3+h/24+h/7; y += 3 {
			raster.Line(dst, cx-w/28, y, cx+w/28, y, gripDark, 1)
		}
		raster.FillCircle(dst, cx, h-h/8, w/16, dark)
	case "axe":
		raster.Line(dst, cx, h/6, cx, h-h/7, grip, 3)
		raster.FillPolygon(dst, []raster.Point{
			raster.Pt(float64(cx), float64(h/6)),
			raster.Pt(float64(cx+w/3), float64(h/8)),
			raster.Pt(float64(cx+w/4), float64(h)/2.4),
			raster.Pt(float64(cx), float64(h/3)),
		}, base)
		raster.LineAA(dst, cx+w/3, h/8, cx+w/4, int(float64(h)/2.4), lit)
	case "mace":
		raster.Line(dst, cx, h/3, cx, h-h/7, grip, 3)
		raster.FillCircle(dst, cx, h/4, w/6, base)
		for i := 0; i < 8; i++ {
			ang := float64(i) * math.Pi / 4
			sx := cx + int(float64(w/6)*1.2*math.Cos(ang))
			sy := h/4 + int(float64(w/6)*1.2*math.Sin(ang))
			raster.FillTriangle(dst, sx-1, sy-1, sx+2, sy, sx-1, sy+2, lit)
		}
		raster.FillCircle(dst, cx-w/20, h/4-w/20, w/16, lit)
	case "dagger":
		raster.FillTriangle(dst, cx, h/5, cx+w/14, h-h/2, cx-w/14, h-h/2, base)
		raster.Line(dst, cx, h/5, cx, h-h/2, lit, 1)
		raster.FillRect(dst, cx-w/9, h-h/2, w*2/9, h/28+1, dark)
		raster.FillRect(dst, cx-w/30, h-h/2, w/15+1, h/8, grip)
	case "spear":
		raster.Line(dst, cx, h/4, cx, h-h/10, grip, 2)
		raster.FillTriangle(dst, cx, h/14, cx+w/12, h/4, cx-w/12, h/4, base)
		raster.Line(dst, cx, h/14, cx, h/4, lit, 1)
		raster.FillRect(dst, cx-w/20, h/4, w/10, h/30+1, dark)
	case "bow":
		// Curved limbs from stacked short segments, straight string.
		prev := [2]int{cx - w/4, h / 8}
		for i := 1; i <= 12; i++ {
			t := float64(i) / 12.0
			px := cx - w/4 + int(float64(w/2)*bowCurve(t))
			py := h/8 + int(float64(h-h/4)*t)
			raster.Line(dst, prev[0], prev[1], px, py, grip, 2)
			prev = [2]int{px, py}
		}
		raster.LineAA(dst, cx-w/4, h/8, cx-w/4, h-h/8, color.RGBA{214, 214, 200, 220})
		raster.FillRect(dst, cx-w/4+w/10-1, h/2-h/16, 3, h/8, gripDark)
	}

	fx.ScatterNoise(dst, rng, 0, 0, w, h, 0.02, []color.RGBA{dark, lit})
}

// bowCurve bows the limb outward, peaking at the grip.
func bowCurve(t float64) float64 {
	d := t - 0.5
	return 0.4 * (1 - 4*d*d)
}
