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

func rockSchema() *attr.Schema {
	return &attr.Schema{
		Family:    "rock",
		AxisOrder: []string{"type", "material", "quality", "size", "age"},
		Defaults: map[string]string{
			"type": "boulder", "material": "granite", "quality": "common",
			"size": "medium", "age": "new",
		},
		NameAxes: []string{"quality", "material", "type"},
		Axes: map[string]*attr.Axis{
			"type": {Name: "type", Templates: map[string]*attr.Template{
				"boulder":  {Key: "boulder", Display: "Boulder", Base: stats("hardness", 30, "yield", 8), Tags: []string{"obstacle"}},
				"stone":    {Key: "stone", Display: "Stone", Base: stats("hardness", 20, "yield", 3), Tags: []string{"debris"}},
				"crystal":  {Key: "crystal", Display: "Crystal", Base: stats("hardness", 15, "yield", 12), Tags: []string{"luminous"}},
				"ore_vein": {Key: "ore_vein", Display: "Ore Vein", Base: stats("hardness", 35, "yield", 20), Tags: []string{"mineable"}},
			}},
			"material": {Name: "material", Templates: map[string]*attr.Template{
				"granite":   {Key: "granite", Display: "Granite", Color: color.RGBA{132, 130, 128, 255}, Accent: color.RGBA{94, 92, 90, 255}, Mods: stats("hardness", 1.2)},
				"limestone": {Key: "limestone", Display: "Limestone", Color: color.RGBA{196, 188, 166, 255}, Accent: color.RGBA{156, 148, 126, 255}, Mods: stats("hardness", 0.7, "yield", 1.2)},
				"basalt":    {Key: "basalt", Display: "Basalt", Color: color.RGBA{70, 68, 72, 255}, Accent: color.RGBA{46, 44, 50, 255}, Mods: stats("hardness", 1.4)},
				"marble":    {Key: "marble", Display: "Marble", Color: color.RGBA{216, 212, 210, 255}, Accent: color.RGBA{170, 166, 168, 255}, Mods: stats("hardness", 0.9, "yield", 1.5)},
			}},
			"quality": qualityAxis("yield"),
			"size":    sizeAxis("hardness", "yield"),
			"age": {Name: "age", Templates: map[string]*attr.Template{
				"new":       {Key: "new", Value: 0},
				"weathered": {Key: "weathered", Display: "Weathered", Value: 0.35, Mods: stats("hardness", 0.85), Tags: []string{"weathered"}},
				"mossy":     {Key: "mossy", Display: "Mossy", Value: 0.25, Tags: []string{"overgrown"}},
			}},
		},
	}
}

func paintRock(dst *canvas.Canvas, a *attr.ResolvedAsset, rng *rand.Rand) {
	w, h := dst.Width(), dst.Height()
	cx, cy := w/2, h/2
	mat := a.Axis("material")
	base := mat.Color
	shade := mat.Accent
	lit := canvas.Brighten(base, 0.18)

	fx.SoftShadow(dst, cx, h-h/6, w/3, h/10, 0.25)

	switch a.Axis("type").Key {
	case "boulder", "stone", "ore_vein":
		small := a.Axis("type").Key == "stone"
		rx, ry := w/3, h/4
		if small {
			rx, ry = w/4, h/6
		}
		// Irregular silhouette: polygon with jittered radius per vertex.
		pts := make([]raster.Point, 0, 9)
		for i := 0; i < 9; i++ {
			t := float64(i) / 9.0
			jr := 0.75 + rng.Float64()*0.35
			pts = append(pts, raster.Pt(
				float64(cx)+float64(rx)*jr*cosTurn(t),
				float64(cy+h/10)+float64(ry)*jr*sinTurn(t),
			))
		}
		raster.FillPolygon(dst, pts, base)
		// Cellular mottling darkens the pixels nearest each cell point.
		seed := rng.Intn(1 << 16)
		for py := cy - ry; py <= cy+ry+h/10; py++ {
			for px := cx - rx; px <= cx+rx; px++ {
				if dst.PixelAt(px, py).A == 0 {
					continue
				}
				if fx.Worley(float64(px), float64(py), float64(w)/6, seed) < 0.25 {
					dst.SetPixel(px, py, canvas.Lerp(dst.PixelAt(px, py), shade, 0.35))
				}
			}
		}
		// Facet shading: darker lower-right, lit upper-left.
		raster.FillTriangle(dst, cx-rx/2, cy, cx, cy-ry/2+h/10, cx+rx/4, cy+h/10, lit)
		raster.FillTriangle(dst, cx, cy+h/10, cx+rx-2, cy+h/10, cx+rx/3, cy+ry+h/10-2, shade)
		// Cracks
		for i := 0; i < 3; i++ {
			x, y := cx-rx/2+randSpan(rng, rx), cy+randSpan(rng, ry)
			for j := 0; j < 6; j++ {
				dst.Compose(x, y, canvas.WithAlpha(shade, 150))
				x += rng.Intn(3) - 1
				y += rng.Intn(2)
			}
		}
		if a.Axis("type").Key == "ore_vein" {
			gold := color.RGBA{222, 178, 40, 255}
			for i := 0; i < 8; i++ {
				px := cx - rx/2 + randSpan(rng, rx)
				py := cy + randSpan(rng, ry)
				raster.FillCircle(dst, px, py, 1+rng.Intn(2), gold)
				dst.Compose(px, py-1, canvas.WithAlpha(canvas.Brighten(gold, 0.3), 160))
			}
		}
	case "crystal":
		// Cluster of shards leaning out of a stone base.
		raster.FillEllipse(dst, cx, h-h/4, w/4, h/10, shade)
		tint := canvas.Lerp(base, color.RGBA{140, 120, 230, 255}, 0.5)
		for i := 0; i < 4; i++ {
			bx := cx - w/6 + i*w/9
			tipX := bx + randSpan(rng, w/8) - w/16
			tipY := h/5 + randSpan(rng, h/6)
			raster.FillTriangle(dst, bx-w/16, h-h/4, bx+w/16, h-h/4, tipX, tipY, canvas.WithAlpha(tint, 220))
			raster.LineAA(dst, tipX, tipY, bx, h-h/4, canvas.WithAlpha(canvas.Brighten(tint, 0.35), 180))
		}
	}

	// Mossy age gets green flecks on top before the aging pass darkens.
	if age := a.Axis("age"); age != nil && age.Key == "mossy" {
		fx.ScatterNoise(dst, rng, 0, 0, w, h/2+h/8, 0.12, []color.RGBA{
			{70, 120, 50, 255}, {90, 140, 60, 255},
		})
	}
	fx.ScatterNoise(dst, rng, 0, 0, w, h, 0.05, []color.RGBA{shade, lit, base})
}

// cosTurn/sinTurn take a fraction of a full turn, matching how the rock
// silhouette walks its vertices.
func cosTurn(t float64) float64 { return math.Cos(t * 2 * math.Pi) }
func sinTurn(t float64) float64 { return math.Sin(t * 2 * math.Pi) }
