package sprite

import (
	"image/color"
	"math/rand"

	"github.com/PhillipC05/tpt-asset-forge/forge/attr"
	"github.com/PhillipC05/tpt-asset-forge/forge/canvas"
	"github.com/PhillipC05/tpt-asset-forge/forge/fx"
	"github.com/PhillipC05/tpt-asset-forge/forge/raster"
)

func propSchema() *attr.Schema {
	return &attr.Schema{
		Family:    "prop",
		AxisOrder: []string{"type", "material", "quality", "size", "age"},
		Defaults: map[string]string{
			"type": "chest", "material": "wood", "quality": "common",
			"size": "medium", "age": "new",
		},
		NameAxes: []string{"quality", "material", "type"},
		Axes: map[string]*attr.Axis{
			"type": {Name: "type", Templates: map[string]*attr.Template{
				"chest":  {Key: "chest", Display: "Chest", Base: stats("durability", 60, "capacity", 20), Tags: []string{"container", "lockable"}},
				"barrel": {Key: "barrel", Display: "Barrel", Base: stats("durability", 40, "capacity", 30), Tags: []string{"container"}},
				"crate":  {Key: "crate", Display: "Crate", Base: stats("durability", 30, "capacity", 25), Tags: []string{"container"}},
				"door":   {Key: "door", Display: "Door", Base: stats("durability", 80, "capacity", 0), Tags: []string{"blocking", "lockable"}},
				"lever":  {Key: "lever", Display: "Lever", Base: stats("durability", 50, "capacity", 0), Tags: []string{"switch"}},
				"altar":  {Key: "altar", Display: "Altar", Base: stats("durability", 120, "capacity", 5), Tags: []string{"ritual"}},
			}},
			"material": {Name: "material", Templates: map[string]*attr.Template{
				"wood":  {Key: "wood", Display: "Wooden", Color: color.RGBA{138, 96, 52, 255}, Accent: color.RGBA{96, 64, 34, 255}, Mods: stats("durability", 1.0)},
				"iron":  {Key: "iron", Display: "Iron", Color: color.RGBA{118, 120, 126, 255}, Accent: color.RGBA{80, 82, 88, 255}, Mods: stats("durability", 1.6)},
				"stone": {Key: "stone", Display: "Stone", Color: color.RGBA{140, 136, 130, 255}, Accent: color.RGBA{100, 96, 92, 255}, Mods: stats("durability", 2.0, "capacity", 0.8)},
			}},
			"quality": qualityAxis("durability", "capacity"),
			"size":    sizeAxis("capacity"),
			"age": {Name: "age", Templates: map[string]*attr.Template{
				"new":      {Key: "new", Value: 0},
				"worn":     {Key: "worn", Display: "Worn", Value: 0.3, Mods: stats("durability", 0.8), Tags: []string{"worn"}},
				"decrepit": {Key: "decrepit", Display: "Decrepit", Value: 0.7, Mods: stats("durability", 0.5), Tags: []string{"fragile"}},
			}},
		},
	}
}

func paintProp(dst *canvas.Canvas, a *attr.ResolvedAsset, rng *rand.Rand) {
	w, h := dst.Width(), dst.Height()
	cx := w / 2
	mat := a.Axis("material")
	base := mat.Color
	dark := mat.Accent
	lit := canvas.Brighten(base, 0.15)
	band := color.RGBA{84, 78, 70, 255}
	gold := color.RGBA{210, 170, 60, 255}

	fx.SoftShadow(dst, cx, h-h/8, w/3, h/12, 0.22)

	switch a.Axis("type").Key {
	case "chest":
		raster.FillRect(dst, w/6, h/2, w*2/3, h/3, base)
		raster.FillEllipse(dst, cx, h/2, w/3, h/6, base)
		raster.FillRect(dst, w/6, h/2-2, w*2/3, 3, lit)
		// Banding and lock
		raster.FillRect(dst, cx-w/24, h/3, w/12+1, h/2, band)
		raster.FillRect(dst, w/6, h*2/3, w*2/3, 2, band)
		raster.FillRect(dst, cx-w/16, h/2, w/8+1, h/10, gold)
		raster.FillCircle(dst, cx, h/2+h/20, 1, dark)
		// Plank seams
		for i := 1; i < 4; i++ {
			raster.Line(dst, w/6+i*w/6, h/2+2, w/6+i*w/6, h-h/6, dark, 1)
		}
	case "barrel":
		raster.FillEllipse(dst, cx, h/4, w/4, h/16, dark)
		raster.FillPolygon(dst, []raster.Point{
			raster.Pt(float64(cx-w/4), float64(h/4)),
			raster.Pt(float64(cx+w/4), float64(h/4)),
			raster.Pt(float64(cx+w/3), float64(h/2)),
			raster.Pt(float64(cx+w/4), float64(h-h/5)),
			raster.Pt(float64(cx-w/4), float64(h-h/5)),
			raster.Pt(float64(cx-w/3), float64(h/2)),
		}, base)
		raster.FillRect(dst, cx-w/3, h/2-1, w*2/3, 3, band)
		raster.FillRect(dst, cx-w/4-w/24, h/3, w/2+w/12, 2, band)
		raster.FillRect(dst, cx-w/4-w/24, h-h/4, w/2+w/12, 2, band)
		for i := -2; i <= 2; i++ {
			raster.Line(dst, cx+i*w/10, h/4+1, cx+i*w/8, h-h/5-1, dark, 1)
		}
	case "crate":
		raster.FillRect(dst, w/5, h/4, w*3/5, w*3/5, base)
		raster.FillRect(dst, w/5, h/4, w*3/5, 3, lit)
		raster.Line(dst, w/5, h/4, w/5+w*3/5, h/4+w*3/5, dark, 2)
		raster.Line(dst, w/5+w*3/5, h/4, w/5, h/4+w*3/5, dark, 2)
		raster.FillRect(dst, w/5, h/4, 2, w*3/5, dark)
		raster.FillRect(dst, w/5+w*3/5-2, h/4, 2, w*3/5, dark)
	case "door":
		raster.FillRect(dst, w/4, h/8, w/2, h*3/4, base)
		for i := 1; i < 4; i++ {
			raster.Line(dst, w/4+i*w/8, h/8, w/4+i*w/8, h/8+h*3/4, dark, 1)
		}
		raster.FillRect(dst, w/4, h/4, w/2, 2, band)
		raster.FillRect(dst, w/4, h*2/3, w/2, 2, band)
		raster.FillCircle(dst, w/4+w/2-w/10, h/2, 2, gold)
	case "lever":
		raster.FillRect(dst, cx-w/6, h*2/3, w/3, h/6, color.RGBA{110, 106, 100, 255})
		raster.FillRect(dst, cx-w/6, h*2/3, w/3, 2, color.RGBA{150, 146, 140, 255})
		raster.Line(dst, cx, h*2/3, cx+w/5, h/4, band, 2)
		raster.FillCircle(dst, cx+w/5, h/4, w/14, color.RGBA{170, 40, 40, 255})
		raster.FillCircle(dst, cx+w/5-1, h/4-1, w/28+1, color.RGBA{220, 90, 90, 255})
	case "altar":
		raster.FillRect(dst, w/6, h/3, w*2/3, h/8, base)
		raster.FillRect(dst, w/4, h/3+h/8, w/2, h/3, dark)
		raster.FillRect(dst, w/6, h/3, w*2/3, 2, lit)
		raster.FillRect(dst, w/8, h*3/4, w*3/4, h/10, base)
		// Carved sigil
		raster.FillCircle(dst, cx, h/2+h/12, w/10, dark)
		raster.FillCircle(dst, cx, h/2+h/12, w/16, canvas.Brighten(dark, 0.2))
	}

	fx.ScatterNoise(dst, rng, 0, 0, w, h, 0.03, []color.RGBA{dark, lit})
}
