package sprite

import (
	"image/color"
	"math/rand"

	"github.com/PhillipC05/tpt-asset-forge/forge/attr"
	"github.com/PhillipC05/tpt-asset-forge/forge/canvas"
	"github.com/PhillipC05/tpt-asset-forge/forge/fx"
	"github.com/PhillipC05/tpt-asset-forge/forge/raster"
)

func armorSchema() *attr.Schema {
	return &attr.Schema{
		Family:    "armor",
		AxisOrder: []string{"type", "subtype", "material", "quality", "size", "element"},
		Defaults: map[string]string{
			"type": "chest_armor", "subtype": "plate_armor", "material": "iron",
			"quality": "common", "size": "medium", "element": "none",
		},
		Fractional: map[string]bool{"weight": true},
		NameAxes:   []string{"quality", "material", "type"},
		Axes: map[string]*attr.Axis{
			"type": {Name: "type", Templates: map[string]*attr.Template{
				"helmets":     {Key: "helmets", Display: "Helmet", Base: stats("defense", 8, "durability", 90, "weight", 4), Tags: []string{"head"}},
				"chest_armor": {Key: "chest_armor", Display: "Chest Armor", Base: stats("defense", 15, "durability", 120, "weight", 12), Tags: []string{"torso"}},
				"boots":       {Key: "boots", Display: "Boots", Base: stats("defense", 6, "durability", 80, "weight", 3.5), Tags: []string{"feet"}},
				"gloves":      {Key: "gloves", Display: "Gloves", Base: stats("defense", 5, "durability", 70, "weight", 2), Tags: []string{"hands"}},
				"belts":       {Key: "belts", Display: "Belt", Base: stats("defense", 4, "durability", 60, "weight", 1.5), Tags: []string{"waist"}},
				"shoulders":   {Key: "shoulders", Display: "Pauldrons", Base: stats("defense", 7, "durability", 85, "weight", 5), Tags: []string{"shoulders"}},
			}},
			"subtype": {Name: "subtype", Templates: map[string]*attr.Template{
				"plate_armor":   {Key: "plate_armor", Display: "Plate", Mods: stats("defense", 1.0, "weight", 1.25), Tags: []string{"plated"}},
				"chainmail":     {Key: "chainmail", Display: "Chainmail", Mods: stats("defense", 0.85, "weight", 0.9), Tags: []string{"mail"}},
				"scale_armor":   {Key: "scale_armor", Display: "Scale", Mods: stats("defense", 0.92, "weight", 1.05), Tags: []string{"scaled"}},
				"leather_armor": {Key: "leather_armor", Display: "Leather", Mods: stats("defense", 0.7, "weight", 0.6), Tags: []string{"leather"}},
			}},
			"material": {Name: "material", Templates: map[string]*attr.Template{
				"iron":       {Key: "iron", Display: "Iron", Color: color.RGBA{118, 120, 126, 255}, Accent: color.RGBA{80, 82, 88, 255}, Mods: stats("defense", 1.0, "durability", 1.0, "weight", 1.0), Tags: []string{"metal"}},
				"steel":      {Key: "steel", Display: "Steel", Color: color.RGBA{152, 158, 166, 255}, Accent: color.RGBA{104, 110, 120, 255}, Mods: stats("defense", 0.8, "durability", 1.3, "weight", 1.05), Tags: []string{"metal"}},
				"mithril":    {Key: "mithril", Display: "Mithril", Color: color.RGBA{176, 196, 222, 255}, Accent: color.RGBA{120, 150, 190, 255}, Mods: stats("defense", 1.4, "durability", 1.6, "weight", 0.5), Tags: []string{"metal", "arcane"}},
				"bronze":     {Key: "bronze", Display: "Bronze", Color: color.RGBA{166, 124, 64, 255}, Accent: color.RGBA{120, 88, 44, 255}, Mods: stats("defense", 0.7, "durability", 0.8, "weight", 1.1), Tags: []string{"metal"}},
				"obsidian":   {Key: "obsidian", Display: "Obsidian", Color: color.RGBA{48, 42, 58, 255}, Accent: color.RGBA{90, 70, 120, 255}, Mods: stats("defense", 1.1, "durability", 0.9, "weight", 1.2), Tags: []string{"stone"}},
				"dragonbone": {Key: "dragonbone", Display: "Dragonbone", Color: color.RGBA{226, 216, 192, 255}, Accent: color.RGBA{180, 166, 138, 255}, Mods: stats("defense", 1.5, "durability", 1.4, "weight", 0.8), Tags: []string{"bone", "draconic"}},
			}},
			"quality": qualityAxis("defense", "durability"),
			"size": {Name: "size", Templates: map[string]*attr.Template{
				// Weight is the only stat sizes touch; the ternary fold of the
				// original armor formula (small lighter, large/huge heavier).
				"small":  {Key: "small", Display: "Small", Mods: stats("weight", 0.7)},
				"medium": {Key: "medium", Display: "Medium"},
				"large":  {Key: "large", Display: "Large", Mods: stats("weight", 1.3)},
				"huge":   {Key: "huge", Display: "Huge", Mods: stats("weight", 1.6)},
			}},
			"element": elementAxis(),
		},
	}
}

// paintArmor draws the base piece in the material color; the tint, quality,
// aura and aging passes run afterwards in the assembler.
func paintArmor(dst *canvas.Canvas, a *attr.ResolvedAsset, rng *rand.Rand) {
	w, h := dst.Width(), dst.Height()
	cx := w / 2
	mat := a.Axis("material")
	base := mat.Color
	dark := mat.Accent
	lit := canvas.Brighten(base, 0.18)

	fx.SoftShadow(dst, cx, h-h/8, w/3, h/12, 0.22)

	switch a.Axis("type").Key {
	case "helmets":
		// Dome with a face opening and cheek guards.
		raster.FillEllipse(dst, cx, h/2-h/10, w/3, h/3, base)
		raster.FillEllipse(dst, cx-w/10, h/2-h/6, w/8, h/9, lit)
		raster.FillRect(dst, cx-w/4, h/2, w/2, h/5, base)
		raster.FillRect(dst, cx-w/8, h/2, w/4, h/6, color.RGBA{25, 22, 28, 255})
		raster.FillTriangle(dst, cx-w/4, h/2, cx-w/4, h/2+h/4, cx-w/8, h/2+h/5, dark)
		raster.FillTriangle(dst, cx+w/4, h/2, cx+w/4, h/2+h/4, cx+w/8, h/2+h/5, dark)
		raster.Line(dst, cx, h/2-h/2+h/10, cx, h/2, canvas.Brighten(base, 0.1), 2)
	case "chest_armor":
		// Breastplate from a six-point polygon, ridge line down the middle.
		top := h / 5
		bottom := h - h/4
		raster.FillPolygon(dst, []raster.Point{
			raster.Pt(float64(cx-w/3), float64(top)),
			raster.Pt(float64(cx+w/3), float64(top)),
			raster.Pt(float64(cx+w/3+w/12), float64(h/2)),
			raster.Pt(float64(cx+w/5), float64(bottom)),
			raster.Pt(float64(cx-w/5), float64(bottom)),
			raster.Pt(float64(cx-w/3-w/12), float64(h/2)),
		}, base)
		raster.FillTriangle(dst, cx-w/3, top, cx-w/6, top, cx-w/4, top+h/8, lit)
		raster.Line(dst, cx, top+2, cx, bottom-2, dark, 2)
		raster.Line(dst, cx-w/4, h/2, cx+w/4, h/2, dark, 1)
		for _, rx := range []int{cx - w/4, cx + w/4} {
			raster.FillCircle(dst, rx, top+h/10, 1, lit)
			raster.FillCircle(dst, rx, bottom-h/10, 1, lit)
		}
	case "boots":
		for _, dir := range []int{-1, 1} {
			bx := cx + dir*w/5
			raster.FillRect(dst, bx-w/10, h/3, w/5, h/3, base)
			raster.FillEllipse(dst, bx+dir*w/12, h-h/4, w/7, h/10, dark)
			raster.FillRect(dst, bx-w/10, h/3, w/5, h/24, lit)
		}
	case "gloves":
		for _, dir := range []int{-1, 1} {
			gx := cx + dir*w/4
			raster.FillEllipse(dst, gx, h/2, w/8, h/6, base)
			raster.FillRect(dst, gx-w/10, h/2+h/8, w/5, h/8, dark)
			for f := 0; f < 3; f++ {
				raster.Line(dst, gx-w/16+f*(w/16), h/2-h/6, gx-w/16+f*(w/16), h/2, lit, 1)
			}
		}
	case "belts":
		raster.FillRect(dst, w/8, h/2-h/12, w-w/4, h/6, base)
		raster.FillRect(dst, cx-w/10, h/2-h/8, w/5, h/4, dark)
		raster.FillRect(dst, cx-w/16, h/2-h/12, w/8, h/6, lit)
	case "shoulders":
		for _, dir := range []int{-1, 1} {
			sx := cx + dir*w/4
			raster.FillEllipse(dst, sx, h/2, w/5, h/4, base)
			raster.FillEllipse(dst, sx-dir*w/20, h/2-h/10, w/9, h/9, lit)
			raster.FillTriangle(dst, sx, h/2+h/4, sx-w/10, h/2, sx+w/10, h/2, dark)
		}
	}

	// Surface grain in the material palette.
	fx.ScatterNoise(dst, rng, 0, 0, w, h, 0.03, []color.RGBA{dark, lit, base})
}
