package sprite

import (
	"image/color"

	"github.com/PhillipC05/tpt-asset-forge/forge/attr"
)

// stats builds a stat map from alternating name/value pairs.
func stats(kv ...interface{}) map[string]float64 {
	m := make(map[string]float64, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		name := kv[i].(string)
		switch v := kv[i+1].(type) {
		case int:
			m[name] = float64(v)
		case float64:
			m[name] = v
		}
	}
	return m
}

// qualityAxis returns the shared six-tier quality axis with its stat
// multiplier applied to the given fields. Value carries the brightness lift
// of the quality overlay pass.
func qualityAxis(fields ...string) *attr.Axis {
	tiers := []struct {
		key    string
		prefix string
		mult   float64
		shine  float64
	}{
		{"common", "", 1.0, 1.0},
		{"uncommon", "Fine", 1.15, 1.02},
		{"rare", "Rare", 1.3, 1.05},
		{"epic", "Epic", 1.6, 1.08},
		{"legendary", "Legendary", 2.0, 1.12},
		{"mythical", "Mythical", 2.5, 1.16},
	}
	ax := &attr.Axis{Name: "quality", Templates: make(map[string]*attr.Template, len(tiers))}
	for _, t := range tiers {
		mods := make(map[string]float64, len(fields))
		for _, f := range fields {
			mods[f] = t.mult
		}
		// Display mirrors the prefix so common tiers stay out of names
		// and descriptions.
		ax.Templates[t.key] = &attr.Template{
			Key: t.key, Display: t.prefix, Prefix: t.prefix,
			Mods: mods, Value: t.shine, Tags: []string{t.key},
		}
	}
	return ax
}

// elementAxis returns the shared enchantment axis. Value is the aura pass
// max alpha; none disables the pass.
func elementAxis() *attr.Axis {
	return &attr.Axis{Name: "element", Templates: map[string]*attr.Template{
		"none":      {Key: "none", Value: 0},
		"fire":      {Key: "fire", Display: "Fire", Color: color.RGBA{236, 98, 36, 255}, Value: 0.5, Tags: []string{"fire"}},
		"ice":       {Key: "ice", Display: "Ice", Color: color.RGBA{142, 202, 255, 255}, Value: 0.45, Tags: []string{"ice"}},
		"lightning": {Key: "lightning", Display: "Lightning", Color: color.RGBA{250, 240, 120, 255}, Value: 0.5, Tags: []string{"lightning"}},
		"shadow":    {Key: "shadow", Display: "Shadow", Color: color.RGBA{96, 44, 128, 255}, Value: 0.45, Tags: []string{"shadow"}},
		"holy":      {Key: "holy", Display: "Holy", Color: color.RGBA{255, 240, 198, 255}, Value: 0.5, Tags: []string{"holy"}},
	}}
}

// sizeAxis returns the shared size axis. Each size multiplies the given
// fields by its scale factor (small 0.7, large 1.3, huge 1.6).
func sizeAxis(fields ...string) *attr.Axis {
	sizes := []struct {
		key   string
		scale float64
	}{
		{"small", 0.7},
		{"medium", 1.0},
		{"large", 1.3},
		{"huge", 1.6},
	}
	ax := &attr.Axis{Name: "size", Templates: make(map[string]*attr.Template, len(sizes))}
	for _, s := range sizes {
		tpl := &attr.Template{Key: s.key, Display: attr.Display(s.key), Value: s.scale}
		if s.scale != 1.0 {
			tpl.Mods = make(map[string]float64, len(fields))
			for _, f := range fields {
				tpl.Mods[f] = s.scale
			}
		}
		ax.Templates[s.key] = tpl
	}
	return ax
}

// metalAxis returns the shared metal material axis used by weapons and
// props; armor carries its own copy with armor-specific defense factors.
func metalAxis(field string, factors map[string]float64) *attr.Axis {
	metals := []struct {
		key    string
		base   color.RGBA
		accent color.RGBA
		tags   []string
	}{
		{"iron", color.RGBA{118, 120, 126, 255}, color.RGBA{80, 82, 88, 255}, []string{"metal"}},
		{"steel", color.RGBA{152, 158, 166, 255}, color.RGBA{104, 110, 120, 255}, []string{"metal"}},
		{"mithril", color.RGBA{176, 196, 222, 255}, color.RGBA{120, 150, 190, 255}, []string{"metal", "arcane"}},
		{"bronze", color.RGBA{166, 124, 64, 255}, color.RGBA{120, 88, 44, 255}, []string{"metal"}},
		{"obsidian", color.RGBA{48, 42, 58, 255}, color.RGBA{90, 70, 120, 255}, []string{"stone"}},
		{"dragonbone", color.RGBA{226, 216, 192, 255}, color.RGBA{180, 166, 138, 255}, []string{"bone", "draconic"}},
	}
	ax := &attr.Axis{Name: "material", Templates: make(map[string]*attr.Template, len(metals))}
	for _, m := range metals {
		tpl := &attr.Template{Key: m.key, Display: attr.Display(m.key), Color: m.base, Accent: m.accent, Tags: m.tags}
		if f, ok := factors[m.key]; ok {
			tpl.Mods = stats(field, f)
		}
		ax.Templates[m.key] = tpl
	}
	return ax
}
