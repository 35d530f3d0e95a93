// Package sprite assembles game-asset sprites: it resolves a configuration
// through the family's axis templates, lays down base shapes with the raster
// primitives, then runs the fixed effect-pass order (base shape, material
// tint, quality overlay, enchantment aura, aging) over the same buffer.
//
// Each generation call is a pure function of its configuration and seed; no
// state is shared between calls.
package sprite

import (
	"fmt"
	"hash/fnv"
	"math"
	"math/rand"

	"github.com/PhillipC05/tpt-asset-forge/forge/attr"
	"github.com/PhillipC05/tpt-asset-forge/forge/canvas"
	"github.com/PhillipC05/tpt-asset-forge/forge/fx"
)

// Family identifies one asset family.
type Family string

const (
	FamilyArmor    Family = "armor"
	FamilyWeapon   Family = "weapon"
	FamilyTorch    Family = "torch"
	FamilyScroll   Family = "scroll"
	FamilyPotion   Family = "potion"
	FamilyCreature Family = "creature"
	FamilyRock     Family = "rock"
	FamilyProp     Family = "prop"
)

// Painter draws the base shapes of one family onto the canvas. The painter
// reads colors and scalars from the resolved templates and all randomness
// from rng.
type Painter func(dst *canvas.Canvas, a *attr.ResolvedAsset, rng *rand.Rand)

type familyDef struct {
	schema     *attr.Schema
	paint      Painter
	tintWeight float64 // material tint pass strength, 0 disables
	weathered  bool    // aging pass also streaks dirt, not just darkens
	glowAt     func(w, h int) (float64, float64)
}

// The registry is populated once at init and read-only afterwards; painters
// are resolved here exactly once per call rather than switched per draw.
var families = map[Family]*familyDef{
	FamilyArmor:    {schema: armorSchema(), paint: paintArmor, tintWeight: 0.35},
	FamilyWeapon:   {schema: weaponSchema(), paint: paintWeapon, tintWeight: 0.3},
	FamilyTorch: {schema: torchSchema(), paint: paintTorch, tintWeight: 0,
		glowAt: func(w, h int) (float64, float64) { return float64(w) / 2, float64(h) * 0.35 }},
	FamilyScroll:   {schema: scrollSchema(), paint: paintScroll, tintWeight: 0.25},
	FamilyPotion:   {schema: potionSchema(), paint: paintPotion, tintWeight: 0},
	FamilyCreature: {schema: creatureSchema(), paint: paintCreature, tintWeight: 0.2},
	FamilyRock:     {schema: rockSchema(), paint: paintRock, tintWeight: 0.3, weathered: true},
	FamilyProp:     {schema: propSchema(), paint: paintProp, tintWeight: 0.3, weathered: true},
}

// Families lists the registered asset families in a stable order.
func Families() []Family {
	return []Family{
		FamilyArmor, FamilyWeapon, FamilyTorch, FamilyScroll,
		FamilyPotion, FamilyCreature, FamilyRock, FamilyProp,
	}
}

// Schema exposes a family's axis schema (for CLI validation and docs).
func Schema(f Family) (*attr.Schema, error) {
	def, ok := families[f]
	if !ok {
		return nil, fmt.Errorf("sprite: %w: no family %q", attr.ErrUnknownAxisValue, f)
	}
	return def.schema, nil
}

// Result pairs the pixel buffer of one generation with its resolved stats.
type Result struct {
	Canvas *canvas.Canvas
	Asset  *attr.ResolvedAsset
	Seed   int64
}

var sizeDims = map[string]int{
	"small":  32,
	"medium": 48,
	"large":  64,
	"huge":   96,
}

// Generate produces one sprite for the family from cfg. The returned canvas
// and asset are owned by the caller.
func Generate(f Family, cfg attr.Config) (*Result, error) {
	def, ok := families[f]
	if !ok {
		return nil, fmt.Errorf("sprite: %w: no family %q", attr.ErrUnknownAxisValue, f)
	}
	res, err := def.schema.Resolve(cfg)
	if err != nil {
		return nil, err
	}

	w, h := cfg.Width, cfg.Height
	if w <= 0 || h <= 0 {
		d := sizeDims["medium"]
		if sz := res.Axis("size"); sz != nil {
			if v, ok := sizeDims[sz.Key]; ok {
				d = v
			}
		}
		w, h = d, d
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = deriveSeed(string(f), res.Name)
	}
	rng := rand.New(rand.NewSource(seed))

	c := canvas.New(w, h)
	def.paint(c, res, rng)

	// Fixed pass order: material tint, quality overlay, enchantment aura,
	// aging. Each pass reads only the current buffer.
	if mat := res.Axis("material"); mat != nil && def.tintWeight > 0 {
		fx.TintBlend(c, mat.Color, def.tintWeight)
	}
	if q := res.Axis("quality"); q != nil && q.Value != 0 && q.Value != 1 {
		fx.Brightness(c, q.Value)
	}
	if el := res.Axis("element"); el != nil && el.Value > 0 {
		gx, gy := float64(w)/2, float64(h)/2
		if def.glowAt != nil {
			gx, gy = def.glowAt(w, h)
		}
		r := float64(minInt(w, h))
		fx.RadialGlow(c, gx, gy, r*0.25, r*0.55, el.Color, el.Value)
	}
	if age := res.Axis("age"); age != nil && age.Value > 0 {
		fx.AgeDarken(c, age.Value)
		if def.weathered {
			fx.Weather(c, rng, 0, 0, w, h, age.Value)
		}
	}

	return &Result{Canvas: c, Asset: res, Seed: seed}, nil
}

func deriveSeed(family, name string) int64 {
	h := fnv.New64a()
	h.Write([]byte(family))
	h.Write([]byte{0})
	h.Write([]byte(name))
	v := int64(h.Sum64() & math.MaxInt64)
	if v == 0 {
		v = 1
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// randSpan draws from [0,n). Painters derive jitter spans from the canvas
// dimensions, which the caller chooses freely; a span that collapses to zero
// on a tiny canvas yields 0 instead of panicking.
func randSpan(rng *rand.Rand, n int) int {
	if n < 1 {
		return 0
	}
	return rng.Intn(n)
}
