package sprite

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/PhillipC05/tpt-asset-forge/forge/attr"
	"github.com/PhillipC05/tpt-asset-forge/forge/canvas"
)

func TestArmorStatComposition(t *testing.T) {
	cases := []struct {
		name  string
		cfg   attr.Config
		stat  string
		want  float64
	}{
		{
			name: "epic steel plate chest",
			cfg:  attr.Config{Type: "chest_armor", Subtype: "plate_armor", Material: "steel", Quality: "epic", Size: "medium"},
			stat: "defense",
			want: 19, // round(15 * 1.0 * 0.8 * 1.6)
		},
		{
			name: "common iron defaults",
			cfg:  attr.Config{},
			stat: "defense",
			want: 15,
		},
		{
			name: "leather cuts defense",
			cfg:  attr.Config{Subtype: "leather_armor"},
			stat: "defense",
			want: 11, // round(15 * 0.7)
		},
		{
			name: "steel raises durability",
			cfg:  attr.Config{Material: "steel", Quality: "epic"},
			stat: "durability",
			want: 250, // round(120 * 1.3 * 1.6)
		},
	}
	schema, err := Schema(FamilyArmor)
	if err != nil {
		t.Fatalf("Schema: %v", err)
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := schema.Resolve(tc.cfg)
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if got := res.Stat(tc.stat); got != tc.want {
				t.Errorf("%s = %v, want %v", tc.stat, got, tc.want)
			}
		})
	}
}

func TestArmorWeightStaysFractional(t *testing.T) {
	schema, _ := Schema(FamilyArmor)
	res, err := schema.Resolve(attr.Config{Material: "steel"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	// 12 * 1.25 (plate) * 1.05 (steel)
	if got := res.Stat("weight"); got != 15.75 {
		t.Errorf("weight = %v, want 15.75", got)
	}
}

func TestArmorDisplayName(t *testing.T) {
	schema, _ := Schema(FamilyArmor)
	cases := []struct {
		name string
		cfg  attr.Config
		want string
	}{
		{"common omits tier", attr.Config{}, "Iron Chest Armor"},
		{"epic steel", attr.Config{Material: "steel", Quality: "epic"}, "Epic Steel Chest Armor"},
		{"mythical helmet", attr.Config{Type: "helmets", Material: "mithril", Quality: "mythical"}, "Mythical Mithril Helmet"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := schema.Resolve(tc.cfg)
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if res.Name != tc.want {
				t.Errorf("name = %q, want %q", res.Name, tc.want)
			}
		})
	}
}

func TestGenerateDimensions(t *testing.T) {
	cases := []struct {
		name string
		cfg  attr.Config
		want int
	}{
		{"small", attr.Config{Size: "small"}, 32},
		{"default medium", attr.Config{}, 48},
		{"large", attr.Config{Size: "large"}, 64},
		{"huge", attr.Config{Size: "huge"}, 96},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := Generate(FamilyArmor, tc.cfg)
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			if res.Canvas.Width() != tc.want || res.Canvas.Height() != tc.want {
				t.Errorf("canvas %dx%d, want %dx%d",
					res.Canvas.Width(), res.Canvas.Height(), tc.want, tc.want)
			}
		})
	}
}

func TestGenerateExplicitDimsOverrideSize(t *testing.T) {
	res, err := Generate(FamilyWeapon, attr.Config{Size: "huge", Width: 20, Height: 30})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if res.Canvas.Width() != 20 || res.Canvas.Height() != 30 {
		t.Errorf("canvas %dx%d, want 20x30", res.Canvas.Width(), res.Canvas.Height())
	}
}

func TestGenerateDeterministicBySeed(t *testing.T) {
	cfg := attr.Config{Material: "steel", Quality: "rare", Seed: 99}
	a, err := Generate(FamilyArmor, cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := Generate(FamilyArmor, cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for y := 0; y < a.Canvas.Height(); y++ {
		for x := 0; x < a.Canvas.Width(); x++ {
			if a.Canvas.PixelAt(x, y) != b.Canvas.PixelAt(x, y) {
				t.Fatalf("pixel (%d,%d) differs between identical runs", x, y)
			}
		}
	}
}

func TestGenerateZeroSeedDerivedFromName(t *testing.T) {
	a, err := Generate(FamilyTorch, attr.Config{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := Generate(FamilyTorch, attr.Config{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if a.Seed == 0 || a.Seed != b.Seed {
		t.Errorf("derived seeds %d and %d, want equal non-zero", a.Seed, b.Seed)
	}
}

func TestGenerateUnknownFamily(t *testing.T) {
	if _, err := Generate(Family("vehicle"), attr.Config{}); !errors.Is(err, attr.ErrUnknownAxisValue) {
		t.Errorf("error = %v, want ErrUnknownAxisValue", err)
	}
}

func TestGenerateUnknownAxisValue(t *testing.T) {
	_, err := Generate(FamilyArmor, attr.Config{Material: "tin"})
	if !errors.Is(err, attr.ErrUnknownAxisValue) {
		t.Errorf("error = %v, want ErrUnknownAxisValue", err)
	}
}

func TestGenerateAllFamiliesDefaultConfig(t *testing.T) {
	for _, f := range Families() {
		f := f
		t.Run(string(f), func(t *testing.T) {
			res, err := Generate(f, attr.Config{})
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			opaque := 0
			for y := 0; y < res.Canvas.Height(); y++ {
				for x := 0; x < res.Canvas.Width(); x++ {
					if res.Canvas.PixelAt(x, y).A > 0 {
						opaque++
					}
				}
			}
			if opaque == 0 {
				t.Error("default sprite drew nothing")
			}
			if res.Asset.Name == "" {
				t.Error("resolved asset has no name")
			}
		})
	}
}

func TestGenerateTinyExplicitDimensions(t *testing.T) {
	// Explicit dimensions are unconstrained, so jitter spans derived from
	// w and h must tolerate canvases far smaller than any size tier.
	dims := []struct{ w, h int }{{10, 10}, {8, 8}, {3, 3}, {1, 1}}
	for _, f := range Families() {
		f := f
		for _, d := range dims {
			t.Run(fmt.Sprintf("%s_%dx%d", f, d.w, d.h), func(t *testing.T) {
				res, err := Generate(f, attr.Config{Width: d.w, Height: d.h})
				if err != nil {
					t.Fatalf("Generate: %v", err)
				}
				if res.Canvas.Width() != d.w || res.Canvas.Height() != d.h {
					t.Errorf("canvas %dx%d, want %dx%d",
						res.Canvas.Width(), res.Canvas.Height(), d.w, d.h)
				}
			})
		}
	}
}

func TestGenerateManySkipsFailures(t *testing.T) {
	cfgs := []attr.Config{
		{Seed: 1},
		{Material: "cardboard", Seed: 2},
		{Quality: "rare", Seed: 3},
		{Material: "cheese", Seed: 4},
		{Quality: "legendary", Seed: 5},
	}
	batch := GenerateMany(FamilyArmor, cfgs, 3)
	if len(batch.Results) != 3 {
		t.Fatalf("got %d results, want 3", len(batch.Results))
	}
	if batch.FailedCount() != 2 {
		t.Fatalf("got %d failures, want 2", batch.FailedCount())
	}
	wantIdx := map[int]bool{1: true, 3: true}
	for _, f := range batch.Failures {
		if !wantIdx[f.Index] {
			t.Errorf("unexpected failure index %d", f.Index)
		}
		if !errors.Is(f.Err, attr.ErrUnknownAxisValue) {
			t.Errorf("failure %d error = %v, want ErrUnknownAxisValue", f.Index, f.Err)
		}
	}
	// Successes keep input order.
	seeds := []int64{1, 3, 5}
	for i, res := range batch.Results {
		if res.Seed != seeds[i] {
			t.Errorf("result %d seed = %d, want %d", i, res.Seed, seeds[i])
		}
	}
}

func TestGenerateManyAbsorbsPainterPanic(t *testing.T) {
	const f = Family("volatile")
	families[f] = &familyDef{
		schema: armorSchema(),
		paint: func(dst *canvas.Canvas, _ *attr.ResolvedAsset, _ *rand.Rand) {
			if dst.Width() < 12 {
				panic("canvas too small")
			}
		},
	}
	defer delete(families, f)

	cfgs := []attr.Config{
		{Seed: 1},
		{Seed: 2, Width: 10, Height: 10},
		{Seed: 3},
	}
	batch := GenerateMany(f, cfgs, 2)
	if len(batch.Results) != 2 {
		t.Fatalf("got %d results, want 2", len(batch.Results))
	}
	if batch.FailedCount() != 1 {
		t.Fatalf("got %d failures, want 1", batch.FailedCount())
	}
	fail := batch.Failures[0]
	if fail.Index != 1 {
		t.Errorf("failure index = %d, want 1", fail.Index)
	}
	if fail.Err == nil || !strings.Contains(fail.Err.Error(), "panic") {
		t.Errorf("failure error = %v, want a panic report", fail.Err)
	}
	seeds := []int64{1, 3}
	for i, res := range batch.Results {
		if res.Seed != seeds[i] {
			t.Errorf("result %d seed = %d, want %d", i, res.Seed, seeds[i])
		}
	}
}

func TestQualityTiersNeverLowerStats(t *testing.T) {
	tiers := []string{"common", "uncommon", "rare", "epic", "legendary", "mythical"}
	schema, err := Schema(FamilyArmor)
	if err != nil {
		t.Fatalf("Schema: %v", err)
	}
	prevDef, prevDur := -1.0, -1.0
	for _, q := range tiers {
		res, err := schema.Resolve(attr.Config{Quality: q})
		if err != nil {
			t.Fatalf("Resolve %s: %v", q, err)
		}
		def, dur := res.Stat("defense"), res.Stat("durability")
		if def < prevDef {
			t.Errorf("quality %s defense = %v, below previous tier's %v", q, def, prevDef)
		}
		if dur < prevDur {
			t.Errorf("quality %s durability = %v, below previous tier's %v", q, dur, prevDur)
		}
		prevDef, prevDur = def, dur
	}
}

func TestRepeatSeeds(t *testing.T) {
	cfgs := Repeat(attr.Config{Material: "steel", Seed: 100}, 4)
	if len(cfgs) != 4 {
		t.Fatalf("got %d configs, want 4", len(cfgs))
	}
	for i, cfg := range cfgs {
		if cfg.Seed != 100+int64(i) {
			t.Errorf("cfg[%d].Seed = %d, want %d", i, cfg.Seed, 100+int64(i))
		}
		if cfg.Material != "steel" {
			t.Errorf("cfg[%d] lost its material", i)
		}
	}
}

func TestSchemaUnknownFamily(t *testing.T) {
	if _, err := Schema(Family("gadget")); err == nil {
		t.Error("expected error for unknown family")
	}
}
