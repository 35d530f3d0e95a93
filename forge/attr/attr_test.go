package attr

import (
	"errors"
	"image/color"
	"testing"
)

// testSchema is a two-axis family small enough to reason about by hand.
func testSchema() *Schema {
	return &Schema{
		Family:    "trinket",
		AxisOrder: []string{"type", "material", "quality"},
		Defaults:  map[string]string{"type": "ring", "material": "silver", "quality": "common"},
		Fractional: map[string]bool{
			"weight": true,
		},
		NameAxes: []string{"quality", "material", "type"},
		Axes: map[string]*Axis{
			"type": {Name: "type", Templates: map[string]*Template{
				"ring":   {Key: "ring", Display: "Ring", Base: map[string]float64{"power": 10, "weight": 0.5}, Tags: []string{"jewelry"}},
				"amulet": {Key: "amulet", Display: "Amulet", Base: map[string]float64{"power": 14, "weight": 1.2}, Tags: []string{"jewelry", "neck"}},
			}},
			"material": {Name: "material", Templates: map[string]*Template{
				"silver": {Key: "silver", Display: "Silver", Color: color.RGBA{192, 192, 200, 255}, Mods: map[string]float64{"power": 1.0}, Tags: []string{"metal"}},
				"gold":   {Key: "gold", Display: "Gold", Color: color.RGBA{212, 175, 55, 255}, Mods: map[string]float64{"power": 1.5, "weight": 1.4}, Tags: []string{"metal"}},
			}},
			"quality": {Name: "quality", Templates: map[string]*Template{
				"common": {Key: "common", Mods: map[string]float64{"power": 1.0}},
				"epic":   {Key: "epic", Display: "Epic", Prefix: "Epic", Mods: map[string]float64{"power": 1.6}, Tags: []string{"epic"}},
			}},
		},
	}
}

func TestResolveDefaults(t *testing.T) {
	s := testSchema()
	got, err := s.Resolve(Config{})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.Name != "Silver Ring" {
		t.Errorf("name = %q, want %q", got.Name, "Silver Ring")
	}
	if got.Stat("power") != 10 {
		t.Errorf("power = %v, want 10", got.Stat("power"))
	}
	if got.Choices["material"] != "silver" {
		t.Errorf("choices = %v", got.Choices)
	}
}

func TestResolveComposition(t *testing.T) {
	s := testSchema()
	cases := []struct {
		name      string
		cfg       Config
		wantPower float64
	}{
		{"base only", Config{}, 10},
		{"one multiplier", Config{Material: "gold"}, 15},
		{"stacked multipliers round", Config{Material: "gold", Quality: "epic"}, 24}, // 10*1.5*1.6
		{"amulet base", Config{Type: "amulet", Material: "gold"}, 21},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := s.Resolve(tc.cfg)
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if got.Stat("power") != tc.wantPower {
				t.Errorf("power = %v, want %v", got.Stat("power"), tc.wantPower)
			}
		})
	}
}

func TestResolveFractionalStatNotRounded(t *testing.T) {
	s := testSchema()
	got, err := s.Resolve(Config{Material: "gold"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if w := got.Stat("weight"); w != 0.7 {
		t.Errorf("weight = %v, want 0.7", w)
	}
}

func TestResolveMultiplierNeedsBase(t *testing.T) {
	s := testSchema()
	// gold multiplies weight, but no axis contributes a "luck" base; a
	// multiplier alone must not invent the stat.
	s.Axes["material"].Templates["gold"].Mods["luck"] = 3.0
	got, err := s.Resolve(Config{Material: "gold"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if _, ok := got.Stats["luck"]; ok {
		t.Error("multiplier without a base created a stat")
	}
}

func TestResolveUnknownAxisValue(t *testing.T) {
	s := testSchema()
	cases := []struct {
		name string
		cfg  Config
	}{
		{"unknown material", Config{Material: "plastic"}},
		{"unknown type", Config{Type: "crown"}},
		{"unknown quality", Config{Quality: "artifact"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Resolve(tc.cfg)
			if !errors.Is(err, ErrUnknownAxisValue) {
				t.Errorf("error = %v, want ErrUnknownAxisValue", err)
			}
		})
	}
}

func TestResolveTagsDeduped(t *testing.T) {
	s := testSchema()
	got, err := s.Resolve(Config{Material: "gold", Quality: "epic"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	want := []string{"jewelry", "metal", "epic"}
	if len(got.Tags) != len(want) {
		t.Fatalf("tags = %v, want %v", got.Tags, want)
	}
	for i, tag := range want {
		if got.Tags[i] != tag {
			t.Errorf("tags[%d] = %q, want %q", i, got.Tags[i], tag)
		}
	}
}

func TestQualityPrefixInName(t *testing.T) {
	s := testSchema()
	got, err := s.Resolve(Config{Quality: "epic", Material: "gold"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.Name != "Epic Gold Ring" {
		t.Errorf("name = %q, want %q", got.Name, "Epic Gold Ring")
	}
}

func TestDisplay(t *testing.T) {
	cases := []struct{ in, want string }{
		{"chest_armor", "Chest Armor"},
		{"iron", "Iron"},
		{"rune_tablet", "Rune Tablet"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Display(tc.in); got != tc.want {
			t.Errorf("Display(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
