// Package attr resolves sparse asset configurations against per-family axis
// template tables and composes the derived numeric stats.
//
// An axis is one independent configuration dimension (type, material,
// quality, size, ...). Each axis value carries a static Template with a base
// color, categorical tags and per-stat modifiers. Templates are built once at
// startup and never mutated, so they are safely shared across concurrent
// generation calls.
package attr

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"
)

// ErrUnknownAxisValue reports a config value with no matching template.
var ErrUnknownAxisValue = errors.New("unknown axis value")

// Config is a sparse record of axis selections plus output dimensions.
// Unset fields take the family's documented defaults. A Seed of zero derives
// a deterministic seed from the resolved name.
type Config struct {
	Type     string `json:"type,omitempty"`
	Subtype  string `json:"subtype,omitempty"`
	Material string `json:"material,omitempty"`
	Quality  string `json:"quality,omitempty"`
	Size     string `json:"size,omitempty"`
	Element  string `json:"element,omitempty"`
	Fuel     string `json:"fuel,omitempty"`
	Age      string `json:"age,omitempty"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
	Seed     int64  `json:"seed,omitempty"`
}

func (c Config) axis(name string) string {
	switch name {
	case "type":
		return c.Type
	case "subtype":
		return c.Subtype
	case "material":
		return c.Material
	case "quality":
		return c.Quality
	case "size":
		return c.Size
	case "element":
		return c.Element
	case "fuel":
		return c.Fuel
	case "age":
		return c.Age
	}
	return ""
}

// Template is the static record attached to one value of one axis.
type Template struct {
	Key     string
	Display string
	Color   color.RGBA
	Accent  color.RGBA
	Base    map[string]float64 // additive base stats, applied before any multiplier
	Mods    map[string]float64 // per-stat multipliers, default 1
	Tags    []string
	Prefix  string  // display-name prefix (quality axis)
	Value   float64 // generic scalar read by effect passes (glow strength, aging, shine)
}

// Axis is one configuration dimension with its value templates.
type Axis struct {
	Name      string
	Templates map[string]*Template
}

// Schema describes one asset family: its axes, composition order, defaults
// and display-name recipe.
type Schema struct {
	Family     string
	AxisOrder  []string // composition order; also the tag-merge order
	Axes       map[string]*Axis
	Defaults   map[string]string
	Fractional map[string]bool // stats kept fractional instead of rounded
	NameAxes   []string        // joined for the display name
}

// ResolvedAsset is the flat output of Resolve: composed stats, merged tags,
// the selected template per axis and a generated display name. It is owned
// by the call that produced it.
type ResolvedAsset struct {
	Family      string               `json:"family"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Stats       map[string]float64   `json:"stats"`
	Tags        []string             `json:"tags"`
	Axes        map[string]*Template `json:"-"`
	Choices     map[string]string    `json:"axes"`
}

// Axis returns the selected template for an axis, or nil if the family has
// no such axis.
func (r *ResolvedAsset) Axis(name string) *Template {
	return r.Axes[name]
}

// Stat returns a composed stat value, 0 when absent.
func (r *ResolvedAsset) Stat(name string) float64 { return r.Stats[name] }

// Resolve merges cfg against the schema defaults, looks up every axis
// template, and composes stats: additive bases first (in axis order), then
// the ordered product of all per-axis multipliers. Stats round to the
// nearest integer unless the schema marks them fractional.
func (s *Schema) Resolve(cfg Config) (*ResolvedAsset, error) {
	selected := make(map[string]*Template, len(s.AxisOrder))
	choices := make(map[string]string, len(s.AxisOrder))
	for _, axisName := range s.AxisOrder {
		ax := s.Axes[axisName]
		val := cfg.axis(axisName)
		if val == "" {
			val = s.Defaults[axisName]
		}
		tpl, ok := ax.Templates[val]
		if !ok {
			return nil, fmt.Errorf("%s: %w: no %s template %q", s.Family, ErrUnknownAxisValue, axisName, val)
		}
		selected[axisName] = tpl
		choices[axisName] = val
	}

	stats := make(map[string]float64)
	for _, axisName := range s.AxisOrder {
		for field, v := range selected[axisName].Base {
			stats[field] += v
		}
	}
	for _, axisName := range s.AxisOrder {
		for field, m := range selected[axisName].Mods {
			if _, ok := stats[field]; !ok {
				continue
			}
			stats[field] *= m
		}
	}
	for field, v := range stats {
		if !s.Fractional[field] {
			stats[field] = math.Round(v)
		}
	}

	var tags []string
	seen := make(map[string]bool)
	for _, axisName := range s.AxisOrder {
		for _, tag := range selected[axisName].Tags {
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}

	name := s.displayName(selected)
	return &ResolvedAsset{
		Family:      s.Family,
		Name:        name,
		Description: s.describe(name, selected),
		Stats:       stats,
		Tags:        tags,
		Axes:        selected,
		Choices:     choices,
	}, nil
}

func (s *Schema) displayName(selected map[string]*Template) string {
	parts := make([]string, 0, len(s.NameAxes))
	for _, axisName := range s.NameAxes {
		tpl := selected[axisName]
		if tpl == nil {
			continue
		}
		part := tpl.Display
		if tpl.Prefix != "" {
			part = tpl.Prefix
		}
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, " ")
}

func (s *Schema) describe(name string, selected map[string]*Template) string {
	var details []string
	for _, axisName := range s.AxisOrder {
		tpl := selected[axisName]
		if tpl.Display != "" && axisName != "subtype" {
			details = append(details, strings.ToLower(tpl.Display))
		}
	}
	return fmt.Sprintf("%s (%s %s)", name, strings.Join(details, " "), s.Family)
}

// Display converts a snake_case key into a title-cased display string.
func Display(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
