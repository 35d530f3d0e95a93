// Package tables holds the pure-data generators: NPC roster expansion and
// treasure/lighting placement. Nothing here touches a pixel buffer.
package tables

import (
	"fmt"
	"math/rand"
)

// NPC is one generated roster entry.
type NPC struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Trait string `json:"trait"`
	Quirk string `json:"quirk"`
	Level int    `json:"level"`
}

var npcFirstNames = []string{
	"Aldric", "Brenna", "Cedric", "Dalia", "Edwin", "Fiora", "Garrick", "Hilda",
	"Isolde", "Joren", "Kaela", "Lothar", "Mirelle", "Nolan", "Orla", "Percival",
	"Quenna", "Rowan", "Sable", "Tormund", "Una", "Vesper", "Wren", "Yrsa",
}

var npcSurnames = []string{
	"Ashdown", "Blackbriar", "Coppervein", "Duskwater", "Emberfall", "Frostmere",
	"Grimshaw", "Hollowell", "Ironwood", "Kestrel", "Longstride", "Mossbank",
	"Nightingale", "Oakhart", "Pyre", "Quill", "Ravenscar", "Stonefield",
	"Thornfield", "Underhill", "Vane", "Wolfsbane",
}

// weightedRole pairs a roster role with its spawn weight; commoners
// dominate, named specialists stay rare.
type weightedRole struct {
	role   string
	weight int
}

var npcRoles = []weightedRole{
	{"villager", 30}, {"merchant", 14}, {"guard", 14}, {"farmer", 12},
	{"blacksmith", 7}, {"innkeeper", 6}, {"priest", 5}, {"scholar", 4},
	{"hunter", 4}, {"alchemist", 2}, {"bard", 2},
}

var npcTraits = []string{
	"gruff", "cheerful", "suspicious", "generous", "weary", "ambitious",
	"superstitious", "stoic", "nervous", "boastful", "kindly", "sharp-tongued",
}

var npcQuirks = []string{
	"collects river stones", "hums old war songs", "never removes their gloves",
	"quotes proverbs wrongly", "feeds every stray dog", "keeps a lucky coin",
	"distrusts wizards", "talks to their tools", "always smells of cedar",
	"owes someone money", "claims noble blood", "sleeps with one eye open",
}

// RosterExpand generates n roster entries from the static name/trait/role
// tables. Names are unique within one call; levels skew low.
func RosterExpand(rng *rand.Rand, n int) []NPC {
	totalWeight := 0
	for _, r := range npcRoles {
		totalWeight += r.weight
	}
	used := make(map[string]bool, n)
	out := make([]NPC, 0, n)
	for len(out) < n {
		name := fmt.Sprintf("%s %s",
			npcFirstNames[rng.Intn(len(npcFirstNames))],
			npcSurnames[rng.Intn(len(npcSurnames))])
		if used[name] {
			// Exhausted combinations just get a numbered fallback.
			if len(used) >= len(npcFirstNames)*len(npcSurnames) {
				name = fmt.Sprintf("%s the %dth", name, len(out)+1)
			} else {
				continue
			}
		}
		used[name] = true

		pick := rng.Intn(totalWeight)
		role := npcRoles[0].role
		for _, r := range npcRoles {
			if pick < r.weight {
				role = r.role
				break
			}
			pick -= r.weight
		}

		out = append(out, NPC{
			Name:  name,
			Role:  role,
			Trait: npcTraits[rng.Intn(len(npcTraits))],
			Quirk: npcQuirks[rng.Intn(len(npcQuirks))],
			Level: 1 + rng.Intn(3) + rng.Intn(3),
		})
	}
	return out
}
