package tables

import (
	"encoding/json"
	"math"
	"math/rand"
)

// Cell classifies one grid tile for placement purposes.
type Cell uint8

const (
	CellFloor Cell = iota
	CellWall
	CellDoor
)

// Grid is a room layout the placement searches run over.
type Grid struct {
	W     int    `json:"w"`
	H     int    `json:"h"`
	Cells []Cell `json:"cells"`
}

// NewGrid returns an all-floor grid.
func NewGrid(w, h int) *Grid {
	return &Grid{W: w, H: h, Cells: make([]Cell, w*h)}
}

// Set assigns a cell; out-of-range coordinates are ignored.
func (g *Grid) Set(x, y int, c Cell) {
	if x < 0 || y < 0 || x >= g.W || y >= g.H {
		return
	}
	g.Cells[y*g.W+x] = c
}

// At reads a cell; out-of-range coordinates read as wall.
func (g *Grid) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= g.W || y >= g.H {
		return CellWall
	}
	return g.Cells[y*g.W+x]
}

// MarshalJSON keeps grid dumps readable in asset metadata files.
func (g *Grid) MarshalJSON() ([]byte, error) {
	type alias Grid
	return json.Marshal((*alias)(g))
}

// Placement is one placed item or light.
type Placement struct {
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Kind string `json:"kind"`
}

// treasure kinds by weight; the big finds stay rare.
var treasureKinds = []struct {
	kind   string
	weight int
}{
	{"coins", 10}, {"gems", 5}, {"potion", 4}, {"relic", 1},
}

// PlaceTreasure grid-searches floor cells, scores them by wall adjacency and
// door distance (corners far from entrances score highest), then draws n
// placements by weighted random over the scored candidates.
func PlaceTreasure(g *Grid, rng *rand.Rand, n int) []Placement {
	type candidate struct {
		x, y  int
		score float64
	}
	var doors [][2]int
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.At(x, y) == CellDoor {
				doors = append(doors, [2]int{x, y})
			}
		}
	}

	var cands []candidate
	total := 0.0
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.At(x, y) != CellFloor {
				continue
			}
			walls := 0
			for _, d := range [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
				if g.At(x+d[0], y+d[1]) == CellWall {
					walls++
				}
			}
			doorDist := float64(g.W + g.H)
			for _, d := range doors {
				dd := math.Hypot(float64(x-d[0]), float64(y-d[1]))
				if dd < doorDist {
					doorDist = dd
				}
			}
			score := 1.0 + float64(walls)*2.0 + doorDist*0.5
			cands = append(cands, candidate{x, y, score})
			total += score
		}
	}

	kindTotal := 0
	for _, k := range treasureKinds {
		kindTotal += k.weight
	}

	out := make([]Placement, 0, n)
	for i := 0; i < n && len(cands) > 0; i++ {
		pick := rng.Float64() * total
		idx := len(cands) - 1
		for j, c := range cands {
			pick -= c.score
			if pick <= 0 {
				idx = j
				break
			}
		}
		c := cands[idx]

		kp := rng.Intn(kindTotal)
		kind := treasureKinds[0].kind
		for _, k := range treasureKinds {
			if kp < k.weight {
				kind = k.kind
				break
			}
			kp -= k.weight
		}
		out = append(out, Placement{X: c.x, Y: c.y, Kind: kind})

		// A cell holds one placement
		total -= c.score
		cands = append(cands[:idx], cands[idx+1:]...)
	}
	return out
}

// PlaceLights greedily covers the floor: scanning in reading order, any
// floor cell farther than radius from every placed light gets one. Jitter
// keeps rows of torches from looking machine-stamped.
func PlaceLights(g *Grid, rng *rand.Rand, radius int) []Placement {
	if radius < 1 {
		radius = 1
	}
	var out []Placement
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.At(x, y) != CellFloor {
				continue
			}
			lit := false
			for _, l := range out {
				if math.Hypot(float64(x-l.X), float64(y-l.Y)) <= float64(radius) {
					lit = true
					break
				}
			}
			if lit {
				continue
			}
			lx := x + rng.Intn(3) - 1
			ly := y + rng.Intn(3) - 1
			if g.At(lx, ly) != CellFloor {
				lx, ly = x, y
			}
			out = append(out, Placement{X: lx, Y: ly, Kind: "torch"})
		}
	}
	return out
}
