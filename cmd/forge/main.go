// Command forge generates sprite sheets and ambient loops from the command
// line and optionally records them in a catalog database.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/PhillipC05/tpt-asset-forge/forge/attr"
	"github.com/PhillipC05/tpt-asset-forge/forge/audio"
	"github.com/PhillipC05/tpt-asset-forge/forge/catalog"
	"github.com/PhillipC05/tpt-asset-forge/forge/export"
	"github.com/PhillipC05/tpt-asset-forge/forge/sprite"
	"github.com/PhillipC05/tpt-asset-forge/forge/tables"
)

// envConfig carries the FORGE_* environment defaults; flags override them.
type envConfig struct {
	OutDir      string `env:"FORGE_OUT_DIR" envDefault:"out"`
	CatalogPath string `env:"FORGE_CATALOG"`
	Workers     int    `env:"FORGE_WORKERS" envDefault:"4"`
	Scale       int    `env:"FORGE_SCALE" envDefault:"1"`
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("forge: ")

	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		log.Fatalf("parse environment: %v", err)
	}

	var (
		family   = flag.String("family", "all", "family to generate, or \"all\"")
		typ      = flag.String("type", "", "type within the family (family default when empty)")
		subtype  = flag.String("subtype", "", "subtype axis value")
		material = flag.String("material", "", "material axis value")
		quality  = flag.String("quality", "", "quality tier")
		size     = flag.String("size", "", "size class")
		element  = flag.String("element", "", "element axis value")
		count    = flag.Int("count", 1, "sprites per family")
		seed     = flag.Int64("seed", 0, "base seed, 0 derives one per asset")
		outDir   = flag.String("out", ec.OutDir, "output directory")
		scale    = flag.Int("scale", ec.Scale, "integer upscale factor for PNGs")
		workers  = flag.Int("workers", ec.Workers, "parallel generation workers")
		dbPath   = flag.String("catalog", ec.CatalogPath, "catalog database path (optional)")
		ambient  = flag.Bool("ambient", false, "also render the ambient loops as WAV")
		ambDur   = flag.Duration("ambient-dur", 8*time.Second, "ambient loop duration")
		roster   = flag.Int("roster", 0, "also expand an NPC roster of this many entries")
		layout   = flag.String("layout", "", "also place treasure and torches in a WxH room, e.g. 24x18")
	)
	flag.Parse()

	families := sprite.Families()
	if *family != "all" {
		families = []sprite.Family{sprite.Family(*family)}
	}

	var store *catalog.Store
	if *dbPath != "" {
		var err error
		store, err = catalog.Open(*dbPath)
		if err != nil {
			log.Fatalf("open catalog: %v", err)
		}
		defer store.Close()
	}

	cfg := attr.Config{
		Type:     *typ,
		Subtype:  *subtype,
		Material: *material,
		Quality:  *quality,
		Size:     *size,
		Element:  *element,
		Seed:     *seed,
	}

	ctx := context.Background()
	written, failed := 0, 0
	for _, f := range families {
		batch := sprite.GenerateMany(f, sprite.Repeat(cfg, *count), *workers)
		for _, fail := range batch.Failures {
			failed++
			log.Printf("%s[%d]: %v", f, fail.Index, fail.Err)
		}
		outs, err := export.WriteSpriteSet(*outDir, batch, export.Options{Scale: *scale})
		if err != nil {
			log.Fatalf("export %s: %v", f, err)
		}
		written += len(outs)

		if store != nil {
			for i, res := range batch.Results {
				if err := record(ctx, store, f, res, outs[i]); err != nil {
					log.Fatalf("catalog %s: %v", res.Asset.Name, err)
				}
			}
		}
	}

	if *ambient {
		synth := audio.NewSynth()
		for _, tr := range audio.Tracks() {
			path, err := export.WriteWAV(*outDir, synth, tr, *ambDur, *seed)
			if err != nil {
				log.Fatalf("render %s: %v", tr, err)
			}
			log.Printf("wrote %s", path)
		}
	}

	if *roster > 0 || *layout != "" {
		if err := os.MkdirAll(*outDir, 0o755); err != nil {
			log.Fatalf("create output dir: %v", err)
		}
	}
	if *roster > 0 {
		rng := rand.New(rand.NewSource(rosterSeed(*seed)))
		if err := writeJSON(filepath.Join(*outDir, "roster.json"), tables.RosterExpand(rng, *roster)); err != nil {
			log.Fatalf("roster: %v", err)
		}
	}
	if *layout != "" {
		if err := writeLayout(filepath.Join(*outDir, "layout.json"), *layout, *seed); err != nil {
			log.Fatalf("layout: %v", err)
		}
	}

	log.Printf("wrote %d sprites to %s (%d failed)", written, *outDir, failed)
	if failed > 0 {
		os.Exit(1)
	}
}

func rosterSeed(seed int64) int64 {
	if seed == 0 {
		return 1
	}
	return seed
}

// writeLayout builds a walled room with one door, scatters treasure and
// torch placements over it, and dumps the result as JSON.
func writeLayout(path, dims string, seed int64) error {
	var w, h int
	if _, err := fmt.Sscanf(dims, "%dx%d", &w, &h); err != nil || w < 4 || h < 4 {
		return fmt.Errorf("layout dims %q: want WxH with both at least 4", dims)
	}
	g := tables.NewGrid(w, h)
	for x := 0; x < w; x++ {
		g.Set(x, 0, tables.CellWall)
		g.Set(x, h-1, tables.CellWall)
	}
	for y := 0; y < h; y++ {
		g.Set(0, y, tables.CellWall)
		g.Set(w-1, y, tables.CellWall)
	}
	g.Set(w/2, 0, tables.CellDoor)

	rng := rand.New(rand.NewSource(rosterSeed(seed)))
	doc := struct {
		Room     *tables.Grid       `json:"room"`
		Treasure []tables.Placement `json:"treasure"`
		Lights   []tables.Placement `json:"lights"`
	}{
		Room:     g,
		Treasure: tables.PlaceTreasure(g, rng, (w*h)/60+1),
		Lights:   tables.PlaceLights(g, rng, 5),
	}
	return writeJSON(path, doc)
}

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	log.Printf("wrote %s", path)
	return nil
}

// record stores one exported sprite in the catalog.
func record(ctx context.Context, store *catalog.Store, f sprite.Family, res *sprite.Result, w export.Written) error {
	meta, err := json.Marshal(res.Asset)
	if err != nil {
		return fmt.Errorf("encode metadata: %w", err)
	}
	_, err = store.SaveAsset(ctx, catalog.Asset{
		AssetType: string(f),
		Name:      res.Asset.Name,
		Metadata:  meta,
		FilePath:  w.PNGPath,
		FileSize:  w.Bytes,
	})
	return err
}
