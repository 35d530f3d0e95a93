// Command preview opens an interactive gallery of generated sprites with an
// ambient loop playing underneath. Left/right cycle families, up/down cycle
// quality tiers, space rerolls seeds, and tab switches the ambient track.
package main

import (
	"bytes"
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	eaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/PhillipC05/tpt-asset-forge/forge/attr"
	"github.com/PhillipC05/tpt-asset-forge/forge/audio"
	"github.com/PhillipC05/tpt-asset-forge/forge/sprite"
)

const (
	screenWidth  = 960
	screenHeight = 600
	galleryCols  = 6
	galleryRows  = 3
	cellSize     = 150
	spriteZoom   = 2
	sampleRate   = 44100
	loopSeconds  = 8
)

var qualities = []string{"common", "uncommon", "rare", "epic", "legendary", "mythical"}

type tile struct {
	img  *ebiten.Image
	name string
}

// Game implements ebiten.Game over a regenerable sprite gallery.
type Game struct {
	families  []sprite.Family
	familyIdx int
	qualIdx   int
	baseSeed  int64

	tiles []tile

	audioCtx *eaudio.Context
	synth    *audio.Synth
	tracks   []audio.Track
	trackIdx int
	player   *eaudio.Player
}

func NewGame() *Game {
	g := &Game{
		families: sprite.Families(),
		baseSeed: 1,
		audioCtx: eaudio.NewContext(sampleRate),
		synth:    audio.NewSynth(),
		tracks:   audio.Tracks(),
	}
	g.regenerate()
	g.restartAmbient()
	return g
}

// regenerate rebuilds the gallery for the current family and quality.
func (g *Game) regenerate() {
	f := g.families[g.familyIdx]
	cfg := attr.Config{Quality: qualities[g.qualIdx], Seed: g.baseSeed}
	batch := sprite.GenerateMany(f, sprite.Repeat(cfg, galleryCols*galleryRows), 4)
	for _, fail := range batch.Failures {
		log.Printf("%s[%d]: %v", f, fail.Index, fail.Err)
	}
	g.tiles = g.tiles[:0]
	for _, res := range batch.Results {
		g.tiles = append(g.tiles, tile{
			img:  ebiten.NewImageFromImage(res.Canvas.Image()),
			name: res.Asset.Name,
		})
	}
}

// restartAmbient renders the current track and loops it.
func (g *Game) restartAmbient() {
	if g.player != nil {
		_ = g.player.Close()
		g.player = nil
	}
	tr := g.tracks[g.trackIdx]
	samples, err := g.synth.Render(tr, loopSeconds*time.Second, g.baseSeed)
	if err != nil {
		log.Printf("render %s: %v", tr, err)
		return
	}
	pcm := audio.PCMStereoBytes(samples)
	loop := eaudio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	player, err := g.audioCtx.NewPlayer(loop)
	if err != nil {
		log.Printf("player %s: %v", tr, err)
		return
	}
	player.SetVolume(0.6)
	player.Play()
	g.player = player
}

func (g *Game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		g.familyIdx = (g.familyIdx + 1) % len(g.families)
		g.regenerate()
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		g.familyIdx = (g.familyIdx + len(g.families) - 1) % len(g.families)
		g.regenerate()
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		g.qualIdx = (g.qualIdx + 1) % len(qualities)
		g.regenerate()
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		g.qualIdx = (g.qualIdx + len(qualities) - 1) % len(qualities)
		g.regenerate()
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.baseSeed += galleryCols * galleryRows
		g.regenerate()
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		g.trackIdx = (g.trackIdx + 1) % len(g.tracks)
		g.restartAmbient()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{24, 24, 32, 255})
	for i, t := range g.tiles {
		col := i % galleryCols
		row := i / galleryCols
		if row >= galleryRows {
			break
		}
		cx := float64(col*cellSize + cellSize/2)
		cy := float64(row*cellSize + cellSize/2 + 40)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(spriteZoom, spriteZoom)
		w, h := t.img.Bounds().Dx(), t.img.Bounds().Dy()
		op.GeoM.Translate(cx-float64(w*spriteZoom)/2, cy-float64(h*spriteZoom)/2)
		screen.DrawImage(t.img, op)
	}

	info := fmt.Sprintf("family: %s   quality: %s   track: %s\narrows cycle, space rerolls, tab switches audio",
		g.families[g.familyIdx], qualities[g.qualIdx], g.tracks[g.trackIdx])
	ebitenutil.DebugPrint(screen, info)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Asset Forge Preview")
	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
