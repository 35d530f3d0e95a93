// Package export writes generated assets to disk: sprite PNGs with JSON
// stat sidecars, and ambient loops as WAV files.
package export

import (
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	xdraw "golang.org/x/image/draw"

	"github.com/PhillipC05/tpt-asset-forge/forge/attr"
	"github.com/PhillipC05/tpt-asset-forge/forge/audio"
	"github.com/PhillipC05/tpt-asset-forge/forge/sprite"
)

// Options controls how sprites land on disk.
type Options struct {
	// Scale upsamples the pixel art by an integer factor with nearest
	// neighbor. Values below 2 write the canvas as-is.
	Scale int
	// SkipJSON suppresses the stat sidecar next to each PNG.
	SkipJSON bool
}

// Written describes one exported sprite.
type Written struct {
	PNGPath  string `json:"png_path"`
	JSONPath string `json:"json_path,omitempty"`
	Bytes    int64  `json:"bytes"`
}

// WriteSprite writes one result as <dir>/<slug>.png plus a JSON sidecar.
func WriteSprite(dir string, res *sprite.Result, opts Options) (Written, error) {
	return writeSprite(dir, Slug(res.Asset.Name), res, opts)
}

func writeSprite(dir, slug string, res *sprite.Result, opts Options) (Written, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Written{}, fmt.Errorf("create output dir: %w", err)
	}
	pngPath := filepath.Join(dir, slug+".png")

	var img image.Image = res.Canvas.Image()
	if opts.Scale >= 2 {
		img = upscale(img, opts.Scale)
	}

	f, err := os.Create(pngPath)
	if err != nil {
		return Written{}, fmt.Errorf("create %s: %w", pngPath, err)
	}
	if err := encodePNG(f, img); err != nil {
		_ = f.Close()
		_ = os.Remove(pngPath)
		return Written{}, fmt.Errorf("encode %s: %w", pngPath, err)
	}
	if err := f.Close(); err != nil {
		return Written{}, fmt.Errorf("close %s: %w", pngPath, err)
	}
	info, err := os.Stat(pngPath)
	if err != nil {
		return Written{}, fmt.Errorf("stat %s: %w", pngPath, err)
	}

	w := Written{PNGPath: pngPath, Bytes: info.Size()}
	if !opts.SkipJSON {
		jsonPath := filepath.Join(dir, slug+".json")
		if err := writeSidecar(jsonPath, res); err != nil {
			return Written{}, err
		}
		w.JSONPath = jsonPath
	}
	return w, nil
}

// WriteSpriteSet exports a batch; the returned slice is parallel to
// batch.Results. Variants sharing a display name get numbered slugs so
// they never overwrite each other.
func WriteSpriteSet(dir string, batch *sprite.Batch, opts Options) ([]Written, error) {
	seen := make(map[string]int, len(batch.Results))
	out := make([]Written, 0, len(batch.Results))
	for _, res := range batch.Results {
		slug := Slug(res.Asset.Name)
		seen[slug]++
		if n := seen[slug]; n > 1 {
			slug = fmt.Sprintf("%s_%02d", slug, n)
		}
		w, err := writeSprite(dir, slug, res, opts)
		if err != nil {
			return out, err
		}
		out = append(out, w)
	}
	return out, nil
}

// sidecar is the JSON written next to each sprite.
type sidecar struct {
	attr.ResolvedAsset
	Seed       int64  `json:"seed"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	ExportedAt string `json:"exported_at"`
}

func writeSidecar(path string, res *sprite.Result) error {
	doc := sidecar{
		ResolvedAsset: *res.Asset,
		Seed:          res.Seed,
		Width:         res.Canvas.Width(),
		Height:        res.Canvas.Height(),
		ExportedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// WriteWAV renders and writes one ambient loop.
func WriteWAV(dir string, s *audio.Synth, tr audio.Track, dur time.Duration, seed int64) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	samples, err := s.Render(tr, dur, seed)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, string(tr)+".wav")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	if err := audio.EncodeWAV(f, samples, s.SampleRate); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	return path, nil
}

func encodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// upscale blows pixel art up by an integer factor without smoothing.
func upscale(src image.Image, factor int) image.Image {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, xdraw.Over, nil)
	return dst
}

// Slug turns a display name into a filesystem-safe lowercase token.
func Slug(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('_')
				lastDash = true
			}
		}
	}
	return strings.Trim(b.String(), "_")
}
