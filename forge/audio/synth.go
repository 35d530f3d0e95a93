// Package audio renders ambient loops offline: seeded noise and sine
// oscillators run through one-pole filters and mixed down to 16-bit mono
// PCM. The synthesizers share no data model with the sprite pipeline; they
// only meet it again at the export boundary.
package audio

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// Track identifies one ambient loop.
type Track string

const (
	TrackFire    Track = "fire"
	TrackWind    Track = "wind"
	TrackCave    Track = "cave"
	TrackDungeon Track = "dungeon"
	TrackForest  Track = "forest"
)

// Tracks lists the available ambient loops.
func Tracks() []Track {
	return []Track{TrackFire, TrackWind, TrackCave, TrackDungeon, TrackForest}
}

// Synth renders ambient tracks at a fixed sample rate.
type Synth struct {
	SampleRate   int
	MasterVolume float64
}

// NewSynth returns a synth at 44.1 kHz, full volume.
func NewSynth() *Synth {
	return &Synth{SampleRate: 44100, MasterVolume: 1.0}
}

// Render produces one seeded ambient loop as 16-bit mono samples.
func (s *Synth) Render(tr Track, dur time.Duration, seed int64) ([]int16, error) {
	n := int(float64(s.SampleRate) * dur.Seconds())
	if n <= 0 {
		return nil, fmt.Errorf("audio: non-positive duration %v", dur)
	}
	rng := rand.New(rand.NewSource(seed))
	buf := make([]float64, n)
	switch tr {
	case TrackFire:
		s.renderFire(buf, rng)
	case TrackWind:
		s.renderWind(buf, rng)
	case TrackCave:
		s.renderCave(buf, rng)
	case TrackDungeon:
		s.renderDungeon(buf, rng)
	case TrackForest:
		s.renderForest(buf, rng)
	default:
		return nil, fmt.Errorf("audio: unknown track %q", tr)
	}
	return s.quantize(buf), nil
}

// renderFire mixes a low rumble with filtered crackle bursts.
func (s *Synth) renderFire(buf []float64, rng *rand.Rand) {
	lp := 0.0
	crackle := 0.0
	for i := range buf {
		t := float64(i) / float64(s.SampleRate)
		// Rumble: heavily low-passed noise with a slow swell
		lp += 0.002 * (rng.Float64()*2 - 1 - lp)
		swell := 0.8 + 0.2*math.Sin(2*math.Pi*0.11*t)
		// Crackles: sparse impulses with fast decay
		if rng.Float64() < 0.0007 {
			crackle = 0.5 + rng.Float64()*0.5
		}
		crackle *= 0.995
		pop := crackle * (rng.Float64()*2 - 1)
		buf[i] = lp*14*swell + pop*0.6
	}
}

// renderWind band-passes noise and moves the band with two slow LFOs.
func (s *Synth) renderWind(buf []float64, rng *rand.Rand) {
	lp, lp2 := 0.0, 0.0
	for i := range buf {
		t := float64(i) / float64(s.SampleRate)
		gust := 0.5 + 0.3*math.Sin(2*math.Pi*0.07*t) + 0.2*math.Sin(2*math.Pi*0.013*t+1.3)
		cutoff := 0.02 + 0.04*gust
		white := rng.Float64()*2 - 1
		lp += cutoff * (white - lp)
		lp2 += cutoff * 0.5 * (lp - lp2)
		buf[i] = (lp - lp2) * 8 * gust
	}
}

// renderCave is a near-silent room tone with random water drips.
func (s *Synth) renderCave(buf []float64, rng *rand.Rand) {
	lp := 0.0
	dripAmp, dripFreq, dripPhase := 0.0, 0.0, 0.0
	for i := range buf {
		lp += 0.001 * (rng.Float64()*2 - 1 - lp)
		if rng.Float64() < 0.00004 {
			dripAmp = 0.3 + rng.Float64()*0.4
			dripFreq = 700 + rng.Float64()*900
			dripPhase = 0
		}
		drip := 0.0
		if dripAmp > 0.001 {
			dripPhase += 2 * math.Pi * dripFreq / float64(s.SampleRate)
			drip = dripAmp * math.Sin(dripPhase)
			dripAmp *= 0.9994
		}
		buf[i] = lp*10 + drip
	}
}

// renderDungeon layers two detuned low sines over slow noise.
func (s *Synth) renderDungeon(buf []float64, rng *rand.Rand) {
	lp := 0.0
	for i := range buf {
		t := float64(i) / float64(s.SampleRate)
		drone := 0.25*math.Sin(2*math.Pi*55*t) + 0.2*math.Sin(2*math.Pi*55.7*t+0.4)
		drone *= 0.7 + 0.3*math.Sin(2*math.Pi*0.05*t)
		lp += 0.0015 * (rng.Float64()*2 - 1 - lp)
		buf[i] = drone + lp*6
	}
}

// renderForest is wind at a lighter band plus sparse two-note chirps.
func (s *Synth) renderForest(buf []float64, rng *rand.Rand) {
	lp := 0.0
	chirpAmp, chirpFreq, chirpPhase, chirpSlide := 0.0, 0.0, 0.0, 0.0
	for i := range buf {
		white := rng.Float64()*2 - 1
		lp += 0.08 * (white - lp)
		if rng.Float64() < 0.00002 {
			chirpAmp = 0.2 + rng.Float64()*0.25
			chirpFreq = 1800 + rng.Float64()*1600
			chirpSlide = (rng.Float64() - 0.3) * 8
			chirpPhase = 0
		}
		chirp := 0.0
		if chirpAmp > 0.001 {
			chirpFreq += chirpSlide
			chirpPhase += 2 * math.Pi * chirpFreq / float64(s.SampleRate)
			chirp = chirpAmp * math.Sin(chirpPhase)
			chirpAmp *= 0.9992
		}
		buf[i] = lp*1.5 + chirp
	}
}

// quantize applies master volume, a soft clip, and a short fade at both
// ends so loops splice without clicks.
func (s *Synth) quantize(buf []float64) []int16 {
	fade := s.SampleRate / 50
	if fade > len(buf)/2 {
		fade = len(buf) / 2
	}
	out := make([]int16, len(buf))
	for i, v := range buf {
		v *= s.MasterVolume
		v = math.Tanh(v)
		if i < fade {
			v *= float64(i) / float64(fade)
		}
		if tail := len(buf) - 1 - i; tail < fade {
			v *= float64(tail) / float64(fade)
		}
		out[i] = int16(v * 32000)
	}
	return out
}

// PCMStereoBytes expands mono samples to interleaved 16-bit little-endian
// stereo, the format the playback layer consumes.
func PCMStereoBytes(samples []int16) []byte {
	out := make([]byte, len(samples)*4)
	for i, sm := range samples {
		lo := byte(uint16(sm) & 0xff)
		hi := byte(uint16(sm) >> 8)
		out[i*4+0] = lo
		out[i*4+1] = hi
		out[i*4+2] = lo
		out[i*4+3] = hi
	}
	return out
}
