package audio

import (
	"bytes"
	"encoding/binary"
	"testing"
	"time"
)

func TestRenderLength(t *testing.T) {
	s := NewSynth()
	cases := []struct {
		name string
		dur  time.Duration
		want int
	}{
		{"one second", time.Second, 44100},
		{"half second", 500 * time.Millisecond, 22050},
		{"two seconds", 2 * time.Second, 88200},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			samples, err := s.Render(TrackWind, tc.dur, 1)
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			if len(samples) != tc.want {
				t.Errorf("got %d samples, want %d", len(samples), tc.want)
			}
		})
	}
}

func TestRenderRejectsNonPositiveDuration(t *testing.T) {
	s := NewSynth()
	if _, err := s.Render(TrackFire, 0, 1); err == nil {
		t.Error("expected error for zero duration")
	}
	if _, err := s.Render(TrackFire, -time.Second, 1); err == nil {
		t.Error("expected error for negative duration")
	}
}

func TestRenderUnknownTrack(t *testing.T) {
	s := NewSynth()
	if _, err := s.Render(Track("ocean"), time.Second, 1); err == nil {
		t.Error("expected error for unknown track")
	}
}

func TestRenderDeterministic(t *testing.T) {
	s := NewSynth()
	for _, tr := range Tracks() {
		tr := tr
		t.Run(string(tr), func(t *testing.T) {
			a, err := s.Render(tr, 200*time.Millisecond, 42)
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			b, err := s.Render(tr, 200*time.Millisecond, 42)
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			for i := range a {
				if a[i] != b[i] {
					t.Fatalf("sample %d differs between identical renders", i)
				}
			}
		})
	}
}

func TestRenderFadesEnds(t *testing.T) {
	s := NewSynth()
	samples, err := s.Render(TrackDungeon, time.Second, 7)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if samples[0] != 0 {
		t.Errorf("first sample = %d, want 0", samples[0])
	}
	if last := samples[len(samples)-1]; last != 0 {
		t.Errorf("last sample = %d, want 0", last)
	}
}

func TestEncodeWAVHeader(t *testing.T) {
	samples := []int16{0, 1000, -1000, 32000}
	var buf bytes.Buffer
	if err := EncodeWAV(&buf, samples, 44100); err != nil {
		t.Fatalf("EncodeWAV: %v", err)
	}
	data := buf.Bytes()
	if len(data) != 44+len(samples)*2 {
		t.Fatalf("wav length = %d, want %d", len(data), 44+len(samples)*2)
	}
	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		t.Error("missing RIFF/WAVE markers")
	}
	if rate := binary.LittleEndian.Uint32(data[24:28]); rate != 44100 {
		t.Errorf("sample rate = %d, want 44100", rate)
	}
	if bits := binary.LittleEndian.Uint16(data[34:36]); bits != 16 {
		t.Errorf("bit depth = %d, want 16", bits)
	}
	if dataLen := binary.LittleEndian.Uint32(data[40:44]); dataLen != uint32(len(samples)*2) {
		t.Errorf("data length = %d, want %d", dataLen, len(samples)*2)
	}
	if got := int16(binary.LittleEndian.Uint16(data[46:48])); got != 1000 {
		t.Errorf("second sample = %d, want 1000", got)
	}
}

func TestPCMStereoBytes(t *testing.T) {
	got := PCMStereoBytes([]int16{0x0102, -1})
	want := []byte{0x02, 0x01, 0x02, 0x01, 0xff, 0xff, 0xff, 0xff}
	if !bytes.Equal(got, want) {
		t.Errorf("got % x, want % x", got, want)
	}
}
