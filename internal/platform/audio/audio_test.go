package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/bunny-dash/internal/sim"
)

// drain streams s to completion and returns the sample count and peak.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = math.Max(peak, math.Max(math.Abs(smp[0]), math.Abs(smp[1])))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never finished")
	return 0, 0
}

func TestToneLength(t *testing.T) {
	for _, wave := range []Wave{WaveSine, WaveSquare, WaveSaw, WaveTriangle} {
		n, peak := drain(t, Tone(440, 100*time.Millisecond, wave, SampleRate))
		if n != SampleRate.N(100*time.Millisecond) {
			t.Errorf("wave %d: streamed %d samples, want %d", wave, n, SampleRate.N(100*time.Millisecond))
		}
		if peak > 1 {
			t.Errorf("wave %d: peak %f out of range", wave, peak)
		}
	}
}

func TestGlideStaysInRange(t *testing.T) {
	n, peak := drain(t, Glide(200, 2000, 50*time.Millisecond, WaveSine, SampleRate))
	if n == 0 || peak > 1 {
		t.Errorf("glide: n=%d peak=%f", n, peak)
	}
}

func TestShapeCutsAndFades(t *testing.T) {
	src := Tone(440, time.Second, WaveSquare, SampleRate)
	s := Shape(src, 20*time.Millisecond, 5*time.Millisecond, 5*time.Millisecond, SampleRate)

	buf := make([][2]float64, 2048)
	n, ok := s.Stream(buf)
	if !ok || n != SampleRate.N(20*time.Millisecond) {
		t.Fatalf("Stream = (%d, %v), want (%d, true)", n, ok, SampleRate.N(20*time.Millisecond))
	}
	if buf[0][0] != 0 {
		t.Errorf("first sample = %f, want silent attack start", buf[0][0])
	}
	if v := math.Abs(buf[n/2][0]); v != 1 {
		t.Errorf("sustain sample = %f, want full amplitude", v)
	}
	if v := math.Abs(buf[n-1][0]); v > 0.01 {
		t.Errorf("last sample = %f, want faded out", v)
	}
	if n, ok := s.Stream(buf); n != 0 || ok {
		t.Errorf("exhausted Stream = (%d, %v)", n, ok)
	}
}

func TestCues(t *testing.T) {
	tests := []struct {
		name   string
		ev     sim.Event
		silent bool
	}{
		{"jump", sim.Jumped{}, false},
		{"double jump", sim.Jumped{Double: true}, false},
		{"damage", sim.DamageTaken{Health: 2}, false},
		{"shield", sim.DamageTaken{Health: 3, ShieldUsed: true}, false},
		{"pickup", sim.ItemCollected{Value: 10}, false},
		{"high pickup", sim.ItemCollected{Value: 20}, false},
		{"candy", sim.BonusCollected{Count: 1}, false},
		{"block", sim.BlockStruck{}, false},
		{"bonus block", sim.BlockStruck{YieldedBonus: true}, false},
		{"level up", sim.LevelUp{Level: 2}, false},
		{"game over", sim.GameEnded{Score: 10}, false},
		{"start", sim.GameStarted{}, true},
		{"best", sim.NewBestScore{Value: 5}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cue := Cue(tt.ev, SampleRate)
			if tt.silent {
				if cue != nil {
					t.Fatal("expected no cue")
				}
				return
			}
			if cue == nil {
				t.Fatal("expected a cue")
			}
			n, peak := drain(t, cue)
			if n == 0 || n > SampleRate.N(time.Second) {
				t.Errorf("cue length %d samples", n)
			}
			if peak > 1 {
				t.Errorf("cue clips: peak %f", peak)
			}
		})
	}
}

func TestPlayerUninitializedIsSilent(t *testing.T) {
	p := NewPlayer(1, nil)
	if p.Enabled() {
		t.Fatal("player enabled before Init")
	}
	p.Handle(sim.Jumped{})
	p.Close()
}
