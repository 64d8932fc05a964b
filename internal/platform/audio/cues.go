package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/bunny-dash/internal/sim"
)

// Cue returns the sound for a simulation event, or nil if the event is
// silent.
func Cue(ev sim.Event, rate beep.SampleRate) beep.Streamer {
	switch e := ev.(type) {
	case sim.Jumped:
		if e.Double {
			return jumpSound(520, 990, rate)
		}
		return jumpSound(330, 660, rate)
	case sim.DamageTaken:
		if e.ShieldUsed {
			return withVolume(note(220, 120*time.Millisecond, WaveTriangle, rate), 0.5)
		}
		return hitSound(rate)
	case sim.ItemCollected:
		if e.Value > 10 {
			return chime(rate, 1047, 1319)
		}
		return chime(rate, 880)
	case sim.BonusCollected:
		return chime(rate, 784, 1047, 1319)
	case sim.BlockStruck:
		if e.YieldedBonus {
			return beep.Seq(note(180, 60*time.Millisecond, WaveSquare, rate), chime(rate, 1568))
		}
		return withVolume(note(180, 70*time.Millisecond, WaveSquare, rate), 0.4)
	case sim.LevelUp:
		return arpeggio(rate, 90*time.Millisecond, 523, 659, 784, 1047)
	case sim.GameEnded:
		return arpeggio(rate, 180*time.Millisecond, 392, 330, 262, 196)
	case sim.NewBestScore, sim.GameStarted:
		return nil
	}
	return nil
}

func jumpSound(from, to float64, rate beep.SampleRate) beep.Streamer {
	d := 120 * time.Millisecond
	return withVolume(Shape(Glide(from, to, d, WaveSquare, rate), d, 5*time.Millisecond, 60*time.Millisecond, rate), 0.25)
}

func hitSound(rate beep.SampleRate) beep.Streamer {
	d := 200 * time.Millisecond
	buzz := Shape(Glide(160, 70, d, WaveSaw, rate), d, 2*time.Millisecond, 120*time.Millisecond, rate)
	return withVolume(buzz, 0.4)
}

// chime plays the given pitches one after another as short bells.
func chime(rate beep.SampleRate, freqs ...float64) beep.Streamer {
	return arpeggio(rate, 80*time.Millisecond, freqs...)
}

func arpeggio(rate beep.SampleRate, step time.Duration, freqs ...float64) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		notes = append(notes, beep.Mix(
			withVolume(note(f, step, WaveSine, rate), 0.3),
			withVolume(note(f*2, step, WaveSine, rate), 0.1),
		))
	}
	return beep.Seq(notes...)
}
