// Package audio plays short synthesized cues for simulation events.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/bunny-dash/internal/core"
	"github.com/vovakirdan/bunny-dash/internal/sim"
)

// SampleRate is the output rate of every cue.
const SampleRate = beep.SampleRate(44100)

// Player mixes cues into the speaker. A Player that failed to initialize
// (no audio device, muted) silently drops every cue.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	volume      float64
	logger      *log.Logger
}

// NewPlayer creates an uninitialized player.
func NewPlayer(volume float64, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.Default()
	}
	return &Player{mixer: &beep.Mixer{}, volume: core.ClampF(volume, 0, 1), logger: logger}
}

// Init opens the speaker. The game works without sound, so callers may
// ignore the error.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		p.logger.Warn("audio disabled", "err", err)
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Enabled reports whether cues reach the speaker.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized && p.volume > 0
}

// Handle plays the cue for ev, if any.
func (p *Player) Handle(ev sim.Event) {
	if !p.Enabled() {
		return
	}
	cue := Cue(ev, SampleRate)
	if cue == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(withVolume(cue, p.volume))
	speaker.Unlock()
}

// Close silences every playing cue.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}
