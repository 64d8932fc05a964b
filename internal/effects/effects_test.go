package effects

import (
	"testing"

	"github.com/vovakirdan/bunny-dash/internal/sim"
)

func newStarted() *Scheduler {
	s := New(sim.NewRand(1))
	s.Handle(sim.GameStarted{})
	return s
}

func TestBubbleLifetime(t *testing.T) {
	s := newStarted()
	s.Handle(sim.ItemCollected{Value: 10})

	b, ok := s.Bubble()
	if !ok || b.Special || b.Alpha != 1 {
		t.Fatalf("Bubble() = %+v, %v", b, ok)
	}
	if !contains(regularLines, b.Text) {
		t.Errorf("unexpected line %q for a regular pickup", b.Text)
	}

	s.Advance(1650) // halfway through the fade
	b, ok = s.Bubble()
	if !ok || b.Alpha < 0.49 || b.Alpha > 0.51 {
		t.Errorf("mid-fade alpha = %v, %v", b.Alpha, ok)
	}

	s.Advance(200)
	if _, ok := s.Bubble(); ok {
		t.Error("bubble should be gone after hold and fade")
	}
}

func TestSpecialPickupLine(t *testing.T) {
	s := newStarted()
	s.Handle(sim.ItemCollected{Value: 20})
	b, _ := s.Bubble()
	if !b.Special || !contains(specialLines, b.Text) {
		t.Errorf("Bubble() = %+v, expected a special line", b)
	}
	if f := s.Floaters(); len(f) != 1 || f[0].Text != "+20" {
		t.Errorf("Floaters() = %+v", f)
	}
}

func TestNewBubbleReplacesCurrent(t *testing.T) {
	s := newStarted()
	s.Handle(sim.ItemCollected{Value: 10})
	s.Advance(100)
	s.Handle(sim.BonusCollected{Count: 1})

	b, _ := s.Bubble()
	if b.Text != candyLine {
		t.Errorf("Bubble() = %q, expected %q", b.Text, candyLine)
	}
	if len(s.bubbles) != 1 {
		t.Errorf("replaced bubble still queued: %d bubbles", len(s.bubbles))
	}
}

func TestLevelUpSequence(t *testing.T) {
	s := newStarted()
	s.Handle(sim.LevelUp{Level: 3})

	if text, ok := s.Banner(); !ok || text != "LEVEL 3!" {
		t.Errorf("Banner() = %q, %v", text, ok)
	}
	first, _ := s.Bubble()
	if !contains(celebrateLines, first.Text) {
		t.Errorf("first bubble %q is not a celebration", first.Text)
	}

	s.Advance(1600)
	second, ok := s.Bubble()
	if !ok || !contains(rescueLines, second.Text) {
		t.Errorf("second bubble = %q, %v; expected a rescue line", second.Text, ok)
	}

	s.Advance(500) // 2100 ms: level banner gone, candy hint up
	if text, ok := s.Banner(); !ok || text != "CANDY >>" {
		t.Errorf("Banner() = %q, %v; expected the candy hint", text, ok)
	}

	s.Advance(10000)
	if _, ok := s.Banner(); ok {
		t.Error("banners should expire")
	}
	if len(s.bubbles) != 0 || len(s.banners) != 0 {
		t.Error("expired effects were not pruned")
	}
}

func TestBlinkCycle(t *testing.T) {
	s := newStarted()
	tests := []struct {
		at   float64
		open bool
	}{
		{0, false},
		{199, false},
		{200, true},
		{499, true},
		{500, false},
		{700, true},
		{1999, true},
		{2000, false},
		{2300, true},
	}
	for _, tc := range tests {
		s.now = tc.at
		if got := s.EyesOpen(); got != tc.open {
			t.Errorf("EyesOpen() at %v = %v, expected %v", tc.at, got, tc.open)
		}
	}

	s.Handle(sim.GameEnded{})
	s.now = 100
	if !s.EyesOpen() {
		t.Error("eyes should stay open once the game ended")
	}
}

func TestFlashAndBestBanner(t *testing.T) {
	s := newStarted()
	s.Handle(sim.DamageTaken{Health: 2})
	if !s.Flashing() {
		t.Error("damage should flash")
	}
	s.Advance(flashHold)
	if s.Flashing() {
		t.Error("flash should end")
	}

	s.Handle(sim.NewBestScore{Value: 10})
	s.Handle(sim.NewBestScore{Value: 11})
	if len(s.banners) != 1 {
		t.Errorf("NEW BEST banner shown %d times, expected once per run", len(s.banners))
	}
}

func TestGateHintThrottled(t *testing.T) {
	s := newStarted()
	gated := sim.Frame{State: sim.StateRunning, BonusGated: true}

	s.Observe(gated)
	b, ok := s.Bubble()
	if !ok || b.Text != gateLine {
		t.Fatalf("Bubble() = %+v, %v", b, ok)
	}

	s.Advance(2000)
	s.Observe(gated)
	if len(s.bubbles) != 0 {
		t.Error("hint repeated inside the throttle window")
	}

	s.Advance(1000)
	s.Observe(gated)
	if b, ok := s.Bubble(); !ok || b.Text != gateLine {
		t.Error("hint should repeat after the throttle window")
	}

	s.Advance(5000)
	s.Observe(sim.Frame{State: sim.StateRunning})
	if _, ok := s.Bubble(); ok {
		t.Error("no hint once the gate is open")
	}
}

func contains(lines []string, s string) bool {
	for _, l := range lines {
		if l == s {
			return true
		}
	}
	return false
}
