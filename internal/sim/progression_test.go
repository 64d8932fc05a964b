package sim

import (
	"testing"

	"github.com/vovakirdan/bunny-dash/internal/config"
)

func newTestProgression() (*Progression, *[]Event) {
	var events []Event
	p := NewProgression(config.DefaultRunnerConfig().Scoring, func(e Event) { events = append(events, e) })
	return p, &events
}

func TestAddScoreIgnoresNonPositive(t *testing.T) {
	p, events := newTestProgression()
	p.AddScore(0)
	p.AddScore(-5)
	if p.Score != 0 || len(*events) != 0 {
		t.Errorf("score=%d events=%d, expected untouched", p.Score, len(*events))
	}

	p.AddScore(10)
	p.AddScore(5)
	if p.Score != 15 || countEvents[NewBestScore](*events) != 2 {
		t.Errorf("score=%d new-best events=%d", p.Score, countEvents[NewBestScore](*events))
	}
}

func TestAccrueTimeCarriesFractions(t *testing.T) {
	tests := []struct {
		name     string
		level    int
		ticks    int
		dt       float64
		expected int
	}{
		// 16 ms * 0.01 * 1.5 = 0.24 per tick
		{"level 1 at 60 fps", 1, 100, 16, 24},
		// 16 ms * 0.01 * 2.0 = 0.32 per tick
		{"level 2 at 60 fps", 2, 100, 16, 32},
		{"single long frame", 1, 1, 100, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, _ := newTestProgression()
			p.Level = tc.level
			for i := 0; i < tc.ticks; i++ {
				p.AccrueTime(tc.dt)
			}
			if p.Score != tc.expected {
				t.Errorf("score = %d, expected %d", p.Score, tc.expected)
			}
		})
	}
}

func TestCheckLevelUpGate(t *testing.T) {
	tests := []struct {
		name  string
		score int
		bonus bool
		up    bool
	}{
		{"below threshold, no bonus", 50, false, false},
		{"below threshold, bonus", 99, true, false},
		{"threshold, no bonus", 100, false, false},
		{"threshold and bonus", 100, true, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, events := newTestProgression()
			p.Score = tc.score
			p.BonusCollected = tc.bonus
			if got := p.CheckLevelUp(); got != tc.up {
				t.Fatalf("CheckLevelUp() = %v, expected %v", got, tc.up)
			}
			if !tc.up {
				if p.Level != 1 || p.BonusCollected != tc.bonus {
					t.Error("a refused level-up must not change state")
				}
				return
			}
			if p.Level != 2 || p.Baseline != tc.score || p.Delta != 200 || p.BonusCollected {
				t.Errorf("after level-up: level=%d baseline=%d delta=%d bonus=%v", p.Level, p.Baseline, p.Delta, p.BonusCollected)
			}
			if up, ok := findEvent[LevelUp](*events); !ok || up.Level != 2 {
				t.Errorf("LevelUp event = %+v, %v", up, ok)
			}
		})
	}
}
