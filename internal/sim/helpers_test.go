package sim

import (
	"testing"

	"github.com/vovakirdan/bunny-dash/internal/config"
	"github.com/vovakirdan/bunny-dash/internal/core"
)

// quietConfig disables timed spawns and the opening schedule so tests
// control every entity in the arena.
func quietConfig() config.RunnerConfig {
	cfg := config.DefaultRunnerConfig()
	for _, sc := range []*config.SpawnConfig{
		&cfg.Spawns.Hazards,
		&cfg.Spawns.Pickups.SpawnConfig,
		&cfg.Spawns.Platforms,
		&cfg.Spawns.Blocks.SpawnConfig,
		&cfg.Spawns.Birds.SpawnConfig,
		&cfg.Spawns.Candies.SpawnConfig,
	} {
		sc.BaseMS = 1e9
		sc.FloorMS = 1e9
	}
	cfg.Spawns.Candies.LevelUpDelay = 1e9
	cfg.Spawns.Opening = nil
	return cfg
}

// startedSession returns a running session with the start events drained.
func startedSession(t *testing.T, cfg config.RunnerConfig, opts ...Option) *Session {
	t.Helper()
	s := NewSession(cfg, opts...)
	if !s.Start() {
		t.Fatal("Start() from Idle should succeed")
	}
	s.Step(0)
	return s
}

// scriptRand replays fixed values; Intn always returns 0.
type scriptRand struct {
	floats []float64
	i      int
}

func (r *scriptRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[r.i%len(r.floats)]
	r.i++
	return v
}

func (r *scriptRand) Intn(int) int { return 0 }

type fakeStore struct {
	best  int
	saved []int
}

func (f *fakeStore) LoadBest() int { return f.best }

func (f *fakeStore) SaveBest(score int) {
	f.best = score
	f.saved = append(f.saved, score)
}

// onPlayer returns a footprint overlapping the player at the ground.
func onPlayer(w, h float64) body {
	return body{Footprint: core.NewBox(100, 220, w, h)}
}

func findEvent[T Event](events []Event) (T, bool) {
	for _, e := range events {
		if v, ok := e.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func countEvents[T Event](events []Event) int {
	n := 0
	for _, e := range events {
		if _, ok := e.(T); ok {
			n++
		}
	}
	return n
}
