package config

import "math"

// DifficultyManager computes level-dependent game parameters.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// Speed returns the horizontal entity speed in pixels per second.
func (d *DifficultyManager) Speed(level int) float64 {
	return d.cfg.BaseSpeed + float64(level)*d.cfg.SpeedPerLevel
}

// Interval returns the spawn interval for a category at the given level,
// with jitter added before clamping to the category floor.
func (d *DifficultyManager) Interval(sc SpawnConfig, level int, jitter float64) float64 {
	return math.Max(sc.FloorMS, sc.BaseMS-float64(level)*sc.StepMS+jitter)
}

// FlapInterval returns the bird animation period at the given level.
func (d *DifficultyManager) FlapInterval(bc BirdConfig, level int) float64 {
	return math.Max(bc.FlapFloorMS, bc.FlapMS-float64(level)*bc.FlapStepMS)
}
