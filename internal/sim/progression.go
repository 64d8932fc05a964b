package sim

import "github.com/vovakirdan/bunny-dash/internal/config"

// Progression tracks score, level and the per-level bonus gate.
type Progression struct {
	Score          int
	Level          int
	Baseline       int // score when the current level began
	Delta          int // score needed above Baseline for the next level
	BonusCollected bool
	BonusCount     int
	Best           int

	carry float64 // time score not yet awarded
	cfg   config.ScoringConfig
	emit  func(Event)
}

// NewProgression creates a tracker that reports events through emit.
func NewProgression(cfg config.ScoringConfig, emit func(Event)) *Progression {
	p := &Progression{cfg: cfg, emit: emit}
	p.Reset(0)
	return p
}

// Reset starts a new run at level 1 with the given best score.
func (p *Progression) Reset(best int) {
	p.Score = 0
	p.Level = 1
	p.Baseline = 0
	p.Delta = p.cfg.LevelDelta
	p.BonusCollected = false
	p.BonusCount = 0
	p.Best = best
	p.carry = 0
}

// AddScore adds n points. Non-positive n is ignored so the score never
// decreases. Passing the best score raises it and emits NewBestScore.
func (p *Progression) AddScore(n int) {
	if n <= 0 {
		return
	}
	p.Score += n
	if p.Score > p.Best {
		p.Best = p.Score
		p.emit(NewBestScore{Value: p.Best})
	}
}

// AccrueTime awards survival score for dtMS, scaled by level. Fractions
// carry over to later ticks.
func (p *Progression) AccrueTime(dtMS float64) {
	p.carry += dtMS * p.cfg.TimeRate * (1 + float64(p.Level)*p.cfg.TimeLevelFactor)
	whole := int(p.carry + 1e-9) // absorb float drift from repeated sums
	p.carry -= float64(whole)
	p.AddScore(whole)
}

// CollectBonus records the level's candy.
func (p *Progression) CollectBonus() {
	p.BonusCollected = true
	p.BonusCount++
	p.emit(BonusCollected{Count: p.BonusCount})
	p.AddScore(p.cfg.BonusScore)
}

// ThresholdMet reports whether the score alone would allow a level-up.
func (p *Progression) ThresholdMet() bool {
	return p.Score >= p.Baseline+p.Delta
}

// CheckLevelUp advances the level when both the score threshold and the
// bonus gate hold. Otherwise it does nothing and is retried next tick.
func (p *Progression) CheckLevelUp() bool {
	if !p.ThresholdMet() || !p.BonusCollected {
		return false
	}
	p.Level++
	p.Baseline = p.Score
	p.Delta = p.cfg.LevelDelta * p.Level
	p.BonusCollected = false
	p.emit(LevelUp{Level: p.Level})
	return true
}
