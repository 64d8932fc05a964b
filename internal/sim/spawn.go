package sim

import (
	"math"

	"github.com/vovakirdan/bunny-dash/internal/config"
	"github.com/vovakirdan/bunny-dash/internal/core"
)

// spawnTimer is one category's accumulator/interval pair.
type spawnTimer struct {
	acc      float64
	interval float64
}

// Spawner creates entities when their category timers come due.
type Spawner struct {
	cfg        config.SpawnsConfig
	arenaW     float64
	rng        Rand
	difficulty *config.DifficultyManager
	reg        *Registry
	timers     [kindCount]spawnTimer
}

// NewSpawner creates a spawner feeding reg.
func NewSpawner(cfg config.SpawnsConfig, arenaW float64, rng Rand, diff *config.DifficultyManager, reg *Registry) *Spawner {
	s := &Spawner{
		cfg:        cfg,
		arenaW:     arenaW,
		rng:        rng,
		difficulty: diff,
		reg:        reg,
	}
	s.Reset(1)
	return s
}

func (s *Spawner) spec(k Kind) config.SpawnConfig {
	return s.reg.specs[k]
}

// Reset zeroes every accumulator and sets unjittered intervals for level.
func (s *Spawner) Reset(level int) {
	for _, k := range Kinds {
		s.timers[k] = spawnTimer{interval: s.difficulty.Interval(s.spec(k), level, 0)}
	}
}

// Retune recomputes every interval for a new level without touching the
// accumulators.
func (s *Spawner) Retune(level int) {
	for _, k := range Kinds {
		s.timers[k].interval = s.difficulty.Interval(s.spec(k), level, 0)
	}
}

// Prime restarts a category's timer so it fires after delayMS.
func (s *Spawner) Prime(k Kind, delayMS float64) {
	s.timers[k] = spawnTimer{interval: delayMS}
}

// Interval returns the current interval of a category.
func (s *Spawner) Interval(k Kind) float64 {
	return s.timers[k].interval
}

// Advance accrues dtMS on every timer and spawns each category that came
// due. The accumulator resets even when the category is at its cap, so a
// full population simply skips one slot. Candies only spawn while
// wantCandy is set.
func (s *Spawner) Advance(dtMS float64, level int, wantCandy bool) {
	for _, k := range Kinds {
		t := &s.timers[k]
		t.acc += dtMS
		if t.acc <= t.interval {
			continue
		}
		t.acc = 0
		sc := s.spec(k)
		t.interval = s.difficulty.Interval(sc, level, jitter(s.rng, sc.JitterMS))
		if k == KindCandy && !wantCandy {
			continue
		}
		s.Spawn(k, level)
	}
}

// Spawn creates one entity of kind k. It returns false when the category
// is at its cap; no randomness is consumed in that case.
func (s *Spawner) Spawn(k Kind, level int) bool {
	if s.reg.Full(k) {
		return false
	}
	var e Entity
	switch k {
	case KindHazard:
		e = s.newHazard()
	case KindPickup:
		e = s.newPickup(level)
	case KindPlatform:
		e = &Platform{body: body{Footprint: s.place(s.spec(k))}}
	case KindBlock:
		e = s.newBlock()
	case KindBird:
		e = &Bird{body: body{Footprint: s.place(s.spec(k))}}
	case KindCandy:
		e = &Candy{body: body{Footprint: s.place(s.spec(k))}}
	default:
		return false
	}
	return s.reg.Add(e)
}

// place draws a footprint from a category's size and height ranges and
// puts it just past the leading edge. A zero MaxHeight makes it square.
func (s *Spawner) place(sc config.SpawnConfig) core.Box {
	w := between(s.rng, sc.MinWidth, sc.MaxWidth)
	h := w
	if sc.MaxHeight > 0 {
		h = between(s.rng, sc.MinHeight, sc.MaxHeight)
	}
	y := between(s.rng, sc.MinY, sc.MaxY)
	return core.NewBox(s.arenaW+sc.EnterOffset, y, w, h)
}

func (s *Spawner) newHazard() *Hazard {
	return &Hazard{body: body{Footprint: s.place(s.cfg.Hazards)}}
}

func (s *Spawner) newBlock() *Block {
	b := &Block{body: body{Footprint: s.place(s.cfg.Blocks.SpawnConfig)}}
	if chance(s.rng, s.cfg.Blocks.BonusChance) {
		b.Variant = BlockBonus
	}
	return b
}

// newPickup rolls a height tier, lifts it with the level and prices it
// by how hard it is to reach.
func (s *Spawner) newPickup(level int) *Pickup {
	pc := s.cfg.Pickups
	tier := s.rollTier()

	w := between(s.rng, pc.MinWidth, pc.MaxWidth)
	h := w
	if pc.MaxHeight > 0 {
		h = between(s.rng, pc.MinHeight, pc.MaxHeight)
	}
	y := between(s.rng, tier.MinY, tier.MaxY)
	if level > 1 {
		lift := math.Min(float64(level)*pc.LevelLiftPerLevel, pc.LevelLiftMax)
		if lift >= 1 {
			y += float64(s.rng.Intn(int(lift)))
		}
	}
	x := s.arenaW + pc.EnterOffset
	if pc.EnterJitter >= 1 {
		x += float64(s.rng.Intn(int(pc.EnterJitter)))
	}

	value := pc.LowValue
	if y > pc.HighValueAbove {
		value = pc.HighValue
	}
	return &Pickup{
		body:  body{Footprint: core.NewBox(x, y, w, h)},
		Value: value,
		Tier:  tier.Name,
	}
}

func (s *Spawner) rollTier() config.PickupTier {
	tiers := s.cfg.Pickups.Tiers
	total := 0
	for _, t := range tiers {
		total += t.Weight
	}
	if total <= 0 {
		return config.PickupTier{Name: "low", MinY: s.cfg.Pickups.MinY, MaxY: s.cfg.Pickups.MaxY}
	}
	roll := s.rng.Intn(total)
	for _, t := range tiers {
		if roll < t.Weight {
			return t
		}
		roll -= t.Weight
	}
	return tiers[len(tiers)-1]
}

// SpawnPowerup places a powerup pickup at (x, y), respecting the pickup cap.
func (s *Spawner) SpawnPowerup(x, y float64) bool {
	pc := s.cfg.Pickups
	return s.reg.Add(&Pickup{
		body:    body{Footprint: core.NewBox(x, y, pc.MaxWidth, math.Max(pc.MaxHeight, pc.MaxWidth))},
		Value:   pc.LowValue,
		Tier:    "block",
		Powerup: true,
	})
}
