package sim

import (
	"math"

	"github.com/vovakirdan/bunny-dash/internal/config"
	"github.com/vovakirdan/bunny-dash/internal/core"
)

// resolver runs one tick of collision resolution. It visits every live
// entity; each category applies its own contact test.
type resolver struct {
	s     *Session
	cfg   config.CollisionConfig
	pbox  core.Box
	prevY float64 // player bottom before this tick's physics step
	ended bool

	supports []*Platform
}

// resolveCollisions handles every contact for this tick and sweeps the
// removed entities. It reports whether the session ended.
func (s *Session) resolveCollisions(prevY float64) bool {
	r := &resolver{
		s:     s,
		cfg:   s.cfg.Collision,
		pbox:  s.player.Box(),
		prevY: prevY,
	}
	for _, e := range s.registry.All() {
		if e.base().removed {
			continue
		}
		e.Accept(r)
		if r.ended {
			break
		}
	}
	s.registry.Sweep()
	if r.ended {
		return true
	}
	r.resolvePlatforms()
	return false
}

func (r *resolver) touches(e Entity) bool {
	return core.Overlaps(r.pbox, e.Box(), r.cfg.Margin)
}

func (r *resolver) VisitHazard(h *Hazard) {
	if r.touches(h) {
		r.damage(h)
	}
}

func (r *resolver) VisitBird(b *Bird) {
	if r.touches(b) {
		r.damage(b)
	}
}

// damage removes the source and costs one health, or the powerup if the
// player has one. Health zero ends the session on the spot.
func (r *resolver) damage(e Entity) {
	Remove(e)
	p := &r.s.player
	if p.Powerup {
		p.Powerup = false
		p.Scale = 1
		r.pbox = p.Box()
		r.s.emit(DamageTaken{Health: p.Health, ShieldUsed: true})
		return
	}
	if p.Health > 0 {
		p.Health--
	}
	r.s.emit(DamageTaken{Health: p.Health})
	if p.Health == 0 {
		r.s.end()
		r.ended = true
	}
}

func (r *resolver) VisitPickup(pk *Pickup) {
	if !r.touches(pk) {
		return
	}
	Remove(pk)
	r.s.emit(ItemCollected{Value: pk.Value, Powerup: pk.Powerup})
	r.s.progress.AddScore(pk.Value)
	if pk.Powerup {
		p := &r.s.player
		p.Powerup = true
		p.Scale = r.s.cfg.Player.PowerupScale
		r.pbox = p.Box()
	}
}

func (r *resolver) VisitCandy(c *Candy) {
	if c.Collected || !r.touches(c) {
		return
	}
	c.Collected = true
	Remove(c)
	r.s.progress.CollectBonus()
}

// VisitBlock handles a strike from below: the player must be ascending
// with its top edge inside the block's vertical span.
func (r *resolver) VisitBlock(b *Block) {
	p := &r.s.player
	if !p.Phase.Airborne() || p.VY <= 0 {
		return
	}
	bb := b.Box()
	top := r.pbox.Top()
	if !r.pbox.SpanOverlaps(bb) || top <= bb.Y || top > bb.Top() {
		return
	}

	yielded := false
	if b.Variant == BlockBonus && !b.Struck {
		b.Struck = true
		yielded = true
		sc := r.s.cfg.Scoring
		if !chance(r.s.rng, sc.BlockPowerupChance) || !r.s.spawner.SpawnPowerup(bb.X, bb.Top()+sc.PowerupLift) {
			r.s.progress.AddScore(sc.BlockScore)
		}
	}

	p.Y = math.Max(p.Y-r.cfg.BlockKnockback, r.s.cfg.Player.GroundLevel)
	p.VY = 0
	r.pbox = p.Box()
	r.s.emit(BlockStruck{YieldedBonus: yielded})
}

// VisitPlatform collects platforms under the player; support is decided
// once every entity has been seen.
func (r *resolver) VisitPlatform(pl *Platform) {
	if r.pbox.SpanOverlaps(pl.Box()) {
		r.supports = append(r.supports, pl)
	}
}

// resolvePlatforms keeps a standing player on a platform, drops it when
// the platform moved away and catches a descending jump on a platform top.
func (r *resolver) resolvePlatforms() {
	p := &r.s.player
	ph := r.s.physics
	tol := r.cfg.PlatformSnapTolerance

	switch {
	case p.Phase == PhaseGrounded || p.Phase == PhaseFalling:
		if p.Y <= r.cfg.PlatformCheckMinHeight {
			return
		}
		for _, pl := range r.supports {
			if top := pl.Box().Top(); math.Abs(top-p.Y) <= tol {
				ph.Land(p, top)
				return
			}
		}
		ph.StartFall(p)
	case p.Phase.Airborne() && p.VY < 0:
		for _, pl := range r.supports {
			top := pl.Box().Top()
			if r.prevY >= top && p.Y <= top+tol {
				ph.Land(p, top)
				return
			}
		}
	}
}
