package sim

import "github.com/vovakirdan/bunny-dash/internal/config"

// population is one bounded entity collection.
type population[T Entity] struct {
	items []T
	limit int
}

func newPopulation[T Entity](limit int) population[T] {
	return population[T]{items: make([]T, 0, max(limit, 0)), limit: limit}
}

func (p *population[T]) full() bool { return len(p.items) >= p.limit }

// add appends e unless the population is at capacity.
func (p *population[T]) add(e T) bool {
	if p.full() {
		return false
	}
	p.items = append(p.items, e)
	return true
}

// sweep drops entities marked removed, keeping order.
func (p *population[T]) sweep() {
	kept := p.items[:0]
	for _, e := range p.items {
		if !e.base().removed {
			kept = append(kept, e)
		}
	}
	var zero T
	for i := len(kept); i < len(p.items); i++ {
		p.items[i] = zero
	}
	p.items = kept
}

func (p *population[T]) reset() {
	p.items = p.items[:0]
}

func (p *population[T]) appendTo(dst []Entity) []Entity {
	for _, e := range p.items {
		dst = append(dst, e)
	}
	return dst
}

// Registry owns the six bounded entity populations.
type Registry struct {
	hazards   population[*Hazard]
	pickups   population[*Pickup]
	platforms population[*Platform]
	blocks    population[*Block]
	birds     population[*Bird]
	candies   population[*Candy]

	specs  [kindCount]config.SpawnConfig
	arenaW float64
}

// NewRegistry creates empty populations with the caps from cfg.
func NewRegistry(cfg config.SpawnsConfig, arenaW float64) *Registry {
	r := &Registry{arenaW: arenaW}
	r.specs = [kindCount]config.SpawnConfig{
		KindHazard:   cfg.Hazards,
		KindPickup:   cfg.Pickups.SpawnConfig,
		KindPlatform: cfg.Platforms,
		KindBlock:    cfg.Blocks.SpawnConfig,
		KindBird:     cfg.Birds.SpawnConfig,
		KindCandy:    cfg.Candies.SpawnConfig,
	}
	r.hazards = newPopulation[*Hazard](cfg.Hazards.Cap)
	r.pickups = newPopulation[*Pickup](cfg.Pickups.Cap)
	r.platforms = newPopulation[*Platform](cfg.Platforms.Cap)
	r.blocks = newPopulation[*Block](cfg.Blocks.Cap)
	r.birds = newPopulation[*Bird](cfg.Birds.Cap)
	r.candies = newPopulation[*Candy](cfg.Candies.Cap)
	return r
}

// Hazards returns the live hazards. The slice is owned by the registry.
func (r *Registry) Hazards() []*Hazard { return r.hazards.items }

// Pickups returns the live pickups.
func (r *Registry) Pickups() []*Pickup { return r.pickups.items }

// Platforms returns the live platforms.
func (r *Registry) Platforms() []*Platform { return r.platforms.items }

// Blocks returns the live blocks.
func (r *Registry) Blocks() []*Block { return r.blocks.items }

// Birds returns the live birds.
func (r *Registry) Birds() []*Bird { return r.birds.items }

// Candies returns the live candies.
func (r *Registry) Candies() []*Candy { return r.candies.items }

// Count returns the number of live entities of a category.
func (r *Registry) Count(k Kind) int {
	switch k {
	case KindHazard:
		return len(r.hazards.items)
	case KindPickup:
		return len(r.pickups.items)
	case KindPlatform:
		return len(r.platforms.items)
	case KindBlock:
		return len(r.blocks.items)
	case KindBird:
		return len(r.birds.items)
	case KindCandy:
		return len(r.candies.items)
	}
	return 0
}

// Cap returns the population limit of a category.
func (r *Registry) Cap(k Kind) int {
	if k < 0 || k >= kindCount {
		return 0
	}
	return r.specs[k].Cap
}

// Full reports whether a category is at its cap.
func (r *Registry) Full(k Kind) bool {
	return r.Count(k) >= r.Cap(k)
}

// Len returns the total number of live entities.
func (r *Registry) Len() int {
	n := 0
	for _, k := range Kinds {
		n += r.Count(k)
	}
	return n
}

// All returns every live entity in a fresh slice: damage sources first,
// then collectibles, blocks and platforms.
func (r *Registry) All() []Entity {
	out := make([]Entity, 0, r.Len())
	out = r.hazards.appendTo(out)
	out = r.birds.appendTo(out)
	out = r.pickups.appendTo(out)
	out = r.candies.appendTo(out)
	out = r.blocks.appendTo(out)
	out = r.platforms.appendTo(out)
	return out
}

// Add inserts e into its population. At capacity it is a silent no-op
// and Add returns false.
func (r *Registry) Add(e Entity) bool {
	a := adder{r: r}
	e.Accept(&a)
	return a.ok
}

type adder struct {
	r  *Registry
	ok bool
}

func (a *adder) VisitHazard(h *Hazard)     { a.ok = a.r.hazards.add(h) }
func (a *adder) VisitPickup(p *Pickup)     { a.ok = a.r.pickups.add(p) }
func (a *adder) VisitPlatform(p *Platform) { a.ok = a.r.platforms.add(p) }
func (a *adder) VisitBlock(b *Block)       { a.ok = a.r.blocks.add(b) }
func (a *adder) VisitBird(b *Bird)         { a.ok = a.r.birds.add(b) }
func (a *adder) VisitCandy(c *Candy)       { a.ok = a.r.candies.add(c) }

// Advance moves every entity left by speed (px/s) over dtMS, advances
// bird flap frames and culls whatever crossed the trailing edge.
func (r *Registry) Advance(dtMS, speed, flapMS float64) {
	dx := speed * dtMS / 1000
	for _, e := range r.All() {
		b := e.base()
		b.Footprint.X -= dx
		if b.Footprint.Right() < -r.specs[e.Kind()].CullMargin {
			b.removed = true
		}
	}
	if flapMS > 0 {
		for _, bird := range r.birds.items {
			bird.flapAcc += dtMS
			for bird.flapAcc >= flapMS {
				bird.flapAcc -= flapMS
				bird.Frame = (bird.Frame + 1) % 2
			}
		}
	}
	r.Sweep()
}

// Sweep drops every entity marked removed.
func (r *Registry) Sweep() {
	r.hazards.sweep()
	r.pickups.sweep()
	r.platforms.sweep()
	r.blocks.sweep()
	r.birds.sweep()
	r.candies.sweep()
}

// Reset empties every population.
func (r *Registry) Reset() {
	r.hazards.reset()
	r.pickups.reset()
	r.platforms.reset()
	r.blocks.reset()
	r.birds.reset()
	r.candies.reset()
}

// Remove marks e for removal at the next sweep.
func Remove(e Entity) {
	e.base().removed = true
}
