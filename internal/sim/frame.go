package sim

import "github.com/vovakirdan/bunny-dash/internal/core"

// EntityView is the presentation-facing state of one entity.
type EntityView struct {
	Kind      Kind     `msgpack:"kind"`
	Box       core.Box `msgpack:"box"`
	Value     int      `msgpack:"value,omitempty"`
	Powerup   bool     `msgpack:"powerup,omitempty"`
	Bonus     bool     `msgpack:"bonus,omitempty"` // bonus-yielding block
	Struck    bool     `msgpack:"struck,omitempty"`
	Collected bool     `msgpack:"collected,omitempty"`
	Frame     int      `msgpack:"frame,omitempty"`
}

// PlayerView is the player's pose.
type PlayerView struct {
	Box        core.Box `msgpack:"box"`
	Facing     Facing   `msgpack:"facing"`
	Running    bool     `msgpack:"running"`
	Phase      Phase    `msgpack:"phase"`
	OnPlatform bool     `msgpack:"on_platform"`
	Powerup    bool     `msgpack:"powerup"`
	Scale      float64  `msgpack:"scale"`
}

// Frame is everything a renderer needs for one tick.
type Frame struct {
	State      State        `msgpack:"state"`
	Elapsed    float64      `msgpack:"elapsed"`
	ArenaW     float64      `msgpack:"arena_w"`
	ArenaH     float64      `msgpack:"arena_h"`
	Ground     float64      `msgpack:"ground"`
	Score      int          `msgpack:"score"`
	Level      int          `msgpack:"level"`
	Health     int          `msgpack:"health"`
	MaxHealth  int          `msgpack:"max_health"`
	BonusCount int          `msgpack:"bonus_count"`
	BonusReady bool         `msgpack:"bonus_ready"` // candy collected this level
	BonusGated bool         `msgpack:"bonus_gated"` // score is enough, candy missing
	Best       int          `msgpack:"best"`
	Player     PlayerView   `msgpack:"player"`
	Entities   []EntityView `msgpack:"entities"`
}

// Snapshot captures the current state for presentation.
func (s *Session) Snapshot() Frame {
	p := s.player
	f := Frame{
		State:      s.state,
		Elapsed:    s.elapsed,
		ArenaW:     s.cfg.Arena.Width,
		ArenaH:     s.cfg.Arena.Height,
		Ground:     s.cfg.Player.GroundLevel,
		Score:      s.progress.Score,
		Level:      s.progress.Level,
		Health:     p.Health,
		MaxHealth:  s.cfg.Player.MaxHealth,
		BonusCount: s.progress.BonusCount,
		BonusReady: s.progress.BonusCollected,
		BonusGated: s.progress.ThresholdMet() && !s.progress.BonusCollected,
		Best:       s.progress.Best,
		Player: PlayerView{
			Box:        p.Box(),
			Facing:     p.Facing,
			Running:    p.Running,
			Phase:      p.Phase,
			OnPlatform: p.OnPlatform,
			Powerup:    p.Powerup,
			Scale:      p.Scale,
		},
	}
	v := viewBuilder{views: make([]EntityView, 0, s.registry.Len())}
	for _, e := range s.registry.All() {
		e.Accept(&v)
	}
	f.Entities = v.views
	return f
}

type viewBuilder struct {
	views []EntityView
}

func (v *viewBuilder) add(e Entity) *EntityView {
	v.views = append(v.views, EntityView{Kind: e.Kind(), Box: e.Box()})
	return &v.views[len(v.views)-1]
}

func (v *viewBuilder) VisitHazard(h *Hazard)     { v.add(h) }
func (v *viewBuilder) VisitPlatform(p *Platform) { v.add(p) }

func (v *viewBuilder) VisitPickup(p *Pickup) {
	ev := v.add(p)
	ev.Value = p.Value
	ev.Powerup = p.Powerup
}

func (v *viewBuilder) VisitBlock(b *Block) {
	ev := v.add(b)
	ev.Bonus = b.Variant == BlockBonus
	ev.Struck = b.Struck
}

func (v *viewBuilder) VisitBird(b *Bird) {
	v.add(b).Frame = b.Frame
}

func (v *viewBuilder) VisitCandy(c *Candy) {
	v.add(c).Collected = c.Collected
}
