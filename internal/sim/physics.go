package sim

import (
	"github.com/vovakirdan/bunny-dash/internal/config"
	"github.com/vovakirdan/bunny-dash/internal/core"
)

// Phase is the player's vertical motion state.
type Phase int

const (
	PhaseGrounded Phase = iota
	PhaseAirborne
	PhaseReelevated // mid-air re-jump
	PhaseFalling
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseGrounded:
		return "grounded"
	case PhaseAirborne:
		return "airborne"
	case PhaseReelevated:
		return "reelevated"
	case PhaseFalling:
		return "falling"
	default:
		return "unknown"
	}
}

// Airborne reports whether the phase is part of a jump trajectory.
func (p Phase) Airborne() bool {
	return p == PhaseAirborne || p == PhaseReelevated
}

// transitions lists every legal phase edge.
var transitions = map[Phase][]Phase{
	PhaseGrounded:   {PhaseAirborne, PhaseFalling},
	PhaseAirborne:   {PhaseReelevated, PhaseGrounded},
	PhaseReelevated: {PhaseReelevated, PhaseGrounded},
	PhaseFalling:    {PhaseGrounded},
}

// CanTransition reports whether from -> to is a legal edge.
func CanTransition(from, to Phase) bool {
	for _, p := range transitions[from] {
		if p == to {
			return true
		}
	}
	return false
}

// Facing is the player's horizontal direction.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// Player is the player's pose and vitals. Y is the bottom of its box.
type Player struct {
	X, Y       float64
	VY         float64
	W, H       float64
	Facing     Facing
	Running    bool
	Phase      Phase
	OnPlatform bool
	Health     int
	Powerup    bool
	Scale      float64
}

// newPlayer returns the starting pose.
func newPlayer(cfg config.PlayerConfig) Player {
	return Player{
		X:       cfg.X,
		Y:       cfg.GroundLevel,
		W:       cfg.Width,
		H:       cfg.Height,
		Facing:  FacingRight,
		Running: true,
		Phase:   PhaseGrounded,
		Health:  cfg.MaxHealth,
		Scale:   1,
	}
}

// Box returns the player's footprint with the current scale applied.
func (p *Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W*p.Scale, p.H*p.Scale)
}

// Physics integrates the player's vertical motion.
type Physics struct {
	cfg       config.PhysicsConfig
	ground    float64
	arenaH    float64
	fallStep  float64
	fallFloor float64
}

// NewPhysics creates a controller for the given arena.
func NewPhysics(cfg config.RunnerConfig) *Physics {
	return &Physics{
		cfg:       cfg.Physics,
		ground:    cfg.Player.GroundLevel,
		arenaH:    cfg.Arena.Height,
		fallStep:  cfg.Collision.FallStep,
		fallFloor: cfg.Collision.FallFloor,
	}
}

// transition moves p to phase to if the edge exists. Staying in place is
// allowed and leaves the phase untouched.
func (ph *Physics) transition(p *Player, to Phase) bool {
	if p.Phase == to && to != PhaseReelevated {
		return true
	}
	if !CanTransition(p.Phase, to) {
		return false
	}
	p.Phase = to
	return true
}

// Jump starts a jump from the ground or re-triggers one in mid-air. The
// re-trigger keeps Y and replaces the velocity with the stronger one.
// Falling players cannot jump.
func (ph *Physics) Jump(p *Player) (accepted, double bool) {
	switch p.Phase {
	case PhaseGrounded:
		ph.transition(p, PhaseAirborne)
		p.VY = ph.cfg.JumpVelocity
		p.OnPlatform = false
		return true, false
	case PhaseAirborne, PhaseReelevated:
		ph.transition(p, PhaseReelevated)
		p.VY = ph.cfg.DoubleJumpVelocity
		return true, true
	default:
		return false, false
	}
}

// Step integrates one tick.
func (ph *Physics) Step(p *Player) {
	switch {
	case p.Phase.Airborne():
		p.VY -= ph.cfg.Gravity
		p.Y += p.VY
		if ceiling := ph.arenaH - p.Box().H; p.Y > ceiling {
			p.Y = ceiling
			p.VY = 0
		}
		if p.Y <= ph.ground {
			ph.Land(p, ph.ground)
		}
	case p.Phase == PhaseFalling:
		p.Y -= ph.fallStep
		if p.Y <= ph.fallFloor {
			p.Y = ph.fallFloor
			ph.transition(p, PhaseGrounded)
		}
	}
}

// Land rests the player at height y.
func (ph *Physics) Land(p *Player, y float64) {
	if !ph.transition(p, PhaseGrounded) {
		return
	}
	p.Y = y
	p.VY = 0
	p.OnPlatform = y > ph.ground
}

// StartFall drops a grounded player whose platform went away.
func (ph *Physics) StartFall(p *Player) {
	if !ph.transition(p, PhaseFalling) {
		return
	}
	p.VY = 0
	p.OnPlatform = false
}
