package sim

import (
	"testing"

	"github.com/vovakirdan/bunny-dash/internal/config"
)

func TestPhaseTransitionTable(t *testing.T) {
	tests := []struct {
		from, to Phase
		legal    bool
	}{
		{PhaseGrounded, PhaseAirborne, true},
		{PhaseGrounded, PhaseFalling, true},
		{PhaseGrounded, PhaseReelevated, false},
		{PhaseAirborne, PhaseReelevated, true},
		{PhaseAirborne, PhaseGrounded, true},
		{PhaseAirborne, PhaseFalling, false},
		{PhaseReelevated, PhaseReelevated, true},
		{PhaseReelevated, PhaseGrounded, true},
		{PhaseReelevated, PhaseAirborne, false},
		{PhaseFalling, PhaseGrounded, true},
		{PhaseFalling, PhaseAirborne, false},
		{PhaseFalling, PhaseReelevated, false},
	}
	for _, tc := range tests {
		if got := CanTransition(tc.from, tc.to); got != tc.legal {
			t.Errorf("CanTransition(%s, %s) = %v, expected %v", tc.from, tc.to, got, tc.legal)
		}
	}
}

func TestPhysicsJump(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	ph := NewPhysics(cfg)

	t.Run("ground jump uses the lower velocity", func(t *testing.T) {
		p := newPlayer(cfg.Player)
		ok, double := ph.Jump(&p)
		if !ok || double {
			t.Fatalf("Jump() = %v, %v; expected accepted single jump", ok, double)
		}
		if p.Phase != PhaseAirborne || p.VY != 12 {
			t.Errorf("phase=%s vy=%v, expected airborne with 12", p.Phase, p.VY)
		}
	})

	t.Run("re-trigger keeps height", func(t *testing.T) {
		p := newPlayer(cfg.Player)
		ph.Jump(&p)
		for i := 0; i < 5; i++ {
			ph.Step(&p)
		}
		y := p.Y
		ok, double := ph.Jump(&p)
		if !ok || !double {
			t.Fatalf("mid-air Jump() = %v, %v; expected accepted double jump", ok, double)
		}
		if p.Phase != PhaseReelevated || p.VY != 14 || p.Y != y {
			t.Errorf("phase=%s vy=%v y=%v, expected reelevated with 14 at %v", p.Phase, p.VY, p.Y, y)
		}
		// A third press re-triggers again
		if ok, _ := ph.Jump(&p); !ok || p.Phase != PhaseReelevated {
			t.Error("re-trigger from Reelevated should be accepted")
		}
	})

	t.Run("falling refuses", func(t *testing.T) {
		p := newPlayer(cfg.Player)
		p.Y = 300
		ph.StartFall(&p)
		if ok, _ := ph.Jump(&p); ok {
			t.Error("Jump() while falling should be refused")
		}
		if p.Phase != PhaseFalling {
			t.Errorf("phase = %s, expected falling", p.Phase)
		}
	})
}

func TestPhysicsIntegration(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	ph := NewPhysics(cfg)
	p := newPlayer(cfg.Player)
	ph.Jump(&p)

	ph.Step(&p)
	if p.VY != 11.5 || p.Y != 231.5 {
		t.Errorf("after one tick vy=%v y=%v, expected 11.5 and 231.5", p.VY, p.Y)
	}

	peak := p.Y
	for i := 0; i < 200 && p.Phase != PhaseGrounded; i++ {
		ph.Step(&p)
		if p.Y > peak {
			peak = p.Y
		}
	}
	if p.Phase != PhaseGrounded || p.Y != cfg.Player.GroundLevel || p.VY != 0 {
		t.Errorf("landing: phase=%s y=%v vy=%v", p.Phase, p.Y, p.VY)
	}
	if peak < 350 || peak > 380 {
		t.Errorf("peak = %v, expected 358", peak)
	}
}

func TestPhysicsCeiling(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Arena.Height = 320
	ph := NewPhysics(cfg)
	p := newPlayer(cfg.Player)
	ph.Jump(&p)

	for i := 0; i < 40; i++ {
		ph.Step(&p)
		if top := p.Box().Top(); top > cfg.Arena.Height {
			t.Fatalf("tick %d: player top %v above ceiling %v", i, top, cfg.Arena.Height)
		}
	}
}

func TestPhysicsFallToFloor(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	ph := NewPhysics(cfg)
	p := newPlayer(cfg.Player)
	p.Y = 242
	ph.StartFall(&p)

	ticks := 0
	for p.Phase == PhaseFalling && ticks < 100 {
		ph.Step(&p)
		ticks++
	}
	if p.Phase != PhaseGrounded || p.Y != cfg.Collision.FallFloor {
		t.Errorf("phase=%s y=%v, expected grounded at %v", p.Phase, p.Y, cfg.Collision.FallFloor)
	}
	if ticks != 5 {
		t.Errorf("fall took %d ticks, expected 5", ticks)
	}
}
