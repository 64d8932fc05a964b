// Package sim implements the side-scrolling runner simulation: entity
// populations and spawning, the jump state machine, collision resolution
// and the score/level progression with its bonus gate.
//
// A Session is single-threaded and owned by one caller. Nothing in this
// package renders, plays sound or touches storage directly; those concerns
// consume Frames and Events, and persist the best score via BestScoreStore.
package sim

import (
	"math"

	"github.com/vovakirdan/bunny-dash/internal/config"
)

// State is the session lifecycle state. The edges are Idle -> Running
// (Start), Running -> Ended (health reaches zero), Ended -> Running
// (Restart, passing through Idle) and Running -> Idle (Stop, when the
// player quits mid-run).
type State int

const (
	StateIdle State = iota
	StateRunning
	StateEnded
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Direction is a horizontal movement command.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
)

// BestScoreStore persists the single best score.
type BestScoreStore interface {
	LoadBest() int
	SaveBest(score int)
}

// TickResult is the outcome of one Step.
type TickResult struct {
	State   State
	Elapsed float64 // ms since the run started
	Delta   float64 // clamped frame time of this call; the run only advanced by it while running
	Events  []Event // everything raised since the previous Step
}

// Option configures a Session.
type Option func(*Session)

// WithRand sets the randomness source.
func WithRand(r Rand) Option {
	return func(s *Session) { s.rng = r }
}

// WithSeed seeds a math/rand source.
func WithSeed(seed int64) Option {
	return func(s *Session) { s.rng = NewRand(seed) }
}

// WithClock sets the clock read by Tick.
func WithClock(c Clock) Option {
	return func(s *Session) { s.clock = c }
}

// WithStore sets the best score store.
func WithStore(st BestScoreStore) Option {
	return func(s *Session) { s.store = st }
}

// Session owns all simulation state for one player.
type Session struct {
	cfg        config.RunnerConfig
	rng        Rand
	clock      Clock
	timer      *FrameTimer
	store      BestScoreStore
	difficulty *config.DifficultyManager

	registry *Registry
	spawner  *Spawner
	physics  *Physics
	progress *Progression
	player   Player

	state      State
	elapsed    float64
	speed      float64
	lastJump   float64
	opening    []config.OpeningSpawn
	openingIdx int
	storedBest int
	events     []Event
}

// NewSession creates an idle session.
func NewSession(cfg config.RunnerConfig, opts ...Option) *Session {
	s := &Session{cfg: cfg}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = NewRand(1)
	}
	if s.clock == nil {
		s.clock = SystemClock{}
	}
	s.timer = NewFrameTimer(s.clock, cfg.Physics.MaxFrameMS)
	s.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	s.registry = NewRegistry(cfg.Spawns, cfg.Arena.Width)
	s.spawner = NewSpawner(cfg.Spawns, cfg.Arena.Width, s.rng, s.difficulty, s.registry)
	s.physics = NewPhysics(cfg)
	s.progress = NewProgression(cfg.Scoring, s.emit)
	s.player = newPlayer(cfg.Player)
	s.opening = cfg.Spawns.Opening
	s.speed = s.difficulty.Speed(1)
	return s
}

func (s *Session) emit(e Event) {
	s.events = append(s.events, e)
}

// State returns the lifecycle state.
func (s *Session) State() State { return s.state }

// Player returns a copy of the player state.
func (s *Session) Player() Player { return s.player }

// Progress returns the progression tracker. Callers must not mutate it.
func (s *Session) Progress() *Progression { return s.progress }

// Registry returns the entity registry. Callers must not mutate it.
func (s *Session) Registry() *Registry { return s.registry }

// Speed returns the current entity speed in px/s.
func (s *Session) Speed() float64 { return s.speed }

// Config returns the configuration the session runs with.
func (s *Session) Config() config.RunnerConfig { return s.cfg }

// Start begins a run from Idle. It returns false in any other state.
func (s *Session) Start() bool {
	if s.state != StateIdle {
		return false
	}
	s.reset()
	s.state = StateRunning
	s.emit(GameStarted{})
	return true
}

// Restart returns an ended session to Idle and starts a fresh run.
func (s *Session) Restart() bool {
	if s.state != StateEnded {
		return false
	}
	s.state = StateIdle
	return s.Start()
}

// Stop abandons a running session, saving the best score without
// raising GameEnded.
func (s *Session) Stop() {
	if s.state != StateRunning {
		return
	}
	s.flushBest()
	s.state = StateIdle
}

func (s *Session) reset() {
	best := 0
	if s.store != nil {
		best = s.store.LoadBest()
	}
	s.storedBest = best
	s.progress.Reset(best)
	s.player = newPlayer(s.cfg.Player)
	s.registry.Reset()
	s.spawner.Reset(1)
	s.speed = s.difficulty.Speed(1)
	s.elapsed = 0
	s.openingIdx = 0
	s.lastJump = math.Inf(-1)
	s.events = s.events[:0]
	s.timer.Reset()
}

func (s *Session) end() {
	s.state = StateEnded
	s.emit(GameEnded{
		Score: s.progress.Score,
		Level: s.progress.Level,
		Bonus: s.progress.BonusCount,
	})
	s.flushBest()
}

func (s *Session) flushBest() {
	if s.store == nil || s.progress.Best <= s.storedBest {
		return
	}
	s.store.SaveBest(s.progress.Best)
	s.storedBest = s.progress.Best
}

// Jump issues a jump command. Commands while not running, while falling
// or within the cooldown of the previous accepted jump are ignored.
func (s *Session) Jump() bool {
	if s.state != StateRunning {
		return false
	}
	if s.elapsed-s.lastJump < s.cfg.Physics.JumpCooldownMS {
		return false
	}
	ok, double := s.physics.Jump(&s.player)
	if !ok {
		return false
	}
	s.lastJump = s.elapsed
	s.emit(Jumped{Double: double})
	return true
}

// SetDirection updates facing and the running flag.
func (s *Session) SetDirection(d Direction) {
	switch d {
	case DirLeft:
		s.player.Facing = FacingLeft
		s.player.Running = true
	case DirRight:
		s.player.Facing = FacingRight
		s.player.Running = true
	case DirNone:
		s.player.Running = false
	}
}

// Tick reads the clock and steps by the elapsed time.
func (s *Session) Tick() TickResult {
	return s.Step(s.timer.Elapsed())
}

// ResetClock forgets the previous clock reading, so the next Tick steps by
// zero. Callers use it after a pause.
func (s *Session) ResetClock() {
	s.timer.Reset()
}

// Step advances the simulation by dtMS, clamped to the frame limit. It is
// a no-op unless the session is running.
func (s *Session) Step(dtMS float64) TickResult {
	dt := clampFrame(dtMS, s.cfg.Physics.MaxFrameMS)
	if s.state != StateRunning {
		return s.result(dt)
	}
	s.elapsed += dt
	level := s.progress.Level

	s.registry.Advance(dt, s.speed, s.difficulty.FlapInterval(s.cfg.Spawns.Birds, level))
	s.spawner.Advance(dt, level, !s.progress.BonusCollected)
	s.runOpening(level)

	prevY := s.player.Y
	s.physics.Step(&s.player)

	if s.resolveCollisions(prevY) {
		return s.result(dt)
	}

	s.progress.AccrueTime(dt)
	if s.progress.CheckLevelUp() {
		s.onLevelUp()
	}
	return s.result(dt)
}

// runOpening spawns the scripted entities whose time has come.
func (s *Session) runOpening(level int) {
	for s.openingIdx < len(s.opening) && s.opening[s.openingIdx].AtMS <= s.elapsed {
		if k, ok := ParseKind(s.opening[s.openingIdx].Category); ok {
			s.spawner.Spawn(k, level)
		}
		s.openingIdx++
	}
}

func (s *Session) onLevelUp() {
	level := s.progress.Level
	s.speed = s.difficulty.Speed(level)
	s.spawner.Retune(level)
	s.spawner.Prime(KindCandy, s.cfg.Spawns.Candies.LevelUpDelay)
}

func (s *Session) result(dt float64) TickResult {
	res := TickResult{State: s.state, Elapsed: s.elapsed, Delta: dt}
	if len(s.events) > 0 {
		res.Events = s.events
		s.events = nil
	}
	return res
}
