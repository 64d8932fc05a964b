package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bunny-dash/internal/config"
	"github.com/vovakirdan/bunny-dash/internal/core"
	"github.com/vovakirdan/bunny-dash/internal/effects"
	"github.com/vovakirdan/bunny-dash/internal/sim"
	"github.com/vovakirdan/bunny-dash/internal/storage"
)

// EventSink consumes simulation events, e.g. the audio cue player.
type EventSink interface {
	Handle(ev sim.Event)
}

// FramePublisher receives a snapshot after every tick, e.g. the frame stream.
type FramePublisher interface {
	Publish(f sim.Frame) error
}

// Options wires the optional collaborators of a GameModel.
type Options struct {
	Store    *storage.Store // best score and run history; nil plays without persistence
	Player   string         // recorded with each run
	Sinks    []EventSink
	Stream   FramePublisher
	Logger   *log.Logger
	Embedded bool // running inside a menu flow; B leaves the game
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// tickClock reports the timestamp of the latest tick message, so the
// session measures frame time against the Bubble Tea tick loop.
type tickClock struct {
	now time.Time
}

func (c *tickClock) Now() time.Time { return c.now }

// GameModel is the Bubble Tea model for one player's game.
type GameModel struct {
	session    *sim.Session
	clock      *tickClock
	fx         *effects.Scheduler
	screen     *core.Screen
	keys       KeyMap
	help       help.Model
	opts       Options
	config     core.RuntimeConfig
	frame      sim.Frame
	paused     bool
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model sized to the runtime config.
func NewGameModel(cfg config.RunnerConfig, rt core.RuntimeConfig, opts Options) GameModel {
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	clock := &tickClock{}
	simOpts := []sim.Option{sim.WithSeed(rt.Seed), sim.WithClock(clock)}
	if opts.Store != nil {
		simOpts = append(simOpts, sim.WithStore(storage.NewBestScore(opts.Store, opts.Logger)))
	}
	session := sim.NewSession(cfg, simOpts...)

	h := help.New()
	h.Width = rt.ScreenW

	return GameModel{
		session: session,
		clock:   clock,
		fx:      effects.New(sim.NewRand(rt.Seed + 1)),
		screen:  core.NewScreen(rt.ScreenW, max(rt.ScreenH-1, 1)),
		keys:    DefaultKeyMap(),
		help:    h,
		opts:    opts,
		config:  rt,
		frame:   session.Snapshot(),
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey maps a key to a session command.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := m.session.State()

	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.stop()
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		if m.opts.Embedded && (state != sim.StateRunning || m.paused) {
			m.stop()
			m.backToMenu = true
		}

	case core.ActionStart:
		if state == sim.StateIdle {
			m.start()
		}

	case core.ActionJump:
		switch {
		case state == sim.StateIdle:
			m.start()
		case !m.paused:
			m.session.Jump()
		}

	case core.ActionLeft:
		m.session.SetDirection(sim.DirLeft)
	case core.ActionRight:
		m.session.SetDirection(sim.DirRight)
	case core.ActionStop:
		m.session.SetDirection(sim.DirNone)

	case core.ActionRestart:
		if state == sim.StateEnded {
			m.fx.Reset()
			m.session.Restart()
		}

	case core.ActionPause:
		if state == sim.StateRunning {
			m.paused = !m.paused
			if !m.paused {
				m.session.ResetClock()
			}
		}
	}

	return m, nil
}

func (m *GameModel) start() {
	m.fx.Reset()
	m.session.Start()
	m.paused = false
}

// stop abandons a running game, keeping its best score and run record.
func (m *GameModel) stop() {
	if m.session.State() != sim.StateRunning {
		return
	}
	f := m.session.Snapshot()
	m.session.Stop()
	m.paused = false
	if f.Score > 0 {
		m.recordRun(f.Score, f.Level, f.BonusCount, f.Elapsed)
	}
}

// handleTick steps the session by the clamped time since the last tick.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	m.clock.now = now
	if !m.paused {
		res := m.session.Tick()
		m.fx.Advance(res.Delta)
		m.dispatch(res)
	}

	m.frame = m.session.Snapshot()
	m.fx.Observe(m.frame)
	if m.opts.Stream != nil {
		if err := m.opts.Stream.Publish(m.frame); err != nil {
			m.opts.Logger.Warn("frame not published", "err", err)
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// dispatch fans the tick's events out to effects, sinks and run history.
func (m *GameModel) dispatch(res sim.TickResult) {
	for _, ev := range res.Events {
		m.fx.Handle(ev)
		for _, sink := range m.opts.Sinks {
			sink.Handle(ev)
		}
		if e, ok := ev.(sim.GameEnded); ok {
			m.recordRun(e.Score, e.Level, e.Bonus, res.Elapsed)
		}
	}
}

func (m *GameModel) recordRun(score, level, candies int, elapsedMS float64) {
	if m.opts.Store == nil {
		return
	}
	run := storage.Run{
		Player:     m.opts.Player,
		Score:      score,
		Level:      level,
		Candies:    candies,
		DurationMS: int64(elapsedMS),
	}
	if _, err := m.opts.Store.SaveRun(run); err != nil {
		m.opts.Logger.Warn("could not save run", "err", err)
		return
	}
	m.opts.Logger.Debug("run saved", "player", run.Player, "score", score, "level", level)
}

// View renders the current frame.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}
	drawFrame(m.screen, m.frame, m.fx, m.paused)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Session exposes the underlying simulation.
func (m GameModel) Session() *sim.Session {
	return m.session
}

// Paused reports whether the game is paused.
func (m GameModel) Paused() bool {
	return m.paused
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone game program.
func Run(cfg config.RunnerConfig, rt core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(NewGameModel(cfg, rt, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
