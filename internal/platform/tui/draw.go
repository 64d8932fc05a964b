package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/bunny-dash/internal/core"
	"github.com/vovakirdan/bunny-dash/internal/effects"
	"github.com/vovakirdan/bunny-dash/internal/sim"
)

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

// projection maps arena pixels onto screen cells. Arena Y grows upward
// from the floor; screen rows grow downward.
type projection struct {
	cols, rows     int
	arenaW, arenaH float64
}

func newProjection(s *core.Screen, f sim.Frame) projection {
	p := projection{cols: s.Width(), rows: s.Height() - hudRows, arenaW: f.ArenaW, arenaH: f.ArenaH}
	if p.rows < 1 {
		p.rows = 1
	}
	if p.arenaW <= 0 {
		p.arenaW = 1
	}
	if p.arenaH <= 0 {
		p.arenaH = 1
	}
	return p
}

func (p projection) col(x float64) int {
	return int(math.Floor(x * float64(p.cols) / p.arenaW))
}

func (p projection) row(y float64) int {
	return hudRows + int(math.Floor((p.arenaH-y)*float64(p.rows)/p.arenaH))
}

// rect projects a box; every visible box covers at least one cell.
func (p projection) rect(b core.Box) core.Rect {
	x0, x1 := p.col(b.X), p.col(b.Right())
	top, bottom := p.row(b.Top()), p.row(b.Y)
	return core.NewRect(x0, top, max(x1-x0, 1), max(bottom-top, 1))
}

// glyph is how an entity looks on screen.
func glyph(e sim.EntityView) (rune, core.Color) {
	switch e.Kind {
	case sim.KindHazard:
		return '▲', core.ColorRed
	case sim.KindPickup:
		if e.Powerup {
			return '★', core.ColorBrightMagenta
		}
		if e.Value > 10 {
			return '●', core.ColorBrightYellow
		}
		return '●', core.ColorYellow
	case sim.KindPlatform:
		return '▬', core.ColorBrown
	case sim.KindBlock:
		switch {
		case e.Struck:
			return '▪', core.ColorGray
		case e.Bonus:
			return '?', core.ColorBrightYellow
		default:
			return '▣', core.ColorOrange
		}
	case sim.KindBird:
		if e.Frame%2 == 0 {
			return 'v', core.ColorWhite
		}
		return '^', core.ColorWhite
	case sim.KindCandy:
		return '♦', core.ColorPink
	}
	return '?', core.ColorDefault
}

// drawFrame renders the playfield, HUD, cosmetic effects and the
// state overlays for one frame.
func drawFrame(s *core.Screen, f sim.Frame, fx *effects.Scheduler, paused bool) {
	s.Clear()
	p := newProjection(s, f)

	drawGround(s, p, f.Ground)
	for _, e := range f.Entities {
		r, c := glyph(e)
		s.DrawRect(p.rect(e.Box), r, c)
	}
	if f.State != sim.StateIdle {
		drawPlayer(s, p, f.Player, fx)
		drawEffects(s, p, f.Player, fx)
	}
	drawHUD(s, f)

	switch {
	case f.State == sim.StateIdle:
		drawPanel(s, core.ColorBrightGreen,
			"B U N N Y   D A S H",
			"",
			"Dodge obstacles, grab carrots,",
			"find the candy to level up.",
			"",
			"Press Enter or Space to start",
			fmt.Sprintf("Best: %d", f.Best),
		)
	case f.State == sim.StateEnded:
		drawPanel(s, core.ColorBrightRed,
			"GAME OVER",
			"",
			fmt.Sprintf("Score %d   Level %d   Candy %d", f.Score, f.Level, f.BonusCount),
			fmt.Sprintf("Best %d", f.Best),
			"",
			"R restart   Q quit",
		)
	case paused:
		drawPanel(s, core.ColorBrightYellow, "PAUSED", "", "P to resume")
	}
}

func drawGround(s *core.Screen, p projection, ground float64) {
	top := p.row(ground)
	s.DrawHLine(0, top, s.Width(), '▀', core.ColorGreen)
	for y := top + 1; y < s.Height(); y++ {
		s.DrawHLine(0, y, s.Width(), '░', core.ColorBrown)
	}
}

func drawPlayer(s *core.Screen, p projection, pv sim.PlayerView, fx *effects.Scheduler) {
	r := p.rect(pv.Box)

	color := core.ColorWhite
	switch {
	case fx.Flashing():
		color = core.ColorBrightRed
	case pv.Powerup:
		color = core.ColorCyan
	}
	s.DrawRect(r, '█', color)

	// ears
	s.SetColored(r.X, r.Y-1, '▌', color)
	s.SetColored(r.Right()-1, r.Y-1, '▐', color)

	eye := 'o'
	if !fx.EyesOpen() {
		eye = '-'
	}
	eyeX := r.X + (r.W*2)/3
	if pv.Facing == sim.FacingLeft {
		eyeX = r.X + r.W/3
	}
	s.SetColored(eyeX, r.Y, eye, core.ColorDefault)
}

func drawEffects(s *core.Screen, p projection, pv sim.PlayerView, fx *effects.Scheduler) {
	r := p.rect(pv.Box)

	if b, ok := fx.Bubble(); ok {
		color := core.ColorWhite
		if b.Special {
			color = core.ColorBrightMagenta
		}
		if b.Alpha < 0.4 {
			color = core.ColorGray
		}
		s.DrawTextColored(r.X, r.Y-3, "( "+b.Text+" )", color)
	}

	for _, fl := range fx.Floaters() {
		y := r.Y - 1 - int(fl.Rise*3)
		s.DrawTextColored(r.Right()+1, y, fl.Text, core.ColorBrightYellow)
	}

	if text, ok := fx.Banner(); ok {
		s.DrawTextCentered(hudRows+1, text, core.ColorBrightYellow)
	}
}

func drawHUD(s *core.Screen, f sim.Frame) {
	s.DrawHLine(0, 0, s.Width(), ' ', core.ColorDefault)

	left := fmt.Sprintf(" SCORE %d  LV %d  ", f.Score, f.Level)
	s.DrawTextColored(0, 0, left, core.ColorWhite)

	x := len(left)
	hearts := strings.Repeat("♥", max(f.Health, 0)) + strings.Repeat("♡", max(f.MaxHealth-f.Health, 0))
	s.DrawTextColored(x, 0, hearts, core.ColorRed)
	x += len([]rune(hearts)) + 2

	candy := fmt.Sprintf("CANDY %d", f.BonusCount)
	candyColor := core.ColorPink
	switch {
	case f.BonusReady:
		candy += " ✓"
		candyColor = core.ColorBrightGreen
	case f.BonusGated:
		candy += " NEEDED!"
	}
	s.DrawTextColored(x, 0, candy, candyColor)

	best := fmt.Sprintf("BEST %d ", f.Best)
	s.DrawTextColored(s.Width()-len(best), 0, best, core.ColorGray)
}

// drawPanel draws a bordered box with centered lines in the middle of the
// screen.
func drawPanel(s *core.Screen, color core.Color, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	width += 6
	height := len(lines) + 2

	x := core.Clamp((s.Width()-width)/2, 0, s.Width())
	y := core.Clamp((s.Height()-height)/2, hudRows, s.Height())
	box := core.NewRect(x, y, width, height)

	s.DrawRect(box, ' ', core.ColorDefault)
	s.DrawBox(box, color)
	for i, l := range lines {
		lx := x + (width-len([]rune(l)))/2
		s.DrawTextColored(lx, y+1+i, l, color)
	}
}
