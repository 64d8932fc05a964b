// Package effects schedules cosmetic feedback: the idle blink, speech
// bubbles, floating score popups, banners and hit flashes. It is driven
// only by simulation events and its own clock and never touches the
// simulation state.
package effects

import (
	"fmt"

	"github.com/vovakirdan/bunny-dash/internal/sim"
)

// Timings in milliseconds.
const (
	bubbleHold     = 1500
	bubbleFade     = 300
	celebrateHold  = 1500
	rescueHold     = 2000
	floaterHold    = 1000
	levelBanner    = 2000
	candyHintDelay = 2000
	candyHintHold  = 5000
	flashHold      = 500
	bestBanner     = 1500
	gateHintGap    = 3000

	blinkPeriod = 2000
)

var (
	regularLines   = []string{"Carrot-astic!", "Hop-tastic!", "Nom nom nom!", "Bunny approved!", "Crunchy good!"}
	specialLines   = []string{"Hop-diggity!", "Carrot jackpot!", "Bunny heaven!", "Ear-resistible!", "Super-duper!"}
	celebrateLines = []string{"Woo-hoo!", "Level up!", "Hippity-Hop!", "Awesome!", "Bun-believable!"}
	rescueLines    = []string{"Friend rescued!", "Bunny buddy freed!", "Hoppy rescue!", "Mission accomplished!", "One more saved!"}
)

const (
	candyLine = "Candy Collected!"
	gateLine  = "Collect the candy first!"
)

// timed is a visible window starting at start, shown fully for hold and
// then fading out over fade.
type timed struct {
	start, hold, fade float64
}

func (t timed) end() float64 { return t.start + t.hold + t.fade }

func (t timed) visible(now float64) bool { return now >= t.start && now < t.end() }

// alpha is 1 while held and falls linearly to 0 while fading.
func (t timed) alpha(now float64) float64 {
	switch {
	case !t.visible(now):
		return 0
	case now < t.start+t.hold || t.fade <= 0:
		return 1
	default:
		return 1 - (now-t.start-t.hold)/t.fade
	}
}

// progress is how far through its whole window the effect is, in [0, 1].
func (t timed) progress(now float64) float64 {
	d := t.hold + t.fade
	if d <= 0 {
		return 1
	}
	p := (now - t.start) / d
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Bubble is a speech bubble above the player.
type Bubble struct {
	Text    string
	Special bool
	Alpha   float64
}

// Floater is a "+N" popup drifting up from the player.
type Floater struct {
	Text string
	Rise float64 // 0 when spawned, 1 when gone
}

type bubble struct {
	timed
	text    string
	special bool
}

type floater struct {
	timed
	text string
}

type banner struct {
	timed
	text string
}

// Scheduler owns every running cosmetic effect.
type Scheduler struct {
	rng      sim.Rand
	now      float64
	blinking bool
	blinkAt  float64

	bubbles  []bubble
	floaters []floater
	banners  []banner
	flash    timed
	lastGate float64
	bestSeen bool
}

// New creates an idle scheduler.
func New(rng sim.Rand) *Scheduler {
	return &Scheduler{rng: rng, lastGate: -gateHintGap}
}

// Reset drops every effect and starts the blink cycle.
func (s *Scheduler) Reset() {
	*s = Scheduler{rng: s.rng, lastGate: -gateHintGap, blinking: true}
}

// Now returns the scheduler clock in milliseconds.
func (s *Scheduler) Now() float64 { return s.now }

// Advance moves the scheduler clock and drops expired effects.
func (s *Scheduler) Advance(dtMS float64) {
	if dtMS > 0 {
		s.now += dtMS
	}
	s.bubbles = prune(s.bubbles, s.now)
	s.floaters = prune(s.floaters, s.now)
	s.banners = prune(s.banners, s.now)
}

type ender interface{ end() float64 }

func prune[T ender](items []T, now float64) []T {
	kept := items[:0]
	for _, it := range items {
		if now < it.end() {
			kept = append(kept, it)
		}
	}
	return kept
}

func (s *Scheduler) pick(lines []string) string {
	return lines[s.rng.Intn(len(lines))]
}

// say shows a bubble after delay. A bubble shown now replaces the one
// currently on screen; scheduled ones are kept.
func (s *Scheduler) say(text string, special bool, delay, hold float64) {
	start := s.now + delay
	if delay <= 0 {
		kept := s.bubbles[:0]
		for _, b := range s.bubbles {
			if b.start > s.now {
				kept = append(kept, b)
			}
		}
		s.bubbles = kept
	}
	s.bubbles = append(s.bubbles, bubble{timed: timed{start: start, hold: hold, fade: bubbleFade}, text: text, special: special})
}

func (s *Scheduler) popup(points int) {
	s.floaters = append(s.floaters, floater{timed: timed{start: s.now, hold: floaterHold}, text: fmt.Sprintf("+%d", points)})
}

func (s *Scheduler) announce(text string, delay, hold float64) {
	s.banners = append(s.banners, banner{timed: timed{start: s.now + delay, hold: hold}, text: text})
}

// Handle reacts to one simulation event.
func (s *Scheduler) Handle(ev sim.Event) {
	switch e := ev.(type) {
	case sim.GameStarted:
		s.Reset()
	case sim.GameEnded:
		s.blinking = false
		s.bubbles = s.bubbles[:0]
	case sim.ItemCollected:
		special := e.Value > 10
		if special {
			s.say(s.pick(specialLines), true, 0, bubbleHold)
		} else {
			s.say(s.pick(regularLines), false, 0, bubbleHold)
		}
		s.popup(e.Value)
	case sim.BonusCollected:
		s.say(candyLine, true, 0, bubbleHold)
		s.popup(1)
	case sim.LevelUp:
		s.announce(fmt.Sprintf("LEVEL %d!", e.Level), 0, levelBanner)
		s.say(s.pick(celebrateLines), true, 0, celebrateHold)
		s.say(s.pick(rescueLines), true, celebrateHold, rescueHold)
		s.announce("CANDY >>", candyHintDelay, candyHintHold)
	case sim.DamageTaken:
		s.flash = timed{start: s.now, hold: flashHold}
	case sim.BlockStruck:
		if e.YieldedBonus {
			s.popup(10)
		}
	case sim.NewBestScore:
		if !s.bestSeen {
			s.bestSeen = true
			s.announce("NEW BEST!", 0, bestBanner)
		}
	}
}

// Observe reacts to the per-tick frame. While the score threshold is met
// without the candy, the player is nagged at most every few seconds.
func (s *Scheduler) Observe(f sim.Frame) {
	if f.State != sim.StateRunning || !f.BonusGated {
		return
	}
	if s.now-s.lastGate < gateHintGap {
		return
	}
	s.lastGate = s.now
	s.say(gateLine, false, 0, bubbleHold)
}

// EyesOpen reports the blink state: two short blinks every two seconds.
func (s *Scheduler) EyesOpen() bool {
	if !s.blinking {
		return true
	}
	phase := s.now - s.blinkAt
	for phase >= blinkPeriod {
		phase -= blinkPeriod
	}
	switch {
	case phase < 200:
		return false
	case phase < 500:
		return true
	case phase < 700:
		return false
	default:
		return true
	}
}

// Bubble returns the bubble on screen, if any.
func (s *Scheduler) Bubble() (Bubble, bool) {
	var (
		cur   *bubble
		found bool
	)
	for i := range s.bubbles {
		b := &s.bubbles[i]
		if b.visible(s.now) && (!found || b.start >= cur.start) {
			cur, found = b, true
		}
	}
	if !found {
		return Bubble{}, false
	}
	return Bubble{Text: cur.text, Special: cur.special, Alpha: cur.alpha(s.now)}, true
}

// Floaters returns the visible score popups, oldest first.
func (s *Scheduler) Floaters() []Floater {
	var out []Floater
	for _, f := range s.floaters {
		if f.visible(s.now) {
			out = append(out, Floater{Text: f.text, Rise: f.progress(s.now)})
		}
	}
	return out
}

// Banner returns the newest visible banner text.
func (s *Scheduler) Banner() (string, bool) {
	for i := len(s.banners) - 1; i >= 0; i-- {
		if s.banners[i].visible(s.now) {
			return s.banners[i].text, true
		}
	}
	return "", false
}

// Flashing reports whether the hit flash is on.
func (s *Scheduler) Flashing() bool {
	return s.flash.visible(s.now)
}
