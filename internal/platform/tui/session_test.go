package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bunny-dash/internal/config"
	"github.com/vovakirdan/bunny-dash/internal/sim"
	"github.com/vovakirdan/bunny-dash/internal/storage"
)

func sendSession(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm, cmd
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(nil, testRuntime())
	if m.items[m.cursor].Preset != config.DifficultyNormal {
		t.Fatalf("default selection = %v, want normal", m.items[m.cursor].Preset)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(MenuModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(MenuModel)
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want clamped at 0", m.cursor)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)
	if m.Selected() == nil || m.Selected().Preset != config.DifficultyEasy {
		t.Errorf("selected = %+v, want easy", m.Selected())
	}
	if cmd == nil {
		t.Error("selection should end the menu program")
	}
}

func TestSessionFlow(t *testing.T) {
	store := openStore(t)
	if err := store.SaveBest(42); err != nil {
		t.Fatal(err)
	}

	m := NewSessionModel(config.DefaultRunnerConfig(), testRuntime(), Options{Store: store, Player: "ann"})
	if !strings.Contains(m.View(), "Best score: 42") {
		t.Error("menu does not show the stored best score")
	}

	// menu -> scores -> menu
	m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.active != screenScores {
		t.Fatalf("active = %v, want scores", m.active)
	}
	m, _ = sendSession(t, m, runeKey('b'))
	if m.active != screenMenu {
		t.Fatalf("active = %v, want menu", m.active)
	}

	// menu -> game, then quit the running game
	m, cmd := sendSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.active != screenGame || cmd == nil {
		t.Fatalf("active = %v, want game with a tick command", m.active)
	}
	m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.game.Session().State() != sim.StateRunning {
		t.Fatalf("game state = %v", m.game.Session().State())
	}
	if m.game.Session().Progress().Best != 42 {
		t.Errorf("session best = %d, want 42 from the store", m.game.Session().Progress().Best)
	}

	m, _ = sendSession(t, m, runeKey('p'))
	m, _ = sendSession(t, m, runeKey('b'))
	if m.active != screenMenu {
		t.Errorf("b on a paused game should return to the menu, active = %v", m.active)
	}

	m, cmd = sendSession(t, m, runeKey('q'))
	if !m.quitting || cmd == nil {
		t.Error("q in the menu should quit the session")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestScoreboardLists(t *testing.T) {
	store := openStore(t)
	for _, score := range []int{30, 10, 20} {
		if _, err := store.SaveRun(storage.Run{Score: score, Level: 1, DurationMS: 61000}); err != nil {
			t.Fatal(err)
		}
	}

	m := NewScoreboardModel(store, 120, 40)
	if len(m.runs) != 3 || m.runs[0].Score != 30 {
		t.Fatalf("top runs = %+v", m.runs)
	}
	if m.stats == nil || m.stats.Runs != 3 || m.stats.HighScore != 30 {
		t.Errorf("stats = %+v", m.stats)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.view != viewRecent || m.runs[0].Score != 20 {
		t.Errorf("recent view = %v first %+v, want the last saved run first", m.view, m.runs[0])
	}

	view := m.View()
	for _, want := range []string{"RECENT RUNS", "Runs      3", "1:01"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
