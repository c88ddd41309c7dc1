package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// fakeGame records what the platform asks of it.
type fakeGame struct {
	state   core.GameState
	resets  int
	best    int
	frames  []core.InputFrame
	resized [2]int
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{}
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake")
}

func (g *fakeGame) State() core.GameState { return g.state }
func (g *fakeGame) SetBestScore(best int) { g.best = best }
func (g *fakeGame) Resize(w, h int) { g.resized = [2]int{w, h} }
func (g *fakeGame) MaxTile() int { return 64 }
func (g *fakeGame) Moves() int { return 12 }

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelLoadsBestScore(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveResult(storage.Result{Variant: "fake", Score: 300, Outcome: storage.OutcomeLost}); err != nil {
		t.Fatal(err)
	}

	g := &fakeGame{}
	m := NewModel(g, store, nil, testConfig())
	m.Init()

	if g.resets != 1 {
		t.Errorf("resets = %d, want 1", g.resets)
	}
	if g.best != 300 {
		t.Errorf("best = %d, want 300", g.best)
	}
}

func TestModelStateFollowsGameAfterInit(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, nil, testConfig())
	m.Init()

	g.state = core.GameState{Score: 8}
	m, _ = update(t, m, TickMsg(time.Now()))
	if m.gameState.Score != 8 {
		t.Errorf("gameState.Score = %d, want 8", m.gameState.Score)
	}
	if g.resets != 1 {
		t.Errorf("resets = %d, want 1", g.resets)
	}
}

func TestModelQueuesKeysInOrder(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, nil, testConfig())
	m.Init()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = update(t, m, TickMsg(time.Now()))
	update(t, m, TickMsg(time.Now()))

	if len(g.frames) != 2 {
		t.Fatalf("steps = %d, want 2", len(g.frames))
	}
	moves := g.frames[0].Moves()
	if len(moves) != 2 || moves[0] != core.ActionLeft || moves[1] != core.ActionRight {
		t.Errorf("first frame moves = %v, want [left right]", moves)
	}
	if !g.frames[1].Empty() {
		t.Errorf("second frame = %v, want empty", g.frames[1].Actions)
	}
}

func TestModelSavesFinishedGameOnce(t *testing.T) {
	store := openTestStore(t)
	g := &fakeGame{}
	m := NewModel(g, store, nil, testConfig())
	m.Init()

	g.state = core.GameState{Score: 2048, GameOver: true, Won: true}
	m, _ = update(t, m, TickMsg(time.Now()))
	update(t, m, TickMsg(time.Now()))

	results, err := store.TopScores("fake", 10)
	if err != nil {
		t.Fatalf("TopScores() error = %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("results = %d, want 1", len(results))
	}
	r := results[0]
	if r.Score != 2048 || r.Outcome != storage.OutcomeWon || r.MaxTile != 64 || r.Moves != 12 {
		t.Errorf("stored result = %+v", r)
	}
}

func TestModelQuitSavesAbandonedGame(t *testing.T) {
	store := openTestStore(t)
	g := &fakeGame{}
	m := NewModel(g, store, nil, testConfig())
	m.Init()

	g.state = core.GameState{Score: 40}
	m, _ = update(t, m, TickMsg(time.Now()))
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("quit key should return a command")
	}
	if m.View() != "" {
		t.Error("View() after quit should be empty")
	}

	results, err := store.TopScores("fake", 10)
	if err != nil {
		t.Fatalf("TopScores() error = %v", err)
	}
	if len(results) != 1 || results[0].Outcome != storage.OutcomeAbandoned {
		t.Errorf("results = %+v, want one abandoned game", results)
	}
}

func TestModelQuitWithoutScoreSavesNothing(t *testing.T) {
	store := openTestStore(t)
	g := &fakeGame{}
	m := NewModel(g, store, nil, testConfig())
	m.Init()

	update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	results, err := store.TopScores("fake", 10)
	if err != nil {
		t.Fatalf("TopScores() error = %v", err)
	}
	if len(results) != 0 {
		t.Errorf("results = %+v, want none", results)
	}
}

func TestModelRestart(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, nil, testConfig())
	m.Init()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	update(t, m, TickMsg(time.Now()))

	if g.resets != 2 {
		t.Errorf("resets = %d, want 2", g.resets)
	}
	if len(g.frames) != 0 {
		t.Error("restart tick should not step the game")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, nil, testConfig())
	m.Init()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if g.resized != [2]int{100, 40} {
		t.Errorf("resized = %v, want [100 40]", g.resized)
	}
	if g.resets != 1 {
		t.Errorf("resets = %d, resize must not reset", g.resets)
	}
	if !strings.HasPrefix(m.View(), "fake") {
		t.Errorf("View() = %q", m.View())
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.DrawTextColor(3, 1, "2", core.ColorBlack, core.ColorTile2)

	lines := strings.Split(RenderScreen(s), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	if lines[0] != "ab    " {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.Contains(lines[1], "2") {
		t.Errorf("line 1 = %q", lines[1])
	}
}
