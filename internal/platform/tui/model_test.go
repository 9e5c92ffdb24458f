package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pigpong/internal/core"
	"github.com/vovakirdan/pigpong/internal/games/pigpong"
	"github.com/vovakirdan/pigpong/internal/storage"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.Seed = 42
	return NewModel(Options{Params: pigpong.DefaultParams(), Config: cfg})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return model
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModelTickAdvancesTimestamp(t *testing.T) {
	m := newTestModel(t)
	start := time.Now()

	m = update(t, m, TickMsg(start))
	if m.Now() != 0 {
		t.Errorf("Now() after first tick = %v, expected 0", m.Now())
	}

	m = update(t, m, TickMsg(start.Add(16*time.Millisecond)))
	if m.Now() != 16 {
		t.Errorf("Now() = %v, expected 16", m.Now())
	}

	// A stalled terminal only advances one capped step.
	m = update(t, m, TickMsg(start.Add(5*time.Second)))
	if m.Now() != 16+maxFrameMs {
		t.Errorf("Now() after stall = %v, expected %v", m.Now(), 16+maxFrameMs)
	}
}

func TestModelPauseFreezesTimestamp(t *testing.T) {
	m := newTestModel(t)
	start := time.Now()

	m = update(t, m, TickMsg(start))
	m = update(t, m, runeKey('p'))
	if !m.Paused() {
		t.Fatal("Paused() = false after p")
	}

	m = update(t, m, TickMsg(start.Add(50*time.Millisecond)))
	if m.Now() != 0 {
		t.Errorf("Now() while paused = %v, expected 0", m.Now())
	}

	// Paddle keys are ignored while paused.
	m = update(t, m, runeKey('w'))
	if m.Game().Phase() != pigpong.PhaseWaiting {
		t.Errorf("Phase() = %v, expected Waiting", m.Game().Phase())
	}

	m = update(t, m, runeKey('p'))
	m = update(t, m, TickMsg(start.Add(66*time.Millisecond)))
	if m.Now() != 16 {
		t.Errorf("Now() after resume = %v, expected 16", m.Now())
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if got := next.(Model).View(); got != "" {
		t.Errorf("View() after quit = %q, expected empty", got)
	}
}

func TestModelKeyClaimsAndMoves(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, runeKey('w'))

	g := m.Game()
	if g.Phase() != pigpong.PhaseStartup {
		t.Fatalf("Phase() = %v, expected Startup", g.Phase())
	}
	snap := g.Snapshot()
	if !snap.Human(pigpong.SideLeft) || snap.Human(pigpong.SideRight) {
		t.Errorf("claims = left %v right %v, expected left only", snap.Human(pigpong.SideLeft), snap.Human(pigpong.SideRight))
	}
	if want := 220 - keyStep; snap.Paddles[pigpong.SideLeft].Y != want {
		t.Errorf("left Y = %v, expected %v", snap.Paddles[pigpong.SideLeft].Y, want)
	}
	if snap.Paddles[pigpong.SideLeft].Dragging {
		t.Error("keyboard move left the paddle dragging")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	snap = m.Game().Snapshot()
	if !snap.Human(pigpong.SideRight) {
		t.Error("down arrow during startup did not claim the right side")
	}
	if want := 220 + keyStep; snap.Paddles[pigpong.SideRight].Y != want {
		t.Errorf("right Y = %v, expected %v", snap.Paddles[pigpong.SideRight].Y, want)
	}
}

func TestModelMouseDrag(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, tea.MouseMsg{X: 3, Y: 11, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	g := m.Game()
	if g.Phase() != pigpong.PhaseStartup {
		t.Fatalf("Phase() = %v, expected Startup", g.Phase())
	}
	snap := g.Snapshot()
	if !snap.Human(pigpong.SideLeft) || !snap.Paddles[pigpong.SideLeft].Dragging {
		t.Fatalf("left paddle = %+v, expected claimed and dragging", snap.Paddles[pigpong.SideLeft])
	}

	m = update(t, m, tea.MouseMsg{X: 10, Y: 6, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	_, wantY := m.layout.ToField(10, 6)
	if got := m.Game().Snapshot().Paddles[pigpong.SideLeft].Y; got != wantY {
		t.Errorf("left Y after drag = %v, expected %v", got, wantY)
	}

	m = update(t, m, tea.MouseMsg{X: 10, Y: 6, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if m.Game().Snapshot().Paddles[pigpong.SideLeft].Dragging {
		t.Error("release did not end the drag")
	}
}

func TestModelMouseMissIgnored(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, tea.MouseMsg{X: 40, Y: 11, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.Game().Phase() != pigpong.PhaseWaiting {
		t.Errorf("Phase() = %v, expected Waiting", m.Game().Phase())
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	w, h := m.layout.ScreenSize()
	if m.screen.Width() != w || m.screen.Height() != h {
		t.Errorf("screen = %dx%d, expected %dx%d", m.screen.Width(), m.screen.Height(), w, h)
	}
	if w != 120 {
		t.Errorf("width = %d, expected 120", w)
	}
}

func TestModelViewShowsIdleScreen(t *testing.T) {
	m := newTestModel(t)

	view := m.View()
	if !strings.Contains(view, "PIG PONG") {
		t.Error("View() missing title")
	}
	if !strings.Contains(view, "to play") {
		t.Error("View() missing instructions")
	}
}

func TestModelJournalsMatches(t *testing.T) {
	store, err := storage.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer store.Close()

	cfg := core.DefaultConfig()
	cfg.Seed = 7
	m := NewModel(Options{Params: pigpong.DefaultParams(), Config: cfg, Store: store})
	if m.journal != "no matches yet this session" {
		t.Errorf("journal = %q, expected empty session line", m.journal)
	}

	// Claim the left side and never move it; the computer wins eventually.
	m.game.ClaimPaddle(pigpong.SideLeft)
	for i := 0; i < 200000 && m.game.Phase() != pigpong.PhaseCooling; i++ {
		m.now += 16
		m.advance()
	}
	if m.game.Phase() != pigpong.PhaseCooling {
		t.Fatal("match did not finish")
	}

	sum, err := store.Summary()
	if err != nil {
		t.Fatalf("Summary() error: %v", err)
	}
	if sum.Matches != 1 {
		t.Errorf("Matches = %d, expected 1", sum.Matches)
	}
	if !strings.HasPrefix(m.journal, "last: ") {
		t.Errorf("journal = %q, expected last match line", m.journal)
	}
}

func TestJournalLine(t *testing.T) {
	recent := []storage.MatchRecord{{Winner: "right", ScoreLeft: 4, ScoreRight: 11, Hits: 30, LongestRally: 6}}
	sum := storage.Summary{Matches: 2, HumanWins: 1}

	want := "last: right won 4:11, 30 hits, best rally 6 · session: 2 matches, 1 won by players"
	if got := JournalLine(recent, sum); got != want {
		t.Errorf("JournalLine() = %q, expected %q", got, want)
	}
	if got := JournalLine(nil, storage.Summary{}); got != "no matches yet this session" {
		t.Errorf("JournalLine() empty = %q", got)
	}
}

func TestModelJournalToggle(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.ShowingJournal() {
		t.Error("journal opened without a store")
	}

	store, err := storage.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer store.Close()

	cfg := core.DefaultConfig()
	cfg.Seed = 3
	m = NewModel(Options{Params: pigpong.DefaultParams(), Config: cfg, Store: store})
	start := time.Now()
	m = update(t, m, TickMsg(start))

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.ShowingJournal() || !m.Paused() {
		t.Fatal("tab did not open the journal")
	}
	if view := m.View(); !strings.Contains(view, "SESSION JOURNAL") {
		t.Errorf("View() = %q, expected journal", view)
	}

	// Time and paddle keys hold still behind the journal.
	m = update(t, m, TickMsg(start.Add(16*time.Millisecond)))
	m = update(t, m, runeKey('w'))
	if m.Now() != 0 || m.Game().Phase() != pigpong.PhaseWaiting {
		t.Errorf("game moved behind the journal: now %v phase %v", m.Now(), m.Game().Phase())
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.ShowingJournal() {
		t.Error("second tab did not close the journal")
	}
}
