package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pigpong/internal/audio"
	"github.com/vovakirdan/pigpong/internal/core"
	"github.com/vovakirdan/pigpong/internal/games/pigpong"
	"github.com/vovakirdan/pigpong/internal/storage"
)

// maxFrameMs caps the timestamp step of one tick so a stalled terminal does
// not teleport the pig through a paddle.
const maxFrameMs = 100.0

var journalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// Options configures a game model.
type Options struct {
	Params pigpong.Params
	Config core.RuntimeConfig

	// Optional collaborators; nil disables them.
	Store  *storage.Store
	Sound  *audio.SoundManager
	Logger *log.Logger
}

// Model is the Bubble Tea model driving one Pig Pong table.
type Model struct {
	game     *pigpong.Game
	config   core.RuntimeConfig
	layout   Layout
	renderer Renderer
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	store    *storage.Store
	recorder *storage.Recorder

	journalView JournalView
	showJournal bool

	now      float64 // Timestamp fed to Advance, in ms
	lastTick time.Time
	paused   bool
	quitting bool
	journal  string
}

// NewModel creates a model with a fresh game.
func NewModel(opts Options) Model {
	cfg := opts.Config
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	game := pigpong.New(opts.Params, pigpong.NewRandom(cfg.Seed))
	if opts.Logger != nil {
		game.OnEvent(EventLogger(opts.Logger))
	}
	if opts.Sound != nil {
		game.OnEvent(opts.Sound.HandleEvent)
	}

	layout := NewLayout(opts.Params, cfg.ScreenW, cfg.ScreenH)
	w, h := layout.ScreenSize()

	m := Model{
		game:     game,
		config:   cfg,
		layout:   layout,
		renderer: NewRenderer(layout),
		screen:   core.NewScreen(w, h),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		logger:   opts.Logger,
		store:    opts.Store,

		journalView: NewJournalView(cfg.ScreenW, cfg.ScreenH),
	}
	m.help.Width = w
	if opts.Store != nil {
		m.recorder = storage.NewRecorder(opts.Store, game)
		m.journal = m.readJournal()
	}
	return m
}

// Game returns the driven game.
func (m Model) Game() *pigpong.Game {
	return m.game
}

// Now returns the timestamp last fed to the game.
func (m Model) Now() float64 {
	return m.now
}

// Paused reports whether the timestamp feed is frozen.
func (m Model) Paused() bool {
	return m.paused || m.showJournal
}

// ShowingJournal reports whether the journal view replaces the table.
func (m Model) ShowingJournal() bool {
	return m.showJournal
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if !m.Paused() {
			handlePointer(m.game, m.layout, msg)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
		return m, nil
	case key.Matches(msg, m.keys.Journal):
		return m.toggleJournal(), nil
	}

	if m.showJournal {
		var cmd tea.Cmd
		m.journalView, cmd = m.journalView.Update(msg)
		return m, cmd
	}
	if m.paused {
		return m, nil
	}
	if side, dir, ok := m.keys.PaddleMove(msg); ok {
		nudgePaddle(m.game, side, dir)
	}
	return m, nil
}

// handleResize rebuilds the layout; the game keeps running in field units.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height

	m.layout = NewLayout(m.game.Params(), msg.Width, msg.Height)
	m.renderer = NewRenderer(m.layout)
	w, h := m.layout.ScreenSize()
	m.screen.Resize(w, h)
	m.help.Width = w
	m.journalView.Resize(msg.Width, msg.Height)

	return m, nil
}

// toggleJournal opens or closes the journal view. The game holds still
// while the journal is open.
func (m Model) toggleJournal() Model {
	if m.store == nil {
		return m
	}
	if m.showJournal {
		m.showJournal = false
		return m
	}
	if err := m.journalView.Load(m.store); err != nil {
		if m.logger != nil {
			m.logger.Error("could not read journal", "error", err)
		}
		return m
	}
	m.showJournal = true
	return m
}

// handleTick advances the timestamp feed by the real time since the last
// tick, unless paused, and runs the game up to it.
func (m Model) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	if !m.lastTick.IsZero() && !m.Paused() {
		dt := float64(t.Sub(m.lastTick)) / float64(time.Millisecond)
		m.now += core.ClampF(dt, 0, maxFrameMs)
	}
	m.lastTick = t

	m.advance()
	return m, tickCmd(m.config.TickRate)
}

// advance runs the game to m.now and journals finished matches.
func (m *Model) advance() {
	events := m.game.Advance(m.now)
	if m.recorder == nil || len(events) == 0 {
		return
	}

	rec, err := m.recorder.Record(m.now, events)
	if err != nil {
		if m.logger != nil {
			m.logger.Error("could not journal match", "error", err)
		}
		return
	}
	if rec != nil {
		if m.logger != nil {
			m.logger.Info("match journaled", "match", rec.MatchID, "winner", rec.Winner,
				"score", fmt.Sprintf("%d:%d", rec.ScoreLeft, rec.ScoreRight))
		}
		m.journal = m.readJournal()
	}
}

func (m Model) readJournal() string {
	recent, err := m.store.RecentMatches(1)
	if err != nil {
		return ""
	}
	sum, err := m.store.Summary()
	if err != nil {
		return ""
	}
	return JournalLine(recent, sum)
}

// JournalLine formats the session journal shown under the field.
func JournalLine(recent []storage.MatchRecord, sum storage.Summary) string {
	if sum.Matches == 0 || len(recent) == 0 {
		return "no matches yet this session"
	}
	last := recent[0]

	var sb strings.Builder
	fmt.Fprintf(&sb, "last: %s won %d:%d, %d hits, best rally %d",
		last.Winner, last.ScoreLeft, last.ScoreRight, last.Hits, last.LongestRally)
	fmt.Fprintf(&sb, " · session: %d matches, %d won by players", sum.Matches, sum.HumanWins)
	return sb.String()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showJournal {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.journalView.View(),
			m.help.View(m.keys),
		)
	}

	m.renderer.Draw(m.screen, m.game.Snapshot(), m.now)
	if m.paused {
		drawPaused(m.screen, m.layout)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		RenderScreen(m.screen),
		journalStyle.Render(m.journal),
		m.help.View(m.keys),
	)
}

// Run starts the Bubble Tea program for a local game.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
