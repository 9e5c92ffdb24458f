package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pigpong/internal/games/pigpong"
)

// keyStep is how far one key press moves a paddle, in field units.
const keyStep = 44.0

// KeyMap defines keybindings for the game screen.
type KeyMap struct {
	LeftUp    key.Binding
	LeftDown  key.Binding
	RightUp   key.Binding
	RightDown key.Binding
	Pause     key.Binding
	Journal   key.Binding
	Quit      key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.LeftUp, k.LeftDown, k.RightUp, k.RightDown, k.Pause, k.Journal, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.LeftUp, k.LeftDown},
		{k.RightUp, k.RightDown},
		{k.Pause, k.Journal, k.Quit},
	}
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		LeftUp: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "left up"),
		),
		LeftDown: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "left down"),
		),
		RightUp: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "right up"),
		),
		RightDown: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "right down"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Journal: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "journal"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// PaddleMove maps a key to the side it moves and the direction (-1 up,
// +1 down). ok is false for keys that do not move a paddle.
func (k KeyMap) PaddleMove(msg tea.KeyMsg) (side pigpong.Side, dir int, ok bool) {
	switch {
	case key.Matches(msg, k.LeftUp):
		return pigpong.SideLeft, -1, true
	case key.Matches(msg, k.LeftDown):
		return pigpong.SideLeft, 1, true
	case key.Matches(msg, k.RightUp):
		return pigpong.SideRight, -1, true
	case key.Matches(msg, k.RightDown):
		return pigpong.SideRight, 1, true
	}
	return 0, 0, false
}

// nudgePaddle moves a side's paddle one step with the keyboard. The first
// press on an unclaimed side claims it.
func nudgePaddle(g *pigpong.Game, side pigpong.Side, dir int) {
	snap := g.Snapshot()
	if !snap.Human(side) {
		g.ClaimPaddle(side)
	}

	paddle := snap.Paddles[side]
	if !paddle.Dragging {
		g.StartDrag(side)
		defer g.EndDrag(side)
	}
	g.UpdateDrag(side, paddle.Y+float64(dir)*keyStep)
}
