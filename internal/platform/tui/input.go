package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pigpong/internal/games/pigpong"
)

// handlePointer forwards a mouse message to the game's claim and drag API.
// A press must land on a paddle; motion and release act on whichever side
// owns the half of the field under the pointer.
func handlePointer(g *pigpong.Game, layout Layout, msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		snap := g.Snapshot()
		for _, side := range []pigpong.Side{pigpong.SideLeft, pigpong.SideRight} {
			if layout.HitsGate(side, msg.X, msg.Y, snap.Paddles[side].Y) {
				g.StartDrag(side)
				g.ClaimPaddle(side)
				return
			}
		}

	case tea.MouseActionMotion:
		x, y := layout.ToField(msg.X, msg.Y)
		g.UpdateDrag(g.Params().SideAt(x), y)

	case tea.MouseActionRelease:
		x, _ := layout.ToField(msg.X, msg.Y)
		g.EndDrag(g.Params().SideAt(x))
	}
}
