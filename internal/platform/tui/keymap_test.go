package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pigpong/internal/games/pigpong"
)

func TestKeyMapPaddleMove(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		side     pigpong.Side
		dir      int
		expected bool
	}{
		{"w", runeKey('w'), pigpong.SideLeft, -1, true},
		{"s", runeKey('s'), pigpong.SideLeft, 1, true},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, pigpong.SideRight, -1, true},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, pigpong.SideRight, 1, true},
		{"p", runeKey('p'), 0, 0, false},
		{"x", runeKey('x'), 0, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			side, dir, ok := km.PaddleMove(tc.msg)
			if ok != tc.expected {
				t.Fatalf("PaddleMove() ok = %v, expected %v", ok, tc.expected)
			}
			if ok && (side != tc.side || dir != tc.dir) {
				t.Errorf("PaddleMove() = (%v, %d), expected (%v, %d)", side, dir, tc.side, tc.dir)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()

	if got := len(km.ShortHelp()); got != 7 {
		t.Errorf("ShortHelp() has %d bindings, expected 7", got)
	}
	total := 0
	for _, group := range km.FullHelp() {
		total += len(group)
	}
	if total != 7 {
		t.Errorf("FullHelp() has %d bindings, expected 7", total)
	}
}

func TestNudgePaddleKeepsMouseDrag(t *testing.T) {
	g := pigpong.New(pigpong.DefaultParams(), nil)
	g.ClaimPaddle(pigpong.SideLeft)
	g.StartDrag(pigpong.SideLeft)

	nudgePaddle(g, pigpong.SideLeft, 1)

	p := g.Snapshot().Paddles[pigpong.SideLeft]
	if !p.Dragging {
		t.Error("keyboard nudge ended a mouse drag")
	}
	if p.Y != 220+keyStep {
		t.Errorf("Y = %v, expected %v", p.Y, 220+keyStep)
	}
}

func TestNudgePaddleClampsToField(t *testing.T) {
	g := pigpong.New(pigpong.DefaultParams(), nil)
	for i := 0; i < 20; i++ {
		nudgePaddle(g, pigpong.SideRight, -1)
	}

	want := g.Params().PaddleRange().Lo
	if got := g.Snapshot().Paddles[pigpong.SideRight].Y; got != want {
		t.Errorf("Y = %v, expected %v", got, want)
	}
}
