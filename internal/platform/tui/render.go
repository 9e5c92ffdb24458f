package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pigpong/internal/core"
	"github.com/vovakirdan/pigpong/internal/games/pigpong"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorPink:    lipgloss.NewStyle().Foreground(lipgloss.Color("213")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Creek animation: the water column at mid field cycles through four
// frames, each shown for creekFrameMs.
const creekFrameMs = 300

var creekFrames = [4]rune{'≈', '~', '∼', '~'}

// Pig glyphs by rotation quadrant, clockwise from upright.
var pigGlyphs = [4]rune{'◐', '◓', '◑', '◒'}

var (
	idleSmile = []string{
		"╭─╮      ╭─╮",
		"╰┬┴──────┴┬╯",
		" │ ◕    ◕ │ ",
		" │  (oo)  │ ",
		" │ ╰────╯ │ ",
		" ╰────────╯ ",
	}
	idleSmirk = []string{
		"╭─╮      ╭─╮",
		"╰┬┴──────┴┬╯",
		" │ ◕    ─ │ ",
		" │  (oo)  │ ",
		" │  ───╯  │ ",
		" ╰────────╯ ",
	}
)

// Renderer draws game snapshots onto a Screen.
type Renderer struct {
	layout Layout
}

// NewRenderer creates a renderer for a layout.
func NewRenderer(layout Layout) Renderer {
	return Renderer{layout: layout}
}

// Draw renders snap onto s. ts is the driver timestamp in milliseconds and
// only drives cosmetic animation.
func (r Renderer) Draw(s *core.Screen, snap pigpong.Snapshot, ts float64) {
	s.Clear()

	r.drawHeader(s, snap)
	r.drawField(s)
	r.drawCreek(s, ts)
	r.drawGates(s, snap)

	switch snap.Phase {
	case pigpong.PhaseWaiting:
		r.drawIdle(s, snap)
	case pigpong.PhaseStartup:
		r.drawPig(s, snap)
		r.drawCountdown(s, snap)
	case pigpong.PhasePlaying:
		r.drawPig(s, snap)
	case pigpong.PhaseCooling:
		r.drawWinner(s, snap)
	}
}

func sideColor(human bool) core.Color {
	if human {
		return core.ColorPink
	}
	return core.ColorBlue
}

func sideLabel(side pigpong.Side, human bool) string {
	who := "CPU"
	if human {
		who = "YOU"
	}
	return fmt.Sprintf("%s %s", strings.ToUpper(side.String()), who)
}

func (r Renderer) drawHeader(s *core.Screen, snap pigpong.Snapshot) {
	p := r.layout.params
	left := r.layout.Col(p.FieldLeft)
	right := r.layout.Col(p.FieldRight)

	lhuman, rhuman := snap.Human(pigpong.SideLeft), snap.Human(pigpong.SideRight)
	lscore := fmt.Sprintf("%s  %d", sideLabel(pigpong.SideLeft, lhuman), snap.Scores[pigpong.SideLeft])
	rscore := fmt.Sprintf("%d  %s", snap.Scores[pigpong.SideRight], sideLabel(pigpong.SideRight, rhuman))

	s.DrawText(left, 0, lscore, sideColor(lhuman))
	s.DrawTextCentered(0, fmt.Sprintf("PIG PONG · to %d", p.ScoreMax), core.ColorGray)
	s.DrawText(right-len([]rune(rscore))+1, 0, rscore, sideColor(rhuman))
}

func (r Renderer) drawField(s *core.Screen) {
	p := r.layout.params
	left := r.layout.Col(p.FieldLeft)
	right := r.layout.Col(p.FieldRight)
	inner := r.layout.Inner

	s.DrawBox(core.NewRect(left, inner.Y-1, right-left+1, inner.H+2), core.ColorGray)
}

func (r Renderer) drawCreek(s *core.Screen, ts float64) {
	x := r.layout.Col(r.layout.params.MidX())
	frame := int(math.Floor(ts/creekFrameMs)) % len(creekFrames)
	if frame < 0 {
		frame += len(creekFrames)
	}

	inner := r.layout.Inner
	for row := 0; row < inner.H; row++ {
		glyph := creekFrames[(row+len(creekFrames)-frame)%len(creekFrames)]
		s.SetColored(x, inner.Y+row, glyph, core.ColorCyan)
	}
}

func (r Renderer) drawGates(s *core.Screen, snap pigpong.Snapshot) {
	for _, side := range []pigpong.Side{pigpong.SideLeft, pigpong.SideRight} {
		paddle := snap.Paddles[side]
		lo, hi := r.layout.GateCols(side)
		top, bottom := r.layout.PaddleRows(paddle.Y)

		color := sideColor(paddle.Human)
		if paddle.Human && paddle.Dragging {
			color = core.ColorYellow
		}
		for x := lo; x <= hi; x++ {
			for y := top; y <= bottom; y++ {
				s.SetColored(x, y, '█', color)
			}
		}
	}
}

// pigGlyph returns the glyph for a rotation in degrees.
func pigGlyph(rotation float64) rune {
	deg := math.Mod(rotation, 360)
	if deg < 0 {
		deg += 360
	}
	return pigGlyphs[int(deg/90)%len(pigGlyphs)]
}

func (r Renderer) drawPig(s *core.Screen, snap pigpong.Snapshot) {
	if !snap.PigVisible {
		return
	}
	cx, cy := r.layout.ToCell(snap.PigX, snap.PigY)

	// Grow the body past one cell while the scaled pig covers more.
	radius := snap.PigRadius * snap.PigScale
	rx := int(math.Round(radius * r.layout.scaleX))
	ry := int(math.Round(radius * r.layout.scaleY))
	for dy := -ry; dy <= ry; dy++ {
		for dx := -rx; dx <= rx; dx++ {
			if rx > 0 && ry > 0 {
				fx, fy := float64(dx)/float64(rx), float64(dy)/float64(ry)
				if fx*fx+fy*fy > 1 {
					continue
				}
			}
			s.SetColored(cx+dx, cy+dy, '●', core.ColorPink)
		}
	}
	s.SetColored(cx, cy, pigGlyph(snap.PigRotation), core.ColorWhite)
}

func (r Renderer) drawIdle(s *core.Screen, snap pigpong.Snapshot) {
	face := idleSmile
	if snap.Mood == pigpong.MoodSmirk {
		face = idleSmirk
	}

	inner := r.layout.Inner
	top := inner.Y + (inner.H-len(face)-2)/2
	for i, line := range face {
		s.DrawTextCentered(top+i, line, core.ColorPink)
	}
	s.DrawTextCentered(top+len(face)+1, "click a gate or press w/s ↑/↓ to play", core.ColorWhite)
}

func (r Renderer) drawCountdown(s *core.Screen, snap pigpong.Snapshot) {
	left := r.layout.params.StartupMs - snap.PhaseElapsedMs
	if left <= 0 {
		return
	}
	inner := r.layout.Inner
	s.DrawTextCentered(inner.Y+1, fmt.Sprintf("%d", int(math.Ceil(left/1000))), core.ColorYellow)
}

func (r Renderer) drawWinner(s *core.Screen, snap pigpong.Snapshot) {
	if !snap.HasWinner {
		return
	}
	inner := r.layout.Inner
	mid := inner.Y + inner.H/2

	banner := fmt.Sprintf("%s WINS %d : %d", strings.ToUpper(snap.Winner.String()),
		snap.Scores[pigpong.SideLeft], snap.Scores[pigpong.SideRight])
	s.DrawTextCentered(mid-1, banner, core.ColorYellow)

	if snap.Human(snap.Winner) {
		s.DrawTextCentered(mid+1, "well played!", core.ColorGreen)
	} else if snap.Human(snap.Winner.Opposite()) {
		s.DrawTextCentered(mid+1, "the computer takes it", core.ColorRed)
	}
}

// drawPaused overlays the pause banner.
func drawPaused(s *core.Screen, layout Layout) {
	inner := layout.Inner
	s.DrawTextCentered(inner.Y+inner.H/2, " PAUSED ", core.ColorYellow)
}
