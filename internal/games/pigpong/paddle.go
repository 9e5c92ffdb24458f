package pigpong

import (
	"math"

	"github.com/vovakirdan/pigpong/internal/core"
)

// Paddle is one side's gate paddle.
type Paddle struct {
	Y        float64 // Center
	InitialY float64
	Human    bool
	Dragging bool
}

// Span returns the vertical extent of the paddle.
func (p Paddle) Span(halfHeight float64) core.Span {
	return core.Span{Lo: p.Y - halfHeight, Hi: p.Y + halfHeight}
}

// Opponent is the computer player's tracking state, shared by any side that
// nobody claimed.
type Opponent struct {
	MaxSpeed  float64 // Field units per ms
	AimOffset float64 // In [-halfHeight, +halfHeight)
}

// trackOpponents moves every computer paddle toward the pig. The speed cap
// and aim offset make it late and imprecise the way a person would be.
func (g *Game) trackOpponents(elapsed float64) {
	limit := elapsed * g.opponent.MaxSpeed
	bounds := g.params.PaddleRange()

	for i := range g.paddles {
		paddle := &g.paddles[i]
		if paddle.Human {
			continue
		}
		want := g.pig.Y - (paddle.Y + g.opponent.AimOffset)
		if math.Abs(want) > limit {
			want = math.Copysign(limit, want)
		}
		paddle.Y = bounds.Clamp(paddle.Y + want)
	}
}

// ClaimPaddle marks a side as human-controlled. Claims are accepted while
// waiting and during the startup animation; the first claim starts a match.
func (g *Game) ClaimPaddle(side Side) {
	if !validSide(side) {
		return
	}
	if g.phase != PhaseWaiting && g.phase != PhaseStartup {
		return
	}
	g.paddles[side].Human = true

	if g.phase == PhaseWaiting {
		g.startStartup()
	}
}

// StartDrag begins dragging a side's paddle.
func (g *Game) StartDrag(side Side) {
	if !validSide(side) {
		return
	}
	g.paddles[side].Dragging = true
}

// UpdateDrag moves a dragged human paddle to y, clamped to the field.
// Updates outside startup and play, or for a side that is not a dragged
// human paddle, are ignored.
func (g *Game) UpdateDrag(side Side, y float64) {
	if !validSide(side) || math.IsNaN(y) {
		return
	}
	if g.phase != PhaseStartup && g.phase != PhasePlaying {
		return
	}
	paddle := &g.paddles[side]
	if !paddle.Human || !paddle.Dragging {
		return
	}
	paddle.Y = g.params.PaddleRange().Clamp(y)
}

// EndDrag stops dragging a side's paddle.
func (g *Game) EndDrag(side Side) {
	if !validSide(side) {
		return
	}
	g.paddles[side].Dragging = false
}

func validSide(side Side) bool {
	return side == SideLeft || side == SideRight
}
