package pigpong

import (
	"math"

	"github.com/vovakirdan/pigpong/internal/core"
)

// Pig is the state of the bounced pig.
type Pig struct {
	X, Y      float64
	Radius    float64
	Direction int     // +1 moving right, -1 moving left
	Speed     float64 // Horizontal speed, field units per ms
	Tangent   float64 // Vertical travel per unit of horizontal travel
	Rotation  float64 // Degrees, unbounded
	Scale     float64 // Cosmetic startup scale
	Visible   bool
}

func (p *Pig) reset(params Params) {
	p.X = params.PigStartX
	p.Y = params.PigStartY
	p.Radius = params.PigRadius
	p.Rotation = 0
	p.Scale = 1
}

// Top returns the y of the pig's top edge.
func (p Pig) Top() float64 { return p.Y - p.Radius }

// Bottom returns the y of the pig's bottom edge.
func (p Pig) Bottom() float64 { return p.Y + p.Radius }

// Left returns the x of the pig's left edge.
func (p Pig) Left() float64 { return p.X - p.Radius }

// Right returns the x of the pig's right edge.
func (p Pig) Right() float64 { return p.X + p.Radius }

// startupScale is the grow-shrink curve: min at both ends of the duration,
// max at its midpoint, eased with a quarter sine.
func startupScale(elapsed, duration, lo, hi float64) float64 {
	h := duration / 2
	if h <= 0 {
		return lo
	}
	u := elapsed
	if elapsed > h {
		u = duration - elapsed
	}
	return lo + math.Sin(u/h*math.Pi/2)*(hi-lo)
}

// serve puts the pig into play from the start line, keeping its height.
func (g *Game) serve(direction int) {
	p := &g.params
	pig := &g.pig

	pig.Direction = direction
	pig.Speed = p.SpeedMin
	pig.Tangent = p.TangentMin + g.rnd.Float64()*(p.TangentMax-p.TangentMin)
	pig.Rotation = 0
	pig.X = p.PigStartX

	// A computer paddle facing the serve has only half the field to react.
	target := SideLeft
	if direction > 0 {
		target = SideRight
	}
	if g.paddles[target].Human {
		g.opponent.MaxSpeed = p.ControlSpeedNormal
	} else {
		g.opponent.MaxSpeed = p.ControlSpeedServe
	}

	g.emit(ServeEvent{Direction: direction})
}

// movePig advances the pig by elapsed ms, resolving wall bounces, paddle
// hits and gate rim clips. It reports whether the pig left the canvas and
// whether it left past the right edge.
func (g *Game) movePig(elapsed float64) (exited, exitRight bool) {
	p := &g.params
	pig := &g.pig

	xOld, yOld := pig.X, pig.Y
	inField := p.FieldLeft < pig.Left() && pig.Right() < p.FieldRight

	dx := elapsed * pig.Speed
	dy := dx * pig.Tangent
	pig.X += dx * float64(pig.Direction)
	pig.Y += dy

	hitTop := pig.Top() < p.FieldTop
	hitBottom := p.FieldBottom < pig.Bottom()
	if hitTop || hitBottom {
		overshoot := p.FieldBottom - pig.Bottom()
		if hitTop {
			overshoot = p.FieldTop - pig.Top()
		}
		pig.Y += 2 * overshoot
		pig.Tangent = -pig.Tangent
	}

	turn := math.Sqrt(dx*dx+dy*dy) / p.RotateDistance * 360
	if pig.Tangent >= 0 {
		pig.Rotation += turn
	} else {
		pig.Rotation -= turn
	}

	left, right := pig.Left(), pig.Right()
	outLeft := left <= p.FieldLeft
	outRight := p.FieldRight <= right
	if outLeft || outRight {
		side := SideRight
		if outLeft {
			side = SideLeft
		}
		paddle := g.paddles[side].Span(p.PaddleHalfHeight)
		body := core.Span{Lo: pig.Top(), Hi: pig.Bottom()}

		if inField && paddle.Overlaps(body) {
			g.paddleHit(side)
		} else {
			g.gateClip(side, xOld, yOld, paddle)
		}
	}

	// Edges from before any hit adjustment decide whether the rally ended.
	if right < p.CanvasLeft || p.CanvasRight < left {
		return true, outRight
	}
	return false, outRight
}

// paddleHit returns the pig from a paddle. Where the pig meets the paddle
// sets how much the angle is amplified; a random bump keeps rallies from
// repeating.
func (g *Game) paddleHit(side Side) {
	p := &g.params
	pig := &g.pig
	paddleY := g.paddles[side].Y

	if side == SideLeft {
		pig.X = p.FieldLeft + pig.Radius
	} else {
		pig.X = p.FieldRight - pig.Radius
	}
	pig.Direction = -pig.Direction
	pig.Speed = math.Min(pig.Speed*p.SpeedHitFactor, p.SpeedMax)

	t := math.Abs(pig.Y-paddleY) / (p.PaddleHalfHeight + pig.Radius)
	scale := p.TangentScaleMin + t*(p.TangentScaleMax-p.TangentScaleMin)
	bump := p.BumpMin + g.rnd.Float64()*(p.BumpMax-p.BumpMin)
	pig.Tangent = core.ClampF(pig.Tangent*scale+bump, p.TangentMin, p.TangentMax)

	g.opponent.MaxSpeed = p.ControlSpeedNormal
	g.opponent.AimOffset = -p.PaddleHalfHeight + g.rnd.Float64()*2*p.PaddleHalfHeight

	variant := HitAlternate
	if g.rnd.Float64() < p.HitPrimaryChance {
		variant = HitPrimary
	}
	g.emit(PaddleHitEvent{Side: side, Variant: variant})
}

// gateClip deflects a pig that crossed a gate's top or bottom rim while it
// still overlapped the gate horizontally.
func (g *Game) gateClip(side Side, xOld, yOld float64, paddle core.Span) {
	p := &g.params
	pig := &g.pig
	gate := p.Gate(side)

	var straddle bool
	if pig.Direction > 0 {
		straddle = xOld-pig.Radius < gate.Hi
	} else {
		straddle = gate.Lo < xOld+pig.Radius
	}
	if !straddle {
		return
	}

	fromAbove := yOld+pig.Radius < paddle.Lo && paddle.Lo < pig.Bottom()
	fromBelow := paddle.Hi < yOld-pig.Radius && pig.Top() < paddle.Hi
	if !fromAbove && !fromBelow {
		return
	}

	if pig.Tangent > 0 {
		pig.Y = paddle.Lo - pig.Radius
	} else {
		pig.Y = paddle.Hi + pig.Radius
	}
	pig.Tangent = -pig.Tangent
	g.emit(GateClipEvent{Side: side})
}
