// Package pigpong implements the Pig Pong simulation: a pig bounced between
// two paddle gates across a field, a computer opponent for any side nobody
// claimed, scoring, and the waiting/startup/playing/cooling phase cycle.
//
// The package has no rendering, input-device or audio code. A driver feeds
// timestamps into Advance and forwards pointer input to the claim and drag
// methods; collaborators read Snapshot and consume the emitted events.
package pigpong

import (
	"math"

	"github.com/vovakirdan/pigpong/internal/config"
	"github.com/vovakirdan/pigpong/internal/core"
)

// Params holds the fixed geometry and tuning of a Game. Lengths are in field
// units, times in milliseconds, speeds in field units per millisecond.
type Params struct {
	// Field boundaries; the pig bounces off Top and Bottom and is returned
	// by paddles at Left and Right.
	FieldLeft, FieldRight float64
	FieldTop, FieldBottom float64

	// Canvas boundaries; the rally ends once the pig leaves them completely.
	CanvasLeft, CanvasRight float64

	GateWidth float64

	PigRadius      float64
	PigStartX      float64
	PigStartY      float64
	RotateDistance float64 // Travel distance for one full turn

	SpeedMin       float64
	SpeedMax       float64
	SpeedHitFactor float64

	TangentMin, TangentMax           float64
	BumpMin, BumpMax                 float64
	TangentScaleMin, TangentScaleMax float64
	StartupScaleMin, StartupScaleMax float64

	PaddleHalfHeight float64
	LeftPaddleY      float64
	RightPaddleY     float64

	// Computer paddle speed caps.
	ControlSpeedNormal float64
	ControlSpeedServe  float64

	ScoreMax         int
	StartupMs        float64
	CoolingMs        float64
	HitPrimaryChance float64

	IdleSmirkMs      float64
	IdleCountdownMin int
	IdleCountdownMax int
}

// NewParams derives simulation parameters from configuration. Angles become
// tangents and zero start positions default to the field center.
func NewParams(cfg config.PigPongConfig) Params {
	cx, cy := cfg.Field.FieldCenter()

	startX := cfg.Pig.StartX
	if startX == 0 {
		startX = cx
	}
	startY := cfg.Pig.StartY
	if startY == 0 {
		startY = cy
	}
	leftY := cfg.Paddles.LeftY
	if leftY == 0 {
		leftY = cy
	}
	rightY := cfg.Paddles.RightY
	if rightY == 0 {
		rightY = cy
	}

	tangentMax := math.Tan(cfg.Pig.MaxAngleDeg * math.Pi / 180)
	bumpMax := math.Tan(cfg.Pig.BumpAngleDeg * math.Pi / 180)
	normal := cfg.Pig.SpeedMin * cfg.Paddles.TrackingFactor

	return Params{
		FieldLeft:   cfg.Field.Left,
		FieldRight:  cfg.Field.Right,
		FieldTop:    cfg.Field.Top,
		FieldBottom: cfg.Field.Bottom,
		CanvasLeft:  cfg.Field.CanvasLeft,
		CanvasRight: cfg.Field.CanvasRight,
		GateWidth:   cfg.Field.GateWidth,

		PigRadius:      cfg.Pig.Radius,
		PigStartX:      startX,
		PigStartY:      startY,
		RotateDistance: cfg.Pig.RotateDistance,

		SpeedMin:       cfg.Pig.SpeedMin,
		SpeedMax:       cfg.Pig.SpeedMax,
		SpeedHitFactor: cfg.Pig.SpeedHitFactor,

		TangentMin:      -tangentMax,
		TangentMax:      tangentMax,
		BumpMin:         -bumpMax,
		BumpMax:         bumpMax,
		TangentScaleMin: cfg.Pig.TangentScaleMin,
		TangentScaleMax: cfg.Pig.TangentScaleMax,
		StartupScaleMin: cfg.Pig.StartupScaleMin,
		StartupScaleMax: cfg.Pig.StartupScaleMax,

		PaddleHalfHeight: cfg.Paddles.HalfHeight,
		LeftPaddleY:      leftY,
		RightPaddleY:     rightY,

		ControlSpeedNormal: normal,
		ControlSpeedServe:  normal * cfg.Paddles.ServeBoost,

		ScoreMax:         cfg.Match.ScoreMax,
		StartupMs:        cfg.Match.StartupMs,
		CoolingMs:        cfg.Match.CoolingMs,
		HitPrimaryChance: cfg.Match.HitPrimaryChance,

		IdleSmirkMs:      cfg.Idle.SmirkMs,
		IdleCountdownMin: cfg.Idle.CountdownMin,
		IdleCountdownMax: cfg.Idle.CountdownMax,
	}
}

// DefaultParams returns the parameters of the built-in configuration.
func DefaultParams() Params {
	return NewParams(config.DefaultPigPongConfig())
}

// MidX returns the horizontal middle of the field. Pointer input left of it
// belongs to the left side.
func (p Params) MidX() float64 {
	return (p.FieldLeft + p.FieldRight) / 2
}

// PaddleRange is the span a paddle center may occupy.
func (p Params) PaddleRange() core.Span {
	return core.Span{Lo: p.FieldTop + p.PaddleHalfHeight, Hi: p.FieldBottom - p.PaddleHalfHeight}
}

// Gate returns the horizontal span of a side's paddle gate, outside the field.
func (p Params) Gate(side Side) core.Span {
	if side == SideLeft {
		return core.Span{Lo: p.FieldLeft - p.GateWidth, Hi: p.FieldLeft}
	}
	return core.Span{Lo: p.FieldRight, Hi: p.FieldRight + p.GateWidth}
}

// SideAt returns the side owning a horizontal field position.
func (p Params) SideAt(x float64) Side {
	if x < p.MidX() {
		return SideLeft
	}
	return SideRight
}
