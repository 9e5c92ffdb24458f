package config

import (
	_ "embed"
)

//go:embed defaults/pigpong.yaml
var defaultPigPongYAML []byte

// DefaultPigPongConfig returns the default Pig Pong configuration.
func DefaultPigPongConfig() PigPongConfig {
	return PigPongConfig{
		Field: FieldConfig{
			Left:        60,
			Right:       940,
			Top:         0,
			Bottom:      440,
			CanvasLeft:  0,
			CanvasRight: 1000,
			GateWidth:   20,
		},
		Pig: PigConfig{
			Radius:          18,
			RotateDistance:  350,
			SpeedMin:        0.3,
			SpeedMax:        0.75, // 2.5x SpeedMin
			SpeedHitFactor:  1.15,
			MaxAngleDeg:     60,
			BumpAngleDeg:    7,
			TangentScaleMin: 0.65,
			TangentScaleMax: 2.2,
			StartupScaleMin: 1.0,
			StartupScaleMax: 3.0,
		},
		Paddles: PaddlesConfig{
			HalfHeight:     55,
			TrackingFactor: 0.9,
			ServeBoost:     2.6,
		},
		Match: MatchConfig{
			ScoreMax:         11,
			StartupMs:        3000,
			CoolingMs:        3000,
			HitPrimaryChance: 0.85,
		},
		Idle: IdleConfig{
			SmirkMs:      750,
			CountdownMin: 2,
			CountdownMax: 6,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPigPongYAML
}
