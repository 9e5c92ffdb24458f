// Package config provides YAML-based game configuration loading and
// difficulty presets for Pig Pong.
package config

// PigPongConfig contains all configuration for the Pig Pong simulation.
// Lengths are in field units, durations in milliseconds, speeds in field
// units per millisecond.
type PigPongConfig struct {
	Field   FieldConfig   `yaml:"field"`
	Pig     PigConfig     `yaml:"pig"`
	Paddles PaddlesConfig `yaml:"paddles"`
	Match   MatchConfig   `yaml:"match"`
	Idle    IdleConfig    `yaml:"idle"`
}

// FieldConfig describes the playing field and the full canvas around it.
// The field is where the pig bounces; the canvas is what it has to leave
// completely for a rally to end.
type FieldConfig struct {
	Left        float64 `yaml:"left"`
	Right       float64 `yaml:"right"`
	Top         float64 `yaml:"top"`
	Bottom      float64 `yaml:"bottom"`
	CanvasLeft  float64 `yaml:"canvas_left"`
	CanvasRight float64 `yaml:"canvas_right"`
	GateWidth   float64 `yaml:"gate_width"` // Width of the paddle gate outside the field
}

// PigConfig defines the pig's shape and physics.
type PigConfig struct {
	Radius          float64 `yaml:"radius"`
	StartX          float64 `yaml:"start_x"` // 0 means field center
	StartY          float64 `yaml:"start_y"` // 0 means field center
	RotateDistance  float64 `yaml:"rotate_distance"`
	SpeedMin        float64 `yaml:"speed_min"`
	SpeedMax        float64 `yaml:"speed_max"`
	SpeedHitFactor  float64 `yaml:"speed_hit_factor"`
	MaxAngleDeg     float64 `yaml:"max_angle_deg"`  // Serve/deflection angle limit
	BumpAngleDeg    float64 `yaml:"bump_angle_deg"` // Random perturbation on paddle hit
	TangentScaleMin float64 `yaml:"tangent_scale_min"`
	TangentScaleMax float64 `yaml:"tangent_scale_max"`
	StartupScaleMin float64 `yaml:"startup_scale_min"`
	StartupScaleMax float64 `yaml:"startup_scale_max"`
}

// PaddlesConfig defines paddle geometry and computer tracking speed.
type PaddlesConfig struct {
	HalfHeight     float64 `yaml:"half_height"`
	LeftY          float64 `yaml:"left_y"`          // 0 means field center
	RightY         float64 `yaml:"right_y"`         // 0 means field center
	TrackingFactor float64 `yaml:"tracking_factor"` // Max computer speed relative to SpeedMin
	ServeBoost     float64 `yaml:"serve_boost"`     // Multiplier when serving toward the computer
}

// MatchConfig defines scoring and phase timing.
type MatchConfig struct {
	ScoreMax         int     `yaml:"score_max"`
	StartupMs        float64 `yaml:"startup_ms"`
	CoolingMs        float64 `yaml:"cooling_ms"`
	HitPrimaryChance float64 `yaml:"hit_primary_chance"` // Probability of the primary hit sound
}

// IdleConfig defines the waiting-screen pig's smile/smirk cycle.
type IdleConfig struct {
	SmirkMs      float64 `yaml:"smirk_ms"`
	CountdownMin int     `yaml:"countdown_min"`
	CountdownMax int     `yaml:"countdown_max"`
}

// FieldCenter returns the center of the playing field.
func (f FieldConfig) FieldCenter() (float64, float64) {
	return (f.Left + f.Right) / 2, (f.Top + f.Bottom) / 2
}
