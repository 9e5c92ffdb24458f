package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads Pig Pong configuration.
// Search order: customPath -> ~/.pigpong/configs/pigpong.yaml -> ./configs/pigpong.yaml -> embedded default
func Load(customPath string) (PigPongConfig, error) {
	var cfg PigPongConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := Validate(cfg); err != nil {
			return cfg, fmt.Errorf("config: invalid %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("pigpong.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil && Validate(cfg) == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	cfg = PigPongConfig{}
	if data, err := os.ReadFile("configs/pigpong.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil && Validate(cfg) == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg = PigPongConfig{}
	if err := yaml.Unmarshal(defaultPigPongYAML, &cfg); err != nil {
		return DefaultPigPongConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pigpong", "configs", filename)
}

// Validate checks the invariants the simulation relies on.
func Validate(cfg PigPongConfig) error {
	var errs []error

	f := cfg.Field
	if f.Left >= f.Right || f.Top >= f.Bottom {
		errs = append(errs, errors.New("field: left/right and top/bottom must be ordered"))
	}
	if f.CanvasLeft > f.Left-f.GateWidth || f.CanvasRight < f.Right+f.GateWidth {
		errs = append(errs, errors.New("field: canvas must enclose the field and both gates"))
	}
	if f.GateWidth < 0 {
		errs = append(errs, errors.New("field: gate_width must not be negative"))
	}

	p := cfg.Pig
	if p.Radius <= 0 || 2*p.Radius >= f.Bottom-f.Top {
		errs = append(errs, errors.New("pig: radius must be positive and fit the field"))
	}
	if p.RotateDistance <= 0 {
		errs = append(errs, errors.New("pig: rotate_distance must be positive"))
	}
	if p.SpeedMin <= 0 || p.SpeedMax < p.SpeedMin {
		errs = append(errs, errors.New("pig: need 0 < speed_min <= speed_max"))
	}
	if p.SpeedHitFactor < 1 {
		errs = append(errs, errors.New("pig: speed_hit_factor must be at least 1"))
	}
	if p.MaxAngleDeg <= 0 || p.MaxAngleDeg >= 90 {
		errs = append(errs, errors.New("pig: max_angle_deg must be in (0, 90)"))
	}
	if p.BumpAngleDeg <= 0 || p.BumpAngleDeg >= 90 {
		errs = append(errs, errors.New("pig: bump_angle_deg must be in (0, 90)"))
	}
	if p.TangentScaleMin <= 0 || p.TangentScaleMin >= 1 || p.TangentScaleMax <= 1 {
		errs = append(errs, errors.New("pig: need 0 < tangent_scale_min < 1 < tangent_scale_max"))
	}

	pd := cfg.Paddles
	if pd.HalfHeight <= 0 || 2*pd.HalfHeight > f.Bottom-f.Top {
		errs = append(errs, errors.New("paddles: half_height must be positive and fit the field"))
	}
	if pd.TrackingFactor <= 0 || pd.ServeBoost < 1 {
		errs = append(errs, errors.New("paddles: tracking_factor must be positive and serve_boost at least 1"))
	}

	m := cfg.Match
	if m.ScoreMax <= 0 {
		errs = append(errs, errors.New("match: score_max must be positive"))
	}
	if m.StartupMs < 0 || m.CoolingMs < 0 {
		errs = append(errs, errors.New("match: durations must not be negative"))
	}
	if m.HitPrimaryChance < 0 || m.HitPrimaryChance > 1 {
		errs = append(errs, errors.New("match: hit_primary_chance must be in [0, 1]"))
	}

	i := cfg.Idle
	if i.SmirkMs <= 0 || i.CountdownMin <= 0 || i.CountdownMax < i.CountdownMin {
		errs = append(errs, errors.New("idle: need smirk_ms > 0 and 0 < countdown_min <= countdown_max"))
	}

	return errors.Join(errs...)
}
