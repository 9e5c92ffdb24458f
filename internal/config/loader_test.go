package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := Validate(DefaultPigPongConfig()); err != nil {
		t.Fatalf("default config should be valid, got: %v", err)
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	var cfg PigPongConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	if !reflect.DeepEqual(cfg, DefaultPigPongConfig()) {
		t.Errorf("embedded YAML and DefaultPigPongConfig differ:\n yaml: %+v\n code: %+v", cfg, DefaultPigPongConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	cfg := DefaultPigPongConfig()
	cfg.Match.ScoreMax = 5
	cfg.Pig.SpeedMin = 0.2

	data, err := yaml.Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if loaded.Match.ScoreMax != 5 {
		t.Errorf("ScoreMax = %d, expected 5", loaded.Match.ScoreMax)
	}
	if loaded.Pig.SpeedMin != 0.2 {
		t.Errorf("SpeedMin = %f, expected 0.2", loaded.Pig.SpeedMin)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		create  bool
		wantMsg string
	}{
		{"missing file", "", false, "failed to read"},
		{"bad yaml", "field: [unclosed", true, "failed to parse"},
		{"invalid values", "field:\n  left: 10\n  right: 5\n", true, "invalid"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tc.name, " ", "_")+".yaml")
			if tc.create {
				if err := os.WriteFile(path, []byte(tc.content), 0o600); err != nil {
					t.Fatalf("WriteFile() failed: %v", err)
				}
			}

			_, err := Load(path)
			if err == nil {
				t.Fatal("Load() should fail")
			}
			if !strings.Contains(err.Error(), tc.wantMsg) {
				t.Errorf("error %q should mention %q", err, tc.wantMsg)
			}
		})
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PigPongConfig)
	}{
		{"inverted field", func(c *PigPongConfig) { c.Field.Top = c.Field.Bottom + 1 }},
		{"canvas inside gates", func(c *PigPongConfig) { c.Field.CanvasRight = c.Field.Right }},
		{"zero radius", func(c *PigPongConfig) { c.Pig.Radius = 0 }},
		{"speed max below min", func(c *PigPongConfig) { c.Pig.SpeedMax = c.Pig.SpeedMin / 2 }},
		{"slowing hit factor", func(c *PigPongConfig) { c.Pig.SpeedHitFactor = 0.9 }},
		{"right angle", func(c *PigPongConfig) { c.Pig.MaxAngleDeg = 90 }},
		{"scale min above one", func(c *PigPongConfig) { c.Pig.TangentScaleMin = 1.2 }},
		{"paddle taller than field", func(c *PigPongConfig) { c.Paddles.HalfHeight = 1000 }},
		{"zero score max", func(c *PigPongConfig) { c.Match.ScoreMax = 0 }},
		{"chance above one", func(c *PigPongConfig) { c.Match.HitPrimaryChance = 1.5 }},
		{"countdown inverted", func(c *PigPongConfig) { c.Idle.CountdownMax = 1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultPigPongConfig()
			tc.mutate(&cfg)
			if err := Validate(cfg); err == nil {
				t.Error("Validate() should reject the config")
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"normal", DifficultyNormal, false},
		{"hard", DifficultyHard, false},
		{"fixed", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	base := DefaultPigPongConfig().Paddles.TrackingFactor

	easy := DefaultPigPongConfig()
	ApplyPreset(&easy, DifficultyEasy)
	hard := DefaultPigPongConfig()
	ApplyPreset(&hard, DifficultyHard)
	normal := DefaultPigPongConfig()
	ApplyPreset(&normal, DifficultyNormal)

	if easy.Paddles.TrackingFactor >= base {
		t.Errorf("easy should slow the computer, got %f (base %f)", easy.Paddles.TrackingFactor, base)
	}
	if hard.Paddles.TrackingFactor <= base {
		t.Errorf("hard should speed up the computer, got %f (base %f)", hard.Paddles.TrackingFactor, base)
	}
	if normal.Paddles.TrackingFactor != base {
		t.Errorf("normal should keep the tracking factor, got %f", normal.Paddles.TrackingFactor)
	}
}
