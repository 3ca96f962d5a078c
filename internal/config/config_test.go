package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg PlatformerConfig
	if err := yaml.Unmarshal(GetDefaultYAML("platformer"), &cfg); err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultPlatformerConfig()) {
		t.Errorf("embedded defaults drifted:\n%+v\n%+v", cfg, DefaultPlatformerConfig())
	}

	if GetDefaultYAML("pong") != nil {
		t.Error("unknown game should have no default yaml")
	}
}

func TestLoadPlatformerCustomPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "physics:\n  gravity: 0.8\ngameplay:\n  lives: 7\n")

	cfg, err := LoadPlatformer(path)
	if err != nil {
		t.Fatalf("LoadPlatformer: %v", err)
	}

	if cfg.Physics.Gravity != 0.8 {
		t.Errorf("gravity = %f, expected 0.8", cfg.Physics.Gravity)
	}
	if cfg.Gameplay.Lives != 7 {
		t.Errorf("lives = %d, expected 7", cfg.Gameplay.Lives)
	}
	if cfg.Physics.JumpForce != -12 || cfg.Player.Width != 24 {
		t.Errorf("missing keys should keep defaults, got %+v", cfg)
	}
}

func TestLoadPlatformerCustomErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadPlatformer(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "physics: [not, a, map\n")
	if _, err := LoadPlatformer(bad); err == nil {
		t.Error("expected error for malformed custom config")
	}
}

func TestLoadPlatformerSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(work); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })

	cfg, err := LoadPlatformer("")
	if err != nil {
		t.Fatalf("LoadPlatformer: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultPlatformerConfig()) {
		t.Errorf("expected embedded defaults, got %+v", cfg)
	}

	writeFile(t, filepath.Join(work, "configs", "platformer.yaml"), "gameplay:\n  lives: 4\n")
	cfg, _ = LoadPlatformer("")
	if cfg.Gameplay.Lives != 4 {
		t.Errorf("local config not used, lives = %d", cfg.Gameplay.Lives)
	}

	writeFile(t, filepath.Join(home, ".arcade", "configs", "platformer.yaml"), "gameplay:\n  lives: 9\n")
	cfg, _ = LoadPlatformer("")
	if cfg.Gameplay.Lives != 9 {
		t.Errorf("user config should win over local, lives = %d", cfg.Gameplay.Lives)
	}
}

func TestNormalize(t *testing.T) {
	cfg := PlatformerConfig{}
	cfg.Difficulty.InitialLevel = 3

	n := cfg.Normalize()
	def := DefaultPlatformerConfig()

	if n.Player != def.Player || n.World != def.World || n.Goal != def.Goal {
		t.Errorf("sizes not defaulted: %+v", n)
	}
	if n.Gameplay.Lives != 3 || n.Input.HoldTicks != 10 || n.Physics.MoveSpeed != 3 {
		t.Errorf("gameplay not defaulted: %+v", n)
	}
	if n.Difficulty.InitialLevel != 1 {
		t.Errorf("initial level = %f, expected clamp to 1", n.Difficulty.InitialLevel)
	}
}

func TestApplyPlatformerPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		lives   int
		enabled bool
		initial float64
	}{
		{"", 3, false, 0},
		{DifficultyEasy, 5, true, 0},
		{DifficultyNormal, 3, true, 0.3},
		{DifficultyHard, 2, true, 0.7},
		{DifficultyFixed, 3, false, 0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultPlatformerConfig()
			ApplyPlatformerPreset(&cfg, tc.preset)

			if cfg.Gameplay.Lives != tc.lives {
				t.Errorf("lives = %d, expected %d", cfg.Gameplay.Lives, tc.lives)
			}
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.initial {
				t.Errorf("initial level = %f, expected %f", cfg.Difficulty.InitialLevel, tc.initial)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, ok := ParsePreset(s); !ok {
			t.Errorf("ParsePreset(%q) rejected", s)
		}
	}
	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("ParsePreset accepted an unknown preset")
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "stage", MaxAt: 4},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
	}
	dm := NewDifficultyManager(cfg)

	tests := []struct {
		stages int
		level  float64
	}{
		{0, 0.2},
		{2, 0.6},
		{4, 1.0},
		{10, 1.0},
	}
	for _, tc := range tests {
		if got := dm.Level(0, tc.stages); got < tc.level-1e-9 || got > tc.level+1e-9 {
			t.Errorf("Level(stages=%d) = %f, expected %f", tc.stages, got, tc.level)
		}
	}

	if got := dm.Speed(1, 0, 4); got != 2 {
		t.Errorf("Speed at max = %f, expected 2", got)
	}

	dm.SetEnabled(false)
	if got := dm.Level(0, 4); got != 0.2 {
		t.Errorf("disabled Level = %f, expected initial 0.2", got)
	}
}

func TestDifficultyManagerScore(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:     ScalingConfig{SpeedMultiplier: 0.5},
	})

	if got := dm.Level(50, 0); got != 0.5 {
		t.Errorf("Level(score=50) = %f, expected 0.5", got)
	}
	if got := dm.Speed(2, 100, 0); got != 3 {
		t.Errorf("Speed = %f, expected 3", got)
	}
}
