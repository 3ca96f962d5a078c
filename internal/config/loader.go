package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPlatformer loads platformer configuration.
// Search order: customPath -> ~/.arcade/configs/platformer.yaml -> ./configs/platformer.yaml -> embedded default.
// Files may be partial; missing keys keep their default values.
func LoadPlatformer(customPath string) (PlatformerConfig, error) {
	cfg := DefaultPlatformerConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg.Normalize(), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("platformer.yaml"); userCfgPath != "" {
		if c, ok := tryLoad(userCfgPath); ok {
			return c, nil
		}
	}

	// Try local configs directory
	if c, ok := tryLoad(filepath.Join("configs", "platformer.yaml")); ok {
		return c, nil
	}

	// Use embedded default YAML
	embedded := DefaultPlatformerConfig()
	if err := yaml.Unmarshal(defaultPlatformerYAML, &embedded); err != nil {
		return DefaultPlatformerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded.Normalize(), nil
}

// tryLoad reads an optional config file. Missing or broken files are skipped.
func tryLoad(path string) (PlatformerConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PlatformerConfig{}, false
	}
	cfg := DefaultPlatformerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PlatformerConfig{}, false
	}
	return cfg.Normalize(), true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Normalize replaces unusable values with defaults.
func (c PlatformerConfig) Normalize() PlatformerConfig {
	def := DefaultPlatformerConfig()

	if c.Physics.MoveSpeed <= 0 {
		c.Physics.MoveSpeed = def.Physics.MoveSpeed
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		c.Player = def.Player
	}
	if c.World.Width <= 0 || c.World.Height <= 0 {
		c.World = def.World
	}
	if c.Goal.Width <= 0 || c.Goal.Height <= 0 {
		c.Goal = def.Goal
	}
	if c.Gameplay.Lives <= 0 {
		c.Gameplay.Lives = def.Gameplay.Lives
	}
	if c.Input.HoldTicks <= 0 {
		c.Input.HoldTicks = def.Input.HoldTicks
	}
	c.Difficulty.InitialLevel = clampF(c.Difficulty.InitialLevel, 0.0, 1.0)
	return c
}

// ApplyPlatformerPreset modifies the config based on a difficulty preset.
func ApplyPlatformerPreset(cfg *PlatformerConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}

	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Input.HoldTicks = 14
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Input.HoldTicks = 8
	}
}
