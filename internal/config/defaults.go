package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the default platformer configuration.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Physics: PlatformerPhysics{
			Gravity:   0.5,
			JumpForce: -12,
			MoveSpeed: 3,
		},
		Player: PlatformerPlayer{
			Width:  24,
			Height: 32,
		},
		World: PlatformerWorld{
			Width:  800,
			Height: 600,
		},
		Goal: PlatformerGoal{
			Width:  32,
			Height: 64,
		},
		Gameplay: PlatformerGameplay{
			Lives:      3,
			StartLevel: 1,
		},
		Input: PlatformerInput{
			HoldTicks: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "stage",
				MaxAt: 3,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "platformer":
		return defaultPlatformerYAML
	default:
		return nil
	}
}
