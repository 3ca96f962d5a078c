// Package config provides YAML-based game configuration loading and
// difficulty management for the platformer.
package config

// PlatformerConfig contains all configuration for the platformer.
type PlatformerConfig struct {
	Physics    PlatformerPhysics  `yaml:"physics"`
	Player     PlatformerPlayer   `yaml:"player"`
	World      PlatformerWorld    `yaml:"world"`
	Goal       PlatformerGoal     `yaml:"goal"`
	Gameplay   PlatformerGameplay `yaml:"gameplay"`
	Input      PlatformerInput    `yaml:"input"`
	Difficulty DifficultyConfig   `yaml:"difficulty"`
}

// PlatformerPhysics defines per-tick physics constants.
type PlatformerPhysics struct {
	Gravity   float64 `yaml:"gravity"`
	JumpForce float64 `yaml:"jump_force"` // Negative is up
	MoveSpeed float64 `yaml:"move_speed"`
}

// PlatformerPlayer defines the player's collision size.
type PlatformerPlayer struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlatformerWorld defines the canvas the levels are authored for.
type PlatformerWorld struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlatformerGoal defines the goal hit-box size.
type PlatformerGoal struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlatformerGameplay defines session rules.
type PlatformerGameplay struct {
	Lives      int `yaml:"lives"`
	StartLevel int `yaml:"start_level"`
}

// PlatformerInput defines how key presses become held movement.
type PlatformerInput struct {
	HoldTicks int `yaml:"hold_ticks"` // Ticks a key press stays held without a repeat
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a campaign.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "stage", or "none"
	MaxAt int    `yaml:"max_at"` // Score or cleared stages at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to enemy speed scale at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string is accepted and
// means no preset.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
