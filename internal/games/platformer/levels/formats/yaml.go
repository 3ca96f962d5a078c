// Package formats provides level file format parsers.
package formats

import (
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/sim"
	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID           int               `yaml:"id"`
	Name         string            `yaml:"name"`
	Spawn        YAMLPoint         `yaml:"spawn"`
	Goal         *YAMLPoint        `yaml:"goal"`
	Platforms    []YAMLPlatform    `yaml:"platforms"`
	Enemies      []YAMLEnemy       `yaml:"enemies,omitempty"`
	Collectibles []YAMLCollectible `yaml:"collectibles,omitempty"`
	Metadata     map[string]string `yaml:"metadata,omitempty"`
}

// YAMLPoint is a position.
type YAMLPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// YAMLPlatform is a solid rectangle. Type is grass, stone or anything else.
type YAMLPlatform struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	W    float64 `yaml:"w"`
	H    float64 `yaml:"h"`
	Type string  `yaml:"type,omitempty"`
}

// YAMLEnemy is a patrolling enemy. Omitted sizes default to 20x20.
type YAMLEnemy struct {
	X           float64 `yaml:"x"`
	Y           float64 `yaml:"y"`
	W           float64 `yaml:"w,omitempty"`
	H           float64 `yaml:"h,omitempty"`
	VX          float64 `yaml:"vx"`
	PatrolStart float64 `yaml:"patrol_start"`
	PatrolEnd   float64 `yaml:"patrol_end"`
}

// YAMLCollectible is a coin.
type YAMLCollectible struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	W     float64 `yaml:"w,omitempty"`
	H     float64 `yaml:"h,omitempty"`
	Value int     `yaml:"value"`
}

// Parsed is a decoded level file.
type Parsed struct {
	Level    *sim.Level
	Metadata map[string]string
}

// ParseYAML parses a YAML level file into a fresh level.
// The result is not validated.
func ParseYAML(data []byte) (Parsed, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Parsed{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return Parsed{Level: yl.ToLevel(), Metadata: yl.Metadata}, nil
}

// ToLevel converts the file representation into simulation data.
func (yl YAMLLevel) ToLevel() *sim.Level {
	lvl := &sim.Level{
		ID:           yl.ID,
		Name:         yl.Name,
		Spawn:        sim.Point{X: yl.Spawn.X, Y: yl.Spawn.Y},
		Platforms:    make([]sim.Platform, 0, len(yl.Platforms)),
		Enemies:      make([]sim.Enemy, 0, len(yl.Enemies)),
		Collectibles: make([]sim.Collectible, 0, len(yl.Collectibles)),
	}

	if yl.Goal != nil {
		lvl.Goal = &sim.Goal{X: yl.Goal.X, Y: yl.Goal.Y}
	}

	for _, p := range yl.Platforms {
		lvl.Platforms = append(lvl.Platforms, sim.Platform{
			X: p.X, Y: p.Y, W: p.W, H: p.H,
			Surface: sim.ParseSurface(p.Type),
		})
	}

	for _, e := range yl.Enemies {
		lvl.Enemies = append(lvl.Enemies, sim.Enemy{
			X: e.X, Y: e.Y, W: e.W, H: e.H,
			Speed:       e.VX,
			VX:          e.VX,
			PatrolStart: e.PatrolStart,
			PatrolEnd:   e.PatrolEnd,
		})
	}

	for _, c := range yl.Collectibles {
		lvl.Collectibles = append(lvl.Collectibles, sim.Collectible{
			X: c.X, Y: c.Y, W: c.W, H: c.H,
			Value: c.Value,
		})
	}

	return lvl
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
