// Package sim implements the platformer simulation: level data, physics,
// collision resolution, the tick loop and the render projection.
// It has no terminal dependencies; the platform layer drives it one tick at a time.
package sim

import "github.com/vovakirdan/tui-platformer/internal/core"

// DefaultBoxSize is the collision width and height used for entities that
// were declared without dimensions.
const DefaultBoxSize = 20.0

// Surface tags a platform for rendering. It has no effect on physics.
type Surface int

const (
	SurfaceOther Surface = iota
	SurfaceGrass
	SurfaceStone
)

// ParseSurface converts a level file tag to a Surface. Unknown tags map to SurfaceOther.
func ParseSurface(s string) Surface {
	switch s {
	case "grass":
		return SurfaceGrass
	case "stone":
		return SurfaceStone
	default:
		return SurfaceOther
	}
}

// String returns the level file tag for the surface.
func (s Surface) String() string {
	switch s {
	case SurfaceGrass:
		return "grass"
	case SurfaceStone:
		return "stone"
	default:
		return "other"
	}
}

// Point is a position in world units.
type Point struct {
	X, Y float64
}

// Platform is a static solid rectangle.
type Platform struct {
	X, Y    float64
	W, H    float64
	Surface Surface
}

// Box returns the collision box of the platform.
func (p Platform) Box() core.Box {
	return boxOf(p.X, p.Y, p.W, p.H)
}

// Enemy patrols horizontally between PatrolStart and PatrolEnd.
type Enemy struct {
	X, Y        float64
	W, H        float64
	Speed       float64 // Declared velocity, restored on reset
	VX          float64 // Current velocity
	PatrolStart float64
	PatrolEnd   float64
}

// Box returns the collision box of the enemy.
func (e Enemy) Box() core.Box {
	return boxOf(e.X, e.Y, e.W, e.H)
}

// Midpoint returns the centre of the patrol range.
func (e Enemy) Midpoint() float64 {
	return e.PatrolStart + (e.PatrolEnd-e.PatrolStart)/2
}

// Collectible is a coin worth Value points. Once collected it stays
// collected until the level is reset.
type Collectible struct {
	X, Y      float64
	W, H      float64
	Value     int
	Collected bool
}

// Box returns the collision box of the collectible.
func (c Collectible) Box() core.Box {
	return boxOf(c.X, c.Y, c.W, c.H)
}

// Goal marks the end of a level. Its hit-box size comes from Params,
// not from how the flag is drawn.
type Goal struct {
	X, Y float64
}

// Level is everything a playable level contains.
// Entities are mutated in place by the simulation and restored by ResetEntities.
type Level struct {
	ID           int
	Name         string
	Spawn        Point
	Platforms    []Platform
	Enemies      []Enemy
	Collectibles []Collectible
	Goal         *Goal
}

// TotalValue returns the score available from every collectible.
func (l *Level) TotalValue() int {
	total := 0
	for _, c := range l.Collectibles {
		total += c.Value
	}
	return total
}

// CollectedValue returns the sum of values of collected collectibles.
func (l *Level) CollectedValue() int {
	total := 0
	for _, c := range l.Collectibles {
		if c.Collected {
			total += c.Value
		}
	}
	return total
}

// ResetEntities restores mutable entity state without reallocating:
// enemies return to their patrol midpoint with their declared velocity
// and every collectible becomes uncollected.
func ResetEntities(l *Level) {
	for i := range l.Enemies {
		e := &l.Enemies[i]
		e.X = e.Midpoint()
		e.VX = e.Speed
	}
	for i := range l.Collectibles {
		l.Collectibles[i].Collected = false
	}
}

// Provider loads levels by id.
type Provider interface {
	Load(id int) (*Level, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(id int) (*Level, error)

// Load calls f(id).
func (f ProviderFunc) Load(id int) (*Level, error) {
	return f(id)
}

// boxOf builds a collision box, substituting DefaultBoxSize for a zero dimension.
func boxOf(x, y, w, h float64) core.Box {
	if w == 0 {
		w = DefaultBoxSize
	}
	if h == 0 {
		h = DefaultBoxSize
	}
	return core.Box{X: x, Y: y, W: w, H: h}
}
