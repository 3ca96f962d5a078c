package sim

import "github.com/vovakirdan/tui-platformer/internal/core"

// Facing is the horizontal direction the player looks at.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// String returns "right" or "left".
func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// Player is the controlled character.
type Player struct {
	X, Y      float64
	W, H      float64
	VX, VY    float64
	Grounded  bool
	Jumping   bool
	Facing    Facing
	AnimFrame int
}

// NewPlayer places a fresh player at the spawn point.
func NewPlayer(spawn Point, w, h float64) *Player {
	return &Player{
		X: spawn.X,
		Y: spawn.Y,
		W: w,
		H: h,
	}
}

// Box returns the player's bounding box.
func (p *Player) Box() core.Box {
	return core.Box{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// Respawn moves the player back to the spawn point and stops it.
func (p *Player) Respawn(spawn Point) {
	p.X = spawn.X
	p.Y = spawn.Y
	p.VX = 0
	p.VY = 0
}
