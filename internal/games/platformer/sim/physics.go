package sim

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Params holds the physics constants. Velocities are per tick.
type Params struct {
	Gravity         float64
	JumpForce       float64 // Negative, upward
	MoveSpeed       float64
	PlayerW         float64
	PlayerH         float64
	CanvasW         float64
	CanvasH         float64
	GoalW           float64 // Goal hit-box width
	GoalH           float64 // Goal hit-box height
	EnemySpeedScale float64
}

// DefaultParams returns the stock tuning for an 800x600 canvas.
func DefaultParams() Params {
	return Params{
		Gravity:         0.5,
		JumpForce:       -12,
		MoveSpeed:       3,
		PlayerW:         24,
		PlayerH:         32,
		CanvasW:         800,
		CanvasH:         600,
		GoalW:           32,
		GoalH:           64,
		EnemySpeedScale: 1,
	}
}

// Physics applies movement and collision rules to level entities.
// Each method is one stage of a tick; Loop.Tick runs them in order.
type Physics struct {
	p Params
}

// NewPhysics creates a physics stage runner.
func NewPhysics(p Params) Physics {
	if p.EnemySpeedScale == 0 {
		p.EnemySpeedScale = 1
	}
	return Physics{p: p}
}

// Params returns the constants in use.
func (ph Physics) Params() Params {
	return ph.p
}

// ApplyIntent sets horizontal velocity from input and starts a jump when grounded.
// Left wins when both directions are held.
func (ph Physics) ApplyIntent(pl *Player, in Input) {
	switch {
	case in.MoveLeft:
		pl.VX = -ph.p.MoveSpeed
		pl.Facing = FacingLeft
	case in.MoveRight:
		pl.VX = ph.p.MoveSpeed
		pl.Facing = FacingRight
	default:
		pl.VX = 0
	}

	if in.Jump && pl.Grounded {
		pl.VY = ph.p.JumpForce
		pl.Grounded = false
		pl.Jumping = true
	}
}

// Integrate applies gravity then moves the player by its velocity.
func (ph Physics) Integrate(pl *Player) {
	pl.VY += ph.p.Gravity
	pl.X += pl.VX
	pl.Y += pl.VY
}

// ResolvePlatforms pushes the player out of every overlapping platform,
// in declaration order. Grounded is cleared first and set again only by a landing.
func (ph Physics) ResolvePlatforms(pl *Player, platforms []Platform) {
	pl.Grounded = false

	for _, plat := range platforms {
		pb := plat.Box()
		if !pl.Box().Overlaps(pb) {
			continue
		}

		switch {
		case pl.VY > 0 && pl.Y < pb.Y:
			pl.Y = pb.Y - pl.H
			pl.VY = 0
			pl.Grounded = true
			pl.Jumping = false
		case pl.VY < 0 && pl.Y > pb.Y:
			pl.Y = pb.Bottom()
			pl.VY = 0
		case pl.VX > 0:
			pl.X = pb.X - pl.W
		case pl.VX < 0:
			pl.X = pb.Right()
		}
	}
}

// ClampToWorld keeps the player inside the canvas horizontally.
func (ph Physics) ClampToWorld(pl *Player) {
	pl.X = core.ClampF(pl.X, 0, ph.p.CanvasW-pl.W)
}

// FellOut reports whether the player dropped below the canvas.
func (ph Physics) FellOut(pl *Player) bool {
	return pl.Y > ph.p.CanvasH
}

// Animate picks the walk frame. Frames cycle only while running on the ground.
func (ph Physics) Animate(pl *Player, frame int) {
	if pl.VX != 0 && pl.Grounded {
		pl.AnimFrame = (frame / 10) % 4
		return
	}
	pl.AnimFrame = 0
}

// StepEnemies advances every enemy and reflects it at its patrol bounds.
func (ph Physics) StepEnemies(enemies []Enemy) {
	for i := range enemies {
		e := &enemies[i]
		e.X += e.VX * ph.p.EnemySpeedScale

		if e.X >= e.PatrolEnd {
			e.X = e.PatrolEnd
			e.VX = -math.Abs(e.VX)
		} else if e.X <= e.PatrolStart {
			e.X = e.PatrolStart
			e.VX = math.Abs(e.VX)
		}
	}
}

// HitEnemy reports whether the player touches any enemy, from any side.
func (ph Physics) HitEnemy(pl *Player, enemies []Enemy) bool {
	box := pl.Box()
	for _, e := range enemies {
		if box.Overlaps(e.Box()) {
			return true
		}
	}
	return false
}

// Collect marks every uncollected collectible the player touches and
// returns their indices in declaration order.
func (ph Physics) Collect(pl *Player, items []Collectible) []int {
	var picked []int
	box := pl.Box()
	for i := range items {
		if items[i].Collected || !box.Overlaps(items[i].Box()) {
			continue
		}
		items[i].Collected = true
		picked = append(picked, i)
	}
	return picked
}

// GoalBox returns the goal hit-box.
func (ph Physics) GoalBox(g *Goal) core.Box {
	return core.Box{X: g.X, Y: g.Y, W: ph.p.GoalW, H: ph.p.GoalH}
}

// ReachedGoal reports whether the player touches the goal hit-box.
func (ph Physics) ReachedGoal(pl *Player, g *Goal) bool {
	if g == nil {
		return false
	}
	return pl.Box().Overlaps(ph.GoalBox(g))
}
