package sim

import (
	"fmt"
	"math"
)

// Validate rejects level data the physics cannot handle.
// The returned error wraps ErrInvalidLevelData.
func Validate(l *Level) error {
	if l == nil {
		return ValidationError{Code: "NIL_LEVEL", Message: "level is nil"}
	}

	if !finite(l.Spawn.X, l.Spawn.Y) {
		return ValidationError{Code: "BAD_SPAWN", Message: "spawn point is not finite"}
	}

	if l.Goal == nil {
		return ValidationError{Code: "NO_GOAL", Message: fmt.Sprintf("level %d has no goal", l.ID)}
	}
	if !finite(l.Goal.X, l.Goal.Y) {
		return ValidationError{Code: "BAD_GOAL", Message: "goal position is not finite"}
	}

	for i, p := range l.Platforms {
		if err := checkRect("platform", i, p.X, p.Y, p.W, p.H); err != nil {
			return err
		}
	}

	for i, e := range l.Enemies {
		if err := checkRect("enemy", i, e.X, e.Y, e.W, e.H); err != nil {
			return err
		}
		if !finite(e.Speed, e.PatrolStart, e.PatrolEnd) {
			return ValidationError{
				Code:    "BAD_PATROL",
				Message: fmt.Sprintf("enemy %d has a non-finite patrol", i),
			}
		}
		if e.PatrolStart > e.PatrolEnd {
			return ValidationError{
				Code:    "BAD_PATROL",
				Message: fmt.Sprintf("enemy %d patrol start %.1f is after end %.1f", i, e.PatrolStart, e.PatrolEnd),
			}
		}
	}

	for i, c := range l.Collectibles {
		if err := checkRect("collectible", i, c.X, c.Y, c.W, c.H); err != nil {
			return err
		}
		if c.Value < 0 {
			return ValidationError{
				Code:    "BAD_VALUE",
				Message: fmt.Sprintf("collectible %d has negative value %d", i, c.Value),
			}
		}
	}

	return nil
}

// ValidateSpawn rejects a spawn the player could not stand at inside the
// world described by p. Respawns skip the world clamp, so the spawn itself
// must already be in range.
func ValidateSpawn(l *Level, p Params) error {
	maxX := p.CanvasW - p.PlayerW
	if l.Spawn.X < 0 || l.Spawn.X > maxX {
		return ValidationError{
			Code:    "SPAWN_OUT_OF_WORLD",
			Message: fmt.Sprintf("spawn x %.1f outside [0, %.1f]", l.Spawn.X, maxX),
		}
	}
	return nil
}

func checkRect(kind string, i int, x, y, w, h float64) error {
	if !finite(x, y, w, h) {
		return ValidationError{
			Code:    "NOT_FINITE",
			Message: fmt.Sprintf("%s %d has a non-finite coordinate", kind, i),
		}
	}
	if w < 0 || h < 0 {
		return ValidationError{
			Code:    "NEGATIVE_SIZE",
			Message: fmt.Sprintf("%s %d has negative size %.1fx%.1f", kind, i, w, h),
		}
	}
	return nil
}

func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
