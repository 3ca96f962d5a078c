package sim

import "github.com/vovakirdan/tui-platformer/internal/core"

// Input is the held control state sampled once per tick.
type Input struct {
	MoveLeft  bool
	MoveRight bool
	Jump      bool
}

// InputFromFrame extracts movement controls from a platform input frame.
func InputFromFrame(f core.InputFrame) Input {
	return Input{
		MoveLeft:  f.Has(core.ActionMoveLeft),
		MoveRight: f.Has(core.ActionMoveRight),
		Jump:      f.Has(core.ActionJump),
	}
}
