package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone      Action = iota
	ActionMoveLeft         // A, Left arrow - run left
	ActionMoveRight        // D, Right arrow - run right
	ActionJump             // Space, W, Up - jump
	ActionConfirm          // Enter - next level, menu select
	ActionBack             // B, Escape - back to menu
	ActionRestart          // R - restart after game over
	ActionQuit             // Q, Ctrl+C - exit
	ActionPause            // P - pause/unpause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions triggered during one simulation tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// HoldState approximates held keys for terminals, which only report presses.
// A press keeps its action held for a fixed number of ticks; key repeat
// refreshes the hold while the key stays down.
type HoldState struct {
	window int
	left   map[Action]int
}

// NewHoldState creates a hold tracker. window is clamped to at least one tick.
func NewHoldState(window int) *HoldState {
	if window < 1 {
		window = 1
	}
	return &HoldState{
		window: window,
		left:   make(map[Action]int),
	}
}

// Press marks an action as held. Opposing directions release each other.
func (h *HoldState) Press(a Action) {
	switch a {
	case ActionMoveLeft:
		delete(h.left, ActionMoveRight)
	case ActionMoveRight:
		delete(h.left, ActionMoveLeft)
	}
	h.left[a] = h.window
}

// Release drops an action immediately.
func (h *HoldState) Release(a Action) {
	delete(h.left, a)
}

// Held reports whether an action is currently held.
func (h *HoldState) Held(a Action) bool {
	return h.left[a] > 0
}

// Sample returns the held actions as an input frame.
func (h *HoldState) Sample() InputFrame {
	f := NewInputFrame()
	for a, n := range h.left {
		if n > 0 {
			f.Set(a)
		}
	}
	return f
}

// Advance ages every hold by one tick.
func (h *HoldState) Advance() {
	for a := range h.left {
		h.left[a]--
		if h.left[a] <= 0 {
			delete(h.left, a)
		}
	}
}

// Reset releases everything.
func (h *HoldState) Reset() {
	for a := range h.left {
		delete(h.left, a)
	}
}
