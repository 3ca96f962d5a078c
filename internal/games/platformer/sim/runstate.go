package sim

// DefaultLives is the number of lives a run starts with.
const DefaultLives = 3

// RunState is the session bookkeeping for one level attempt.
// The loop's caller owns it; the loop only applies deltas.
type RunState struct {
	Score int // Sum of collected values this level
	Lives int
	Coins int // Number of collectibles picked up this level
}

// NewRunState returns a fresh run with the given lives.
func NewRunState(lives int) *RunState {
	if lives <= 0 {
		lives = DefaultLives
	}
	return &RunState{Lives: lives}
}
