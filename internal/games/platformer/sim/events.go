package sim

import "fmt"

// EventKind identifies a notification produced by a tick.
type EventKind int

const (
	EventScoreChanged EventKind = iota
	EventLivesChanged
	EventCoinsChanged
	EventGameOver
	EventLevelComplete
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventScoreChanged:
		return "ScoreChanged"
	case EventLivesChanged:
		return "LivesChanged"
	case EventCoinsChanged:
		return "CoinsChanged"
	case EventGameOver:
		return "GameOver"
	case EventLevelComplete:
		return "LevelComplete"
	default:
		return "Unknown"
	}
}

// Event is a tagged notification. Value carries the new total for the
// *Changed kinds and the level id for GameOver and LevelComplete.
type Event struct {
	Kind  EventKind
	Value int
}

func (e Event) String() string {
	return fmt.Sprintf("%s(%d)", e.Kind, e.Value)
}

// Sink receives events as they are produced. Delivery is fire-and-forget.
type Sink interface {
	Notify(Event)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Event)

// Notify calls f(e).
func (f SinkFunc) Notify(e Event) {
	f(e)
}
