package event

import (
	"fmt"
)

type Event interface {
	fmt.Stringer
}

type SpawnEvent struct {
	Shape string
	X, Y  int
}

func (e SpawnEvent) String() string {
	return fmt.Sprintf("spawned %s at (%d,%d)", e.Shape, e.X, e.Y)
}

type LockEvent struct {
	Cleared int
	Score   int
}

func (e LockEvent) String() string {
	return fmt.Sprintf("locked piece, cleared %d, score %d", e.Cleared, e.Score)
}

type GameOverEvent struct {
	Score int
}

func (e GameOverEvent) String() string {
	return fmt.Sprintf("game over, score %d", e.Score)
}

// Listener receives engine events synchronously.
type Listener func(e Event)
