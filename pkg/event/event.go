package event

import (
	"fmt"
	"time"
)

// Events are queued by the engine while it handles an action or a tick and
// drained by whoever drives it.

type LockEvent struct {
	Piece string
}

type LinesClearedEvent struct {
	Lines  int
	Points int
	Total  int
}

type LevelUpEvent struct {
	Level        int
	FallInterval time.Duration
}

type GameOverEvent struct {
	Score int
	Lines int
	Level int
}

type PauseEvent struct {
	Paused bool
}

type RestartEvent struct{}

// Describe returns a one line, human readable summary of a queued event.
func Describe(e interface{}) string {
	switch e := e.(type) {
	case *LockEvent:
		return fmt.Sprintf("Locked %s", e.Piece)
	case *LinesClearedEvent:
		if e.Lines == 1 {
			return fmt.Sprintf("Cleared 1 line (+%d)", e.Points)
		}
		return fmt.Sprintf("Cleared %d lines (+%d)", e.Lines, e.Points)
	case *LevelUpEvent:
		return fmt.Sprintf("Level %d", e.Level)
	case *GameOverEvent:
		return fmt.Sprintf("Game over - %d points, %d lines", e.Score, e.Lines)
	case *PauseEvent:
		if e.Paused {
			return "Paused"
		}
		return "Resumed"
	case *RestartEvent:
		return "New game"
	default:
		return fmt.Sprintf("%v", e)
	}
}
