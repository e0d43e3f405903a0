package game

type State int

const (
	StateActive State = iota
	StatePaused
	StateOver
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StatePaused:
		return "paused"
	case StateOver:
		return "over"
	default:
		return "unknown"
	}
}
