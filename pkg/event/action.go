package event

type GameAction int

const (
	ActionNone GameAction = iota
	ActionMoveLeft
	ActionMoveRight
	ActionSoftDrop
	ActionRotateCW
	ActionRotateCCW
	ActionHardDrop
	ActionPause
	ActionRestart
	ActionQuit
)

func (a GameAction) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionMoveLeft:
		return "move-left"
	case ActionMoveRight:
		return "move-right"
	case ActionSoftDrop:
		return "soft-drop"
	case ActionRotateCW:
		return "rotate-cw"
	case ActionRotateCCW:
		return "rotate-ccw"
	case ActionHardDrop:
		return "hard-drop"
	case ActionPause:
		return "pause"
	case ActionRestart:
		return "restart"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}
