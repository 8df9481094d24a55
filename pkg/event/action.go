package event

type GameAction int

const (
	ActionUnknown GameAction = iota
	ActionMoveLeft
	ActionMoveRight
	ActionSoftDrop
	ActionRotateCW

	// Session actions, handled by the scheduler rather than the engine.
	ActionPause
	ActionRestart
	ActionQuit
)

func (a GameAction) String() string {
	switch a {
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionRotateCW:
		return "RotateClockwise"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsCommand reports whether a is one of the four piece commands.
func (a GameAction) IsCommand() bool {
	return a >= ActionMoveLeft && a <= ActionRotateCW
}
