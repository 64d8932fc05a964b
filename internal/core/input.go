package core

// Action is a semantic player intent, abstracted from physical keys.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, Up, W
	ActionLeft           // Left, H - face left and run
	ActionRight          // Right, L - face right and run
	ActionStop           // Down, S - stop running
	ActionStart          // Enter - start from the title screen
	ActionRestart        // R - restart after game over
	ActionPause          // P, Escape
	ActionBack           // B - back to the menu
	ActionQuit           // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionStop:
		return "Stop"
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
