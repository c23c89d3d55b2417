package core

// Action represents a semantic player action, abstracted from physical key
// presses. The session model works with high-level intents rather than raw
// input.
type Action int

const (
	ActionNone      Action = iota
	ActionMoveUp           // W, Up arrow, k
	ActionMoveDown         // S, Down arrow, j
	ActionMoveLeft         // A, Left arrow, h
	ActionMoveRight        // D, Right arrow, l
	ActionWait             // Period, Space - pass the turn
	ActionInteract         // E, Enter - open adjacent doors
	ActionRestart          // R - restart the run after it ends
	ActionQuit             // Q, Ctrl+C - exit game/session
	ActionPause            // P, Escape - pause/unpause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveUp:
		return "MoveUp"
	case ActionMoveDown:
		return "MoveDown"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionWait:
		return "Wait"
	case ActionInteract:
		return "Interact"
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
