package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone      Action = iota
	ActionJump             // Space, Up, W - flap
	ActionPause            // P - pause/resume
	ActionRestart          // R - restart after game over
	ActionConfirm          // Enter - acknowledge the open overlay
	ActionShowBest         // T - open the best score overlay
	ActionResetBest        // X - clear the best score (overlay only)
	ActionQuit             // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionConfirm:
		return "Confirm"
	case ActionShowBest:
		return "ShowBest"
	case ActionResetBest:
		return "ResetBest"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered between two tick boundaries,
// in the order they arrived. Repeated actions are kept.
type InputFrame struct {
	actions []Action
}

// NewInputFrame creates a frame holding the given actions.
func NewInputFrame(actions ...Action) InputFrame {
	return InputFrame{actions: append([]Action(nil), actions...)}
}

// Push appends an action to the frame.
func (f *InputFrame) Push(a Action) {
	f.actions = append(f.actions, a)
}

// Actions returns the queued actions, oldest first.
func (f InputFrame) Actions() []Action {
	return f.actions
}

// Clear drops every queued action, keeping the storage for the next frame.
func (f *InputFrame) Clear() {
	f.actions = f.actions[:0]
}
