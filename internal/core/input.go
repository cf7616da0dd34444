package core

// Action represents a semantic input, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move left
	ActionRight          // D, Right arrow - move right
	ActionJump           // Space, W, Up - jump
	ActionReset          // R - put the runner back on its spawn point
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionPause          // P - pause/unpause
	ActionRestart        // N - start a fresh run
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionReset:
		return "Reset"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
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

// Intents is the per-tick movement input consumed by the simulation.
// Left and Right may both be set by a raw source; the simulation resolves
// them to at most one horizontal intent.
type Intents struct {
	Left  bool
	Right bool
	Jump  bool
	Reset bool
}

// Horizontal returns -1, 0 or 1. Left wins when both directions are held.
func (i Intents) Horizontal() int {
	switch {
	case i.Left:
		return -1
	case i.Right:
		return 1
	default:
		return 0
	}
}

// InputFrame represents all actions triggered during one tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Intents converts the frame into movement intents.
func (f InputFrame) Intents() Intents {
	return Intents{
		Left:  f.Has(ActionLeft),
		Right: f.Has(ActionRight),
		Jump:  f.Has(ActionJump),
		Reset: f.Has(ActionReset),
	}
}
