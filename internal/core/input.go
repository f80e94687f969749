package core

// Action is a semantic input, decoupled from the physical key that produced it.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - nudge the paddle left
	ActionRight          // D, Right arrow - nudge the paddle right
	ActionUp             // W, Up arrow - nudge the paddle up
	ActionDown           // S, Down arrow - nudge the paddle down
	ActionPause          // P
	ActionRestart        // R
	ActionConfirm        // Enter
	ActionBack           // Esc, B
	ActionQuit           // Q, Ctrl+C
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
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Pointer is a mouse position in screen cells.
type Pointer struct {
	Col, Row int
}

// InputFrame collects everything the player did during one frame.
type InputFrame struct {
	Actions map[Action]bool

	// Pointers holds every pointer position reported this frame, oldest first.
	Pointers []Pointer
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

// Has reports whether the action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Point records a pointer position.
func (f *InputFrame) Point(col, row int) {
	f.Pointers = append(f.Pointers, Pointer{Col: col, Row: row})
}

// Clear resets the frame for reuse.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointers = f.Pointers[:0]
}
