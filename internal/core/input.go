package core

// Action represents a semantic game command, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - head up
	ActionDown           // S, Down arrow - head down
	ActionLeft           // A, Left arrow - head left
	ActionRight          // D, Right arrow - head right
	ActionConfirm        // Enter - continue to the next level
	ActionBack           // B - back to the caller
	ActionPause          // P, Escape - pause/unpause
	ActionResume         // explicit resume (UI buttons)
	ActionRestart        // R - restart the current level attempt
	ActionQuit           // Q, Ctrl+C - leave the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionPause:
		return "Pause"
	case ActionResume:
		return "Resume"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the commands submitted during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Target is a move target in maze cell coordinates.
	Target    Point
	HasTarget bool

	// Pointer is a click in screen coordinates; the game maps it to a cell.
	Pointer    Point
	HasPointer bool
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

// SetTarget requests movement to a maze cell. The last call in a frame wins.
func (f *InputFrame) SetTarget(p Point) {
	f.Target = p
	f.HasTarget = true
}

// SetPointer records a click at screen coordinates (x, y).
func (f *InputFrame) SetPointer(x, y int) {
	f.Pointer = Point{X: x, Y: y}
	f.HasPointer = true
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.HasTarget = false
	f.HasPointer = false
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Target, clone.HasTarget = f.Target, f.HasTarget
	clone.Pointer, clone.HasPointer = f.Pointer, f.HasPointer
	return clone
}
