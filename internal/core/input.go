package core

// Action represents a semantic game action, abstracted from physical key presses.
// Platform actions (quit, back, restart) are handled by the front end.
type Action int

const (
	ActionNone   Action = iota
	ActionUp            // W, K, Up arrow - move cursor up
	ActionDown          // S, J, Down arrow - move cursor down
	ActionLeft          // A, H, Left arrow - move cursor left
	ActionRight         // D, L, Right arrow - move cursor right
	ActionReveal        // Space, Enter - reveal cell under cursor
	ActionFlag          // F - toggle flag under cursor
	ActionUndo          // U - undo last action
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
	case ActionReveal:
		return "Reveal"
	case ActionFlag:
		return "Flag"
	case ActionUndo:
		return "Undo"
	default:
		return "Unknown"
	}
}

// Pointer is a mouse click at screen coordinates.
type Pointer struct {
	X, Y      int
	Secondary bool // Right button: flag instead of reveal
}

// InputFrame holds the input gathered between two game steps.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Clicks are mouse clicks in arrival order.
	Clicks []Pointer
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

// Click records a mouse click for this frame.
func (f *InputFrame) Click(p Pointer) {
	f.Clicks = append(f.Clicks, p)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether nothing was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.Clicks) == 0
}

// Clear resets all input for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Clicks = f.Clicks[:0]
}
