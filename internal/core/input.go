package core

// Action is something the player asked for, independent of which key or
// mouse button produced it.
type Action int

const (
	ActionNone      Action = iota
	ActionSpeedUp          // Up arrow, wheel down - launch speed +1
	ActionSpeedDown        // Down arrow, wheel up - launch speed -1
	ActionAimLeft          // Left arrow, mouse X2 - angle -3
	ActionAimRight         // Right arrow, mouse X1 - angle +3
	ActionFire             // Space, left click - launch a missile
	ActionRestart          // R key - start a new session after game over
	ActionQuit             // Esc, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionSpeedUp:
		return "SpeedUp"
	case ActionSpeedDown:
		return "SpeedDown"
	case ActionAimLeft:
		return "AimLeft"
	case ActionAimRight:
		return "AimRight"
	case ActionFire:
		return "Fire"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input collected during one simulation tick.
// Actions are counted because key repeat can deliver the same action
// several times between two ticks.
type InputFrame struct {
	Actions map[Action]int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]int),
	}
}

// Set records one occurrence of an action for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	if f.Actions == nil {
		f.Actions = make(map[Action]int)
	}
	f.Actions[a]++
}

// Has reports whether the action was requested at least once.
func (f InputFrame) Has(a Action) bool {
	return f.Count(a) > 0
}

// Count returns how many times the action was triggered this frame.
func (f InputFrame) Count(a Action) int {
	if f.Actions == nil {
		return 0
	}
	return f.Actions[a]
}

// Clear empties the frame, keeping its map.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone returns an independent copy.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
