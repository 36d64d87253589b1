package device

import (
	"fmt"

	"github.com/dshills/hitbox/internal/input"
)

// Action represents the kind of pointer transition a sample describes.
type Action uint8

const (
	// ActionNone indicates no action.
	ActionNone Action = iota
	// ActionPress indicates a button went down.
	ActionPress
	// ActionRelease indicates a button came up.
	ActionRelease
	// ActionMove indicates pointer movement with no button transition.
	ActionMove
)

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case ActionPress:
		return "press"
	case ActionRelease:
		return "release"
	case ActionMove:
		return "move"
	default:
		return "none"
	}
}

// Sample is one raw pointer transition reported by the backend. It is the
// device payload the Synthesizer understands; everything else the backend
// emits stays opaque to the pipeline.
type Sample struct {
	// X, Y are the pointer position in backend coordinates.
	X int32
	Y int32

	// Button is the button involved, if any.
	Button input.Button

	// Action is the transition kind.
	Action Action
}

// String returns a string representation of the sample.
func (s Sample) String() string {
	return fmt.Sprintf("%s(%d,%d %s)", s.Action, s.X, s.Y, s.Button)
}

// Event wraps the sample as an opaque device event.
func (s Sample) Event() input.Event {
	return input.DeviceEvent(s)
}
