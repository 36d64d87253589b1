package input

import "fmt"

// Kind identifies the variant carried by an Event.
type Kind uint8

const (
	// KindDevice is an opaque event from the input backend.
	KindDevice Kind = iota
	// KindCursorPressed is a pointer button press at a screen position.
	KindCursorPressed
	// KindCursorReleased is a pointer button release at a screen position.
	KindCursorReleased
	// KindWidgetPressed indicates a widget accepted a press.
	KindWidgetPressed
	// KindWidgetReleased indicates a captured press was released inside the widget.
	KindWidgetReleased
	// KindWidgetCanceled indicates a captured press was released outside the widget.
	KindWidgetCanceled
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindDevice:
		return "device"
	case KindCursorPressed:
		return "cursor-pressed"
	case KindCursorReleased:
		return "cursor-released"
	case KindWidgetPressed:
		return "widget-pressed"
	case KindWidgetReleased:
		return "widget-released"
	case KindWidgetCanceled:
		return "widget-canceled"
	default:
		return "unknown"
	}
}

// Button represents a pointer button.
type Button uint8

const (
	// ButtonNone indicates no button.
	ButtonNone Button = iota
	// ButtonLeft is the primary (left) pointer button.
	ButtonLeft
	// ButtonMiddle is the middle pointer button (wheel click).
	ButtonMiddle
	// ButtonRight is the secondary (right) pointer button.
	ButtonRight
	// ButtonWheelUp indicates wheel scroll up.
	ButtonWheelUp
	// ButtonWheelDown indicates wheel scroll down.
	ButtonWheelDown
)

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	case ButtonWheelUp:
		return "wheel-up"
	case ButtonWheelDown:
		return "wheel-down"
	default:
		return "none"
	}
}

// Event is the tagged union shared by every processor in the pipeline. The
// Kind field selects the variant; the remaining fields are meaningful only
// for the kinds documented on them.
//
// Events are plain values. Processors never mutate an event in place; they
// either pass it through or emit a replacement built with one of the
// constructors below.
type Event struct {
	// Kind selects the variant.
	Kind Kind

	// X, Y are the screen coordinates for cursor events.
	X int32
	Y int32

	// Button is the pointer button for cursor events.
	Button Button

	// WidgetID identifies the widget for widget events.
	WidgetID uint32

	// Device is the opaque backend payload for device events. Payloads must
	// be comparable values for Equal to work.
	Device any
}

// DeviceEvent wraps an opaque backend payload.
func DeviceEvent(payload any) Event {
	return Event{Kind: KindDevice, Device: payload}
}

// CursorPressed creates a pointer button press event.
func CursorPressed(x, y int32, button Button) Event {
	return Event{Kind: KindCursorPressed, X: x, Y: y, Button: button}
}

// CursorReleased creates a pointer button release event.
func CursorReleased(x, y int32, button Button) Event {
	return Event{Kind: KindCursorReleased, X: x, Y: y, Button: button}
}

// WidgetPressed creates a widget press event.
func WidgetPressed(id uint32) Event {
	return Event{Kind: KindWidgetPressed, WidgetID: id}
}

// WidgetReleased creates a widget release event.
func WidgetReleased(id uint32) Event {
	return Event{Kind: KindWidgetReleased, WidgetID: id}
}

// WidgetCanceled creates a widget cancel event.
func WidgetCanceled(id uint32) Event {
	return Event{Kind: KindWidgetCanceled, WidgetID: id}
}

// Equal reports whether two events are the same variant with the same
// payload. Device payloads are compared by interface equality.
func (e Event) Equal(other Event) bool {
	return e == other
}

// IsCursor reports whether the event is a cursor press or release.
func (e Event) IsCursor() bool {
	return e.Kind == KindCursorPressed || e.Kind == KindCursorReleased
}

// IsWidget reports whether the event is a widget press, release or cancel.
func (e Event) IsWidget() bool {
	return e.Kind == KindWidgetPressed || e.Kind == KindWidgetReleased ||
		e.Kind == KindWidgetCanceled
}

// String returns a string representation of the event.
func (e Event) String() string {
	switch e.Kind {
	case KindDevice:
		return fmt.Sprintf("device(%v)", e.Device)
	case KindCursorPressed, KindCursorReleased:
		return fmt.Sprintf("%s(%d,%d %s)", e.Kind, e.X, e.Y, e.Button)
	case KindWidgetPressed, KindWidgetReleased, KindWidgetCanceled:
		return fmt.Sprintf("%s(%d)", e.Kind, e.WidgetID)
	default:
		return "unknown"
	}
}
