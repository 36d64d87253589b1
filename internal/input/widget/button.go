package widget

import (
	"github.com/dshills/hitbox/internal/geom"
	"github.com/dshills/hitbox/internal/input"
)

// Button converts cursor events aimed at a rectangular region into widget
// events. It is a two-state machine: idle, and captured while a press inside
// the region is being tracked toward its eventual release.
//
// Only left-button cursor events drive transitions. All other events pass
// through unchanged and leave the state untouched.
//
// A Button is exclusively owned by the pipeline during Process; its geometry
// may be repositioned or resized between cycles via SetBounds, but the
// capture flag is mutated only by Process itself. Id uniqueness among
// co-registered buttons is the caller's responsibility.
type Button struct {
	id       uint32
	bounds   geom.Rect
	captured bool
}

// New creates a button with the given id and rectangular region. The button
// starts idle. Negative width or height produce a region no point satisfies,
// so the button never activates; validate geometry beforehand if that is
// unwanted.
func New(id uint32, x, y, width, height int32) *Button {
	return &Button{
		id:     id,
		bounds: geom.NewRect(x, y, width, height),
	}
}

// ID returns the widget identifier.
func (b *Button) ID() uint32 {
	return b.id
}

// Bounds returns the button's region.
func (b *Button) Bounds() geom.Rect {
	return b.bounds
}

// SetBounds replaces the button's region. Calling it between cycles is the
// supported way to reposition or resize a button; capture state is kept.
func (b *Button) SetBounds(r geom.Rect) {
	b.bounds = r
}

// Captured reports whether the button is currently tracking a press.
func (b *Button) Captured() bool {
	return b.captured
}

// Reset drops any capture in progress without emitting an event.
func (b *Button) Reset() {
	b.captured = false
}

// Process implements input.Processor. Events are visited strictly in batch
// order; the capture flag written by event i is read by the decision about
// event i+1, so a press and its matching release inside one batch resolve
// as two transitions.
func (b *Button) Process(batch []input.Event) []input.Event {
	return input.MapEvents(batch, b.step)
}

// step applies the per-event decision table.
func (b *Button) step(ev input.Event) input.Event {
	switch ev.Kind {
	case input.KindCursorPressed:
		if ev.Button != input.ButtonLeft {
			return ev
		}
		// While captured, any further left press re-affirms the capture
		// regardless of position; no fresh hit test.
		if b.captured {
			return input.WidgetPressed(b.id)
		}
		if b.bounds.Contains(ev.X, ev.Y) {
			b.captured = true
			return input.WidgetPressed(b.id)
		}
		return ev

	case input.KindCursorReleased:
		if ev.Button != input.ButtonLeft || !b.captured {
			return ev
		}
		b.captured = false
		if b.bounds.Contains(ev.X, ev.Y) {
			return input.WidgetReleased(b.id)
		}
		return input.WidgetCanceled(b.id)

	default:
		return ev
	}
}
