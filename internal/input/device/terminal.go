package device

import (
	"log/slog"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/hitbox/internal/input"
)

// Terminal is a tcell-backed device source. Each call to Poll blocks for the
// next terminal event and returns the event batch for one input cycle: mouse
// events become raw pointer samples (one sample per button transition),
// everything else is carried through as an opaque payload.
type Terminal struct {
	mu      sync.Mutex
	screen  tcell.Screen
	buttons tcell.ButtonMask
	logger  *slog.Logger
}

// TerminalOption configures a Terminal.
type TerminalOption func(*Terminal)

// WithLogger sets the logger for backend lifecycle messages.
func WithLogger(logger *slog.Logger) TerminalOption {
	return func(t *Terminal) {
		t.logger = logger
	}
}

// WithScreen sets the tcell screen, overriding the default. Used with a
// tcell simulation screen in tests.
func WithScreen(screen tcell.Screen) TerminalOption {
	return func(t *Terminal) {
		t.screen = screen
	}
}

// NewTerminal creates a terminal device source.
func NewTerminal(opts ...TerminalOption) (*Terminal, error) {
	t := &Terminal{logger: slog.Default()}
	for _, opt := range opts {
		opt(t)
	}

	if t.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, err
		}
		t.screen = screen
	}

	return t, nil
}

// Init initializes the screen and enables mouse reporting.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.EnableMouse()
	t.logger.Debug("terminal device initialized")
	return nil
}

// Fini restores the terminal.
func (t *Terminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Fini()
	t.logger.Debug("terminal device closed")
}

// Screen exposes the underlying tcell screen for rendering.
func (t *Terminal) Screen() tcell.Screen {
	return t.screen
}

// Size returns the terminal dimensions in cells.
func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

// Poll blocks for the next terminal event and returns the batch for one
// input cycle. Pending events are drained into the same batch so that a
// press and its release arriving together resolve within one cycle. A nil
// batch means the screen was finalized.
func (t *Terminal) Poll() []input.Event {
	ev := t.screen.PollEvent()
	if ev == nil {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	batch := t.translate(ev)
	for t.screen.HasPendingEvent() {
		ev = t.screen.PollEvent()
		if ev == nil {
			break
		}
		batch = append(batch, t.translate(ev)...)
	}
	return batch
}

// translate converts one tcell event into pipeline events, updating the
// tracked button mask.
func (t *Terminal) translate(ev tcell.Event) []input.Event {
	mouse, ok := ev.(*tcell.EventMouse)
	if !ok {
		return []input.Event{input.DeviceEvent(ev)}
	}

	out, next := translateMouse(mouse, t.buttons)
	t.buttons = next
	return out
}

// buttonBits maps tcell button bits to pointer buttons. Held buttons are
// reported as a mask on every mouse event, so transitions are recovered by
// diffing against the previous mask.
var buttonBits = []struct {
	bit tcell.ButtonMask
	btn input.Button
}{
	{tcell.Button1, input.ButtonLeft},
	{tcell.Button2, input.ButtonMiddle},
	{tcell.Button3, input.ButtonRight},
}

// translateMouse diffs the button mask against prev and emits one raw
// sample per transition. Wheel bits are momentary presses. A mouse event
// with no transitions is a move sample. The returned mask is the state to
// diff the next event against.
func translateMouse(ev *tcell.EventMouse, prev tcell.ButtonMask) ([]input.Event, tcell.ButtonMask) {
	x, y := ev.Position()
	cur := ev.Buttons()

	var out []input.Event
	for _, m := range buttonBits {
		held := cur&m.bit != 0
		was := prev&m.bit != 0
		switch {
		case held && !was:
			out = append(out, Sample{X: int32(x), Y: int32(y), Button: m.btn, Action: ActionPress}.Event())
		case !held && was:
			out = append(out, Sample{X: int32(x), Y: int32(y), Button: m.btn, Action: ActionRelease}.Event())
		}
	}

	if cur&tcell.WheelUp != 0 {
		out = append(out, Sample{X: int32(x), Y: int32(y), Button: input.ButtonWheelUp, Action: ActionPress}.Event())
	}
	if cur&tcell.WheelDown != 0 {
		out = append(out, Sample{X: int32(x), Y: int32(y), Button: input.ButtonWheelDown, Action: ActionPress}.Event())
	}

	if len(out) == 0 {
		out = append(out, Sample{X: int32(x), Y: int32(y), Action: ActionMove}.Event())
	}

	// Wheel bits never persist.
	next := cur &^ (tcell.WheelUp | tcell.WheelDown)
	return out, next
}
