package device

import "github.com/dshills/hitbox/internal/input"

// Synthesizer is the pipeline stage that turns raw pointer samples into
// cursor events. Device events carrying a press or release Sample are
// rewritten 1:1 into CursorPressed/CursorReleased; move samples and device
// events with payloads the synthesizer does not recognize pass through
// unchanged.
//
// The synthesizer is stateless, so one instance can be shared across
// pipelines as long as calls are not concurrent.
type Synthesizer struct{}

// NewSynthesizer creates a synthesizer stage.
func NewSynthesizer() *Synthesizer {
	return &Synthesizer{}
}

// Process implements input.Processor.
func (s *Synthesizer) Process(batch []input.Event) []input.Event {
	return input.MapEvents(batch, synthesize)
}

func synthesize(ev input.Event) input.Event {
	if ev.Kind != input.KindDevice {
		return ev
	}

	sample, ok := ev.Device.(Sample)
	if !ok {
		return ev
	}

	switch sample.Action {
	case ActionPress:
		return input.CursorPressed(sample.X, sample.Y, sample.Button)
	case ActionRelease:
		return input.CursorReleased(sample.X, sample.Y, sample.Button)
	default:
		return ev
	}
}
