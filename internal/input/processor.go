package input

// Processor is the capability every pipeline stage implements.
//
// Process consumes an ordered batch and produces an ordered batch of the
// same length: element i of the output is either element i of the input
// unchanged, or a single replacement derived from it. A processor may mutate
// its own private state as a function of the events it observes, in batch
// order, within the same call; it must produce a value for every input
// event and has no error outcomes.
//
// Process is never invoked concurrently on the same instance. The caller
// owns the processor for the duration of the call.
type Processor interface {
	Process(batch []Event) []Event
}

// ProcessorFunc adapts a plain function to the Processor interface.
type ProcessorFunc func(batch []Event) []Event

// Process calls f with the batch.
func (f ProcessorFunc) Process(batch []Event) []Event {
	return f(batch)
}

// MapEvents applies a per-event transform over a batch, producing a new
// batch of equal length. It is the building block for simple stateless
// processors; stateful processors close over their state in fn.
func MapEvents(batch []Event, fn func(Event) Event) []Event {
	if batch == nil {
		return nil
	}

	out := make([]Event, len(batch))
	for i, ev := range batch {
		out[i] = fn(ev)
	}
	return out
}
