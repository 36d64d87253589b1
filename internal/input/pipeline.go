package input

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Pipeline owns an ordered list of processors and threads one event batch
// through all of them in registration order. Later processors see only what
// earlier ones chose to leave or emit; registration order is significant and
// caller-determined (a widget that must react before a lower-priority
// overlapping widget is registered first).
//
// The pipeline holds no event-specific state of its own. Processing is
// synchronous: one call to Process runs the whole chain to completion in
// the caller's goroutine.
type Pipeline struct {
	mu         sync.RWMutex
	processors []Processor
	trace      TraceFunc

	// Stats
	cycles    atomic.Uint64
	events    atomic.Uint64
	rewritten atomic.Uint64
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithTrace sets a trace callback invoked once per stage per cycle.
func WithTrace(fn TraceFunc) Option {
	return func(p *Pipeline) {
		p.trace = fn
	}
}

// NewPipeline creates an empty pipeline.
func NewPipeline(opts ...Option) *Pipeline {
	p := &Pipeline{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Register appends processors to the end of the chain.
func (p *Pipeline) Register(procs ...Processor) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.processors = append(p.processors, procs...)
}

// Len returns the number of registered processors.
func (p *Pipeline) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.processors)
}

// Processors returns a copy of the processor chain in registration order.
func (p *Pipeline) Processors() []Processor {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]Processor, len(p.processors))
	copy(out, p.processors)
	return out
}

// Process threads the batch through every registered processor in order,
// each processor's output becoming the next processor's input, and returns
// the final batch. The empty batch is valid and flows through unchanged.
//
// Length preservation is a contract, not a runtime condition: a processor
// whose output length differs from its input length is a programming error,
// and Process panics to surface it.
func (p *Pipeline) Process(batch []Event) []Event {
	p.mu.RLock()
	processors := p.processors
	trace := p.trace
	p.mu.RUnlock()

	p.cycles.Add(1)
	p.events.Add(uint64(len(batch)))

	var cycleID string
	if trace != nil {
		cycleID = uuid.NewString()
	}

	for i, proc := range processors {
		start := time.Now()
		out := proc.Process(batch)
		if len(out) != len(batch) {
			panic(fmt.Sprintf(
				"input: processor %d (%T) returned %d events for a batch of %d",
				i, proc, len(out), len(batch)))
		}

		rewritten := 0
		for j := range out {
			if !out[j].Equal(batch[j]) {
				rewritten++
			}
		}
		p.rewritten.Add(uint64(rewritten))

		if trace != nil {
			trace(TraceRecord{
				CycleID:   cycleID,
				Stage:     i,
				Len:       len(out),
				Rewritten: rewritten,
				Duration:  time.Since(start),
			})
		}

		batch = out
	}

	return batch
}

// Stats returns a snapshot of the pipeline counters.
func (p *Pipeline) Stats() Stats {
	return Stats{
		Cycles:    p.cycles.Load(),
		Events:    p.events.Load(),
		Rewritten: p.rewritten.Load(),
	}
}

// Stats is a snapshot of pipeline activity.
type Stats struct {
	// Cycles is the number of batches processed.
	Cycles uint64

	// Events is the total number of events entering the pipeline.
	Events uint64

	// Rewritten is the total number of events replaced by some stage.
	Rewritten uint64
}

// TraceRecord describes one stage of one processing cycle.
type TraceRecord struct {
	// CycleID is a unique identifier shared by all stages of one cycle.
	CycleID string

	// Stage is the processor's position in the chain.
	Stage int

	// Len is the batch length (identical on both sides of the stage).
	Len int

	// Rewritten is how many events this stage replaced.
	Rewritten int

	// Duration is how long the stage took.
	Duration time.Duration
}

// TraceFunc receives trace records when tracing is enabled.
type TraceFunc func(rec TraceRecord)
